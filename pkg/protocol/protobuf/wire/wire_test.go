package wire

import "testing"

func TestAppendPresenceFieldAlwaysEmitsTag(t *testing.T) {
	buf := AppendPresenceField(nil, 3)
	if len(buf) == 0 {
		t.Fatalf("AppendPresenceField produced no output")
	}
	f, n, err := Next(buf)
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("Next consumed %d bytes, want %d", n, len(buf))
	}
	if f.Num != 3 {
		t.Errorf("field number = %d, want 3", f.Num)
	}
	if f.WireType != WireBytes {
		t.Errorf("wire type = %d, want WireBytes", f.WireType)
	}
	if len(f.Bytes) != 0 {
		t.Errorf("payload = %x, want empty", f.Bytes)
	}
}

func TestAppendBytesFieldSkipsEmpty(t *testing.T) {
	// AppendBytesField's omit-if-empty behavior is intentional for normal
	// embedded-message fields; this test documents it so a future change
	// doesn't silently alter the contract AppendPresenceField exists to
	// route around.
	buf := AppendBytesField(nil, 3, nil)
	if len(buf) != 0 {
		t.Errorf("AppendBytesField(nil) = %x, want empty", buf)
	}
}

func TestEachSkipsUnknownFields(t *testing.T) {
	var buf []byte
	buf = AppendUint32Field(buf, 1, 7)
	buf = AppendStringField(buf, 5, "ignored")
	buf = AppendUint32Field(buf, 2, 9)

	var seen []int
	err := Each(buf, func(f Field) error {
		seen = append(seen, f.Num)
		return nil
	})
	if err != nil {
		t.Fatalf("Each: %v", err)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 5 || seen[2] != 2 {
		t.Errorf("field order = %v, want [1 5 2]", seen)
	}
}
