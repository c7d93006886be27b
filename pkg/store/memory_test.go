package store

import (
	"bytes"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if _, err := s.Load(KeyPrivateKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load of unset key: err = %v, want ErrNotFound", err)
	}

	want := []byte{1, 2, 3, 4}
	if err := s.Save(KeyPrivateKey, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(KeyPrivateKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Load = %x, want %x", got, want)
	}

	// Mutating the returned slice must not corrupt the stored value.
	got[0] = 0xff
	again, err := s.Load(KeyPrivateKey)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !bytes.Equal(again, want) {
		t.Errorf("stored value was mutated through the returned slice: %x", again)
	}

	if err := s.Remove(KeyPrivateKey); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := s.Load(KeyPrivateKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after Remove: err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreRemoveMissingIsNoop(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Remove(KeySessionVCSEC); err != nil {
		t.Errorf("Remove of unset key returned error: %v", err)
	}
}
