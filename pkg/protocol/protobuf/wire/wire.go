// Package wire implements the small subset of the protobuf wire format that the
// hand-authored message types in the sibling packages need: varint, fixed32 and
// length-delimited encoding/decoding, plus unknown-field skipping.
//
// The upstream vehicle-command protobuf sources (universal_message.proto,
// vcsec.proto, car_server.proto, keys.proto) are compiled with protoc in the
// real project. Since this build has no protoc available, those four schemas
// are reproduced here as small, dependency-free structs with explicit
// Marshal/Unmarshal methods instead of protoc-gen-go's reflection-based
// runtime -- the same no-reflection shape tools like vtprotobuf generate,
// which suits a resource-constrained BLE controller well. signatures.proto is
// the one schema the pack shipped as genuine generated code and is kept as-is.
package wire

import (
	"encoding/binary"
	"errors"
	"math"
)

// ErrTruncated indicates a buffer ended in the middle of a field.
var ErrTruncated = errors.New("wire: truncated message")

const (
	WireVarint    = 0
	WireFixed64   = 1
	WireBytes     = 2
	WireStartDeprecated = 3
	WireFixed32   = 5
)

func AppendTag(buf []byte, fieldNum int, wireType int) []byte {
	return AppendVarint(buf, uint64(fieldNum)<<3|uint64(wireType))
}

func AppendVarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}
	return append(buf, byte(v))
}

func AppendUint32Field(buf []byte, fieldNum int, v uint32) []byte {
	if v == 0 {
		return buf
	}
	buf = AppendTag(buf, fieldNum, WireVarint)
	return AppendVarint(buf, uint64(v))
}

func AppendBoolField(buf []byte, fieldNum int, v bool) []byte {
	if !v {
		return buf
	}
	buf = AppendTag(buf, fieldNum, WireVarint)
	return append(buf, 1)
}

func AppendFixed32Field(buf []byte, fieldNum int, v uint32) []byte {
	if v == 0 {
		return buf
	}
	buf = AppendTag(buf, fieldNum, WireFixed32)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

func AppendBytesField(buf []byte, fieldNum int, v []byte) []byte {
	if len(v) == 0 {
		return buf
	}
	buf = AppendTag(buf, fieldNum, WireBytes)
	buf = AppendVarint(buf, uint64(len(v)))
	return append(buf, v...)
}

// AppendPresenceField encodes a zero-length length-delimited submessage.
// Unlike AppendBytesField, it always emits the tag: some messages (e.g. a
// oneof arm that is itself an empty struct) carry all their meaning in the
// field simply being present, so an empty payload must not be skipped.
func AppendPresenceField(buf []byte, fieldNum int) []byte {
	buf = AppendTag(buf, fieldNum, WireBytes)
	return AppendVarint(buf, 0)
}

func AppendStringField(buf []byte, fieldNum int, v string) []byte {
	return AppendBytesField(buf, fieldNum, []byte(v))
}

func AppendMessageField(buf []byte, fieldNum int, v []byte) []byte {
	if v == nil {
		return buf
	}
	return AppendBytesField(buf, fieldNum, v)
}

func AppendFloat32Field(buf []byte, fieldNum int, v float32) []byte {
	if v == 0 {
		return buf
	}
	buf = AppendTag(buf, fieldNum, WireFixed32)
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(v))
	return append(buf, tmp[:]...)
}

// ConsumeVarint reads a base-128 varint from buf, returning its value and the
// number of bytes consumed.
func ConsumeVarint(buf []byte) (v uint64, n int, err error) {
	for shift := uint(0); shift < 64; shift += 7 {
		if n >= len(buf) {
			return 0, 0, ErrTruncated
		}
		b := buf[n]
		n++
		v |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return v, n, nil
		}
	}
	return 0, 0, errors.New("wire: varint overflow")
}

// Field describes one decoded (tag, payload) pair.
type Field struct {
	Num      int
	WireType int
	Varint   uint64
	Fixed32  uint32
	Bytes    []byte
}

// Next decodes a single field starting at buf[0]. It returns the field, the
// number of bytes consumed, and an error on truncation.
func Next(buf []byte) (Field, int, error) {
	tag, n, err := ConsumeVarint(buf)
	if err != nil {
		return Field{}, 0, err
	}
	f := Field{Num: int(tag >> 3), WireType: int(tag & 0x7)}
	rest := buf[n:]
	switch f.WireType {
	case WireVarint:
		val, m, err := ConsumeVarint(rest)
		if err != nil {
			return Field{}, 0, err
		}
		f.Varint = val
		return f, n + m, nil
	case WireFixed32:
		if len(rest) < 4 {
			return Field{}, 0, ErrTruncated
		}
		f.Fixed32 = binary.LittleEndian.Uint32(rest[:4])
		return f, n + 4, nil
	case WireFixed64:
		if len(rest) < 8 {
			return Field{}, 0, ErrTruncated
		}
		return f, n + 8, nil
	case WireBytes:
		length, m, err := ConsumeVarint(rest)
		if err != nil {
			return Field{}, 0, err
		}
		start := m
		end := m + int(length)
		if end > len(rest) || end < start {
			return Field{}, 0, ErrTruncated
		}
		f.Bytes = rest[start:end]
		return f, n + end, nil
	default:
		return Field{}, 0, errors.New("wire: unsupported wire type")
	}
}

// Each calls fn once per top-level field in buf. Unrecognized fields are
// simply handed to fn, which may ignore them -- this is how unknown fields
// are "skipped" per the parsing discipline in the codec.
func Each(buf []byte, fn func(Field) error) error {
	for len(buf) > 0 {
		f, n, err := Next(buf)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
