package zcl

import (
	"encoding/binary"
	"unicode/utf8"
)

// Reader decodes attribute values from a buffer supplied by the stack.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates a Reader over buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// next returns the next size bytes and advances the cursor.
func (r *Reader) next(size int) ([]byte, error) {
	if size > r.Remaining() {
		return nil, ErrUnexpectedEOF
	}
	b := r.buf[r.off : r.off+size]
	r.off += size
	return b, nil
}

// Bool reads a single-octet boolean. Only 0 and 1 are accepted.
func (r *Reader) Bool() (bool, error) {
	b, err := r.next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBoolean
	}
}

// Uint8 reads an 8-bit unsigned value.
func (r *Reader) Uint8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Uint16 reads a 16-bit little-endian unsigned value.
func (r *Reader) Uint16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// Uint32 reads a 32-bit little-endian unsigned value.
func (r *Reader) Uint32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Uint reads a value with the width of the given fixed-size type.
func (r *Reader) Uint(t Type) (uint64, error) {
	switch t.FixedSize() {
	case 1:
		v, err := r.Uint8()
		return uint64(v), err
	case 2:
		v, err := r.Uint16()
		return uint64(v), err
	case 4:
		v, err := r.Uint32()
		return uint64(v), err
	default:
		return 0, ErrTypeMismatch
	}
}

// CharString reads a one-octet length-prefixed string.
// A null string decodes as the empty string.
func (r *Reader) CharString() (string, error) {
	l, err := r.Uint8()
	if err != nil {
		return "", err
	}
	if l == nullCharStringLength {
		return "", nil
	}
	return r.stringBody(int(l))
}

// LongCharString reads a two-octet length-prefixed string.
// A null string decodes as the empty string.
func (r *Reader) LongCharString() (string, error) {
	l, err := r.Uint16()
	if err != nil {
		return "", err
	}
	if l == nullLongCharStringLength {
		return "", nil
	}
	return r.stringBody(int(l))
}

// Value reads a value of type t: bool for booleans, uint64 for fixed-size
// integers and string for string types.
func (r *Reader) Value(t Type) (any, error) {
	switch t {
	case TypeBoolean:
		return r.Bool()
	case TypeCharString:
		return r.CharString()
	case TypeLongCharString:
		return r.LongCharString()
	default:
		return r.Uint(t)
	}
}

func (r *Reader) stringBody(n int) (string, error) {
	b, err := r.next(n)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
