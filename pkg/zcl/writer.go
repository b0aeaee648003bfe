package zcl

import (
	"encoding/binary"
	"unicode/utf8"
)

// Writer encodes attribute values into a caller-owned buffer.
// The buffer length is the hard upper bound: a value that does not fit is
// rejected with ErrBufferTooSmall and the buffer is left untouched.
type Writer struct {
	buf []byte
	n   int
}

// NewWriter creates a Writer that encodes into buf.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return w.n
}

// Available returns the number of bytes still free in the buffer.
func (w *Writer) Available() int {
	return len(w.buf) - w.n
}

// Bytes returns the encoded bytes.
func (w *Writer) Bytes() []byte {
	return w.buf[:w.n]
}

// reserve returns the next size bytes of the buffer and advances the cursor.
func (w *Writer) reserve(size int) ([]byte, error) {
	if size > w.Available() {
		return nil, ErrBufferTooSmall
	}
	b := w.buf[w.n : w.n+size]
	w.n += size
	return b, nil
}

// PutBool writes a boolean as a single octet.
func (w *Writer) PutBool(v bool) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = 0
	if v {
		b[0] = 1
	}
	return nil
}

// PutUint8 writes an 8-bit unsigned value (int8u, enum8, bitmap8).
func (w *Writer) PutUint8(v uint8) error {
	b, err := w.reserve(1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

// PutUint16 writes a 16-bit unsigned value (int16u, enum16, bitmap16).
func (w *Writer) PutUint16(v uint16) error {
	b, err := w.reserve(2)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b, v)
	return nil
}

// PutUint32 writes a 32-bit unsigned value (int32u, bitmap32).
func (w *Writer) PutUint32(v uint32) error {
	b, err := w.reserve(4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

// PutCharString writes s with a one-octet length prefix.
func (w *Writer) PutCharString(s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	if len(s) > TypeCharString.MaxStringLength() {
		return ErrStringTooLong
	}
	b, err := w.reserve(1 + len(s))
	if err != nil {
		return err
	}
	b[0] = byte(len(s))
	copy(b[1:], s)
	return nil
}
