package zcl

import "errors"

var (
	// ErrBufferTooSmall is returned when encoding a value would exceed the
	// caller-supplied buffer length.
	ErrBufferTooSmall = errors.New("zcl: buffer too small")

	// ErrUnexpectedEOF is returned when the input ends before a complete value.
	ErrUnexpectedEOF = errors.New("zcl: unexpected end of input")

	// ErrStringTooLong is returned when a string does not fit its length prefix.
	ErrStringTooLong = errors.New("zcl: string too long")

	// ErrInvalidBoolean is returned when a boolean octet is neither 0 nor 1.
	ErrInvalidBoolean = errors.New("zcl: invalid boolean value")

	// ErrInvalidUTF8 is returned when a character string is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("zcl: invalid UTF-8 string")
)

// ErrTypeMismatch is returned when a value is encoded or decoded as a type
// that does not fit the operation.
var ErrTypeMismatch = errors.New("zcl: type mismatch")
