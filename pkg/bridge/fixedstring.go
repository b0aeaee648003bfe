package bridge

import (
	"strings"
	"unicode/utf8"
)

// DeviceDescStrSize is the capacity of a FixedString buffer, terminator included.
const DeviceDescStrSize = 32

// MaxFixedStringLength is the longest value a FixedString keeps.
const MaxFixedStringLength = DeviceDescStrSize - 1

// FixedString is a bounded identity string with the storage layout of a
// DeviceDescStrSize character array.
//
// Values longer than MaxFixedStringLength bytes are truncated silently to the
// longest prefix that fits and ends on a UTF-8 rune boundary. Invalid UTF-8
// sequences are dropped.
// The zero value is an empty string.
type FixedString struct {
	buf [DeviceDescStrSize]byte
	n   uint8
}

// NewFixedString returns a FixedString holding s, truncated if needed.
func NewFixedString(s string) FixedString {
	var f FixedString
	f.Set(s)
	return f
}

// TruncateFixed returns the value a FixedString stores for s.
func TruncateFixed(s string) string {
	return truncateUTF8(s, MaxFixedStringLength)
}

// truncateUTF8 drops invalid UTF-8 from s and cuts it to at most max bytes
// on a rune boundary.
func truncateUTF8(s string, max int) string {
	s = strings.ToValidUTF8(s, "")
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Set stores s and reports whether the stored value changed.
func (f *FixedString) Set(s string) bool {
	s = TruncateFixed(s)
	if s == f.String() {
		return false
	}

	f.buf = [DeviceDescStrSize]byte{}
	f.n = uint8(copy(f.buf[:MaxFixedStringLength], s))
	return true
}

// String returns the stored value.
func (f FixedString) String() string {
	return string(f.buf[:f.n])
}

// Len returns the stored length in bytes.
func (f FixedString) Len() int {
	return int(f.n)
}

// Bytes returns a copy of the whole buffer. The byte after the value is
// always zero.
func (f FixedString) Bytes() []byte {
	out := make([]byte, DeviceDescStrSize)
	copy(out, f.buf[:])
	return out
}
