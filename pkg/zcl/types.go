// Package zcl encodes and decodes attribute values in the attribute-storage
// buffer layout used by the bridge's external stack.
//
// Values are stored without tags: integers are fixed width little-endian,
// booleans take a single octet and character strings carry a length prefix
// (one octet for CharString, two for LongCharString) followed by the UTF-8
// bytes. A length prefix of all ones marks an invalid (null) string.
//
// Every encode operation is bounded by the length of the destination buffer,
// which plays the role of the stack's maxReadLength.
package zcl

// Type is an attribute data type identifier.
type Type uint8

// Attribute data types used by the bridged device clusters.
const (
	TypeBoolean        Type = 0x10
	TypeBitmap8        Type = 0x18
	TypeBitmap16       Type = 0x19
	TypeBitmap32       Type = 0x1B
	TypeUint8          Type = 0x20
	TypeUint16         Type = 0x21
	TypeUint32         Type = 0x23
	TypeEnum8          Type = 0x30
	TypeEnum16         Type = 0x31
	TypeCharString     Type = 0x42
	TypeLongCharString Type = 0x44
)

// Null length prefixes.
const (
	nullCharStringLength     = 0xFF
	nullLongCharStringLength = 0xFFFF
)

// String returns the name of the data type.
func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeBitmap8:
		return "bitmap8"
	case TypeBitmap16:
		return "bitmap16"
	case TypeBitmap32:
		return "bitmap32"
	case TypeUint8:
		return "int8u"
	case TypeUint16:
		return "int16u"
	case TypeUint32:
		return "int32u"
	case TypeEnum8:
		return "enum8"
	case TypeEnum16:
		return "enum16"
	case TypeCharString:
		return "char_string"
	case TypeLongCharString:
		return "long_char_string"
	default:
		return "unknown"
	}
}

// FixedSize returns the encoded width of a fixed-size type in bytes.
// Returns 0 for string types.
func (t Type) FixedSize() int {
	switch t {
	case TypeBoolean, TypeBitmap8, TypeUint8, TypeEnum8:
		return 1
	case TypeBitmap16, TypeUint16, TypeEnum16:
		return 2
	case TypeBitmap32, TypeUint32:
		return 4
	default:
		return 0
	}
}

// IsString returns true for length-prefixed string types.
func (t Type) IsString() bool {
	return t == TypeCharString || t == TypeLongCharString
}

// MaxStringLength returns the longest string payload a string type can carry.
// The all-ones prefix is reserved for null.
func (t Type) MaxStringLength() int {
	switch t {
	case TypeCharString:
		return nullCharStringLength - 1
	case TypeLongCharString:
		return nullLongCharStringLength - 1
	default:
		return 0
	}
}

// CharStringSize returns the encoded size of s as a CharString.
func CharStringSize(s string) int {
	return 1 + len(s)
}
