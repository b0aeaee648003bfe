package datamodel

import "github.com/backkem/matterbridge/pkg/zcl"

// AttributeEntry describes an attribute's metadata.
type AttributeEntry struct {
	// ID is the attribute identifier.
	ID AttributeID

	// Type is the attribute storage data type.
	Type zcl.Type

	// Writable is true when the attribute accepts writes from the stack.
	Writable bool

	// MaxLength bounds string payloads in bytes. Zero for fixed-size types.
	MaxLength int
}

// NewReadOnlyAttribute creates an entry for a read-only attribute.
func NewReadOnlyAttribute(id AttributeID, typ zcl.Type) AttributeEntry {
	return AttributeEntry{ID: id, Type: typ}
}

// NewReadWriteAttribute creates an entry for a writable attribute.
func NewReadWriteAttribute(id AttributeID, typ zcl.Type) AttributeEntry {
	return AttributeEntry{ID: id, Type: typ, Writable: true}
}

// NewStringAttribute creates an entry for a read-only string attribute.
func NewStringAttribute(id AttributeID, maxLength int) AttributeEntry {
	return AttributeEntry{ID: id, Type: zcl.TypeCharString, MaxLength: maxLength}
}

// Size returns the largest encoded size of the attribute.
func (a *AttributeEntry) Size() int {
	if a.Type.IsString() {
		prefix := 1
		if a.Type == zcl.TypeLongCharString {
			prefix = 2
		}
		return prefix + a.MaxLength
	}
	return a.Type.FixedSize()
}

// MergeAttributeLists combines cluster-specific attributes with global attributes.
func MergeAttributeLists(clusterAttrs []AttributeEntry) []AttributeEntry {
	globals := GlobalAttributeEntries()
	result := make([]AttributeEntry, 0, len(clusterAttrs)+len(globals))
	result = append(result, clusterAttrs...)
	result = append(result, globals...)
	return result
}

// FindAttribute searches an attribute list for a specific attribute ID.
// Returns nil if not found.
func FindAttribute(list []AttributeEntry, id AttributeID) *AttributeEntry {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
