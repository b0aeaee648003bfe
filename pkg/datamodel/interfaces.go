package datamodel

// AttributeHandler serves attribute access for one cluster on a bridged
// endpoint. The bridge ships handlers for Bridged Device Basic Information,
// Identify and Groups; device types add their own (On/Off, Level Control, ...)
// through the same interface.
//
// Handlers exchange values in the attribute-storage layout of package zcl.
type AttributeHandler interface {
	// ClusterID returns the cluster this handler serves.
	ClusterID() ClusterID

	// ClusterRevision returns the implemented cluster revision (0xFFFD).
	ClusterRevision() uint16

	// FeatureMap returns the supported features bitmap (0xFFFC).
	FeatureMap() uint32

	// DataVersion returns the current cluster data version.
	DataVersion() DataVersion

	// IncrementDataVersion bumps the data version after a value change.
	IncrementDataVersion()

	// AttributeList returns metadata for all supported attributes,
	// global attributes included.
	AttributeList() []AttributeEntry

	// ReadAttribute encodes the attribute's current value into buf and
	// returns the number of bytes written. len(buf) is the maximum read
	// length; a value that does not fit yields ErrBufferTooSmall.
	ReadAttribute(id AttributeID, buf []byte) (int, error)

	// WriteAttribute decodes a value from buf and applies it.
	// Returns ErrUnsupportedWrite for read-only attributes and
	// ErrUnsupportedAttribute for unknown ones.
	WriteAttribute(id AttributeID, buf []byte) error
}

// AttributeChangeListener is notified when attribute values change.
// Used for subscription reporting.
type AttributeChangeListener interface {
	// OnAttributeChanged is called when an attribute value changes.
	OnAttributeChanged(path ConcreteAttributePath)
}
