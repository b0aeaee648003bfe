package datamodel

import "fmt"

// Protocol identifiers. Their values are assigned by the Matter
// specification; the bridge treats them as opaque integers.
type (
	// EndpointID is a 16-bit endpoint identifier.
	EndpointID uint16

	// ClusterID is a 32-bit cluster identifier.
	ClusterID uint32

	// AttributeID is a 32-bit attribute identifier.
	AttributeID uint32

	// CommandID is a 32-bit command identifier.
	CommandID uint32

	// DataVersion is a 32-bit version number for cluster data.
	DataVersion uint32

	// DeviceTypeID is a 32-bit device type identifier.
	DeviceTypeID uint32
)

// ConcreteAttributePath identifies a specific attribute within a cluster.
// Spec: Section 8.2.1.1
type ConcreteAttributePath struct {
	Endpoint  EndpointID
	Cluster   ClusterID
	Attribute AttributeID
}

// String returns the path in endpoint/cluster/attribute form.
func (p ConcreteAttributePath) String() string {
	return fmt.Sprintf("%d/0x%04X/0x%04X", p.Endpoint, uint32(p.Cluster), uint32(p.Attribute))
}
