package datamodel

import "github.com/backkem/matterbridge/pkg/zcl"

// Global attribute IDs present on every cluster instance.
// Spec: Section 7.13, Table 93
const (
	// GlobalAttrClusterRevision (0xFFFD) indicates the cluster revision.
	GlobalAttrClusterRevision AttributeID = 0xFFFD

	// GlobalAttrFeatureMap (0xFFFC) indicates supported optional features.
	GlobalAttrFeatureMap AttributeID = 0xFFFC
)

// GlobalAttributeEntries returns the global attribute entries served by
// ClusterBase for every handler.
func GlobalAttributeEntries() []AttributeEntry {
	return []AttributeEntry{
		NewReadOnlyAttribute(GlobalAttrFeatureMap, zcl.TypeBitmap32),
		NewReadOnlyAttribute(GlobalAttrClusterRevision, zcl.TypeUint16),
	}
}

// EndpointInvalid marks an endpoint that has not been assigned yet.
const EndpointInvalid EndpointID = 0xFFFF
