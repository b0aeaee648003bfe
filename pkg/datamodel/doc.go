// Package datamodel provides the identifiers, attribute metadata and handler
// interfaces shared by the bridged-device clusters (Spec Chapter 7).
//
// A bridged endpoint is served by one AttributeHandler per cluster. Handlers
// embed ClusterBase for the global attributes, data version and write checks,
// and exchange values in the attribute-storage layout of package zcl.
// Errors returned by handlers map onto Interaction Model status codes through
// StatusFromError.
//
// Spec References:
//   - Section 7.10: Cluster
//   - Section 7.12: Attribute
//   - Section 7.13: Global Elements
//   - Section 8.10: Status Codes
package datamodel
