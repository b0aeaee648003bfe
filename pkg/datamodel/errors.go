package datamodel

import "errors"

// Errors returned by attribute access. They form the taxonomy the external
// stack sees through StatusFromError.
var (
	// ErrUnsupportedCluster indicates no handler serves the requested cluster.
	ErrUnsupportedCluster = errors.New("unsupported cluster")

	// ErrUnsupportedAttribute indicates the attribute is not supported by the cluster.
	ErrUnsupportedAttribute = errors.New("unsupported attribute")

	// ErrUnsupportedWrite indicates the attribute exists but is not writable.
	ErrUnsupportedWrite = errors.New("unsupported write")

	// ErrBufferTooSmall indicates the encoded value exceeds the read buffer.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrInvalidValue indicates a written value failed to decode or is out of range.
	ErrInvalidValue = errors.New("invalid value")

	// ErrClusterExists indicates a handler for the cluster is already registered.
	ErrClusterExists = errors.New("cluster already exists")

	// ErrEndpointNotFound indicates the requested endpoint does not exist.
	ErrEndpointNotFound = errors.New("endpoint not found")

	// ErrEndpointExists indicates an endpoint with the same ID already exists.
	ErrEndpointExists = errors.New("endpoint already exists")
)

// ErrUnsupportedCommand indicates the command is not supported by the cluster.
var ErrUnsupportedCommand = errors.New("unsupported command")
