package datamodel

import "errors"

// Status is an Interaction Model status code returned to the external stack.
// Spec: Section 8.10, Table 8-36
type Status uint8

const (
	StatusSuccess              Status = 0x00
	StatusFailure              Status = 0x01
	StatusUnsupportedEndpoint  Status = 0x7f
	StatusUnsupportedCommand   Status = 0x81
	StatusUnsupportedAttribute Status = 0x86
	StatusConstraintError      Status = 0x87
	StatusUnsupportedWrite     Status = 0x88
	StatusResourceExhausted    Status = 0x89
	StatusUnsupportedCluster   Status = 0xc3
)

// String returns the name of the status code.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusFailure:
		return "Failure"
	case StatusUnsupportedEndpoint:
		return "UnsupportedEndpoint"
	case StatusUnsupportedCommand:
		return "UnsupportedCommand"
	case StatusUnsupportedAttribute:
		return "UnsupportedAttribute"
	case StatusConstraintError:
		return "ConstraintError"
	case StatusUnsupportedWrite:
		return "UnsupportedWrite"
	case StatusResourceExhausted:
		return "ResourceExhausted"
	case StatusUnsupportedCluster:
		return "UnsupportedCluster"
	default:
		return "Unknown"
	}
}

// StatusFromError maps an attribute access error onto the status code the
// stack reports to the peer. A nil error is Success.
func StatusFromError(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrUnsupportedCluster):
		return StatusUnsupportedCluster
	case errors.Is(err, ErrUnsupportedAttribute):
		return StatusUnsupportedAttribute
	case errors.Is(err, ErrUnsupportedWrite):
		return StatusUnsupportedWrite
	case errors.Is(err, ErrBufferTooSmall):
		return StatusResourceExhausted
	case errors.Is(err, ErrInvalidValue):
		return StatusConstraintError
	case errors.Is(err, ErrUnsupportedCommand):
		return StatusUnsupportedCommand
	case errors.Is(err, ErrEndpointNotFound):
		return StatusUnsupportedEndpoint
	default:
		return StatusFailure
	}
}
