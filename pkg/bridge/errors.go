package bridge

import "errors"

// Package-level errors.
var (
	// ErrInvalidConfig is returned when Config validation fails.
	ErrInvalidConfig = errors.New("bridge: invalid configuration")

	// ErrUnknownDeviceType is returned when a device type name is not recognized.
	ErrUnknownDeviceType = errors.New("bridge: unknown device type")

	// ErrNoFreeEndpoint is returned when the dynamic endpoint range is exhausted.
	ErrNoFreeEndpoint = errors.New("bridge: no free endpoint")

	// ErrDeviceRegistered is returned when a device is added to a bridge twice.
	ErrDeviceRegistered = errors.New("bridge: device already registered")
)
