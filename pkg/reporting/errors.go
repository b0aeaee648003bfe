package reporting

import "errors"

var (
	// ErrQueueFull is returned when the work queue has no free slot.
	ErrQueueFull = errors.New("reporting: work queue full")

	// ErrQueueClosed is returned when scheduling on a stopped queue.
	ErrQueueClosed = errors.New("reporting: work queue closed")

	// ErrAlreadyStarted is returned when Start is called twice.
	ErrAlreadyStarted = errors.New("reporting: work queue already started")

	// ErrNoListener is returned when a Reporter is created without a listener.
	ErrNoListener = errors.New("reporting: listener is required")

	// ErrNoQueue is returned when a Reporter is created without a work scheduler.
	ErrNoQueue = errors.New("reporting: work scheduler is required")
)
