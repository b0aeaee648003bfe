package bridge

import (
	"fmt"

	"github.com/backkem/matterbridge/pkg/clusters/identify"
	"github.com/backkem/matterbridge/pkg/datamodel"
)

// DefaultIdentifyTime is the identify duration in seconds used when an
// identify cycle starts without a configured time.
const DefaultIdentifyTime uint16 = 15

// HandleIdentifyStart enters the identifying state. If no identify time is
// set, DefaultIdentifyTime is used. Starting while identifying is a no-op.
func (d *Device) HandleIdentifyStart() error {
	if d.identifyInProgress {
		return nil
	}

	d.identifyInProgress = true
	if d.identifyTime == 0 {
		d.identifyTime = DefaultIdentifyTime
	}

	if d.log != nil {
		d.log.Infof("device %q: identify started for %ds", d.Name(), d.identifyTime)
	}
	return d.handleDeviceStatusChanged(ChangeIdentifyTime)
}

// HandleIdentifyStop leaves the identifying state and clears the identify time.
func (d *Device) HandleIdentifyStop() error {
	if !d.identifyInProgress && d.identifyTime == 0 {
		return nil
	}

	d.identifyInProgress = false
	d.identifyTime = 0

	if d.log != nil {
		d.log.Infof("device %q: identify stopped", d.Name())
	}
	return d.handleDeviceStatusChanged(ChangeIdentifyTime)
}

// GetIdentifyInProgress reports whether an identify cycle is running.
func (d *Device) GetIdentifyInProgress() bool {
	return d.identifyInProgress
}

// IdentifyTime returns the remaining identify time in seconds.
func (d *Device) IdentifyTime() uint16 {
	return d.identifyTime
}

// SetIdentifyTime sets the remaining identify time. A non-zero time starts
// identifying and zero stops it, which is how the stack's countdown ends a
// cycle.
func (d *Device) SetIdentifyTime(seconds uint16) error {
	if d.identifyTime == seconds {
		return nil
	}

	wasIdentifying := d.identifyInProgress
	d.identifyTime = seconds
	d.identifyInProgress = seconds > 0

	if d.log != nil && wasIdentifying != d.identifyInProgress {
		d.log.Infof("device %q: identify in progress %v", d.Name(), d.identifyInProgress)
	}
	return d.handleDeviceStatusChanged(ChangeIdentifyTime)
}

// IdentifyType returns the identify effect type.
func (d *Device) IdentifyType() identify.Type {
	return d.identifyType
}

// SetIdentifyType sets the identify effect type.
// Undefined types are rejected with ErrInvalidValue.
func (d *Device) SetIdentifyType(t identify.Type) error {
	if !t.IsValid() {
		return fmt.Errorf("%w: identify type %d", datamodel.ErrInvalidValue, uint8(t))
	}
	if d.identifyType == t {
		return nil
	}
	d.identifyType = t
	return d.handleDeviceStatusChanged(ChangeIdentifyType)
}
