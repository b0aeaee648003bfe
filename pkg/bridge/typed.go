package bridge

import (
	"github.com/backkem/matterbridge/pkg/clusters/onoff"
)

// OnOffDevice is a Device with an On/Off cluster.
type OnOffDevice struct {
	*Device
	on bool
}

// NewLightbulb creates an on/off light.
func NewLightbulb(name string, opts ...Option) *OnOffDevice {
	return newOnOffDevice(name, DeviceTypeLightbulb, opts)
}

// NewPluginUnit creates an on/off plug-in unit.
func NewPluginUnit(name string, opts ...Option) *OnOffDevice {
	return newOnOffDevice(name, DeviceTypeOnOffPluginUnit, opts)
}

func newOnOffDevice(name string, t DeviceType, opts []Option) *OnOffDevice {
	opts = append([]Option{WithDeviceType(t)}, opts...)
	d := &OnOffDevice{Device: NewDevice(name, opts...)}
	_ = d.AddClusterHandler(onoff.New(d))
	return d
}

// IsOn returns the on/off state.
func (d *OnOffDevice) IsOn() bool {
	return d.on
}

// SetOn sets the on/off state.
func (d *OnOffDevice) SetOn(on bool) error {
	if d.on == on {
		return nil
	}
	d.on = on
	return d.handleDeviceStatusChanged(ChangeOnOff)
}

var _ onoff.State = (*OnOffDevice)(nil)
