// Package onoff implements the attribute side of the On/Off Cluster (0x0006)
// for bridged devices.
//
// The On/Off cluster provides commands and attributes to control
// an on/off state, such as a light switch or power outlet. The bridged
// device owns the state; this handler exposes it to the stack and applies
// On, Off and Toggle commands through the device.
package onoff

import (
	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/zcl"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0006
	ClusterRevision uint16              = 6
)

// Attribute IDs.
const (
	AttrOnOff datamodel.AttributeID = 0x0000
)

// Command IDs.
const (
	CmdOff    datamodel.CommandID = 0x00
	CmdOn     datamodel.CommandID = 0x01
	CmdToggle datamodel.CommandID = 0x02
)

// State is the device state the cluster reads and drives.
type State interface {
	IsOn() bool
	SetOn(on bool) error
}

// Cluster implements the On/Off cluster attributes and basic commands.
type Cluster struct {
	*datamodel.ClusterBase
	state State
}

// New creates a new On/Off cluster over state.
func New(state State) *Cluster {
	attrs := []datamodel.AttributeEntry{
		// OnOff changes through commands only.
		datamodel.NewReadOnlyAttribute(AttrOnOff, zcl.TypeBoolean),
	}

	return &Cluster{
		ClusterBase: datamodel.NewClusterBase(ClusterID, ClusterRevision, attrs),
		state:       state,
	}
}

// ReadAttribute implements datamodel.AttributeHandler.
func (c *Cluster) ReadAttribute(id datamodel.AttributeID, buf []byte) (int, error) {
	if handled, n, err := c.ReadGlobalAttribute(id, buf); handled {
		return n, err
	}

	switch id {
	case AttrOnOff:
		return datamodel.Encode(buf, func(w *zcl.Writer) error {
			return w.PutBool(c.state.IsOn())
		})
	default:
		return 0, datamodel.ErrUnsupportedAttribute
	}
}

// WriteAttribute implements datamodel.AttributeHandler.
func (c *Cluster) WriteAttribute(id datamodel.AttributeID, buf []byte) error {
	return c.CheckWrite(id)
}

// InvokeCommand executes an On, Off or Toggle command.
func (c *Cluster) InvokeCommand(cmd datamodel.CommandID) error {
	switch cmd {
	case CmdOff:
		return c.state.SetOn(false)
	case CmdOn:
		return c.state.SetOn(true)
	case CmdToggle:
		return c.state.SetOn(!c.state.IsOn())
	default:
		return datamodel.ErrUnsupportedCommand
	}
}

var _ datamodel.AttributeHandler = (*Cluster)(nil)
