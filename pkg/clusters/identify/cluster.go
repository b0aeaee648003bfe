// Package identify implements the Identify Cluster (0x0003).
//
// Identify lets a commissioner ask a device to reveal its physical location,
// for example by blinking. The cluster exposes the remaining identify time and
// the kind of effect the device uses. Counting the time down and driving the
// effect belong to the stack and the hardware; writes here only update the
// device state, which decides whether an identify cycle is running.
//
// Spec Reference: Section 1.2
package identify

import (
	"fmt"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/zcl"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0003
	ClusterRevision uint16              = 4
)

// Attribute IDs (Spec 1.2.5).
const (
	AttrIdentifyTime datamodel.AttributeID = 0x0000
	AttrIdentifyType datamodel.AttributeID = 0x0001
)

// Type describes how the device identifies itself (Spec 1.2.4.1).
type Type uint8

const (
	TypeNone             Type = 0
	TypeLightOutput      Type = 1
	TypeVisibleIndicator Type = 2
	TypeAudibleBeep      Type = 3
	TypeDisplay          Type = 4
	TypeActuator         Type = 5
)

// String returns the name of the identify type.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeLightOutput:
		return "LightOutput"
	case TypeVisibleIndicator:
		return "VisibleIndicator"
	case TypeAudibleBeep:
		return "AudibleBeep"
	case TypeDisplay:
		return "Display"
	case TypeActuator:
		return "Actuator"
	default:
		return "Unknown"
	}
}

// IsValid returns true for defined identify types.
func (t Type) IsValid() bool {
	return t <= TypeActuator
}

// State is the device state the cluster reads and writes.
type State interface {
	IdentifyTime() uint16
	SetIdentifyTime(seconds uint16) error
	IdentifyType() Type
	SetIdentifyType(t Type) error
}

// Cluster implements the Identify cluster.
type Cluster struct {
	*datamodel.ClusterBase
	state State
}

// New creates a new Identify cluster over state.
func New(state State) *Cluster {
	attrs := []datamodel.AttributeEntry{
		datamodel.NewReadWriteAttribute(AttrIdentifyTime, zcl.TypeUint16),
		datamodel.NewReadWriteAttribute(AttrIdentifyType, zcl.TypeEnum8),
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
	case AttrIdentifyTime:
		return datamodel.Encode(buf, func(w *zcl.Writer) error {
			return w.PutUint16(c.state.IdentifyTime())
		})
	case AttrIdentifyType:
		return datamodel.Encode(buf, func(w *zcl.Writer) error {
			return w.PutUint8(uint8(c.state.IdentifyType()))
		})
	default:
		return 0, datamodel.ErrUnsupportedAttribute
	}
}

// WriteAttribute implements datamodel.AttributeHandler.
func (c *Cluster) WriteAttribute(id datamodel.AttributeID, buf []byte) error {
	if err := c.CheckWrite(id); err != nil {
		return err
	}

	switch id {
	case AttrIdentifyTime:
		var seconds uint16
		if err := datamodel.Decode(buf, func(r *zcl.Reader) (err error) {
			seconds, err = r.Uint16()
			return err
		}); err != nil {
			return err
		}
		return c.state.SetIdentifyTime(seconds)

	case AttrIdentifyType:
		var t Type
		if err := datamodel.Decode(buf, func(r *zcl.Reader) error {
			v, err := r.Uint8()
			if err != nil {
				return err
			}
			t = Type(v)
			if !t.IsValid() {
				return fmt.Errorf("%w: identify type %d", datamodel.ErrInvalidValue, v)
			}
			return nil
		}); err != nil {
			return err
		}
		return c.state.SetIdentifyType(t)

	default:
		return datamodel.ErrUnsupportedAttribute
	}
}

var _ datamodel.AttributeHandler = (*Cluster)(nil)
