// Package groups implements the attribute side of the Groups Cluster (0x0004).
//
// Group membership itself is managed by the stack's group table; the bridged
// endpoint only exposes whether it supports group names.
//
// Spec Reference: Section 1.3
package groups

import (
	"fmt"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/zcl"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0004
	ClusterRevision uint16              = 4
)

// Attribute IDs (Spec 1.3.6).
const (
	AttrNameSupport datamodel.AttributeID = 0x0000
)

// NameSupport is the NameSupportBitmap (Spec 1.3.4.1).
type NameSupport uint8

const (
	// NameSupportGroupNames indicates group names are supported.
	NameSupportGroupNames NameSupport = 0x80
)

// IsValid returns true when no reserved bits are set.
func (n NameSupport) IsValid() bool {
	return n&^NameSupportGroupNames == 0
}

// State is the device state the cluster reads and writes.
type State interface {
	GroupsNameSupport() NameSupport
	SetGroupsNameSupport(n NameSupport) error
}

// Cluster implements the Groups cluster attributes.
type Cluster struct {
	*datamodel.ClusterBase
	state State
}

// New creates a new Groups cluster over state.
func New(state State) *Cluster {
	attrs := []datamodel.AttributeEntry{
		datamodel.NewReadWriteAttribute(AttrNameSupport, zcl.TypeBitmap8),
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
	case AttrNameSupport:
		return datamodel.Encode(buf, func(w *zcl.Writer) error {
			return w.PutUint8(uint8(c.state.GroupsNameSupport()))
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

	var n NameSupport
	if err := datamodel.Decode(buf, func(r *zcl.Reader) error {
		v, err := r.Uint8()
		if err != nil {
			return err
		}
		n = NameSupport(v)
		if !n.IsValid() {
			return fmt.Errorf("%w: name support 0x%02X", datamodel.ErrInvalidValue, v)
		}
		return nil
	}); err != nil {
		return err
	}

	return c.state.SetGroupsNameSupport(n)
}

var _ datamodel.AttributeHandler = (*Cluster)(nil)
