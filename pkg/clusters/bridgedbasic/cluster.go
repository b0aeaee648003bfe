// Package bridgedbasic implements the Bridged Device Basic Information
// Cluster (0x0039).
//
// The cluster exposes the identity and reachability of a device that sits
// behind a bridge. Every attribute is read-only from the protocol side; the
// bridge updates the values locally and reports the changes.
//
// Spec Reference: Section 9.13
package bridgedbasic

import (
	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/zcl"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0039
	ClusterRevision uint16              = 2
)

// Attribute IDs (Spec 9.13.5, shared with Basic Information 11.1.5).
const (
	AttrVendorName   datamodel.AttributeID = 0x0001
	AttrProductName  datamodel.AttributeID = 0x0003
	AttrNodeLabel    datamodel.AttributeID = 0x0005
	AttrSerialNumber datamodel.AttributeID = 0x000F
	AttrReachable    datamodel.AttributeID = 0x0011
	AttrUniqueID     datamodel.AttributeID = 0x0012
)

// MaxStringLength is the longest value of the string attributes.
const MaxStringLength = 32

// State is the device state the cluster reads from.
type State interface {
	IsReachable() bool
	Name() string
	VendorName() string
	ProductName() string
	SerialNumber() string
	UniqueID() string
}

// Cluster implements the Bridged Device Basic Information cluster.
type Cluster struct {
	*datamodel.ClusterBase
	state State
}

// New creates a new Bridged Device Basic Information cluster over state.
func New(state State) *Cluster {
	attrs := []datamodel.AttributeEntry{
		datamodel.NewStringAttribute(AttrVendorName, MaxStringLength),
		datamodel.NewStringAttribute(AttrProductName, MaxStringLength),
		datamodel.NewStringAttribute(AttrNodeLabel, MaxStringLength),
		datamodel.NewStringAttribute(AttrSerialNumber, MaxStringLength),
		datamodel.NewReadOnlyAttribute(AttrReachable, zcl.TypeBoolean),
		datamodel.NewStringAttribute(AttrUniqueID, MaxStringLength),
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
	case AttrReachable:
		return datamodel.Encode(buf, func(w *zcl.Writer) error {
			return w.PutBool(c.state.IsReachable())
		})
	case AttrNodeLabel:
		return c.readString(buf, c.state.Name())
	case AttrVendorName:
		return c.readString(buf, c.state.VendorName())
	case AttrProductName:
		return c.readString(buf, c.state.ProductName())
	case AttrSerialNumber:
		return c.readString(buf, c.state.SerialNumber())
	case AttrUniqueID:
		return c.readString(buf, c.state.UniqueID())
	default:
		return 0, datamodel.ErrUnsupportedAttribute
	}
}

// WriteAttribute implements datamodel.AttributeHandler.
// All attributes of this cluster are read-only.
func (c *Cluster) WriteAttribute(id datamodel.AttributeID, buf []byte) error {
	return c.CheckWrite(id)
}

func (c *Cluster) readString(buf []byte, s string) (int, error) {
	return datamodel.Encode(buf, func(w *zcl.Writer) error {
		return w.PutCharString(s)
	})
}

var _ datamodel.AttributeHandler = (*Cluster)(nil)
