package datamodel

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/backkem/matterbridge/pkg/zcl"
)

// ClusterBase provides common functionality for attribute handlers.
// Embed it to get global attributes, data version management and
// access checks driven by the attribute list.
type ClusterBase struct {
	id          ClusterID
	revision    uint16
	dataVersion atomic.Uint32
	attrList    []AttributeEntry
}

// NewClusterBase creates a new cluster base. attrs lists the cluster-specific
// attributes; global attributes are appended automatically.
// The data version is initialized to a random value per Spec 7.10.3.
func NewClusterBase(id ClusterID, revision uint16, attrs []AttributeEntry) *ClusterBase {
	cb := &ClusterBase{
		id:       id,
		revision: revision,
		attrList: MergeAttributeLists(attrs),
	}
	cb.dataVersion.Store(randomDataVersion())
	return cb
}

// ClusterID returns the cluster ID.
func (c *ClusterBase) ClusterID() ClusterID {
	return c.id
}

// ClusterRevision returns the cluster revision.
func (c *ClusterBase) ClusterRevision() uint16 {
	return c.revision
}

// FeatureMap returns the feature map. The bridged clusters implement no
// optional features.
func (c *ClusterBase) FeatureMap() uint32 {
	return 0
}

// DataVersion returns the current data version.
func (c *ClusterBase) DataVersion() DataVersion {
	return DataVersion(c.dataVersion.Load())
}

// IncrementDataVersion increments the data version.
// Call this whenever an attribute value changes.
func (c *ClusterBase) IncrementDataVersion() {
	c.dataVersion.Add(1)
}

// AttributeList returns the attribute list including global attributes.
func (c *ClusterBase) AttributeList() []AttributeEntry {
	return c.attrList
}

// ReadGlobalAttribute handles reading of global attributes.
// Returns true if the attribute was handled, false if it's not a global attribute.
func (c *ClusterBase) ReadGlobalAttribute(id AttributeID, buf []byte) (bool, int, error) {
	switch id {
	case GlobalAttrClusterRevision:
		n, err := Encode(buf, func(w *zcl.Writer) error {
			return w.PutUint16(c.revision)
		})
		return true, n, err

	case GlobalAttrFeatureMap:
		n, err := Encode(buf, func(w *zcl.Writer) error {
			return w.PutUint32(c.FeatureMap())
		})
		return true, n, err

	default:
		return false, 0, nil
	}
}

// CheckWrite validates that id names a writable attribute of this cluster.
func (c *ClusterBase) CheckWrite(id AttributeID) error {
	entry := FindAttribute(c.attrList, id)
	if entry == nil {
		return ErrUnsupportedAttribute
	}
	if !entry.Writable {
		return ErrUnsupportedWrite
	}
	return nil
}

// Encode runs fn against a zcl.Writer over buf and returns the encoded length.
// A short buffer is reported as ErrBufferTooSmall.
func Encode(buf []byte, fn func(w *zcl.Writer) error) (int, error) {
	w := zcl.NewWriter(buf)
	if err := fn(w); err != nil {
		if errors.Is(err, zcl.ErrBufferTooSmall) {
			return 0, fmt.Errorf("%w: %w", ErrBufferTooSmall, err)
		}
		return 0, err
	}
	return w.Len(), nil
}

// Decode runs fn against a zcl.Reader over buf.
// Any decode failure is reported as ErrInvalidValue.
func Decode(buf []byte, fn func(r *zcl.Reader) error) error {
	if err := fn(zcl.NewReader(buf)); err != nil {
		if errors.Is(err, ErrInvalidValue) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return nil
}

// randomDataVersion generates a random initial data version.
func randomDataVersion() uint32 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a fixed value if random fails
		return 1
	}
	return binary.LittleEndian.Uint32(buf[:])
}
