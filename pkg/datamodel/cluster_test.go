package datamodel

import (
	"bytes"
	"errors"
	"testing"

	"github.com/backkem/matterbridge/pkg/zcl"
)

const testClusterID ClusterID = 0x0006

func newTestBase() *ClusterBase {
	return NewClusterBase(testClusterID, 4, []AttributeEntry{
		NewReadOnlyAttribute(0x0000, zcl.TypeBoolean),
		NewReadWriteAttribute(0x4001, zcl.TypeUint16),
	})
}

func TestClusterBase_New(t *testing.T) {
	cb := newTestBase()

	if cb.ClusterID() != testClusterID {
		t.Errorf("ClusterID() = %v, want 0x0006", cb.ClusterID())
	}
	if cb.ClusterRevision() != 4 {
		t.Errorf("ClusterRevision() = %v, want 4", cb.ClusterRevision())
	}
	if cb.FeatureMap() != 0 {
		t.Errorf("FeatureMap() = %v, want 0", cb.FeatureMap())
	}

	// 2 cluster attributes + FeatureMap + ClusterRevision
	if len(cb.AttributeList()) != 4 {
		t.Errorf("len(AttributeList()) = %d, want 4", len(cb.AttributeList()))
	}
}

func TestClusterBase_DataVersion(t *testing.T) {
	cb := newTestBase()

	initial := cb.DataVersion()
	cb.IncrementDataVersion()

	if cb.DataVersion() != initial+1 {
		t.Errorf("After increment: DataVersion() = %v, want %v", cb.DataVersion(), initial+1)
	}
}

func TestClusterBase_ReadGlobalAttribute(t *testing.T) {
	cb := newTestBase()

	tests := []struct {
		name string
		id   AttributeID
		want []byte
	}{
		{"ClusterRevision", GlobalAttrClusterRevision, []byte{0x04, 0x00}},
		{"FeatureMap", GlobalAttrFeatureMap, []byte{0x00, 0x00, 0x00, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, 8)
			handled, n, err := cb.ReadGlobalAttribute(tt.id, buf)
			if !handled {
				t.Fatal("expected attribute to be handled")
			}
			if err != nil {
				t.Fatalf("ReadGlobalAttribute failed: %v", err)
			}
			if !bytes.Equal(buf[:n], tt.want) {
				t.Errorf("encoded = %x, want %x", buf[:n], tt.want)
			}
		})
	}
}

func TestClusterBase_ReadGlobalAttribute_NotGlobal(t *testing.T) {
	cb := newTestBase()

	handled, _, err := cb.ReadGlobalAttribute(0x0000, make([]byte, 8))
	if handled || err != nil {
		t.Errorf("ReadGlobalAttribute(0x0000) = %v, %v; want false, nil", handled, err)
	}
}

func TestClusterBase_ReadGlobalAttribute_BufferTooSmall(t *testing.T) {
	cb := newTestBase()

	_, _, err := cb.ReadGlobalAttribute(GlobalAttrFeatureMap, make([]byte, 3))
	if !errors.Is(err, ErrBufferTooSmall) {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
	if !errors.Is(err, zcl.ErrBufferTooSmall) {
		t.Errorf("err = %v, want wrapped zcl.ErrBufferTooSmall", err)
	}
}

func TestClusterBase_CheckWrite(t *testing.T) {
	cb := newTestBase()

	tests := []struct {
		name string
		id   AttributeID
		want error
	}{
		{"writable", 0x4001, nil},
		{"read-only", 0x0000, ErrUnsupportedWrite},
		{"global", GlobalAttrClusterRevision, ErrUnsupportedWrite},
		{"unknown", 0x1234, ErrUnsupportedAttribute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cb.CheckWrite(tt.id); !errors.Is(err, tt.want) {
				t.Errorf("CheckWrite(0x%04X) = %v, want %v", tt.id, err, tt.want)
			}
		})
	}
}

func TestDecode_WrapsInvalidValue(t *testing.T) {
	err := Decode([]byte{0x05}, func(r *zcl.Reader) error {
		_, err := r.Bool()
		return err
	})
	if !errors.Is(err, ErrInvalidValue) {
		t.Errorf("err = %v, want ErrInvalidValue", err)
	}
	if !errors.Is(err, zcl.ErrInvalidBoolean) {
		t.Errorf("err = %v, want wrapped zcl.ErrInvalidBoolean", err)
	}
}

func TestDecode_PassesInvalidValueThrough(t *testing.T) {
	err := Decode(nil, func(r *zcl.Reader) error {
		return ErrInvalidValue
	})
	if err != ErrInvalidValue {
		t.Errorf("err = %v, want ErrInvalidValue unwrapped", err)
	}
}
