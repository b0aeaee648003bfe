package bridge

import (
	"reflect"
	"testing"

	"github.com/backkem/matterbridge/pkg/clusters/bridgedbasic"
	"github.com/backkem/matterbridge/pkg/clusters/identify"
	"github.com/backkem/matterbridge/pkg/datamodel"
)

func TestChangeMask_Bits(t *testing.T) {
	// The first six bits are fixed.
	tests := []struct {
		m    ChangeMask
		want ChangeMask
	}{
		{ChangeReachable, 1 << 0},
		{ChangeLocation, 1 << 1},
		{ChangeName, 1 << 2},
		{ChangeVendorName, 1 << 3},
		{ChangeProductName, 1 << 4},
		{ChangeSerialNumber, 1 << 5},
	}
	for _, tt := range tests {
		if tt.m != tt.want {
			t.Errorf("%s = 0x%X, want 0x%X", tt.m, uint32(tt.m), uint32(tt.want))
		}
	}
}

func TestChangeMask_Paths(t *testing.T) {
	m := ChangeSerialNumber | ChangeReachable | ChangeLocation | ChangeIdentifyTime
	got := m.Paths(3)
	want := []datamodel.ConcreteAttributePath{
		{Endpoint: 3, Cluster: bridgedbasic.ClusterID, Attribute: bridgedbasic.AttrReachable},
		{Endpoint: 3, Cluster: bridgedbasic.ClusterID, Attribute: bridgedbasic.AttrSerialNumber},
		{Endpoint: 3, Cluster: identify.ClusterID, Attribute: identify.AttrIdentifyTime},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
}

func TestChangeMask_NoAttribute(t *testing.T) {
	m := ChangeLocation | ChangeOnline
	if paths := m.Paths(3); len(paths) != 0 {
		t.Errorf("Paths() = %v, want none", paths)
	}
	if ids := m.Clusters(); len(ids) != 0 {
		t.Errorf("Clusters() = %v, want none", ids)
	}
}

func TestChangeMask_Clusters(t *testing.T) {
	m := ChangeName | ChangeVendorName | ChangeIdentifyType
	want := []datamodel.ClusterID{bridgedbasic.ClusterID, identify.ClusterID}
	if got := m.Clusters(); !reflect.DeepEqual(got, want) {
		t.Errorf("Clusters() = %v, want %v", got, want)
	}
}

func TestChangeMask_String(t *testing.T) {
	if got := ChangeMask(0).String(); got != "None" {
		t.Errorf("String() = %q, want None", got)
	}
	if got := (ChangeName | ChangeReachable).String(); got != "Reachable|Name" {
		t.Errorf("String() = %q, want Reachable|Name", got)
	}
	if !(ChangeName | ChangeReachable).Has(ChangeName) {
		t.Error("Has(ChangeName) = false")
	}
}
