package bridge

import (
	"bytes"
	"errors"
	"testing"

	"github.com/backkem/matterbridge/pkg/clusters/bridgedbasic"
	"github.com/backkem/matterbridge/pkg/clusters/groups"
	"github.com/backkem/matterbridge/pkg/clusters/identify"
	"github.com/backkem/matterbridge/pkg/clusters/onoff"
	"github.com/backkem/matterbridge/pkg/datamodel"
)

func TestHandleRead_Globals(t *testing.T) {
	d := NewDevice("Light1")

	tests := []struct {
		cluster  datamodel.ClusterID
		revision []byte
	}{
		{bridgedbasic.ClusterID, []byte{2, 0}},
		{identify.ClusterID, []byte{4, 0}},
		{groups.ClusterID, []byte{4, 0}},
	}

	for _, tt := range tests {
		buf := make([]byte, 4)
		n, err := d.HandleReadAttribute(tt.cluster, datamodel.GlobalAttrClusterRevision, buf)
		if err != nil {
			t.Fatalf("cluster 0x%04X revision: %v", tt.cluster, err)
		}
		if !bytes.Equal(buf[:n], tt.revision) {
			t.Errorf("cluster 0x%04X revision = %x, want %x", tt.cluster, buf[:n], tt.revision)
		}

		n, err = d.HandleReadAttribute(tt.cluster, datamodel.GlobalAttrFeatureMap, buf)
		if err != nil {
			t.Fatalf("cluster 0x%04X feature map: %v", tt.cluster, err)
		}
		if !bytes.Equal(buf[:n], []byte{0, 0, 0, 0}) {
			t.Errorf("cluster 0x%04X feature map = %x, want 0", tt.cluster, buf[:n])
		}
	}
}

func TestHandleRead_Reachable(t *testing.T) {
	d := NewDevice("Light1")
	d.SetReachable(true)

	buf := make([]byte, 1)
	n, err := d.HandleReadAttribute(bridgedbasic.ClusterID, bridgedbasic.AttrReachable, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || buf[0] != 1 {
		t.Errorf("Reachable = %x, want 01", buf[:n])
	}
}

func TestHandleRead_BufferTooSmall(t *testing.T) {
	d := NewDevice("Light1")

	_, err := d.HandleReadAttribute(bridgedbasic.ClusterID, bridgedbasic.AttrNodeLabel, make([]byte, 3))
	if !errors.Is(err, datamodel.ErrBufferTooSmall) {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
	if datamodel.StatusFromError(err) != datamodel.StatusResourceExhausted {
		t.Errorf("status = %s, want ResourceExhausted", datamodel.StatusFromError(err))
	}
}

func TestHandle_UnsupportedCluster(t *testing.T) {
	d := NewDevice("Light1")

	if _, err := d.HandleReadAttribute(onoff.ClusterID, 0, make([]byte, 4)); !errors.Is(err, datamodel.ErrUnsupportedCluster) {
		t.Errorf("read err = %v, want ErrUnsupportedCluster", err)
	}
	if err := d.HandleWriteAttribute(onoff.ClusterID, 0, []byte{1}); !errors.Is(err, datamodel.ErrUnsupportedCluster) {
		t.Errorf("write err = %v, want ErrUnsupportedCluster", err)
	}
	if err := d.HandleCommand(onoff.ClusterID, onoff.CmdOn); !errors.Is(err, datamodel.ErrUnsupportedCluster) {
		t.Errorf("command err = %v, want ErrUnsupportedCluster", err)
	}
}

func TestHandleRead_UnsupportedAttributeLeavesState(t *testing.T) {
	d, rec, calls := newTestDevice(t, "Light1")
	before := d.Identity()

	for _, cluster := range []datamodel.ClusterID{bridgedbasic.ClusterID, identify.ClusterID, groups.ClusterID} {
		_, err := d.HandleReadAttribute(cluster, 0x00FE, make([]byte, 64))
		if !errors.Is(err, datamodel.ErrUnsupportedAttribute) {
			t.Errorf("cluster 0x%04X: err = %v, want ErrUnsupportedAttribute", cluster, err)
		}
	}

	if d.Identity() != before || rec.Count() != 0 || *calls != 0 {
		t.Error("unsupported read touched the device")
	}
}

func TestHandleWrite_BasicInformationNotWritable(t *testing.T) {
	d, rec, calls := newTestDevice(t, "Light1")
	before := d.Identity()

	for _, entry := range d.ClusterHandler(bridgedbasic.ClusterID).AttributeList() {
		err := d.HandleWriteAttribute(bridgedbasic.ClusterID, entry.ID, []byte{3, 'a', 'b', 'c'})
		if !errors.Is(err, datamodel.ErrUnsupportedWrite) {
			t.Errorf("write 0x%04X: err = %v, want ErrUnsupportedWrite", entry.ID, err)
		}
	}

	if d.Identity() != before || d.IsReachable() || rec.Count() != 0 || *calls != 0 {
		t.Error("rejected write touched the device")
	}
}

func TestHandleWrite_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		cluster datamodel.ClusterID
		attr    datamodel.AttributeID
		data    []byte
	}{
		{"identify time", identify.ClusterID, identify.AttrIdentifyTime, []byte{0x0A, 0x00}},
		{"identify type", identify.ClusterID, identify.AttrIdentifyType, []byte{0x03}},
		{"name support", groups.ClusterID, groups.AttrNameSupport, []byte{0x80}},
		{"name support cleared", groups.ClusterID, groups.AttrNameSupport, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, _ := newTestDevice(t, "Light1")

			if err := d.HandleWriteAttribute(tt.cluster, tt.attr, tt.data); err != nil {
				t.Fatalf("write: %v", err)
			}
			buf := make([]byte, 8)
			n, err := d.HandleReadAttribute(tt.cluster, tt.attr, buf)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if !bytes.Equal(buf[:n], tt.data) {
				t.Errorf("read back %x, want %x", buf[:n], tt.data)
			}
		})
	}
}

func TestGroupsNameSupportScenario(t *testing.T) {
	d, rec, calls := newTestDevice(t, "Light1")

	if err := d.HandleWriteAttribute(groups.ClusterID, groups.AttrNameSupport, []byte{0x80}); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 1)
	n, err := d.HandleReadAttribute(groups.ClusterID, groups.AttrNameSupport, buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 || buf[0] != 0x80 {
		t.Errorf("NameSupport = %x, want 80", buf[:n])
	}
	if d.GroupsNameSupport() != groups.NameSupportGroupNames {
		t.Errorf("GroupsNameSupport() = 0x%02X", uint8(d.GroupsNameSupport()))
	}
	if rec.Count() != 1 || *calls != 1 {
		t.Errorf("reports=%d callbacks=%d, want 1/1", rec.Count(), *calls)
	}

	// Same value again: no notification.
	d.HandleWriteAttribute(groups.ClusterID, groups.AttrNameSupport, []byte{0x80})
	if rec.Count() != 1 || *calls != 1 {
		t.Errorf("no-op write: reports=%d callbacks=%d, want 1/1", rec.Count(), *calls)
	}
}

func TestHandleWrite_IdentifyTimeStartsIdentify(t *testing.T) {
	d, rec, _ := newTestDevice(t, "Light1")

	if err := d.HandleWriteAttribute(identify.ClusterID, identify.AttrIdentifyTime, []byte{0x05, 0x00}); err != nil {
		t.Fatal(err)
	}
	if !d.GetIdentifyInProgress() || d.IdentifyTime() != 5 {
		t.Errorf("identifying=%v time=%d, want true/5", d.GetIdentifyInProgress(), d.IdentifyTime())
	}
	if rec.Count() != 1 {
		t.Errorf("reports = %d, want 1", rec.Count())
	}
}

func TestHandleWrite_InvalidValue(t *testing.T) {
	d, rec, calls := newTestDevice(t, "Light1")

	tests := []struct {
		name    string
		cluster datamodel.ClusterID
		attr    datamodel.AttributeID
		data    []byte
	}{
		{"short identify time", identify.ClusterID, identify.AttrIdentifyTime, []byte{0x05}},
		{"identify type out of range", identify.ClusterID, identify.AttrIdentifyType, []byte{0x09}},
		{"reserved name support bits", groups.ClusterID, groups.AttrNameSupport, []byte{0x81}},
		{"empty name support", groups.ClusterID, groups.AttrNameSupport, nil},
	}

	for _, tt := range tests {
		err := d.HandleWriteAttribute(tt.cluster, tt.attr, tt.data)
		if !errors.Is(err, datamodel.ErrInvalidValue) {
			t.Errorf("%s: err = %v, want ErrInvalidValue", tt.name, err)
		}
		if datamodel.StatusFromError(err) != datamodel.StatusConstraintError {
			t.Errorf("%s: status = %s, want ConstraintError", tt.name, datamodel.StatusFromError(err))
		}
	}

	if d.IdentifyTime() != 0 || d.IdentifyType() != identify.TypeNone || d.GroupsNameSupport() != 0 {
		t.Error("invalid write mutated the device")
	}
	if rec.Count() != 0 || *calls != 0 {
		t.Errorf("reports=%d callbacks=%d, want 0/0", rec.Count(), *calls)
	}
}

// levelHandler is a minimal device-specific cluster.
type levelHandler struct {
	*datamodel.ClusterBase
	level uint8
}

func newLevelHandler() *levelHandler {
	return &levelHandler{
		ClusterBase: datamodel.NewClusterBase(0x0008, 5, []datamodel.AttributeEntry{
			datamodel.NewReadOnlyAttribute(0x0000, 0x20),
		}),
		level: 0xFE,
	}
}

func (h *levelHandler) ReadAttribute(id datamodel.AttributeID, buf []byte) (int, error) {
	if handled, n, err := h.ReadGlobalAttribute(id, buf); handled {
		return n, err
	}
	if id != 0x0000 {
		return 0, datamodel.ErrUnsupportedAttribute
	}
	if len(buf) < 1 {
		return 0, datamodel.ErrBufferTooSmall
	}
	buf[0] = h.level
	return 1, nil
}

func (h *levelHandler) WriteAttribute(id datamodel.AttributeID, buf []byte) error {
	return h.CheckWrite(id)
}

func TestAddClusterHandler(t *testing.T) {
	d := NewDevice("Dimmer")

	if err := d.AddClusterHandler(newLevelHandler()); err != nil {
		t.Fatal(err)
	}
	if err := d.AddClusterHandler(newLevelHandler()); !errors.Is(err, datamodel.ErrClusterExists) {
		t.Errorf("duplicate err = %v, want ErrClusterExists", err)
	}
	if err := d.AddClusterHandler(identify.New(d)); !errors.Is(err, datamodel.ErrClusterExists) {
		t.Errorf("duplicate identify err = %v, want ErrClusterExists", err)
	}

	buf := make([]byte, 1)
	n, err := d.HandleReadAttribute(0x0008, 0x0000, buf)
	if err != nil || n != 1 || buf[0] != 0xFE {
		t.Errorf("level read = %x, %v", buf[:n], err)
	}

	if err := d.HandleCommand(0x0008, 0x00); !errors.Is(err, datamodel.ErrUnsupportedCommand) {
		t.Errorf("command err = %v, want ErrUnsupportedCommand", err)
	}

	var ids []datamodel.ClusterID
	for _, h := range d.ClusterHandlers() {
		ids = append(ids, h.ClusterID())
	}
	want := []datamodel.ClusterID{bridgedbasic.ClusterID, identify.ClusterID, groups.ClusterID, 0x0008}
	if len(ids) != len(want) {
		t.Fatalf("handlers = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("handlers = %v, want %v", ids, want)
			break
		}
	}
}
