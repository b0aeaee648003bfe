package bridgedbasic

import (
	"bytes"
	"errors"
	"testing"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/zcl"
)

// mockState implements State for testing.
type mockState struct {
	reachable bool
	name      string
	vendor    string
	product   string
	serial    string
	uniqueID  string
}

func (s *mockState) IsReachable() bool    { return s.reachable }
func (s *mockState) Name() string         { return s.name }
func (s *mockState) VendorName() string   { return s.vendor }
func (s *mockState) ProductName() string  { return s.product }
func (s *mockState) SerialNumber() string { return s.serial }
func (s *mockState) UniqueID() string     { return s.uniqueID }

func newTestState() *mockState {
	return &mockState{
		reachable: true,
		name:      "Light1",
		vendor:    "Acme",
		product:   "Bulb",
		serial:    "",
		uniqueID:  "0123456789abcdef0123456789abcdef",
	}
}

func readString(t *testing.T, c *Cluster, id datamodel.AttributeID) string {
	t.Helper()
	buf := make([]byte, 1+MaxStringLength)
	n, err := c.ReadAttribute(id, buf)
	if err != nil {
		t.Fatalf("ReadAttribute(0x%04X) failed: %v", id, err)
	}
	s, err := zcl.NewReader(buf[:n]).CharString()
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	return s
}

func TestClusterConstants(t *testing.T) {
	c := New(newTestState())
	if c.ClusterID() != ClusterID {
		t.Errorf("ClusterID() = 0x%04X, want 0x%04X", c.ClusterID(), ClusterID)
	}
	if c.ClusterRevision() != 2 {
		t.Errorf("ClusterRevision() = %d, want 2", c.ClusterRevision())
	}
	if c.FeatureMap() != 0 {
		t.Errorf("FeatureMap() = %d, want 0", c.FeatureMap())
	}
}

func TestReadStrings(t *testing.T) {
	c := New(newTestState())

	tests := []struct {
		id   datamodel.AttributeID
		want string
	}{
		{AttrNodeLabel, "Light1"},
		{AttrVendorName, "Acme"},
		{AttrProductName, "Bulb"},
		{AttrSerialNumber, ""},
		{AttrUniqueID, "0123456789abcdef0123456789abcdef"},
	}

	for _, tt := range tests {
		if got := readString(t, c, tt.id); got != tt.want {
			t.Errorf("attribute 0x%04X = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestReadReachable(t *testing.T) {
	state := newTestState()
	c := New(state)

	buf := make([]byte, 1)
	n, err := c.ReadAttribute(AttrReachable, buf)
	if err != nil {
		t.Fatalf("ReadAttribute failed: %v", err)
	}
	if n != 1 || buf[0] != 1 {
		t.Errorf("Reachable = %x, want 01", buf[:n])
	}

	state.reachable = false
	n, _ = c.ReadAttribute(AttrReachable, buf)
	if n != 1 || buf[0] != 0 {
		t.Errorf("Reachable = %x, want 00", buf[:n])
	}
}

func TestReadGlobals(t *testing.T) {
	c := New(newTestState())

	buf := make([]byte, 4)
	n, err := c.ReadAttribute(datamodel.GlobalAttrClusterRevision, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:n], []byte{0x02, 0x00}) {
		t.Errorf("ClusterRevision = %x, want 0200", buf[:n])
	}

	n, err = c.ReadAttribute(datamodel.GlobalAttrFeatureMap, buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf[:n], []byte{0, 0, 0, 0}) {
		t.Errorf("FeatureMap = %x, want 00000000", buf[:n])
	}
}

func TestReadBufferTooSmall(t *testing.T) {
	c := New(newTestState())

	// "Light1" needs 7 bytes.
	_, err := c.ReadAttribute(AttrNodeLabel, make([]byte, 6))
	if !errors.Is(err, datamodel.ErrBufferTooSmall) {
		t.Errorf("err = %v, want ErrBufferTooSmall", err)
	}
}

func TestReadUnsupportedAttribute(t *testing.T) {
	c := New(newTestState())
	_, err := c.ReadAttribute(0x0006, make([]byte, 16))
	if !errors.Is(err, datamodel.ErrUnsupportedAttribute) {
		t.Errorf("err = %v, want ErrUnsupportedAttribute", err)
	}
}

func TestWriteIsRejected(t *testing.T) {
	c := New(newTestState())

	for _, entry := range c.AttributeList() {
		err := c.WriteAttribute(entry.ID, []byte{1, 'x'})
		if !errors.Is(err, datamodel.ErrUnsupportedWrite) {
			t.Errorf("WriteAttribute(0x%04X) = %v, want ErrUnsupportedWrite", entry.ID, err)
		}
	}

	if err := c.WriteAttribute(0x1234, []byte{0}); !errors.Is(err, datamodel.ErrUnsupportedAttribute) {
		t.Errorf("WriteAttribute(unknown) = %v, want ErrUnsupportedAttribute", err)
	}
}
