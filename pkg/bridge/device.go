package bridge

import (
	"fmt"
	"strings"

	"github.com/backkem/matterbridge/pkg/clusters/bridgedbasic"
	"github.com/backkem/matterbridge/pkg/clusters/groups"
	"github.com/backkem/matterbridge/pkg/clusters/identify"
	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/reporting"
	"github.com/google/uuid"
	"github.com/pion/logging"
)

// Device is one bridged endpoint.
//
// A Device is not safe for concurrent use. Its owner (usually a Bridge)
// serializes setter calls and attribute access.
type Device struct {
	name         FixedString
	vendorName   FixedString
	productName  FixedString
	serialNumber FixedString
	location     string
	uniqueID     string

	reachable  bool
	online     bool
	deviceType DeviceType

	endpointID       datamodel.EndpointID
	parentEndpointID datamodel.EndpointID

	// identifyInProgress is true exactly when identifyTime > 0.
	identifyInProgress bool
	identifyTime       uint16
	identifyType       identify.Type

	groupsNameSupport groups.NameSupport

	changeCallback func()
	reporter       reporting.Scheduler

	handlers map[datamodel.ClusterID]datamodel.AttributeHandler
	order    []datamodel.ClusterID

	log logging.LeveledLogger
}

// Option configures a Device at construction.
type Option func(*Device)

// WithDeviceType sets the device type.
func WithDeviceType(t DeviceType) Option {
	return func(d *Device) {
		d.deviceType = t
	}
}

// WithReporter sets the scheduler used for attribute reports.
// Without one, changes only invoke the change callback until the device is
// added to a Bridge.
func WithReporter(s reporting.Scheduler) Option {
	return func(d *Device) {
		d.reporter = s
	}
}

// WithLoggerFactory enables logging for the device.
func WithLoggerFactory(f logging.LoggerFactory) Option {
	return func(d *Device) {
		if f != nil {
			d.log = f.NewLogger("device")
		}
	}
}

// WithUniqueID sets the UniqueID attribute instead of generating one.
// Values longer than 32 bytes are cut on a rune boundary.
func WithUniqueID(id string) Option {
	return func(d *Device) {
		d.uniqueID = truncateUTF8(id, bridgedbasic.MaxStringLength)
	}
}

// WithEndpointID sets the endpoint ID.
func WithEndpointID(id datamodel.EndpointID) Option {
	return func(d *Device) {
		d.endpointID = id
	}
}

// WithParentEndpointID sets the parent endpoint ID.
func WithParentEndpointID(id datamodel.EndpointID) Option {
	return func(d *Device) {
		d.parentEndpointID = id
	}
}

// NewDevice creates a device with the given name.
//
// The device starts unreachable, offline, with an unspecified type and
// identify idle. Endpoint IDs are invalid until assigned. Handlers for Bridged
// Device Basic Information, Identify and Groups are registered.
func NewDevice(name string, opts ...Option) *Device {
	d := &Device{
		name:             NewFixedString(name),
		deviceType:       DeviceTypeUnspecified,
		endpointID:       datamodel.EndpointInvalid,
		parentEndpointID: datamodel.EndpointInvalid,
		handlers:         make(map[datamodel.ClusterID]datamodel.AttributeHandler),
	}

	for _, opt := range opts {
		opt(d)
	}

	if d.uniqueID == "" {
		d.uniqueID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	// Fresh map, IDs are distinct.
	_ = d.AddClusterHandler(bridgedbasic.New(d))
	_ = d.AddClusterHandler(identify.New(d))
	_ = d.AddClusterHandler(groups.New(d))

	return d
}

// Name returns the device name (NodeLabel).
func (d *Device) Name() string { return d.name.String() }

// VendorName returns the vendor name.
func (d *Device) VendorName() string { return d.vendorName.String() }

// ProductName returns the product name.
func (d *Device) ProductName() string { return d.productName.String() }

// SerialNumber returns the serial number.
func (d *Device) SerialNumber() string { return d.serialNumber.String() }

// Location returns the free-form location.
func (d *Device) Location() string { return d.location }

// UniqueID returns the UniqueID attribute value.
func (d *Device) UniqueID() string { return d.uniqueID }

// IsReachable returns the protocol-visible reachability.
func (d *Device) IsReachable() bool { return d.reachable }

// IsOnline returns the local availability.
func (d *Device) IsOnline() bool { return d.online }

// DeviceType returns the device type.
func (d *Device) DeviceType() DeviceType { return d.deviceType }

// EndpointID returns the endpoint ID.
func (d *Device) EndpointID() datamodel.EndpointID { return d.endpointID }

// ParentEndpointID returns the parent endpoint ID.
func (d *Device) ParentEndpointID() datamodel.EndpointID { return d.parentEndpointID }

// SetEndpointID sets the endpoint ID. Uniqueness is the registry's concern.
func (d *Device) SetEndpointID(id datamodel.EndpointID) { d.endpointID = id }

// SetParentEndpointID sets the parent endpoint ID.
func (d *Device) SetParentEndpointID(id datamodel.EndpointID) { d.parentEndpointID = id }

// GroupsNameSupport returns the Groups NameSupport bitmap.
func (d *Device) GroupsNameSupport() groups.NameSupport { return d.groupsNameSupport }

// SetName sets the device name, truncated to MaxFixedStringLength bytes.
func (d *Device) SetName(name string) error {
	return d.setFixed(&d.name, name, ChangeName)
}

// SetVendorName sets the vendor name, truncated to MaxFixedStringLength bytes.
func (d *Device) SetVendorName(name string) error {
	return d.setFixed(&d.vendorName, name, ChangeVendorName)
}

// SetProductName sets the product name, truncated to MaxFixedStringLength bytes.
func (d *Device) SetProductName(name string) error {
	return d.setFixed(&d.productName, name, ChangeProductName)
}

// SetSerialNumber sets the serial number, truncated to MaxFixedStringLength bytes.
func (d *Device) SetSerialNumber(serial string) error {
	return d.setFixed(&d.serialNumber, serial, ChangeSerialNumber)
}

func (d *Device) setFixed(f *FixedString, s string, bit ChangeMask) error {
	if !f.Set(s) {
		return nil
	}
	return d.handleDeviceStatusChanged(bit)
}

// SetLocation sets the location.
func (d *Device) SetLocation(location string) error {
	if d.location == location {
		return nil
	}
	d.location = location
	return d.handleDeviceStatusChanged(ChangeLocation)
}

// SetReachable sets the protocol-visible reachability.
func (d *Device) SetReachable(reachable bool) error {
	if d.reachable == reachable {
		return nil
	}
	d.reachable = reachable
	return d.handleDeviceStatusChanged(ChangeReachable)
}

// SetOnline sets the local availability.
func (d *Device) SetOnline(online bool) error {
	if d.online == online {
		return nil
	}
	d.online = online
	return d.handleDeviceStatusChanged(ChangeOnline)
}

// SetGroupsNameSupport sets the Groups NameSupport bitmap.
// Reserved bits are rejected with ErrInvalidValue.
func (d *Device) SetGroupsNameSupport(n groups.NameSupport) error {
	if !n.IsValid() {
		return fmt.Errorf("%w: name support 0x%02X", datamodel.ErrInvalidValue, uint8(n))
	}
	if d.groupsNameSupport == n {
		return nil
	}
	d.groupsNameSupport = n
	return d.handleDeviceStatusChanged(ChangeGroupsNameSupport)
}

// Identity groups the identity fields for SetIdentity.
type Identity struct {
	Name         string
	VendorName   string
	ProductName  string
	SerialNumber string
	Location     string
}

// Identity returns the current identity fields.
func (d *Device) Identity() Identity {
	return Identity{
		Name:         d.Name(),
		VendorName:   d.VendorName(),
		ProductName:  d.ProductName(),
		SerialNumber: d.SerialNumber(),
		Location:     d.location,
	}
}

// SetIdentity applies every field of id. All changed fields are delivered as
// one callback and one report.
func (d *Device) SetIdentity(id Identity) error {
	var mask ChangeMask
	if d.name.Set(id.Name) {
		mask |= ChangeName
	}
	if d.vendorName.Set(id.VendorName) {
		mask |= ChangeVendorName
	}
	if d.productName.Set(id.ProductName) {
		mask |= ChangeProductName
	}
	if d.serialNumber.Set(id.SerialNumber) {
		mask |= ChangeSerialNumber
	}
	if d.location != id.Location {
		d.location = id.Location
		mask |= ChangeLocation
	}
	return d.handleDeviceStatusChanged(mask)
}

// SetDeviceChangeCallback registers the change callback, replacing any
// previous one. A nil cb clears it.
//
// The callback runs synchronously on the goroutine that changed the device.
// The caller must clear it before whatever it captures becomes invalid.
func (d *Device) SetDeviceChangeCallback(cb func()) {
	d.changeCallback = cb
}

// CallDeviceChangeCallback invokes the change callback, if any.
func (d *Device) CallDeviceChangeCallback() {
	if d.changeCallback != nil {
		d.changeCallback()
	}
}

// handleDeviceStatusChanged propagates the changes in mask: the data version
// of every affected cluster is bumped, the callback fires once and a single
// report carrying every affected path is scheduled.
func (d *Device) handleDeviceStatusChanged(mask ChangeMask) error {
	if mask == 0 {
		return nil
	}

	for _, id := range mask.Clusters() {
		if h, ok := d.handlers[id]; ok {
			h.IncrementDataVersion()
		}
	}

	if d.log != nil {
		d.log.Debugf("device %q endpoint %d changed: %s", d.Name(), d.endpointID, mask)
	}

	d.CallDeviceChangeCallback()

	if d.reporter == nil {
		return nil
	}
	if d.endpointID == datamodel.EndpointInvalid {
		if d.log != nil {
			d.log.Debugf("device %q has no endpoint, report for %s skipped", d.Name(), mask)
		}
		return nil
	}

	paths := mask.Paths(d.endpointID)
	if len(paths) == 0 {
		return nil
	}

	if err := d.reporter.ScheduleReport(paths...); err != nil {
		if d.log != nil {
			d.log.Warnf("device %q: failed to schedule report for %s: %v", d.Name(), mask, err)
		}
		return fmt.Errorf("device %q: %w", d.Name(), err)
	}
	return nil
}

// setReporter is used by Bridge when the device is registered.
func (d *Device) setReporter(s reporting.Scheduler) {
	d.reporter = s
}

var (
	_ bridgedbasic.State = (*Device)(nil)
	_ identify.State     = (*Device)(nil)
	_ groups.State       = (*Device)(nil)
)
