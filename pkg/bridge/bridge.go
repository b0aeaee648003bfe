package bridge

import (
	"sync"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/reporting"
	"github.com/pion/logging"
)

// Default endpoint layout: 0 is the root node, 1 the aggregator, 2 is kept
// free for the bridge's own functions and bridged devices start at 3.
const (
	DefaultAggregatorEndpoint datamodel.EndpointID = 1
	FirstDynamicEndpointID    datamodel.EndpointID = 3
)

// BridgeConfig configures a Bridge.
type BridgeConfig struct {
	// Reporter schedules attribute reports for registered devices that do
	// not bring their own.
	Reporter reporting.Scheduler

	// AggregatorEndpoint is the parent of every bridged device.
	// Zero or EndpointInvalid selects DefaultAggregatorEndpoint.
	AggregatorEndpoint datamodel.EndpointID

	// FirstEndpoint is the first dynamically assigned endpoint.
	// Zero or EndpointInvalid selects FirstDynamicEndpointID.
	FirstEndpoint datamodel.EndpointID

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// Bridge is the registry of bridged devices, keyed by endpoint.
//
// Registry operations are safe for concurrent use. Attribute access, commands
// and registry changes are serialized, so each Device sees a single caller at
// a time. Change callbacks and functions passed to Do run under that
// serialization and must not call back into the Bridge except for the
// read-only Device, Devices and DeviceCount.
type Bridge struct {
	// mu guards the registry. Lock order is access, then mu.
	mu      sync.RWMutex
	devices map[datamodel.EndpointID]*Device
	order   []datamodel.EndpointID
	next    datamodel.EndpointID

	// access serializes calls into devices.
	access sync.Mutex

	aggregator datamodel.EndpointID
	first      datamodel.EndpointID
	reporter   reporting.Scheduler
	log        logging.LeveledLogger
}

// New creates an empty Bridge.
func New(config BridgeConfig) *Bridge {
	b := &Bridge{
		devices:    make(map[datamodel.EndpointID]*Device),
		aggregator: config.AggregatorEndpoint,
		first:      config.FirstEndpoint,
		reporter:   config.Reporter,
	}
	if b.aggregator == 0 || b.aggregator == datamodel.EndpointInvalid {
		b.aggregator = DefaultAggregatorEndpoint
	}
	if b.first == 0 || b.first == datamodel.EndpointInvalid {
		b.first = FirstDynamicEndpointID
	}
	b.next = b.first

	if config.LoggerFactory != nil {
		b.log = config.LoggerFactory.NewLogger("bridge")
	}
	return b
}

// AggregatorEndpoint returns the parent endpoint of bridged devices.
func (b *Bridge) AggregatorEndpoint() datamodel.EndpointID {
	return b.aggregator
}

// AddDevice registers d and returns its endpoint.
//
// A device without an endpoint gets the next free dynamic endpoint; a device
// with one keeps it, and ErrEndpointExists is returned if it is taken.
// The device's parent becomes the aggregator endpoint, and the bridge's
// reporter is attached if the device has none.
func (b *Bridge) AddDevice(d *Device) (datamodel.EndpointID, error) {
	b.access.Lock()
	defer b.access.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, existing := range b.devices {
		if existing == d {
			return datamodel.EndpointInvalid, ErrDeviceRegistered
		}
	}

	id := d.EndpointID()
	if id == datamodel.EndpointInvalid {
		var err error
		if id, err = b.allocateLocked(); err != nil {
			return datamodel.EndpointInvalid, err
		}
	} else if _, exists := b.devices[id]; exists {
		return datamodel.EndpointInvalid, datamodel.ErrEndpointExists
	}

	d.SetEndpointID(id)
	d.SetParentEndpointID(b.aggregator)
	if d.reporter == nil && b.reporter != nil {
		d.setReporter(b.reporter)
	}

	b.devices[id] = d
	b.order = append(b.order, id)

	if b.log != nil {
		b.log.Infof("added %s device %q on endpoint %d", d.DeviceType(), d.Name(), id)
	}
	return id, nil
}

// allocateLocked returns the next free dynamic endpoint. Caller holds b.mu.
func (b *Bridge) allocateLocked() (datamodel.EndpointID, error) {
	start := b.next
	for {
		id := b.next
		b.next++
		if b.next == datamodel.EndpointInvalid {
			b.next = b.first
		}
		if _, exists := b.devices[id]; !exists {
			return id, nil
		}
		if b.next == start {
			return datamodel.EndpointInvalid, ErrNoFreeEndpoint
		}
	}
}

// RemoveDevice unregisters the device on the endpoint.
// The device keeps its state; its endpoint is reset to invalid.
// Returns ErrEndpointNotFound if no device is registered there.
func (b *Bridge) RemoveDevice(id datamodel.EndpointID) error {
	b.access.Lock()
	defer b.access.Unlock()
	b.mu.Lock()
	defer b.mu.Unlock()

	d, exists := b.devices[id]
	if !exists {
		return datamodel.ErrEndpointNotFound
	}

	delete(b.devices, id)
	for i, epID := range b.order {
		if epID == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	d.SetEndpointID(datamodel.EndpointInvalid)
	d.SetParentEndpointID(datamodel.EndpointInvalid)

	if b.log != nil {
		b.log.Infof("removed device %q from endpoint %d", d.Name(), id)
	}
	return nil
}

// Device returns the device on the endpoint, or nil.
func (b *Bridge) Device(id datamodel.EndpointID) *Device {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.devices[id]
}

// Devices returns all devices in registration order.
func (b *Bridge) Devices() []*Device {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]*Device, 0, len(b.order))
	for _, id := range b.order {
		result = append(result, b.devices[id])
	}
	return result
}

// DeviceCount returns the number of registered devices.
func (b *Bridge) DeviceCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.devices)
}

// ReadAttribute routes an attribute read to the device on the endpoint.
func (b *Bridge) ReadAttribute(endpoint datamodel.EndpointID, cluster datamodel.ClusterID, attr datamodel.AttributeID, buf []byte) (int, error) {
	b.access.Lock()
	defer b.access.Unlock()

	d := b.Device(endpoint)
	if d == nil {
		return 0, datamodel.ErrEndpointNotFound
	}
	return d.HandleReadAttribute(cluster, attr, buf)
}

// WriteAttribute routes an attribute write to the device on the endpoint.
func (b *Bridge) WriteAttribute(endpoint datamodel.EndpointID, cluster datamodel.ClusterID, attr datamodel.AttributeID, buf []byte) error {
	b.access.Lock()
	defer b.access.Unlock()

	d := b.Device(endpoint)
	if d == nil {
		return datamodel.ErrEndpointNotFound
	}
	return d.HandleWriteAttribute(cluster, attr, buf)
}

// InvokeCommand routes a cluster command to the device on the endpoint.
func (b *Bridge) InvokeCommand(endpoint datamodel.EndpointID, cluster datamodel.ClusterID, cmd datamodel.CommandID) error {
	b.access.Lock()
	defer b.access.Unlock()

	d := b.Device(endpoint)
	if d == nil {
		return datamodel.ErrEndpointNotFound
	}
	return d.HandleCommand(cluster, cmd)
}

// Do runs fn with exclusive access to the devices, for local updates that
// must not interleave with stack access.
func (b *Bridge) Do(fn func()) {
	b.access.Lock()
	defer b.access.Unlock()
	fn()
}
