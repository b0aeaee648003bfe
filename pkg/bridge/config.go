package bridge

import (
	"fmt"
	"io"
	"os"

	"github.com/backkem/matterbridge/pkg/datamodel"
	"github.com/backkem/matterbridge/pkg/reporting"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding the config.
const EnvPrefix = "MATTER_BRIDGE"

// Config holds the bridge configuration.
type Config struct {
	// AggregatorEndpoint is the parent endpoint of bridged devices (default: 1).
	AggregatorEndpoint uint16 `yaml:"aggregator_endpoint" envconfig:"AGGREGATOR_ENDPOINT"`

	// FirstEndpoint is the first dynamic endpoint (default: 3).
	FirstEndpoint uint16 `yaml:"first_endpoint" envconfig:"FIRST_ENDPOINT"`

	// QueueDepth bounds the pending report work (default: 64).
	QueueDepth int `yaml:"queue_depth" envconfig:"QUEUE_DEPTH"`

	// LogLevel is one of trace, debug, info, warn, error, disabled.
	LogLevel string `yaml:"log_level" envconfig:"LOG_LEVEL"`

	// Devices are registered in order. Environment variables do not
	// override them.
	Devices []DeviceConfig `yaml:"devices" ignored:"true"`
}

// DeviceConfig describes one bridged device.
type DeviceConfig struct {
	Name         string     `yaml:"name"`
	Type         DeviceType `yaml:"type"`
	VendorName   string     `yaml:"vendor_name"`
	ProductName  string     `yaml:"product_name"`
	SerialNumber string     `yaml:"serial_number"`
	Location     string     `yaml:"location"`
	UniqueID     string     `yaml:"unique_id"`
	Endpoint     uint16     `yaml:"endpoint"`
	Reachable    bool       `yaml:"reachable"`
	Online       bool       `yaml:"online"`
}

// UnmarshalYAML defaults Type to Unspecified when the key is absent.
func (c *DeviceConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain DeviceConfig
	p := plain{Type: DeviceTypeUnspecified}
	if err := value.Decode(&p); err != nil {
		return err
	}
	*c = DeviceConfig(p)
	return nil
}

// LoadConfig reads the YAML file at path, then applies environment overrides.
// An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return ParseConfig(nil)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes YAML from r (nil for none), applies environment
// overrides and defaults, and validates the result.
func ParseConfig(r io.Reader) (*Config, error) {
	var cfg Config

	if r != nil {
		if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment values override the file.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.AggregatorEndpoint == 0 || c.AggregatorEndpoint == uint16(datamodel.EndpointInvalid) {
		return fmt.Errorf("%w: aggregator endpoint %d", ErrInvalidConfig, c.AggregatorEndpoint)
	}
	if c.FirstEndpoint <= c.AggregatorEndpoint || c.FirstEndpoint == uint16(datamodel.EndpointInvalid) {
		return fmt.Errorf("%w: first endpoint %d must follow aggregator %d", ErrInvalidConfig, c.FirstEndpoint, c.AggregatorEndpoint)
	}
	if c.QueueDepth < 0 {
		return fmt.Errorf("%w: queue depth %d", ErrInvalidConfig, c.QueueDepth)
	}

	endpoints := make(map[uint16]string)
	for i, dc := range c.Devices {
		if dc.Name == "" {
			return fmt.Errorf("%w: device %d has no name", ErrInvalidConfig, i)
		}
		if !dc.Type.IsValid() {
			return fmt.Errorf("%w: device %q: %w", ErrInvalidConfig, dc.Name, ErrUnknownDeviceType)
		}
		if dc.Endpoint == 0 {
			continue
		}
		if dc.Endpoint < c.FirstEndpoint || dc.Endpoint == uint16(datamodel.EndpointInvalid) {
			return fmt.Errorf("%w: device %q endpoint %d outside dynamic range", ErrInvalidConfig, dc.Name, dc.Endpoint)
		}
		if other, dup := endpoints[dc.Endpoint]; dup {
			return fmt.Errorf("%w: devices %q and %q share endpoint %d", ErrInvalidConfig, other, dc.Name, dc.Endpoint)
		}
		endpoints[dc.Endpoint] = dc.Name
	}
	return nil
}

// applyDefaults fills in default values for unset fields.
func (c *Config) applyDefaults() {
	if c.AggregatorEndpoint == 0 {
		c.AggregatorEndpoint = uint16(DefaultAggregatorEndpoint)
	}
	if c.FirstEndpoint == 0 {
		c.FirstEndpoint = uint16(FirstDynamicEndpointID)
	}
	if c.QueueDepth == 0 {
		c.QueueDepth = reporting.DefaultQueueDepth
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// BridgeConfig returns the registry settings of the config.
func (c *Config) BridgeConfig() BridgeConfig {
	return BridgeConfig{
		AggregatorEndpoint: datamodel.EndpointID(c.AggregatorEndpoint),
		FirstEndpoint:      datamodel.EndpointID(c.FirstEndpoint),
	}
}

// NewDevice builds the device described by c. Lightbulbs and plug-in units
// get an On/Off cluster. Initial state is applied before any reporter is
// attached, so it is not reported.
func (c *DeviceConfig) NewDevice(opts ...Option) (*Device, error) {
	if c.Endpoint != 0 {
		opts = append(opts, WithEndpointID(datamodel.EndpointID(c.Endpoint)))
	}
	if c.UniqueID != "" {
		opts = append(opts, WithUniqueID(c.UniqueID))
	}

	var d *Device
	switch c.Type {
	case DeviceTypeLightbulb:
		d = NewLightbulb(c.Name, opts...).Device
	case DeviceTypeOnOffPluginUnit:
		d = NewPluginUnit(c.Name, opts...).Device
	default:
		opts = append(opts, WithDeviceType(c.Type))
		d = NewDevice(c.Name, opts...)
	}

	// Reporting is attached by the Bridge; these only run the callback.
	reporter := d.reporter
	d.reporter = nil
	defer d.setReporter(reporter)

	if err := d.SetIdentity(Identity{
		Name:         c.Name,
		VendorName:   c.VendorName,
		ProductName:  c.ProductName,
		SerialNumber: c.SerialNumber,
		Location:     c.Location,
	}); err != nil {
		return nil, err
	}
	if err := d.SetReachable(c.Reachable); err != nil {
		return nil, err
	}
	if err := d.SetOnline(c.Online); err != nil {
		return nil, err
	}
	return d, nil
}
