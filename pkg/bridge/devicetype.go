package bridge

import (
	"fmt"
	"strings"

	"github.com/backkem/matterbridge/pkg/datamodel"
)

// DeviceType classifies a bridged device.
type DeviceType uint16

// Device types. The numeric values are stable and used in configuration dumps.
const (
	DeviceTypeAirQualitySensor  DeviceType = 0x0000
	DeviceTypeContactSensor     DeviceType = 0x0001
	DeviceTypeDoorLock          DeviceType = 0x0002
	DeviceTypeFan               DeviceType = 0x0003
	DeviceTypeFlowSensor        DeviceType = 0x0004
	DeviceTypeHumiditySensor    DeviceType = 0x0005
	DeviceTypeIlluminanceSensor DeviceType = 0x0006
	DeviceTypeLightbulb         DeviceType = 0x0007
	DeviceTypeOccupancySensor   DeviceType = 0x0008
	DeviceTypeOnOffPluginUnit   DeviceType = 0x0009
	DeviceTypePressureSensor    DeviceType = 0x000A
	DeviceTypeSwitch            DeviceType = 0x000B
	DeviceTypeTempSensor        DeviceType = 0x000C
	DeviceTypeThermostat        DeviceType = 0x000D
	DeviceTypeWindowCovering    DeviceType = 0x000E
	DeviceTypeAirPurifier       DeviceType = 0x000F
	DeviceTypeFire              DeviceType = 0x0010
	DeviceTypeUnspecified       DeviceType = 0xFFFF
)

var deviceTypeInfo = map[DeviceType]struct {
	name string
	id   datamodel.DeviceTypeID
}{
	DeviceTypeAirQualitySensor:  {"AirQualitySensor", 0x002C},
	DeviceTypeContactSensor:     {"ContactSensor", 0x0015},
	DeviceTypeDoorLock:          {"DoorLock", 0x000A},
	DeviceTypeFan:               {"Fan", 0x002B},
	DeviceTypeFlowSensor:        {"FlowSensor", 0x0306},
	DeviceTypeHumiditySensor:    {"HumiditySensor", 0x0307},
	DeviceTypeIlluminanceSensor: {"IlluminanceSensor", 0x0106},
	DeviceTypeLightbulb:         {"Lightbulb", 0x0100},
	DeviceTypeOccupancySensor:   {"OccupancySensor", 0x0107},
	DeviceTypeOnOffPluginUnit:   {"OnOffPluginUnit", 0x010A},
	DeviceTypePressureSensor:    {"PressureSensor", 0x0305},
	DeviceTypeSwitch:            {"Switch", 0x0103},
	DeviceTypeTempSensor:        {"TempSensor", 0x0302},
	DeviceTypeThermostat:        {"Thermostat", 0x0301},
	DeviceTypeWindowCovering:    {"WindowCovering", 0x0202},
	DeviceTypeAirPurifier:       {"AirPurifier", 0x002D},
	DeviceTypeFire:              {"Fire", 0x0076},
}

// String returns the device type name.
func (t DeviceType) String() string {
	if info, ok := deviceTypeInfo[t]; ok {
		return info.name
	}
	if t == DeviceTypeUnspecified {
		return "Unspecified"
	}
	return fmt.Sprintf("DeviceType(0x%04X)", uint16(t))
}

// IsValid returns true for defined device types, Unspecified included.
func (t DeviceType) IsValid() bool {
	_, ok := deviceTypeInfo[t]
	return ok || t == DeviceTypeUnspecified
}

// MatterDeviceTypeID returns the Matter device type the endpoint is
// registered with. Unspecified has none.
func (t DeviceType) MatterDeviceTypeID() (datamodel.DeviceTypeID, bool) {
	info, ok := deviceTypeInfo[t]
	if !ok {
		return 0, false
	}
	return info.id, true
}

// ParseDeviceType resolves a device type by name, case-insensitively.
// An empty name yields DeviceTypeUnspecified.
func ParseDeviceType(name string) (DeviceType, error) {
	if name == "" || strings.EqualFold(name, "Unspecified") {
		return DeviceTypeUnspecified, nil
	}
	for t, info := range deviceTypeInfo {
		if strings.EqualFold(name, info.name) {
			return t, nil
		}
	}
	return DeviceTypeUnspecified, fmt.Errorf("%w: %q", ErrUnknownDeviceType, name)
}

// UnmarshalText implements encoding.TextUnmarshaler so device types can be
// given by name in YAML and environment configuration.
func (t *DeviceType) UnmarshalText(text []byte) error {
	parsed, err := ParseDeviceType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t DeviceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
