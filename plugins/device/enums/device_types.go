package enums

import (
	"fmt"
	"strings"
)

// DeviceType describes enum with known device kinds.
type DeviceType int

const (
	// DevUnknown describes unknown device type.
	DevUnknown DeviceType = iota
	// DevSwitch describes on/off switch device type.
	DevSwitch
	// DevDimmer describes dimmable switch device type.
	DevDimmer
	// DevThermostat describes thermostat device type.
	DevThermostat
	// DevLock describes smart lock device type.
	DevLock
)

var deviceTypeNames = map[DeviceType]string{
	DevUnknown:    "unknown",
	DevSwitch:     "switch",
	DevDimmer:     "dimmer",
	DevThermostat: "thermostat",
	DevLock:       "lock",
}

// DeviceCapabilities contains capability set implemented by every device kind.
var DeviceCapabilities = map[DeviceType]Capability{
	DevSwitch:     CapSwitchable,
	DevDimmer:     CapSwitchable | CapLevelable,
	DevThermostat: CapSwitchable | CapThermostat,
	DevLock:       CapLockable,
}

// String returns device type name.
func (i DeviceType) String() string {
	if s, ok := deviceTypeNames[i]; ok {
		return s
	}

	return fmt.Sprintf("DeviceType(%d)", int(i))
}

// Capabilities returns capability set of the device kind.
func (i DeviceType) Capabilities() Capability {
	return DeviceCapabilities[i]
}

// DeviceTypeString parses device type name.
func DeviceTypeString(s string) (DeviceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range deviceTypeNames {
		if k != DevUnknown && v == s {
			return k, nil
		}
	}

	return DevUnknown, fmt.Errorf("%s does not belong to DeviceType values", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *DeviceType) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	var err error
	*i, err = DeviceTypeString(s)
	return err
}
