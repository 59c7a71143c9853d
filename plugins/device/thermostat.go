package device

import "github.com/go-home-io/alexa-bridge/plugins/device/enums"

// IThermostat defines thermostat capability.
// All temperatures are tenths of a degree Fahrenheit.
type IThermostat interface {
	CurrentTemperature() uint16
	TargetTemperature() uint16
	Mode() enums.ThermostatMode
	SetTemperature(target uint16) error
}
