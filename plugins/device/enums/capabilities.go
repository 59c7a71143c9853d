// Package enums contains enumerations shared between device drivers and the directive router.
package enums

import "strings"

// Capability describes behavioral contract implemented by a device.
// Values are bit flags, so a set of capabilities is a Capability as well.
type Capability uint8

const (
	// CapSwitchable describes on/off capability.
	CapSwitchable Capability = 1 << iota
	// CapLevelable describes 0-100% level capability.
	CapLevelable
	// CapThermostat describes thermostat capability.
	CapThermostat
	// CapLockable describes lock capability.
	CapLockable
)

// AllCapabilities lists known capabilities in discovery order.
var AllCapabilities = []Capability{CapSwitchable, CapLevelable, CapThermostat, CapLockable}

var capabilityNames = map[Capability]string{
	CapSwitchable: "switchable",
	CapLevelable:  "levelable",
	CapThermostat: "thermostat",
	CapLockable:   "lockable",
}

// Discovery actions, exposed per capability.
var capabilityActions = map[Capability][]string{
	CapSwitchable: {"turnOn", "turnOff"},
	CapLevelable:  {"setPercentage", "incrementPercentage", "decrementPercentage"},
	CapThermostat: {"getTemperatureReading", "getTargetTemperature", "setTargetTemperature",
		"incrementTargetTemperature", "decrementTargetTemperature"},
	CapLockable: {"getLockState", "setLockState"},
}

const (
	// ApplianceSwitch describes discovery appliance type for switches and dimmers.
	ApplianceSwitch = "SWITCH"
	// ApplianceThermostat describes discovery appliance type for thermostats.
	ApplianceThermostat = "THERMOSTAT"
	// ApplianceSmartLock describes discovery appliance type for locks.
	ApplianceSmartLock = "SMARTLOCK"
)

// Has checks whether set contains all requested capabilities.
func (i Capability) Has(c Capability) bool {
	return c != 0 && i&c == c
}

// IsEmpty checks whether set has no known capabilities.
func (i Capability) IsEmpty() bool {
	for _, v := range AllCapabilities {
		if i.Has(v) {
			return false
		}
	}

	return true
}

// String returns human-readable representation of the set.
func (i Capability) String() string {
	parts := make([]string, 0, len(AllCapabilities))
	for _, v := range AllCapabilities {
		if i.Has(v) {
			parts = append(parts, capabilityNames[v])
		}
	}

	if 0 == len(parts) {
		return "none"
	}

	return strings.Join(parts, "|")
}

// Actions returns discovery actions of the set.
func (i Capability) Actions() []string {
	actions := make([]string, 0)
	for _, v := range AllCapabilities {
		if i.Has(v) {
			actions = append(actions, capabilityActions[v]...)
		}
	}

	return actions
}

// ApplianceTypes returns discovery appliance types of the set.
// Thermostat wins over lock, lock wins over switch.
func (i Capability) ApplianceTypes() []string {
	switch {
	case i.Has(CapThermostat):
		return []string{ApplianceThermostat}
	case i.Has(CapLockable):
		return []string{ApplianceSmartLock}
	case i.Has(CapSwitchable), i.Has(CapLevelable):
		return []string{ApplianceSwitch}
	}

	return []string{}
}
