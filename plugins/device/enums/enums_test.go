package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests capability set membership.
func TestCapabilityHas(t *testing.T) {
	set := CapSwitchable | CapLevelable
	assert.True(t, set.Has(CapSwitchable))
	assert.True(t, set.Has(CapLevelable))
	assert.True(t, set.Has(CapSwitchable|CapLevelable))
	assert.False(t, set.Has(CapThermostat))
	assert.False(t, set.Has(CapLevelable|CapLockable))
	assert.False(t, set.Has(0))
}

// Tests empty capability set detection.
func TestCapabilityIsEmpty(t *testing.T) {
	assert.True(t, Capability(0).IsEmpty())
	assert.True(t, Capability(128).IsEmpty())
	assert.False(t, CapLockable.IsEmpty())
}

// Tests capability names.
func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", Capability(0).String())
	assert.Equal(t, "switchable|thermostat", (CapThermostat | CapSwitchable).String())
}

// Tests discovery actions derived from capabilities.
func TestCapabilityActions(t *testing.T) {
	data := []struct {
		dev     DeviceType
		actions []string
		types   []string
	}{
		{
			dev:     DevSwitch,
			actions: []string{"turnOn", "turnOff"},
			types:   []string{"SWITCH"},
		},
		{
			dev: DevDimmer,
			actions: []string{"turnOn", "turnOff", "setPercentage",
				"incrementPercentage", "decrementPercentage"},
			types: []string{"SWITCH"},
		},
		{
			dev: DevThermostat,
			actions: []string{"turnOn", "turnOff", "getTemperatureReading", "getTargetTemperature",
				"setTargetTemperature", "incrementTargetTemperature", "decrementTargetTemperature"},
			types: []string{"THERMOSTAT"},
		},
		{
			dev:     DevLock,
			actions: []string{"getLockState", "setLockState"},
			types:   []string{"SMARTLOCK"},
		},
	}

	for _, v := range data {
		assert.Equal(t, v.actions, v.dev.Capabilities().Actions(), v.dev.String())
		assert.Equal(t, v.types, v.dev.Capabilities().ApplianceTypes(), v.dev.String())
	}

	assert.Empty(t, Capability(0).ApplianceTypes())
	assert.Empty(t, Capability(0).Actions())
}

// Tests device type parsing.
func TestDeviceTypeString(t *testing.T) {
	for _, v := range []DeviceType{DevSwitch, DevDimmer, DevThermostat, DevLock} {
		p, err := DeviceTypeString(v.String())
		require.NoError(t, err, v.String())
		assert.Equal(t, v, p)
	}

	p, err := DeviceTypeString(" Dimmer ")
	require.NoError(t, err)
	assert.Equal(t, DevDimmer, p)

	_, err = DeviceTypeString("unknown")
	assert.Error(t, err)
	_, err = DeviceTypeString("vacuum")
	assert.Error(t, err)
}

// Tests thermostat mode wire table.
func TestThermostatModeString(t *testing.T) {
	expected := map[ThermostatMode]string{
		ModeAuto:  "AUTO",
		ModeHeat:  "HEAT",
		ModeCool:  "COOL",
		ModeAway:  "AWAY",
		ModeOther: "OTHER",
		ModeOff:   "OFF",
	}

	for k, v := range expected {
		assert.Equal(t, v, k.String())
		p, err := ThermostatModeString(v)
		require.NoError(t, err, v)
		assert.Equal(t, k, p)
	}

	p, err := ThermostatModeString("heat")
	require.NoError(t, err)
	assert.Equal(t, ModeHeat, p)

	_, err = ThermostatModeString("ECO")
	assert.Error(t, err)
}

// Tests lock state conversions.
func TestLockState(t *testing.T) {
	assert.Equal(t, "LOCKED", LockLocked.String())
	assert.Equal(t, "UNLOCKED", LockUnlocked.String())

	assert.Equal(t, LockUnlocked, LockStateNative(0))
	assert.Equal(t, LockLocked, LockStateNative(1))
	assert.Equal(t, LockLocked, LockStateNative(65535))

	p, err := LockStateString("locked")
	require.NoError(t, err)
	assert.Equal(t, LockLocked, p)

	_, err = LockStateString("JAMMED")
	assert.Error(t, err)
}

// Tests yaml-style unmarshalling.
func TestEnumsUnmarshal(t *testing.T) {
	str := func(s string) func(interface{}) error {
		return func(out interface{}) error {
			*(out.(*string)) = s
			return nil
		}
	}

	var dt DeviceType
	require.NoError(t, dt.UnmarshalYAML(str("thermostat")))
	assert.Equal(t, DevThermostat, dt)

	var m ThermostatMode
	require.NoError(t, m.UnmarshalYAML(str("cool")))
	assert.Equal(t, ModeCool, m)

	var l LockState
	assert.Error(t, l.UnmarshalYAML(str("open")))
}
