package virtual

import (
	"sync"
	"testing"

	"github.com/go-home-io/alexa-bridge/mocks"
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/plugins/helpers"
	"github.com/go-home-io/alexa-bridge/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDevice(t *testing.T, dt enums.DeviceType, config string) (*virtualDevice, mocksCron) {
	cron := mocks.FakeNewCron()
	d, err := NewDevice(&ConstructDevice{
		DeviceType: dt,
		RawConfig:  []byte(config),
		Logger:     mocks.FakeNewLogger(nil),
		Validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
		Cron:       cron,
	})
	require.NoError(t, err)

	return d.(*virtualDevice), cron
}

type mocksCron interface {
	Trigger()
	Len() int
}

// Tests capabilities of every device type.
func TestDeviceTypes(t *testing.T) {
	for _, v := range []enums.DeviceType{enums.DevSwitch, enums.DevDimmer, enums.DevThermostat, enums.DevLock} {
		d, _ := getDevice(t, v, "id: dev1\nname: Device")
		a := d.GetAppliance()
		assert.Equal(t, "dev1", a.ID(), v.String())
		assert.Equal(t, v.Capabilities(), a.Capabilities(), v.String())
		assert.Equal(t, v.String(), a.Info().Model, v.String())
		assert.Equal(t, "go-home", a.Info().Manufacturer, v.String())
	}
}

// Tests config failures.
func TestWrongConfig(t *testing.T) {
	data := []struct {
		dt     enums.DeviceType
		config string
	}{
		{enums.DevSwitch, "name: Device"},
		{enums.DevSwitch, "id: dev1"},
		{enums.DevDimmer, "id: dev1\nname: Device\nlevel: 120"},
		{enums.DevThermostat, "id: dev1\nname: Device\nmode: ECO"},
		{enums.DevUnknown, "id: dev1\nname: Device"},
		{enums.DevLock, ":wrong yaml"},
	}

	for i, v := range data {
		_, err := NewDevice(&ConstructDevice{
			DeviceType: v.dt,
			RawConfig:  []byte(v.config),
			Logger:     mocks.FakeNewLogger(nil),
			Validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
			Cron:       mocks.FakeNewCron(),
		})
		assert.Error(t, err, "%d", i)
	}
}

// Tests dimmer level bounds.
func TestDimmer(t *testing.T) {
	d, _ := getDevice(t, enums.DevDimmer, "id: dim1\nname: Dimmer\nlevel: 50")
	l, ok := d.GetAppliance().Levelable()
	require.True(t, ok)

	assert.Equal(t, uint16(32768), d.level)
	require.NoError(t, l.RaiseLevel(40000))
	assert.Equal(t, uint16(65535), d.level)
	require.NoError(t, l.LowerLevel(5535))
	assert.Equal(t, uint16(60000), d.level)
	require.NoError(t, l.LowerLevel(65535))
	assert.Equal(t, uint16(0), d.level)
	assert.False(t, d.on)
	require.NoError(t, l.SetLevel(100))
	assert.True(t, d.on)
}

// Tests thermostat state and simulation.
func TestThermostat(t *testing.T) {
	d, cron := getDevice(t, enums.DevThermostat, "id: th1\nname: Hall\ncurrent: 21\ntarget: 21.5\nmode: heat")
	th, ok := d.GetAppliance().Thermostat()
	require.True(t, ok)
	require.Equal(t, 1, cron.Len())

	assert.Equal(t, helpers.CelsiusToNative(21), th.CurrentTemperature())
	assert.Equal(t, helpers.CelsiusToNative(21.5), th.TargetTemperature())
	assert.Equal(t, enums.ModeHeat, th.Mode())

	start := th.CurrentTemperature()
	cron.Trigger()
	assert.Equal(t, start+1, th.CurrentTemperature())

	for ii := 0; ii < 100; ii++ {
		cron.Trigger()
	}
	assert.Equal(t, th.TargetTemperature(), th.CurrentTemperature())

	require.NoError(t, th.SetTemperature(helpers.CelsiusToNative(20)))
	s, _ := d.GetAppliance().Switchable()
	require.NoError(t, s.Off())
	assert.Equal(t, enums.ModeOff, th.Mode())

	reading := th.CurrentTemperature()
	cron.Trigger()
	assert.Equal(t, reading, th.CurrentTemperature())

	require.NoError(t, s.On())
	assert.Equal(t, enums.ModeHeat, th.Mode())
	cron.Trigger()
	assert.Equal(t, reading-1, th.CurrentTemperature())

	d.Unload()
	assert.Equal(t, 0, cron.Len())
}

// Tests that simulation can be disabled.
func TestThermostatNoSimulation(t *testing.T) {
	d, cron := getDevice(t, enums.DevThermostat, "id: th1\nname: Hall\nsimulate: off\nmode: OFF")
	assert.Equal(t, 0, cron.Len())

	s, _ := d.GetAppliance().Switchable()
	require.NoError(t, s.On())
	assert.Equal(t, enums.ModeAuto, d.Mode())
	d.Unload()
}

// Tests lock state changes.
func TestLock(t *testing.T) {
	d, _ := getDevice(t, enums.DevLock, "id: lock1\nname: Door\nlocked: true")
	l, ok := d.GetAppliance().Lockable()
	require.True(t, ok)

	assert.Equal(t, enums.LockLocked, enums.LockStateNative(l.LockState()))
	require.NoError(t, l.Unlock())
	assert.Equal(t, enums.LockUnlocked, enums.LockStateNative(l.LockState()))
	require.NoError(t, l.Lock())
	assert.Equal(t, enums.LockLocked, enums.LockStateNative(l.LockState()))
}

// Tests concurrent access to the device state.
func TestConcurrency(t *testing.T) {
	d, cron := getDevice(t, enums.DevDimmer, "id: dim1\nname: Dimmer")
	var l device.ILevelable = d
	wg := sync.WaitGroup{}

	for ii := 0; ii < 100; ii++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, l.RaiseLevel(10))
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, d.Off())
			cron.Trigger()
		}()
	}

	wg.Wait()
	assert.Equal(t, uint16(1000), d.level)
}
