package mqtt

import (
	"net/http"
	"testing"

	"github.com/go-home-io/alexa-bridge/mocks"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/plugins/helpers"
	"github.com/go-home-io/alexa-bridge/systems/alexa"
	sysDevice "github.com/go-home-io/alexa-bridge/systems/device"
	"github.com/go-home-io/alexa-bridge/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getDevice(t *testing.T, dt enums.DeviceType, config string) (*mqttDevice, *mocks.FakeMQTT) {
	client := mocks.FakeNewMQTT("alexa")
	d, err := NewDevice(&ConstructDevice{
		DeviceType: dt,
		RawConfig:  []byte(config),
		Logger:     mocks.FakeNewLogger(nil),
		Validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
		Client:     client,
	})
	require.NoError(t, err)

	return d.(*mqttDevice), client
}

// Tests that commands are published to set topics.
func TestCommandTopics(t *testing.T) {
	d, client := getDevice(t, enums.DevDimmer, "id: Kitchen.Light\nname: Kitchen")
	a := d.GetAppliance()
	s, ok := a.Switchable()
	require.True(t, ok)
	l, ok := a.Levelable()
	require.True(t, ok)

	data := []struct {
		call    func() error
		topic   string
		payload string
	}{
		{s.On, "alexa/kitchen_light/set/power", "ON"},
		{s.Off, "alexa/kitchen_light/set/power", "OFF"},
		{func() error { return l.SetLevel(helpers.PercentToLevel(50)) }, "alexa/kitchen_light/set/level", "50"},
		{func() error { return l.RaiseLevel(helpers.PercentToLevel(10)) }, "alexa/kitchen_light/set/level_raise", "10"},
		{func() error { return l.LowerLevel(helpers.PercentToLevel(25)) }, "alexa/kitchen_light/set/level_lower", "25"},
	}

	for i, v := range data {
		require.NoError(t, v.call(), "%d", i)
		assert.Equal(t, mocks.FakeMessage{Topic: v.topic, Payload: v.payload}, client.Last(), "%d", i)
	}

	assert.Equal(t, 0, client.Subscriptions())
}

// Tests thermostat state tracking.
func TestThermostatState(t *testing.T) {
	d, client := getDevice(t, enums.DevThermostat, "id: th1\nname: Hall\ntopic: /home/hall/")
	th, ok := d.GetAppliance().Thermostat()
	require.True(t, ok)
	require.Equal(t, 1, client.Subscriptions())

	client.Deliver("alexa/home/hall/state/temperature", "21")
	client.Deliver("alexa/home/hall/state/target", " 22.5 ")
	client.Deliver("alexa/home/hall/state/mode", "heat")
	client.Deliver("alexa/home/hall/state/battery", "90")
	client.Deliver("alexa/other/state/temperature", "30")

	assert.Equal(t, uint16(698), th.CurrentTemperature())
	assert.Equal(t, helpers.CelsiusToNative(22.5), th.TargetTemperature())
	assert.Equal(t, enums.ModeHeat, th.Mode())

	client.Deliver("alexa/home/hall/state/temperature", "warm")
	client.Deliver("alexa/home/hall/state/mode", "ECO")
	assert.Equal(t, uint16(698), th.CurrentTemperature())
	assert.Equal(t, enums.ModeHeat, th.Mode())

	require.NoError(t, th.SetTemperature(helpers.CelsiusToNative(70)))
	assert.Equal(t, mocks.FakeMessage{Topic: "alexa/home/hall/set/target", Payload: "70"}, client.Last())
	assert.Equal(t, uint16(1580), th.TargetTemperature())

	d.Unload()
	assert.Equal(t, 0, client.Subscriptions())
}

// Tests lock state tracking.
func TestLockState(t *testing.T) {
	d, client := getDevice(t, enums.DevLock, "id: door\nname: Door")
	l, ok := d.GetAppliance().Lockable()
	require.True(t, ok)

	assert.Equal(t, enums.LockUnlocked, enums.LockStateNative(l.LockState()))
	client.Deliver("alexa/door/state/lock", "LOCKED")
	assert.Equal(t, enums.LockLocked, enums.LockStateNative(l.LockState()))

	require.NoError(t, l.Unlock())
	assert.Equal(t, mocks.FakeMessage{Topic: "alexa/door/set/lock", Payload: "UNLOCKED"}, client.Last())
	assert.Equal(t, enums.LockUnlocked, enums.LockStateNative(l.LockState()))

	require.NoError(t, l.Lock())
	assert.Equal(t, "LOCKED", client.Last().Payload)
	assert.Equal(t, enums.LockLocked, enums.LockStateNative(l.LockState()))
}

// Tests that publish failure is reported and cached state is kept.
func TestPublishFailure(t *testing.T) {
	d, client := getDevice(t, enums.DevLock, "id: door\nname: Door")
	l, _ := d.GetAppliance().Lockable()

	client.Err = errors.New("broker is gone")
	assert.Error(t, l.Lock())
	assert.Equal(t, enums.LockUnlocked, enums.LockStateNative(l.LockState()))
	assert.Equal(t, 0, len(client.Published))
}

// Tests construction failures.
func TestWrongDevice(t *testing.T) {
	data := []struct {
		dt     enums.DeviceType
		config string
		client bool
	}{
		{enums.DevSwitch, "id: sw1\nname: Switch", false},
		{enums.DevSwitch, "id: sw1", true},
		{enums.DevSwitch, "id: sw1\nname: Switch\ntopic: a/+/b", true},
		{enums.DevUnknown, "id: sw1\nname: Switch", true},
		{enums.DevSwitch, ":wrong", true},
	}

	for i, v := range data {
		ctor := &ConstructDevice{
			DeviceType: v.dt,
			RawConfig:  []byte(v.config),
			Logger:     mocks.FakeNewLogger(nil),
			Validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
		}
		if v.client {
			ctor.Client = mocks.FakeNewMQTT("alexa")
		}

		_, err := NewDevice(ctor)
		assert.Error(t, err, "%d", i)
	}
}

// Tests that subscription failure fails device.
func TestSubscribeFailure(t *testing.T) {
	client := mocks.FakeNewMQTT("alexa")
	client.Err = errors.New("not connected")
	_, err := NewDevice(&ConstructDevice{
		DeviceType: enums.DevThermostat,
		RawConfig:  []byte("id: th1\nname: Hall"),
		Logger:     mocks.FakeNewLogger(nil),
		Validator:  utils.NewValidator(mocks.FakeNewLogger(nil)),
		Client:     client,
	})
	assert.Error(t, err)
}

// Tests that thermostat without reported state refuses target changes.
func TestThermostatNoStateYet(t *testing.T) {
	d, client := getDevice(t, enums.DevThermostat, "id: th1\nname: Hall")
	th, ok := d.GetAppliance().Thermostat()
	require.True(t, ok)
	assert.Equal(t, enums.ModeOff, th.Mode())

	reg := sysDevice.NewRegistry(mocks.FakeNewLogger(nil))
	require.NoError(t, reg.Register(d.GetAppliance()))
	router := alexa.NewRouter(&alexa.ConstructRouter{
		Registry: reg,
		Logger:   mocks.FakeNewLogger(nil),
	})

	increment := []byte(`{"header":{"namespace":"Alexa.ConnectedHome.Control",` +
		`"name":"IncrementTargetTemperatureRequest","payloadVersion":"2","messageId":"1"},` +
		`"payload":{"accessToken":"t","appliance":{"applianceId":"th1"},"deltaTemperature":{"value":2}}}`)

	resp, err := router.Process(http.MethodPut, increment)
	require.NoError(t, err)
	assert.Equal(t, alexa.UnwillingToSetValueError, resp.Header.Name)
	assert.Equal(t, 0, len(client.Published))

	client.Deliver("alexa/th1/state/mode", "HEAT")
	assert.Equal(t, enums.ModeOff, th.Mode())
	resp, err = router.Process(http.MethodPut, increment)
	require.NoError(t, err)
	assert.Equal(t, alexa.UnwillingToSetValueError, resp.Header.Name)
	assert.Equal(t, 0, len(client.Published))

	client.Deliver("alexa/th1/state/target", "21")
	assert.Equal(t, enums.ModeHeat, th.Mode())
	resp, err = router.Process(http.MethodPut, increment)
	require.NoError(t, err)
	assert.Equal(t, alexa.IncrementTargetTemperatureConfirmation, resp.Header.Name)
	assert.Equal(t, mocks.FakeMessage{Topic: "alexa/th1/set/target", Payload: "23"}, client.Last())
}

// Tests that absolute target is enough once mode is known.
func TestThermostatTargetWithoutState(t *testing.T) {
	d, client := getDevice(t, enums.DevThermostat, "id: th1\nname: Hall")
	th, _ := d.GetAppliance().Thermostat()

	client.Deliver("alexa/th1/state/mode", "cool")
	require.NoError(t, th.SetTemperature(helpers.CelsiusToNative(20)))
	assert.Equal(t, enums.ModeCool, th.Mode())
	assert.Equal(t, "20", client.Last().Payload)
}
