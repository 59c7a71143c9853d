package mqtt

import (
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/plugins/helpers"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/utils"
	"github.com/pkg/errors"
)

// ConstructDevice has data required for a new MQTT device.
type ConstructDevice struct {
	DeviceType enums.DeviceType
	RawConfig  []byte
	Logger     common.ILoggerProvider
	Validator  providers.IValidatorProvider
	Client     providers.IMQTTProvider
}

// Device which publishes commands and caches reported state.
type mqttDevice struct {
	mu sync.Mutex

	logger    common.ILoggerProvider
	client    providers.IMQTTProvider
	appliance *device.Appliance
	prefix    string
	topic     string
	stateSub  string

	current     uint16
	target      uint16
	mode        enums.ThermostatMode
	lock        uint16
	modeKnown   bool
	targetKnown bool
}

// NewDevice constructs a new MQTT-backed device and subscribes to its state.
func NewDevice(ctor *ConstructDevice) (device.IDevice, error) {
	if nil == ctor.Client {
		return nil, &ErrNoClient{}
	}

	s := &settings{}
	if err := utils.LoadSettings(ctor.Validator, ctor.RawConfig, s); err != nil {
		return nil, errors.Wrap(err, "failed to load mqtt device settings")
	}

	caps := ctor.DeviceType.Capabilities()
	if caps.IsEmpty() {
		return nil, &ErrUnsupportedType{DeviceType: ctor.DeviceType}
	}

	d := &mqttDevice{
		logger: ctor.Logger,
		client: ctor.Client,
		prefix: ctor.Client.TopicPrefix(),
		topic:  s.Topic,
	}

	opts := make([]device.Option, 0)
	if caps.Has(enums.CapSwitchable) {
		opts = append(opts, device.WithSwitch(d))
	}
	if caps.Has(enums.CapLevelable) {
		opts = append(opts, device.WithLevel(d))
	}
	if caps.Has(enums.CapThermostat) {
		opts = append(opts, device.WithThermostat(d))
	}
	if caps.Has(enums.CapLockable) {
		opts = append(opts, device.WithLock(d))
	}

	d.appliance = device.NewAppliance(s.Info(ctor.DeviceType), opts...)

	if caps.Has(enums.CapThermostat) || caps.Has(enums.CapLockable) {
		d.stateSub = stateTopic(d.prefix, d.topic, "+")
		if err := d.client.Subscribe(d.stateSub, d.stateReceived); err != nil {
			return nil, errors.Wrap(err, "failed to subscribe to device state")
		}
	}

	d.logger.Debug("Loaded mqtt device", common.LogDeviceIDToken, s.ID,
		common.LogDeviceTypeToken, ctor.DeviceType.String(), common.LogTopicToken, d.topic)
	return d, nil
}

// GetAppliance returns appliance backed by the device.
func (d *mqttDevice) GetAppliance() *device.Appliance {
	return d.appliance
}

// Unload removes state subscription.
func (d *mqttDevice) Unload() {
	if "" == d.stateSub {
		return
	}

	if err := d.client.Unsubscribe(d.stateSub); err != nil {
		d.logger.Warn("Failed to unsubscribe", common.LogDeviceIDToken, d.appliance.ID(),
			common.LogErrorToken, err.Error())
	}
}

// On publishes power command.
func (d *mqttDevice) On() error {
	return d.publish(propPower, payloadOn)
}

// Off publishes power command.
func (d *mqttDevice) Off() error {
	return d.publish(propPower, payloadOff)
}

// SetLevel publishes absolute level in percents.
func (d *mqttDevice) SetLevel(level uint16) error {
	return d.publish(propLevel, formatFloat(helpers.LevelToPercent(level)))
}

// RaiseLevel publishes level delta in percents.
func (d *mqttDevice) RaiseLevel(delta uint16) error {
	return d.publish(propLevelRaise, formatFloat(helpers.LevelToPercent(delta)))
}

// LowerLevel publishes level delta in percents.
func (d *mqttDevice) LowerLevel(delta uint16) error {
	return d.publish(propLevelLower, formatFloat(helpers.LevelToPercent(delta)))
}

// CurrentTemperature returns last reported reading.
func (d *mqttDevice) CurrentTemperature() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.current
}

// TargetTemperature returns last known target.
func (d *mqttDevice) TargetTemperature() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.target
}

// Mode returns last reported mode.
// Thermostat stays OFF until both mode and target were reported,
// so target changes are refused while the setpoint is unknown.
func (d *mqttDevice) Mode() enums.ThermostatMode {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.modeKnown || !d.targetKnown {
		return enums.ModeOff
	}

	return d.mode
}

// SetTemperature publishes target in Celsius.
func (d *mqttDevice) SetTemperature(target uint16) error {
	if err := d.publish(propTarget, formatFloat(helpers.NativeToCelsius(target))); err != nil {
		return err
	}

	d.mu.Lock()
	d.target = target
	d.targetKnown = true
	d.mu.Unlock()
	return nil
}

// LockState returns last known lock state.
func (d *mqttDevice) LockState() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lock
}

// Lock publishes lock command.
func (d *mqttDevice) Lock() error {
	return d.setLock(enums.LockLocked)
}

// Unlock publishes unlock command.
func (d *mqttDevice) Unlock() error {
	return d.setLock(enums.LockUnlocked)
}

// Publishes lock command and updates cached state.
func (d *mqttDevice) setLock(state enums.LockState) error {
	if err := d.publish(propLock, state.String()); err != nil {
		return err
	}

	d.mu.Lock()
	d.lock = lockNative(state)
	d.mu.Unlock()
	return nil
}

// Publishes command for the property.
func (d *mqttDevice) publish(property string, payload string) error {
	topic := commandTopic(d.prefix, d.topic, property)
	if err := d.client.Publish(topic, payload); err != nil {
		return errors.Wrapf(err, "device %s failed to send %s", d.appliance.ID(), property)
	}

	return nil
}

// Processes state message.
func (d *mqttDevice) stateReceived(topic string, payload []byte) {
	property := stateProperty(topic)
	if err := d.applyState(property, strings.TrimSpace(string(payload))); err != nil {
		d.logger.Warn("Failed to process state", common.LogDeviceIDToken, d.appliance.ID(),
			common.LogTopicToken, topic, common.LogErrorToken, err.Error())
	}
}

// Updates cached state from reported value.
func (d *mqttDevice) applyState(property string, value string) error {
	switch property {
	case propTemperature, propTarget:
		c, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &ErrWrongState{Property: property, Value: value}
		}

		d.mu.Lock()
		if propTemperature == property {
			d.current = helpers.CelsiusToNative(c)
		} else {
			d.target = helpers.CelsiusToNative(c)
			d.targetKnown = true
		}
		d.mu.Unlock()
	case propMode:
		m, err := enums.ThermostatModeString(value)
		if err != nil {
			return &ErrWrongState{Property: property, Value: value}
		}

		d.mu.Lock()
		d.mode = m
		d.modeKnown = true
		d.mu.Unlock()
	case propLock:
		l, err := enums.LockStateString(value)
		if err != nil {
			return &ErrWrongState{Property: property, Value: value}
		}

		d.mu.Lock()
		d.lock = lockNative(l)
		d.mu.Unlock()
	default:
		d.logger.Debug("Ignoring state property", common.LogDeviceIDToken, d.appliance.ID(),
			common.LogFieldToken, property)
	}

	return nil
}

// Converts lock state to driver representation.
func lockNative(state enums.LockState) uint16 {
	if enums.LockLocked == state {
		return 1
	}

	return 0
}

// Formats number with up to two decimals.
func formatFloat(value float64) string {
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
}
