// Package virtual contains in-memory device driver.
package virtual

import (
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

// ConstructDevice has data required for a new virtual device.
type ConstructDevice struct {
	DeviceType enums.DeviceType
	RawConfig  []byte
	Logger     common.ILoggerProvider
	Validator  providers.IValidatorProvider
	Cron       providers.ICronProvider
}

// In-memory device which keeps its state.
type virtualDevice struct {
	mu sync.Mutex

	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	cronID    int
	appliance *device.Appliance

	on        bool
	level     uint16
	current   uint16
	target    uint16
	mode      enums.ThermostatMode
	savedMode enums.ThermostatMode
	lock      uint16
}

// NewDevice constructs a new virtual device of the requested type.
func NewDevice(ctor *ConstructDevice) (device.IDevice, error) {
	s := &settings{}
	if err := utils.LoadSettings(ctor.Validator, ctor.RawConfig, s); err != nil {
		return nil, errors.Wrap(err, "failed to load virtual device settings")
	}

	caps := ctor.DeviceType.Capabilities()
	if caps.IsEmpty() {
		return nil, &ErrUnsupportedType{DeviceType: ctor.DeviceType}
	}

	d := &virtualDevice{
		logger:    ctor.Logger,
		cron:      ctor.Cron,
		cronID:    -1,
		on:        s.On,
		level:     helpers.PercentToLevel(s.Level),
		current:   helpers.CelsiusToNative(s.Current),
		target:    helpers.CelsiusToNative(s.Target),
		mode:      s.Mode,
		savedMode: s.Mode,
	}

	if s.Locked {
		d.lock = 1
	}

	if enums.ModeOff == d.savedMode {
		d.savedMode = enums.ModeAuto
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

	if caps.Has(enums.CapThermostat) && simulationOff != strings.ToLower(s.Simulate) {
		id, err := ctor.Cron.AddFunc(s.Simulate, d.simulate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to schedule thermostat simulation")
		}

		d.cronID = id
	}

	d.logger.Debug("Loaded virtual device", common.LogDeviceIDToken, s.ID,
		common.LogDeviceTypeToken, ctor.DeviceType.String())
	return d, nil
}

// GetAppliance returns appliance backed by the device.
func (d *virtualDevice) GetAppliance() *device.Appliance {
	return d.appliance
}

// Unload stops thermostat simulation.
func (d *virtualDevice) Unload() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if -1 != d.cronID {
		d.cron.RemoveFunc(d.cronID)
		d.cronID = -1
	}
}

// On turns device on.
// Thermostat returns to the last active mode.
func (d *virtualDevice) On() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.on = true
	if enums.ModeOff == d.mode {
		d.mode = d.savedMode
	}

	d.logger.Debug("Turned on", common.LogDeviceIDToken, d.appliance.ID())
	return nil
}

// Off turns device off.
func (d *virtualDevice) Off() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.on = false
	if enums.ModeOff != d.mode {
		d.savedMode = d.mode
		d.mode = enums.ModeOff
	}

	d.logger.Debug("Turned off", common.LogDeviceIDToken, d.appliance.ID())
	return nil
}

// SetLevel sets absolute level.
func (d *virtualDevice) SetLevel(level uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.level = level
	d.on = level > 0
	return nil
}

// RaiseLevel raises level up to the maximum.
func (d *virtualDevice) RaiseLevel(delta uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if uint32(d.level)+uint32(delta) > 0xFFFF {
		d.level = 0xFFFF
	} else {
		d.level += delta
	}

	d.on = d.level > 0
	return nil
}

// LowerLevel lowers level down to zero.
func (d *virtualDevice) LowerLevel(delta uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if delta > d.level {
		d.level = 0
	} else {
		d.level -= delta
	}

	d.on = d.level > 0
	return nil
}

// CurrentTemperature returns simulated reading.
func (d *virtualDevice) CurrentTemperature() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.current
}

// TargetTemperature returns target.
func (d *virtualDevice) TargetTemperature() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.target
}

// Mode returns thermostat mode.
func (d *virtualDevice) Mode() enums.ThermostatMode {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.mode
}

// SetTemperature sets target.
func (d *virtualDevice) SetTemperature(target uint16) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.target = target
	return nil
}

// LockState returns lock state.
func (d *virtualDevice) LockState() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.lock
}

// Lock locks the device.
func (d *virtualDevice) Lock() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lock = 1
	return nil
}

// Unlock unlocks the device.
func (d *virtualDevice) Unlock() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.lock = 0
	return nil
}

// Moves current reading one tenth of a degree toward the target.
func (d *virtualDevice) simulate() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if enums.ModeOff == d.mode {
		return
	}

	switch {
	case d.current < d.target:
		d.current++
	case d.current > d.target:
		d.current--
	}
}
