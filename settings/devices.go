package settings

import (
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/systems"
	"github.com/go-home-io/alexa-bridge/systems/logger"
	"github.com/go-home-io/alexa-bridge/systems/mqtt"
	"github.com/go-home-io/alexa-bridge/systems/virtual"
)

const (
	// In-memory device driver.
	driverVirtual = "virtual"
	// MQTT device driver.
	driverMQTT = "mqtt"
)

// Constructs device driver and registers its appliance.
func (s *settingsProvider) loadDevice(raw *providers.RawDevice) error {
	d, err := s.newDevice(raw)
	if err != nil {
		return err
	}

	if err := s.registry.Register(d.GetAppliance()); err != nil {
		d.Unload()
		return err
	}

	s.devices = append(s.devices, d)
	return nil
}

// Constructs device driver.
func (s *settingsProvider) newDevice(raw *providers.RawDevice) (device.IDevice, error) {
	log := logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       systems.SysDevice,
		Provider:     raw.Driver,
		DeviceID:     raw.ID,
	})

	switch raw.Driver {
	case driverVirtual:
		return virtual.NewDevice(&virtual.ConstructDevice{
			DeviceType: raw.DeviceType,
			RawConfig:  raw.Config,
			Logger:     log,
			Validator:  s.validator,
			Cron:       s.cron,
		})
	case driverMQTT:
		return mqtt.NewDevice(&mqtt.ConstructDevice{
			DeviceType: raw.DeviceType,
			RawConfig:  raw.Config,
			Logger:     log,
			Validator:  s.validator,
			Client:     s.mqtt,
		})
	}

	return nil, &ErrUnknownDriver{Driver: raw.Driver}
}
