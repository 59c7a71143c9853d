package settings

import (
	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/systems"
	"github.com/go-home-io/alexa-bridge/systems/logger"
)

// SystemLogger returns default system logger.
func (s *settingsProvider) SystemLogger() common.ILoggerProvider {
	return s.logger
}

// PluginLogger returns logger specifically for the system provider.
func (s *settingsProvider) PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider {
	return logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: s.logger,
		System:       system,
		Provider:     provider,
	})
}

// Cron returns system's cron provider.
func (s *settingsProvider) Cron() providers.ICronProvider {
	return s.cron
}

// Validator returns yaml validator provider.
func (s *settingsProvider) Validator() providers.IValidatorProvider {
	return s.validator
}

// AlexaSettings returns directives endpoint settings.
func (s *settingsProvider) AlexaSettings() *providers.AlexaSettings {
	return s.alexa
}

// DevicesConfig returns raw devices configs.
func (s *settingsProvider) DevicesConfig() []*providers.RawDevice {
	return s.devicesConfig
}

// Registry returns registry with every loaded appliance.
func (s *settingsProvider) Registry() providers.IRegistryProvider {
	return s.registry
}

// UnloadDevices stops scheduler, every device driver and closes broker connection.
func (s *settingsProvider) UnloadDevices() {
	if nil != s.cron {
		s.cron.Stop()
	}

	for _, v := range s.devices {
		v.Unload()
	}

	if nil != s.mqtt {
		s.mqtt.Disconnect()
	}

	s.logger.Flush()
}
