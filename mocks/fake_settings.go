//+build !release

package mocks

import (
	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/systems"
)

type fakeSettings struct {
	logger   common.ILoggerProvider
	cron     providers.ICronProvider
	alexa    *providers.AlexaSettings
	registry providers.IRegistryProvider
	devices  []*providers.RawDevice
	unloaded bool
}

func (f *fakeSettings) SystemLogger() common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) PluginLogger(systems.SystemType, string) common.ILoggerProvider {
	return f.logger
}

func (f *fakeSettings) Cron() providers.ICronProvider {
	return f.cron
}

func (f *fakeSettings) Validator() providers.IValidatorProvider {
	return FakeNewValidator(true)
}

func (f *fakeSettings) AlexaSettings() *providers.AlexaSettings {
	if nil != f.alexa {
		return f.alexa
	}

	return &providers.AlexaSettings{
		Port: 9999,
		Path: "/alexa/",
	}
}

func (f *fakeSettings) DevicesConfig() []*providers.RawDevice {
	return f.devices
}

func (f *fakeSettings) Registry() providers.IRegistryProvider {
	return f.registry
}

func (f *fakeSettings) UnloadDevices() {
	f.unloaded = true
}

// FakeNewSettings creates a new fake settings provider.
func FakeNewSettings(registry providers.IRegistryProvider, alexa *providers.AlexaSettings,
	logCallback func(string)) providers.ISettingsProvider {
	return &fakeSettings{
		logger:   FakeNewLogger(logCallback),
		cron:     FakeNewCron(),
		alexa:    alexa,
		registry: registry,
		devices:  make([]*providers.RawDevice, 0),
	}
}
