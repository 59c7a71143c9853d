package virtual

import (
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

const (
	// Disables thermostat simulation.
	simulationOff = "off"
)

// Virtual device settings.
type settings struct {
	device.Settings `yaml:",inline"`

	On       bool                 `yaml:"on"`
	Level    float64              `yaml:"level" validate:"percent"`
	Current  float64              `yaml:"current" default:"21"`
	Target   float64              `yaml:"target" default:"21"`
	Mode     enums.ThermostatMode `yaml:"mode"`
	Locked   bool                 `yaml:"locked"`
	Simulate string               `yaml:"simulate" default:"@every 30s"`
}

// Validate has nothing to check beyond tags.
func (s *settings) Validate() error {
	return nil
}
