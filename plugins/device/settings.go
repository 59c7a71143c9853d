package device

import (
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// Settings has appliance metadata loaded from the config file.
// Drivers embed it into their own settings.
type Settings struct {
	ID           string            `yaml:"id" validate:"required"`
	Name         string            `yaml:"name" validate:"required"`
	Description  string            `yaml:"description"`
	Manufacturer string            `yaml:"manufacturer" default:"go-home"`
	Model        string            `yaml:"model"`
	Version      string            `yaml:"version" default:"1.0"`
	Details      map[string]string `yaml:"details"`
}

// Info converts settings into appliance metadata.
// Model and description fall back to the device type.
func (s *Settings) Info(deviceType enums.DeviceType) Info {
	i := Info{
		ID:                  s.ID,
		Manufacturer:        s.Manufacturer,
		Model:               s.Model,
		Version:             s.Version,
		FriendlyName:        s.Name,
		FriendlyDescription: s.Description,
		Details:             s.Details,
	}

	if "" == i.Model {
		i.Model = deviceType.String()
	}

	if "" == i.FriendlyDescription {
		i.FriendlyDescription = s.Name + " " + deviceType.String()
	}

	return i
}
