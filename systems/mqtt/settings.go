package mqtt

import (
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/utils"
)

// MQTT device settings.
type settings struct {
	device.Settings `yaml:",inline"`

	Topic string `yaml:"topic"`
}

// Validate falls back to device ID when topic is not set.
func (s *settings) Validate() error {
	if "" == s.Topic {
		s.Topic = utils.NormalizeDeviceName(s.ID)
	}

	if strings.ContainsAny(s.Topic, "+#") {
		return &providers.ErrInvalidSetting{Field: "topic", Reason: "wildcards are not allowed"}
	}

	s.Topic = strings.Trim(s.Topic, "/")
	return nil
}
