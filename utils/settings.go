package utils

import (
	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// LoadSettings parses raw yaml config into the settings object,
// applies defaults and validates it.
func LoadSettings(validator providers.IValidatorProvider, rawConfig []byte, settings common.ISettings) error {
	if nil != rawConfig {
		err := yaml.Unmarshal(rawConfig, settings)
		if err != nil {
			return errors.Wrap(err, "yaml un-marshal failed")
		}
	}

	if !validator.Validate(settings) {
		return &ErrInvalidConfig{}
	}

	err := settings.Validate()
	if err != nil {
		return errors.Wrap(err, "settings validate failed")
	}

	return nil
}
