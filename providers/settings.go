package providers

import (
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/systems"
)

// ISettingsProvider defines settings loader provider logic.
type ISettingsProvider interface {
	SystemLogger() common.ILoggerProvider
	PluginLogger(system systems.SystemType, provider string) common.ILoggerProvider
	Cron() ICronProvider
	Validator() IValidatorProvider
	AlexaSettings() *AlexaSettings
	DevicesConfig() []*RawDevice
	Registry() IRegistryProvider
	UnloadDevices()
}

// RawDevice has data describing device, loaded from config files.
type RawDevice struct {
	Driver     string
	DeviceType enums.DeviceType
	ID         string
	Config     []byte
}

// AlexaSettings has configured data for the directives endpoint.
type AlexaSettings struct {
	Port             int    `yaml:"port" validate:"required,port" default:"8080"`
	Path             string `yaml:"path" validate:"required" default:"/alexa/"`
	AccessLog        bool   `yaml:"accessLog"`
	LegacyResolution bool   `yaml:"legacyResolution"`
}

// Validate normalizes endpoint path.
func (s *AlexaSettings) Validate() error {
	if !strings.HasPrefix(s.Path, "/") {
		return &ErrInvalidSetting{Field: "path", Reason: "must start with /"}
	}

	if !strings.HasSuffix(s.Path, "/") {
		s.Path += "/"
	}

	return nil
}

// MQTTSettings has configured data for MQTT broker connection.
type MQTTSettings struct {
	Broker         string `yaml:"broker" validate:"required,broker"`
	ClientID       string `yaml:"clientId"`
	Username       string `yaml:"username"`
	Password       string `yaml:"password"`
	TopicPrefix    string `yaml:"topicPrefix" validate:"required" default:"alexa"`
	QoS            byte   `yaml:"qos" validate:"lte=2"`
	ConnectTimeout int    `yaml:"connectTimeout" validate:"gt=0" default:"10"`
}

// Validate checks that topic prefix has no wildcards.
func (s *MQTTSettings) Validate() error {
	if strings.ContainsAny(s.TopicPrefix, "+#") {
		return &ErrInvalidSetting{Field: "topicPrefix", Reason: "wildcards are not allowed"}
	}

	s.TopicPrefix = strings.TrimSuffix(s.TopicPrefix, "/")
	return nil
}
