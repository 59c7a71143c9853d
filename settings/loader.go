// Package settings is responsible for parsing yaml-based configuration.
package settings

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/systems"
	"github.com/go-home-io/alexa-bridge/systems/config"
	sysDevice "github.com/go-home-io/alexa-bridge/systems/device"
	"github.com/go-home-io/alexa-bridge/systems/logger"
	"github.com/go-home-io/alexa-bridge/systems/mqtt"
	"github.com/go-home-io/alexa-bridge/utils"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Logger system.
	logSystem = "settings"
	// Logger flush schedule.
	flushSpec = "@every 10s"
)

const (
	// Console logger provider.
	providerConsole = "console"
	// Paho MQTT provider.
	providerPaho = "paho"
)

// StartUpOptions defines arguments allowed by the system.
type StartUpOptions struct {
	Config  string `short:"c" long:"config" description:"Config files location. Defaults to ./configs."`
	Pattern string `long:"pattern" description:"Config files pattern." default:"*.{yaml,yml}"`
}

// Defines loaded provider record.
type rawProvider struct {
	System   string
	Provider string
	Config   []byte
}

// Device ID selector.
type rawDeviceSelector struct {
	ID string `yaml:"id"`
}

// System settings.
type settingsProvider struct {
	logger    common.ILoggerProvider
	cron      providers.ICronProvider
	validator providers.IValidatorProvider
	registry  providers.IRegistryProvider
	mqtt      providers.IMQTTProvider

	alexa         *providers.AlexaSettings
	mqttSettings  *providers.MQTTSettings
	devicesConfig []*providers.RawDevice
	devices       []device.IDevice
}

// Load system configuration.
func Load(options *StartUpOptions) (providers.ISettingsProvider, error) {
	s := newSettingsProvider()

	configProvider, err := config.NewConfigProvider(&config.ConstructConfig{
		Location:     options.Config,
		Pattern:      options.Pattern,
		PluginLogger: s.logger,
	})
	if err != nil {
		return nil, err
	}

	dataChan := configProvider.Load()
	if nil == dataChan {
		return nil, &ErrNoConfig{}
	}

	files := make([][]byte, 0)
	for fileData := range dataChan {
		files = append(files, fileData)
	}

	if err := s.loadFiles(files); err != nil {
		return nil, err
	}

	return s, nil
}

// Constructs settings with default logger.
func newSettingsProvider() *settingsProvider {
	s := &settingsProvider{
		logger:        logger.NewConsoleLogger(&logger.ConstructLogger{}),
		devicesConfig: make([]*providers.RawDevice, 0),
		devices:       make([]device.IDevice, 0),
	}

	s.validator = utils.NewValidator(s.PluginLogger(systems.SysValidator, "alexa-bridge"))
	return s
}

// Parses every config file and builds systems.
func (s *settingsProvider) loadFiles(files [][]byte) error {
	tpl := newTemplateProvider(s.logger)
	allProviders := make([]*rawProvider, 0)
	for _, v := range files {
		provs, err := s.loadFile(v, tpl)
		if err != nil {
			return err
		}

		allProviders = append(allProviders, provs...)
	}

	allProviders = s.loadLoggerProvider(allProviders)
	for _, v := range allProviders {
		s.parseProvider(v)
	}

	return s.validate()
}

// Processes single yaml file.
func (s *settingsProvider) loadFile(fileData []byte, tpl ITemplateProvider) ([]*rawProvider, error) {
	fileData, err := tpl.Process(fileData)
	if err != nil {
		return nil, err
	}

	provs := make([]*rawProvider, 0)
	decoder := yaml.NewDecoder(bytes.NewReader(fileData))
	for {
		var value map[string]interface{}
		err := decoder.Decode(&value)
		if err == io.EOF {
			break
		}

		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, logSystem)
			break
		}

		if nil == value {
			continue
		}

		componentType := ""
		componentProvider := ""

		if cs, ok := value["system"].(string); ok {
			componentType = strings.ToLower(cs)
		}

		if ct, ok := value["provider"].(string); ok {
			componentProvider = strings.ToLower(ct)
		}

		if "" == componentType {
			s.logger.Warn("Failed to parse a record in the config file: system is not defined",
				common.LogSystemToken, logSystem)
			continue
		}

		delete(value, "system")
		delete(value, "provider")

		byteData, err := yaml.Marshal(value)
		if err != nil {
			s.logger.Error("Failed to parse config file", err, common.LogSystemToken, componentType,
				common.LogProviderToken, componentProvider)
			continue
		}

		provs = append(provs, &rawProvider{
			Provider: componentProvider,
			System:   componentType,
			Config:   byteData,
		})
	}

	return provs, nil
}

// Loads logger configuration.
func (s *settingsProvider) loadLoggerProvider(provs []*rawProvider) []*rawProvider {
	providersLeft := make([]*rawProvider, 0, len(provs))
	for _, v := range provs {
		if v.System != systems.SysLogger.String() {
			providersLeft = append(providersLeft, v)
			continue
		}

		if providerConsole != v.Provider && "" != v.Provider {
			s.logger.Warn("Unknown logger provider, using console", common.LogProviderToken, v.Provider)
		}

		s.logger = logger.NewConsoleLogger(&logger.ConstructLogger{
			RawConfig: v.Config,
		})
		s.validator.SetLogger(s.PluginLogger(systems.SysValidator, "alexa-bridge"))
	}

	return providersLeft
}

// Processes single provider config.
func (s *settingsProvider) parseProvider(provider *rawProvider) {
	s.logger.Debug("Processing config", common.LogProviderToken, provider.Provider,
		common.LogSystemToken, provider.System)

	sys, err := systems.SystemTypeString(provider.System)
	if err != nil {
		s.logger.Warn("Unknown provider's system", common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System)
		return
	}

	switch sys {
	case systems.SysAlexa:
		err = s.processAlexa(provider)
	case systems.SysMQTT:
		err = s.processMQTT(provider)
	case systems.SysDevice:
		err = s.processDevice(provider)
	default:
		s.logger.Warn("System can't be configured", common.LogSystemToken, provider.System)
	}

	if err != nil {
		s.logger.Error("Failed to load provider config", err, common.LogProviderToken, provider.Provider,
			common.LogSystemToken, provider.System)
	}
}

// Loads directives endpoint settings.
func (s *settingsProvider) processAlexa(provider *rawProvider) error {
	if nil != s.alexa {
		s.logger.Warn("Duplicated alexa settings, ignoring", common.LogSystemToken, provider.System)
		return nil
	}

	set := &providers.AlexaSettings{}
	if err := utils.LoadSettings(s.validator, provider.Config, set); err != nil {
		return err
	}

	s.alexa = set
	return nil
}

// Loads MQTT broker settings.
func (s *settingsProvider) processMQTT(provider *rawProvider) error {
	if providerPaho != provider.Provider && "" != provider.Provider {
		return &utils.ErrWrongProvider{Provider: provider.Provider}
	}

	if nil != s.mqttSettings {
		s.logger.Warn("Duplicated mqtt settings, ignoring", common.LogSystemToken, provider.System)
		return nil
	}

	set := &providers.MQTTSettings{}
	if err := utils.LoadSettings(s.validator, provider.Config, set); err != nil {
		return err
	}

	s.mqttSettings = set
	return nil
}

// Loads raw device record.
func (s *settingsProvider) processDevice(provider *rawProvider) error {
	deviceType, driver, err := utils.VerifyDeviceProvider(provider.Provider)
	if err != nil {
		return err
	}

	selector := &rawDeviceSelector{}
	if err := yaml.Unmarshal(provider.Config, selector); err != nil {
		return errors.Wrap(err, "yaml un-marshal failed")
	}

	if "" == selector.ID {
		return &ErrMissingID{}
	}

	for _, v := range s.devicesConfig {
		if v.ID == selector.ID {
			return &ErrDuplicateDevice{ID: selector.ID}
		}
	}

	s.devicesConfig = append(s.devicesConfig, &providers.RawDevice{
		Driver:     driver,
		DeviceType: deviceType,
		ID:         selector.ID,
		Config:     provider.Config,
	})

	return nil
}

// Validates whether all necessary settings are present and builds systems.
func (s *settingsProvider) validate() error {
	if nil == s.alexa {
		s.logger.Warn("Alexa settings are not defined, using the default ones",
			common.LogSystemToken, logSystem)
		s.alexa = &providers.AlexaSettings{}
		if err := utils.LoadSettings(s.validator, nil, s.alexa); err != nil {
			return err
		}
	}

	s.cron = utils.NewCron()
	if _, err := s.cron.AddFunc(flushSpec, s.logger.Flush); err != nil {
		return errors.Wrap(err, "failed to register logger flushing")
	}

	if nil != s.mqttSettings {
		client, err := mqtt.NewClient(&mqtt.ConstructClient{
			Settings: s.mqttSettings,
			Logger:   s.PluginLogger(systems.SysMQTT, providerPaho),
		})
		if err != nil {
			return errors.Wrap(err, "failed to connect to mqtt broker")
		}

		s.mqtt = client
	}

	s.registry = sysDevice.NewRegistry(s.PluginLogger(systems.SysDevice, "registry"))
	for _, v := range s.devicesConfig {
		if err := s.loadDevice(v); err != nil {
			s.logger.Error("Failed to load device", err, common.LogDeviceIDToken, v.ID,
				common.LogDeviceTypeToken, v.DeviceType.String(), common.LogProviderToken, v.Driver)
		}
	}

	s.logger.Info("Loaded devices", "count", strconv.Itoa(s.registry.Len()))
	return nil
}
