// Package config contains configuration files loader.
package config

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/systems"
	"github.com/go-home-io/alexa-bridge/systems/logger"
	"github.com/go-home-io/alexa-bridge/utils"
	"github.com/gobwas/glob"
	"github.com/pkg/errors"
)

const (
	// DefaultPattern describes default config files pattern.
	DefaultPattern = "*.{yaml,yml}"
)

// IConfigProvider provides capabilities for loading system configuration.
type IConfigProvider interface {
	Load() chan []byte
}

// ConstructConfig contains data required for a new config provider.
type ConstructConfig struct {
	Location     string
	Pattern      string
	PluginLogger common.ILoggerProvider
}

// Default file system config loader.
type fsConfig struct {
	location string
	pattern  glob.Glob
	logger   common.ILoggerProvider
}

// NewConfigProvider constructs a new file system config provider.
func NewConfigProvider(ctor *ConstructConfig) (IConfigProvider, error) {
	configLogger := logger.NewPluginLogger(&logger.ConstructPluginLogger{
		SystemLogger: ctor.PluginLogger,
		Provider:     "fs",
		System:       systems.SysConfig,
	})

	pattern := ctor.Pattern
	if "" == pattern {
		pattern = DefaultPattern
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.Wrap(err, "wrong config files pattern")
	}

	loc := ctor.Location
	if "" == loc {
		loc = utils.GetDefaultConfigsDir()
		configLogger.Info("Using default location", "location", loc)
	}

	return &fsConfig{
		location: loc,
		pattern:  g,
		logger:   configLogger,
	}, nil
}

// Load files from local file system.
func (c *fsConfig) Load() chan []byte {
	fileList := make([]string, 0)
	fError := filepath.Walk(c.location, func(path string, f os.FileInfo, err error) error {
		if err != nil {
			c.logger.Warn("Failed get folder files", common.LogFileToken, path)
			return err
		}
		if f.IsDir() {
			return nil
		}
		fileList = append(fileList, path)
		return nil
	})

	filesChan := make(chan []byte)
	if fError != nil {
		c.logger.Error("Failed to walk through files", fError)
		close(filesChan)
		return filesChan
	}

	go func() {
		for _, v := range fileList {
			if !c.isValidConfigFileName(v) {
				continue
			}

			fileData, err := ioutil.ReadFile(v)
			if err != nil {
				c.logger.Error("Failed to read config file", err, common.LogFileToken, v)
				continue
			}

			c.logger.Info("Processing config file", common.LogFileToken, v)
			filesChan <- fileData
		}

		close(filesChan)
	}()

	return filesChan
}

// Checks whether config file name is valid.
// Files starting with underscore are ignored.
func (c *fsConfig) isValidConfigFileName(name string) bool {
	name = filepath.Base(name)
	if "" == name || name[0] == '_' {
		return false
	}

	return c.pattern.Match(name)
}
