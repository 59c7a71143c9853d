package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// VerifyDeviceProvider transforms device provider from yaml config into
// actual type and driver name.
// Provider is expected in "type/driver" format, e.g. "thermostat/mqtt".
func VerifyDeviceProvider(configType string) (enums.DeviceType, string, error) {
	parts := strings.SplitN(configType, "/", 2)
	if len(parts) < 2 || "" == parts[1] || strings.Contains(parts[1], "/") {
		return enums.DevUnknown, "", &ErrWrongProvider{Provider: configType}
	}

	t, err := enums.DeviceTypeString(parts[0])
	if err != nil {
		return enums.DevUnknown, "", &ErrWrongProvider{Provider: configType}
	}

	return t, strings.ToLower(strings.TrimSpace(parts[1])), nil
}

// NormalizeDeviceName validates that final device name is correct.
func NormalizeDeviceName(raw string) string {
	raw = strings.ToLower(raw)
	replacer := strings.NewReplacer("%", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		";", "_",
		".", "_",
		"$", "_",
		"-", "_",
		"+", "_",
		"#", "_",
		" ", "_")
	return replacer.Replace(raw)
}

// GetCurrentWorkingDir returns application working directory.
func GetCurrentWorkingDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		panic("Failed to get current working dir")
	}

	return cwd
}

// GetDefaultConfigsDir returns default config directory which is cwd/configs.
func GetDefaultConfigsDir() string {
	if ConfigDir != "" {
		return ConfigDir
	}

	return fmt.Sprintf("%s/configs", GetCurrentWorkingDir())
}

// ConfigDir allows to re-write default config directory.
var ConfigDir = ""
