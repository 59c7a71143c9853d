// Package systems contains known system types.
package systems

import (
	"fmt"
	"strings"
)

// SystemType is an enum describing known system types.
type SystemType int

const (
	// SysAlexa describes directives endpoint system.
	SysAlexa SystemType = iota
	// SysLogger describes logger system.
	SysLogger
	// SysDevice describes device system.
	SysDevice
	// SysConfig describes config provider system.
	SysConfig
	// SysMQTT describes MQTT broker connection system.
	SysMQTT
	// SysValidator describes config validator system.
	SysValidator
)

var systemTypeNames = map[SystemType]string{
	SysAlexa:     "alexa",
	SysLogger:    "logger",
	SysDevice:    "device",
	SysConfig:    "config",
	SysMQTT:      "mqtt",
	SysValidator: "validator",
}

// String returns system name.
func (i SystemType) String() string {
	if s, ok := systemTypeNames[i]; ok {
		return s
	}

	return fmt.Sprintf("SystemType(%d)", int(i))
}

// SystemTypeString parses system name.
func SystemTypeString(s string) (SystemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, v := range systemTypeNames {
		if v == s {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%s does not belong to SystemType values", s)
}
