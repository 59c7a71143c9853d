package enums

import (
	"fmt"
	"strings"
)

// ThermostatMode describes enum with known thermostat modes.
type ThermostatMode int

const (
	// ModeAuto describes automatic mode.
	ModeAuto ThermostatMode = iota
	// ModeHeat describes heating mode.
	ModeHeat
	// ModeCool describes cooling mode.
	ModeCool
	// ModeAway describes away mode.
	ModeAway
	// ModeOther describes any vendor-specific mode.
	ModeOther
	// ModeOff describes turned off thermostat.
	ModeOff
)

var thermostatModeNames = map[ThermostatMode]string{
	ModeAuto:  "AUTO",
	ModeHeat:  "HEAT",
	ModeCool:  "COOL",
	ModeAway:  "AWAY",
	ModeOther: "OTHER",
	ModeOff:   "OFF",
}

// String returns wire representation of the mode.
func (i ThermostatMode) String() string {
	if s, ok := thermostatModeNames[i]; ok {
		return s
	}

	return fmt.Sprintf("ThermostatMode(%d)", int(i))
}

// ThermostatModeString parses wire representation of the mode.
// Parsing is case-insensitive.
func ThermostatModeString(s string) (ThermostatMode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, v := range thermostatModeNames {
		if v == s {
			return k, nil
		}
	}

	return ModeOff, fmt.Errorf("%s does not belong to ThermostatMode values", s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *ThermostatMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	var err error
	*i, err = ThermostatModeString(s)
	return err
}
