package enums

import (
	"fmt"
	"strings"
)

// LockState describes enum with known lock states.
type LockState int

const (
	// LockUnlocked describes unlocked state.
	LockUnlocked LockState = iota
	// LockLocked describes locked state.
	LockLocked
)

var lockStateNames = map[LockState]string{
	LockUnlocked: "UNLOCKED",
	LockLocked:   "LOCKED",
}

// String returns wire representation of the state.
func (i LockState) String() string {
	if s, ok := lockStateNames[i]; ok {
		return s
	}

	return fmt.Sprintf("LockState(%d)", int(i))
}

// LockStateString parses wire representation of the state.
func LockStateString(s string) (LockState, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for k, v := range lockStateNames {
		if v == s {
			return k, nil
		}
	}

	return LockUnlocked, fmt.Errorf("%s does not belong to LockState values", s)
}

// LockStateNative converts device-native lock value.
// Any nonzero value means locked.
func LockStateNative(native uint16) LockState {
	if 0 != native {
		return LockLocked
	}

	return LockUnlocked
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (i *LockState) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	var err error
	*i, err = LockStateString(s)
	return err
}
