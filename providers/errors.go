package providers

import "fmt"

// ErrInvalidSetting defines wrong setting value.
type ErrInvalidSetting struct {
	Field  string
	Reason string
}

// Error formats output.
func (e *ErrInvalidSetting) Error() string {
	return fmt.Sprintf("setting %s is invalid: %s", e.Field, e.Reason)
}
