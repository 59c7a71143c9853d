package settings

import "fmt"

// ErrUnknownDriver defines device driver which is not known.
type ErrUnknownDriver struct {
	Driver string
}

// Error formats output.
func (e *ErrUnknownDriver) Error() string {
	return fmt.Sprintf("device driver %s is unknown", e.Driver)
}

// ErrDuplicateDevice defines device ID which was already configured.
type ErrDuplicateDevice struct {
	ID string
}

// Error formats output.
func (e *ErrDuplicateDevice) Error() string {
	return fmt.Sprintf("device %s is configured more than once", e.ID)
}

// ErrMissingID defines device config without ID.
type ErrMissingID struct {
}

// Error formats output.
func (e *ErrMissingID) Error() string {
	return "device id is not configured"
}

// ErrNoConfig defines config provider which returned nothing.
type ErrNoConfig struct {
}

// Error formats output.
func (e *ErrNoConfig) Error() string {
	return "config provider returned nothing"
}
