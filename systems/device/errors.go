package device

import (
	"fmt"

	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound defines unknown device error.
type ErrDeviceNotFound struct {
	ID string
}

// Error formats output.
func (e *ErrDeviceNotFound) Error() string {
	return fmt.Sprintf("device %s is unknown", e.ID)
}

// ErrCapabilityNotSupported defines known device without requested capability error.
type ErrCapabilityNotSupported struct {
	ID         string
	Capability enums.Capability
}

// Error formats output.
func (e *ErrCapabilityNotSupported) Error() string {
	return fmt.Sprintf("device %s is not %s", e.ID, e.Capability)
}

// ErrDuplicateDevice defines already registered device error.
type ErrDuplicateDevice struct {
	ID string
}

// Error formats output.
func (e *ErrDuplicateDevice) Error() string {
	return fmt.Sprintf("device %s is already registered", e.ID)
}

// ErrInvalidDevice defines device which can't be registered.
type ErrInvalidDevice struct {
	Reason string
}

// Error formats output.
func (e *ErrInvalidDevice) Error() string {
	return fmt.Sprintf("invalid device: %s", e.Reason)
}

// IsNotFound checks whether error was caused by an unknown device.
func IsNotFound(err error) bool {
	_, ok := errors.Cause(err).(*ErrDeviceNotFound)
	return ok
}

// IsNotSupported checks whether error was caused by a missing capability.
func IsNotSupported(err error) bool {
	_, ok := errors.Cause(err).(*ErrCapabilityNotSupported)
	return ok
}
