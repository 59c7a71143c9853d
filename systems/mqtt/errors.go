package mqtt

import (
	"fmt"

	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// ErrTimeout defines broker operation timeout.
type ErrTimeout struct {
	Operation string
}

// Error formats output.
func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("mqtt %s timed out", e.Operation)
}

// ErrWrongState defines state message which can't be parsed.
type ErrWrongState struct {
	Property string
	Value    string
}

// Error formats output.
func (e *ErrWrongState) Error() string {
	return fmt.Sprintf("state %s has wrong value %s", e.Property, e.Value)
}

// ErrNoClient defines missing broker connection.
type ErrNoClient struct {
}

// Error formats output.
func (e *ErrNoClient) Error() string {
	return "mqtt system is not configured"
}

// ErrUnsupportedType defines device type which can't be served.
type ErrUnsupportedType struct {
	DeviceType enums.DeviceType
}

// Error formats output.
func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("device type %s is not supported", e.DeviceType.String())
}
