package virtual

import (
	"fmt"

	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// ErrUnsupportedType defines device type which can't be simulated.
type ErrUnsupportedType struct {
	DeviceType enums.DeviceType
}

// Error formats output.
func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("device type %s is not supported", e.DeviceType)
}
