package utils

import "fmt"

// ErrInvalidConfig defines wrong configuration error.
type ErrInvalidConfig struct {
}

// Error formats output.
func (*ErrInvalidConfig) Error() string {
	return "config validation error"
}

// ErrWrongProvider defines device provider which can't be parsed.
type ErrWrongProvider struct {
	Provider string
}

// Error formats output.
func (e *ErrWrongProvider) Error() string {
	return fmt.Sprintf("provider %s is not in type/driver format", e.Provider)
}
