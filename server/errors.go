package server

import "fmt"

// ErrNoRegistry defines missing devices registry.
type ErrNoRegistry struct {
}

// Error formats output.
func (e *ErrNoRegistry) Error() string {
	return "devices registry is not loaded"
}

// ErrPanic defines recovered request handling panic.
type ErrPanic struct {
	Problem string
}

// Error formats output.
func (e *ErrPanic) Error() string {
	return fmt.Sprintf("request handling failed: %s", e.Problem)
}
