package alexa

import "fmt"

// ErrUnsupportedNamespace defines unknown namespace error.
type ErrUnsupportedNamespace struct {
	Namespace string
}

// Error formats output.
func (e *ErrUnsupportedNamespace) Error() string {
	return fmt.Sprintf("namespace %s is not supported", e.Namespace)
}

// ErrUnsupportedName defines unknown directive name error.
type ErrUnsupportedName struct {
	Namespace string
	Name      string
}

// Error formats output.
func (e *ErrUnsupportedName) Error() string {
	if "" == e.Namespace {
		return fmt.Sprintf("directive %s is not supported", e.Name)
	}

	return fmt.Sprintf("directive %s is not supported in %s", e.Name, e.Namespace)
}

// ErrUnsupportedMethod defines namespace which is not served by the HTTP method.
type ErrUnsupportedMethod struct {
	Method    string
	Namespace string
}

// Error formats output.
func (e *ErrUnsupportedMethod) Error() string {
	return fmt.Sprintf("method %s is not supported for %s", e.Method, e.Namespace)
}

// ErrMissingField defines payload without required field.
type ErrMissingField struct {
	Field string
}

// Error formats output.
func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("payload field %s is missing", e.Field)
}

// ErrInvalidLockState defines unknown requested lock state.
type ErrInvalidLockState struct {
	State string
}

// Error formats output.
func (e *ErrInvalidLockState) Error() string {
	return fmt.Sprintf("lock state %s is invalid", e.State)
}

// ErrTemperatureOutOfRange defines target which device can't store.
type ErrTemperatureOutOfRange struct {
	Value float64
}

// Error formats output.
func (e *ErrTemperatureOutOfRange) Error() string {
	return fmt.Sprintf("target temperature %g is out of range", e.Value)
}
