package device

// ILevelable defines level capability.
// Levels are 16-bit device-native values, 65535 being 100%.
type ILevelable interface {
	SetLevel(level uint16) error
	RaiseLevel(delta uint16) error
	LowerLevel(delta uint16) error
}
