package device

// ILockable defines lock capability.
// LockState returns device-native value, any nonzero value means locked.
type ILockable interface {
	LockState() uint16
	Lock() error
	Unlock() error
}
