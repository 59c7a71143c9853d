package device

// ISwitchable defines on/off capability.
// On and Off are fire-and-forget: state is not read back.
type ISwitchable interface {
	On() error
	Off() error
}
