//+build !release

package mocks

import (
	"sync"

	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// FakeDevice records capability invocations and keeps state for read-back.
type FakeDevice struct {
	mu sync.Mutex

	Calls []string
	Args  []uint16
	Err   error

	Current uint16
	Target  uint16
	TMode   enums.ThermostatMode
	Locked  uint16
}

// On records invocation.
func (f *FakeDevice) On() error {
	return f.record("On", 0)
}

// Off records invocation.
func (f *FakeDevice) Off() error {
	return f.record("Off", 0)
}

// SetLevel records invocation.
func (f *FakeDevice) SetLevel(level uint16) error {
	return f.record("SetLevel", level)
}

// RaiseLevel records invocation.
func (f *FakeDevice) RaiseLevel(delta uint16) error {
	return f.record("RaiseLevel", delta)
}

// LowerLevel records invocation.
func (f *FakeDevice) LowerLevel(delta uint16) error {
	return f.record("LowerLevel", delta)
}

// CurrentTemperature returns stored reading.
func (f *FakeDevice) CurrentTemperature() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Current
}

// TargetTemperature returns stored target.
func (f *FakeDevice) TargetTemperature() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Target
}

// Mode returns stored mode.
func (f *FakeDevice) Mode() enums.ThermostatMode {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.TMode
}

// SetTemperature records invocation and updates stored target.
func (f *FakeDevice) SetTemperature(target uint16) error {
	err := f.record("SetTemperature", target)
	if err == nil {
		f.mu.Lock()
		f.Target = target
		f.mu.Unlock()
	}

	return err
}

// LockState returns stored lock value.
func (f *FakeDevice) LockState() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Locked
}

// Lock records invocation and updates stored state.
func (f *FakeDevice) Lock() error {
	err := f.record("Lock", 0)
	if err == nil {
		f.mu.Lock()
		f.Locked = 1
		f.mu.Unlock()
	}

	return err
}

// Unlock records invocation and updates stored state.
func (f *FakeDevice) Unlock() error {
	err := f.record("Unlock", 0)
	if err == nil {
		f.mu.Lock()
		f.Locked = 0
		f.mu.Unlock()
	}

	return err
}

// CallCount returns number of recorded invocations of the method.
func (f *FakeDevice) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	cnt := 0
	for _, v := range f.Calls {
		if v == method {
			cnt++
		}
	}

	return cnt
}

// LastArg returns argument of the last recorded invocation.
func (f *FakeDevice) LastArg() uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()

	if 0 == len(f.Args) {
		return 0
	}

	return f.Args[len(f.Args)-1]
}

func (f *FakeDevice) record(method string, arg uint16) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Calls = append(f.Calls, method)
	f.Args = append(f.Args, arg)
	return f.Err
}

// FakeNewAppliance creates appliance of the requested kind backed by a fake device.
func FakeNewAppliance(id string, kind enums.DeviceType, fake *FakeDevice) *device.Appliance {
	info := device.Info{
		ID:                  id,
		Manufacturer:        "go-home",
		Model:               kind.String(),
		Version:             "1.0",
		FriendlyName:        id,
		FriendlyDescription: "fake " + kind.String(),
	}

	caps := kind.Capabilities()
	opts := make([]device.Option, 0)
	if caps.Has(enums.CapSwitchable) {
		opts = append(opts, device.WithSwitch(fake))
	}
	if caps.Has(enums.CapLevelable) {
		opts = append(opts, device.WithLevel(fake))
	}
	if caps.Has(enums.CapThermostat) {
		opts = append(opts, device.WithThermostat(fake))
	}
	if caps.Has(enums.CapLockable) {
		opts = append(opts, device.WithLock(fake))
	}

	return device.NewAppliance(info, opts...)
}
