// Package device contains capability contracts implemented by device drivers
// and the appliance entity exposed to the voice assistant.
package device

import (
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

// IDevice defines generic device driver interface.
type IDevice interface {
	GetAppliance() *Appliance
	Unload()
}

// Info contains immutable appliance metadata.
type Info struct {
	ID                  string
	Manufacturer        string
	Model               string
	Version             string
	FriendlyName        string
	FriendlyDescription string
	Details             map[string]string
}

// Appliance is a single controllable device with a fixed capability set.
type Appliance struct {
	info         Info
	capabilities enums.Capability

	switchable ISwitchable
	levelable  ILevelable
	thermostat IThermostat
	lockable   ILockable
}

// Option attaches capability implementation to the appliance.
type Option func(*Appliance)

// WithSwitch attaches on/off capability.
func WithSwitch(s ISwitchable) Option {
	return func(a *Appliance) {
		if nil == s {
			return
		}
		a.switchable = s
		a.capabilities |= enums.CapSwitchable
	}
}

// WithLevel attaches level capability.
func WithLevel(l ILevelable) Option {
	return func(a *Appliance) {
		if nil == l {
			return
		}
		a.levelable = l
		a.capabilities |= enums.CapLevelable
	}
}

// WithThermostat attaches thermostat capability.
func WithThermostat(t IThermostat) Option {
	return func(a *Appliance) {
		if nil == t {
			return
		}
		a.thermostat = t
		a.capabilities |= enums.CapThermostat
	}
}

// WithLock attaches lock capability.
func WithLock(l ILockable) Option {
	return func(a *Appliance) {
		if nil == l {
			return
		}
		a.lockable = l
		a.capabilities |= enums.CapLockable
	}
}

// NewAppliance constructs a new appliance.
// Capability set is derived from supplied options and never changes afterwards.
func NewAppliance(info Info, opts ...Option) *Appliance {
	a := &Appliance{
		info: info,
	}

	a.info.Details = make(map[string]string, len(info.Details))
	for k, v := range info.Details {
		a.info.Details[k] = v
	}

	for _, o := range opts {
		o(a)
	}

	return a
}

// ID returns appliance ID.
func (a *Appliance) ID() string {
	return a.info.ID
}

// Info returns a copy of appliance metadata.
func (a *Appliance) Info() Info {
	i := a.info
	i.Details = make(map[string]string, len(a.info.Details))
	for k, v := range a.info.Details {
		i.Details[k] = v
	}

	return i
}

// Capabilities returns appliance capability set.
func (a *Appliance) Capabilities() enums.Capability {
	return a.capabilities
}

// Switchable returns on/off capability if present.
func (a *Appliance) Switchable() (ISwitchable, bool) {
	return a.switchable, a.capabilities.Has(enums.CapSwitchable)
}

// Levelable returns level capability if present.
func (a *Appliance) Levelable() (ILevelable, bool) {
	return a.levelable, a.capabilities.Has(enums.CapLevelable)
}

// Thermostat returns thermostat capability if present.
func (a *Appliance) Thermostat() (IThermostat, bool) {
	return a.thermostat, a.capabilities.Has(enums.CapThermostat)
}

// Lockable returns lock capability if present.
func (a *Appliance) Lockable() (ILockable, bool) {
	return a.lockable, a.capabilities.Has(enums.CapLockable)
}
