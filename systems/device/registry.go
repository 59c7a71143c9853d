// Package device contains registry of appliances exposed to the voice assistant.
package device

import (
	"sort"
	"sync"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/providers"
)

const (
	// Logger system representation.
	logSystem = "registry"
)

// Registry implementation.
type registry struct {
	sync.RWMutex

	logger  common.ILoggerProvider
	devices map[string]*device.Appliance
}

// NewRegistry constructs a new empty registry.
func NewRegistry(logger common.ILoggerProvider) providers.IRegistryProvider {
	return &registry{
		logger:  logger,
		devices: make(map[string]*device.Appliance),
	}
}

// Register adds a new appliance.
// Appliance becomes visible to readers only after it's fully stored.
func (r *registry) Register(a *device.Appliance) error {
	if nil == a {
		return &ErrInvalidDevice{Reason: "appliance is nil"}
	}

	if "" == a.ID() {
		return &ErrInvalidDevice{Reason: "appliance ID is empty"}
	}

	if a.Capabilities().IsEmpty() {
		return &ErrInvalidDevice{Reason: "appliance " + a.ID() + " has no capabilities"}
	}

	r.Lock()
	defer r.Unlock()

	if _, ok := r.devices[a.ID()]; ok {
		return &ErrDuplicateDevice{ID: a.ID()}
	}

	r.devices[a.ID()] = a
	r.logger.Debug("Registered device", common.LogSystemToken, logSystem,
		common.LogDeviceIDToken, a.ID(), common.LogDeviceCapabilityToken, a.Capabilities().String())
	return nil
}

// Get returns appliance by ID.
func (r *registry) Get(id string) (*device.Appliance, error) {
	r.RLock()
	defer r.RUnlock()

	a, ok := r.devices[id]
	if !ok {
		return nil, &ErrDeviceNotFound{ID: id}
	}

	return a, nil
}

// GetSwitchable returns on/off capability of the appliance.
func (r *registry) GetSwitchable(id string) (device.ISwitchable, error) {
	a, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	s, ok := a.Switchable()
	if !ok {
		return nil, &ErrCapabilityNotSupported{ID: id, Capability: enums.CapSwitchable}
	}

	return s, nil
}

// GetLevelable returns level capability of the appliance.
func (r *registry) GetLevelable(id string) (device.ILevelable, error) {
	a, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	l, ok := a.Levelable()
	if !ok {
		return nil, &ErrCapabilityNotSupported{ID: id, Capability: enums.CapLevelable}
	}

	return l, nil
}

// GetThermostat returns thermostat capability of the appliance.
func (r *registry) GetThermostat(id string) (device.IThermostat, error) {
	a, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	t, ok := a.Thermostat()
	if !ok {
		return nil, &ErrCapabilityNotSupported{ID: id, Capability: enums.CapThermostat}
	}

	return t, nil
}

// GetLockable returns lock capability of the appliance.
func (r *registry) GetLockable(id string) (device.ILockable, error) {
	a, err := r.Get(id)
	if err != nil {
		return nil, err
	}

	l, ok := a.Lockable()
	if !ok {
		return nil, &ErrCapabilityNotSupported{ID: id, Capability: enums.CapLockable}
	}

	return l, nil
}

// List returns snapshot of all known appliances ordered by ID.
func (r *registry) List() []*device.Appliance {
	r.RLock()
	defer r.RUnlock()

	devices := make([]*device.Appliance, 0, len(r.devices))
	for _, v := range r.devices {
		devices = append(devices, v)
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].ID() < devices[j].ID()
	})

	return devices
}

// Len returns number of known appliances.
func (r *registry) Len() int {
	r.RLock()
	defer r.RUnlock()

	return len(r.devices)
}
