package providers

import "github.com/go-home-io/alexa-bridge/plugins/device"

// IRegistryProvider defines devices registry logic.
type IRegistryProvider interface {
	Register(*device.Appliance) error
	Get(id string) (*device.Appliance, error)
	GetSwitchable(id string) (device.ISwitchable, error)
	GetLevelable(id string) (device.ILevelable, error)
	GetThermostat(id string) (device.IThermostat, error)
	GetLockable(id string) (device.ILockable, error)
	List() []*device.Appliance
	Len() int
}
