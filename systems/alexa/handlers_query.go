package alexa

import (
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/plugins/helpers"
)

// Returns thermostat target and mode.
// Target is not reported for a thermostat which is turned off.
func (r *Router) getTargetTemperature(req *directiveRequest) (*Response, error) {
	t, err := r.registry.GetThermostat(req.applianceID())
	if err != nil {
		return nil, err
	}

	mode := t.Mode()
	p := &TargetTemperaturePayload{
		TemperatureMode: ModeValue{Value: mode.String()},
	}

	if enums.ModeOff != mode {
		p.TargetTemperature = &NumericValue{Value: helpers.NativeToCelsius(t.TargetTemperature())}
	}

	return req.confirm(p), nil
}

// Returns current thermostat reading.
func (r *Router) getTemperatureReading(req *directiveRequest) (*Response, error) {
	t, err := r.registry.GetThermostat(req.applianceID())
	if err != nil {
		return nil, err
	}

	return req.confirm(&TemperatureReadingPayload{
		TemperatureReading: NumericValue{Value: helpers.NativeToCelsius(t.CurrentTemperature())},
	}), nil
}

// Returns lock state.
func (r *Router) getLockState(req *directiveRequest) (*Response, error) {
	l, err := r.registry.GetLockable(req.applianceID())
	if err != nil {
		return nil, err
	}

	return req.confirm(&LockStatePayload{LockState: enums.LockStateNative(l.LockState()).String()}), nil
}
