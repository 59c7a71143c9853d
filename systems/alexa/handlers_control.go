package alexa

import (
	"github.com/go-home-io/alexa-bridge/plugins/device"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/plugins/helpers"
	"github.com/pkg/errors"
)

// Turns appliance on or off.
func (r *Router) switchHandler(on bool) handler {
	return func(req *directiveRequest) (*Response, error) {
		s, err := r.registry.GetSwitchable(req.applianceID())
		if err != nil {
			return nil, err
		}

		if on {
			err = s.On()
		} else {
			err = s.Off()
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to switch %s", req.applianceID())
		}

		return req.confirm(nil), nil
	}
}

// Sets absolute appliance level.
func (r *Router) setPercentage(req *directiveRequest) (*Response, error) {
	if nil == req.payload.PercentageState {
		return nil, &ErrMissingField{Field: "percentageState.value"}
	}

	l, err := r.registry.GetLevelable(req.applianceID())
	if err != nil {
		return nil, err
	}

	err = l.SetLevel(helpers.PercentToLevel(req.payload.PercentageState.Value))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set level of %s", req.applianceID())
	}

	return req.confirm(nil), nil
}

// Raises or lowers appliance level.
func (r *Router) deltaPercentage(raise bool) handler {
	return func(req *directiveRequest) (*Response, error) {
		if nil == req.payload.DeltaPercentage {
			return nil, &ErrMissingField{Field: "deltaPercentage.value"}
		}

		l, err := r.registry.GetLevelable(req.applianceID())
		if err != nil {
			return nil, err
		}

		delta := helpers.PercentToLevel(req.payload.DeltaPercentage.Value)
		if raise {
			err = l.RaiseLevel(delta)
		} else {
			err = l.LowerLevel(delta)
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to change level of %s", req.applianceID())
		}

		return req.confirm(nil), nil
	}
}

// Sets absolute thermostat target.
func (r *Router) setTargetTemperature(req *directiveRequest) (*Response, error) {
	if nil == req.payload.TargetTemperature {
		return nil, &ErrMissingField{Field: "targetTemperature.value"}
	}

	t, err := r.registry.GetThermostat(req.applianceID())
	if err != nil {
		return nil, err
	}

	return r.changeTemperature(req, t, req.payload.TargetTemperature.Value)
}

// Raises or lowers thermostat target relative to the current one.
func (r *Router) deltaTargetTemperature(raise bool) handler {
	return func(req *directiveRequest) (*Response, error) {
		if nil == req.payload.DeltaTemperature {
			return nil, &ErrMissingField{Field: "deltaTemperature.value"}
		}

		t, err := r.registry.GetThermostat(req.applianceID())
		if err != nil {
			return nil, err
		}

		delta := req.payload.DeltaTemperature.Value
		if !raise {
			delta = -delta
		}

		return r.changeTemperature(req, t, helpers.NativeToCelsius(t.TargetTemperature())+delta)
	}
}

// Applies new thermostat target.
// Thermostat which is turned off refuses any target change.
func (r *Router) changeTemperature(req *directiveRequest, t device.IThermostat, celsius float64) (*Response, error) {
	mode := t.Mode()
	if enums.ModeOff == mode {
		return newThermostatIsOff(req.namespace), nil
	}

	if !helpers.CelsiusFitsNative(celsius) {
		return nil, &ErrTemperatureOutOfRange{Value: celsius}
	}

	previous := PreviousState{
		TargetTemperature: NumericValue{Value: helpers.NativeToCelsius(t.TargetTemperature())},
		Mode:              ModeValue{Value: mode.String()},
	}

	if err := t.SetTemperature(helpers.CelsiusToNative(celsius)); err != nil {
		return nil, errors.Wrapf(err, "failed to set temperature of %s", req.applianceID())
	}

	return req.confirm(&TemperatureConfirmationPayload{
		TargetTemperature: NumericValue{Value: celsius},
		TemperatureMode:   ModeValue{Value: t.Mode().String()},
		PreviousState:     previous,
	}), nil
}

// Locks or unlocks appliance.
func (r *Router) setLockState(req *directiveRequest) (*Response, error) {
	if nil == req.payload.LockState {
		return nil, &ErrMissingField{Field: "lockState"}
	}

	state, err := enums.LockStateString(*req.payload.LockState)
	if err != nil {
		return nil, &ErrInvalidLockState{State: *req.payload.LockState}
	}

	l, err := r.registry.GetLockable(req.applianceID())
	if err != nil {
		return nil, err
	}

	if enums.LockLocked == state {
		err = l.Lock()
	} else {
		err = l.Unlock()
	}

	if err != nil {
		return nil, errors.Wrapf(err, "failed to change lock state of %s", req.applianceID())
	}

	return req.confirm(&LockStatePayload{LockState: state.String()}), nil
}
