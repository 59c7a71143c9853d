package alexa

import (
	"encoding/json"
)

// Namespace describes functional area of the directive.
type Namespace string

const (
	// NamespaceDiscovery describes appliances discovery area.
	NamespaceDiscovery Namespace = "Alexa.ConnectedHome.Discovery"
	// NamespaceControl describes appliances control area.
	NamespaceControl Namespace = "Alexa.ConnectedHome.Control"
	// NamespaceQuery describes appliances state query area.
	NamespaceQuery Namespace = "Alexa.ConnectedHome.Query"
)

// Known namespaces.
var namespaces = map[string]Namespace{
	string(NamespaceDiscovery): NamespaceDiscovery,
	string(NamespaceControl):   NamespaceControl,
	string(NamespaceQuery):     NamespaceQuery,
}

// NamespaceString returns namespace from its wire representation.
func NamespaceString(s string) (Namespace, error) {
	n, ok := namespaces[s]
	if !ok {
		return "", &ErrUnsupportedNamespace{Namespace: s}
	}

	return n, nil
}

// DirectiveName describes enum with known directive names.
type DirectiveName int

const (
	// DirectiveUnknown describes not recognized directive.
	DirectiveUnknown DirectiveName = iota
	// DiscoverAppliancesRequest describes discovery request.
	DiscoverAppliancesRequest
	// DiscoverAppliancesResponse describes discovery response.
	DiscoverAppliancesResponse
	// TurnOnRequest describes turn on request.
	TurnOnRequest
	// TurnOnConfirmation describes turn on confirmation.
	TurnOnConfirmation
	// TurnOffRequest describes turn off request.
	TurnOffRequest
	// TurnOffConfirmation describes turn off confirmation.
	TurnOffConfirmation
	// SetPercentageRequest describes set level request.
	SetPercentageRequest
	// SetPercentageConfirmation describes set level confirmation.
	SetPercentageConfirmation
	// IncrementPercentageRequest describes raise level request.
	IncrementPercentageRequest
	// IncrementPercentageConfirmation describes raise level confirmation.
	IncrementPercentageConfirmation
	// DecrementPercentageRequest describes lower level request.
	DecrementPercentageRequest
	// DecrementPercentageConfirmation describes lower level confirmation.
	DecrementPercentageConfirmation
	// GetTargetTemperatureRequest describes thermostat target query.
	GetTargetTemperatureRequest
	// GetTargetTemperatureResponse describes thermostat target query response.
	GetTargetTemperatureResponse
	// SetTargetTemperatureRequest describes thermostat target change request.
	SetTargetTemperatureRequest
	// SetTargetTemperatureConfirmation describes thermostat target change confirmation.
	SetTargetTemperatureConfirmation
	// GetTemperatureReadingRequest describes thermostat reading query.
	GetTemperatureReadingRequest
	// GetTemperatureReadingResponse describes thermostat reading query response.
	GetTemperatureReadingResponse
	// IncrementTargetTemperatureRequest describes thermostat target raise request.
	IncrementTargetTemperatureRequest
	// IncrementTargetTemperatureConfirmation describes thermostat target raise confirmation.
	IncrementTargetTemperatureConfirmation
	// DecrementTargetTemperatureRequest describes thermostat target lower request.
	DecrementTargetTemperatureRequest
	// DecrementTargetTemperatureConfirmation describes thermostat target lower confirmation.
	DecrementTargetTemperatureConfirmation
	// GetLockStateRequest describes lock state query.
	GetLockStateRequest
	// GetLockStateResponse describes lock state query response.
	GetLockStateResponse
	// SetLockStateRequest describes lock state change request.
	SetLockStateRequest
	// SetLockStateConfirmation describes lock state change confirmation.
	SetLockStateConfirmation
	// UnsupportedOperationError describes generic failure.
	UnsupportedOperationError
	// UnwillingToSetValueError describes business rule failure.
	UnwillingToSetValueError
	// NoSuchTargetError describes unknown appliance failure.
	NoSuchTargetError
	// UnsupportedTargetError describes appliance without requested capability.
	UnsupportedTargetError
)

// Wire spelling of every directive name.
var directiveNames = map[DirectiveName]string{
	DiscoverAppliancesRequest:              "DiscoverAppliancesRequest",
	DiscoverAppliancesResponse:             "DiscoverAppliancesResponse",
	TurnOnRequest:                          "TurnOnRequest",
	TurnOnConfirmation:                     "TurnOnConfirmation",
	TurnOffRequest:                         "TurnOffRequest",
	TurnOffConfirmation:                    "TurnOffConfirmation",
	SetPercentageRequest:                   "SetPercentageRequest",
	SetPercentageConfirmation:              "SetPercentageConfirmation",
	IncrementPercentageRequest:             "IncrementPercentageRequest",
	IncrementPercentageConfirmation:        "IncrementPercentageConfirmation",
	DecrementPercentageRequest:             "DecrementPercentageRequest",
	DecrementPercentageConfirmation:        "DecrementPercentageConfirmation",
	GetTargetTemperatureRequest:            "GetTargetTemperatureRequest",
	GetTargetTemperatureResponse:           "GetTargetTemperatureResponse",
	SetTargetTemperatureRequest:            "SetTargetTemperatureRequest",
	SetTargetTemperatureConfirmation:       "SetTargetTemperatureConfirmation",
	GetTemperatureReadingRequest:           "GetTemperatureReadingRequest",
	GetTemperatureReadingResponse:          "GetTemperatureReadingResponse",
	IncrementTargetTemperatureRequest:      "IncrementTargetTemperatureRequest",
	IncrementTargetTemperatureConfirmation: "IncrementTargetTemperatureConfirmation",
	DecrementTargetTemperatureRequest:      "DecrementTargetTemperatureRequest",
	DecrementTargetTemperatureConfirmation: "DecrementTargetTemperatureConfirmation",
	GetLockStateRequest:                    "GetLockStateRequest",
	GetLockStateResponse:                   "GetLockStateResponse",
	SetLockStateRequest:                    "SetLockStateRequest",
	SetLockStateConfirmation:               "SetLockStateConfirmation",
	UnsupportedOperationError:              "UnsupportedOperationError",
	UnwillingToSetValueError:               "UnwillingToSetValueError",
	NoSuchTargetError:                      "NoSuchTargetError",
	UnsupportedTargetError:                 "UnsupportedTargetError",
}

// Reverse lookup table.
var directiveValues = func() map[string]DirectiveName {
	m := make(map[string]DirectiveName, len(directiveNames))
	for k, v := range directiveNames {
		m[v] = k
	}
	return m
}()

// String returns wire representation of the directive name.
func (d DirectiveName) String() string {
	s, ok := directiveNames[d]
	if !ok {
		return "Unknown"
	}

	return s
}

// DirectiveNameString returns directive from its exact wire spelling.
func DirectiveNameString(s string) (DirectiveName, error) {
	d, ok := directiveValues[s]
	if !ok {
		return DirectiveUnknown, &ErrUnsupportedName{Name: s}
	}

	return d, nil
}

// MarshalJSON serializes directive name through the names table.
func (d DirectiveName) MarshalJSON() ([]byte, error) {
	s, ok := directiveNames[d]
	if !ok {
		return nil, &ErrUnsupportedName{Name: d.String()}
	}

	return json.Marshal(s)
}

// UnmarshalJSON parses directive name through the names table.
func (d *DirectiveName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	v, err := DirectiveNameString(s)
	if err != nil {
		return err
	}

	*d = v
	return nil
}
