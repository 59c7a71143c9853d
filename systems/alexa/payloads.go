package alexa

const (
	errorCodeThermostatIsOff        = "THERMOSTAT_IS_OFF"
	errorDescriptionThermostatIsOff = "Can't complete requested operation because the thermostat is off"
)

// ApplianceRef describes appliance addressed by directive.
type ApplianceRef struct {
	ApplianceID string            `json:"applianceId"`
	Details     map[string]string `json:"additionalApplianceDetails,omitempty"`
}

// NumericValue describes numeric payload value.
type NumericValue struct {
	Value float64 `json:"value"`
}

// ModeValue describes thermostat mode payload value.
type ModeValue struct {
	Value string `json:"value"`
}

// Incoming appliance payload.
// Every directive carries appliance reference, the rest depends on directive name.
type appliancePayload struct {
	AccessToken       string        `json:"accessToken"`
	Appliance         *ApplianceRef `json:"appliance"`
	PercentageState   *NumericValue `json:"percentageState"`
	DeltaPercentage   *NumericValue `json:"deltaPercentage"`
	TargetTemperature *NumericValue `json:"targetTemperature"`
	DeltaTemperature  *NumericValue `json:"deltaTemperature"`
	LockState         *string       `json:"lockState"`
}

// ApplianceDescriptor describes appliance in discovery response.
type ApplianceDescriptor struct {
	ApplianceID         string            `json:"applianceId"`
	ManufacturerName    string            `json:"manufacturerName"`
	ModelName           string            `json:"modelName"`
	Version             string            `json:"version"`
	FriendlyName        string            `json:"friendlyName"`
	FriendlyDescription string            `json:"friendlyDescription"`
	IsReachable         bool              `json:"isReachable"`
	Actions             []string          `json:"actions"`
	ApplianceTypes      []string          `json:"applianceTypes"`
	Details             map[string]string `json:"additionalApplianceDetails,omitempty"`
}

// DiscoverAppliancesPayload describes discovery response.
type DiscoverAppliancesPayload struct {
	DiscoveredAppliances []*ApplianceDescriptor `json:"discoveredAppliances"`
}

// TargetTemperaturePayload describes thermostat target query response.
// Target is omitted when thermostat is off.
type TargetTemperaturePayload struct {
	TargetTemperature *NumericValue `json:"targetTemperature,omitempty"`
	TemperatureMode   ModeValue     `json:"temperatureMode"`
}

// TemperatureReadingPayload describes thermostat reading query response.
type TemperatureReadingPayload struct {
	TemperatureReading NumericValue `json:"temperatureReading"`
}

// PreviousState describes thermostat state before the change.
type PreviousState struct {
	TargetTemperature NumericValue `json:"targetTemperature"`
	Mode              ModeValue    `json:"mode"`
}

// TemperatureConfirmationPayload describes thermostat target change confirmation.
type TemperatureConfirmationPayload struct {
	TargetTemperature NumericValue  `json:"targetTemperature"`
	TemperatureMode   ModeValue     `json:"temperatureMode"`
	PreviousState     PreviousState `json:"previousState"`
}

// LockStatePayload describes lock query response and lock change confirmation.
type LockStatePayload struct {
	LockState string `json:"lockState"`
}

// ErrorInfo describes machine-readable failure.
type ErrorInfo struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ErrorInfoPayload describes business rule failure.
type ErrorInfoPayload struct {
	ErrorInfo ErrorInfo `json:"errorInfo"`
}

// UnsupportedOperationPayload describes generic failure.
type UnsupportedOperationPayload struct {
	Error string `json:"error,omitempty"`
}
