package alexa

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	// Version of every produced payload.
	payloadVersion = "2"
)

// Generates unique message ID for every response.
var newMessageID = func() string {
	return uuid.New().String()
}

// Header describes directive header.
type Header struct {
	Namespace      Namespace     `json:"namespace"`
	Name           DirectiveName `json:"name"`
	PayloadVersion string        `json:"payloadVersion"`
	MessageID      string        `json:"messageId"`
}

// Response describes outgoing directive.
type Response struct {
	Header  Header      `json:"header"`
	Payload interface{} `json:"payload"`
}

// Incoming envelope as received on the wire.
type rawRequest struct {
	Header struct {
		Namespace      string `json:"namespace"`
		Name           string `json:"name"`
		PayloadVersion string `json:"payloadVersion"`
		MessageID      string `json:"messageId"`
	} `json:"header"`
	Payload json.RawMessage `json:"payload"`
}

// Constructs a new response envelope.
func newResponse(namespace Namespace, name DirectiveName, payload interface{}) *Response {
	if nil == payload {
		payload = struct{}{}
	}

	return &Response{
		Header: Header{
			Namespace:      namespace,
			Name:           name,
			PayloadVersion: payloadVersion,
			MessageID:      newMessageID(),
		},
		Payload: payload,
	}
}

// Constructs generic failure response.
// Message is carried in the payload if not empty.
func newUnsupportedOperation(namespace Namespace, message string) *Response {
	return newResponse(namespace, UnsupportedOperationError, &UnsupportedOperationPayload{Error: message})
}

// Constructs response for a thermostat which is turned off.
func newThermostatIsOff(namespace Namespace) *Response {
	return newResponse(namespace, UnwillingToSetValueError, &ErrorInfoPayload{
		ErrorInfo: ErrorInfo{
			Code:        errorCodeThermostatIsOff,
			Description: errorDescriptionThermostatIsOff,
		},
	})
}
