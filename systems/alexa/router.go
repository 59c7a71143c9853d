// Package alexa contains Connected Home directives processing.
package alexa

import (
	"encoding/json"
	"net/http"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	sysDevice "github.com/go-home-io/alexa-bridge/systems/device"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "alexa"
)

// Handles single directive.
type handler func(req *directiveRequest) (*Response, error)

// Dispatch table key.
type directiveKey struct {
	namespace Namespace
	name      DirectiveName
}

// Dispatch table entry.
type directive struct {
	response DirectiveName
	handler  handler
	// Directive is addressed to a single appliance.
	appliance bool
	// Resolution failures are confirmed silently in legacy mode.
	absorbMissing bool
}

// Single directive invocation.
type directiveRequest struct {
	namespace Namespace
	name      DirectiveName
	response  DirectiveName
	payload   *appliancePayload
}

// Returns addressed appliance ID.
func (r *directiveRequest) applianceID() string {
	return r.payload.Appliance.ApplianceID
}

// Constructs confirmation of the request.
func (r *directiveRequest) confirm(payload interface{}) *Response {
	return newResponse(r.namespace, r.response, payload)
}

// Namespaces served by every HTTP method.
var methodNamespaces = map[string][]Namespace{
	http.MethodPost: {NamespaceDiscovery, NamespaceQuery},
	http.MethodPut:  {NamespaceControl},
}

// ConstructRouter has data required for a new directives router.
type ConstructRouter struct {
	Registry         providers.IRegistryProvider
	Logger           common.ILoggerProvider
	LegacyResolution bool
}

// Router dispatches directives to appliances.
type Router struct {
	registry         providers.IRegistryProvider
	logger           common.ILoggerProvider
	legacyResolution bool

	table map[directiveKey]*directive
}

// NewRouter constructs a new directives router.
func NewRouter(ctor *ConstructRouter) *Router {
	r := &Router{
		registry:         ctor.Registry,
		logger:           ctor.Logger,
		legacyResolution: ctor.LegacyResolution,
	}

	r.table = map[directiveKey]*directive{
		{NamespaceDiscovery, DiscoverAppliancesRequest}: {
			response: DiscoverAppliancesResponse, handler: r.discoverAppliances},

		{NamespaceControl, TurnOnRequest}: {
			response: TurnOnConfirmation, handler: r.switchHandler(true), appliance: true, absorbMissing: true},
		{NamespaceControl, TurnOffRequest}: {
			response: TurnOffConfirmation, handler: r.switchHandler(false), appliance: true, absorbMissing: true},
		{NamespaceControl, SetPercentageRequest}: {
			response: SetPercentageConfirmation, handler: r.setPercentage, appliance: true, absorbMissing: true},
		{NamespaceControl, IncrementPercentageRequest}: {
			response: IncrementPercentageConfirmation, handler: r.deltaPercentage(true), appliance: true,
			absorbMissing: true},
		{NamespaceControl, DecrementPercentageRequest}: {
			response: DecrementPercentageConfirmation, handler: r.deltaPercentage(false), appliance: true,
			absorbMissing: true},
		{NamespaceControl, SetTargetTemperatureRequest}: {
			response: SetTargetTemperatureConfirmation, handler: r.setTargetTemperature, appliance: true},
		{NamespaceControl, IncrementTargetTemperatureRequest}: {
			response: IncrementTargetTemperatureConfirmation, handler: r.deltaTargetTemperature(true),
			appliance: true},
		{NamespaceControl, DecrementTargetTemperatureRequest}: {
			response: DecrementTargetTemperatureConfirmation, handler: r.deltaTargetTemperature(false),
			appliance: true},
		{NamespaceControl, SetLockStateRequest}: {
			response: SetLockStateConfirmation, handler: r.setLockState, appliance: true},

		{NamespaceQuery, GetTargetTemperatureRequest}: {
			response: GetTargetTemperatureResponse, handler: r.getTargetTemperature, appliance: true},
		{NamespaceQuery, GetTemperatureReadingRequest}: {
			response: GetTemperatureReadingResponse, handler: r.getTemperatureReading, appliance: true},
		{NamespaceQuery, GetLockStateRequest}: {
			response: GetLockStateResponse, handler: r.getLockState, appliance: true},
	}

	return r
}

// Dispatch processes raw directive received with the HTTP method.
// Every failure is converted into a generic unsupported operation response.
func (r *Router) Dispatch(method string, body []byte) *Response {
	ns, resp, err := r.process(method, body)
	if err == nil {
		return resp
	}

	r.logger.Warn("Failed to process directive", common.LogSystemToken, logSystem,
		common.LogMethodToken, method, common.LogNamespaceToken, string(ns),
		common.LogErrorToken, err.Error())
	return newUnsupportedOperation(ns, err.Error())
}

// Process processes raw directive received with the HTTP method and returns
// failure as is.
func (r *Router) Process(method string, body []byte) (*Response, error) {
	_, resp, err := r.process(method, body)
	return resp, err
}

// Processes directive. Returned namespace is used for failure responses.
func (r *Router) process(method string, body []byte) (Namespace, *Response, error) {
	ns := NamespaceControl

	raw := &rawRequest{}
	if err := json.Unmarshal(body, raw); err != nil {
		return ns, nil, errors.Wrap(err, "malformed envelope")
	}

	served, ok := methodNamespaces[method]
	if !ok {
		return ns, nil, &ErrUnsupportedMethod{Method: method, Namespace: raw.Header.Namespace}
	}

	parsed, err := NamespaceString(raw.Header.Namespace)
	if err != nil {
		return ns, nil, err
	}

	ns = parsed
	if !namespaceServed(served, ns) {
		return ns, nil, &ErrUnsupportedMethod{Method: method, Namespace: string(ns)}
	}

	name, err := DirectiveNameString(raw.Header.Name)
	if err != nil {
		return ns, nil, &ErrUnsupportedName{Namespace: string(ns), Name: raw.Header.Name}
	}

	d, ok := r.table[directiveKey{namespace: ns, name: name}]
	if !ok {
		return ns, nil, &ErrUnsupportedName{Namespace: string(ns), Name: raw.Header.Name}
	}

	req := &directiveRequest{
		namespace: ns,
		name:      name,
		response:  d.response,
	}

	if d.appliance {
		req.payload, err = decodeAppliancePayload(raw.Payload)
		if err != nil {
			return ns, nil, err
		}

		r.logger.Debug("Processing directive", common.LogSystemToken, logSystem,
			common.LogNamespaceToken, string(ns), common.LogDirectiveToken, name.String(),
			common.LogDeviceIDToken, req.applianceID())
	} else {
		r.logger.Debug("Processing directive", common.LogSystemToken, logSystem,
			common.LogNamespaceToken, string(ns), common.LogDirectiveToken, name.String())
	}

	resp, err := d.handler(req)
	if err != nil {
		resp, err = r.resolutionFailure(req, d, err)
	}

	return ns, resp, err
}

// Converts appliance resolution failures into protocol responses.
// Other failures are returned as is.
func (r *Router) resolutionFailure(req *directiveRequest, d *directive, err error) (*Response, error) {
	notFound := sysDevice.IsNotFound(err)
	if !notFound && !sysDevice.IsNotSupported(err) {
		return nil, err
	}

	if r.legacyResolution {
		if d.absorbMissing {
			r.logger.Debug("Ignoring directive for unresolved appliance", common.LogSystemToken, logSystem,
				common.LogDirectiveToken, req.name.String(), common.LogDeviceIDToken, req.applianceID())
			return req.confirm(nil), nil
		}

		return nil, err
	}

	r.logger.Warn("Failed to resolve appliance", common.LogSystemToken, logSystem,
		common.LogDirectiveToken, req.name.String(), common.LogDeviceIDToken, req.applianceID(),
		common.LogErrorToken, err.Error())

	if notFound {
		return newResponse(req.namespace, NoSuchTargetError, nil), nil
	}

	return newResponse(req.namespace, UnsupportedTargetError, nil), nil
}

// Decodes payload addressed to a single appliance.
func decodeAppliancePayload(data json.RawMessage) (*appliancePayload, error) {
	p := &appliancePayload{}
	if 0 == len(data) {
		return nil, &ErrMissingField{Field: "payload"}
	}

	if err := json.Unmarshal(data, p); err != nil {
		return nil, errors.Wrap(err, "malformed payload")
	}

	if nil == p.Appliance || "" == p.Appliance.ApplianceID {
		return nil, &ErrMissingField{Field: "appliance.applianceId"}
	}

	return p, nil
}

// Checks whether namespace is in the list.
func namespaceServed(served []Namespace, ns Namespace) bool {
	for _, v := range served {
		if v == ns {
			return true
		}
	}

	return false
}
