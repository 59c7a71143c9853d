package server

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/pkg/errors"
)

// Processes single directive.
// Directive failures are reported inside of the response envelope.
func (s *AlexaServer) directive(writer http.ResponseWriter, request *http.Request) {
	body, err := ioutil.ReadAll(request.Body)
	if err != nil {
		s.Logger.Error("Failed to read request", err, common.LogSystemToken, logSystem)
		respondError(writer, errors.Wrap(err, "failed to read request").Error())
		return
	}

	resp := s.router.Dispatch(request.Method, body)
	data, err := json.Marshal(resp)
	if err != nil {
		s.Logger.Error("Failed to serialize response", err, common.LogSystemToken, logSystem)
		respondError(writer, errors.Wrap(err, "failed to serialize response").Error())
		return
	}

	respondJSON(writer, data)
}
