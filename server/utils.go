package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/common"
)

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	respondJSON(writer, []byte(`{ "status": "OK" }`))
}

// Generic JSON response.
func respondJSON(writer http.ResponseWriter, data []byte) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(data) // nolint: errcheck
}

// Plain HTTP_500 response.
func respondError(writer http.ResponseWriter, problem string) {
	respondPlain(writer, http.StatusInternalServerError, problem)
}

// Plain text response with the status.
func respondPlain(writer http.ResponseWriter, status int, text string) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(status)
	io.WriteString(writer, text) // nolint: errcheck
}

// Logger middleware for the API.
func (s *AlexaServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogURLToken, r.RequestURI, common.LogMethodToken, r.Method)
		next.ServeHTTP(w, r)
	})
}

// Converts panics into HTTP_500 responses.
func (s *AlexaServer) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if nil == rec {
				return
			}

			problem := fmt.Sprintf("%v", rec)
			s.Logger.Error("Recovered from panic", &ErrPanic{Problem: problem},
				common.LogSystemToken, logSystem, common.LogURLToken, r.RequestURI)
			respondError(w, problem)
		}()

		next.ServeHTTP(w, r)
	})
}

// Writes access log lines into the system logger.
type accessLogWriter struct {
	logger common.ILoggerProvider
}

// Write logs a single access line.
func (w *accessLogWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimSpace(string(p)), common.LogSystemToken, logSystem)
	return len(p), nil
}
