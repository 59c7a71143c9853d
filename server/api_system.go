package server

import "net/http"

// Performs quick check whether system is OK.
func (s *AlexaServer) ping(writer http.ResponseWriter, _ *http.Request) {
	respondOk(writer)
}

// Responds to every unknown route.
func notFound(writer http.ResponseWriter, _ *http.Request) {
	respondPlain(writer, http.StatusNotFound, "File Not Found")
}
