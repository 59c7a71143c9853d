// Package server contains HTTP endpoint which accepts smart home directives.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/go-home-io/alexa-bridge/systems"
	"github.com/go-home-io/alexa-bridge/systems/alexa"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

const (
	// Logger system representation.
	logSystem = "server"
	// Time given to in-flight requests on shutdown.
	shutdownTimeout = 5 * time.Second
)

// AlexaServer describes directives endpoint.
type AlexaServer struct {
	Settings providers.ISettingsProvider
	Logger   common.ILoggerProvider

	router *alexa.Router
}

// NewServer constructs a new directives server.
func NewServer(settings providers.ISettingsProvider) (*AlexaServer, error) {
	if nil == settings.Registry() {
		return nil, &ErrNoRegistry{}
	}

	s := &AlexaServer{
		Logger:   settings.SystemLogger(),
		Settings: settings,
		router: alexa.NewRouter(&alexa.ConstructRouter{
			Registry:         settings.Registry(),
			Logger:           settings.PluginLogger(systems.SysAlexa, "v2"),
			LegacyResolution: settings.AlexaSettings().LegacyResolution,
		}),
	}

	return s, nil
}

// Start launches server and blocks until stop signal is received.
func (s *AlexaServer) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.Settings.AlexaSettings().Port))
	if err != nil {
		return errors.Wrap(err, "failed to start server")
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	return s.serve(listener, c)
}

// Serves requests until stop signal is received.
func (s *AlexaServer) serve(listener net.Listener, stop <-chan os.Signal) error {
	srv := &http.Server{
		Handler: s.handler(),
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(listener)
	}()

	s.Logger.Info(fmt.Sprintf("Started server on %s", listener.Addr().String()),
		common.LogSystemToken, logSystem, common.LogURLToken, s.Settings.AlexaSettings().Path)

	select {
	case err := <-done:
		s.Settings.UnloadDevices()
		return errors.Wrap(err, "server failed")
	case <-stop:
		s.Logger.Info("Received stop command, exiting", common.LogSystemToken, logSystem)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	<-done
	s.Settings.UnloadDevices()
	return err
}

// Builds HTTP handler with every known route.
func (s *AlexaServer) handler() http.Handler {
	router := mux.NewRouter()
	s.registerAPI(router)

	if !s.Settings.AlexaSettings().AccessLog {
		return router
	}

	return handlers.CombinedLoggingHandler(&accessLogWriter{logger: s.Logger}, router)
}

// All API registration.
func (s *AlexaServer) registerAPI(router *mux.Router) {
	publicRouter := router.PathPrefix("/pub").Subrouter()
	publicRouter.HandleFunc("/ping", s.ping).Methods(http.MethodGet)

	router.Handle(s.Settings.AlexaSettings().Path, s.recoverMiddleware(http.HandlerFunc(s.directive)))
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.Use(s.logMiddleware)
}
