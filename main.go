package main

import (
	"os"

	"github.com/go-home-io/alexa-bridge/server"
	"github.com/go-home-io/alexa-bridge/settings"
	"github.com/go-home-io/alexa-bridge/systems/logger"
	"github.com/jessevdk/go-flags"
)

func main() {
	options := &settings.StartUpOptions{}
	_, err := flags.Parse(options)
	if err != nil {
		os.Exit(1)
	}

	s, err := settings.Load(options)
	if err != nil {
		logger.NewConsoleLogger(&logger.ConstructLogger{}).Fatal("Failed to load configuration", err)
		return
	}

	s.SystemLogger().Info("Starting alexa bridge")

	srv, err := server.NewServer(s)
	if err != nil {
		s.SystemLogger().Fatal("Failed to start alexa bridge", err)
		return
	}

	if err := srv.Start(); err != nil {
		s.SystemLogger().Fatal("Alexa bridge stopped", err)
	}
}
