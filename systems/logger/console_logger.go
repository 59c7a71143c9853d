// Package logger provides go-home logger implementations.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Console logger settings.
type consoleSettings struct {
	Level string `yaml:"level"`
}

// ConstructLogger has data required for a new console logger.
type ConstructLogger struct {
	RawConfig []byte
	Out       io.Writer
}

// Default console logger.
type consoleLogger struct {
	logger *logrus.Logger
}

// NewConsoleLogger constructs a new console logger.
func NewConsoleLogger(ctor *ConstructLogger) common.ILoggerProvider {
	out := ctor.Out
	if nil == out {
		out = os.Stdout
	}

	l := logrus.New()
	l.Out = out
	l.Level = getLogLevel(ctor.RawConfig)
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "Jan _2 15:04:05.000",
	}

	return &consoleLogger{
		logger: l,
	}
}

// Debug prints debug level message.
func (p *consoleLogger) Debug(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Debug(msg)
}

// Info prints info level message.
func (p *consoleLogger) Info(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Info(msg)
}

// Warn prints warning level message.
func (p *consoleLogger) Warn(msg string, fields ...string) {
	p.logger.WithFields(withFields(fields...)).Warn(msg)
}

// Error prints error level message.
func (p *consoleLogger) Error(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.logger.WithFields(withFields(fields...)).Error(msg)
}

// Fatal prints fatal level message and exits.
func (p *consoleLogger) Fatal(msg string, err error, fields ...string) {
	fields = append(fields, common.LogErrorToken, errorText(err))
	p.logger.WithFields(withFields(fields...)).Fatal(msg)
}

// Flush don't needed for a console logger.
func (p *consoleLogger) Flush() {
}

// Helper method to add generic fields to the output.
func withFields(fields ...string) logrus.Fields {
	fLen := len(fields)
	result := make(logrus.Fields, int(fLen/2))
	for ii := 0; ii < fLen; ii += 2 {
		if ii+1 >= fLen {
			break
		}

		result[fields[ii]] = fields[ii+1]
	}

	return result
}

// Returns error message or a placeholder.
func errorText(err error) string {
	if nil == err {
		return "<nil>"
	}

	return err.Error()
}

// Parses log level from the config, info is the default one.
func getLogLevel(rawConfig []byte) logrus.Level {
	s := &consoleSettings{}
	if err := yaml.Unmarshal(rawConfig, s); err != nil {
		return logrus.InfoLevel
	}

	switch strings.ToLower(s.Level) {
	case "debug", "dbg":
		return logrus.DebugLevel
	case "warning", "warn":
		return logrus.WarnLevel
	case "error", "err":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
