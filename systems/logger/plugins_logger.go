package logger

import (
	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/systems"
)

// ConstructPluginLogger has data required for a new plugin logger.
// DeviceID is optional and binds every message to the device.
type ConstructPluginLogger struct {
	SystemLogger common.ILoggerProvider
	System       systems.SystemType
	Provider     string
	DeviceID     string
}

// Logger which binds system, provider and optional device fields.
type pluginLogger struct {
	systemLogger common.ILoggerProvider
	boundFields  []string
}

// NewPluginLogger constructs a new logger for the system provider or device driver.
func NewPluginLogger(ctor *ConstructPluginLogger) common.ILoggerProvider {
	l := &pluginLogger{
		systemLogger: ctor.SystemLogger,
		boundFields:  []string{common.LogSystemToken, ctor.System.String(), common.LogProviderToken, ctor.Provider},
	}

	if "" != ctor.DeviceID {
		l.boundFields = append(l.boundFields, common.LogDeviceIDToken, ctor.DeviceID)
	}

	return l
}

// Debug sends debug level message.
func (l *pluginLogger) Debug(msg string, fields ...string) {
	l.systemLogger.Debug(msg, l.merge(fields)...)
}

// Info sends info level message.
func (l *pluginLogger) Info(msg string, fields ...string) {
	l.systemLogger.Info(msg, l.merge(fields)...)
}

// Warn sends warning level message.
func (l *pluginLogger) Warn(msg string, fields ...string) {
	l.systemLogger.Warn(msg, l.merge(fields)...)
}

// Error sends error level message.
func (l *pluginLogger) Error(msg string, err error, fields ...string) {
	l.systemLogger.Error(msg, err, l.merge(fields)...)
}

// Fatal sends fatal level message and exits.
func (l *pluginLogger) Fatal(msg string, err error, fields ...string) {
	l.systemLogger.Fatal(msg, err, l.merge(fields)...)
}

// Flush flushes system logger.
func (l *pluginLogger) Flush() {
	l.systemLogger.Flush()
}

// Appends bound fields which were not set by the message.
func (l *pluginLogger) merge(fields []string) []string {
	set := make(map[string]bool, len(fields)/2)
	for i := 0; i+1 < len(fields); i += 2 {
		set[fields[i]] = true
	}

	merged := make([]string, 0, len(fields)+len(l.boundFields))
	merged = append(merged, fields...)
	for i := 0; i+1 < len(l.boundFields); i += 2 {
		if set[l.boundFields[i]] {
			continue
		}

		merged = append(merged, l.boundFields[i], l.boundFields[i+1])
	}

	return merged
}
