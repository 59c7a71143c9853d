// Package common contains shared data available for all systems and device drivers.
package common

const (
	// LogSystemToken describes system log entry.
	LogSystemToken = "system"
	// LogDeviceTypeToken describes device type log entry.
	LogDeviceTypeToken = "device_type"
	// LogDeviceIDToken describes device ID log entry.
	LogDeviceIDToken = "device_id"
	// LogDeviceCapabilityToken describes device capability log entry.
	LogDeviceCapabilityToken = "device_cap"
	// LogNamespaceToken describes directive namespace log entry.
	LogNamespaceToken = "namespace"
	// LogDirectiveToken describes directive name log entry.
	LogDirectiveToken = "directive"
	// LogMethodToken describes HTTP method log entry.
	LogMethodToken = "method"
	// LogURLToken describes URL log entry.
	LogURLToken = "url"
	// LogTopicToken describes MQTT topic log entry.
	LogTopicToken = "topic"
)

const (
	// LogNodeToken describes node log entry.
	LogNodeToken = "node"
	// LogErrorToken describes error log entry.
	LogErrorToken = "error"
	// LogFileToken describes file log entry.
	LogFileToken = "file"
	// LogProviderToken describes provider log entry.
	LogProviderToken = "provider"
	// LogFieldToken describes field log entry.
	LogFieldToken = "field"
)
