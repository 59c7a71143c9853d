package common

// ILoggerProvider defines logger provider which will be passed to every
// system and device driver.
type ILoggerProvider interface {
	Debug(msg string, fields ...string)
	Info(msg string, fields ...string)
	Warn(msg string, fields ...string)
	Error(msg string, err error, fields ...string)
	Fatal(msg string, err error, fields ...string)
	Flush()
}

// ISettings describes interface used by every driver config.
// After parsing yaml, go-home will invoke internal validation and then call this method.
type ISettings interface {
	Validate() error
}
