//+build !release

package mocks

import "sync"

// Fake logger
type fakeLogger struct {
	sync.Mutex
	callback   func(string)
	lastFields []string
}

// Prints debug level message.
func (p *fakeLogger) Debug(msg string, fields ...string) {
	p.invoke(msg, fields)
}

// Prints info level message.
func (p *fakeLogger) Info(msg string, fields ...string) {
	p.invoke(msg, fields)
}

// Prints warning level message.
func (p *fakeLogger) Warn(msg string, fields ...string) {
	p.invoke(msg, fields)
}

// Prints error level message.
func (p *fakeLogger) Error(msg string, err error, fields ...string) {
	p.invoke(msg, fields)
}

// Prints fatal level message and exits.
func (p *fakeLogger) Fatal(msg string, err error, fields ...string) {
	p.invoke(msg, fields)
}

// Flush does nothing.
func (p *fakeLogger) Flush() {
}

// LastFields returns fields of the last message.
func (p *fakeLogger) LastFields() []string {
	p.Lock()
	defer p.Unlock()
	return p.lastFields
}

func (p *fakeLogger) invoke(msg string, fields []string) {
	p.Lock()
	p.lastFields = fields
	p.Unlock()

	if p.callback != nil {
		p.callback(msg)
	}
}

// FakeNewLogger creates a fake logger provider.
func FakeNewLogger(callback func(string)) *fakeLogger {
	return &fakeLogger{
		callback: callback,
	}
}
