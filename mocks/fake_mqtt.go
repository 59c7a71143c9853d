//+build !release

package mocks

import (
	"strings"
	"sync"

	"github.com/go-home-io/alexa-bridge/providers"
)

// FakeMessage is a published message.
type FakeMessage struct {
	Topic   string
	Payload string
}

// FakeMQTT records publishes and delivers state messages to subscribers.
type FakeMQTT struct {
	sync.Mutex

	Prefix    string
	Err       error
	Published []FakeMessage

	handlers map[string]providers.MQTTMessageHandler
}

// TopicPrefix returns configured prefix.
func (f *FakeMQTT) TopicPrefix() string {
	return f.Prefix
}

// Publish records message.
func (f *FakeMQTT) Publish(topic string, payload string) error {
	f.Lock()
	defer f.Unlock()

	if nil != f.Err {
		return f.Err
	}

	f.Published = append(f.Published, FakeMessage{Topic: topic, Payload: payload})
	return nil
}

// Subscribe stores handler.
func (f *FakeMQTT) Subscribe(topic string, handler providers.MQTTMessageHandler) error {
	f.Lock()
	defer f.Unlock()

	if nil != f.Err {
		return f.Err
	}

	f.handlers[topic] = handler
	return nil
}

// Unsubscribe removes handlers.
func (f *FakeMQTT) Unsubscribe(topics ...string) error {
	f.Lock()
	defer f.Unlock()

	for _, v := range topics {
		delete(f.handlers, v)
	}

	return nil
}

// Disconnect does nothing.
func (f *FakeMQTT) Disconnect() {
}

// Subscriptions returns number of active subscriptions.
func (f *FakeMQTT) Subscriptions() int {
	f.Lock()
	defer f.Unlock()

	return len(f.handlers)
}

// Last returns last published message.
func (f *FakeMQTT) Last() FakeMessage {
	f.Lock()
	defer f.Unlock()

	if 0 == len(f.Published) {
		return FakeMessage{}
	}

	return f.Published[len(f.Published)-1]
}

// Deliver sends message to every matching subscription.
// Only trailing single-level wildcard is supported.
func (f *FakeMQTT) Deliver(topic string, payload string) {
	f.Lock()
	matched := make([]providers.MQTTMessageHandler, 0)
	for k, v := range f.handlers {
		if k == topic || (strings.HasSuffix(k, "/+") && strings.HasPrefix(topic, strings.TrimSuffix(k, "+")) &&
			!strings.Contains(strings.TrimPrefix(topic, strings.TrimSuffix(k, "+")), "/")) {
			matched = append(matched, v)
		}
	}
	f.Unlock()

	for _, v := range matched {
		v(topic, []byte(payload))
	}
}

// FakeNewMQTT creates a new fake MQTT provider.
func FakeNewMQTT(prefix string) *FakeMQTT {
	return &FakeMQTT{
		Prefix:    prefix,
		Published: make([]FakeMessage, 0),
		handlers:  make(map[string]providers.MQTTMessageHandler),
	}
}
