package mqtt

import (
	"sync"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-home-io/alexa-bridge/mocks"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err error
}

func (t *fakeToken) Wait() bool                     { return true }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}

// Broker connection which fails subscriptions on demand.
type fakePaho struct {
	pahomqtt.Client
	sync.Mutex

	subErr     error
	subscribed []string
}

func (f *fakePaho) Subscribe(topic string, _ byte, _ pahomqtt.MessageHandler) pahomqtt.Token {
	f.Lock()
	defer f.Unlock()

	if nil == f.subErr {
		f.subscribed = append(f.subscribed, topic)
	}

	return &fakeToken{err: f.subErr}
}

func (f *fakePaho) topics() []string {
	f.Lock()
	defer f.Unlock()
	return append([]string{}, f.subscribed...)
}

func getFakeClient(paho *fakePaho) *client {
	return &client{
		client:   paho,
		logger:   mocks.FakeNewLogger(nil),
		settings: &providers.MQTTSettings{TopicPrefix: "alexa"},
		timeout:  time.Second,
		handlers: make(map[string]providers.MQTTMessageHandler),
	}
}

// Tests that unreachable broker fails construction.
func TestClientUnreachableBroker(t *testing.T) {
	_, err := NewClient(&ConstructClient{
		Settings: &providers.MQTTSettings{
			Broker:         "tcp://127.0.0.1:1",
			TopicPrefix:    "alexa",
			ConnectTimeout: 2,
		},
		Logger: mocks.FakeNewLogger(nil),
	})

	assert.Error(t, err)
}

// Tests topic helpers.
func TestTopics(t *testing.T) {
	assert.Equal(t, "alexa/dev/set/power", commandTopic("alexa", "dev", propPower))
	assert.Equal(t, "alexa/dev/state/+", stateTopic("alexa", "dev", "+"))
	assert.Equal(t, "mode", stateProperty("alexa/dev/state/mode"))
	assert.Equal(t, "mode", stateProperty("mode"))
}

// Tests that failed subscription is not restored after reconnect.
func TestClientFailedSubscription(t *testing.T) {
	paho := &fakePaho{subErr: errors.New("not authorized")}
	c := getFakeClient(paho)

	err := c.Subscribe("alexa/th1/state/+", func(string, []byte) {})
	assert.Error(t, err)
	assert.Equal(t, 0, len(c.handlers))

	paho.subErr = nil
	require.NoError(t, c.Subscribe("alexa/lock1/state/+", func(string, []byte) {}))
	assert.Equal(t, 1, len(c.handlers))

	c.onConnect(paho)
	assert.Equal(t, []string{"alexa/lock1/state/+", "alexa/lock1/state/+"}, paho.topics())
}
