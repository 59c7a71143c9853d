// Package mqtt contains MQTT broker connection and MQTT-backed device driver.
package mqtt

import (
	"sync"
	"time"

	"github.com/docker/docker/pkg/namesgenerator"
	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/go-home-io/alexa-bridge/plugins/common"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/pkg/errors"
)

const (
	// Milliseconds to wait for in-flight messages on disconnect.
	disconnectQuiesce = 250
)

// ConstructClient has data required for a new MQTT client.
type ConstructClient struct {
	Settings *providers.MQTTSettings
	Logger   common.ILoggerProvider
}

// MQTT client implementation.
type client struct {
	sync.Mutex

	client   pahomqtt.Client
	logger   common.ILoggerProvider
	settings *providers.MQTTSettings
	timeout  time.Duration

	handlers map[string]providers.MQTTMessageHandler
}

// NewClient constructs a new MQTT client and connects to the broker.
func NewClient(ctor *ConstructClient) (providers.IMQTTProvider, error) {
	c := &client{
		logger:   ctor.Logger,
		settings: ctor.Settings,
		timeout:  time.Duration(ctor.Settings.ConnectTimeout) * time.Second,
		handlers: make(map[string]providers.MQTTMessageHandler),
	}

	clientID := ctor.Settings.ClientID
	if "" == clientID {
		clientID = "alexa-bridge-" + namesgenerator.GetRandomName(0)
		c.logger.Info("Using generated client ID", "client_id", clientID)
	}

	opts := pahomqtt.NewClientOptions().
		AddBroker(ctor.Settings.Broker).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetConnectTimeout(c.timeout).
		SetOnConnectHandler(c.onConnect).
		SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
			c.logger.Warn("MQTT connection lost", common.LogErrorToken, err.Error())
		})

	if "" != ctor.Settings.Username {
		opts.SetUsername(ctor.Settings.Username)
		opts.SetPassword(ctor.Settings.Password)
	}

	c.client = pahomqtt.NewClient(opts)
	token := c.client.Connect()
	if !token.WaitTimeout(c.timeout) {
		return nil, &ErrTimeout{Operation: "connect"}
	}

	if err := token.Error(); err != nil {
		return nil, errors.Wrap(err, "mqtt connect failed")
	}

	return c, nil
}

// TopicPrefix returns configured topics prefix.
func (c *client) TopicPrefix() string {
	return c.settings.TopicPrefix
}

// Publish sends message to the broker.
func (c *client) Publish(topic string, payload string) error {
	token := c.client.Publish(topic, c.settings.QoS, false, payload)
	if !token.WaitTimeout(c.timeout) {
		return &ErrTimeout{Operation: "publish"}
	}

	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "failed to publish to %s", topic)
	}

	c.logger.Debug("Published message", common.LogTopicToken, topic)
	return nil
}

// Subscribe subscribes to the topic.
// Subscriptions are restored after reconnect.
func (c *client) Subscribe(topic string, handler providers.MQTTMessageHandler) error {
	c.Lock()
	c.handlers[topic] = handler
	c.Unlock()

	if err := c.subscribe(topic, handler); err != nil {
		c.Lock()
		delete(c.handlers, topic)
		c.Unlock()
		return err
	}

	return nil
}

// Unsubscribe removes subscriptions.
func (c *client) Unsubscribe(topics ...string) error {
	c.Lock()
	for _, v := range topics {
		delete(c.handlers, v)
	}
	c.Unlock()

	token := c.client.Unsubscribe(topics...)
	if !token.WaitTimeout(c.timeout) {
		return &ErrTimeout{Operation: "unsubscribe"}
	}

	return token.Error()
}

// Disconnect closes broker connection.
func (c *client) Disconnect() {
	c.client.Disconnect(disconnectQuiesce)
}

// Re-subscribes known topics after connection was established.
func (c *client) onConnect(_ pahomqtt.Client) {
	c.logger.Info("MQTT connected")

	c.Lock()
	handlers := make(map[string]providers.MQTTMessageHandler, len(c.handlers))
	for k, v := range c.handlers {
		handlers[k] = v
	}
	c.Unlock()

	for k, v := range handlers {
		if err := c.subscribe(k, v); err != nil {
			c.logger.Error("Failed to restore subscription", err, common.LogTopicToken, k)
		}
	}
}

// Performs actual subscription.
func (c *client) subscribe(topic string, handler providers.MQTTMessageHandler) error {
	token := c.client.Subscribe(topic, c.settings.QoS, func(_ pahomqtt.Client, m pahomqtt.Message) {
		handler(m.Topic(), m.Payload())
	})

	if !token.WaitTimeout(c.timeout) {
		return &ErrTimeout{Operation: "subscribe"}
	}

	if err := token.Error(); err != nil {
		return errors.Wrapf(err, "failed to subscribe to %s", topic)
	}

	return nil
}
