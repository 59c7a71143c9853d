package providers

// MQTTMessageHandler defines callback for incoming MQTT messages.
type MQTTMessageHandler func(topic string, payload []byte)

// IMQTTProvider defines MQTT broker connection logic.
type IMQTTProvider interface {
	Publish(topic string, payload string) error
	Subscribe(topic string, handler MQTTMessageHandler) error
	Unsubscribe(topics ...string) error
	TopicPrefix() string
	Disconnect()
}
