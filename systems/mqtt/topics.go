package mqtt

import (
	"fmt"
	"strings"
)

const (
	// Power command property.
	propPower = "power"
	// Absolute level command property.
	propLevel = "level"
	// Level raise command property.
	propLevelRaise = "level_raise"
	// Level lower command property.
	propLevelLower = "level_lower"
	// Current temperature state property.
	propTemperature = "temperature"
	// Target temperature property.
	propTarget = "target"
	// Thermostat mode state property.
	propMode = "mode"
	// Lock state property.
	propLock = "lock"

	// Commands segment.
	segmentSet = "set"
	// State segment.
	segmentState = "state"

	payloadOn  = "ON"
	payloadOff = "OFF"
)

// Builds command topic.
func commandTopic(prefix string, device string, property string) string {
	return fmt.Sprintf("%s/%s/%s/%s", prefix, device, segmentSet, property)
}

// Builds state topic.
func stateTopic(prefix string, device string, property string) string {
	return fmt.Sprintf("%s/%s/%s/%s", prefix, device, segmentState, property)
}

// Returns state property from the topic.
func stateProperty(topic string) string {
	idx := strings.LastIndex(topic, "/")
	if -1 == idx {
		return topic
	}

	return topic[idx+1:]
}
