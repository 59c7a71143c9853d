package settings

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-home-io/alexa-bridge/mocks"
	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
	"github.com/go-home-io/alexa-bridge/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Returns settings provider with fake logger.
func getSettings() *settingsProvider {
	s := newSettingsProvider()
	s.logger = mocks.FakeNewLogger(nil)
	return s
}

const fullConfig = `
system: logger
provider: console
level: error
---
system: alexa
port: 9090
path: /smart-home
legacyResolution: true
---
system: device
provider: switch/virtual
id: sw1
name: Porch light
---
system: device
provider: thermostat/virtual
id: th1
name: Hall
target: 22
simulate: "off"
---
system: device
provider: lock/virtual
id: lock1
name: Front door
locked: true
`

// Tests full configuration loading.
func TestLoadFull(t *testing.T) {
	s := getSettings()
	require.NoError(t, s.loadFiles([][]byte{[]byte(fullConfig)}))
	defer s.UnloadDevices()

	assert.Equal(t, 9090, s.AlexaSettings().Port)
	assert.Equal(t, "/smart-home/", s.AlexaSettings().Path)
	assert.True(t, s.AlexaSettings().LegacyResolution)
	assert.Equal(t, 3, s.Registry().Len())
	assert.Equal(t, 3, len(s.DevicesConfig()))
	assert.NotNil(t, s.Cron())
	assert.NotNil(t, s.Validator())
	assert.NotNil(t, s.SystemLogger())

	l, err := s.Registry().GetLockable("lock1")
	require.NoError(t, err)
	assert.Equal(t, enums.LockLocked, enums.LockStateNative(l.LockState()))

	th, err := s.Registry().GetThermostat("th1")
	require.NoError(t, err)
	assert.Equal(t, uint16(716), th.TargetTemperature())
}

// Tests defaults when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	s := getSettings()
	require.NoError(t, s.loadFiles([][]byte{}))
	defer s.UnloadDevices()

	assert.Equal(t, &providers.AlexaSettings{Port: 8080, Path: "/alexa/"}, s.AlexaSettings())
	assert.Equal(t, 0, s.Registry().Len())
}

// Tests that wrong records are skipped.
func TestLoadWrongRecords(t *testing.T) {
	config := `
provider: virtual
---
system: unknown
---
system: device
provider: vacuum/virtual
id: v1
name: Vacuum
---
system: device
provider: switch/zwave
id: z1
name: Z-Wave
---
system: device
provider: switch/virtual
name: No ID
---
system: device
provider: switch/virtual
id: sw1
name: First
---
system: device
provider: dimmer/virtual
id: sw1
name: Duplicate
---
system: device
provider: switch/mqtt
id: mq1
name: No broker
---
system: device
provider: dimmer/virtual
id: dim1
name: Too bright
level: 200
---
system: alexa
port: 99999
`

	s := getSettings()
	require.NoError(t, s.loadFiles([][]byte{[]byte(config)}))
	defer s.UnloadDevices()

	assert.Equal(t, 1, s.Registry().Len())
	_, err := s.Registry().GetSwitchable("sw1")
	assert.NoError(t, err)
	assert.Equal(t, 8080, s.AlexaSettings().Port)
}

// Tests environment variables in templates.
func TestTemplateEnv(t *testing.T) {
	require.NoError(t, os.Setenv("ALEXA_BRIDGE_TEST_PORT", "7070"))
	defer os.Unsetenv("ALEXA_BRIDGE_TEST_PORT")

	s := getSettings()
	require.NoError(t, s.loadFiles([][]byte{[]byte("system: alexa\nport: {{ env \"ALEXA_BRIDGE_TEST_PORT\" }}")}))
	assert.Equal(t, 7070, s.AlexaSettings().Port)
}

// Tests that broken template fails loading.
func TestTemplateFailure(t *testing.T) {
	data := []string{
		"system: alexa\nport: {{ env ",
		"system: alexa\nport: {{ unknown \"A\" }}",
	}

	for _, v := range data {
		s := getSettings()
		assert.Error(t, s.loadFiles([][]byte{[]byte(v)}), v)
	}
}

// Tests that unreachable broker fails loading.
func TestLoadUnreachableBroker(t *testing.T) {
	s := getSettings()
	err := s.loadFiles([][]byte{[]byte("system: mqtt\nprovider: paho\nbroker: tcp://127.0.0.1:1\nconnectTimeout: 2")})
	assert.Error(t, err)
}

// Tests loading from the file system.
func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "alexa-bridge-settings")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "config.yaml"), []byte(fullConfig), 0600))

	s, err := Load(&StartUpOptions{Config: dir})
	require.NoError(t, err)
	defer s.UnloadDevices()

	assert.Equal(t, 3, s.Registry().Len())
	assert.Equal(t, 9090, s.AlexaSettings().Port)

	_, err = Load(&StartUpOptions{Config: dir, Pattern: "["})
	assert.Error(t, err)
}
