package systems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests system names table.
func TestSystemTypeString(t *testing.T) {
	for k, v := range systemTypeNames {
		p, err := SystemTypeString(v)
		require.NoError(t, err, v)
		assert.Equal(t, k, p)
		assert.Equal(t, v, k.String())
	}

	p, err := SystemTypeString(" MQTT ")
	require.NoError(t, err)
	assert.Equal(t, SysMQTT, p)

	_, err = SystemTypeString("bus")
	assert.Error(t, err)
	assert.Equal(t, "SystemType(42)", SystemType(42).String())
}
