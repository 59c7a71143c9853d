package alexa

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests that every directive name round-trips with its exact spelling.
func TestDirectiveNamesTable(t *testing.T) {
	assert.Equal(t, 30, len(directiveNames))

	for k, v := range directiveNames {
		data, err := json.Marshal(k)
		require.NoError(t, err, v)
		assert.Equal(t, `"`+v+`"`, string(data))

		var parsed DirectiveName
		require.NoError(t, json.Unmarshal(data, &parsed), v)
		assert.Equal(t, k, parsed, v)
	}
}

// Tests that names are case-sensitive and unknown names are rejected.
func TestDirectiveNamesUnknown(t *testing.T) {
	data := []string{
		"turnOnRequest",
		"TURNONREQUEST",
		"TurnOnRequest ",
		"",
		"Unknown",
	}

	for _, v := range data {
		_, err := DirectiveNameString(v)
		assert.IsType(t, &ErrUnsupportedName{}, err, v)

		var d DirectiveName
		assert.Error(t, json.Unmarshal([]byte(`"`+v+`"`), &d), v)
	}

	_, err := json.Marshal(DirectiveUnknown)
	assert.Error(t, err)
	assert.Equal(t, "Unknown", DirectiveUnknown.String())
}

// Tests namespaces parsing.
func TestNamespaceString(t *testing.T) {
	for _, v := range []Namespace{NamespaceDiscovery, NamespaceControl, NamespaceQuery} {
		n, err := NamespaceString(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, n)
	}

	_, err := NamespaceString("Alexa.ConnectedHome.System")
	assert.IsType(t, &ErrUnsupportedNamespace{}, err)
}
