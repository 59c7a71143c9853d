package utils

import (
	"errors"
	"testing"

	"github.com/go-home-io/alexa-bridge/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettings struct {
	Name  string  `yaml:"name" validate:"required"`
	Level float64 `yaml:"level" validate:"percent" default:"50"`
	throw bool
}

func (f *fakeSettings) Validate() error {
	if f.throw {
		return errors.New("error")
	}

	return nil
}

// Tests settings loading chain.
func TestLoadSettings(t *testing.T) {
	v := NewValidator(mocks.FakeNewLogger(nil))

	s := &fakeSettings{}
	require.NoError(t, LoadSettings(v, []byte("name: test"), s))
	assert.Equal(t, "test", s.Name)
	assert.Equal(t, 50.0, s.Level)

	assert.Error(t, LoadSettings(v, []byte(":wrong yaml"), &fakeSettings{}))
	assert.IsType(t, &ErrInvalidConfig{}, LoadSettings(v, []byte("level: 20"), &fakeSettings{}))
	assert.IsType(t, &ErrInvalidConfig{}, LoadSettings(v, []byte("name: t\nlevel: 120"), &fakeSettings{}))
	assert.Error(t, LoadSettings(v, []byte("name: test"), &fakeSettings{throw: true}))
	assert.IsType(t, &ErrInvalidConfig{}, LoadSettings(v, nil, &fakeSettings{}))
}
