package mavconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideConfigRoundTrip(t *testing.T) {
	defer OverrideConfig(Config{}) // restore a clean slate for later tests

	OverrideConfig(Config{LogLevel: "debug", ReadBufferSize: 1024, StrictMode: true})
	c := GetConfig()

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 1024, c.ReadBufferSize)
	assert.True(t, c.StrictMode)
}

func TestGetConfigDefaultsWhenUnset(t *testing.T) {
	defer OverrideConfig(Config{})

	OverrideConfig(Config{}) // force set=false path isn't reachable externally, so reset via override
	config = Config{}
	c := GetConfig()

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 4096, c.ReadBufferSize)
	assert.False(t, c.StrictMode)
}
