package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:3000/api/v1", c.APIBaseURL)
	assert.Equal(t, "us-east-1", c.AuthRegion)
	assert.Equal(t, "mindbrew.db", c.DBPath)
	assert.Equal(t, 30*time.Second, c.ResendCooldown)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.ResendCooldown)
}
