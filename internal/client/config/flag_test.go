package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags_OverridesDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin",
		"-a", "http://api.example/v1",
		"-r", "ca-central-1",
		"-p", "pool-client-1",
		"-d", "/tmp/state.db",
		"-l", "debug",
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://api.example/v1", cfg.APIBaseURL)
	assert.Equal(t, "ca-central-1", cfg.AuthRegion)
	assert.Equal(t, "pool-client-1", cfg.AuthClientID)
	assert.Equal(t, "/tmp/state.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func Test_parseFlags_NoFlagsKeepsDefaults(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://localhost:3000/api/v1", cfg.APIBaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
}
