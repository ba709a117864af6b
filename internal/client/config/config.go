package config

import "time"

// Config holds runtime settings for the mindbrew client.
//
// Fields:
//   - APIBaseURL: base URL of the catalog/user REST API.
//   - AuthRegion: AWS region of the identity provider's user pool.
//   - AuthClientID: app client id registered with the user pool.
//   - DBPath: path of the local sqlite database (launch flag, token cache).
//   - ResendCooldown: how long a verification-code resend stays locked out.
//   - LogLevel: "debug", "info", "warn" or "error".
type Config struct {
	APIBaseURL     string
	AuthRegion     string
	AuthClientID   string
	DBPath         string
	ResendCooldown time.Duration
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000/api/v1"
	c.AuthRegion = "us-east-1"
	c.AuthClientID = ""
	c.DBPath = "mindbrew.db"
	c.ResendCooldown = 30 * time.Second
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
