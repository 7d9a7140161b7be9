package config

import "time"

// Config holds runtime settings for the gophauth CLI.
//
// Fields:
//   - ServerURL: base URL of the session HTTP API.
//   - RequestTimeout: per-request timeout for API calls.
//   - InsecureSkipVerify: accept self-signed server certificates (development only).
type Config struct {
	ServerURL          string
	RequestTimeout     time.Duration
	InsecureSkipVerify bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "https://localhost:8000"
	c.RequestTimeout = 10 * time.Second
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
