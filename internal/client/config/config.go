// Package config handles configuration for the terminal client: defaults,
// JSON file overlay, environment overlay, and command-line flags, each
// later source taking precedence.
package config

import "time"

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerURL: base URL of the backend REST endpoint.
//   - RequestTimeout: per-request timeout for backend calls. Zero disables
//     the client-side timeout and leaves the transport default.
type Config struct {
	ServerURL      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applying defaults, then JSON (if a file
// was given), then environment variables, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
