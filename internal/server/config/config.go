// Package config handles configuration for the backend: defaults, JSON
// overlay, environment overlay, and command-line flags, each later source
// taking precedence.
package config

import "time"

// Config holds runtime settings for the backend.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN; empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing tokens (HS256). Override the
//     default anywhere that matters.
//   - TokenValidityDuration: lifetime of issued tokens.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "devSecretKey"
	c.TokenValidityDuration = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then the optional JSON
// file, then environment variables, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
