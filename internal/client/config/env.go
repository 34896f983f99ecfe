package config

import "github.com/dmitrijs2005/ctibook/internal/envx"

// parseEnv overlays Config from environment variables:
//
//	CTIBOOK_SERVER_URL       base URL of the backend server
//	CTIBOOK_REQUEST_TIMEOUT  per-request timeout ("15s", "1m")
func parseEnv(cfg *Config) {
	cfg.ServerURL = envx.GetString("CTIBOOK_SERVER_URL", cfg.ServerURL)
	cfg.RequestTimeout = envx.GetDuration("CTIBOOK_REQUEST_TIMEOUT", cfg.RequestTimeout)
}
