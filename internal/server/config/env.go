package config

import "github.com/dmitrijs2005/ctibook/internal/envx"

// parseEnv overlays Config from environment variables:
//
//	CTIBOOK_ENDPOINT_ADDR   bind address
//	CTIBOOK_DATABASE_DSN    PostgreSQL DSN
//	CTIBOOK_SECRET_KEY      token signing secret
//	CTIBOOK_TOKEN_VALIDITY  token lifetime ("24h")
func parseEnv(cfg *Config) {
	cfg.EndpointAddr = envx.GetString("CTIBOOK_ENDPOINT_ADDR", cfg.EndpointAddr)
	cfg.DatabaseDSN = envx.GetString("CTIBOOK_DATABASE_DSN", cfg.DatabaseDSN)
	cfg.SecretKey = envx.GetString("CTIBOOK_SECRET_KEY", cfg.SecretKey)
	cfg.TokenValidityDuration = envx.GetDuration("CTIBOOK_TOKEN_VALIDITY", cfg.TokenValidityDuration)
}
