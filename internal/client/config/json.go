package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ctibook/internal/flagx"
	"github.com/dmitrijs2005/ctibook/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. Durations may
// be given as strings ("15s") or integer nanoseconds via timex.Duration.
type jsonConfig struct {
	ServerURL      string         `json:"server_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag, no overlay. Read or unmarshal failures panic; config problems
// should stop the program before it talks to anything.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
