// Package envx reads typed values from environment variables, falling back
// to a default when the variable is unset or malformed.
package envx

import (
	"os"
	"time"
)

// GetString returns the value of name, or def when unset or empty.
func GetString(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// GetDuration parses name as a time.Duration ("15s", "2m"), returning def
// when the variable is unset or does not parse.
func GetDuration(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
