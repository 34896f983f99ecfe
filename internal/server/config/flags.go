package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/ctibook/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   bind address for the HTTP endpoint
//	-d string   PostgreSQL DSN (empty keeps the in-memory store)
//	-k string   token signing secret
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-k"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointAddr, "a", cfg.EndpointAddr, "bind address")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "k", cfg.SecretKey, "token signing secret")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
