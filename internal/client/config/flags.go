package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ctibook/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   base URL of the backend server
//	-t int      request timeout in seconds
//
// Arguments are filtered through flagx so flags handled elsewhere
// (such as -c/-config) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the backend server")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
