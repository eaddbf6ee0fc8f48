package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the rescue-data API (default from Config)
//	-d string   path of the local session database
//	-s int      simulated auth latency in milliseconds
//	-l string   log level
//
// The function filters os.Args to the flags it owns, via flagx.FilterArgs,
// so it does not interfere with flags handled elsewhere (-c/-config).
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the rescue-data API")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path of the local session database")
	authLatencyMs := fs.Int("s", int(cfg.AuthLatency.Milliseconds()), "simulated auth latency (in milliseconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AuthLatency = time.Duration(*authLatencyMs) * time.Millisecond
}
