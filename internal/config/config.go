// Package config loads runtime settings for the RescueMap client.
//
// Sources are applied in order, later ones overriding earlier ones:
// built-in defaults, an optional JSON file (-c/-config), environment
// variables (RESCUEMAP_* prefix), command-line flags.
package config

import "time"

// Config holds runtime settings for the RescueMap CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote rescue-data API.
//   - SessionDBPath: path of the local SQLite file holding the session record.
//   - AuthLatency: artificial delay on login/register, mimicking a remote
//     credential service. 0 disables it.
//   - HTTPTimeout: client-side timeout on API calls. 0 means none; requests
//     are then bounded only by their context.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	APIBaseURL    string
	SessionDBPath string
	AuthLatency   time.Duration
	HTTPTimeout   time.Duration
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.SessionDBPath = "rescuemap.db"
	c.AuthLatency = 800 * time.Millisecond
	c.HTTPTimeout = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given), the environment, and
// command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
