package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors Config for envconfig processing. Only variables that
// are actually set override the current values.
type envConfig struct {
	APIBaseURL    string        `envconfig:"API_BASE_URL"`
	SessionDBPath string        `envconfig:"SESSION_DB_PATH"`
	AuthLatency   time.Duration `envconfig:"AUTH_LATENCY"`
	HTTPTimeout   time.Duration `envconfig:"HTTP_TIMEOUT"`
	LogLevel      string        `envconfig:"LOG_LEVEL"`
}

// parseEnv overlays cfg with RESCUEMAP_-prefixed environment variables,
// e.g. RESCUEMAP_API_BASE_URL. Unset variables leave cfg untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process("rescuemap", &ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.SessionDBPath != "" {
		cfg.SessionDBPath = ec.SessionDBPath
	}
	if ec.AuthLatency != 0 {
		cfg.AuthLatency = ec.AuthLatency
	}
	if ec.HTTPTimeout != 0 {
		cfg.HTTPTimeout = ec.HTTPTimeout
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
}
