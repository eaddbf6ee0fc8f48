package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/rescuemap/internal/flagx"
	"github.com/dmitrijs2005/rescuemap/internal/timex"
)

// jsonConfig is a DTO used only for JSON unmarshalling. Durations may be
// given as strings like "800ms" or as integer nanoseconds.
type jsonConfig struct {
	APIBaseURL    string         `json:"api_base_url"`
	SessionDBPath string         `json:"session_db_path"`
	AuthLatency   timex.Duration `json:"auth_latency"`
	HTTPTimeout   timex.Duration `json:"http_timeout"`
	LogLevel      string         `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. Absent file flag means no JSON source. Fields missing
// from the file keep their current values. Read or parse failures panic;
// a broken config file should stop startup.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.AuthLatency.Duration != 0 {
		cfg.AuthLatency = time.Duration(jc.AuthLatency.Duration)
	}
	if jc.HTTPTimeout.Duration != 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
