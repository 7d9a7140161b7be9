package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// RequestTimeout may be a string like "5s" or integer nanoseconds.
type JsonConfig struct {
	ServerURL          string         `json:"server_url"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	InsecureSkipVerify bool           `json:"insecure_skip_verify"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Missing keys keep their current values. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.InsecureSkipVerify {
		cfg.InsecureSkipVerify = true
	}
}
