package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
	"github.com/dmitrijs2005/gophauth/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations accept
// "30m" style strings or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	SecretKey        string         `json:"secret_key"`
	SessionTokenTTL  timex.Duration `json:"session_token_ttl"`
	AppDomain        string         `json:"app_domain"`
	AllowedOrigins   []string       `json:"allowed_origins"`
	BcryptCost       int            `json:"bcrypt_cost"`
	TLSCertFile      string         `json:"tls_cert_file"`
	TLSKeyFile       string         `json:"tls_key_file"`
}

// parseJson overlays config with the JSON file named by -c / -config.
// Keys absent from the file leave the current value untouched. A file that
// cannot be read or decoded panics, since the server must not start on a
// half-understood config.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AppDomain, c.AppDomain)
	setString(&config.TLSCertFile, c.TLSCertFile)
	setString(&config.TLSKeyFile, c.TLSKeyFile)

	if c.SessionTokenTTL.Duration != 0 {
		config.SessionTokenTTL = c.SessionTokenTTL.Duration
	}
	if len(c.AllowedOrigins) > 0 {
		config.AllowedOrigins = c.AllowedOrigins
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
