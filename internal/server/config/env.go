package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// envFile is loaded into the process environment, if present, before the
// variables below are read. Variables already set in the environment win.
var envFile = ".env"

// parseEnv overlays config with environment variables:
//
//	HTTP_ADDR, GRPC_ADDR, DATABASE_DSN, SECRET_KEY, SESSION_TOKEN_TTL
//	(Go duration), APP_DOMAIN, ALLOWED_ORIGINS (comma separated),
//	BCRYPT_COST, TLS_CERT_FILE, TLS_KEY_FILE.
//
// Malformed numeric or duration values are ignored.
func parseEnv(config *Config) {
	_ = godotenv.Load(envFile)

	lookupString(&config.EndpointAddrHTTP, "HTTP_ADDR")
	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.SecretKey, "SECRET_KEY")
	lookupString(&config.AppDomain, "APP_DOMAIN")
	lookupString(&config.TLSCertFile, "TLS_CERT_FILE")
	lookupString(&config.TLSKeyFile, "TLS_KEY_FILE")

	if v, ok := os.LookupEnv("SESSION_TOKEN_TTL"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenTTL = d
		}
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("ALLOWED_ORIGINS"); ok {
		config.AllowedOrigins = splitList(v)
	}
}

func lookupString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
