// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the session API
//	-t int      request timeout (seconds)
//	-k          skip TLS certificate verification
//
// # JSON schema
//
//	{
//	  "server_url": "https://localhost:8000",
//	  "request_timeout": "10s",
//	  "insecure_skip_verify": false
//	}
package config
