package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-g string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN ("" selects the in-memory store)
//	-s string   session token HMAC secret
//	-t int      session token validity, minutes
//	-n string   session cookie domain
//	-o string   comma separated CORS origins
//	-b int      bcrypt cost
//	-x string   TLS certificate file
//	-k string   TLS key file
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-d", "-s", "-t", "-n", "-o", "-b", "-x", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC health address and port")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	ttl := fs.Int("t", int(config.SessionTokenTTL.Minutes()), "session token validity (in minutes)")
	fs.StringVar(&config.AppDomain, "n", config.AppDomain, "session cookie domain")
	origins := fs.String("o", strings.Join(config.AllowedOrigins, ","), "allowed CORS origins, comma separated")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.TLSCertFile, "x", config.TLSCertFile, "TLS certificate file")
	fs.StringVar(&config.TLSKeyFile, "k", config.TLSKeyFile, "TLS key file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only explicitly passed flags override, so a sub-minute TTL from JSON or
	// the environment survives the minutes round-trip.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.SessionTokenTTL = time.Duration(*ttl) * time.Minute
		case "o":
			config.AllowedOrigins = splitList(*origins)
		}
	})
}
