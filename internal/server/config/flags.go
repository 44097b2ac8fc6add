package config

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pandax-i/healthhub/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      session token validity, hours
//	-i string   OAuth client id
//	-k string   OAuth client secret
//	-r string   OAuth redirect (callback) URL
//	-f string   front-end callback page receiving the token
//	-o string   comma-separated CORS allowed origins
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components. The token
// validity flag is accepted as an integer in hours.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-i", "-k", "-r", "-f", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Hours()), "token_validity_duration (in hours)")

	fs.StringVar(&config.OAuthClientID, "i", config.OAuthClientID, "OAuth client id")
	fs.StringVar(&config.OAuthClientSecret, "k", config.OAuthClientSecret, "OAuth client secret")
	fs.StringVar(&config.OAuthRedirectURL, "r", config.OAuthRedirectURL, "OAuth redirect URL")
	fs.StringVar(&config.FrontendCallbackURL, "f", config.FrontendCallbackURL, "front-end callback URL")

	origins := fs.String("o", strings.Join(config.CORSAllowedOrigins, ","), "CORS allowed origins (comma-separated)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Hour
	config.CORSAllowedOrigins = strings.Split(*origins, ",")
}
