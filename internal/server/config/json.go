package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pandax-i/healthhub/internal/flagx"
	"github.com/pandax-i/healthhub/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	OAuthClientID         string         `json:"oauth_client_id"`
	OAuthClientSecret     string         `json:"oauth_client_secret"`
	OAuthRedirectURL      string         `json:"oauth_redirect_url"`
	OAuthAuthorizeURL     string         `json:"oauth_authorize_url"`
	OAuthTokenURL         string         `json:"oauth_token_url"`
	OAuthUserInfoURL      string         `json:"oauth_user_info_url"`
	FrontendCallbackURL   string         `json:"frontend_callback_url"`
	CORSAllowedOrigins    []string       `json:"cors_allowed_origins"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags; when
// neither is set, no file is loaded. Empty JSON fields do not override the
// values already present in Config. If the file cannot be read or contains
// invalid JSON, the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.OAuthClientID != "" {
		config.OAuthClientID = c.OAuthClientID
	}
	if c.OAuthClientSecret != "" {
		config.OAuthClientSecret = c.OAuthClientSecret
	}
	if c.OAuthRedirectURL != "" {
		config.OAuthRedirectURL = c.OAuthRedirectURL
	}
	if c.OAuthAuthorizeURL != "" {
		config.OAuthAuthorizeURL = c.OAuthAuthorizeURL
	}
	if c.OAuthTokenURL != "" {
		config.OAuthTokenURL = c.OAuthTokenURL
	}
	if c.OAuthUserInfoURL != "" {
		config.OAuthUserInfoURL = c.OAuthUserInfoURL
	}
	if c.FrontendCallbackURL != "" {
		config.FrontendCallbackURL = c.FrontendCallbackURL
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
}
