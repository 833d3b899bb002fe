// Package cmdutil holds helpers shared by the command groups: client
// construction from resolved configuration and output formatting.
package cmdutil

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/steviee/serverseeker/internal/mojang"
	"github.com/steviee/serverseeker/internal/serverseeker"
	"github.com/steviee/serverseeker/internal/state"
)

// Viper keys for the global flags.
const (
	KeyJSON    = "json"
	KeyQuiet   = "quiet"
	KeyVerbose = "verbose"

	// KeyMojangBaseURL overrides the Mojang API used by --resolve.
	KeyMojangBaseURL = "mojang.base_url"
)

var userAgent = serverseeker.UserAgent

// SetVersion records the build version sent in the User-Agent header.
func SetVersion(version string) {
	userAgent = serverseeker.UserAgentFor(version)
}

// UserAgent returns the User-Agent header value for outgoing requests.
func UserAgent() string {
	return userAgent
}

// ErrNoAPIKey is returned when no API key is configured anywhere.
var ErrNoAPIKey = errors.New("no API key configured")

// NewClient builds an API client from the resolved configuration
// (flags, SERVERSEEKER_* environment, config file, defaults).
func NewClient() (*serverseeker.Client, error) {
	key := viper.GetString(state.KeyAPIKey)
	if key == "" {
		return nil, fmt.Errorf("%w: run 'serverseeker config set %s <key>' or set SERVERSEEKER_API_KEY",
			ErrNoAPIKey, state.KeyAPIKey)
	}

	return serverseeker.NewClient(key, &serverseeker.Config{
		BaseURL:   viper.GetString(state.KeyAPIBaseURL),
		Timeout:   viper.GetDuration(state.KeyAPITimeout),
		UserAgent: userAgent,
	}), nil
}

// NewMojangClient builds a Mojang profile client sharing the API timeout.
func NewMojangClient() *mojang.Client {
	return mojang.NewClient(&mojang.Config{
		BaseURL:   viper.GetString(KeyMojangBaseURL),
		Timeout:   viper.GetDuration(state.KeyAPITimeout),
		UserAgent: userAgent,
	})
}

// DefaultPort returns the configured default server port.
func DefaultPort() int {
	if port := viper.GetInt(state.KeyDefaultsPort); port > 0 {
		return port
	}
	return serverseeker.DefaultPort
}

// IsJSONMode reports whether --json (or SERVERSEEKER_JSON) is set.
func IsJSONMode() bool {
	return viper.GetBool(KeyJSON)
}
