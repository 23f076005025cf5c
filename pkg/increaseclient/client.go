// Package increaseclient provides the main entry point for creating Increase API clients
package increaseclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/increase/internal/client"
	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/fivetwenty-io/increase/pkg/increase"
)

// New creates a new Increase API client. Empty APIKey and BaseURL are filled
// from INCREASE_API_KEY and INCREASE_BASE_URL; otherwise BaseURL is derived
// from Environment. The given config is not modified.
func New(config *increase.Config) (increase.Client, error) {
	if config == nil {
		return nil, increase.ErrConfigRequired
	}

	resolved := *config

	if resolved.APIKey == "" {
		resolved.APIKey = os.Getenv(constants.EnvAPIKey)
	}

	if resolved.APIKey == "" {
		return nil, increase.ErrAPIKeyRequired
	}

	baseURL, err := ResolveBaseURL(resolved.BaseURL, resolved.Environment)
	if err != nil {
		return nil, err
	}

	resolved.BaseURL = baseURL

	// Use the internal client implementation
	c, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a production client with the given API key.
func NewWithAPIKey(apiKey string) (increase.Client, error) {
	return New(&increase.Config{APIKey: apiKey, Environment: constants.EnvironmentProduction})
}

// NewSandbox creates a client against the sandbox environment.
func NewSandbox(apiKey string) (increase.Client, error) {
	return New(&increase.Config{APIKey: apiKey, Environment: constants.EnvironmentSandbox})
}

// ResolveBaseURL picks the API root: an explicit base URL, then
// INCREASE_BASE_URL, then the URL of the named environment. An empty
// environment means production.
func ResolveBaseURL(baseURL, environment string) (string, error) {
	if baseURL == "" {
		baseURL = os.Getenv(constants.EnvBaseURL)
	}

	if baseURL != "" {
		return normalizeBaseURL(baseURL), nil
	}

	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "", constants.EnvironmentProduction:
		return constants.ProductionBaseURL, nil
	case constants.EnvironmentSandbox:
		return constants.SandboxBaseURL, nil
	default:
		return "", fmt.Errorf("%w: %q (want %s or %s)", increase.ErrUnknownEnvironment,
			environment, constants.EnvironmentProduction, constants.EnvironmentSandbox)
	}
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
