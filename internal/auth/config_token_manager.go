package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fivetwenty-io/increase/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoConfigPersister = errors.New("no config persister configured")
)

// APIKeyManager serves a fixed API key.
type APIKeyManager struct {
	store *TokenStore
}

// NewAPIKeyManager creates a manager for the given key.
func NewAPIKeyManager(apiKey string) *APIKeyManager {
	store := NewTokenStore()
	if apiKey != "" {
		store.Set(&Token{AccessToken: apiKey})
	}

	return &APIKeyManager{store: store}
}

// GetToken returns the API key.
func (m *APIKeyManager) GetToken(_ context.Context) (string, error) {
	token := m.store.Get()
	if !token.Valid() {
		return "", constants.ErrNoAPIKey
	}

	return token.AccessToken, nil
}

// RefreshToken always fails: an API key can only be replaced with SetToken.
func (m *APIKeyManager) RefreshToken(_ context.Context) error {
	return constants.ErrStaticKeyRefresh
}

// SetToken replaces the API key.
func (m *APIKeyManager) SetToken(token string, expiresAt time.Time) {
	m.store.Set(&Token{AccessToken: token, ExpiresAt: expiresAt})
}

// ConfigPersister defines the interface for persisting config changes.
type ConfigPersister interface {
	UpdateAPIKey(environment, apiKey string) error
}

// ConfigTokenManager wraps APIKeyManager and writes every replaced key back
// to the CLI config file.
type ConfigTokenManager struct {
	*APIKeyManager

	configPersister ConfigPersister
	environment     string
}

// NewConfigTokenManager creates a new config-persisting token manager.
func NewConfigTokenManager(configPersister ConfigPersister, environment, apiKey string) *ConfigTokenManager {
	return &ConfigTokenManager{
		APIKeyManager:   NewAPIKeyManager(apiKey),
		configPersister: configPersister,
		environment:     environment,
	}
}

// Store validates and persists a new key, then starts serving it.
func (m *ConfigTokenManager) Store(apiKey string) error {
	if apiKey == "" {
		return constants.ErrEmptyAPIKey
	}

	if m.configPersister == nil {
		return ErrNoConfigPersister
	}

	err := m.configPersister.UpdateAPIKey(m.environment, apiKey)
	if err != nil {
		return fmt.Errorf("failed to update API key: %w", err)
	}

	m.SetToken(apiKey, time.Time{})

	return nil
}
