package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fivetwenty-io/increase/internal/auth"
	"github.com/fivetwenty-io/increase/internal/constants"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

type recordingPersister struct {
	environment string
	apiKey      string
	err         error
}

func (p *recordingPersister) UpdateAPIKey(environment, apiKey string) error {
	p.environment = environment
	p.apiKey = apiKey

	return p.err
}

func TestAPIKeyManager(t *testing.T) {
	t.Parallel()

	t.Run("returns configured key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("secret_key")

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "secret_key", token)
	})

	t.Run("empty key is an error", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("")

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, constants.ErrNoAPIKey)
	})

	t.Run("refresh is not supported", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("secret_key")
		require.ErrorIs(t, manager.RefreshToken(context.Background()), constants.ErrStaticKeyRefresh)
	})

	t.Run("set token replaces key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("old")
		manager.SetToken("new", time.Time{})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "new", token)
	})

	t.Run("expired key is rejected", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewAPIKeyManager("")
		manager.SetToken("short-lived", time.Now().Add(-time.Minute))

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, constants.ErrNoAPIKey)
	})
}

func TestConfigTokenManager_Store(t *testing.T) {
	t.Parallel()

	t.Run("persists and serves new key", func(t *testing.T) {
		t.Parallel()

		persister := &recordingPersister{}
		manager := auth.NewConfigTokenManager(persister, "sandbox", "")

		require.NoError(t, manager.Store("sandbox_key"))
		assert.Equal(t, "sandbox", persister.environment)
		assert.Equal(t, "sandbox_key", persister.apiKey)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "sandbox_key", token)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewConfigTokenManager(&recordingPersister{}, "sandbox", "")
		require.ErrorIs(t, manager.Store(""), constants.ErrEmptyAPIKey)
	})

	t.Run("keeps old key when persisting fails", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewConfigTokenManager(&recordingPersister{err: errDiskFull}, "production", "old")

		err := manager.Store("new")
		require.ErrorIs(t, err, errDiskFull)

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "old", token)
	})

	t.Run("requires a persister", func(t *testing.T) {
		t.Parallel()

		manager := auth.NewConfigTokenManager(nil, "production", "")
		require.ErrorIs(t, manager.Store("key"), auth.ErrNoConfigPersister)
	})
}
