package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/fivetwenty-io/increase/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenValid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	cases := map[string]struct {
		token *auth.Token
		valid bool
	}{
		"nil token":              {token: nil, valid: false},
		"blank key":              {token: &auth.Token{}, valid: false},
		"live key never expires": {token: &auth.Token{AccessToken: "secret_key_live"}, valid: true},
		"sandbox key with deadline in an hour": {
			token: &auth.Token{AccessToken: "secret_key_sandbox", ExpiresAt: now.Add(time.Hour)},
			valid: true,
		},
		"deadline passed": {
			token: &auth.Token{AccessToken: "secret_key_sandbox", ExpiresAt: now.Add(-time.Second)},
			valid: false,
		},
		"deadline inside the expiry buffer": {
			token: &auth.Token{AccessToken: "secret_key_sandbox", ExpiresAt: now.Add(10 * time.Second)},
			valid: false,
		},
		"deadline past the expiry buffer": {
			token: &auth.Token{AccessToken: "secret_key_sandbox", ExpiresAt: now.Add(45 * time.Second)},
			valid: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.valid, tc.token.Valid())
		})
	}
}

func TestTokenStoreLifecycle(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	require.Nil(t, store.Get())

	deadline := time.Now().Add(time.Hour).Truncate(time.Second)
	store.Set(&auth.Token{AccessToken: "secret_key_a", ExpiresAt: deadline})

	got := store.Get()
	require.NotNil(t, got)
	assert.Equal(t, "secret_key_a", got.AccessToken)
	assert.Equal(t, deadline, got.ExpiresAt)

	store.Set(&auth.Token{AccessToken: "secret_key_b"})
	assert.Equal(t, "secret_key_b", store.Get().AccessToken)
	assert.True(t, store.Get().Valid())

	store.Clear()
	assert.Nil(t, store.Get())
}

func TestTokenStoreConcurrentRotation(t *testing.T) {
	t.Parallel()

	store := auth.NewTokenStore()
	keys := []string{"secret_key_a", "secret_key_b", "secret_key_c"}

	var wg sync.WaitGroup

	for _, key := range keys {
		wg.Add(2)

		go func() {
			defer wg.Done()

			for range 50 {
				store.Set(&auth.Token{AccessToken: key})
			}
		}()

		go func() {
			defer wg.Done()

			for range 50 {
				if token := store.Get(); token != nil {
					assert.Contains(t, keys, token.AccessToken)
				}
			}
		}()
	}

	wg.Wait()

	final := store.Get()
	require.NotNil(t, final)
	assert.Contains(t, keys, final.AccessToken)
}
