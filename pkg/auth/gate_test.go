package auth_test

import (
	"context"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"lifehub/database"
	"lifehub/pkg/auth"
)

func newGate(t *testing.T) (*auth.Gate, *auth.SettingsStore) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth_test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	store := auth.NewSettingsStore(db)
	return auth.NewGate(store), store
}

func TestInitSyncsEnvironmentSecret(t *testing.T) {
	ctx := context.Background()
	gate, store := newGate(t)

	// Pretend an older deployment left a different secret behind.
	require.NoError(t, store.Set(ctx, "admin_secret_key", "stale-secret"))

	require.NoError(t, gate.Init(ctx, "env-secret"))

	stored, ok, err := store.Get(ctx, "admin_secret_key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "env-secret", stored, "environment wins at boot")

	assert.True(t, gate.Check(ctx, "env-secret"))
	assert.False(t, gate.Check(ctx, "stale-secret"))
}

func TestCheckRejectsEmptyToken(t *testing.T) {
	ctx := context.Background()
	gate, _ := newGate(t)
	require.NoError(t, gate.Init(ctx, "alpha"))
	assert.False(t, gate.Check(ctx, ""))
}

func TestCheckPicksUpExternalRotation(t *testing.T) {
	ctx := context.Background()
	gate, store := newGate(t)
	require.NoError(t, gate.Init(ctx, "alpha"))

	// Another process instance rotates the secret behind our back.
	require.NoError(t, store.Set(ctx, "admin_secret_key", "beta"))

	assert.True(t, gate.Check(ctx, "beta"), "mismatch triggers one refresh from the store")
	assert.False(t, gate.Check(ctx, "alpha"))
}

func TestCacheTrustedOnlyWithinTTL(t *testing.T) {
	ctx := context.Background()
	gate, store := newGate(t)
	require.NoError(t, gate.Init(ctx, "alpha"))

	// Rotate behind the gate's back. Within the TTL the cached secret is
	// still trusted, so the stale value keeps working.
	require.NoError(t, store.Set(ctx, "admin_secret_key", "beta"))
	assert.True(t, gate.Check(ctx, "alpha"), "cache honored inside the TTL")

	// Once the TTL lapses even a cache hit is re-verified against the store.
	gate.SetCacheTTL(0)
	assert.False(t, gate.Check(ctx, "alpha"))
	assert.True(t, gate.Check(ctx, "beta"))
}

func TestSetSecretRotates(t *testing.T) {
	ctx := context.Background()
	gate, store := newGate(t)
	require.NoError(t, gate.Init(ctx, "oldpass"))

	require.NoError(t, gate.SetSecret(ctx, "newpass"))

	stored, ok, err := store.Get(ctx, "admin_secret_key")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "newpass", stored)

	assert.True(t, gate.Check(ctx, "newpass"))
	assert.False(t, gate.Check(ctx, "oldpass"))
}

func TestSetSecretRejectsShortValues(t *testing.T) {
	ctx := context.Background()
	gate, store := newGate(t)
	require.NoError(t, gate.Init(ctx, "oldpass"))

	err := gate.SetSecret(ctx, "abc")
	require.ErrorIs(t, err, auth.ErrSecretTooShort)

	stored, _, err := store.Get(ctx, "admin_secret_key")
	require.NoError(t, err)
	assert.Equal(t, "oldpass", stored, "a rejected change leaves the secret alone")
	assert.True(t, gate.Check(ctx, "oldpass"))
}
