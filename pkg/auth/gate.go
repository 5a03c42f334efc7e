// Package auth implements the shared-secret gate in front of the API: one
// bearer secret, persisted in the settings table, cached in memory with a
// short TTL so a secret changed by another process instance is picked up
// without a restart.
package auth

import (
	"context"
	"crypto/subtle"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const secretKey = "admin_secret_key"

// MinSecretLen is the shortest accepted secret.
const MinSecretLen = 4

// ErrSecretTooShort rejects undersized secrets on change.
var ErrSecretTooShort = errors.New("secret too short")

// DefaultCacheTTL bounds how long a cached secret is trusted before a failed
// comparison forces a re-read from the store.
const DefaultCacheTTL = 30 * time.Second

type Gate struct {
	store *SettingsStore
	ttl   time.Duration

	mu        sync.Mutex
	secret    string
	fetchedAt time.Time
}

func NewGate(store *SettingsStore) *Gate {
	return &Gate{store: store, ttl: DefaultCacheTTL}
}

// SetCacheTTL overrides how long a cached secret is trusted before every
// check goes back to the store.
func (g *Gate) SetCacheTTL(d time.Duration) {
	g.mu.Lock()
	g.ttl = d
	g.mu.Unlock()
}

// Init makes the settings row exist and match envSecret. The environment is
// authoritative at boot only: a differing stored value is overwritten, and
// from then on the store is the source of truth.
func (g *Gate) Init(ctx context.Context, envSecret string) error {
	stored, ok, err := g.store.Get(ctx, secretKey)
	if err != nil {
		return errors.Wrap(err, "init secret")
	}
	if !ok || stored != envSecret {
		if err := g.store.Set(ctx, secretKey, envSecret); err != nil {
			return errors.Wrap(err, "sync secret with environment")
		}
	}
	g.mu.Lock()
	g.secret = envSecret
	g.fetchedAt = time.Now()
	g.mu.Unlock()
	return nil
}

// Check reports whether token is the current secret. A mismatch triggers at
// most one refresh from the store before the final verdict, which tolerates
// the secret having been rotated by another instance.
func (g *Gate) Check(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	g.mu.Lock()
	cached := g.secret
	fresh := time.Since(g.fetchedAt) < g.ttl
	g.mu.Unlock()

	if equal(token, cached) && fresh {
		return true
	}
	current, err := g.refresh(ctx)
	if err != nil {
		// Store unreachable: fall back to the cached value rather than
		// locking the admin out during a transient outage.
		return equal(token, cached)
	}
	return equal(token, current)
}

// SetSecret validates and persists a new secret, updating store and cache
// under one lock so this process never observes them disagreeing.
func (g *Gate) SetSecret(ctx context.Context, newSecret string) error {
	if len(newSecret) < MinSecretLen {
		return ErrSecretTooShort
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.store.Set(ctx, secretKey, newSecret); err != nil {
		return errors.Wrap(err, "persist new secret")
	}
	g.secret = newSecret
	g.fetchedAt = time.Now()
	return nil
}

func (g *Gate) refresh(ctx context.Context) (string, error) {
	stored, ok, err := g.store.Get(ctx, secretKey)
	if err != nil || !ok {
		if err == nil {
			err = errors.New("secret row missing")
		}
		return "", err
	}
	stored = strings.TrimSpace(stored)
	g.mu.Lock()
	g.secret = stored
	g.fetchedAt = time.Now()
	g.mu.Unlock()
	return stored, nil
}

func equal(a, b string) bool {
	return len(a) == len(b) && subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
