// Package session holds the terminal client's signed-in identity.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"catalog/internal/client/api"
	"catalog/internal/errors"
)

const (
	// StorageKey is the single durable key holding the signed-in identity.
	StorageKey = "authenticatedUser"

	// DefaultTTL is how long a persisted sign-in stays valid.
	DefaultTTL = 24 * time.Hour
)

// Authenticator checks a credential pair with the server. Rejected
// credentials are (nil, nil).
type Authenticator interface {
	Authenticate(ctx context.Context, creds api.Credentials) (*api.User, error)
}

// AuthenticatedUser is the persisted session: the public profile plus the
// secret that every authenticated request re-sends.
type AuthenticatedUser struct {
	User     api.User `json:"user"`
	Password string   `json:"password"`
}

// Manager holds at most one signed-in identity. It is safe for concurrent use.
type Manager struct {
	auth   Authenticator
	store  Store
	ttl    time.Duration
	now    func() time.Time
	logger *slog.Logger

	mu      sync.RWMutex
	current *AuthenticatedUser
}

// Option customises a Manager.
type Option func(*Manager)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		if ttl > 0 {
			m.ttl = ttl
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logger }
}

// NewManager builds an empty Manager. Call Restore to pick up a persisted session.
func NewManager(auth Authenticator, store Store, opts ...Option) *Manager {
	m := &Manager{
		auth:   auth,
		store:  store,
		ttl:    DefaultTTL,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// SignIn verifies the credentials with the server and, on success, keeps and
// persists them. Rejected credentials return (nil, nil) and leave the
// current session untouched. A persistence failure is logged and the
// in-memory session is still established.
func (m *Manager) SignIn(ctx context.Context, emailAddress, password string) (*api.User, error) {
	user, err := m.auth.Authenticate(ctx, api.Credentials{EmailAddress: emailAddress, Password: password})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	entry := &AuthenticatedUser{User: *user, Password: password}

	m.mu.Lock()
	m.current = entry
	m.mu.Unlock()

	if err := m.persist(ctx, entry); err != nil {
		m.logger.WarnContext(ctx, "Failed to persist session", slog.Any("error", err))
	}

	out := entry.User

	return &out, nil
}

// SignOut clears the in-memory and durable session. It is idempotent.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()

	return m.store.Delete(ctx, StorageKey)
}

// Restore loads a persisted, unexpired session. Expired or unreadable
// entries are removed.
func (m *Manager) Restore(ctx context.Context) (*api.User, error) {
	raw, expiresAt, err := m.store.Load(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	if !m.now().Before(expiresAt) {
		m.logger.DebugContext(ctx, "Persisted session expired", slog.Time("expires_at", expiresAt))

		return nil, m.store.Delete(ctx, StorageKey)
	}

	var entry AuthenticatedUser
	if err := json.Unmarshal(raw, &entry); err != nil {
		m.logger.WarnContext(ctx, "Discarding unreadable session", slog.Any("error", err))

		return nil, m.store.Delete(ctx, StorageKey)
	}

	m.mu.Lock()
	m.current = &entry
	m.mu.Unlock()

	out := entry.User

	return &out, nil
}

// Current returns the signed-in identity, or nil.
func (m *Manager) Current() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return nil
	}
	out := m.current.User

	return &out
}

// Credentials returns the pair to attach to authenticated requests.
func (m *Manager) Credentials() (api.Credentials, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return api.Credentials{}, false
	}

	return api.Credentials{
		EmailAddress: m.current.User.EmailAddress,
		Password:     m.current.Password,
	}, true
}

func (m *Manager) persist(ctx context.Context, entry *AuthenticatedUser) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}

	return m.store.Save(ctx, StorageKey, raw, m.now().Add(m.ttl))
}
