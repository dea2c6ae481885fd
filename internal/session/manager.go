package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// AuthenticatedKey is the fixed name of the persisted flag
const AuthenticatedKey = "isAuthenticated"

var (
	// ErrMissingCredentials is returned by Login when username or password is blank
	ErrMissingCredentials = errors.New("username and password are required")
	// ErrNoSession is returned when an operation needs a session id and none was given
	ErrNoSession = errors.New("no session id")
)

// State is the per-browser authentication flag
type State struct {
	Authenticated bool
}

// IsAuthenticated reports the flag
func (s State) IsAuthenticated() bool {
	return s.Authenticated
}

// Credentials are the login form fields
type Credentials struct {
	Username string
	Password string
}

// Valid reports whether both fields are non-blank
func (c Credentials) Valid() bool {
	return strings.TrimSpace(c.Username) != "" && strings.TrimSpace(c.Password) != ""
}

// Manager owns the Login and Logout transitions; nothing else writes the flag
type Manager struct {
	store Store
}

// NewManager creates a Manager persisting into store
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Key returns the storage key of the flag for session id
func Key(id string) string {
	return "session:" + id + ":" + AuthenticatedKey
}

// Load reads the persisted state. A missing or unparsable value is unauthenticated.
func (m *Manager) Load(ctx context.Context, id string) (State, error) {
	if id == "" {
		return State{}, nil
	}

	value, err := m.store.Get(ctx, Key(id))
	if errors.Is(err, ErrNotFound) {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("load session: %w", err)
	}

	authenticated, err := strconv.ParseBool(value)
	if err != nil {
		return State{}, nil
	}
	return State{Authenticated: authenticated}, nil
}

// Login accepts any non-blank credentials and persists the authenticated flag.
// On failure the stored state is left untouched.
func (m *Manager) Login(ctx context.Context, id string, creds Credentials) (State, error) {
	if id == "" {
		return State{}, ErrNoSession
	}
	if !creds.Valid() {
		return State{}, ErrMissingCredentials
	}

	if err := m.store.Set(ctx, Key(id), strconv.FormatBool(true)); err != nil {
		return State{}, fmt.Errorf("persist session: %w", err)
	}
	return State{Authenticated: true}, nil
}

// Logout removes the persisted flag
func (m *Manager) Logout(ctx context.Context, id string) (State, error) {
	if id == "" {
		return State{}, nil
	}
	if err := m.store.Delete(ctx, Key(id)); err != nil {
		return State{}, fmt.Errorf("clear session: %w", err)
	}
	return State{}, nil
}
