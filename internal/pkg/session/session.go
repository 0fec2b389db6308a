// Package session holds the client-side session state the browser app
// kept in ambient localStorage: auth tokens, the cached profile, and UI
// preferences. It is an explicit, injectable container with Load/Save
// lifecycle hooks called at process start and stop.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
)

// State is the persisted session snapshot.
type State struct {
	AccessToken     string     `json:"access_token,omitempty"`
	RefreshToken    string     `json:"refresh_token,omitempty"`
	User            *auth.User `json:"user,omitempty"`
	SidebarExpanded bool       `json:"sidebar_expanded"`
}

// Store is the session container contract.
type Store interface {
	// Load restores the persisted state; a missing file yields defaults.
	Load() error
	// Save persists the current state.
	Save() error

	SetSession(accessToken, refreshToken string, user *auth.User)
	Clear()

	AccessToken() string
	RefreshToken() string
	CurrentUser() *auth.User

	// Authenticated reports whether a usable access token is held. A
	// token that parses as a JWT with an expiry in the past is not
	// usable; opaque tokens count as usable while present.
	Authenticated() bool

	SidebarExpanded() bool
	SetSidebarExpanded(expanded bool)
}

// FileStore persists State as a JSON file.
type FileStore struct {
	path string
	now  func() time.Time

	mu    sync.Mutex
	state State
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		now:  time.Now,
		// Sidebar starts expanded, matching a fresh browser profile.
		state: State{SidebarExpanded: true},
	}
}

func (s *FileStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.state = State{SidebarExpanded: true}
			return nil
		}
		return fmt.Errorf("failed to read session state: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("failed to parse session state: %w", err)
	}
	s.state = st
	return nil
}

func (s *FileStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session state directory: %w", err)
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session state: %w", err)
	}

	// 0600: the file carries bearer tokens.
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session state: %w", err)
	}
	return nil
}

func (s *FileStore) SetSession(accessToken, refreshToken string, user *auth.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccessToken = accessToken
	s.state.RefreshToken = refreshToken
	s.state.User = user
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.AccessToken = ""
	s.state.RefreshToken = ""
	s.state.User = nil
}

func (s *FileStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.AccessToken
}

func (s *FileStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.RefreshToken
}

func (s *FileStore) CurrentUser() *auth.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

func (s *FileStore) Authenticated() bool {
	s.mu.Lock()
	token := s.state.AccessToken
	s.mu.Unlock()

	if token == "" {
		return false
	}

	// The client holds no signing key, so the token is inspected
	// without verification, only for its expiry claim.
	parsed, err := jwt.Parse([]byte(token), jwt.WithVerify(false), jwt.WithValidate(false))
	if err != nil {
		return true
	}
	exp := parsed.Expiration()
	if exp.IsZero() {
		return true
	}
	return s.now().Before(exp)
}

func (s *FileStore) SidebarExpanded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SidebarExpanded
}

func (s *FileStore) SetSidebarExpanded(expanded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SidebarExpanded = expanded
}
