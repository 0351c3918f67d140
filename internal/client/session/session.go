// Package session holds the client's authentication state: whether a user
// is signed in, the bearer token, and the identity snapshot. It is the only
// writer of those values and restores them from the credential store at
// start-up.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/dmitrijs2005/vehiclehub/internal/client/api"
	"github.com/dmitrijs2005/vehiclehub/internal/client/credstore"
	"github.com/dmitrijs2005/vehiclehub/internal/client/models"
	"github.com/dmitrijs2005/vehiclehub/internal/common"
	"github.com/dmitrijs2005/vehiclehub/internal/logging"
)

const (
	SignInEndpoint = "/login/sign-in"
	SignUpEndpoint = "/login/sign-up"
)

// ErrMissingToken is returned when a sign-in succeeds without a token.
var ErrMissingToken = errors.New("sign-in response has no token")

// Doer sends unauthenticated JSON requests. *api.Client built without a
// TokenSource satisfies it.
type Doer interface {
	Do(ctx context.Context, method, endpoint string, body, out any, opts ...api.Option) error
}

// State is a point-in-time copy of the session.
type State struct {
	IsAuthenticated bool
	Token           string
	User            *models.UserProfile
	Error           string
}

// Session is safe for concurrent use. Operations are not serialised against
// each other: two overlapping logins both run and the later one to finish
// wins.
type Session struct {
	mu              sync.RWMutex
	isAuthenticated bool
	token           string
	user            *models.UserProfile
	lastError       string

	auth  Doer
	store credstore.Store
	log   logging.Logger
}

func New(auth Doer, store credstore.Store, log logging.Logger) *Session {
	if store == nil {
		store = credstore.Unavailable{}
	}
	return &Session{auth: auth, store: store, log: log.With("component", "session")}
}

// Token implements api.TokenSource.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAuthenticated
}

// User returns a copy of the current profile, or nil when anonymous.
func (s *Session) User() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// LastError is the message of the most recent failed operation, "" after a
// success.
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastError
}

func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := State{IsAuthenticated: s.isAuthenticated, Token: s.token, Error: s.lastError}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *Session) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		s.lastError = ""
		return
	}
	s.lastError = api.Message(err)
}

// Login exchanges credentials for a token. On success the session becomes
// authenticated and the token and profile are persisted. On failure the
// session is left as it was.
func (s *Session) Login(ctx context.Context, loginID, password string) (*models.SignInResponse, error) {
	s.setError(nil)

	var resp models.SignInResponse
	req := models.SignInRequest{LoginID: loginID, Password: password}
	if err := s.auth.Do(ctx, http.MethodPost, SignInEndpoint, req, &resp); err != nil {
		s.setError(err)
		s.log.Error(ctx, "login failed", "login_id", loginID, "error", err)
		return nil, err
	}
	if resp.Token == "" {
		s.setError(ErrMissingToken)
		s.log.Error(ctx, "login failed", "login_id", loginID, "error", ErrMissingToken)
		return nil, ErrMissingToken
	}

	profile := resp.Profile()

	s.mu.Lock()
	s.token = resp.Token
	s.user = &profile
	s.isAuthenticated = true
	s.mu.Unlock()

	s.persist(ctx, resp.Token, profile)
	s.log.Info(ctx, "logged in", "login_id", profile.LoginID)

	return &resp, nil
}

func (s *Session) persist(ctx context.Context, token string, profile models.UserProfile) {
	values := map[string]string{common.TokenStorageKey: token}
	b, err := json.Marshal(profile)
	if err != nil {
		s.log.Warn(ctx, "profile not persisted", "error", err)
	} else {
		values[common.ProfileStorageKey] = string(b)
	}
	credstore.SaveAll(ctx, s.store, values)
}

// SignUp posts a registration payload and returns the response body, which
// may be empty. The session state is not changed.
func (s *Session) SignUp(ctx context.Context, payload any) (json.RawMessage, error) {
	s.setError(nil)

	var resp json.RawMessage
	if err := s.auth.Do(ctx, http.MethodPost, SignUpEndpoint, payload, &resp, api.AllowEmptyBody()); err != nil {
		s.setError(err)
		s.log.Error(ctx, "sign-up failed", "error", err)
		return nil, err
	}
	return resp, nil
}

// Logout forgets the session in memory and in the credential store. It
// cannot fail.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.isAuthenticated = false
	s.lastError = ""
	s.mu.Unlock()

	credstore.ClearAll(ctx, s.store, common.TokenStorageKey, common.ProfileStorageKey)
	s.log.Info(ctx, "logged out")
}

// InitAuth restores a persisted session. It reports whether one was found;
// without a stored token nothing is changed.
func (s *Session) InitAuth(ctx context.Context) bool {
	token, ok := s.store.Load(ctx, common.TokenStorageKey)
	if !ok || token == "" {
		return false
	}

	var user *models.UserProfile
	if raw, ok := s.store.Load(ctx, common.ProfileStorageKey); ok {
		var p models.UserProfile
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			s.log.Warn(ctx, "stored profile unreadable", "error", err)
		} else {
			user = &p
		}
	}

	s.mu.Lock()
	s.token = token
	s.user = user
	s.isAuthenticated = true
	s.mu.Unlock()

	s.log.Info(ctx, "session restored")
	return true
}

// ValidateToken reports whether a token is held. Without one it logs out
// and returns false. The server is not consulted.
// TODO: call a token introspection endpoint once the API exposes one.
func (s *Session) ValidateToken(ctx context.Context) bool {
	if s.Token() == "" {
		s.Logout(ctx)
		return false
	}
	return true
}

// RequireAuth returns common.ErrorNotAuthenticated when no user is signed
// in.
func (s *Session) RequireAuth() error {
	if !s.IsAuthenticated() {
		return fmt.Errorf("%w: log in first", common.ErrorNotAuthenticated)
	}
	return nil
}
