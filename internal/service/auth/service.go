package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
	"github.com/clockwise-hr/hrm-console/internal/pkg/session"
)

// AuthServiceImpl wires the auth gateway to the session container:
// login persists the session, logout clears it.
type AuthServiceImpl struct {
	gateway auth.Gateway
	session session.Store
	log     *slog.Logger
}

func NewAuthService(gateway auth.Gateway, sessionStore session.Store, log *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		gateway: gateway,
		session: sessionStore,
		log:     log,
	}
}

var _ auth.Service = (*AuthServiceImpl)(nil)

// Login implements auth.Service.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (auth.User, error) {
	resp, err := s.gateway.Login(ctx, auth.LoginRequest{Email: email, Password: password})
	if err != nil {
		return auth.User{}, err
	}

	user := resp.User
	if user == nil {
		// Some deployments omit the profile from the login response;
		// fetch it with the fresh token.
		s.session.SetSession(resp.AccessToken, resp.RefreshToken, nil)
		fetched, err := s.gateway.Me(ctx)
		if err != nil {
			s.session.Clear()
			return auth.User{}, fmt.Errorf("failed to fetch profile after login: %w", err)
		}
		user = &fetched
	}

	s.session.SetSession(resp.AccessToken, resp.RefreshToken, user)
	if err := s.session.Save(); err != nil {
		return auth.User{}, fmt.Errorf("failed to persist session: %w", err)
	}

	s.log.Info("logged in", slog.String("email", user.Email), slog.String("role", user.Role))
	return *user, nil
}

// Logout implements auth.Service.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if s.session.AccessToken() != "" {
		// Best effort; the local session is cleared regardless.
		if err := s.gateway.Logout(ctx); err != nil {
			s.log.Warn("remote logout failed", slog.String("error", err.Error()))
		}
	}

	s.session.Clear()
	if err := s.session.Save(); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}

// Register implements auth.Service.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.User, error) {
	if err := req.Validate(); err != nil {
		return auth.User{}, err
	}
	return s.gateway.Register(ctx, req)
}

// CurrentUser implements auth.Service.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context) (auth.User, error) {
	if s.session.AccessToken() == "" {
		return auth.User{}, auth.ErrNotAuthenticated
	}
	if !s.session.Authenticated() {
		return auth.User{}, auth.ErrSessionExpired
	}

	user, err := s.gateway.Me(ctx)
	if err != nil {
		return auth.User{}, err
	}

	// Keep the cached profile current.
	s.session.SetSession(s.session.AccessToken(), s.session.RefreshToken(), &user)
	if err := s.session.Save(); err != nil {
		s.log.Warn("failed to persist refreshed profile", slog.String("error", err.Error()))
	}
	return user, nil
}
