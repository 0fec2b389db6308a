package auth

import "context"

// Gateway defines the remote authentication endpoints.
type Gateway interface {
	Login(ctx context.Context, req LoginRequest) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (User, error)
	Me(ctx context.Context) (User, error)
	Logout(ctx context.Context) error
}

// Service defines login/logout with session persistence.
type Service interface {
	// Login authenticates and stores the session; returns the profile.
	Login(ctx context.Context, email, password string) (User, error)

	// Logout clears the stored session. The remote call is best-effort.
	Logout(ctx context.Context) error

	// Register creates a new account without logging it in.
	Register(ctx context.Context, req RegisterRequest) (User, error)

	// CurrentUser returns the authenticated profile, refreshed from the
	// server. Returns ErrNotAuthenticated or ErrSessionExpired when no
	// usable session exists.
	CurrentUser(ctx context.Context) (User, error)
}
