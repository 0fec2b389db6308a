package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
)

// AuthRepository implements auth.Gateway over the API.
type AuthRepository struct {
	client *Client
}

func NewAuthRepository(client *Client) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	var resp auth.AuthResponse
	if _, err := r.client.do(ctx, http.MethodPost, "/api/v1/auth/login", nil, &req, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, fmt.Errorf("login request failed: %w", err)
	}
	return resp, nil
}

func (r *AuthRepository) Register(ctx context.Context, req auth.RegisterRequest) (auth.User, error) {
	if err := req.Validate(); err != nil {
		return auth.User{}, err
	}

	var user auth.User
	if _, err := r.client.do(ctx, http.MethodPost, "/api/v1/auth/register", nil, &req, &user); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Code == "EMAIL_EXISTS" {
			return auth.User{}, auth.ErrEmailExists
		}
		return auth.User{}, fmt.Errorf("register request failed: %w", err)
	}
	return user, nil
}

func (r *AuthRepository) Me(ctx context.Context) (auth.User, error) {
	var user auth.User
	if _, err := r.client.do(ctx, http.MethodGet, "/api/v1/auth/me", nil, nil, &user); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			return auth.User{}, auth.ErrSessionExpired
		}
		return auth.User{}, fmt.Errorf("failed to fetch current user: %w", err)
	}
	return user, nil
}

func (r *AuthRepository) Logout(ctx context.Context) error {
	if _, err := r.client.do(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}
