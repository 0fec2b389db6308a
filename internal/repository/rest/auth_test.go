package rest

import (
	"context"
	"testing"
	"time"

	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loginReq(email, password string) auth.LoginRequest {
	return auth.LoginRequest{Email: email, Password: password}
}

func TestLoginReturnsTokensAndUser(t *testing.T) {
	fx, client := newTestClient(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	repo := NewAuthRepository(client)
	resp, err := repo.Login(context.Background(), loginReq("hr@clockwise.test", "hunter2hunter2"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	require.NotNil(t, resp.User)
	assert.Equal(t, "hr@clockwise.test", resp.User.Email)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	fx, client := newTestClient(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	repo := NewAuthRepository(client)
	_, err := repo.Login(context.Background(), loginReq("hr@clockwise.test", "wrong"))
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownAccount(t *testing.T) {
	_, client := newTestClient(t)

	repo := NewAuthRepository(client)
	_, err := repo.Login(context.Background(), loginReq("nobody@clockwise.test", "whatever1"))
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterThenLogin(t *testing.T) {
	_, client := newTestClient(t)

	repo := NewAuthRepository(client)
	user, err := repo.Register(context.Background(), auth.RegisterRequest{
		Email:    "new@clockwise.test",
		Username: "newbie",
		Password: "longenough",
		FullName: "New Person",
	})
	require.NoError(t, err)
	assert.Equal(t, "newbie", user.Username)
	assert.True(t, user.IsActive)

	_, err = repo.Login(context.Background(), loginReq("new@clockwise.test", "longenough"))
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	fx, client := newTestClient(t)
	fx.SeedUser("taken@clockwise.test", "hunter2hunter2", "user")

	repo := NewAuthRepository(client)
	_, err := repo.Register(context.Background(), auth.RegisterRequest{
		Email:    "taken@clockwise.test",
		Username: "dupe",
		Password: "longenough",
	})
	assert.ErrorIs(t, err, auth.ErrEmailExists)
}

func TestMeWithoutTokenIsSessionExpired(t *testing.T) {
	_, client := newTestClient(t)

	repo := NewAuthRepository(client)
	_, err := repo.Me(context.Background())
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	fx, url := newTestAPI(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	resp, err := NewAuthRepository(NewClient(url, 5*time.Second, nil)).
		Login(context.Background(), loginReq("hr@clockwise.test", "hunter2hunter2"))
	require.NoError(t, err)

	authed := NewAuthRepository(NewClient(url, 5*time.Second, staticToken(resp.AccessToken)))
	_, err = authed.Me(context.Background())
	require.NoError(t, err)

	require.NoError(t, authed.Logout(context.Background()))

	_, err = authed.Me(context.Background())
	assert.ErrorIs(t, err, auth.ErrSessionExpired)
}
