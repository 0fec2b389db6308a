package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/clockwise-hr/hrm-console/internal/domain/auth"
	"github.com/clockwise-hr/hrm-console/internal/fixtures"
	"github.com/clockwise-hr/hrm-console/internal/pkg/session"
	"github.com/clockwise-hr/hrm-console/internal/repository/rest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthEnv(t *testing.T) (*fixtures.Server, *AuthServiceImpl, *session.FileStore, string) {
	t.Helper()

	fx := fixtures.New()
	srv := httptest.NewServer(fx.Handler())
	t.Cleanup(srv.Close)

	statePath := filepath.Join(t.TempDir(), "state.json")
	store := session.NewFileStore(statePath)
	require.NoError(t, store.Load())

	client := rest.NewClient(srv.URL, 5*time.Second, store)
	gateway := rest.NewAuthRepository(client)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fx, NewAuthService(gateway, store, logger), store, statePath
}

func TestLoginPersistsSession(t *testing.T) {
	fx, svc, store, statePath := newAuthEnv(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	user, err := svc.Login(context.Background(), "hr@clockwise.test", "hunter2hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hr@clockwise.test", user.Email)
	assert.NotEmpty(t, store.AccessToken())

	// A fresh store reading the same file sees the session.
	reloaded := session.NewFileStore(statePath)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, store.AccessToken(), reloaded.AccessToken())
	cached := reloaded.CurrentUser()
	require.NotNil(t, cached)
	assert.Equal(t, "hr@clockwise.test", cached.Email)
}

func TestLoginBadCredentialsLeavesSessionEmpty(t *testing.T) {
	fx, svc, store, _ := newAuthEnv(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	_, err := svc.Login(context.Background(), "hr@clockwise.test", "nope")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Empty(t, store.AccessToken())
}

func TestCurrentUserWithoutSession(t *testing.T) {
	_, svc, _, _ := newAuthEnv(t)

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, auth.ErrNotAuthenticated)
}

func TestCurrentUserAfterLogin(t *testing.T) {
	fx, svc, _, _ := newAuthEnv(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	_, err := svc.Login(context.Background(), "hr@clockwise.test", "hunter2hunter2")
	require.NoError(t, err)

	user, err := svc.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "hr@clockwise.test", user.Email)
	assert.Equal(t, "admin", user.Role)
}

func TestLogoutClearsSession(t *testing.T) {
	fx, svc, store, statePath := newAuthEnv(t)
	fx.SeedUser("hr@clockwise.test", "hunter2hunter2", "admin")

	_, err := svc.Login(context.Background(), "hr@clockwise.test", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.CurrentUser())

	reloaded := session.NewFileStore(statePath)
	require.NoError(t, reloaded.Load())
	assert.Empty(t, reloaded.AccessToken())
}

func TestRegisterValidatesPassword(t *testing.T) {
	_, svc, _, _ := newAuthEnv(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "new@clockwise.test",
		Username: "newbie",
		Password: "short",
	})
	assert.Error(t, err)
}
