package rest

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/clockwise-hr/hrm-console/internal/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) AccessToken() string { return string(s) }

// newTestAPI starts an in-memory HRM API and returns it with its URL.
func newTestAPI(t *testing.T) (*fixtures.Server, string) {
	t.Helper()
	fx := fixtures.New()
	srv := httptest.NewServer(fx.Handler())
	t.Cleanup(srv.Close)
	return fx, srv.URL
}

func newTestClient(t *testing.T) (*fixtures.Server, *Client) {
	t.Helper()
	fx, url := newTestAPI(t)
	return fx, NewClient(url, 5*time.Second, nil)
}

func TestDoDecodesAPIError(t *testing.T) {
	_, client := newTestClient(t)

	var out struct{}
	_, err := client.do(context.Background(), "GET", "/api/v1/employees/999", nil, nil, &out)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok, "expected *APIError, got %T", err)
	assert.Equal(t, 404, apiErr.StatusCode)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "NOT_FOUND")
}

func TestDoSendsBearerToken(t *testing.T) {
	fx, url := newTestAPI(t)
	fx.SeedUser("admin@clockwise.test", "s3cret-pass", "admin")

	anon := NewClient(url, 5*time.Second, nil)
	auth := NewAuthRepository(anon)
	resp, err := auth.Login(context.Background(), loginReq("admin@clockwise.test", "s3cret-pass"))
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	authed := NewClient(url, 5*time.Second, staticToken(resp.AccessToken))
	user, err := NewAuthRepository(authed).Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin@clockwise.test", user.Email)
}
