package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogd-io/blogd/internal/common"
)

func newStubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestLogin(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "linda@example.com", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"user":         map[string]string{"id": "u1", "userName": "linda"},
			"accessToken":  "access",
			"refreshToken": "refresh",
		})
	})

	user, pair, err := c.Login(context.Background(), "linda@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
}

func TestLogin_Unauthorized(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	})

	_, _, err := c.Login(context.Background(), "linda@example.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidCredential)
	assert.Contains(t, err.Error(), "invalid email or password")
}

func TestLogout_SendsBearerToken(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer access", r.Header.Get(common.AuthorizationHeaderName))
		w.WriteHeader(http.StatusNoContent)
	})

	err := c.Logout(context.Background(), "access", "refresh")
	require.NoError(t, err)
}

func TestListPosts_AuthorFilter(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/posts", r.URL.Path)
		require.Equal(t, "u1", r.URL.Query().Get("author"))
		json.NewEncoder(w).Encode([]map[string]string{{"id": "p1", "title": "Hello"}})
	})

	posts, err := c.ListPosts(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
}

func TestCreateComment_NotFound(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "not found"})
	})

	_, err := c.CreateComment(context.Background(), "access", "missing", "hi")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
