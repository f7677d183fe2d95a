// Package api implements a thin JSON client for the blogd HTTP API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/blogd-io/blogd/internal/common"
)

// User is the public account view returned by the API.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserName  string `json:"userName"`
}

// TokenPair bundles the access and refresh tokens returned by login and
// refresh calls.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"postId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SignUpRequest carries the registration payload.
type SignUpRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	UserName  string `json:"userName"`
	Password  string `json:"password"`
}

// Client talks to a blogd server over HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// do performs a JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses are mapped onto the shared sentinel errors so
// callers can branch with errors.Is.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var er errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		return fmt.Errorf("%w: %s", sentinelFor(resp.StatusCode), er.Error)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func sentinelFor(status int) error {
	switch status {
	case http.StatusBadRequest:
		return common.ErrValidation
	case http.StatusUnauthorized:
		return common.ErrInvalidCredential
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusConflict:
		return common.ErrDuplicateEmail
	default:
		return common.ErrInternal
	}
}

type authResponse struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignUp registers an account and returns it with an initial access token.
func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (*User, string, error) {
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/auth/signup", "", req, &resp); err != nil {
		return nil, "", err
	}
	return &resp.User, resp.AccessToken, nil
}

// Login authenticates and returns the account together with a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (*User, *TokenPair, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", body, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.User, &TokenPair{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}, nil
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair TokenPair
	body := map[string]string{"refreshToken": refreshToken}
	if err := c.do(ctx, http.MethodPost, "/auth/refresh", "", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Logout revokes the given refresh token. The access token authorizes the
// call.
func (c *Client) Logout(ctx context.Context, accessToken, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return c.do(ctx, http.MethodPost, "/auth/logout", accessToken, body, nil)
}

// ListPosts fetches posts, optionally filtered by author id.
func (c *Client) ListPosts(ctx context.Context, authorID string) ([]Post, error) {
	path := "/posts"
	if authorID != "" {
		path += "?author=" + url.QueryEscape(authorID)
	}
	var posts []Post
	if err := c.do(ctx, http.MethodGet, path, "", nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost publishes a post authored by the token's account.
func (c *Client) CreatePost(ctx context.Context, accessToken, title, content string) (*Post, error) {
	var post Post
	body := map[string]string{"title": title, "content": content}
	if err := c.do(ctx, http.MethodPost, "/posts", accessToken, body, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListComments fetches the comments of a post, oldest first.
func (c *Client) ListComments(ctx context.Context, postID string) ([]Comment, error) {
	var comments []Comment
	path := "/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do(ctx, http.MethodGet, path, "", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment adds a comment to a post on behalf of the token's account.
func (c *Client) CreateComment(ctx context.Context, accessToken, postID, content string) (*Comment, error) {
	var comment Comment
	body := map[string]string{"content": content}
	path := "/posts/" + url.PathEscape(postID) + "/comments"
	if err := c.do(ctx, http.MethodPost, path, accessToken, body, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}
