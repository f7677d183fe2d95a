// Package services contains server-side business logic. This file implements
// AuthService, which handles sign-up, login, logout, and refresh-token
// rotation over the account's server-stored session state.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/auth"
	"github.com/blogd-io/blogd/internal/server/models"
	"github.com/blogd-io/blogd/internal/server/password"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// SignUpParams carries the credential payload for account creation.
type SignUpParams struct {
	FirstName string
	LastName  string
	Email     string
	UserName  string
	Password  string
}

// AuthService provides authentication-related operations:
//   - SignUp: create accounts and mint an initial access token
//   - Login: verify credentials and mint a token pair
//   - Refresh: rotate refresh tokens, detecting reuse of consumed tokens
//   - Logout: revoke a single refresh token
type AuthService struct {
	users  users.Repository
	hasher password.Hasher
	issuer *auth.Issuer
	logger logging.Logger
}

func NewAuthService(repo users.Repository, hasher password.Hasher, issuer *auth.Issuer, logger logging.Logger) *AuthService {
	return &AuthService{
		users:  repo,
		hasher: hasher,
		issuer: issuer,
		logger: logger.With("module", "auth_service"),
	}
}

func (p *SignUpParams) validate() error {
	for field, value := range map[string]string{
		"firstName": p.FirstName,
		"lastName":  p.LastName,
		"email":     p.Email,
		"userName":  p.UserName,
		"password":  p.Password,
	} {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, field)
		}
	}
	if !strings.Contains(p.Email, "@") {
		return fmt.Errorf("%w: malformed email", common.ErrValidation)
	}
	return nil
}

// SignUp creates a new account with an empty session state and returns it
// together with a fresh access token. No refresh token is issued at sign-up;
// the client obtains one by logging in.
//
// Email and username uniqueness is checked with two independent lookups
// before the insert. Two concurrent sign-ups can both pass these checks; the
// repository's unique indexes are the backstop and surface the same typed
// conflict errors.
func (s *AuthService) SignUp(ctx context.Context, p SignUpParams) (*models.User, string, error) {
	if err := p.validate(); err != nil {
		return nil, "", err
	}

	if _, err := s.users.FindByEmail(ctx, p.Email); err == nil {
		return nil, "", common.ErrDuplicateEmail
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, "", common.ErrInternal
	}

	if _, err := s.users.FindByUserName(ctx, p.UserName); err == nil {
		return nil, "", common.ErrDuplicateUserName
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, "", common.ErrInternal
	}

	hash, err := s.hasher.Hash(p.Password)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	user, err := s.users.Create(ctx, &models.User{
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Email:        p.Email,
		UserName:     p.UserName,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrDuplicateUserName) {
			return nil, "", err
		}
		return nil, "", common.ErrInternal
	}

	accessToken, err := s.issuer.Issue(user.ID, auth.KindAccess)
	if err != nil {
		return nil, "", common.ErrInternal
	}

	s.logger.Info(ctx, "account created", "user_id", user.ID, "username", user.UserName)
	return user, accessToken, nil
}

// Login verifies the email/password pair and, on success, issues a fresh
// token pair and appends the refresh token to the account's session state.
// The write is confirmed before the tokens are returned.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*models.User, *TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil, common.ErrNotFound
		}
		return nil, nil, common.ErrInternal
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		return nil, nil, common.ErrInvalidCredential
	}

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, nil, common.ErrInternal
	}

	user.AddRefreshToken(pair.RefreshToken)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, nil, common.ErrInternal
	}

	s.logger.Info(ctx, "login", "user_id", user.ID)
	return user, pair, nil
}

// Refresh rotates a refresh token: the presented token is consumed and a new
// token pair is issued, with the new refresh token replacing the old one in
// the session state.
//
// Presenting a token that verifies but is not part of the session state is
// treated as evidence of theft or replay: every outstanding refresh token for
// the account is revoked before the call fails.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, common.ErrMissingToken
	}

	userID, err := s.issuer.Verify(refreshToken, auth.KindRefresh)
	if err != nil {
		return nil, common.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrAccountMismatch
		}
		return nil, common.ErrInternal
	}

	if !user.HasRefreshToken(refreshToken) {
		s.logger.Warn(ctx, "refresh token reuse detected, revoking all sessions", "user_id", user.ID)
		user.ClearRefreshTokens()
		if err := s.users.Save(ctx, user); err != nil {
			return nil, common.ErrInternal
		}
		return nil, common.ErrInvalidToken
	}

	user.RemoveRefreshToken(refreshToken)

	pair, err := s.issuePair(user.ID)
	if err != nil {
		return nil, common.ErrInternal
	}

	user.AddRefreshToken(pair.RefreshToken)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, common.ErrInternal
	}

	return pair, nil
}

// Logout removes exactly the presented refresh token from the session state.
// An unknown token triggers the same defensive revocation as Refresh. The
// access token used to authorize the request stays valid until its natural
// expiry; no blacklist is maintained.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return common.ErrMissingToken
	}

	userID, err := s.issuer.Verify(refreshToken, auth.KindRefresh)
	if err != nil {
		return common.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInvalidToken
		}
		return common.ErrInternal
	}

	if !user.HasRefreshToken(refreshToken) {
		s.logger.Warn(ctx, "logout with unknown refresh token, revoking all sessions", "user_id", user.ID)
		user.ClearRefreshTokens()
		if err := s.users.Save(ctx, user); err != nil {
			return common.ErrInternal
		}
		return common.ErrInvalidToken
	}

	user.RemoveRefreshToken(refreshToken)
	if err := s.users.Save(ctx, user); err != nil {
		return common.ErrInternal
	}

	s.logger.Info(ctx, "logout", "user_id", user.ID)
	return nil
}

func (s *AuthService) issuePair(userID string) (*TokenPair, error) {
	access, err := s.issuer.Issue(userID, auth.KindAccess)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issuer.Issue(userID, auth.KindRefresh)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
