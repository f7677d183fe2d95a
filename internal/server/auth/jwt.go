// Package auth issues and verifies the signed, time-limited tokens used by
// the authentication flow. Access and refresh tokens share the signing
// mechanism (HS256) and differ in TTL; the token kind is embedded as a claim
// and checked on verification, so an access token cannot be replayed where a
// refresh token is expected.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/blogd-io/blogd/internal/common"
)

// Kind distinguishes the two token flavors.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims includes the registered claims plus the account identifier and the
// token kind.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Kind   Kind   `json:"tkn"`
}

// Issuer creates and verifies signed tokens with a process-wide secret.
// The same secret must be used for issuance and verification across the
// process lifetime; it is injected at construction so tests can isolate
// themselves with distinct secrets.
type Issuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(secret []byte, accessTTL, refreshTTL time.Duration) *Issuer {
	return &Issuer{secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (i *Issuer) ttl(kind Kind) time.Duration {
	if kind == KindRefresh {
		return i.refreshTTL
	}
	return i.accessTTL
}

// Issue produces a signed token embedding userID and an expiry derived from
// the token kind. A random jti keeps tokens minted within the same second
// distinct, so the session-state set never holds duplicates.
func (i *Issuer) Issue(userID string, kind Kind) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl(kind))),
		},
		UserID: userID,
		Kind:   kind,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Verify checks signature integrity, expiry, and the expected token kind, and
// returns the account identifier named in the token.
//
// Failures map onto the common sentinels: common.ErrTokenExpired for expired
// tokens, common.ErrTokenBadSignature for signature mismatches, and
// common.ErrInvalidToken for anything unparseable or of the wrong kind.
func (i *Issuer) Verify(tokenString string, kind Kind) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", common.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", common.ErrTokenBadSignature
		default:
			return "", fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
		}
	}

	if !token.Valid || claims.Kind != kind {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
