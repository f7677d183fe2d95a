package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/blogd-io/blogd/internal/common"
)

func newTestIssuer() *Issuer {
	return NewIssuer([]byte("super-secret"), time.Hour, 7*24*time.Hour)
}

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	i := newTestIssuer()
	userID := "user-123"

	for _, kind := range []Kind{KindAccess, KindRefresh} {
		tok, err := i.Issue(userID, kind)
		if err != nil {
			t.Fatalf("Issue(%s) error: %v", kind, err)
		}

		gotUserID, err := i.Verify(tok, kind)
		if err != nil {
			t.Fatalf("Verify(%s) error: %v", kind, err)
		}
		if gotUserID != userID {
			t.Fatalf("userID mismatch: got %q want %q", gotUserID, userID)
		}
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	i := NewIssuer([]byte("secret"), -1*time.Second, -1*time.Second)

	tok, err := i.Issue("u1", KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = i.Verify(tok, KindAccess)
	if !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewIssuer([]byte("right-secret"), time.Hour, time.Hour).Issue("u2", KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewIssuer([]byte("wrong-secret"), time.Hour, time.Hour).Verify(tok, KindAccess)
	if !errors.Is(err, common.ErrTokenBadSignature) {
		t.Fatalf("expected common.ErrTokenBadSignature, got %v", err)
	}
}

func TestVerify_KindMismatch(t *testing.T) {
	t.Parallel()

	i := newTestIssuer()

	// an access token must not be accepted where a refresh token is expected
	tok, err := i.Issue("u3", KindAccess)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = i.Verify(tok, KindRefresh)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestVerify_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := newTestIssuer().Verify("not.a.jwt", KindAccess)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}
