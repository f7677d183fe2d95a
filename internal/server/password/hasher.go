// Package password provides one-way salted hashing and verification of
// account credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts the hashing scheme so services stay independent of the
// underlying algorithm.
type Hasher interface {
	// Hash generates a salted hash from a plaintext password. The salt is
	// randomized per call, so hashing the same plaintext twice yields
	// different hashes that both verify.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the hash's original input.
	// It returns false on a malformed hash, never an error.
	Verify(plaintext, hash string) bool
}

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a BcryptHasher with the given cost. A cost below
// bcrypt.MinCost falls back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *BcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
