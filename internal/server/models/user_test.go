package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_RefreshTokenSet(t *testing.T) {
	u := &User{}

	assert.False(t, u.HasRefreshToken("a"))

	u.AddRefreshToken("a")
	u.AddRefreshToken("b")
	assert.True(t, u.HasRefreshToken("a"))
	assert.True(t, u.HasRefreshToken("b"))

	u.RemoveRefreshToken("a")
	assert.False(t, u.HasRefreshToken("a"))
	assert.True(t, u.HasRefreshToken("b"))

	// removing an absent token is a no-op
	u.RemoveRefreshToken("a")
	assert.Equal(t, []string{"b"}, u.RefreshTokens)

	u.ClearRefreshTokens()
	assert.Empty(t, u.RefreshTokens)
}

func TestUserUpdate_IsEmpty(t *testing.T) {
	assert.True(t, (&UserUpdate{}).IsEmpty())

	name := "Ada"
	assert.False(t, (&UserUpdate{FirstName: &name}).IsEmpty())
}
