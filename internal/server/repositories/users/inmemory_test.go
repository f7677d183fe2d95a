package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/models"
)

func TestInMemory_CreateAndFind(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{Email: "ada@x.com", UserName: "ada"})
	require.NoError(t, err)
	require.NotEmpty(t, u.ID)

	byEmail, err := repo.FindByEmail(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byName, err := repo.FindByUserName(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	byID, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", byID.Email)

	_, err = repo.FindByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestInMemory_DuplicateChecks(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Email: "ada@x.com", UserName: "ada"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Email: "ada@x.com", UserName: "other"})
	assert.ErrorIs(t, err, common.ErrDuplicateEmail)

	_, err = repo.Create(ctx, &models.User{Email: "other@x.com", UserName: "ada"})
	assert.ErrorIs(t, err, common.ErrDuplicateUserName)
}

func TestInMemory_SaveIsolatesCallerState(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	u, err := repo.Create(ctx, &models.User{Email: "ada@x.com", UserName: "ada"})
	require.NoError(t, err)

	u.AddRefreshToken("tok-a")
	require.NoError(t, repo.Save(ctx, u))

	// mutating the caller's copy after Save must not affect the store
	u.AddRefreshToken("tok-b")

	stored, err := repo.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"tok-a"}, stored.RefreshTokens)
}

func TestInMemory_SaveAndDeleteUnknown(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	err := repo.Save(ctx, &models.User{ID: "ghost"})
	assert.ErrorIs(t, err, common.ErrNotFound)

	err = repo.Delete(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrNotFound)
}
