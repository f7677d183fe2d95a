package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

func newTestPostService(t *testing.T) (*PostService, *users.InMemoryRepository) {
	t.Helper()
	userRepo := users.NewInMemoryRepository()
	return NewPostService(posts.NewInMemoryRepository(), userRepo, newQuietLogger()), userRepo
}

func TestPostService_CreateAndList(t *testing.T) {
	s, userRepo := newTestPostService(t)
	ctx := context.Background()
	author := seedUser(t, userRepo)

	p1, err := s.Create(ctx, author.ID, "First", "hello")
	require.NoError(t, err)
	require.NotEmpty(t, p1.ID)

	_, err = s.Create(ctx, author.ID, "Second", "world")
	require.NoError(t, err)

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byAuthor, err := s.List(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, byAuthor, 2)

	none, err := s.List(ctx, "somebody-else")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	s, _ := newTestPostService(t)

	_, err := s.Create(context.Background(), "ghost", "Title", "content")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPostService_Create_EmptyFields(t *testing.T) {
	s, userRepo := newTestPostService(t)
	author := seedUser(t, userRepo)

	_, err := s.Create(context.Background(), author.ID, "  ", "content")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), author.ID, "Title", "")
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestPostService_UpdateAndDelete(t *testing.T) {
	s, userRepo := newTestPostService(t)
	ctx := context.Background()
	author := seedUser(t, userRepo)

	p, err := s.Create(ctx, author.ID, "Title", "content")
	require.NoError(t, err)

	updated, err := s.Update(ctx, p.ID, "New title", "new content")
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)

	require.NoError(t, s.Delete(ctx, p.ID))

	_, err = s.Get(ctx, p.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
