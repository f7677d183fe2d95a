package repomanager

import (
	"context"

	"github.com/blogd-io/blogd/internal/server/repositories/comments"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

// InMemoryManager keeps everything in process memory. Intended for tests and
// local development only; nothing survives a restart.
type InMemoryManager struct {
	users    *users.InMemoryRepository
	posts    *posts.InMemoryRepository
	comments *comments.InMemoryRepository
}

func NewInMemoryManager() *InMemoryManager {
	return &InMemoryManager{
		users:    users.NewInMemoryRepository(),
		posts:    posts.NewInMemoryRepository(),
		comments: comments.NewInMemoryRepository(),
	}
}

func (m *InMemoryManager) Users() users.Repository       { return m.users }
func (m *InMemoryManager) Posts() posts.Repository       { return m.posts }
func (m *InMemoryManager) Comments() comments.Repository { return m.comments }

func (m *InMemoryManager) Close(ctx context.Context) error { return nil }
