// Package repomanager wires the per-entity repositories to a concrete
// storage backend. The server picks a backend from configuration; services
// only ever see the Repository interfaces.
package repomanager

import (
	"context"

	"github.com/blogd-io/blogd/internal/server/repositories/comments"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

// Manager hands out the repositories backed by one storage engine.
type Manager interface {
	Users() users.Repository
	Posts() posts.Repository
	Comments() comments.Repository

	// Close releases the backend's resources.
	Close(ctx context.Context) error
}
