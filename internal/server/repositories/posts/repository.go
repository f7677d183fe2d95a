// Package posts declares the record-store contract for post persistence.
package posts

import (
	"context"

	"github.com/blogd-io/blogd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, post *models.Post) (*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	// List returns posts newest-first. An empty authorID returns all posts.
	List(ctx context.Context, authorID string) ([]*models.Post, error)
	Save(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}
