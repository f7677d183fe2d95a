// Package comments declares the record-store contract for comment
// persistence.
package comments

import (
	"context"

	"github.com/blogd-io/blogd/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, comment *models.Comment) (*models.Comment, error)
	FindByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByPost returns a post's comments oldest-first.
	ListByPost(ctx context.Context, postID string) ([]*models.Comment, error)
	Save(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id string) error
}
