package comments

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used by tests and by the
// memory storage backend.
type InMemoryRepository struct {
	mu       sync.RWMutex
	comments map[string]*models.Comment
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{comments: make(map[string]*models.Comment)}
}

func cloneComment(c *models.Comment) *models.Comment {
	clone := *c
	return &clone
}

func (r *InMemoryRepository) Create(ctx context.Context, comment *models.Comment) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	r.comments[comment.ID] = cloneComment(comment)
	return comment, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.comments[id]; ok {
		return cloneComment(c), nil
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			result = append(result, cloneComment(c))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, comment *models.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[comment.ID]; !ok {
		return common.ErrNotFound
	}
	comment.UpdatedAt = time.Now()
	r.comments[comment.ID] = cloneComment(comment)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.comments[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.comments, id)
	return nil
}
