package posts

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
	mu    sync.RWMutex
	posts map[string]*models.Post
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{posts: make(map[string]*models.Post)}
}

func clonePost(p *models.Post) *models.Post {
	c := *p
	return &c
}

func (r *InMemoryRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	r.posts[post.ID] = clonePost(post)
	return post, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.posts[id]; ok {
		return clonePost(p), nil
	}
	return nil, common.ErrNotFound
}

func (r *InMemoryRepository) List(ctx context.Context, authorID string) ([]*models.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if authorID == "" || p.AuthorID == authorID {
			result = append(result, clonePost(p))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return common.ErrNotFound
	}
	post.UpdatedAt = time.Now()
	r.posts[post.ID] = clonePost(post)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return common.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}
