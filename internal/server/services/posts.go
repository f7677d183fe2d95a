package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/models"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

// PostService manages blog posts. Authors are validated against the account
// store before a post is created or reassigned.
type PostService struct {
	posts  posts.Repository
	users  users.Repository
	logger logging.Logger
}

func NewPostService(postRepo posts.Repository, userRepo users.Repository, logger logging.Logger) *PostService {
	return &PostService{
		posts:  postRepo,
		users:  userRepo,
		logger: logger.With("module", "post_service"),
	}
}

func (s *PostService) checkAuthor(ctx context.Context, authorID string) error {
	if _, err := s.users.FindByID(ctx, authorID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return fmt.Errorf("%w: unknown author", common.ErrValidation)
		}
		return common.ErrInternal
	}
	return nil
}

func (s *PostService) Create(ctx context.Context, authorID, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}
	if err := s.checkAuthor(ctx, authorID); err != nil {
		return nil, err
	}

	post, err := s.posts.Create(ctx, &models.Post{Title: title, Content: content, AuthorID: authorID})
	if err != nil {
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "post created", "post_id", post.ID, "author_id", authorID)
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, authorID string) ([]*models.Post, error) {
	return s.posts.List(ctx, authorID)
}

func (s *PostService) Update(ctx context.Context, id, title, content string) (*models.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", common.ErrValidation)
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	post.Title = title
	post.Content = content
	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}
