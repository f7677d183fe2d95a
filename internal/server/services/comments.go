package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/models"
	"github.com/blogd-io/blogd/internal/server/repositories/comments"
	"github.com/blogd-io/blogd/internal/server/repositories/posts"
)

// CommentService manages reader comments. Comments always belong to an
// existing post; only their content is editable after creation.
type CommentService struct {
	comments comments.Repository
	posts    posts.Repository
	logger   logging.Logger
}

func NewCommentService(commentRepo comments.Repository, postRepo posts.Repository, logger logging.Logger) *CommentService {
	return &CommentService{
		comments: commentRepo,
		posts:    postRepo,
		logger:   logger.With("module", "comment_service"),
	}
}

func (s *CommentService) Create(ctx context.Context, postID, author, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}

	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown post", common.ErrValidation)
		}
		return nil, common.ErrInternal
	}

	comment, err := s.comments.Create(ctx, &models.Comment{PostID: postID, Author: author, Content: content})
	if err != nil {
		return nil, common.ErrInternal
	}

	s.logger.Info(ctx, "comment created", "comment_id", comment.ID, "post_id", postID)
	return comment, nil
}

func (s *CommentService) Get(ctx context.Context, id string) (*models.Comment, error) {
	return s.comments.FindByID(ctx, id)
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*models.Comment, error) {
	return s.comments.ListByPost(ctx, postID)
}

func (s *CommentService) Update(ctx context.Context, id, content string) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("%w: comment is empty", common.ErrValidation)
	}

	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Content = content
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, id string) error {
	return s.comments.Delete(ctx, id)
}
