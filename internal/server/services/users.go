package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/blogd-io/blogd/internal/common"
	"github.com/blogd-io/blogd/internal/logging"
	"github.com/blogd-io/blogd/internal/server/models"
	"github.com/blogd-io/blogd/internal/server/password"
	"github.com/blogd-io/blogd/internal/server/repositories/users"
)

// UserService covers account management outside the authentication flow:
// lookup, whitelisted field updates, and deletion.
type UserService struct {
	users  users.Repository
	hasher password.Hasher
	logger logging.Logger
}

func NewUserService(repo users.Repository, hasher password.Hasher, logger logging.Logger) *UserService {
	return &UserService{
		users:  repo,
		hasher: hasher,
		logger: logger.With("module", "user_service"),
	}
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", common.ErrValidation)
	}
	return s.users.FindByID(ctx, id)
}

// Update applies a whitelisted field update. Arbitrary field maps are not
// accepted; only the fields named on models.UserUpdate can change. A new
// password is re-hashed before it is persisted.
func (s *UserService) Update(ctx context.Context, id string, upd *models.UserUpdate) (*models.User, error) {
	if id == "" || upd == nil || upd.IsEmpty() {
		return nil, fmt.Errorf("%w: must provide a user id and fields to update", common.ErrValidation)
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.FirstName != nil {
		user.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		user.LastName = *upd.LastName
	}
	if upd.Password != nil {
		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return nil, common.ErrInternal
		}
		user.PasswordHash = hash
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "account updated", "user_id", user.ID)
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: user id is required", common.ErrValidation)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return err
		}
		return common.ErrInternal
	}

	s.logger.Info(ctx, "account deleted", "user_id", id)
	return nil
}
