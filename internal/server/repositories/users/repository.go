// Package users declares the record-store contract for account persistence.
// Implementations are expected to be atomic at the single-document level;
// nothing here assumes a transaction spanning multiple accounts.
package users

import (
	"context"

	"github.com/blogd-io/blogd/internal/server/models"
)

// Repository defines the operations the authentication core needs from the
// storage collaborator.
type Repository interface {
	// FindByEmail returns the account with the given email, or
	// common.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByUserName returns the account with the given username, or
	// common.ErrNotFound.
	FindByUserName(ctx context.Context, userName string) (*models.User, error)

	// FindByID returns the account with the given identifier, or
	// common.ErrNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)

	// Create inserts a new account and returns it with its identifier set.
	// Unique-index violations surface as common.ErrDuplicateEmail or
	// common.ErrDuplicateUserName.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// Save performs an idempotent full-document update of an existing
	// account, including its refresh-token set.
	Save(ctx context.Context, user *models.User) error

	// Delete removes the account. Returns common.ErrNotFound when absent.
	Delete(ctx context.Context, id string) error
}
