// Package users provides account storage: uniqueness enforcement on email
// and username, and point lookups by id, email, or username.
package users

import (
	"context"

	"github.com/innerflame/backend/internal/server/models"
)

type Repository interface {
	// Create inserts a new account. Returns common.ErrorAlreadyExists when
	// the email or username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns common.ErrorNotFound when no account matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByUsername returns common.ErrorNotFound when no account matches.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns common.ErrorNotFound when no account matches.
	GetByID(ctx context.Context, id int64) (*models.User, error)
}
