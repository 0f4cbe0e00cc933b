// Package reflections provides append-only storage of journal entries with
// newest-first retrieval, filtered by account and optionally by realm.
package reflections

import (
	"context"

	"github.com/innerflame/backend/internal/server/models"
)

type Repository interface {
	// Create appends a new entry with a fresh identifier and the current
	// timestamp. Content validation happens in the service layer.
	Create(ctx context.Context, reflection *models.Reflection) (*models.Reflection, error)

	// ListByUser returns all entries for the account, newest first.
	ListByUser(ctx context.Context, userID int64) ([]*models.Reflection, error)

	// ListByUserAndRealm additionally filters by realm, same ordering.
	ListByUserAndRealm(ctx context.Context, userID int64, realmID string) ([]*models.Reflection, error)
}
