// Package progress provides keyed storage for per-(user, realm) progress
// records with point lookups, per-account scans, and insert-or-merge upserts.
package progress

import (
	"context"

	"github.com/innerflame/backend/internal/server/models"
)

type Repository interface {
	// Get returns common.ErrorNotFound when no record exists for the key.
	Get(ctx context.Context, userID int64, realmID string) (*models.ProgressRecord, error)

	// ListByUser returns all records for the account. Order is not
	// semantically significant.
	ListByUser(ctx context.Context, userID int64) ([]*models.ProgressRecord, error)

	// Upsert creates a default record if none exists for (userID, realmID),
	// merges the non-nil fields of upd into it, refreshes updated_at, and
	// returns the full resulting record.
	Upsert(ctx context.Context, userID int64, realmID string, upd *models.ProgressUpdate) (*models.ProgressRecord, error)
}
