package services

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/models"
	"github.com/innerflame/backend/internal/server/realms"
	"github.com/innerflame/backend/internal/server/repositories/repomanager"
)

// ProgressService is the progression engine: it decides how lesson
// completion and manual updates affect an account's progress records and
// enforces the unlock ordering of the realm catalog.
type ProgressService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewProgressService constructs a ProgressService.
func NewProgressService(db *sql.DB, m repomanager.RepositoryManager) *ProgressService {
	return &ProgressService{db: db, repomanager: m}
}

// List returns all progress records for the account.
func (s *ProgressService) List(ctx context.Context, userID int64) ([]*models.ProgressRecord, error) {
	return s.repomanager.Progress(s.db).ListByUser(ctx, userID)
}

// Get returns the record for (userID, realmID); when none exists a default
// record is synthesized, not persisted.
func (s *ProgressService) Get(ctx context.Context, userID int64, realmID string) (*models.ProgressRecord, error) {
	rec, err := s.repomanager.Progress(s.db).Get(ctx, userID, realmID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return &models.ProgressRecord{
				UserID:     userID,
				RealmID:    realmID,
				IsUnlocked: realmID == realms.First(),
			}, nil
		}
		return nil, err
	}
	return rec, nil
}

// Update merges a partial update into the record for (userID, realmID),
// creating it with defaults first if absent, and returns the full result.
// Updating progress does not unlock anything: unlocking the successor realm
// happens only through Complete.
func (s *ProgressService) Update(ctx context.Context, userID int64, realmID string, upd *models.ProgressUpdate) (*models.ProgressRecord, error) {
	return s.repomanager.Progress(s.db).Upsert(ctx, userID, realmID, upd)
}

// Complete marks the realm completed (progress 100, completed_at set once)
// and unlocks its successor in catalog order, leaving the successor's
// progress untouched. The two writes are applied as one unit; if either
// fails the whole call can be retried, and retrying a completed realm
// changes nothing.
func (s *ProgressService) Complete(ctx context.Context, userID int64, realmID string) (*models.ProgressRecord, error) {

	if !realms.IsValid(realmID) {
		return nil, common.ErrorValidation
	}

	existing, err := s.repomanager.Progress(s.db).Get(ctx, userID, realmID)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return nil, err
	}
	if existing != nil && existing.IsCompleted {
		return existing, nil
	}

	now := time.Now()
	var completed *models.ProgressRecord

	err = inUnit(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Progress(tx)

		rec, err := repo.Upsert(ctx, userID, realmID, &models.ProgressUpdate{
			Progress:    intPtr(100),
			IsCompleted: boolPtr(true),
			CompletedAt: &now,
		})
		if err != nil {
			return err
		}

		if successor, ok := realms.Successor(realmID); ok {
			if _, err := repo.Upsert(ctx, userID, successor, &models.ProgressUpdate{
				IsUnlocked: boolPtr(true),
			}); err != nil {
				return err
			}
		}

		completed = rec
		return nil
	})
	if err != nil {
		return nil, err
	}

	return completed, nil
}

// Aggregate returns the mean progress across the catalog's realms,
// round-half-up, counting missing records as 0. An account with no records
// aggregates to 0.
func (s *ProgressService) Aggregate(ctx context.Context, userID int64) (int, error) {
	records, err := s.repomanager.Progress(s.db).ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}

	sum := 0
	for _, rec := range records {
		if realms.IsValid(rec.RealmID) {
			sum += rec.Progress
		}
	}
	return int(math.Round(float64(sum) / float64(realms.Count()))), nil
}
