package progress

import (
	"context"
	"sync"
	"time"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
)

type recordKey struct {
	userID  int64
	realmID string
}

// MemoryRepository is the process-lifetime progress store. Merge semantics
// and the identifier sequence are behaviorally indistinguishable from the
// Postgres implementation.
type MemoryRepository struct {
	mu      sync.Mutex
	records map[recordKey]models.ProgressRecord
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		records: make(map[recordKey]models.ProgressRecord),
		nextID:  1,
	}
}

func (r *MemoryRepository) Get(ctx context.Context, userID int64, realmID string) (*models.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[recordKey{userID, realmID}]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := rec
	return &out, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID int64) ([]*models.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.ProgressRecord
	for _, rec := range r.records {
		if rec.UserID == userID {
			out := rec
			result = append(result, &out)
		}
	}
	return result, nil
}

func (r *MemoryRepository) Upsert(ctx context.Context, userID int64, realmID string, upd *models.ProgressUpdate) (*models.ProgressRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := recordKey{userID, realmID}
	now := time.Now()

	rec, ok := r.records[key]
	if !ok {
		rec = models.ProgressRecord{
			ID:        r.nextID,
			UserID:    userID,
			RealmID:   realmID,
			CreatedAt: now,
		}
		r.nextID++
	}

	if upd.Progress != nil {
		rec.Progress = *upd.Progress
	}
	if upd.IsUnlocked != nil {
		rec.IsUnlocked = *upd.IsUnlocked
	}
	if upd.IsCompleted != nil {
		rec.IsCompleted = *upd.IsCompleted
	}
	if upd.CompletedAt != nil {
		t := *upd.CompletedAt
		rec.CompletedAt = &t
	}
	rec.UpdatedAt = now

	r.records[key] = rec

	out := rec
	return &out, nil
}
