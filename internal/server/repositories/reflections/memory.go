package reflections

import (
	"context"
	"sync"
	"time"

	"github.com/innerflame/backend/internal/server/models"
)

// MemoryRepository is the process-lifetime reflection store. Entries are
// kept in insertion order; listings walk the slice backwards, which matches
// the durable backend's created_at DESC, id DESC ordering.
type MemoryRepository struct {
	mu      sync.Mutex
	entries []models.Reflection
	nextID  int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, reflection *models.Reflection) (*models.Reflection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *reflection
	stored.ID = r.nextID
	r.nextID++
	stored.CreatedAt = time.Now()
	r.entries = append(r.entries, stored)

	out := stored
	return &out, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Reflection, error) {
	return r.list(func(e models.Reflection) bool { return e.UserID == userID })
}

func (r *MemoryRepository) ListByUserAndRealm(ctx context.Context, userID int64, realmID string) ([]*models.Reflection, error) {
	return r.list(func(e models.Reflection) bool {
		return e.UserID == userID && e.RealmID != nil && *e.RealmID == realmID
	})
}

func (r *MemoryRepository) list(match func(models.Reflection) bool) ([]*models.Reflection, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*models.Reflection
	for i := len(r.entries) - 1; i >= 0; i-- {
		if match(r.entries[i]) {
			out := r.entries[i]
			result = append(result, &out)
		}
	}
	return result, nil
}
