package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestMemoryUpsert_InsertThenMerge(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	created, err := repo.Upsert(ctx, 1, "fear", &models.ProgressUpdate{
		Progress:   intPtr(0),
		IsUnlocked: boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if created.ID != 1 || created.Progress != 0 || !created.IsUnlocked || created.IsCompleted {
		t.Fatalf("unexpected record: %+v", created)
	}

	// A partial update must leave the other fields alone.
	merged, err := repo.Upsert(ctx, 1, "fear", &models.ProgressUpdate{Progress: intPtr(60)})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if merged.ID != 1 || merged.Progress != 60 || !merged.IsUnlocked {
		t.Fatalf("merge lost fields: %+v", merged)
	}
}

func TestMemoryUpsert_CompletedAtCopied(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	rec, err := repo.Upsert(ctx, 1, "fear", &models.ProgressUpdate{
		Progress:    intPtr(100),
		IsCompleted: boolPtr(true),
		CompletedAt: &at,
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if rec.CompletedAt == nil || !rec.CompletedAt.Equal(at) {
		t.Fatalf("unexpected completed_at: %+v", rec.CompletedAt)
	}

	at = at.Add(time.Hour)
	got, err := repo.Get(ctx, 1, "fear")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !got.CompletedAt.Equal(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("stored completed_at aliases caller memory: %+v", got.CompletedAt)
	}
}

func TestMemoryGet_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.Get(context.Background(), 1, "fear")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMemoryListByUser_FiltersByUser(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	if _, err := repo.Upsert(ctx, 1, "fear", &models.ProgressUpdate{Progress: intPtr(10)}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if _, err := repo.Upsert(ctx, 1, "doubt", &models.ProgressUpdate{Progress: intPtr(20)}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if _, err := repo.Upsert(ctx, 2, "fear", &models.ProgressUpdate{Progress: intPtr(30)}); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}

	got, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	for _, rec := range got {
		if rec.UserID != 1 {
			t.Fatalf("record for wrong user: %+v", rec)
		}
	}
}
