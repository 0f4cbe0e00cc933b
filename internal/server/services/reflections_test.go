package services

import (
	"context"
	"errors"
	"testing"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/repositories/repomanager"
)

func newReflectionService() *ReflectionService {
	return NewReflectionService(nil, repomanager.NewMemoryRepositoryManager())
}

func TestCreateReflection_EmptyContent(t *testing.T) {
	svc := newReflectionService()
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Create(ctx, 1, nil, content, nil); !errors.Is(err, common.ErrorValidation) {
			t.Fatalf("content %q: want common.ErrorValidation, got %v", content, err)
		}
	}

	// Nothing may be persisted by rejected entries.
	got, err := svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no entries, got %d", len(got))
	}
}

func TestListReflections_NewestFirst(t *testing.T) {
	svc := newReflectionService()
	ctx := context.Background()

	for _, content := range []string{"A", "B", "C"} {
		if _, err := svc.Create(ctx, 1, nil, content, nil); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := svc.ListByUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	for i, want := range []string{"C", "B", "A"} {
		if got[i].Content != want {
			t.Fatalf("position %d: want %q, got %q", i, want, got[i].Content)
		}
	}
}

func TestCreateReflection_WithRealmAndMetadata(t *testing.T) {
	svc := newReflectionService()
	ctx := context.Background()

	realm := "fear"
	created, err := svc.Create(ctx, 1, &realm, "faced it today", map[string]any{"mood": "steady"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == 0 || created.CreatedAt.IsZero() {
		t.Fatalf("unexpected entry: %+v", created)
	}

	byRealm, err := svc.ListByUserAndRealm(ctx, 1, "fear")
	if err != nil {
		t.Fatalf("ListByUserAndRealm error: %v", err)
	}
	if len(byRealm) != 1 || byRealm[0].Metadata["mood"] != "steady" {
		t.Fatalf("unexpected result: %+v", byRealm)
	}

	byOther, err := svc.ListByUserAndRealm(ctx, 1, "doubt")
	if err != nil {
		t.Fatalf("ListByUserAndRealm error: %v", err)
	}
	if len(byOther) != 0 {
		t.Fatalf("expected no entries for other realm, got %d", len(byOther))
	}
}
