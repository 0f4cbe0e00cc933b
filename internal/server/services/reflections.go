package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
	"github.com/innerflame/backend/internal/server/repositories/repomanager"
)

// ReflectionService handles the journal: appending entries and reading them
// back newest-first. Entries are never mutated or deleted.
type ReflectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewReflectionService constructs a ReflectionService.
func NewReflectionService(db *sql.DB, m repomanager.RepositoryManager) *ReflectionService {
	return &ReflectionService{db: db, repomanager: m}
}

// Create appends a journal entry. Content that is empty after trimming
// whitespace yields common.ErrorValidation and persists nothing. realmID is
// nil for general entries not tied to a realm.
func (s *ReflectionService) Create(ctx context.Context, userID int64, realmID *string, content string, metadata map[string]any) (*models.Reflection, error) {

	if strings.TrimSpace(content) == "" {
		return nil, common.ErrorValidation
	}

	reflection := &models.Reflection{
		UserID:   userID,
		RealmID:  realmID,
		Content:  content,
		Metadata: metadata,
	}

	return s.repomanager.Reflections(s.db).Create(ctx, reflection)
}

// ListByUser returns all entries for the account, newest first.
func (s *ReflectionService) ListByUser(ctx context.Context, userID int64) ([]*models.Reflection, error) {
	return s.repomanager.Reflections(s.db).ListByUser(ctx, userID)
}

// ListByUserAndRealm returns the account's entries for one realm, newest first.
func (s *ReflectionService) ListByUserAndRealm(ctx context.Context, userID int64, realmID string) ([]*models.Reflection, error) {
	return s.repomanager.Reflections(s.db).ListByUserAndRealm(ctx, userID, realmID)
}
