package repomanager

import (
	"context"
	"database/sql"

	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/repositories/progress"
	"github.com/innerflame/backend/internal/server/repositories/reflections"
	"github.com/innerflame/backend/internal/server/repositories/users"
)

// MemoryRepositoryManager vends the in-memory repositories. The DBTX argument
// is ignored; the same repository instances back every call, since state
// lives in the process.
type MemoryRepositoryManager struct {
	users       *users.MemoryRepository
	progress    *progress.MemoryRepository
	reflections *reflections.MemoryRepository
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Progress(db dbx.DBTX) progress.Repository {
	return m.progress
}

func (m *MemoryRepositoryManager) Reflections(db dbx.DBTX) reflections.Repository {
	return m.reflections
}

// NewMemoryRepositoryManager constructs the in-memory RepositoryManager.
func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:       users.NewMemoryRepository(),
		progress:    progress.NewMemoryRepository(),
		reflections: reflections.NewMemoryRepository(),
	}
}
