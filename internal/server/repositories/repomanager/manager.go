// Package repomanager vends repository implementations for a chosen storage
// backend. The two managers (Postgres and in-memory) satisfy the same
// interface so services never know which backend serves them.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/repositories/progress"
	"github.com/innerflame/backend/internal/server/repositories/reflections"
	"github.com/innerflame/backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Progress(db dbx.DBTX) progress.Repository
	Reflections(db dbx.DBTX) reflections.Repository
}
