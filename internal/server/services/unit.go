// Package services contains server-side business logic: account
// registration and login, the realm progression engine, and reflection
// journaling.
package services

import (
	"context"
	"database/sql"

	"github.com/innerflame/backend/internal/dbx"
)

// inUnit runs fn as one logical unit of work. With a durable backend the
// unit is a database transaction; the in-memory backend has no transactions,
// so fn runs directly and repositories ignore the nil handle.
func inUnit(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	if db == nil {
		return fn(ctx, nil)
	}
	return dbx.WithTx(ctx, db, nil, fn)
}

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }
