package progress

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/models"
)

// PostgresRepository implements progress storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const recordColumns = `id, user_id, realm_id, progress, is_unlocked, is_completed, completed_at, created_at, updated_at`

func (r *PostgresRepository) Get(ctx context.Context, userID int64, realmID string) (*models.ProgressRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM user_progress
		 WHERE user_id = $1 AND realm_id = $2
		 `

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, userID, realmID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.ProgressRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM user_progress
		 WHERE user_id = $1
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ProgressRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Upsert is a single statement so the insert-or-merge is atomic per row;
// COALESCE keeps columns absent from the partial update untouched.
func (r *PostgresRepository) Upsert(ctx context.Context, userID int64, realmID string, upd *models.ProgressUpdate) (*models.ProgressRecord, error) {
	query := `
		INSERT INTO user_progress (user_id, realm_id, progress, is_unlocked, is_completed, completed_at)
		VALUES ($1, $2, COALESCE($3, 0), COALESCE($4, false), COALESCE($5, false), $6)
		ON CONFLICT (user_id, realm_id)
		DO UPDATE SET
			progress = COALESCE($3, user_progress.progress),
			is_unlocked = COALESCE($4, user_progress.is_unlocked),
			is_completed = COALESCE($5, user_progress.is_completed),
			completed_at = COALESCE($6, user_progress.completed_at),
			updated_at = now()
		RETURNING ` + recordColumns + `
	`

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query,
		userID, realmID, upd.Progress, upd.IsUnlocked, upd.IsCompleted, upd.CompletedAt))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return rec, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.ProgressRecord, error) {
	rec := &models.ProgressRecord{}
	err := row.Scan(&rec.ID, &rec.UserID, &rec.RealmID, &rec.Progress,
		&rec.IsUnlocked, &rec.IsCompleted, &rec.CompletedAt, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rec, nil
}
