package reflections

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/models"
)

// PostgresRepository implements reflection storage over a dbx.DBTX
// (*sql.DB or *sql.Tx). Metadata is stored as JSONB.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, reflection *models.Reflection) (*models.Reflection, error) {

	var metadata []byte
	if reflection.Metadata != nil {
		b, err := json.Marshal(reflection.Metadata)
		if err != nil {
			return nil, fmt.Errorf("metadata marshal error: %w", err)
		}
		metadata = b
	}

	query :=
		`INSERT INTO reflections (user_id, realm_id, content, metadata)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		reflection.UserID, reflection.RealmID, reflection.Content, metadata).
		Scan(&reflection.ID, &reflection.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reflection, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Reflection, error) {
	query :=
		`SELECT id, user_id, realm_id, content, metadata, created_at FROM reflections
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 `
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) ListByUserAndRealm(ctx context.Context, userID int64, realmID string) ([]*models.Reflection, error) {
	query :=
		`SELECT id, user_id, realm_id, content, metadata, created_at FROM reflections
		 WHERE user_id = $1 AND realm_id = $2
		 ORDER BY created_at DESC, id DESC
		 `
	return r.list(ctx, query, userID, realmID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Reflection, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Reflection
	for rows.Next() {
		item := &models.Reflection{}
		var metadata []byte
		if err := rows.Scan(
			&item.ID, &item.UserID, &item.RealmID, &item.Content, &metadata, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &item.Metadata); err != nil {
				return nil, fmt.Errorf("metadata unmarshal error: %w", err)
			}
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
