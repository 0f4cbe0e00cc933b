package progress

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func recordRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "realm_id", "progress",
		"is_unlocked", "is_completed", "completed_at", "created_at", "updated_at",
	})
}

func TestGet_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+user_progress\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+realm_id\s*=\s*\$2\s*$`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(int64(1), "fear").
		WillReturnRows(recordRows().AddRow(int64(3), int64(1), "fear", 40, true, false, nil, now, now))

	got, err := repo.Get(context.Background(), 1, "fear")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.RealmID != "fear" || got.Progress != 40 || !got.IsUnlocked || got.CompletedAt != nil {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+user_progress\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+realm_id\s*=\s*\$2\s*$`

	mock.ExpectQuery(q).
		WithArgs(int64(1), "wisdom").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 1, "wisdom")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+.*\s+FROM\s+user_progress\s+WHERE\s+user_id\s*=\s*\$1\s*$`

	now := time.Now()
	completed := now.Add(-time.Hour)
	rows := recordRows().
		AddRow(int64(1), int64(1), "fear", 100, true, true, completed, now, now).
		AddRow(int64(2), int64(1), "doubt", 25, true, false, nil, now, now)
	mock.ExpectQuery(q).
		WithArgs(int64(1)).
		WillReturnRows(rows)

	got, err := repo.ListByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].RealmID != "fear" || !got[0].IsCompleted || got[0].CompletedAt == nil {
		t.Fatalf("unexpected first record: %+v", got[0])
	}
}

func TestUpsert_InsertDefaults(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+user_progress\s*\(user_id,\s*realm_id,\s*progress,\s*is_unlocked,\s*is_completed,\s*completed_at\).*ON\s+CONFLICT\s*\(user_id,\s*realm_id\).*RETURNING`

	now := time.Now()
	mock.ExpectQuery(q).
		WithArgs(int64(1), "doubt", 50, nil, nil, nil).
		WillReturnRows(recordRows().AddRow(int64(5), int64(1), "doubt", 50, false, false, nil, now, now))

	p := 50
	got, err := repo.Upsert(context.Background(), 1, "doubt", &models.ProgressUpdate{Progress: &p})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if got.Progress != 50 || got.IsUnlocked || got.IsCompleted {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestUpsert_MergeCompletion(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+user_progress.*DO\s+UPDATE\s+SET\s+progress\s*=\s*COALESCE\(\$3,\s*user_progress\.progress\)`

	now := time.Now()
	completedAt := now
	mock.ExpectQuery(q).
		WithArgs(int64(1), "fear", 100, nil, true, completedAt).
		WillReturnRows(recordRows().AddRow(int64(3), int64(1), "fear", 100, true, true, completedAt, now, now))

	p := 100
	done := true
	got, err := repo.Upsert(context.Background(), 1, "fear", &models.ProgressUpdate{
		Progress:    &p,
		IsCompleted: &done,
		CompletedAt: &completedAt,
	})
	if err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
	if !got.IsCompleted || got.CompletedAt == nil {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+user_progress`

	mock.ExpectQuery(q).
		WithArgs(int64(1), "fear", nil, true, nil, nil).
		WillReturnError(errors.New("db down"))

	unlocked := true
	_, err := repo.Upsert(context.Background(), 1, "fear", &models.ProgressUpdate{IsUnlocked: &unlocked})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
