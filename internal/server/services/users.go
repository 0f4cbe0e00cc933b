package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/dbx"
	"github.com/innerflame/backend/internal/server/auth"
	"github.com/innerflame/backend/internal/server/config"
	"github.com/innerflame/backend/internal/server/models"
	"github.com/innerflame/backend/internal/server/realms"
	"github.com/innerflame/backend/internal/server/repositories/repomanager"
)

// UserService handles registration and login. Registration seeds the six
// default progress records together with the account row, as one unit.
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account and its six default progress records: the
// catalog's first realm unlocked at 0%, everything after it locked.
// Duplicate email or username yields common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, email, username, password string) (*models.User, error) {

	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || username == "" || password == "" {
		return nil, common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	var created *models.User
	err = inUnit(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		user := &models.User{Email: email, Username: username, PasswordHash: hash}

		u, err := s.repomanager.Users(tx).Create(ctx, user)
		if err != nil {
			return err
		}

		progressRepo := s.repomanager.Progress(tx)
		for _, realm := range realms.All() {
			upd := &models.ProgressUpdate{
				Progress:    intPtr(0),
				IsUnlocked:  boolPtr(realm.ID == realms.First()),
				IsCompleted: boolPtr(false),
			}
			if _, err := progressRepo.Upsert(ctx, u.ID, realm.ID, upd); err != nil {
				return err
			}
		}

		created = u
		return nil
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}

	return created, nil
}

// Login verifies the credentials and, on success, returns the account plus a
// signed token. The same common.ErrorUnauthorized is returned for an unknown
// email and a wrong password, so login failures do not reveal whether the
// email exists.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Get returns the account for id, or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByID(ctx, id)
}
