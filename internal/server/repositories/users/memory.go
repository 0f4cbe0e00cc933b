package users

import (
	"context"
	"sync"
	"time"

	"github.com/innerflame/backend/internal/common"
	"github.com/innerflame/backend/internal/server/models"
)

// MemoryRepository is the process-lifetime account store used when no
// durable backend is configured. Its identifier sequence and observable
// behavior match the Postgres implementation.
type MemoryRepository struct {
	mu     sync.Mutex
	users  map[int64]models.User
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:  make(map[int64]models.User),
		nextID: 1,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return nil, common.ErrorAlreadyExists
		}
	}

	stored := *user
	stored.ID = r.nextID
	r.nextID++
	stored.CreatedAt = time.Now()
	r.users[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r *MemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.Username == username })
}

func (r *MemoryRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r *MemoryRepository) find(match func(models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}
