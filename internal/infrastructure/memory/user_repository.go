// Package memory provides in-memory store implementations. They back the
// test suites so the application core stays decoupled from a relational
// engine, and they mirror the postgres stores' uniqueness guarantees.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
)

type UserRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]*entity.User
	byID    map[int64]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID:  1,
		byEmail: make(map[string]*entity.User),
		byID:    make(map[int64]*entity.User),
	}
}

// Create checks uniqueness and inserts under one lock, so concurrent signups
// with the same email cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[u.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	cp := *u
	r.byEmail[u.Email] = &cp
	r.byID[u.ID] = &cp
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
