package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
)

type EntryRepository struct {
	mu      sync.Mutex
	entries map[string]*entity.Entry
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{entries: make(map[string]*entity.Entry)}
}

func (r *EntryRepository) Create(ctx context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *EntryRepository) GetByID(ctx context.Context, userID int64, id string) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *EntryRepository) Update(ctx context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.entries[e.ID]
	if !ok || cur.UserID != e.UserID {
		return repository.ErrNotFound
	}
	cur.Title = e.Title
	cur.Content = e.Content
	cur.UpdatedAt = time.Now()
	*e = *cur
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, userID int64, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
