package repository

import (
	"context"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
)

// EntryRepository defines the interface for diary-entry store operations.
// Lookups are scoped by owner so one user can never read another's entries.
type EntryRepository interface {
	Create(ctx context.Context, e *entity.Entry) error
	GetByID(ctx context.Context, userID int64, id string) (*entity.Entry, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Entry, error)
	Update(ctx context.Context, e *entity.Entry) error
	Delete(ctx context.Context, userID int64, id string) error
}
