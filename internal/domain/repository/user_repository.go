package repository

import (
	"context"
	"errors"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
)

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert collides with an existing
	// email. The store itself must enforce the uniqueness so that concurrent
	// signups cannot race past an application-level check.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
}
