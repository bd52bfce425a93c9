package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

func (r *EntryRepository) Create(ctx context.Context, e *entity.Entry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO entries (id, user_id, title, content)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, e.ID, e.UserID, e.Title, e.Content)

	return row.Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *EntryRepository) GetByID(ctx context.Context, userID int64, id string) (*entity.Entry, error) {
	e := &entity.Entry{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM entries
		WHERE id = $1 AND user_id = $2
	`, id, userID)

	if err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return e, nil
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID int64) ([]entity.Entry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.Entry
	for rows.Next() {
		var e entity.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Title, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *EntryRepository) Update(ctx context.Context, e *entity.Entry) error {
	row := r.pool.QueryRow(ctx, `
		UPDATE entries
		SET title = $1, content = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
		RETURNING created_at, updated_at
	`, e.Title, e.Content, time.Now(), e.ID, e.UserID)

	if err := row.Scan(&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, userID int64, id string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM entries
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.EntryRepository = (*EntryRepository)(nil)
