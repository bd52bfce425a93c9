package application

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
)

// EntryService implements the diary CRUD with a redis read-through cache on
// the per-user entry list. Redis is optional; a nil client disables caching.
type EntryService struct {
	Repo     repository.EntryRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewEntryService(repo repository.EntryRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *EntryService {
	return &EntryService{Repo: repo, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func entriesKey(userID int64) string {
	return "entries:user:" + strconv.FormatInt(userID, 10)
}

type EntryInput struct {
	Title   string
	Content string
}

func (s *EntryService) Create(ctx context.Context, userID int64, in EntryInput) (*entity.Entry, error) {
	e := &entity.Entry{
		ID:      uuid.NewString(),
		UserID:  userID,
		Title:   in.Title,
		Content: in.Content,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return e, nil
}

func (s *EntryService) Get(ctx context.Context, userID int64, id string) (*entity.Entry, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *EntryService) List(ctx context.Context, userID int64) ([]entity.Entry, error) {
	if s.Redis != nil {
		var cached []entity.Entry
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, entriesKey(userID), &cached); err == nil && ok {
			return cached, nil
		}
	}

	entries, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, entriesKey(userID), entries, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("entry cache write failed")
		}
	}
	return entries, nil
}

func (s *EntryService) Update(ctx context.Context, userID int64, id string, in EntryInput) (*entity.Entry, error) {
	e := &entity.Entry{ID: id, UserID: userID, Title: in.Title, Content: in.Content}
	if err := s.Repo.Update(ctx, e); err != nil {
		return nil, err
	}
	s.invalidate(ctx, userID)
	return e, nil
}

func (s *EntryService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidate(ctx, userID)
	return nil
}

func (s *EntryService) invalidate(ctx context.Context, userID int64) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, entriesKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).Warn("entry cache invalidate failed")
	}
}
