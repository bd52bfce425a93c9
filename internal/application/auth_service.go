package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mydiaryhq/mydiary-api/internal/domain/entity"
	"github.com/mydiaryhq/mydiary-api/internal/domain/repository"
	"github.com/mydiaryhq/mydiary-api/pkg/helpers"
	"github.com/mydiaryhq/mydiary-api/pkg/validation"
)

var (
	// ErrInvalidEmail means no user is registered under the login email.
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidPassword means the user exists but the password did not verify.
	ErrInvalidPassword = errors.New("invalid password")
)

// ValidationError carries the first failing signup rule's message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// AuthService orchestrates the credential lifecycle: signup validation,
// password hashing, persistence and token issuance.
type AuthService struct {
	Repo   repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger}
}

type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Signup validates the fields, hashes the password and persists the user.
// Returns *ValidationError for rule failures and repository.ErrDuplicateEmail
// for an email collision; any other error is a store failure.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if msg := validation.ValidateSignup(in.FirstName, in.LastName, in.Email, in.Password); msg != "" {
		return nil, &ValidationError{Message: msg}
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  hash,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if !errors.Is(err, repository.ErrDuplicateEmail) && s.Logger != nil {
			s.Logger.WithError(err).Error("user insert failed")
		}
		return nil, err
	}
	return u, nil
}

// Login verifies the credentials and issues an auth token whose subject is
// the user's email. Auth failures are terminal for the request; no retries.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidEmail
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Error("user lookup failed")
		}
		return "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", time.Time{}, ErrInvalidPassword
	}

	token, exp, err := s.JWT.GenerateAuthToken(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", u.Email).Error("generate auth token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// GetByEmail resolves a token subject back to a user, confirming the subject
// still exists.
func (s *AuthService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return s.Repo.GetByEmail(ctx, email)
}
