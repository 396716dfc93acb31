package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/usersvc/internal/errs"
	"github.com/deppfellow/usersvc/internal/model/user"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// WelcomeEnqueuer schedules the welcome email.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, to, name string) error
}

type UserService struct {
	logger *zerolog.Logger
	users  UserStore
	jobs   WelcomeEnqueuer
}

func NewUserService(logger *zerolog.Logger, users UserStore, jobs WelcomeEnqueuer) *UserService {
	return &UserService{logger: logger, users: users, jobs: jobs}
}

// Create hashes the password, stores the user and schedules the welcome email.
//
// Repository errors are returned unchanged. A failure to enqueue the
// email is logged and does not fail the request.
func (s *UserService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.users.Create(ctx, &user.User{
		ID:           uuid.New(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	if err := s.jobs.EnqueueWelcomeEmail(ctx, created.Email, created.Name); err != nil {
		s.requestLogger(ctx).Error().
			Err(err).
			Str("user_id", created.ID.String()).
			Msg("failed to enqueue welcome email")
	}

	return created, nil
}

// requestLogger prefers the request-scoped logger carried by ctx.
func (s *UserService) requestLogger(ctx context.Context) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}
	return s.logger
}

// Get returns the user with the given id.
func (s *UserService) Get(ctx context.Context, req *user.GetUserRequest) (*user.User, error) {
	id, err := uuid.Parse(req.ID)
	if err != nil {
		code := "INVALID_USER_ID"
		return nil, errs.NewBadRequestError("invalid user id", &code, nil)
	}

	return s.users.GetByID(ctx, id)
}
