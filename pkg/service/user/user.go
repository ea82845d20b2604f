// Package user provides the user-management service.
package user

import (
	"context"
	"log/slog"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/repository"
)

// Service provides business logic for user operations.
type Service struct {
	newUow repository.UnitOfWorkFactory
	logger *slog.Logger
}

// New creates the user service.
func New(newUow repository.UnitOfWorkFactory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{newUow: newUow, logger: logger.With("service", "user")}
}

// Create registers a new user with a bcrypt-hashed password.
func (s *Service) Create(ctx context.Context, username, email, password string) (*user.User, error) {
	u := &user.User{Username: username, Email: email}
	if err := user.NewCreateValidator().Validate(ctx, u); err != nil {
		return nil, err
	}
	hashed, err := user.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.Password = hashed

	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	created, err := uow.Users().Create(ctx, u)
	if err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "user created", "id", created.ID, "username", created.Username)
	return created, nil
}

// GetByID returns the user with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (*user.User, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return uow.Users().GetByID(ctx, id)
}

// GetAll returns every user.
func (s *Service) GetAll(ctx context.Context) ([]*user.User, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return uow.Users().GetAll(ctx)
}

// Update changes a user's username and email.
func (s *Service) Update(ctx context.Context, u *user.User) (bool, error) {
	if err := user.NewCreateValidator().Validate(ctx, u); err != nil {
		return false, err
	}
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	updated, err := uow.Users().Update(ctx, u)
	if err != nil {
		return false, err
	}
	writes, err := uow.SaveChanges(ctx)
	if err != nil {
		return false, err
	}
	return updated && writes > 0, nil
}

// Delete removes a user. A user that still owns bank accounts cannot be
// deleted.
func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	u, err := uow.Users().GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if err := user.NewDeleteValidator(uow.Accounts()).Validate(ctx, u); err != nil {
		return false, err
	}
	deleted, err := uow.Users().Delete(ctx, id)
	if err != nil {
		return false, err
	}
	writes, err := uow.SaveChanges(ctx)
	if err != nil {
		return false, err
	}
	s.logger.InfoContext(ctx, "user deleted", "id", id)
	return deleted && writes > 0, nil
}
