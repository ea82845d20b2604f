// Package account provides the account-management service: creating,
// querying, updating and closing bank accounts.
package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/repository"
)

// Service provides business logic for bank account operations. Balance
// mutation as part of a transfer is owned by the transfer service; this
// service only manages the account lifecycle.
type Service struct {
	newUow repository.UnitOfWorkFactory
	logger *slog.Logger
}

// New creates the account service.
func New(newUow repository.UnitOfWorkFactory, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{newUow: newUow, logger: logger.With("service", "account")}
}

// GetByID returns the account with the given id.
func (s *Service) GetByID(ctx context.Context, id string) (*account.Account, error) {
	if err := account.NewIDValidator().Validate(ctx, id); err != nil {
		return nil, err
	}
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return uow.Accounts().GetByID(ctx, id)
}

// GetAll returns every account.
func (s *Service) GetAll(ctx context.Context) ([]*account.Account, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return uow.Accounts().GetAll(ctx)
}

// Create opens a new account with a zero balance for the given user.
func (s *Service) Create(ctx context.Context, userID string, code currency.Code) (*account.Account, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	a := account.New(userID, code)
	if err := account.NewCreateValidator(uow.Users()).Validate(ctx, a); err != nil {
		return nil, err
	}
	created, err := uow.Accounts().Create(ctx, a)
	if err != nil {
		return nil, err
	}
	if _, err := uow.SaveChanges(ctx); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "account created",
		"id", created.ID, "user_id", created.UserID, "currency", created.Currency)
	return created, nil
}

// Close closes the account. The balance must be exactly zero; closing is
// terminal.
func (s *Service) Close(ctx context.Context, id string) (bool, error) {
	if err := account.NewIDValidator().Validate(ctx, id); err != nil {
		return false, err
	}
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	accounts := uow.Accounts()
	a, err := accounts.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if err := account.NewCloseValidator().Validate(ctx, a); err != nil {
		return false, err
	}
	if err := a.Close(); err != nil {
		return false, err
	}
	updated, err := accounts.Update(ctx, a)
	if err != nil {
		return false, err
	}
	writes, err := uow.SaveChanges(ctx)
	if err != nil {
		return false, err
	}
	s.logger.InfoContext(ctx, "account closed", "id", id)
	return updated && writes > 0, nil
}

// Update writes the account's mutable state back to storage.
func (s *Service) Update(ctx context.Context, a *account.Account) (bool, error) {
	if err := account.NewIDValidator().Validate(ctx, a.ID); err != nil {
		return false, err
	}
	if a.Balance.IsNegative() {
		return false, fmt.Errorf("account %s: balance must not be negative", a.ID)
	}
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck

	updated, err := uow.Accounts().Update(ctx, a)
	if err != nil {
		return false, err
	}
	writes, err := uow.SaveChanges(ctx)
	if err != nil {
		return false, err
	}
	return updated && writes > 0, nil
}
