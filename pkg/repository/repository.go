// Package repository defines the storage contracts the services borrow.
// Concrete implementations live under infra/repository.
package repository

import (
	"context"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
)

// AccountRepository is the data-access contract for bank accounts.
type AccountRepository interface {
	GetByID(ctx context.Context, id string) (*account.Account, error)
	GetAll(ctx context.Context) ([]*account.Account, error)
	Create(ctx context.Context, a *account.Account) (*account.Account, error)
	// Update writes the account's mutable state back to storage and reports
	// whether a row was actually updated.
	Update(ctx context.Context, a *account.Account) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	IsOpen(ctx context.Context, id string) (bool, error)
	ExistsByUser(ctx context.Context, userID string) (bool, error)
}

// TransferRepository is the data-access contract for transfer records.
// Transfers are immutable history: created once, never updated or deleted.
type TransferRepository interface {
	// Create persists the transfer and returns its assigned identifier.
	Create(ctx context.Context, t *transfer.Transfer) (string, error)
	GetByID(ctx context.Context, id string) (*transfer.Transfer, error)
	ListByAccount(ctx context.Context, accountID string) ([]*transfer.Transfer, error)
}

// UserRepository is the data-access contract for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	GetAll(ctx context.Context) ([]*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	Update(ctx context.Context, u *user.User) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// UnitOfWork scopes a set of repository operations to one storage session and
// commits them atomically. Repositories obtained from a UnitOfWork share its
// session, so every write staged through them becomes durable together on
// SaveChanges or not at all.
type UnitOfWork interface {
	Accounts() AccountRepository
	Transfers() TransferRepository
	Users() UserRepository

	// SaveChanges commits the session and returns the number of staged
	// writes that became durable.
	SaveChanges(ctx context.Context) (int, error)

	// Rollback discards every staged write. Calling it after SaveChanges is
	// a no-op, which makes it safe to defer.
	Rollback() error
}

// UnitOfWorkFactory opens a fresh unit of work per logical operation.
type UnitOfWorkFactory func() UnitOfWork
