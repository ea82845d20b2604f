// Package repository implements the storage contracts on top of GORM. A unit
// of work wraps one database transaction; repositories obtained from it share
// that transaction, so a transfer's record and both balance writes become
// durable together or not at all.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/pkg/repository"
)

// UnitOfWork scopes repository access to a single lazily-begun database
// transaction and counts staged writes.
type UnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	writes int
	done   bool
}

// NewFactory returns a factory opening a fresh unit of work per operation.
func NewFactory(db *gorm.DB) repository.UnitOfWorkFactory {
	return func() repository.UnitOfWork {
		return &UnitOfWork{db: db}
	}
}

// session returns the transaction, beginning it on first use.
func (u *UnitOfWork) session() *gorm.DB {
	if u.tx == nil {
		u.tx = u.db.Begin()
	}
	return u.tx
}

// Accounts returns the account repository bound to this unit of work.
func (u *UnitOfWork) Accounts() repository.AccountRepository {
	return &accountRepository{uow: u}
}

// Transfers returns the transfer repository bound to this unit of work.
func (u *UnitOfWork) Transfers() repository.TransferRepository {
	return &transferRepository{uow: u}
}

// Users returns the user repository bound to this unit of work.
func (u *UnitOfWork) Users() repository.UserRepository {
	return &userRepository{uow: u}
}

// SaveChanges commits the transaction and returns the number of staged
// writes. Without any prior repository access there is nothing to commit.
func (u *UnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	if u.tx == nil || u.done {
		return 0, nil
	}
	if err := u.tx.WithContext(ctx).Commit().Error; err != nil {
		return 0, err
	}
	u.done = true
	return u.writes, nil
}

// Rollback discards the transaction. It is a no-op after SaveChanges, which
// makes it safe to defer alongside a commit.
func (u *UnitOfWork) Rollback() error {
	if u.tx == nil || u.done {
		return nil
	}
	u.done = true
	return u.tx.Rollback().Error
}
