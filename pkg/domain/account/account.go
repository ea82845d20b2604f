// Package account defines the bank account entity and its lifecycle
// invariants.
package account

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found by id.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds is returned when the source account balance is
	// below the requested transfer amount.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAccountClosed is returned when an operation targets an account that
	// has already been closed. Closing is terminal.
	ErrAccountClosed = errors.New("account is closed")

	// ErrBalanceNotZero is returned when closing an account whose balance is
	// not exactly zero.
	ErrBalanceNotZero = errors.New("account balance must be zero to close")
)

// Account is a balance-holding entity owned by a user, denominated in one
// currency, with an open/closed lifecycle state.
//
// Invariants:
//   - Balance is non-negative while the account is open.
//   - A closed account's balance is exactly zero and rejects all further
//     balance mutation; closing is terminal.
type Account struct {
	ID       string
	UserID   string
	Balance  decimal.Decimal
	Currency currency.Code
	IsOpen   bool
	OpenedAt time.Time
	ClosedAt *time.Time
}

// New returns an open account for the given owner with a zero balance.
func New(userID string, code currency.Code) *Account {
	return &Account{
		UserID:   userID,
		Balance:  decimal.Zero,
		Currency: code,
		IsOpen:   true,
		OpenedAt: time.Now().UTC(),
	}
}

// Close marks the account closed. The balance must be exactly zero and the
// account must still be open.
func (a *Account) Close() error {
	if !a.IsOpen {
		return ErrAccountClosed
	}
	if !a.Balance.IsZero() {
		return ErrBalanceNotZero
	}
	now := time.Now().UTC()
	a.IsOpen = false
	a.ClosedAt = &now
	return nil
}
