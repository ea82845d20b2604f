// Package transfer defines the money transfer entity, its admission rules and
// its error kinds.
package transfer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
)

// ErrTransferNotFound is returned when a transfer cannot be found by id.
var ErrTransferNotFound = errors.New("transfer not found")

// Transfer is an immutable record of a movement of funds between two
// accounts. The currency is the sender's currency at the time of transfer and
// the amount is the post-commission amount actually transferred. Once
// persisted a transfer is never updated or deleted.
type Transfer struct {
	ID            string
	Amount        decimal.Decimal
	Currency      currency.Code
	FromAccountID string
	ToAccountID   string
}

// NotCompletedError reports that one or both account balance updates failed
// after the transfer record had already been persisted. The surrounding
// transaction is rolled back, so no partial transfer becomes durable, but the
// state needs operator attention.
type NotCompletedError struct {
	AccountIDs []string
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("transfer was not completed: failed to update account(s) %s",
		strings.Join(e.AccountIDs, ", "))
}
