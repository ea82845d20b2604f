package transfer

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

// commissionRate is the fee charged on transfers between different users.
var commissionRate = decimal.RequireFromString("0.02")

// AccountReader is the read-only slice of account storage the commission
// calculator needs.
type AccountReader interface {
	transfer.AccountChecker
	GetByID(ctx context.Context, id string) (*account.Account, error)
}

// CommissionCalculator computes the fee subtracted from a transfer amount.
// It is invocable standalone, so it re-validates the request itself.
type CommissionCalculator struct {
	accounts  AccountReader
	validator *validation.Validator[*transfer.Transfer]
}

// NewCommissionCalculator creates a calculator reading account ownership from
// the given repository.
func NewCommissionCalculator(accounts AccountReader) *CommissionCalculator {
	return &CommissionCalculator{
		accounts:  accounts,
		validator: transfer.NewValidator(accounts),
	}
}

// Calculate returns the commission for the given transfer request: zero when
// both accounts belong to the same user, otherwise 2% of the amount rounded
// to 2 decimal places (half away from zero).
func (c *CommissionCalculator) Calculate(ctx context.Context, t *transfer.Transfer) (decimal.Decimal, error) {
	if err := c.validator.Validate(ctx, t); err != nil {
		return decimal.Zero, err
	}
	from, err := c.accounts.GetByID(ctx, t.FromAccountID)
	if err != nil {
		return decimal.Zero, err
	}
	to, err := c.accounts.GetByID(ctx, t.ToAccountID)
	if err != nil {
		return decimal.Zero, err
	}

	if from.UserID == to.UserID {
		return decimal.Zero, nil
	}
	return t.Amount.Mul(commissionRate).Round(2), nil
}
