package transfer

import (
	"context"
	"fmt"

	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

// AccountChecker is the read-only slice of account storage the transfer
// validator needs.
type AccountChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
	IsOpen(ctx context.Context, id string) (bool, error)
}

// NewValidator builds the admission pipeline for a transfer request.
//
// The source account rules form a stop-on-first-failure chain (non-empty id,
// account exists, account open); the destination chain is the same and only
// runs once the source chain has passed. The same-account, positive-amount
// and known-currency rules are independent and always evaluated.
func NewValidator(accounts AccountChecker) *validation.Validator[*Transfer] {
	sourceChain := validation.Group(
		validation.Field("fromAccountId",
			func(_ context.Context, t *Transfer) (bool, error) { return t.FromAccountID != "", nil },
			func(*Transfer) string { return "sender account id must not be empty" },
		),
		validation.Field("fromAccountId",
			func(ctx context.Context, t *Transfer) (bool, error) { return accounts.ExistsByID(ctx, t.FromAccountID) },
			func(t *Transfer) string { return fmt.Sprintf("sender account %s not found", t.FromAccountID) },
		),
		validation.Field("fromAccountId",
			func(ctx context.Context, t *Transfer) (bool, error) { return accounts.IsOpen(ctx, t.FromAccountID) },
			func(t *Transfer) string {
				return fmt.Sprintf("sender account %s is closed, transfers and commission are unavailable", t.FromAccountID)
			},
		),
	)
	destinationChain := validation.Group(
		validation.Field("toAccountId",
			func(_ context.Context, t *Transfer) (bool, error) { return t.ToAccountID != "", nil },
			func(*Transfer) string { return "recipient account id must not be empty" },
		),
		validation.Field("toAccountId",
			func(ctx context.Context, t *Transfer) (bool, error) { return accounts.ExistsByID(ctx, t.ToAccountID) },
			func(t *Transfer) string { return fmt.Sprintf("recipient account %s not found", t.ToAccountID) },
		),
		validation.Field("toAccountId",
			func(ctx context.Context, t *Transfer) (bool, error) { return accounts.IsOpen(ctx, t.ToAccountID) },
			func(t *Transfer) string {
				return fmt.Sprintf("recipient account %s is closed, transfers and commission are unavailable", t.ToAccountID)
			},
		),
	)

	return validation.New(
		validation.Dependent(sourceChain, destinationChain),
		validation.Field("toAccountId",
			func(_ context.Context, t *Transfer) (bool, error) { return t.FromAccountID != t.ToAccountID, nil },
			func(t *Transfer) string {
				return fmt.Sprintf("cannot transfer between the same account, id: %s", t.FromAccountID)
			},
		),
		validation.Field("amount",
			func(_ context.Context, t *Transfer) (bool, error) { return t.Amount.IsPositive(), nil },
			func(*Transfer) string { return "transfer amount must be greater than zero" },
		),
		validation.Field("currency",
			func(_ context.Context, t *Transfer) (bool, error) { return t.Currency.IsSupported(), nil },
			func(t *Transfer) string {
				return fmt.Sprintf("unknown currency %q, supported currencies: USD, EUR, RUB", t.Currency)
			},
		),
	)
}
