package account

import (
	"context"
	"fmt"

	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

// UserChecker is the slice of user storage the account validators need.
type UserChecker interface {
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// NewIDValidator validates a bare account identifier.
func NewIDValidator() *validation.Validator[string] {
	return validation.New(
		validation.Field("id",
			func(_ context.Context, id string) (bool, error) { return id != "", nil },
			func(string) string { return "id must not be empty" },
		),
	)
}

// NewCreateValidator validates an account about to be created: the balance
// must not be negative, the owning user must exist and the currency must be
// one of the recognized codes.
func NewCreateValidator(users UserChecker) *validation.Validator[*Account] {
	return validation.New(
		validation.Field("balance",
			func(_ context.Context, a *Account) (bool, error) { return !a.Balance.IsNegative(), nil },
			func(*Account) string { return "cannot create an account with a negative balance" },
		),
		validation.Field("userId",
			func(ctx context.Context, a *Account) (bool, error) { return users.ExistsByID(ctx, a.UserID) },
			func(a *Account) string { return fmt.Sprintf("user with id %s not found", a.UserID) },
		),
		validation.Field("currency",
			func(_ context.Context, a *Account) (bool, error) { return a.Currency.IsSupported(), nil },
			func(a *Account) string {
				return fmt.Sprintf("unknown currency %q, supported currencies: USD, EUR, RUB", a.Currency)
			},
		),
	)
}

// NewCloseValidator validates that an account may be closed: it must still be
// open and its balance must be exactly zero.
func NewCloseValidator() *validation.Validator[*Account] {
	return validation.New(
		validation.Field("isOpen",
			func(_ context.Context, a *Account) (bool, error) { return a.IsOpen, nil },
			func(a *Account) string { return fmt.Sprintf("account %s is already closed", a.ID) },
		),
		validation.Field("balance",
			func(_ context.Context, a *Account) (bool, error) { return a.Balance.IsZero(), nil },
			func(a *Account) string {
				return fmt.Sprintf("account %s has a non-zero balance, the balance must be zero on closing", a.ID)
			},
		),
	)
}
