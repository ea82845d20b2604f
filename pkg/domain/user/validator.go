package user

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

// AccountChecker is the slice of account storage the delete validator needs.
type AccountChecker interface {
	ExistsByUser(ctx context.Context, userID string) (bool, error)
}

// NewCreateValidator validates a user about to be created.
func NewCreateValidator() *validation.Validator[*User] {
	return validation.New(
		validation.Field("username",
			func(_ context.Context, u *User) (bool, error) { return u.Username != "", nil },
			func(*User) string { return "username must not be empty" },
		),
		validation.Field("email",
			func(_ context.Context, u *User) (bool, error) {
				_, err := mail.ParseAddress(u.Email)
				return err == nil, nil
			},
			func(u *User) string { return fmt.Sprintf("email %q is not a valid address", u.Email) },
		),
	)
}

// NewDeleteValidator validates that a user may be deleted: a user still
// owning bank accounts cannot be removed.
func NewDeleteValidator(accounts AccountChecker) *validation.Validator[*User] {
	return validation.New(
		validation.Field("id",
			func(ctx context.Context, u *User) (bool, error) {
				exists, err := accounts.ExistsByUser(ctx, u.ID)
				return !exists, err
			},
			func(u *User) string {
				return fmt.Sprintf("user %s still has bank accounts and cannot be deleted", u.ID)
			},
		),
	)
}
