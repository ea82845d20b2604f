package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := user.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	u := &user.User{Password: hash}
	assert.True(t, u.CheckPassword("s3cret"))
	assert.False(t, u.CheckPassword("wrong"))
}

func TestCreateValidator(t *testing.T) {
	tests := []struct {
		name      string
		user      *user.User
		wantField string
	}{
		{"valid", &user.User{Username: "bob", Email: "bob@example.com"}, ""},
		{"empty username", &user.User{Email: "bob@example.com"}, "username"},
		{"bad email", &user.User{Username: "bob", Email: "not-an-email"}, "email"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := user.NewCreateValidator().Validate(context.Background(), test.user)
			if test.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, test.wantField, verr.Violations[0].Field)
		})
	}
}

type accountCheckerFunc func(ctx context.Context, userID string) (bool, error)

func (f accountCheckerFunc) ExistsByUser(ctx context.Context, userID string) (bool, error) {
	return f(ctx, userID)
}

func TestDeleteValidator(t *testing.T) {
	u := &user.User{ID: "user-1"}

	noAccounts := accountCheckerFunc(func(context.Context, string) (bool, error) { return false, nil })
	assert.NoError(t, user.NewDeleteValidator(noAccounts).Validate(context.Background(), u))

	hasAccounts := accountCheckerFunc(func(context.Context, string) (bool, error) { return true, nil })
	err := user.NewDeleteValidator(hasAccounts).Validate(context.Background(), u)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Violations[0].Message, "still has bank accounts")
}
