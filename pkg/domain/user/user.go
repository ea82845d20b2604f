// Package user defines the user entity owning bank accounts.
package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserNotFound is returned when a user cannot be found by id.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserHasAccounts is returned when deleting a user that still owns
	// bank accounts.
	ErrUserHasAccounts = errors.New("user still has bank accounts")

	// ErrUnauthorized is returned on a failed login.
	ErrUnauthorized = errors.New("invalid username or password")
)

// User owns zero or more bank accounts. The password is stored as a bcrypt
// hash only.
type User struct {
	ID       string
	Username string
	Email    string
	Password string
}

// HashPassword returns the bcrypt hash of a clear-text password.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the clear-text password matches the stored
// bcrypt hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}
