package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
)

type accountRepository struct {
	uow *UnitOfWork
}

func (r *accountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	var m Account
	if err := r.uow.session().WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %s: %w", id, account.ErrAccountNotFound)
		}
		return nil, err
	}
	return toDomainAccount(&m), nil
}

func (r *accountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	var ms []Account
	if err := r.uow.session().WithContext(ctx).Order("opened_at").Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*account.Account, 0, len(ms))
	for i := range ms {
		out = append(out, toDomainAccount(&ms[i]))
	}
	return out, nil
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	m := Account{
		ID:       uuid.NewString(),
		UserID:   a.UserID,
		Balance:  a.Balance,
		Currency: a.Currency.String(),
		IsOpen:   a.IsOpen,
		OpenedAt: a.OpenedAt,
		ClosedAt: a.ClosedAt,
	}
	if err := r.uow.session().WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	r.uow.writes++
	return toDomainAccount(&m), nil
}

// Update writes balance and lifecycle state back, guarded so that a closed
// row is never mutated again.
func (r *accountRepository) Update(ctx context.Context, a *account.Account) (bool, error) {
	res := r.uow.session().WithContext(ctx).
		Model(&Account{}).
		Where("id = ? AND is_open = ?", a.ID, true).
		Updates(map[string]any{
			"balance":   a.Balance,
			"is_open":   a.IsOpen,
			"closed_at": a.ClosedAt,
		})
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.uow.writes++
	return true, nil
}

func (r *accountRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.uow.session().WithContext(ctx).
		Model(&Account{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountRepository) IsOpen(ctx context.Context, id string) (bool, error) {
	var n int64
	if err := r.uow.session().WithContext(ctx).
		Model(&Account{}).Where("id = ? AND is_open = ?", id, true).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *accountRepository) ExistsByUser(ctx context.Context, userID string) (bool, error) {
	var n int64
	if err := r.uow.session().WithContext(ctx).
		Model(&Account{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func toDomainAccount(m *Account) *account.Account {
	return &account.Account{
		ID:       m.ID,
		UserID:   m.UserID,
		Balance:  m.Balance,
		Currency: currency.Code(m.Currency),
		IsOpen:   m.IsOpen,
		OpenedAt: m.OpenedAt,
		ClosedAt: m.ClosedAt,
	}
}
