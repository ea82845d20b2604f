package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
)

type transferRepository struct {
	uow *UnitOfWork
}

// Create persists the transfer record and returns its assigned identifier.
func (r *transferRepository) Create(ctx context.Context, t *transfer.Transfer) (string, error) {
	m := Transfer{
		ID:            uuid.NewString(),
		Amount:        t.Amount,
		Currency:      t.Currency.String(),
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := r.uow.session().WithContext(ctx).Create(&m).Error; err != nil {
		return "", err
	}
	r.uow.writes++
	t.ID = m.ID
	return m.ID, nil
}

func (r *transferRepository) GetByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	var m Transfer
	if err := r.uow.session().WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("transfer %s: %w", id, transfer.ErrTransferNotFound)
		}
		return nil, err
	}
	return toDomainTransfer(&m), nil
}

func (r *transferRepository) ListByAccount(ctx context.Context, accountID string) ([]*transfer.Transfer, error) {
	var ms []Transfer
	if err := r.uow.session().WithContext(ctx).
		Where("from_account_id = ? OR to_account_id = ?", accountID, accountID).
		Order("created_at").
		Find(&ms).Error; err != nil {
		return nil, err
	}
	out := make([]*transfer.Transfer, 0, len(ms))
	for i := range ms {
		out = append(out, toDomainTransfer(&ms[i]))
	}
	return out, nil
}

func toDomainTransfer(m *Transfer) *transfer.Transfer {
	return &transfer.Transfer{
		ID:            m.ID,
		Amount:        m.Amount,
		Currency:      currency.Code(m.Currency),
		FromAccountID: m.FromAccountID,
		ToAccountID:   m.ToAccountID,
	}
}
