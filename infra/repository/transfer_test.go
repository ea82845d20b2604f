package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
)

func transferRows(ts ...*transfer.Transfer) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "amount", "currency", "from_account_id", "to_account_id", "created_at"})
	for _, t := range ts {
		rows.AddRow(t.ID, t.Amount, t.Currency.String(), t.FromAccountID, t.ToAccountID, time.Now().UTC())
	}
	return rows
}

func TestTransferRepository_CreateAssignsID(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transfers"`).WillReturnResult(sqlmock.NewResult(0, 1))

	tr := &transfer.Transfer{
		Amount:        decimal.RequireFromString("49"),
		Currency:      currency.RUB,
		FromAccountID: "acc-from",
		ToAccountID:   "acc-to",
	}
	id, err := uow.Transfers().Create(context.Background(), tr)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, tr.ID)
}

func TestTransferRepository_GetByID_NotFound(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "transfers"`).
		WillReturnRows(transferRows())

	_, err := uow.Transfers().GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, transfer.ErrTransferNotFound)
}

func TestTransferRepository_ListByAccount(t *testing.T) {
	uow, mock := newTestUow(t)
	want := []*transfer.Transfer{
		{ID: "tr-1", Amount: decimal.RequireFromString("49"), Currency: currency.RUB, FromAccountID: "acc-1", ToAccountID: "acc-2"},
		{ID: "tr-2", Amount: decimal.RequireFromString("10"), Currency: currency.RUB, FromAccountID: "acc-2", ToAccountID: "acc-1"},
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "transfers"`).
		WithArgs("acc-1", "acc-1").
		WillReturnRows(transferRows(want...))

	got, err := uow.Transfers().ListByAccount(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tr-1", got[0].ID)
	assert.Equal(t, "tr-2", got[1].ID)
	assert.True(t, got[0].Amount.Equal(want[0].Amount))
}
