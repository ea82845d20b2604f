package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
)

func newTestUow(t *testing.T) (*UnitOfWork, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDb.Close() }) //nolint:errcheck

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	uow := NewFactory(db)().(*UnitOfWork)
	return uow, mock
}

func openRow(a *account.Account) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "balance", "currency", "is_open", "opened_at", "closed_at"}).
		AddRow(a.ID, a.UserID, a.Balance, a.Currency.String(), a.IsOpen, a.OpenedAt, a.ClosedAt)
}

func TestUnitOfWork_NoWorkNoCommit(t *testing.T) {
	uow, mock := newTestUow(t)

	writes, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Zero(t, writes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_CommitCountsWrites(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := uow.Accounts().Update(context.Background(), &account.Account{
		ID:      "11111111-1111-1111-1111-111111111111",
		Balance: decimal.RequireFromString("10"),
		IsOpen:  true,
	})
	require.NoError(t, err)
	assert.True(t, updated)

	writes, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, writes)

	// Rollback after commit is a no-op.
	assert.NoError(t, uow.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_Rollback(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	_, err := uow.Accounts().Update(context.Background(), &account.Account{
		ID:     "11111111-1111-1111-1111-111111111111",
		IsOpen: true,
	})
	require.NoError(t, err)

	require.NoError(t, uow.Rollback())

	// Nothing left to commit after a rollback.
	writes, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Zero(t, writes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetByID(t *testing.T) {
	uow, mock := newTestUow(t)
	now := time.Now().UTC()
	want := &account.Account{
		ID:       "11111111-1111-1111-1111-111111111111",
		UserID:   "22222222-2222-2222-2222-222222222222",
		Balance:  decimal.RequireFromString("42.50"),
		Currency: "USD",
		IsOpen:   true,
		OpenedAt: now,
	}
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "accounts"`).
		WithArgs(want.ID, 1).
		WillReturnRows(openRow(want))

	got, err := uow.Accounts().GetByID(context.Background(), want.ID)
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.UserID, got.UserID)
	assert.True(t, got.Balance.Equal(want.Balance))
	assert.True(t, got.IsOpen)
}

func TestAccountRepository_GetByID_NotFound(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := uow.Accounts().GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestAccountRepository_UpdateClosedRowRejected(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	updated, err := uow.Accounts().Update(context.Background(), &account.Account{
		ID:     "11111111-1111-1111-1111-111111111111",
		IsOpen: true,
	})
	require.NoError(t, err)
	assert.False(t, updated)

	// The rejected update staged no writes.
	writes, err := uow.SaveChanges(context.Background())
	require.NoError(t, err)
	assert.Zero(t, writes)
}

func TestAccountRepository_ExistsByID(t *testing.T) {
	uow, mock := newTestUow(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := uow.Accounts().ExistsByID(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
