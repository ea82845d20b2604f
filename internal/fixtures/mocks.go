// Package fixtures provides testify mocks for the storage and provider
// contracts.
package fixtures

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/repository"
)

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) GetAll(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	accounts, _ := args.Get(0).([]*account.Account)
	return accounts, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, a *account.Account) (*account.Account, error) {
	args := m.Called(ctx, a)
	created, _ := args.Get(0).(*account.Account)
	return created, args.Error(1)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) (bool, error) {
	args := m.Called(ctx, a)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) IsOpen(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) ExistsByUser(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockTransferRepository mocks repository.TransferRepository.
type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Create(ctx context.Context, t *transfer.Transfer) (string, error) {
	args := m.Called(ctx, t)
	return args.String(0), args.Error(1)
}

func (m *MockTransferRepository) GetByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*transfer.Transfer)
	return t, args.Error(1)
}

func (m *MockTransferRepository) ListByAccount(ctx context.Context, accountID string) ([]*transfer.Transfer, error) {
	args := m.Called(ctx, accountID)
	transfers, _ := args.Get(0).([]*transfer.Transfer)
	return transfers, args.Error(1)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetAll(ctx context.Context) ([]*user.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*user.User)
	return users, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	args := m.Called(ctx, u)
	created, _ := args.Get(0).(*user.User)
	return created, args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) (bool, error) {
	args := m.Called(ctx, u)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockUnitOfWork mocks repository.UnitOfWork.
type MockUnitOfWork struct{ mock.Mock }

func (m *MockUnitOfWork) Accounts() repository.AccountRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.AccountRepository)
	return repo
}

func (m *MockUnitOfWork) Transfers() repository.TransferRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.TransferRepository)
	return repo
}

func (m *MockUnitOfWork) Users() repository.UserRepository {
	args := m.Called()
	repo, _ := args.Get(0).(repository.UserRepository)
	return repo
}

func (m *MockUnitOfWork) SaveChanges(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// Factory wraps the mock in a repository.UnitOfWorkFactory.
func (m *MockUnitOfWork) Factory() repository.UnitOfWorkFactory {
	return func() repository.UnitOfWork { return m }
}

// MockRateProvider mocks provider.RateProvider.
type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) GetRate(ctx context.Context, code currency.Code) (decimal.Decimal, error) {
	args := m.Called(ctx, code)
	rate, _ := args.Get(0).(decimal.Decimal)
	return rate, args.Error(1)
}
