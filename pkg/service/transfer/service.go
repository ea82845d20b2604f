// Package transfer implements the money-transfer orchestration core: the
// pipeline that validates a transfer request, computes a commission, converts
// currency, mutates two account balances and durably records the transfer.
package transfer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/repository"
	"github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
)

// Service is the only entry point that actually moves money. Each operation
// opens its own unit of work; all storage writes of a transfer commit
// atomically or not at all.
type Service struct {
	newUow    repository.UnitOfWorkFactory
	converter *exchange.Converter
	logger    *slog.Logger
}

// New creates the transfer service.
func New(newUow repository.UnitOfWorkFactory, converter *exchange.Converter, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		newUow:    newUow,
		converter: converter,
		logger:    logger.With("service", "transfer"),
	}
}

// TransferAmount moves t.Amount from the source to the destination account.
//
// The sequence is strictly ordered: validate, load both accounts, check
// funds, debit the full requested amount from the source, subtract the
// commission from the transfer amount, convert the post-commission amount to
// the destination currency rounded to 2 decimal places, credit the
// destination, persist the transfer record, write both balances back and
// commit. The funds check happens before any mutation; the persisted transfer
// carries the post-commission amount in the sender's currency.
//
// The commission is not credited anywhere: the sender is debited the full
// requested amount and the recipient receives the post-commission converted
// amount, so the bank keeps the difference.
func (s *Service) TransferAmount(ctx context.Context, t *transfer.Transfer) (string, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // no-op after commit

	accounts := uow.Accounts()
	validator := transfer.NewValidator(accounts)
	if err := validator.Validate(ctx, t); err != nil {
		return "", err
	}

	from, err := accounts.GetByID(ctx, t.FromAccountID)
	if err != nil {
		return "", err
	}
	to, err := accounts.GetByID(ctx, t.ToAccountID)
	if err != nil {
		return "", err
	}

	if from.Balance.LessThan(t.Amount) {
		return "", fmt.Errorf("account %s: %w", from.ID, account.ErrInsufficientFunds)
	}

	from.Balance = from.Balance.Sub(t.Amount)

	commission, err := NewCommissionCalculator(accounts).Calculate(ctx, t)
	if err != nil {
		return "", err
	}
	t.Amount = t.Amount.Sub(commission)

	converted, err := s.converter.Convert(ctx, t.Amount, from.Currency, to.Currency)
	if err != nil {
		return "", err
	}
	credited := converted.Round(2)
	to.Balance = to.Balance.Add(credited)

	transferID, err := uow.Transfers().Create(ctx, t)
	if err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "money transfer created",
		"id", transferID,
		"amount", t.Amount,
		"currency", t.Currency,
		"from_account", t.FromAccountID,
		"to_account", t.ToAccountID,
		"commission", commission,
		"credited", credited,
	)

	updatedFrom, err := accounts.Update(ctx, from)
	if err != nil {
		return "", err
	}
	updatedTo, err := accounts.Update(ctx, to)
	if err != nil {
		return "", err
	}
	if !updatedFrom || !updatedTo {
		notCompleted := &transfer.NotCompletedError{}
		if !updatedFrom {
			notCompleted.AccountIDs = append(notCompleted.AccountIDs, from.ID)
		}
		if !updatedTo {
			notCompleted.AccountIDs = append(notCompleted.AccountIDs, to.ID)
		}
		return "", notCompleted
	}

	if _, err := uow.SaveChanges(ctx); err != nil {
		return "", err
	}
	s.logger.InfoContext(ctx, "transfer accounts updated",
		"from_account", from.ID, "from_balance", from.Balance,
		"to_account", to.ID, "to_balance", to.Balance,
	)
	return transferID, nil
}

// CalculateCommission computes the commission for a transfer request without
// moving any money.
func (s *Service) CalculateCommission(ctx context.Context, t *transfer.Transfer) (decimal.Decimal, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return NewCommissionCalculator(uow.Accounts()).Calculate(ctx, t)
}

// GetByID returns a single transfer record.
func (s *Service) GetByID(ctx context.Context, id string) (*transfer.Transfer, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	return uow.Transfers().GetByID(ctx, id)
}

// ListByAccount returns every transfer the given account participated in.
// The account must exist.
func (s *Service) ListByAccount(ctx context.Context, accountID string) ([]*transfer.Transfer, error) {
	uow := s.newUow()
	defer uow.Rollback() //nolint:errcheck // read-only

	exists, err := uow.Accounts().ExistsByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("account %s: %w", accountID, account.ErrAccountNotFound)
	}
	return uow.Transfers().ListByAccount(ctx, accountID)
}
