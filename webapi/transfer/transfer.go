// Package transfer exposes the money-transfer endpoints.
package transfer

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	domain "github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	accountsvc "github.com/veneS-Sudo/MiniBank/pkg/service/account"
	transfersvc "github.com/veneS-Sudo/MiniBank/pkg/service/transfer"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// CreateTransferRequest carries a transfer order. The currency is not chosen
// by the caller: it is resolved from the sender's account.
type CreateTransferRequest struct {
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	FromAccountID string          `json:"fromAccountId" validate:"required"`
	ToAccountID   string          `json:"toAccountId" validate:"required"`
}

// TransferResponse is the caller-facing transfer shape.
type TransferResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	FromAccountID string          `json:"fromAccountId"`
	ToAccountID   string          `json:"toAccountId"`
}

// Routes registers the transfer endpoints behind the given auth middleware.
func Routes(app *fiber.App, transfers *transfersvc.Service, accounts *accountsvc.Service, protected fiber.Handler) {
	app.Post("/transfers", protected, CreateTransfer(transfers, accounts))
	app.Post("/transfers/commission", protected, CalculateCommission(transfers, accounts))
	app.Get("/transfers/:id", protected, GetTransfer(transfers))
	app.Get("/accounts/:id/transfers", protected, ListAccountTransfers(transfers))
}

// buildTransfer maps the request to a domain transfer, stamping the sender's
// currency when the sender account resolves. A missing sender is left to the
// validation pipeline, which reports it field by field; any other lookup
// failure is an infrastructure error and propagates.
func buildTransfer(c *fiber.Ctx, accounts *accountsvc.Service, input *CreateTransferRequest) (*domain.Transfer, error) {
	t := &domain.Transfer{
		Amount:        input.Amount,
		FromAccountID: input.FromAccountID,
		ToAccountID:   input.ToAccountID,
	}
	from, err := accounts.GetByID(c.UserContext(), input.FromAccountID)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return t, nil
		}
		return nil, err
	}
	t.Currency = from.Currency
	return t, nil
}

// CreateTransfer moves money between two accounts and returns the assigned
// transfer id.
func CreateTransfer(transfers *transfersvc.Service, accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransferRequest](c)
		if input == nil {
			return err
		}
		t, err := buildTransfer(c, accounts, input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		id, err := transfers.TransferAmount(c.UserContext(), t)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "transfer created", fiber.Map{"transferId": id})
	}
}

// CalculateCommission computes the commission for a transfer order without
// moving any money.
func CalculateCommission(transfers *transfersvc.Service, accounts *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateTransferRequest](c)
		if input == nil {
			return err
		}
		t, err := buildTransfer(c, accounts, input)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		commission, err := transfers.CalculateCommission(c.UserContext(), t)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "commission calculated", fiber.Map{"commission": commission})
	}
}

// GetTransfer returns a single transfer record.
func GetTransfer(transfers *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t, err := transfers.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "transfer found", toResponse(t))
	}
}

// ListAccountTransfers returns every transfer the account participated in.
func ListAccountTransfers(transfers *transfersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		list, err := transfers.ListByAccount(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		out := make([]TransferResponse, 0, len(list))
		for _, t := range list {
			out = append(out, toResponse(t))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "transfers listed", out)
	}
}

func toResponse(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		ID:            t.ID,
		Amount:        t.Amount,
		Currency:      t.Currency.String(),
		FromAccountID: t.FromAccountID,
		ToAccountID:   t.ToAccountID,
	}
}
