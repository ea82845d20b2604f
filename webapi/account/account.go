// Package account exposes the account-management endpoints.
package account

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	domain "github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	accountsvc "github.com/veneS-Sudo/MiniBank/pkg/service/account"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// CreateAccountRequest carries the fields of a new account.
type CreateAccountRequest struct {
	UserID   string `json:"userId" validate:"required"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// AccountResponse is the caller-facing account shape.
type AccountResponse struct {
	ID       string          `json:"id"`
	UserID   string          `json:"userId"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	IsOpen   bool            `json:"isOpen"`
	OpenedAt time.Time       `json:"openedAt"`
	ClosedAt *time.Time      `json:"closedAt,omitempty"`
}

// Routes registers the account endpoints behind the given auth middleware.
func Routes(app *fiber.App, svc *accountsvc.Service, protected fiber.Handler) {
	app.Post("/accounts", protected, CreateAccount(svc))
	app.Get("/accounts", protected, ListAccounts(svc))
	app.Get("/accounts/:id", protected, GetAccount(svc))
	app.Post("/accounts/:id/close", protected, CloseAccount(svc))
}

// CreateAccount opens a new account with a zero balance.
func CreateAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err
		}
		code, err := currency.Parse(input.Currency)
		if err != nil {
			return common.ProblemJSON(c, fiber.StatusBadRequest, err.Error(), "", nil)
		}
		a, err := svc.Create(c.UserContext(), input.UserID, code)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "account created", toResponse(a))
	}
}

// GetAccount returns a single account.
func GetAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := svc.GetByID(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "account found", toResponse(a))
	}
}

// ListAccounts returns every account.
func ListAccounts(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accounts, err := svc.GetAll(c.UserContext())
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		out := make([]AccountResponse, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, toResponse(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "accounts listed", out)
	}
}

// CloseAccount closes an account with a zero balance.
func CloseAccount(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		closed, err := svc.Close(c.UserContext(), c.Params("id"))
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "account closed", fiber.Map{"closed": closed})
	}
}

func toResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID,
		UserID:   a.UserID,
		Balance:  a.Balance,
		Currency: a.Currency.String(),
		IsOpen:   a.IsOpen,
		OpenedAt: a.OpenedAt,
		ClosedAt: a.ClosedAt,
	}
}
