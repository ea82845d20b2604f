// Package exchange exposes the standalone currency conversion endpoint.
package exchange

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	exchangesvc "github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// Routes registers the conversion endpoint behind the given auth middleware.
func Routes(app *fiber.App, converter *exchangesvc.Converter, protected fiber.Handler) {
	app.Get("/convert", protected, Convert(converter))
}

// Convert converts an amount between two currencies without touching any
// account. Query parameters: amount, from, to.
func Convert(converter *exchangesvc.Converter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		amount, err := decimal.NewFromString(c.Query("amount"))
		if err != nil {
			return common.ProblemJSON(c, fiber.StatusBadRequest, "invalid amount", err.Error(), nil)
		}
		from, err := currency.Parse(c.Query("from"))
		if err != nil {
			return common.ProblemJSON(c, fiber.StatusBadRequest, err.Error(), "", nil)
		}
		to, err := currency.Parse(c.Query("to"))
		if err != nil {
			return common.ProblemJSON(c, fiber.StatusBadRequest, err.Error(), "", nil)
		}
		result, err := converter.Convert(c.UserContext(), amount, from, to)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "amount converted", fiber.Map{
			"amount": amount,
			"from":   from,
			"to":     to,
			"result": result.Round(2),
		})
	}
}
