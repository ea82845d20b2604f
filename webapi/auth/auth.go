// Package auth exposes the login endpoint issuing bearer tokens.
package auth

import (
	"github.com/gofiber/fiber/v2"

	authsvc "github.com/veneS-Sudo/MiniBank/pkg/service/auth"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// LoginRequest carries the login credentials.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/login", Login(svc))
}

// Login authenticates a user and returns a signed token.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginRequest](c)
		if input == nil {
			return err
		}
		u, err := svc.Login(c.UserContext(), input.Username, input.Password)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		token, err := svc.GenerateToken(u)
		if err != nil {
			return common.DomainErrorJSON(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "login successful", fiber.Map{"token": token})
	}
}
