// Package webapi assembles the HTTP application from the route groups.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
	accountsvc "github.com/veneS-Sudo/MiniBank/pkg/service/account"
	authsvc "github.com/veneS-Sudo/MiniBank/pkg/service/auth"
	exchangesvc "github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
	transfersvc "github.com/veneS-Sudo/MiniBank/pkg/service/transfer"
	usersvc "github.com/veneS-Sudo/MiniBank/pkg/service/user"
	"github.com/veneS-Sudo/MiniBank/webapi/account"
	"github.com/veneS-Sudo/MiniBank/webapi/auth"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
	"github.com/veneS-Sudo/MiniBank/webapi/exchange"
	"github.com/veneS-Sudo/MiniBank/webapi/middleware"
	"github.com/veneS-Sudo/MiniBank/webapi/transfer"
	"github.com/veneS-Sudo/MiniBank/webapi/user"
)

// Services groups the application services the HTTP layer depends on.
type Services struct {
	Accounts  *accountsvc.Service
	Users     *usersvc.Service
	Auth      *authsvc.Service
	Transfers *transfersvc.Service
	Converter *exchangesvc.Converter
}

// SetupApp builds the fiber application with all routes and middleware.
func SetupApp(cfg *config.App, svcs Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "minibank",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemJSON(c, status, "Internal Server Error", err.Error(), nil)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded", nil)
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("App is working! 🚀")
	})

	protected := middleware.Protected(cfg.Jwt)

	auth.Routes(app, svcs.Auth)
	user.Routes(app, svcs.Users, protected)
	account.Routes(app, svcs.Accounts, protected)
	transfer.Routes(app, svcs.Transfers, svcs.Accounts, protected)
	exchange.Routes(app, svcs.Converter, protected)

	return app
}
