// Package middleware holds the HTTP middleware protecting the API.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

// Protected verifies the bearer token on every request, including its expiry
// claim, and stores the parsed token in the request context under "user".
func Protected(cfg config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "Missing or malformed JWT" {
		return common.ProblemJSON(c, fiber.StatusBadRequest, "Missing or malformed token", err.Error(), nil)
	}
	return common.ProblemJSON(c, fiber.StatusUnauthorized, "Invalid or expired token", err.Error(), nil)
}
