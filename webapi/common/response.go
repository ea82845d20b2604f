// Package common holds shared webapi response helpers: success envelopes,
// RFC 9457 problem details and request binding/validation.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/provider"
	"github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
	"github.com/veneS-Sudo/MiniBank/pkg/validation"
)

// validate checks request DTO shapes; a single instance caches the parsed
// struct rules and is safe for concurrent use.
var validate = validator.New()

// Response is the standard success envelope.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{Status: status, Message: message, Data: data})
}

// ProblemJSON writes an RFC 9457 problem response.
func ProblemJSON(c *fiber.Ctx, status int, title string, detail string, errs any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
		Errors:   errs,
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(pd)
}

// DomainErrorJSON maps a service error to a problem response: validation and
// domain errors become 4xx rejections, infrastructure errors a generic 5xx.
func DomainErrorJSON(c *fiber.Ctx, err error) error {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return ProblemJSON(c, fiber.StatusBadRequest, "Validation failed", "", verr.Violations)
	}
	status := ErrorToStatusCode(err)
	if status >= fiber.StatusInternalServerError {
		// Do not leak infrastructure details to the caller.
		return ProblemJSON(c, status, "Internal Server Error", "", nil)
	}
	return ProblemJSON(c, status, err.Error(), "", nil)
}

// ErrorToStatusCode maps the error taxonomy to HTTP status codes.
func ErrorToStatusCode(err error) int {
	var notCompleted *transfer.NotCompletedError
	switch {
	case errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, transfer.ErrTransferNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrInsufficientFunds):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, account.ErrAccountClosed),
		errors.Is(err, account.ErrBalanceNotZero),
		errors.Is(err, user.ErrUserHasAccounts):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, exchange.ErrNegativeAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, user.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, provider.ErrRateUnavailable):
		return fiber.StatusBadGateway
	case errors.As(err, &notCompleted):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates its shape. On failure
// the error response has already been written and a non-nil error is
// returned.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error(), nil)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error(), nil)
	}
	return &input, nil
}
