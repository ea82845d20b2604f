package common_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veneS-Sudo/MiniBank/pkg/domain/account"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/transfer"
	"github.com/veneS-Sudo/MiniBank/pkg/domain/user"
	"github.com/veneS-Sudo/MiniBank/pkg/provider"
	"github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
	"github.com/veneS-Sudo/MiniBank/pkg/validation"
	"github.com/veneS-Sudo/MiniBank/webapi/common"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"account not found", account.ErrAccountNotFound, fiber.StatusNotFound},
		{"wrapped not found", fmt.Errorf("account x: %w", account.ErrAccountNotFound), fiber.StatusNotFound},
		{"transfer not found", transfer.ErrTransferNotFound, fiber.StatusNotFound},
		{"user not found", user.ErrUserNotFound, fiber.StatusNotFound},
		{"insufficient funds", account.ErrInsufficientFunds, fiber.StatusUnprocessableEntity},
		{"account closed", account.ErrAccountClosed, fiber.StatusUnprocessableEntity},
		{"balance not zero", account.ErrBalanceNotZero, fiber.StatusUnprocessableEntity},
		{"user has accounts", user.ErrUserHasAccounts, fiber.StatusUnprocessableEntity},
		{"negative conversion", exchange.ErrNegativeAmount, fiber.StatusBadRequest},
		{"unauthorized", user.ErrUnauthorized, fiber.StatusUnauthorized},
		{"rate unavailable", provider.ErrRateUnavailable, fiber.StatusBadGateway},
		{"not completed", &transfer.NotCompletedError{AccountIDs: []string{"a"}}, fiber.StatusInternalServerError},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, common.ErrorToStatusCode(test.err))
		})
	}
}

func appReturning(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return common.DomainErrorJSON(c, err)
	})
	return app
}

func TestDomainErrorJSON_ValidationError(t *testing.T) {
	verr := &validation.Error{Violations: []validation.Violation{
		{Field: "amount", Message: "transfer amount must be greater than zero"},
	}}
	app := appReturning(verr)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Validation failed", pd.Title)
	require.NotNil(t, pd.Errors)
}

func TestDomainErrorJSON_DomainError(t *testing.T) {
	app := appReturning(fmt.Errorf("account x: %w", account.ErrInsufficientFunds))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Contains(t, pd.Title, "insufficient funds")
}

func TestDomainErrorJSON_HidesInfrastructureDetail(t *testing.T) {
	app := appReturning(errors.New("pq: connection refused on 10.0.0.5"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var pd common.ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	assert.Equal(t, "Internal Server Error", pd.Title)
	assert.NotContains(t, pd.Title, "10.0.0.5")
}

func TestBindAndValidate(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}
	app := fiber.New()
	app.Post("/echo", func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[payload](c)
		if input == nil {
			return err
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "ok", input)
	})

	req := httptest.NewRequest(http.MethodPost, "/echo", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":""}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(`{"name":"bob"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
