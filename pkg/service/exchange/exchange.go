// Package exchange converts amounts between currencies using spot rates
// quoted against the reference currency.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/provider"
)

// ErrNegativeAmount is returned when a negative amount is passed to Convert.
// The converter is a standalone public operation, so this is its own error
// kind rather than a validation failure.
var ErrNegativeAmount = errors.New("conversion amount must not be negative")

// Converter converts non-negative amounts between currencies. Rate lookups
// are a cost boundary: conversions of zero and conversions between identical
// currencies never consult the rate source.
type Converter struct {
	rates  provider.RateProvider
	logger *slog.Logger
}

// New creates a Converter backed by the given rate source.
func New(rates provider.RateProvider, logger *slog.Logger) *Converter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Converter{rates: rates, logger: logger.With("service", "exchange")}
}

// Convert converts amount from one currency to another as
// amount * rate(from) / rate(to). The result is not rounded; rounding to the
// target precision is the caller's responsibility.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to currency.Code) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}
	if from == to {
		return amount, nil
	}

	fromRate, err := c.rates.GetRate(ctx, from)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate for %s: %w", from, err)
	}
	toRate, err := c.rates.GetRate(ctx, to)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate for %s: %w", to, err)
	}

	result := amount.Mul(fromRate).Div(toRate)
	c.logger.Debug("converted amount",
		"amount", amount, "from", from, "to", to,
		"from_rate", fromRate, "to_rate", toRate, "result", result)
	return result, nil
}
