// Package provider defines the external rate-source contract consumed by the
// currency converter.
package provider

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/currency"
)

// ErrRateUnavailable wraps every rate-source failure: timeouts, malformed
// responses and unknown currencies. It is an infrastructure error, distinct
// from the domain error kinds, and is never retried inside the core.
var ErrRateUnavailable = errors.New("currency rate unavailable")

// RateProvider supplies spot exchange rates quoted against the reference
// currency (whose own rate is exactly 1 and must not require a lookup).
type RateProvider interface {
	GetRate(ctx context.Context, code currency.Code) (decimal.Decimal, error)
}
