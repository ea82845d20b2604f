// Package currency defines the currency codes the bank operates with and the
// reference currency all exchange rates are quoted against.
package currency

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedCurrency is returned when a currency code is not one of the
// recognized codes.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// Code is a 3-letter currency code.
type Code string

const (
	USD Code = "USD"
	EUR Code = "EUR"
	RUB Code = "RUB"
)

// Reference is the currency all rates are quoted against. Its own rate is
// exactly 1 and never requires a rate-source lookup.
const Reference = RUB

// supported lists the recognized codes in a stable order.
var supported = []Code{USD, EUR, RUB}

// Supported returns the recognized currency codes.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// IsSupported reports whether c is one of the recognized codes.
func (c Code) IsSupported() bool {
	switch c {
	case USD, EUR, RUB:
		return true
	}
	return false
}

// String returns the code as a plain string.
func (c Code) String() string { return string(c) }

// Parse normalizes s to upper case and returns the matching Code.
func Parse(s string) (Code, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsSupported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, s)
	}
	return c, nil
}
