// Package provider implements the currency rate source over a CBR-style
// daily_json.js HTTP feed.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
	"github.com/veneS-Sudo/MiniBank/pkg/currency"
	"github.com/veneS-Sudo/MiniBank/pkg/provider"
)

// courseResponse is the shape of the daily_json.js feed: rates per currency
// code, quoted in the reference currency.
type courseResponse struct {
	Valute map[string]struct {
		Nominal int             `json:"Nominal"`
		Value   decimal.Decimal `json:"Value"`
	} `json:"Valute"`
}

// HTTPRateProvider fetches spot rates over HTTP. The reference currency is
// answered locally with rate 1 and never hits the network.
type HTTPRateProvider struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// NewHTTPRateProvider creates a provider for the configured feed.
func NewHTTPRateProvider(cfg config.Rates, logger *slog.Logger) *HTTPRateProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPRateProvider{
		url:    cfg.Url,
		client: &http.Client{Timeout: cfg.HTTPTimeout},
		logger: logger.With("provider", "rates"),
	}
}

// GetRate returns the spot rate of code against the reference currency.
func (p *HTTPRateProvider) GetRate(ctx context.Context, code currency.Code) (decimal.Decimal, error) {
	if code == currency.Reference {
		return decimal.NewFromInt(1), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", provider.ErrRateUnavailable, err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", provider.ErrRateUnavailable, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: feed returned status %d", provider.ErrRateUnavailable, resp.StatusCode)
	}

	var course courseResponse
	if err := json.NewDecoder(resp.Body).Decode(&course); err != nil {
		return decimal.Zero, fmt.Errorf("%w: malformed feed: %v", provider.ErrRateUnavailable, err)
	}

	quote, ok := course.Valute[code.String()]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no quote for %s", provider.ErrRateUnavailable, code)
	}
	rate := quote.Value
	if quote.Nominal > 1 {
		rate = rate.Div(decimal.NewFromInt(int64(quote.Nominal)))
	}
	p.logger.Debug("rate fetched", "currency", code, "rate", rate)
	return rate, nil
}
