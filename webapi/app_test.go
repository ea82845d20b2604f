package webapi_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veneS-Sudo/MiniBank/pkg/config"
	"github.com/veneS-Sudo/MiniBank/webapi"
)

func TestSetupApp_RateLimitFromConfig(t *testing.T) {
	cfg := &config.App{
		Jwt:       config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimit{MaxRequests: 1, Window: time.Minute},
	}
	app := webapi.SetupApp(cfg, webapi.Services{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}
