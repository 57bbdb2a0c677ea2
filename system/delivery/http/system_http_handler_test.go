package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/osmosis-labs/swapquery/domain"
	"github.com/osmosis-labs/swapquery/log"
	"github.com/osmosis-labs/swapquery/swap/repository"
	systemhttp "github.com/osmosis-labs/swapquery/system/delivery/http"
)

func TestExtractVersion(t *testing.T) {
	testCases := []struct {
		name            string
		ldFlagsValue    string
		expectedVersion string
	}{
		{
			name:            "version is specified first in the ldFlagsValue",
			ldFlagsValue:    "-X github.com/osmosis-labs/swapquery/version=0.3.0-2-g1d0e7aa     -w -s -linkmode=external -extldflags '-Wl,-z,muldefs -static'",
			expectedVersion: "0.3.0-2-g1d0e7aa",
		},
		{
			name:            "version is specified in the end of ldFlagsValue",
			ldFlagsValue:    "-w -s -linkmode=external -extldflags '-Wl,-z,muldefs -static' -X github.com/osmosis-labs/swapquery/version=0.3.0-2-g1d0e7aa",
			expectedVersion: "0.3.0-2-g1d0e7aa",
		},
		{
			name:            "ldFlagsValue only version",
			ldFlagsValue:    "-X github.com/osmosis-labs/swapquery/version=0.3.0",
			expectedVersion: "0.3.0",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := systemhttp.ExtractVersion(tc.ldFlagsValue)
			require.NoError(t, err)

			require.Equal(t, tc.expectedVersion, result)
		})
	}

	_, err := systemhttp.ExtractVersion("-w -s")
	require.Error(t, err)
}

type chainInfoUsecaseMock struct {
	status domain.ChainStatus
	err    error
}

func (m *chainInfoUsecaseMock) GetChainStatus(ctx context.Context) (domain.ChainStatus, error) {
	return m.status, m.err
}

func TestGetHealthStatus(t *testing.T) {
	assets := repository.NewAssetRegistry(repository.NewNativeAssets([]string{"uluna", "uusd"}))
	emptyAssets := repository.NewAssetRegistry(nil)

	testCases := []struct {
		name               string
		status             domain.ChainStatus
		err                error
		assetCount         int
		expectedStatusCode int
	}{
		{
			name:               "healthy",
			status:             domain.ChainStatus{LatestHeight: 12345},
			assetCount:         2,
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "stale height",
			err:                domain.StaleHeightError{StoredHeight: 12345, TimeSinceLastUpdate: 40, MaxAllowedTimeDeltaSecs: 30},
			assetCount:         2,
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:               "node unavailable",
			err:                errors.New("connection refused"),
			assetCount:         2,
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:               "catching up",
			status:             domain.ChainStatus{LatestHeight: 12345, CatchingUp: true},
			assetCount:         2,
			expectedStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:               "empty registry",
			status:             domain.ChainStatus{LatestHeight: 12345},
			expectedStatusCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			registry := assets
			if tc.assetCount == 0 {
				registry = emptyAssets
			}

			handler := &systemhttp.SystemHandler{
				CIUsecase: &chainInfoUsecaseMock{status: tc.status, err: tc.err},
				Assets:    registry,
			}
			systemhttp.SetLogger(handler, &log.NoOpLogger{})

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/healthcheck", nil), rec)

			err := handler.GetHealthStatus(c)
			if tc.expectedStatusCode != http.StatusOK {
				var httpErr *echo.HTTPError
				require.ErrorAs(t, err, &httpErr)
				require.Equal(t, tc.expectedStatusCode, httpErr.Code)
				return
			}

			require.NoError(t, err)
			require.Equal(t, http.StatusOK, rec.Code)
			require.JSONEq(t, `{"node_status":"running","chain_latest_height":"12345","assets":"2"}`, rec.Body.String())
		})
	}
}

func TestRedactConfig(t *testing.T) {
	config := domain.Config{
		Network: "mainnet",
		OTEL:    &domain.OTELConfig{DSN: "https://key@sentry.example/1", Environment: "production"},
	}

	redacted := systemhttp.RedactConfig(config)

	require.Equal(t, "<redacted>", redacted.OTEL.DSN)
	require.Equal(t, "production", redacted.OTEL.Environment)
	require.Equal(t, "mainnet", redacted.Network)
	// the running config is untouched
	require.Equal(t, "https://key@sentry.example/1", config.OTEL.DSN)

	require.Nil(t, systemhttp.RedactConfig(domain.Config{}).OTEL)
}
