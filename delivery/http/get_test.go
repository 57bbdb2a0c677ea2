package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	deliveryhttp "github.com/osmosis-labs/swapquery/delivery/http"
)

func newRegistryServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pairs.json":
			w.Write([]byte(`{"mainnet":{"terra1pair":["uluna","uusd"]}}`))
		case "/broken.json":
			w.Write([]byte(`{"mainnet":`))
		case "/slow.json":
			time.Sleep(50 * time.Millisecond)
			w.Write([]byte(`{}`))
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}))
}

func TestGetOK(t *testing.T) {
	server := newRegistryServer()
	defer server.Close()

	tests := []struct {
		name          string
		path          string
		timeout       time.Duration
		expectedBody  string
		expectedError string
	}{
		{
			name:         "body is returned",
			path:         "/pairs.json",
			expectedBody: `{"mainnet":{"terra1pair":["uluna","uusd"]}}`,
		},
		{
			name:          "non 2xx status",
			path:          "/missing.json",
			expectedError: "failed with status (404)",
		},
		{
			name:          "client timeout",
			path:          "/slow.json",
			timeout:       10 * time.Millisecond,
			expectedError: "Client.Timeout",
		},
	}

	defaultTimeout := deliveryhttp.DefaultClient.Timeout
	defer func() { deliveryhttp.DefaultClient.Timeout = defaultTimeout }()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deliveryhttp.DefaultClient.Timeout = defaultTimeout
			if tt.timeout > 0 {
				deliveryhttp.DefaultClient.Timeout = tt.timeout
			}

			body, err := deliveryhttp.GetOK(context.Background(), server.URL+tt.path)
			if tt.expectedError != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectedError)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.expectedBody, string(body))
		})
	}
}

func TestGetJSON(t *testing.T) {
	server := newRegistryServer()
	defer server.Close()

	var pairs map[string]map[string][]string
	err := deliveryhttp.GetJSON(context.Background(), server.URL+"/pairs.json", &pairs)
	require.NoError(t, err)
	require.Equal(t, []string{"uluna", "uusd"}, pairs["mainnet"]["terra1pair"])

	err = deliveryhttp.GetJSON(context.Background(), server.URL+"/broken.json", &pairs)
	require.ErrorContains(t, err, "failed to unmarshal response")

	err = deliveryhttp.GetJSON(context.Background(), server.URL+"/missing.json", &pairs)
	require.ErrorContains(t, err, "404")
}
