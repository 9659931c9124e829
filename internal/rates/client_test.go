package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/pricewise/internal/domain"
	"github.com/davidbz/pricewise/internal/rates"
)

const (
	symbolsBody = `{"success": true, "symbols": {"USD": "United States Dollar", "EUR": "Euro", "JPY": "Japanese Yen"}}`
	latestBody  = `{"success": true, "base": "USD", "rates": {"USD": 1, "EUR": 0.923456789, "JPY": 151.37}}`
)

func newServer(t *testing.T, symbols, latest string, status int) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch r.URL.Path {
		case "/symbols":
			_, _ = w.Write([]byte(symbols))
		case "/latest":
			if r.URL.Query().Get("base") != "USD" {
				_, _ = w.Write([]byte(`{}`))
				return
			}
			_, _ = w.Write([]byte(latest))
		}
	}))
	t.Cleanup(server.Close)

	return server, &calls
}

func TestClient_Fetch(t *testing.T) {
	t.Run("should parse symbols and rates exactly", func(t *testing.T) {
		server, calls := newServer(t, symbolsBody, latestBody, http.StatusOK)
		client := rates.NewClient(rates.Config{APIKey: "test-key", BaseURL: server.URL + "/", Timeout: 5})

		result, err := client.Fetch(context.Background())
		require.NoError(t, err)
		require.Equal(t, int32(2), calls.Load())
		require.Equal(t, domain.RateSourceLive, result.Source)
		require.Equal(t, domain.CurrencyList{"EUR", "JPY", "USD"}, result.Currencies)
		require.True(t, result.RateFor("EUR").Equal(decimal.RequireFromString("0.923456789")))
		require.True(t, result.RateFor("JPY").Equal(decimal.RequireFromString("151.37")))
	})

	tests := []struct {
		name    string
		apiKey  string
		symbols string
		latest  string
		status  int
	}{
		{name: "missing api key", apiKey: "", symbols: symbolsBody, latest: latestBody, status: http.StatusOK},
		{name: "wrong api key", apiKey: "other", symbols: symbolsBody, latest: latestBody, status: http.StatusOK},
		{name: "server error", apiKey: "test-key", symbols: symbolsBody, latest: latestBody, status: http.StatusInternalServerError},
		{name: "missing symbols", apiKey: "test-key", symbols: `{"success": false}`, latest: latestBody, status: http.StatusOK},
		{name: "missing rates", apiKey: "test-key", symbols: symbolsBody, latest: `{"success": false}`, status: http.StatusOK},
		{name: "invalid json", apiKey: "test-key", symbols: `{"symbols":`, latest: latestBody, status: http.StatusOK},
		{name: "non numeric rate", apiKey: "test-key", symbols: symbolsBody, latest: `{"rates": {"EUR": "abc"}}`, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run("should fail on "+tt.name, func(t *testing.T) {
			server, _ := newServer(t, tt.symbols, tt.latest, tt.status)
			client := rates.NewClient(rates.Config{APIKey: tt.apiKey, BaseURL: server.URL, Timeout: 5})

			_, err := client.Fetch(context.Background())
			require.ErrorIs(t, err, rates.ErrFetch)
		})
	}
}
