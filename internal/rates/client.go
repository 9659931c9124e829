// Package rates loads the exchange-rate snapshot used for currency conversion.
package rates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/davidbz/pricewise/internal/domain"
)

const maxResponseBytes = 1 << 20

// ErrFetch reports a failed exchange-rate fetch. It never leaves Loader.Load.
var ErrFetch = errors.New("exchange rate fetch failed")

// Client wraps the HTTP client for the exchange-rate API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new exchange-rate HTTP client.
func NewClient(config Config) *Client {
	return &Client{
		apiKey:  config.APIKey,
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: time.Duration(config.Timeout) * time.Second,
		},
	}
}

// Fetch requests the supported symbols and the latest USD rates concurrently.
func (c *Client) Fetch(ctx context.Context) (*domain.ExchangeRates, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: API key is not configured", ErrFetch)
	}

	var (
		currencies domain.CurrencyList
		table      domain.RateTable
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		body, err := c.get(groupCtx, "/symbols", nil)
		if err != nil {
			return err
		}
		currencies, err = parseSymbols(body)
		return err
	})

	group.Go(func() error {
		body, err := c.get(groupCtx, "/latest", url.Values{"base": {domain.BaseCurrency}})
		if err != nil {
			return err
		}
		table, err = parseRates(body)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &domain.ExchangeRates{
		Rates:      table,
		Currencies: currencies,
		Source:     domain.RateSourceLive,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetch, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request %s: %w", ErrFetch, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrFetch, path, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned status %d: %s", ErrFetch, path, resp.StatusCode, string(body))
	}

	return body, nil
}

func parseSymbols(body []byte) (domain.CurrencyList, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: symbols response is not valid JSON", ErrFetch)
	}

	symbols := gjson.GetBytes(body, "symbols")
	if !symbols.IsObject() {
		return nil, fmt.Errorf("%w: symbols response has no symbols", ErrFetch)
	}

	var codes []string
	symbols.ForEach(func(key, _ gjson.Result) bool {
		codes = append(codes, strings.ToUpper(key.String()))
		return true
	})

	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: symbols response is empty", ErrFetch)
	}

	return domain.NewCurrencyList(codes), nil
}

func parseRates(body []byte) (domain.RateTable, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: latest response is not valid JSON", ErrFetch)
	}

	rates := gjson.GetBytes(body, "rates")
	if !rates.IsObject() {
		return nil, fmt.Errorf("%w: latest response has no rates", ErrFetch)
	}

	table := make(domain.RateTable)
	var parseErr error
	rates.ForEach(func(key, value gjson.Result) bool {
		// Raw keeps the provider's digits; going through float64 would not.
		rate, err := decimal.NewFromString(value.Raw)
		if err != nil {
			parseErr = fmt.Errorf("%w: rate for %s: %w", ErrFetch, key.String(), err)
			return false
		}
		table[strings.ToUpper(key.String())] = rate
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if _, ok := table[domain.BaseCurrency]; !ok {
		table[domain.BaseCurrency] = decimal.NewFromInt(1)
	}

	return table, nil
}
