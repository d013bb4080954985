package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/finpulse/finpulse/internal/logger"
)

// AlphaVantageClient fetches current stock prices via the AlphaVantage
// GLOBAL_QUOTE function, one request per symbol.
type AlphaVantageClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewAlphaVantageClient constructs a quote client. timeout bounds each
// per-symbol request.
func NewAlphaVantageClient(baseURL, apiKey string, timeout time.Duration) *AlphaVantageClient {
	return &AlphaVantageClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// globalQuote mirrors the AlphaVantage GLOBAL_QUOTE payload. The price comes
// back as a string.
type globalQuote struct {
	Quote struct {
		Price string `json:"05. price"`
	} `json:"Global Quote"`
}

// FetchQuotes returns a price per requested symbol. A symbol whose lookup
// fails (transport error, non-200, missing or unparsable quote) maps to nil
// rather than being omitted, so the response shape stays stable. The only
// returned error is context cancellation.
func (c *AlphaVantageClient) FetchQuotes(ctx context.Context, symbols []string) (map[string]*float64, error) {
	out := make(map[string]*float64, len(symbols))
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[symbol] = c.quoteFor(ctx, symbol)
	}
	return out, nil
}

func (c *AlphaVantageClient) quoteFor(ctx context.Context, symbol string) *float64 {
	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		logger.L().Error().Str("symbol", symbol).Err(err).Msg("quote request build failed")
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.L().Error().Str("symbol", symbol).Err(err).Msg("quote request failed")
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		logger.L().Error().Str("symbol", symbol).Int("status", resp.StatusCode).Msg("quote request rejected")
		return nil
	}

	var payload globalQuote
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.L().Error().Str("symbol", symbol).Err(err).Msg("quote payload malformed")
		return nil
	}
	if payload.Quote.Price == "" {
		// AlphaVantage answers 200 with an empty object for unknown symbols.
		return nil
	}

	price, err := strconv.ParseFloat(payload.Quote.Price, 64)
	if err != nil {
		logger.L().Error().Str("symbol", symbol).Str("price", payload.Quote.Price).Msg("quote price unparsable")
		return nil
	}
	return &price
}
