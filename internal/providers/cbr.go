package providers

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
)

// CBRClient fetches daily exchange rates from the Central Bank of Russia
// XML_daily.asp endpoint.
type CBRClient struct {
	url        string
	httpClient *http.Client
}

// NewCBRClient constructs a client for the given endpoint. timeout bounds
// each request.
func NewCBRClient(url string, timeout time.Duration) *CBRClient {
	return &CBRClient{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// valCurs mirrors the CBR daily rates document. Values use a comma as the
// decimal separator and the feed is served in windows-1251.
type valCurs struct {
	Valutes []valute `xml:"Valute"`
}

type valute struct {
	CharCode string `xml:"CharCode"`
	Value    string `xml:"Value"`
}

// FetchRates returns the rates for the requested currency codes in their
// given order. Codes the feed does not carry are silently omitted. Any
// transport, status or decode failure returns a wrapped
// ErrProviderUnavailable.
func (c *CBRClient) FetchRates(ctx context.Context, symbols []string) ([]models.CurrencyRate, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: cbr returned status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	dec := xml.NewDecoder(resp.Body)
	dec.CharsetReader = charset.NewReaderLabel

	var doc valCurs
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode rates: %v", ErrProviderUnavailable, err)
	}

	rates := make(map[string]float64, len(doc.Valutes))
	for _, v := range doc.Valutes {
		val, err := strconv.ParseFloat(strings.ReplaceAll(v.Value, ",", "."), 64)
		if err != nil {
			logger.L().Warn().Str("code", v.CharCode).Str("value", v.Value).Msg("skipping unparsable rate")
			continue
		}
		rates[v.CharCode] = val
	}

	out := make([]models.CurrencyRate, 0, len(symbols))
	for _, code := range symbols {
		if rate, ok := rates[code]; ok {
			out = append(out, models.CurrencyRate{Currency: code, Rate: rate})
		}
	}
	return out, nil
}
