package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const cbrFixture = `<?xml version="1.0" encoding="UTF-8"?>
<ValCurs Date="19.10.2024" name="Foreign Currency Market">
	<Valute ID="R01235">
		<CharCode>USD</CharCode>
		<Value>73,4567</Value>
	</Valute>
	<Valute ID="R01239">
		<CharCode>EUR</CharCode>
		<Value>85,1234</Value>
	</Valute>
	<Valute ID="R01035">
		<CharCode>GBP</CharCode>
		<Value>not-a-number</Value>
	</Valute>
</ValCurs>`

func TestCBRClient_FetchRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(cbrFixture))
	}))
	defer srv.Close()

	c := NewCBRClient(srv.URL, time.Second)
	rates, err := c.FetchRates(context.Background(), []string{"USD", "EUR"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rates) != 2 {
		t.Fatalf("expected 2 rates, got %+v", rates)
	}
	if rates[0].Currency != "USD" || rates[0].Rate != 73.4567 {
		t.Fatalf("usd rate: %+v", rates[0])
	}
	if rates[1].Currency != "EUR" || rates[1].Rate != 85.1234 {
		t.Fatalf("eur rate: %+v", rates[1])
	}
}

func TestCBRClient_UnknownSymbolsOmitted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(cbrFixture))
	}))
	defer srv.Close()

	c := NewCBRClient(srv.URL, time.Second)
	rates, err := c.FetchRates(context.Background(), []string{"USD", "XYZ", "GBP"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// XYZ is not in the feed; GBP has an unparsable value and is skipped too.
	if len(rates) != 1 || rates[0].Currency != "USD" {
		t.Fatalf("unexpected rates: %+v", rates)
	}
}

func TestCBRClient_Failures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed xml",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<ValCurs><Valute>"))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewCBRClient(srv.URL, time.Second)
			if _, err := c.FetchRates(context.Background(), []string{"USD"}); !errors.Is(err, ErrProviderUnavailable) {
				t.Fatalf("expected ErrProviderUnavailable, got %v", err)
			}
		})
	}
}

func TestCBRClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := NewCBRClient(srv.URL, time.Second)
	if _, err := c.FetchRates(context.Background(), []string{"USD"}); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
