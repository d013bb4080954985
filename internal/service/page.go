package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
	"github.com/finpulse/finpulse/internal/report"
)

// GenericErrorMessage is the payload text callers above the composer return
// when page composition fails. Raw internal errors never cross that boundary.
const GenericErrorMessage = "Произошла ошибка."

// Ports for outbound adapters. The composer only sees these interfaces so the
// reporting logic stays unit-testable without files or network access.
type (
	// TableSource yields a fresh snapshot of the transaction table.
	TableSource interface {
		Operations(ctx context.Context) ([]models.Transaction, error)
	}

	// SettingsLoader returns the user's symbol lists, or nil when no usable
	// settings exist.
	SettingsLoader interface {
		Load() *models.UserSettings
	}

	// RateProvider resolves exchange rates for the given currency codes,
	// omitting codes it cannot resolve.
	RateProvider interface {
		FetchRates(ctx context.Context, symbols []string) ([]models.CurrencyRate, error)
	}

	// QuoteProvider resolves stock prices for the given symbols, mapping
	// unresolved symbols to nil.
	QuoteProvider interface {
		FetchQuotes(ctx context.Context, symbols []string) (map[string]*float64, error)
	}
)

// ReportService defines the business operations exposed by the API and CLI.
type ReportService interface {
	// MainPage composes the full page response for a reference timestamp in
	// "2006-01-02 15:04:05" layout.
	MainPage(ctx context.Context, datetime string) (*models.Page, error)

	// SpendingByCategory loads the table and filters it by exact category
	// within the trailing 90-day window ending at the reference date.
	SpendingByCategory(ctx context.Context, category, date string) ([]models.Transaction, error)

	// Search loads the table and runs a case-insensitive substring search
	// over description and category.
	Search(ctx context.Context, query string) ([]models.Transaction, error)
}

type reportService struct {
	source   TableSource
	settings SettingsLoader
	rates    RateProvider
	quotes   QuoteProvider
}

// NewReportService wires the composer with its outbound ports.
func NewReportService(source TableSource, settings SettingsLoader, rates RateProvider, quotes QuoteProvider) ReportService {
	return &reportService{source: source, settings: settings, rates: rates, quotes: quotes}
}

// MainPage orchestrates one page composition:
//
//  1. Parse the reference timestamp (report.ErrInvalidDate on failure).
//  2. Load the transaction snapshot (ingestion.ErrSourceUnavailable wrapped).
//  3. Compute greeting, card summaries and top transactions.
//  4. Fetch currency rates and stock quotes concurrently; either provider
//     failing, or absent user settings, degrades only its own field to null.
func (s *reportService) MainPage(ctx context.Context, datetime string) (*models.Page, error) {
	ts, err := time.Parse(models.PageDateTimeLayout, datetime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a %s timestamp", report.ErrInvalidDate, datetime, models.PageDateTimeLayout)
	}

	txs, err := s.source.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}

	page := &models.Page{
		Greeting:        report.Greeting(ts.Hour()),
		Cards:           report.CardSummaries(txs),
		TopTransactions: report.TopTransactions(txs),
	}

	settings := s.settings.Load()
	if settings == nil {
		logger.L().Warn().Msg("no user settings, skipping page enrichment")
		return page, nil
	}

	// The two lookups are independent: run them concurrently and let each
	// failure degrade only its own field. The closures never return an error,
	// so one provider cannot cancel the other.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if len(settings.UserCurrencies) == 0 {
			return nil
		}
		rates, err := s.rates.FetchRates(gctx, settings.UserCurrencies)
		if err != nil {
			logger.L().Warn().Err(err).Msg("currency rates unavailable")
			return nil
		}
		page.CurrencyRates = rates
		return nil
	})

	g.Go(func() error {
		if len(settings.UserStocks) == 0 {
			return nil
		}
		quotes, err := s.quotes.FetchQuotes(gctx, settings.UserStocks)
		if err != nil {
			logger.L().Warn().Err(err).Msg("stock quotes unavailable")
			return nil
		}
		page.StockPrices = quotes
		return nil
	})

	_ = g.Wait()
	return page, nil
}

func (s *reportService) SpendingByCategory(ctx context.Context, category, date string) ([]models.Transaction, error) {
	txs, err := s.source.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}
	return report.SpendingByCategory(txs, category, date)
}

func (s *reportService) Search(ctx context.Context, query string) ([]models.Transaction, error) {
	txs, err := s.source.Operations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load operations: %w", err)
	}
	return report.Search(txs, query), nil
}
