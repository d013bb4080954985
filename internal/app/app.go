package app

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/finpulse/finpulse/config"
	"github.com/finpulse/finpulse/internal/api"
	"github.com/finpulse/finpulse/internal/ingestion"
	"github.com/finpulse/finpulse/internal/providers"
	"github.com/finpulse/finpulse/internal/service"
)

// NewService builds the report service with its real adapters: the xlsx
// table source, the user settings file and the CBR/AlphaVantage clients.
//
// Shared between API mode and the CLI report mode.
func NewService(cfg config.Config) service.ReportService {
	source := ingestion.NewXLSXSource(cfg.Data.OperationsFile)
	settings := providers.NewSettingsFile(cfg.Data.UserSettingsFile)
	rates := providers.NewCBRClient(cfg.Providers.RatesURL, cfg.Providers.Timeout)
	quotes := providers.NewAlphaVantageClient(cfg.Providers.StocksURL, cfg.Providers.StocksAPIKey, cfg.Providers.Timeout)
	return service.NewReportService(source, settings, rates, quotes)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the report service with its outbound adapters.
//   - Creates the HTTP handler layer to handle requests.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes (readiness checks that the
//     operations workbook is reachable).
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Initialize service layer (business logic)
	svc := NewService(cfg)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(func() error {
		_, err := os.Stat(cfg.Data.OperationsFile)
		return err
	})
	healthHandler.Register(router)

	// No pooled resources to release; the hook stays for symmetry with
	// startup and future adapters.
	cleanup := func() {}

	return router, cleanup, nil
}
