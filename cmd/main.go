package main

//
//  @title           finpulse API
//  @version         1.0
//  @description     Bank operations reporting service.
//  @termsOfService  https://github.com/finpulse/finpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/finpulse/finpulse
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        reports
//  @tag.description Main page, category and search reports
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finpulse/finpulse/config"
	_ "github.com/finpulse/finpulse/docs" // swagger docs
	"github.com/finpulse/finpulse/internal/app"
	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
	"github.com/finpulse/finpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runReport composes one main page for the given reference timestamp and
// prints it as JSON. Any composition failure is converted to the generic
// error payload; raw internal errors never reach stdout.
func runReport(ctx context.Context, svc service.ReportService, datetime string) int {
	page, err := svc.MainPage(ctx, datetime)
	if err != nil {
		logger.L().Error().Err(err).Msg("page composition failed")
		fmt.Printf("{\"error\": %q}\n", service.GenericErrorMessage)
		return 1
	}

	out, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		logger.L().Error().Err(err).Msg("page serialization failed")
		fmt.Printf("{\"error\": %q}\n", service.GenericErrorMessage)
		return 1
	}

	fmt.Println(string(out))
	return 0
}

// main is the entry point of the finpulse application.
//
// Modes (selected via --mode flag):
//   - report: Composes the main page for --datetime and prints it as JSON.
//   - api:    Starts the REST API exposing the reporting endpoints.
//
// Flags:
//   - --mode:     Execution mode ("report" or "api"). Default: "report".
//   - --datetime: Reference timestamp "YYYY-MM-DD HH:MM:SS" for report mode. Default: now.
//   - --port:     Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "report", "Mode: report or api")
	datetime := flag.String("datetime", "", "Reference timestamp (YYYY-MM-DD HH:MM:SS) for report mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "report":
		// Report mode: compose one page and print it
		logger.L().Info().Msg("running report")
		ref := *datetime
		if ref == "" {
			ref = time.Now().Format(models.PageDateTimeLayout)
		}

		svc := app.NewService(config.AppConfig)
		os.Exit(runReport(ctx, svc, ref))

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
