package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, input data locations and external provider endpoints.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	OPERATIONS_FILE=./data/operations.xlsx
//	USER_SETTINGS_FILE=./user_settings.json
//	CBR_RATES_URL=https://www.cbr.ru/scripts/XML_daily.asp
//	STOCKS_API_URL=https://www.alphavantage.co/query
//	STOCKS_API_KEY=demo
//	PROVIDER_TIMEOUT_SECONDS=10
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Data      DataConfig      // Input file locations
	Providers ProvidersConfig // External rate/quote provider settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// DataConfig locates the input files the service reads per request.
//
// Fields:
//   - OperationsFile: path to the xlsx workbook with bank operations.
//   - UserSettingsFile: path to the JSON file with user currency/stock lists.
type DataConfig struct {
	OperationsFile   string
	UserSettingsFile string
}

// ProvidersConfig defines endpoints and credentials for the external
// exchange-rate and stock-quote services.
//
// Fields:
//   - RatesURL: CBR daily rates XML endpoint.
//   - StocksURL: AlphaVantage query endpoint.
//   - StocksAPIKey: AlphaVantage API key (optional, "demo" works for testing).
//   - Timeout: per-request timeout applied to provider HTTP calls.
type ProvidersConfig struct {
	RatesURL     string
	StocksURL    string
	StocksAPIKey string
	Timeout      time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("OPERATIONS_FILE", "./data/operations.xlsx")
	viper.SetDefault("USER_SETTINGS_FILE", "./user_settings.json")

	viper.SetDefault("CBR_RATES_URL", "https://www.cbr.ru/scripts/XML_daily.asp")
	viper.SetDefault("STOCKS_API_URL", "https://www.alphavantage.co/query")
	viper.SetDefault("STOCKS_API_KEY", "")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Data: DataConfig{
			OperationsFile:   viper.GetString("OPERATIONS_FILE"),
			UserSettingsFile: viper.GetString("USER_SETTINGS_FILE"),
		},
		Providers: ProvidersConfig{
			RatesURL:     viper.GetString("CBR_RATES_URL"),
			StocksURL:    viper.GetString("STOCKS_API_URL"),
			StocksAPIKey: viper.GetString("STOCKS_API_KEY"),
			Timeout:      time.Duration(viper.GetInt("PROVIDER_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
//
// STOCKS_API_KEY is deliberately not required: without it the quote provider
// degrades to null prices instead of blocking startup.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Data.OperationsFile == "" {
		missing = append(missing, "OPERATIONS_FILE")
	}
	if AppConfig.Data.UserSettingsFile == "" {
		missing = append(missing, "USER_SETTINGS_FILE")
	}
	if AppConfig.Providers.RatesURL == "" {
		missing = append(missing, "CBR_RATES_URL")
	}
	if AppConfig.Providers.StocksURL == "" {
		missing = append(missing, "STOCKS_API_URL")
	}
	if AppConfig.Providers.Timeout <= 0 {
		missing = append(missing, "PROVIDER_TIMEOUT_SECONDS")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
