package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment
// variables or a .env file.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	DATA_DIR=./data/stockdata
//	POLYGON_BASE_URL=https://api.polygon.io
//	POLYGON_API_KEY=demo
//	POLYGON_TIMEOUT_SECONDS=10
type Config struct {
	Server  ServerConfig  // HTTP server configuration
	Data    DataConfig    // Local stock data folder
	Polygon PolygonConfig // Remote market data provider
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// DataConfig locates the folder holding one text file per symbol.
type DataConfig struct {
	Dir string
}

// PolygonConfig defines connection details for the Polygon REST API.
//
// Fields:
//   - BaseURL: API root (default https://api.polygon.io).
//   - APIKey: key sent with every request; the "demo" fallback keeps the
//     service runnable without external configuration.
//   - Timeout: overall timeout for one outbound request.
type PolygonConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the application
// instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
func LoadConfig() {
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("DATA_DIR", "./data/stockdata")

	viper.SetDefault("POLYGON_BASE_URL", "https://api.polygon.io")
	viper.SetDefault("POLYGON_API_KEY", "demo")
	viper.SetDefault("POLYGON_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Data: DataConfig{
			Dir: viper.GetString("DATA_DIR"),
		},
		Polygon: PolygonConfig{
			BaseURL: viper.GetString("POLYGON_BASE_URL"),
			APIKey:  viper.GetString("POLYGON_API_KEY"),
			Timeout: time.Duration(viper.GetInt("POLYGON_TIMEOUT_SECONDS")) * time.Second,
		},
	}

	validateConfig()
}

// validateConfig ensures required variables are present and terminates the
// application if they are missing, avoiding unexpected runtime failures due
// to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Data.Dir == "" {
		missing = append(missing, "DATA_DIR")
	}
	if AppConfig.Polygon.BaseURL == "" {
		missing = append(missing, "POLYGON_BASE_URL")
	}
	if AppConfig.Polygon.APIKey == "" {
		missing = append(missing, "POLYGON_API_KEY")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
