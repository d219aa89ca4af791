package main

//
//  @title           stockpulse API
//  @version         1.0
//  @description     Stock OHLCV time-series service over local files and Polygon.
//  @termsOfService  https://github.com/stockpulse/stockpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/stockpulse/stockpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        stocks
//  @tag.description Endpoints for querying OHLCV time series
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockpulse/config"
	_ "stockpulse/docs" // swagger docs
	"stockpulse/internal/app"
	"stockpulse/internal/catalog"
	"stockpulse/internal/logger"
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

// gracefulShutdown gracefully terminates the HTTP server and cleans up
// resources when an OS interrupt signal (SIGINT, SIGTERM) is received.
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

// main is the entry point of the stockpulse application.
//
// Modes (selected via --mode flag):
//   - api:  Starts the REST API serving local and proxied OHLCV data.
//   - scan: Validates the data folder offline, logging each symbol's coverage.
//
// Flags:
//   - --mode: Execution mode ("api" or "scan"). Default: "api".
//   - --dir:  Directory with per-symbol .us.txt files. Defaults to config (DATA_DIR).
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or scan")
	dir := flag.String("dir", config.AppConfig.Data.Dir, "Directory with per-symbol data files")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "scan":
		// Offline validation of the data folder
		logger.L().Info().Str("dir", *dir).Msg("scanning data folder")

		infos, err := catalog.New(*dir).Scan(ctx)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("scan failed")
		}
		for _, info := range infos {
			logger.L().Info().
				Str("symbol", info.Symbol).
				Int("data_points", info.DataPoints).
				Str("first_date", info.FirstDate.Format("2006-01-02")).
				Str("last_date", info.LastDate.Format("2006-01-02")).
				Msg("symbol")
		}
		logger.L().Info().Int("symbols", len(infos)).Msg("scan completed successfully")

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		config.AppConfig.Data.Dir = *dir

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
