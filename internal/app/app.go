package app

import (
	"os"

	"github.com/gin-gonic/gin"

	"stockpulse/config"
	"stockpulse/internal/api"
	"stockpulse/internal/catalog"
	"stockpulse/internal/polygon"
	"stockpulse/internal/sampler"
	"stockpulse/internal/service"
	"stockpulse/internal/stockfile"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Builds the local file reader over the configured data folder.
//   - Builds the Polygon client for the remote proxy endpoint.
//   - Builds the random sampler (process-wide random source) and catalog.
//   - Wires them into the service and HTTP handler layers.
//   - Registers health and readiness probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	reader := stockfile.NewReader(cfg.Data.Dir)

	remote := polygon.NewClient(polygon.Config{
		BaseURL: cfg.Polygon.BaseURL,
		APIKey:  cfg.Polygon.APIKey,
		Timeout: cfg.Polygon.Timeout,
	})

	smp := sampler.New(reader, sampler.SystemRand())
	cat := catalog.New(cfg.Data.Dir)

	svc := service.NewStockService(reader, remote, smp, cat)

	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Readiness depends only on the data folder being reachable; the service
	// holds no connections that need closing.
	healthHandler := api.NewHealthHandler(func() error {
		_, err := os.Stat(reader.Dir())
		return err
	})
	healthHandler.Register(router)

	cleanup := func() {}

	return router, cleanup, nil
}
