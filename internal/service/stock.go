// Package service exposes the stock data sources behind one interface the
// HTTP layer depends on.
package service

import (
	"context"

	"stockpulse/internal/catalog"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/polygon"
	"stockpulse/internal/sampler"
	"stockpulse/internal/stockfile"
)

// StockService defines the operations served over HTTP. Handlers are
// stateless and each call is independent; implementations hold no mutable
// state across requests.
type StockService interface {
	// LocalStock reads a symbol's records from the local data folder within
	// the closed interval [startDate, endDate] (yyyyMMdd strings).
	LocalStock(ctx context.Context, symbol, startDate, endDate string) (models.Stock, error)

	// RemoteStock proxies the same shape of data from the remote provider.
	// Dates use YYYY-MM-DD strings; interval is one of 1day/1week/1month.
	RemoteStock(ctx context.Context, symbol, interval, from, to string) (models.Stock, error)

	// RandomStock returns a randomly chosen symbol with a random window of
	// the requested length in whole months.
	RandomStock(ctx context.Context, months int) (models.Stock, error)

	// Symbols lists every locally available symbol with its date coverage.
	Symbols(ctx context.Context) ([]models.SymbolInfo, error)
}

type stockService struct {
	reader  *stockfile.Reader
	remote  *polygon.Client
	sampler *sampler.Sampler
	catalog *catalog.Catalog
}

// NewStockService wires the concrete data sources into a StockService.
func NewStockService(reader *stockfile.Reader, remote *polygon.Client, smp *sampler.Sampler, cat *catalog.Catalog) StockService {
	return &stockService{reader: reader, remote: remote, sampler: smp, catalog: cat}
}

func (s *stockService) LocalStock(_ context.Context, symbol, startDate, endDate string) (models.Stock, error) {
	return s.reader.GetStock(symbol, startDate, endDate)
}

func (s *stockService) RemoteStock(ctx context.Context, symbol, interval, from, to string) (models.Stock, error) {
	return s.remote.GetAggregates(ctx, symbol, interval, from, to)
}

func (s *stockService) RandomStock(_ context.Context, months int) (models.Stock, error) {
	return s.sampler.Sample(months)
}

func (s *stockService) Symbols(ctx context.Context) ([]models.SymbolInfo, error) {
	return s.catalog.Scan(ctx)
}
