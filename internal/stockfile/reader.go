// Package stockfile resolves and parses local OHLCV time-series files.
//
// Each symbol has one text file named "<symbol-lowercase>.us.txt" inside the
// configured data folder. Files are read per request; nothing is cached and
// no cross-request state exists, so concurrent reads need no coordination.
package stockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/domain/models"
)

// DefaultDataDir is used when no data folder is configured.
const DefaultDataDir = "./data/stockdata"

// Reader serves OHLCV queries from the local data folder.
type Reader struct {
	dir string
}

// NewReader constructs a Reader over the given data folder, falling back to
// DefaultDataDir when dir is empty.
func NewReader(dir string) *Reader {
	if dir == "" {
		dir = DefaultDataDir
	}
	return &Reader{dir: dir}
}

// Dir returns the data folder the reader operates on.
func (r *Reader) Dir() string { return r.dir }

// FilePath resolves a symbol to its data file path.
func (r *Reader) FilePath(symbol string) string {
	return filepath.Join(r.dir, strings.ToLower(symbol)+FileSuffix)
}

// GetStock returns the symbol's records inside the closed interval
// [startDate, endDate]. Both dates use the 8-digit yyyyMMdd format.
//
// Failure modes:
//   - empty symbol or date string: domain.ErrInvalidRequest
//   - missing data file, or no rows in range: domain.ErrNotFound
//   - malformed date string: the raw parse error (surfaced as an internal
//     failure, not a bad request; present-but-malformed dates are treated
//     differently from missing ones)
func (r *Reader) GetStock(symbol, startDate, endDate string) (models.Stock, error) {
	if symbol == "" || startDate == "" || endDate == "" {
		return models.Stock{}, fmt.Errorf("%w: symbol, startDate and endDate are required", domain.ErrInvalidRequest)
	}

	path := r.FilePath(symbol)
	if _, err := os.Stat(path); err != nil {
		return models.Stock{}, fmt.Errorf("%w: no data file for symbol %q", domain.ErrNotFound, symbol)
	}

	from, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return models.Stock{}, fmt.Errorf("parse startDate: %w", err)
	}
	to, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return models.Stock{}, fmt.Errorf("parse endDate: %w", err)
	}

	records, err := ParseRange(path, from, to)
	if err != nil {
		return models.Stock{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return models.Stock{}, fmt.Errorf("%w: no data in range", domain.ErrNotFound)
	}

	return models.Stock{
		Symbol:     models.NormalizeSymbol(symbol),
		StartDate:  from,
		EndDate:    to,
		DataPoints: len(records),
		Data:       records,
	}, nil
}
