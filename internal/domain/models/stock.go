package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Record represents one OHLCV row of a stock time series.
// Prices and volume are decimals to avoid binary-float rounding artifacts
// in financial values. Time carries the calendar date only (UTC midnight).
//
// No cross-field validation (open <= high etc.) is performed: source data is
// trusted once parsed, only unparseable rows are rejected.
type Record struct {
	Time   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume decimal.Decimal
}

// Stock is a resolved time-series query result: a symbol, the date window it
// covers, and the records in source order. Built fresh per request and
// discarded after serialization.
type Stock struct {
	Symbol     string
	StartDate  time.Time
	EndDate    time.Time
	DataPoints int
	Data       []Record
}

// SymbolInfo describes the data coverage of one symbol in the data folder.
type SymbolInfo struct {
	Symbol     string
	DataPoints int
	FirstDate  time.Time
	LastDate   time.Time
}

// NormalizeSymbol uppercases a ticker and strips the ".US" market suffix
// used in the data file names.
func NormalizeSymbol(symbol string) string {
	return strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(symbol)), ".US")
}
