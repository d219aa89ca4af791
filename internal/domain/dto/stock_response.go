package dto

import (
	"github.com/shopspring/decimal"

	"stockpulse/internal/domain/models"
)

// Price and volume fields are emitted as bare JSON numbers, matching the
// numeric shape consumers of OHLCV feeds expect.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

const dateLayout = "2006-01-02"

// OHLCVResponse is one serialized OHLCV record.
type OHLCVResponse struct {
	Time   string          `json:"time" example:"2025-01-15"`
	Open   decimal.Decimal `json:"open" example:"100"`
	High   decimal.Decimal `json:"high" example:"105"`
	Low    decimal.Decimal `json:"low" example:"99"`
	Close  decimal.Decimal `json:"close" example:"103"`
	Volume decimal.Decimal `json:"volume" example:"1000"`
}

// StockResponse represents the JSON structure returned by the stock query
// endpoints. Fields match the API contract and may differ from internal
// domain models, keeping the API surface decoupled from business logic.
type StockResponse struct {
	Symbol     string          `json:"symbol" example:"AAPL"`
	StartDate  string          `json:"startDate" example:"2025-01-01"`
	EndDate    string          `json:"endDate" example:"2025-01-31"`
	DataPoints int             `json:"dataPoints" example:"20"`
	Data       []OHLCVResponse `json:"data"`
}

// NewStockResponse converts a domain Stock into its API representation,
// formatting all dates as YYYY-MM-DD.
func NewStockResponse(s models.Stock) StockResponse {
	data := make([]OHLCVResponse, 0, len(s.Data))
	for _, rec := range s.Data {
		data = append(data, OHLCVResponse{
			Time:   rec.Time.UTC().Format(dateLayout),
			Open:   rec.Open,
			High:   rec.High,
			Low:    rec.Low,
			Close:  rec.Close,
			Volume: rec.Volume,
		})
	}
	return StockResponse{
		Symbol:     s.Symbol,
		StartDate:  s.StartDate.UTC().Format(dateLayout),
		EndDate:    s.EndDate.UTC().Format(dateLayout),
		DataPoints: s.DataPoints,
		Data:       data,
	}
}

// SymbolInfoResponse describes the coverage of one locally available symbol.
type SymbolInfoResponse struct {
	Symbol     string `json:"symbol" example:"AAPL"`
	DataPoints int    `json:"dataPoints" example:"5031"`
	FirstDate  string `json:"firstDate" example:"1984-09-07"`
	LastDate   string `json:"lastDate" example:"2017-11-10"`
}

// NewSymbolInfoResponse converts a domain SymbolInfo into its API shape.
func NewSymbolInfoResponse(info models.SymbolInfo) SymbolInfoResponse {
	return SymbolInfoResponse{
		Symbol:     info.Symbol,
		DataPoints: info.DataPoints,
		FirstDate:  info.FirstDate.UTC().Format(dateLayout),
		LastDate:   info.LastDate.UTC().Format(dateLayout),
	}
}
