package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stockpulse/internal/domain"
	"stockpulse/internal/domain/dto"
	"stockpulse/internal/middleware"
	"stockpulse/internal/service"
)

// QueryDefaults enumerates every optional query parameter and the literal
// applied when it is absent. A parameter that is present but empty is not
// defaulted; it fails validation downstream.
type QueryDefaults struct {
	Symbol       string
	StartDate    string
	EndDate      string
	RemoteSymbol string
	Interval     string
	From         string
	To           string
	Months       int
}

// Defaults are the documented endpoint defaults.
var Defaults = QueryDefaults{
	Symbol:       "aapl",
	StartDate:    "20200213",
	EndDate:      "20200221",
	RemoteSymbol: "AAPL",
	Interval:     "1day",
	From:         "2025-01-01",
	To:           "2025-01-31",
	Months:       6,
}

// Handler provides the HTTP handlers for the stock endpoints.
//
// Responsibilities:
//   - Apply documented defaults to optional query parameters
//   - Interact with the service layer
//   - Translate service results and errors into JSON responses
type Handler struct {
	svc service.StockService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.StockService) *Handler {
	return &Handler{svc: svc}
}

// GetStocks handles GET /api/stocks requests.
//
// GetStocks godoc
// @Summary      Query a symbol's OHLCV data from local files
// @Description  Returns records of the given symbol whose dates lie inside [startDate, endDate], both inclusive
// @Tags         stocks
// @Produce      json
// @Param        symbol     query     string  false  "Ticker symbol"          default(aapl)
// @Param        startDate  query     string  false  "Start date (yyyyMMdd)"  default(20200213)
// @Param        endDate    query     string  false  "End date (yyyyMMdd)"    default(20200221)
// @Success      200        {object}  dto.StockResponse  "Success"
// @Failure      400        {object}  dto.ErrorResponse  "Missing parameter"
// @Failure      404        {object}  dto.ErrorResponse  "Unknown symbol or empty range"
// @Failure      500        {object}  dto.ErrorResponse  "Malformed date or internal error"
// @Router       /api/stocks [get]
func (h *Handler) GetStocks(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", Defaults.Symbol)
	startDate := c.DefaultQuery("startDate", Defaults.StartDate)
	endDate := c.DefaultQuery("endDate", Defaults.EndDate)

	stock, err := h.svc.LocalStock(c.Request.Context(), symbol, startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(stock))
}

// GetRemoteStocks handles GET /api/polygon/stocks requests.
//
// GetRemoteStocks godoc
// @Summary      Proxy OHLCV data from the remote provider
// @Description  Fetches aggregates from Polygon and reshapes them into the local response format
// @Tags         stocks
// @Produce      json
// @Param        symbol    query     string  false  "Ticker symbol"                    default(AAPL)
// @Param        interval  query     string  false  "Interval: 1day, 1week or 1month"  default(1day)
// @Param        from      query     string  false  "Start date (YYYY-MM-DD)"          default(2025-01-01)
// @Param        to        query     string  false  "End date (YYYY-MM-DD)"            default(2025-01-31)
// @Success      200       {object}  dto.StockResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse  "Missing parameter"
// @Failure      404       {object}  dto.ErrorResponse  "Empty result set"
// @Failure      500       {object}  dto.ErrorResponse  "Transport or internal error"
// @Router       /api/polygon/stocks [get]
func (h *Handler) GetRemoteStocks(c *gin.Context) {
	symbol := c.DefaultQuery("symbol", Defaults.RemoteSymbol)
	interval := c.DefaultQuery("interval", Defaults.Interval)
	from := c.DefaultQuery("from", Defaults.From)
	to := c.DefaultQuery("to", Defaults.To)

	stock, err := h.svc.RemoteStock(c.Request.Context(), symbol, interval, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(stock))
}

// GetRandomStock handles GET /api/stocks/random requests.
//
// GetRandomStock godoc
// @Summary      Return a random symbol over a random date window
// @Description  Picks a random data file and a random window of the requested month length bounded by available data
// @Tags         stocks
// @Produce      json
// @Param        months  query     int  false  "Window length in whole months"  default(6)
// @Success      200     {object}  dto.StockResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Invalid months value"
// @Failure      404     {object}  dto.ErrorResponse  "No folder, files, or parseable data"
// @Failure      500     {object}  dto.ErrorResponse  "Internal error"
// @Router       /api/stocks/random [get]
func (h *Handler) GetRandomStock(c *gin.Context) {
	raw := c.DefaultQuery("months", strconv.Itoa(Defaults.Months))
	months, err := strconv.Atoi(raw)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "months must be an integer", err)
		return
	}

	stock, err := h.svc.RandomStock(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockResponse(stock))
}

// GetSymbols handles GET /api/stocks/symbols requests.
//
// GetSymbols godoc
// @Summary      List locally available symbols
// @Description  Scans the data folder and returns each symbol with its row count and date coverage
// @Tags         stocks
// @Produce      json
// @Success      200  {array}   dto.SymbolInfoResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse       "No folder or no data files"
// @Failure      500  {object}  dto.ErrorResponse       "Internal error"
// @Router       /api/stocks/symbols [get]
func (h *Handler) GetSymbols(c *gin.Context) {
	infos, err := h.svc.Symbols(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]dto.SymbolInfoResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, dto.NewSymbolInfoResponse(info))
	}
	c.JSON(http.StatusOK, out)
}

// respondError maps domain errors onto the HTTP error taxonomy: missing
// parameters are client errors, missing resources are 404, upstream
// failures pass their status code through, and everything else (including
// malformed-but-present date strings) is an internal error with the
// failure's message exposed in the body.
func respondError(c *gin.Context, err error) {
	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request", err)
	case errors.Is(err, domain.ErrNotFound):
		middleware.AbortWithError(c, http.StatusNotFound, "no data found", err)
	case errors.As(err, &upstream):
		middleware.AbortWithError(c, upstream.StatusCode, "upstream provider error", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "internal server error", err)
	}
}
