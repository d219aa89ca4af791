// Package polygon proxies OHLCV aggregates from the Polygon.io REST API,
// reshaping them into the same Stock model the local file reader produces.
package polygon

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"stockpulse/internal/domain"
	"stockpulse/internal/domain/models"
)

const (
	// DefaultBaseURL is the production Polygon REST endpoint.
	DefaultBaseURL = "https://api.polygon.io"

	// DefaultAPIKey is the fallback key used when none is configured.
	DefaultAPIKey = "demo"

	defaultTimeout = 10 * time.Second
)

// Config holds the settings for the Polygon client.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client issues aggregate queries against Polygon. One request in, one
// response out; there is no retry or backoff, a failed upstream call is a
// failed response.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient builds a Client, filling unset config fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = DefaultAPIKey
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{cfg: cfg, client: newHTTPClient(cfg.Timeout)}
}

// mapInterval translates the simplified interval keyword into the
// multiplier/timespan path segment Polygon expects. The mapping is total:
// unrecognized values behave as daily.
func mapInterval(interval string) string {
	switch interval {
	case "1week":
		return "1/week"
	case "1month":
		return "1/month"
	default:
		return "1/day"
	}
}

// aggsResponse mirrors the Polygon v2 aggregates JSON shape.
type aggsResponse struct {
	Ticker       string    `json:"ticker"`
	ResultsCount int       `json:"resultsCount"`
	Status       string    `json:"status"`
	Results      []aggsBar `json:"results"`
}

type aggsBar struct {
	Timestamp int64           `json:"t"` // milliseconds since epoch
	Open      decimal.Decimal `json:"o"`
	High      decimal.Decimal `json:"h"`
	Low       decimal.Decimal `json:"l"`
	Close     decimal.Decimal `json:"c"`
	Volume    decimal.Decimal `json:"v"`
}

// GetAggregates fetches aggregates for a symbol between from and to (both
// YYYY-MM-DD) at the requested interval and reshapes them into a Stock.
//
// StartDate and EndDate of the result are the min/max of the dates actually
// returned, not the requested bounds.
func (c *Client) GetAggregates(ctx context.Context, symbol, interval, from, to string) (models.Stock, error) {
	if symbol == "" || from == "" || to == "" {
		return models.Stock{}, fmt.Errorf("%w: symbol, from and to are required", domain.ErrInvalidRequest)
	}

	u := fmt.Sprintf("%s/v2/aggs/ticker/%s/range/%s/%s/%s?adjusted=true&sort=asc&apiKey=%s",
		c.cfg.BaseURL, url.PathEscape(symbol), mapInterval(interval), from, to,
		url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Stock{}, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return models.Stock{}, err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return models.Stock{}, &domain.UpstreamError{
			StatusCode: res.StatusCode,
			Message:    fmt.Sprintf("polygon responded %q for symbol %s", res.Status, symbol),
		}
	}

	var body aggsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return models.Stock{}, fmt.Errorf("decode polygon response: %w", err)
	}
	if len(body.Results) == 0 {
		return models.Stock{}, fmt.Errorf("%w: polygon returned no results for symbol %q", domain.ErrNotFound, symbol)
	}

	records := make([]models.Record, 0, len(body.Results))
	var minDate, maxDate time.Time
	for _, bar := range body.Results {
		date := millisToDate(bar.Timestamp)
		if minDate.IsZero() || date.Before(minDate) {
			minDate = date
		}
		if date.After(maxDate) {
			maxDate = date
		}
		records = append(records, models.Record{
			Time:   date,
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: bar.Volume,
		})
	}

	return models.Stock{
		Symbol:     models.NormalizeSymbol(symbol),
		StartDate:  minDate,
		EndDate:    maxDate,
		DataPoints: len(records),
		Data:       records,
	}, nil
}

// millisToDate truncates an epoch-millisecond timestamp to its UTC calendar
// date, discarding the time-of-day component.
func millisToDate(ms int64) time.Time {
	t := time.UnixMilli(ms).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// newHTTPClient returns a client configured for outbound API calls.
// http.DefaultClient carries no timeout, so an explicit transport and
// overall timeout are always set.
func newHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
