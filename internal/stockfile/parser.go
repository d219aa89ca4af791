package stockfile

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"stockpulse/internal/domain/models"
)

// Data files are comma-separated with the column layout
// <TICKER>,<PER>,<DATE>,<TIME>,<OPEN>,<HIGH>,<LOW>,<CLOSE>,<VOL>,<OPENINT>.
// The first line is a header and is always discarded.
const (
	// DateLayout is the 8-digit date format used in data files and query params.
	DateLayout = "20060102"

	// FileSuffix is appended to the lowercased symbol to resolve its data file.
	FileSuffix = ".us.txt"

	minFields = 10

	colDate   = 2
	colOpen   = 4
	colHigh   = 5
	colLow    = 6
	colClose  = 7
	colVolume = 8
)

// parseLine converts one comma-split row into a Record. It reports false for
// rows that cannot be used: too few columns, an unparseable date, or any
// unparseable price/volume field. Parsing is best-effort, a bad row never
// fails the surrounding request.
func parseLine(fields []string) (models.Record, bool) {
	if len(fields) < minFields {
		return models.Record{}, false
	}

	date, err := time.Parse(DateLayout, fields[colDate])
	if err != nil {
		return models.Record{}, false
	}

	rec := models.Record{Time: date}
	for _, col := range []struct {
		idx int
		dst *decimal.Decimal
	}{
		{colOpen, &rec.Open},
		{colHigh, &rec.High},
		{colLow, &rec.Low},
		{colClose, &rec.Close},
		{colVolume, &rec.Volume},
	} {
		v, err := decimal.NewFromString(fields[col.idx])
		if err != nil {
			return models.Record{}, false
		}
		*col.dst = v
	}

	return rec, true
}

// ParseRange reads a data file and returns every record whose date falls
// inside the closed interval [from, to], preserving file order.
//
// The header line is skipped unconditionally and malformed rows are dropped
// silently; only I/O failures are reported.
func ParseRange(path string, from, to time.Time) ([]models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := newLineReader(f)

	var records []models.Record
	skipHeader := true
	for {
		fields, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				// Structurally broken line, ignore it like any other bad row.
				continue
			}
			return nil, err
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		rec, ok := parseLine(fields)
		if !ok {
			continue
		}
		if rec.Time.Before(from) || rec.Time.After(to) {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// ReadDates returns every parseable date in a data file, in file order,
// skipping the header and any row whose date column is unusable.
func ReadDates(path string) ([]time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := newLineReader(f)

	var dates []time.Time
	skipHeader := true
	for {
		fields, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, err
		}
		if skipHeader {
			skipHeader = false
			continue
		}
		if len(fields) <= colDate {
			continue
		}
		d, err := time.Parse(DateLayout, fields[colDate])
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}

	return dates, nil
}

// newLineReader builds a CSV reader tolerant of the quirks found in stock
// data dumps: variable column counts and stray quotes. Blank lines are
// skipped by the reader itself.
func newLineReader(f *os.File) *csv.Reader {
	r := csv.NewReader(f)
	r.Comma = ','
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r
}
