package stockfile

import (
	"errors"
	"testing"

	"stockpulse/internal/domain"
)

func TestNewReader_DefaultDir(t *testing.T) {
	if r := NewReader(""); r.Dir() != DefaultDataDir {
		t.Fatalf("dir=%q, want %q", r.Dir(), DefaultDataDir)
	}
	if r := NewReader("/tmp/x"); r.Dir() != "/tmp/x" {
		t.Fatalf("dir=%q", r.Dir())
	}
}

func TestGetStock_Validation(t *testing.T) {
	r := NewReader(t.TempDir())

	cases := []struct {
		name               string
		symbol, start, end string
	}{
		{"empty symbol", "", "20250101", "20250131"},
		{"empty start", "test", "", "20250131"},
		{"empty end", "test", "20250101", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.GetStock(tc.symbol, tc.start, tc.end)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Fatalf("err=%v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestGetStock_UnknownSymbol(t *testing.T) {
	r := NewReader(t.TempDir())
	_, err := r.GetStock("ghost", "20250101", "20250131")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

// A malformed-but-present date string is an internal failure, not a bad
// request: it must surface as a plain error, never as ErrInvalidRequest.
func TestGetStock_MalformedDateIsInternal(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "test.us.txt",
		"TEST.US,D,20250115,000000,100,105,99,103,1000,0",
	)
	r := NewReader(dir)

	for _, q := range [][2]string{
		{"2025-01-01", "20250131"},
		{"20250101", "2025/01/31"},
	} {
		_, err := r.GetStock("test", q[0], q[1])
		if err == nil {
			t.Fatalf("expected error for dates %v", q)
		}
		if errors.Is(err, domain.ErrInvalidRequest) || errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("err=%v, want a plain parse error", err)
		}
	}
}

func TestGetStock_EmptyRange(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "test.us.txt",
		"TEST.US,D,20250115,000000,100,105,99,103,1000,0",
	)
	r := NewReader(dir)

	_, err := r.GetStock("test", "20240101", "20240131")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestGetStock_Success(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "test.us.txt",
		"TEST.US,D,20250115,000000,100,105,99,103,1000,0",
		"TEST.US,D,20250125,000000,104,110,103,108,2000,0",
	)
	r := NewReader(dir)

	stock, err := r.GetStock("test", "20250101", "20250131")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.Symbol != "TEST" {
		t.Fatalf("symbol=%q, want TEST", stock.Symbol)
	}
	if stock.DataPoints != 2 || len(stock.Data) != 2 {
		t.Fatalf("dataPoints=%d len(data)=%d, want 2/2", stock.DataPoints, len(stock.Data))
	}
	if !stock.StartDate.Equal(date(2025, 1, 1)) || !stock.EndDate.Equal(date(2025, 1, 31)) {
		t.Fatalf("window [%v, %v] does not echo the request", stock.StartDate, stock.EndDate)
	}
	if stock.Data[0].Open.String() != "100" || stock.Data[1].Volume.String() != "2000" {
		t.Fatalf("unexpected records: %+v", stock.Data)
	}
}

// Repeated identical queries against an unchanged file must return
// identical results.
func TestGetStock_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "test.us.txt",
		"TEST.US,D,20250115,000000,100,105,99,103,1000,0",
	)
	r := NewReader(dir)

	first, err := r.GetStock("test", "20250101", "20250131")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := r.GetStock("test", "20250101", "20250131")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first.DataPoints != second.DataPoints || len(first.Data) != len(second.Data) {
		t.Fatalf("responses differ: %+v vs %+v", first, second)
	}
	for i := range first.Data {
		if !first.Data[i].Time.Equal(second.Data[i].Time) || !first.Data[i].Close.Equal(second.Data[i].Close) {
			t.Fatalf("record %d differs", i)
		}
	}
}

func TestGetStock_SymbolSuffixStripped(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "aapl.us.txt",
		"AAPL.US,D,20250115,000000,100,105,99,103,1000,0",
	)
	r := NewReader(dir)

	stock, err := r.GetStock("AAPL", "20250101", "20250131")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stock.Symbol != "AAPL" {
		t.Fatalf("symbol=%q, want AAPL", stock.Symbol)
	}
}
