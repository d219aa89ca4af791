// Package sampler selects a random symbol and a random valid date window
// from the local data folder.
package sampler

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"stockpulse/internal/domain"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/stockfile"
)

// Rand is the source of randomness used for file and start-date selection.
// It is injected so tests can supply a deterministic source.
type Rand interface {
	Intn(n int) int
}

// systemRand adapts the process-wide math/rand generator, which is safe for
// concurrent use.
type systemRand struct{}

func (systemRand) Intn(n int) int { return rand.Intn(n) }

// SystemRand returns the shared pseudo-random source used in production.
// It is not cryptographically sensitive.
func SystemRand() Rand { return systemRand{} }

// Sampler draws random stock windows from the reader's data folder.
type Sampler struct {
	reader *stockfile.Reader
	rng    Rand
}

// New constructs a Sampler over the reader's data folder.
func New(reader *stockfile.Reader, rng Rand) *Sampler {
	return &Sampler{reader: reader, rng: rng}
}

// Sample picks one data file uniformly at random and a window of the
// requested length in whole months, bounded by the file's actual date
// coverage. The file choice and the start-date choice are independent
// uniform draws.
//
// Window derivation:
//   - latest possible start = last available date minus `months` calendar
//     months, clamped up to the first available date;
//   - a start date is drawn uniformly from the dates at or before that
//     bound;
//   - if no date qualifies, the window is anchored at the earliest date and
//     ends at the last available date within `months` of it (or the final
//     date when none other fits);
//   - the end never overshoots the last available date.
func (s *Sampler) Sample(months int) (models.Stock, error) {
	if months < 1 {
		return models.Stock{}, fmt.Errorf("%w: months must be a positive integer", domain.ErrInvalidRequest)
	}

	entries, err := os.ReadDir(s.reader.Dir())
	if err != nil {
		return models.Stock{}, fmt.Errorf("%w: data folder %q is not readable", domain.ErrNotFound, s.reader.Dir())
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), stockfile.FileSuffix) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return models.Stock{}, fmt.Errorf("%w: no data files in %q", domain.ErrNotFound, s.reader.Dir())
	}

	name := files[s.rng.Intn(len(files))]
	path := filepath.Join(s.reader.Dir(), name)
	symbol := models.NormalizeSymbol(strings.TrimSuffix(name, ".txt"))

	dates, err := stockfile.ReadDates(path)
	if err != nil {
		return models.Stock{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(dates) == 0 {
		return models.Stock{}, fmt.Errorf("%w: no parseable dates in %q", domain.ErrNotFound, name)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	minDate, maxDate := dates[0], dates[len(dates)-1]

	latestStart := maxDate.AddDate(0, -months, 0)
	if latestStart.Before(minDate) {
		latestStart = minDate
	}

	// dates is sorted, so the candidate starts form a prefix.
	candidates := sort.Search(len(dates), func(i int) bool { return dates[i].After(latestStart) })

	var start, end time.Time
	if candidates == 0 {
		// Not enough history for a full window even when anchored at the
		// earliest date: take the widest window available from there.
		start = minDate
		limit := start.AddDate(0, months, 0)
		for _, d := range dates {
			if !d.After(limit) && !d.Equal(start) {
				end = d
			}
		}
		if end.IsZero() {
			end = maxDate
		}
	} else {
		start = dates[s.rng.Intn(candidates)]
		end = start.AddDate(0, months, 0)
		if end.After(maxDate) {
			end = maxDate
		}
	}

	records, err := stockfile.ParseRange(path, start, end)
	if err != nil {
		return models.Stock{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return models.Stock{}, fmt.Errorf("%w: no data in range", domain.ErrNotFound)
	}

	return models.Stock{
		Symbol:     symbol,
		StartDate:  start,
		EndDate:    end,
		DataPoints: len(records),
		Data:       records,
	}, nil
}
