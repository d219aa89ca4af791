// Package catalog reports which symbols are available in the data folder
// and the date coverage of each.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"stockpulse/internal/domain"
	"stockpulse/internal/domain/models"
	"stockpulse/internal/logger"
	"stockpulse/internal/stockfile"
)

const maxParallel = 8

// Catalog scans a data folder of per-symbol files.
type Catalog struct {
	dir string
}

// New constructs a Catalog over the given data folder.
func New(dir string) *Catalog {
	if dir == "" {
		dir = stockfile.DefaultDataDir
	}
	return &Catalog{dir: dir}
}

// Scan walks every data file in the folder concurrently and returns one
// SymbolInfo per symbol, sorted by symbol. Files without a single parseable
// date row are skipped with a warning. A missing folder or a folder without
// data files maps to domain.ErrNotFound.
func (c *Catalog) Scan(ctx context.Context) ([]models.SymbolInfo, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: data folder %q is not readable", domain.ErrNotFound, c.dir)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), stockfile.FileSuffix) {
			continue
		}
		files = append(files, e.Name())
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no data files in %q", domain.ErrNotFound, c.dir)
	}

	parallel := maxParallel
	if n := runtime.NumCPU(); n < parallel {
		parallel = n
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, parallel)

	var mu sync.Mutex
	infos := make([]models.SymbolInfo, 0, len(files))

	for _, name := range files {
		name := name
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			path := filepath.Join(c.dir, name)
			dates, err := stockfile.ReadDates(path)
			if err != nil {
				return fmt.Errorf("scan %s: %w", name, err)
			}
			if len(dates) == 0 {
				logger.L().Warn().Str("file", name).Msg("no parseable rows, skipping")
				return nil
			}

			info := models.SymbolInfo{
				Symbol:     models.NormalizeSymbol(strings.TrimSuffix(name, ".txt")),
				DataPoints: len(dates),
				FirstDate:  dates[0],
				LastDate:   dates[0],
			}
			for _, d := range dates[1:] {
				if d.Before(info.FirstDate) {
					info.FirstDate = d
				}
				if d.After(info.LastDate) {
					info.LastDate = d
				}
			}

			mu.Lock()
			infos = append(infos, info)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if len(infos) == 0 {
		return nil, fmt.Errorf("%w: no usable data files in %q", domain.ErrNotFound, c.dir)
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Symbol < infos[j].Symbol })
	return infos, nil
}
