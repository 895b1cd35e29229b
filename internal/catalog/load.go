package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/kcsbuilding/guttergauge/internal/pathfilter"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Source describes where a catalog is read from
type Source struct {
	// Path is a catalog file or a directory of catalog files
	Path string

	// Filter selects files when Path is a directory
	Filter *pathfilter.Filter

	// Table is the SQLite table name
	Table string
}

// Load reads every catalog file in the source into a single Catalog.
// Directory sources are read in lexical file order.
func Load(ctx context.Context, src Source, logger hclog.Logger) (*Catalog, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	files, err := resolve(src)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no catalog files found in %s", src.Path)
	}

	c := &Catalog{LoadedAt: time.Now()}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var profiles []*types.Profile
		var dropped int
		if isSQLite(file) {
			profiles, dropped, err = ReadSQLite(ctx, file, src.Table)
		} else {
			profiles, dropped, err = ReadCSVFile(file)
		}
		if err != nil {
			return nil, err
		}

		logger.Debug("catalog file loaded", "file", file, "profiles", len(profiles), "dropped", dropped)
		c.Profiles = append(c.Profiles, profiles...)
		c.Sources = append(c.Sources, file)
		c.Dropped += dropped
	}

	if c.Dropped > 0 {
		logger.Debug("dropped rows with invalid dimensions", "count", c.Dropped)
	}
	return c, nil
}

func resolve(src Source) ([]string, error) {
	info, err := os.Stat(src.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog does not exist: %s", src.Path)
		}
		return nil, fmt.Errorf("failed to access catalog: %w", err)
	}
	if !info.IsDir() {
		return []string{src.Path}, nil
	}

	filter := src.Filter
	if filter == nil {
		filter = pathfilter.DefaultFilter()
	}
	files, err := filter.FilterFilesAbs(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog files: %w", err)
	}
	return files, nil
}

func isSQLite(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	default:
		return false
	}
}
