// Package pathfilter selects catalog files in a directory using doublestar
// include and exclude patterns.
package pathfilter

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches CSV and SQLite catalogs anywhere under the directory
var DefaultInclude = []string{"**/*.csv", "**/*.db", "**/*.sqlite"}

// DefaultExclude skips archived catalogs
var DefaultExclude = []string{"archive/**"}

// Filter holds the include and exclude patterns for file filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultFilter returns a filter with the default catalog patterns
func DefaultFilter() *Filter {
	return New(DefaultInclude, DefaultExclude)
}

// FilterFiles returns the files in dir that match an include pattern and no
// exclude pattern, relative to dir and in lexical order. Catalog order
// decides ranking ties, so the order must not depend on pattern order.
func (f *Filter) FilterFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			excluded, err := f.excluded(match)
			if err != nil {
				return nil, err
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

// FilterFilesAbs returns absolute paths of filtered files
func (f *Filter) FilterFilesAbs(dir string) ([]string, error) {
	relPaths, err := f.FilterFiles(dir)
	if err != nil {
		return nil, err
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	absPaths := make([]string, len(relPaths))
	for i, relPath := range relPaths {
		absPaths[i] = filepath.Join(absDir, filepath.FromSlash(relPath))
	}

	return absPaths, nil
}

// MatchFile checks if a single slash-separated path matches the filter
func (f *Filter) MatchFile(path string) (bool, error) {
	included := false
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}
	if !included {
		return false, nil
	}

	excluded, err := f.excluded(path)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func (f *Filter) excluded(path string) (bool, error) {
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
