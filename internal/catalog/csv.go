package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// ReadCSV decodes profiles from CSV with a header row. It returns the
// valid profiles and the number of rows dropped for invalid dimensions.
func ReadCSV(r io.Reader, source string) ([]*types.Profile, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, 0, fmt.Errorf("%s: empty catalog", source)
		}
		return nil, 0, fmt.Errorf("%s: read header: %w", source, err)
	}
	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", source, err)
	}

	var profiles []*types.Profile
	dropped := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", source, err)
		}
		p, ok := idx.decodeRow(row, source)
		if !ok {
			dropped++
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, dropped, nil
}

// ReadCSVFile decodes profiles from a CSV file
func ReadCSVFile(path string) ([]*types.Profile, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, path)
}
