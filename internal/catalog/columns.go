package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Column headers of a catalog table
const (
	ColDescription  = "Gutter Description"
	ColSupplier     = "Supplier"
	ColSupplierCode = "Supplier Code"
	ColBase         = "Base"
	ColFace         = "Face"
	ColBack         = "Back"
	ColState        = "State"
	ColSellPrice    = "Sell Price (inc gst)"
	ColBuyPrice     = "Buy Price (inc gst)"
	ColSpecURL      = "Product URL 1"
	ColImagePath    = "Image Path"
)

var requiredColumns = []string{ColBase, ColFace, ColBack}

// columnIndex maps header names to positions, ignoring case and padding
type columnIndex map[string]int

func newColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	for _, col := range requiredColumns {
		if _, ok := idx[strings.ToLower(col)]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}
	return idx, nil
}

func (idx columnIndex) get(row []string, col string) string {
	i, ok := idx[strings.ToLower(col)]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// decodeRow builds a profile from a row. It returns false when any
// dimension is missing or not a finite number.
func (idx columnIndex) decodeRow(row []string, source string) (*types.Profile, bool) {
	base, okBase := parseNumber(idx.get(row, ColBase))
	face, okFace := parseNumber(idx.get(row, ColFace))
	back, okBack := parseNumber(idx.get(row, ColBack))
	if !okBase || !okFace || !okBack {
		return nil, false
	}

	return &types.Profile{
		Description:  idx.get(row, ColDescription),
		Supplier:     idx.get(row, ColSupplier),
		SupplierCode: idx.get(row, ColSupplierCode),
		Base:         base,
		Face:         face,
		Back:         back,
		State:        idx.get(row, ColState),
		SellPrice:    parsePrice(idx.get(row, ColSellPrice)),
		BuyPrice:     parsePrice(idx.get(row, ColBuyPrice)),
		SpecURL:      idx.get(row, ColSpecURL),
		ImagePath:    idx.get(row, ColImagePath),
		Source:       source,
	}, true
}

func parseNumber(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// parsePrice accepts "12.50", "$12.50" and "$1,250.00"
func parsePrice(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimPrefix(s, "$"), ",", "")
	v, ok := parseNumber(strings.TrimSpace(s))
	if !ok {
		return nil
	}
	return &v
}
