package output

import (
	"testing"

	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

func price(v float64) *float64 {
	return &v
}

// sampleResult returns an Excellent rank 1 with sell and buy prices and a
// Good rank 2 without pricing.
func sampleResult(t *testing.T) *types.MatchResult {
	t.Helper()

	profiles := []*types.Profile{
		{
			Description:  "Quad 115 Hi-Front",
			Supplier:     "Stratco",
			SupplierCode: "Q115",
			Base:         100, Face: 50, Back: 30,
			State:     "QLD, NSW",
			SellPrice: price(12.5),
			BuyPrice:  price(8.25),
			SpecURL:   "https://example.com/q115",
		},
		{
			Description: "Square 125",
			Supplier:    "Lysaght",
			Base:        101, Face: 50, Back: 30,
			State: "QLD",
		},
	}

	result, err := match.NewDefaultEngine().Match(profiles, match.Request{
		Measurement: types.NewMeasurement(100, 50, 30),
		Region:      "QLD",
		Category:    "All",
	})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	return result
}

func emptyResult() *types.MatchResult {
	result := types.NewMatchResult(types.NewMeasurement(100, 0, 0), "TAS", "Half Round")
	result.Compute()
	return result
}
