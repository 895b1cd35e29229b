package match

import (
	"errors"
	"testing"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

func testCatalog() []*types.Profile {
	return []*types.Profile{
		profile("Quad 100", "QLD, NSW", 100, 50, 30),
		profile("Quad 102", "QLD", 102, 52, 32),
		profile("Square 130", "QLD", 130, 50, 30),
		profile("Half Round 100", "VIC", 100, 50, 30),
	}
}

func TestEngineMatchScenarios(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name      string
		category  string
		wantFirst string
		wantError float64
		wantMatch float64
		wantTier  types.Tier
	}{
		{"perfect match", "Quad", "Quad 100", 0, 100, types.TierExcellent},
		{"square only", "Square", "Square 130", 75, 0, types.TierPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Match(testCatalog(), Request{
				Measurement: types.NewMeasurement(100, 50, 30),
				Region:      "QLD",
				Category:    tt.category,
			})
			if err != nil {
				t.Fatalf("Match error: %v", err)
			}
			best := result.Best()
			if best == nil {
				t.Fatal("expected a best match")
			}
			if best.Profile.Description != tt.wantFirst {
				t.Errorf("best = %q, want %q", best.Profile.Description, tt.wantFirst)
			}
			if !approxEqual(best.ErrorScore, tt.wantError) {
				t.Errorf("ErrorScore = %v, want %v", best.ErrorScore, tt.wantError)
			}
			if !approxEqual(best.MatchScore, tt.wantMatch) {
				t.Errorf("MatchScore = %v, want %v", best.MatchScore, tt.wantMatch)
			}
			if best.Tier != tt.wantTier {
				t.Errorf("Tier = %v, want %v", best.Tier, tt.wantTier)
			}
		})
	}
}

func TestEngineMatchSecondCandidate(t *testing.T) {
	result, err := NewDefaultEngine().Match(testCatalog(), Request{
		Measurement: types.NewMeasurement(100, 50, 30),
		Region:      "qld",
		Category:    "quad",
	})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if result.Region != "QLD" || result.Category != "Quad" {
		t.Errorf("selectors not canonicalized: %q %q", result.Region, result.Category)
	}
	if len(result.Candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(result.Candidates))
	}
	second := result.Candidates[1]
	if !approxEqual(second.ErrorScore, 11) || !approxEqual(second.MatchScore, 45) {
		t.Errorf("second candidate scores = %v/%v, want 11/45", second.ErrorScore, second.MatchScore)
	}
	if second.Tier != types.TierPoor {
		t.Errorf("second candidate tier = %v, want Poor Match", second.Tier)
	}
	if !result.Status.Celebrate {
		t.Error("an excellent best match should celebrate")
	}
}

func TestEngineMatchEmptyRegion(t *testing.T) {
	result, err := NewDefaultEngine().Match(testCatalog(), Request{
		Measurement: types.NewMeasurement(100, 50, 30),
		Region:      "TAS",
		Category:    "All",
	})
	if err != nil {
		t.Fatalf("empty filter result should not be an error: %v", err)
	}
	if len(result.Candidates) != 0 {
		t.Errorf("expected no candidates, got %d", len(result.Candidates))
	}
	if result.Considered != 0 {
		t.Errorf("Considered = %d, want 0", result.Considered)
	}
	if result.Status.Level != types.StatusError {
		t.Errorf("Status.Level = %q, want %q", result.Status.Level, types.StatusError)
	}
}

func TestEngineMatchPreconditions(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{"missing base", Request{Measurement: types.NewMeasurement(0, 50, 30), Region: "QLD"}, ErrBaseRequired},
		{"unknown region", Request{Measurement: types.NewMeasurement(100, 50, 30), Region: "XYZ"}, ErrInvalidRegion},
		{"unknown category", Request{Measurement: types.NewMeasurement(100, 50, 30), Region: "QLD", Category: "Box"}, ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Match(testCatalog(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Match error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	_, err := engine.Match(testCatalog(), Request{Measurement: types.NewMeasurement(100, -1, 30), Region: "QLD"})
	if err == nil {
		t.Error("expected error for negative measurement")
	}
}

func TestEngineMatchTopN(t *testing.T) {
	catalog := make([]*types.Profile, 0, 9)
	for i := 0; i < 9; i++ {
		catalog = append(catalog, profile("Quad", "QLD", 100+float64(i), 50, 30))
	}

	result, err := NewEngine(3, nil).Match(catalog, Request{Measurement: types.NewMeasurement(100, 50, 30), Region: "QLD"})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(result.Candidates) != 3 {
		t.Errorf("engine topN: got %d candidates, want 3", len(result.Candidates))
	}
	if result.Considered != 9 {
		t.Errorf("Considered = %d, want 9", result.Considered)
	}

	result, err = NewEngine(3, nil).Match(catalog, Request{Measurement: types.NewMeasurement(100, 50, 30), Region: "QLD", TopN: 7})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(result.Candidates) != 7 {
		t.Errorf("request topN: got %d candidates, want 7", len(result.Candidates))
	}
}

func TestEngineMatchMinTier(t *testing.T) {
	good := types.TierGood
	result, err := NewDefaultEngine().Match(testCatalog(), Request{
		Measurement: types.NewMeasurement(120, 50, 30),
		Region:      "QLD",
		MinTier:     &good,
	})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if result.Result != "FAIL" {
		t.Errorf("Result = %q, want FAIL when best match is below Good", result.Result)
	}
}
