package types

import (
	"strings"
	"testing"
)

func candidateWithTier(tier Tier) *ScoredCandidate {
	return &ScoredCandidate{Profile: &Profile{Description: "Quad 115"}, Tier: tier}
}

func TestMatchResultAddCandidate(t *testing.T) {
	r := NewMatchResult(NewMeasurement(100, 50, 30), "QLD", "All")
	a := candidateWithTier(TierExcellent)
	b := candidateWithTier(TierGood)

	r.AddCandidate(a)
	r.AddCandidate(b)

	if len(r.Candidates) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(r.Candidates))
	}
	if a.Rank != 1 || b.Rank != 2 {
		t.Errorf("ranks = %d, %d, want 1, 2", a.Rank, b.Rank)
	}
	if r.Best() != a {
		t.Error("Best() should return the first candidate")
	}
}

func TestMatchResultCompute(t *testing.T) {
	tests := []struct {
		name          string
		tiers         []Tier
		level         StatusLevel
		celebrate     bool
		messageSubstr string
	}{
		{"empty", nil, StatusError, false, "No products found in QLD with shape 'Quad'"},
		{"excellent", []Tier{TierExcellent, TierPoor}, StatusSuccess, true, "Excellent Match! Found 2 matching profiles."},
		{"good", []Tier{TierGood}, StatusSuccess, false, "Good Match - 1 profiles found."},
		{"fair", []Tier{TierFair, TierPoor, TierPoor}, StatusWarning, false, "Showing 3 closest options."},
		{"poor", []Tier{TierPoor}, StatusWarning, false, "No exact matches found."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMatchResult(NewMeasurement(100, 50, 30), "QLD", "Quad")
			for _, tier := range tt.tiers {
				r.AddCandidate(candidateWithTier(tier))
			}
			r.Compute()

			if r.Status.Level != tt.level {
				t.Errorf("Status.Level = %q, want %q", r.Status.Level, tt.level)
			}
			if r.Status.Celebrate != tt.celebrate {
				t.Errorf("Status.Celebrate = %v, want %v", r.Status.Celebrate, tt.celebrate)
			}
			if !strings.Contains(r.Status.Message, tt.messageSubstr) {
				t.Errorf("Status.Message = %q, want substring %q", r.Status.Message, tt.messageSubstr)
			}
			if r.Result != "PASS" {
				t.Errorf("Result = %q, want PASS without a policy", r.Result)
			}
		})
	}
}

func TestMatchResultComputePolicy(t *testing.T) {
	good := TierGood

	tests := []struct {
		name  string
		tiers []Tier
		want  string
	}{
		{"best meets threshold", []Tier{TierExcellent}, "PASS"},
		{"best equals threshold", []Tier{TierGood}, "PASS"},
		{"best below threshold", []Tier{TierFair}, "FAIL"},
		{"empty result fails", nil, "FAIL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewMatchResult(NewMeasurement(100, 50, 30), "QLD", "All")
			r.MinTier = &good
			for _, tier := range tt.tiers {
				r.AddCandidate(candidateWithTier(tier))
			}
			r.Compute()
			if r.Result != tt.want {
				t.Errorf("Result = %q, want %q", r.Result, tt.want)
			}
		})
	}
}
