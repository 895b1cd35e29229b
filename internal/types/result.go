package types

import "fmt"

// ScoredCandidate is a profile scored against a measurement.
// It lives only for the duration of one match request.
type ScoredCandidate struct {
	Profile *Profile `json:"profile"`

	// Rank is the 1-based position in the ranked result (0 before ranking)
	Rank int `json:"rank"`

	// DiffBase, DiffFace and DiffBack are signed differences, product minus user
	DiffBase float64 `json:"diff_base"`
	DiffFace float64 `json:"diff_face"`
	DiffBack float64 `json:"diff_back"`

	// ErrorScore is the weighted distance; 0 is a perfect match
	ErrorScore float64 `json:"error_score"`

	// MatchScore is the error score mapped onto 0-100
	MatchScore float64 `json:"match_score"`

	// Tier is the quality band of MatchScore
	Tier Tier `json:"tier"`
}

// StatusLevel is the kind of message shown for a whole request
type StatusLevel string

const (
	StatusSuccess StatusLevel = "success"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
)

// Status is the request-level quality signal derived from the best result
type Status struct {
	Level   StatusLevel `json:"level"`
	Message string      `json:"message"`

	// Celebrate is set only when the best match is Excellent
	Celebrate bool `json:"celebrate"`
}

// MatchResult is the ranked output of one match request
type MatchResult struct {
	Measurement Measurement `json:"measurement"`
	Region      string      `json:"region"`
	Category    string      `json:"category"`

	// Considered is the number of profiles that passed the filter
	Considered int `json:"considered"`

	// Candidates are ordered best first by non-decreasing error score
	Candidates []*ScoredCandidate `json:"candidates"`

	Status Status `json:"status"`

	// MinTier is the policy threshold, nil when no policy applies
	MinTier *Tier `json:"min_tier,omitempty"`

	// Result is PASS or FAIL based on MinTier
	Result string `json:"result"`
}

// NewMatchResult creates an empty MatchResult for a request
func NewMatchResult(m Measurement, region, category string) *MatchResult {
	return &MatchResult{
		Measurement: m,
		Region:      region,
		Category:    category,
		Candidates:  make([]*ScoredCandidate, 0),
	}
}

// AddCandidate appends a candidate and assigns its rank
func (r *MatchResult) AddCandidate(c *ScoredCandidate) {
	r.Candidates = append(r.Candidates, c)
	c.Rank = len(r.Candidates)
}

// Best returns the rank-1 candidate, or nil when the result is empty
func (r *MatchResult) Best() *ScoredCandidate {
	if len(r.Candidates) == 0 {
		return nil
	}
	return r.Candidates[0]
}

// Compute derives the status message and the PASS/FAIL result
func (r *MatchResult) Compute() {
	best := r.Best()
	n := len(r.Candidates)

	switch {
	case best == nil:
		r.Status = Status{
			Level:   StatusError,
			Message: fmt.Sprintf("No products found in %s with shape '%s'", r.Region, r.Category),
		}
	case best.Tier == TierExcellent:
		r.Status = Status{
			Level:     StatusSuccess,
			Message:   fmt.Sprintf("%s! Found %d matching profiles.", best.Tier, n),
			Celebrate: true,
		}
	case best.Tier == TierGood:
		r.Status = Status{
			Level:   StatusSuccess,
			Message: fmt.Sprintf("%s - %d profiles found.", best.Tier, n),
		}
	default:
		r.Status = Status{
			Level:   StatusWarning,
			Message: fmt.Sprintf("No exact matches found. Showing %d closest options.", n),
		}
	}

	failed := false
	if r.MinTier != nil {
		failed = best == nil || !best.Tier.AtLeast(*r.MinTier)
	}
	if failed {
		r.Result = "FAIL"
	} else {
		r.Result = "PASS"
	}
}
