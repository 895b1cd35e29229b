package output

import (
	"encoding/json"
	"io"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct {
	Role access.Role
}

// JSONOutput is the structure for JSON output. The HTTP API returns the
// same document.
type JSONOutput struct {
	Version     string            `json:"version"`
	Measurement types.Measurement `json:"measurement"`
	Region      string            `json:"region"`
	Category    string            `json:"category"`
	Considered  int               `json:"considered"`
	Candidates  []CandidateView   `json:"candidates"`
	Status      types.Status      `json:"status"`
	Result      string            `json:"result"`
	MinTier     *types.Tier       `json:"min_tier,omitempty"`
}

// NewJSONOutput builds the JSON document for a result
func NewJSONOutput(result *types.MatchResult, role access.Role) JSONOutput {
	return JSONOutput{
		Version:     "1.0",
		Measurement: result.Measurement,
		Region:      result.Region,
		Category:    result.Category,
		Considered:  result.Considered,
		Candidates:  CandidateViews(result, role),
		Status:      result.Status,
		Result:      result.Result,
		MinTier:     result.MinTier,
	}
}

// Render writes the match result in JSON format
func (r *JSONRenderer) Render(w io.Writer, result *types.MatchResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewJSONOutput(result, r.Role))
}
