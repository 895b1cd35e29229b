package output

import (
	"fmt"
	"io"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// CompactRenderer renders one line per candidate.
// This format is useful for logs and shell pipelines.
type CompactRenderer struct{}

// Render writes the match result in compact format
// Format: rank: tier: score% description [supplier] base/face/back
func (r *CompactRenderer) Render(w io.Writer, result *types.MatchResult) error {
	if len(result.Candidates) == 0 {
		fmt.Fprintf(w, "%s: %s\n", result.Status.Level, result.Status.Message)
		return nil
	}

	for _, c := range result.Candidates {
		p := c.Profile
		fmt.Fprintf(w, "%d: %s: %.0f%% %s [%s] %s/%s/%s\n",
			c.Rank, c.Tier.Key(), c.MatchScore, p.Description, p.Supplier,
			types.FormatMM(p.Base), types.FormatMM(p.Face), types.FormatMM(p.Back))
	}

	return nil
}
