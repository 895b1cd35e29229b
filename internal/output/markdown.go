package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// MarkdownRenderer renders a table suitable for quotes and tickets
type MarkdownRenderer struct {
	Role access.Role
}

// Render writes the match result as a Markdown document
func (r *MarkdownRenderer) Render(w io.Writer, result *types.MatchResult) error {
	fmt.Fprintf(w, "## Gutter matches for %s\n\n", result.Measurement)
	fmt.Fprintf(w, "Region: %s, shape: %s\n\n", result.Region, result.Category)
	fmt.Fprintf(w, "> %s\n\n", result.Status.Message)

	views := CandidateViews(result, r.Role)
	if len(views) == 0 {
		return nil
	}

	fmt.Fprintln(w, "| Rank | Profile | Supplier | Match | Base | Face | Back | Price |")
	fmt.Fprintln(w, "|---|---|---|---|---|---|---|---|")
	for _, v := range views {
		cells := []string{
			v.Badge,
			escapeCell(v.Description),
			escapeCell(v.Supplier),
			Percent(v.MatchScore) + " " + v.TierLabel,
		}
		for _, d := range v.Dimensions {
			cells = append(cells, fmt.Sprintf("%smm (%s)", types.FormatMM(d.Product), d.DiffText))
		}
		cells = append(cells, strings.Join(PriceLines(v), "<br>"))
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}

	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
