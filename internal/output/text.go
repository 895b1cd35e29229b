package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
	Role         access.Role
}

// Render writes the match result in text format
func (r *TextRenderer) Render(w io.Writer, result *types.MatchResult) error {
	// Header
	fmt.Fprintf(w, "guttergauge: %s in %s, shape %s\n\n", result.Measurement, result.Region, result.Category)

	// Candidates
	for _, v := range CandidateViews(result, r.Role) {
		r.renderCandidate(w, v)
	}

	// Separator
	fmt.Fprintln(w, strings.Repeat("-", 60))

	r.renderStatus(w, result)

	if result.MinTier != nil {
		r.renderResult(w, result)
	}

	return nil
}

func (r *TextRenderer) renderCandidate(w io.Writer, v CandidateView) {
	fmt.Fprintf(w, "%s  %s  %s\n", r.paint(v.Badge, color.Bold), v.Description, r.colorTier(v.Tier, Percent(v.MatchScore)+" "+v.TierLabel))

	if v.SupplierCode != "" {
		fmt.Fprintf(w, "  Supplier: %s (%s)\n", v.Supplier, v.SupplierCode)
	} else {
		fmt.Fprintf(w, "  Supplier: %s\n", v.Supplier)
	}

	// Dimension comparison
	for _, d := range v.Dimensions {
		fmt.Fprintf(w, "  %-5s %6smm vs %6smm  %s\n",
			d.Name+":", types.FormatMM(d.Measured), types.FormatMM(d.Product), r.colorDiff(d.DiffTier, d.DiffText))
	}

	for _, line := range PriceLines(v) {
		fmt.Fprintf(w, "  %s\n", line)
	}

	if v.SpecURL != "" {
		fmt.Fprintf(w, "  Spec: %s\n", v.SpecURL)
	}
	if v.ImageAvailable {
		fmt.Fprintf(w, "  Image: %s\n", v.ImagePath)
	} else {
		fmt.Fprintln(w, "  Image not available")
	}

	fmt.Fprintln(w)
}

func (r *TextRenderer) renderStatus(w io.Writer, result *types.MatchResult) {
	switch result.Status.Level {
	case types.StatusSuccess:
		fmt.Fprintln(w, r.paint(result.Status.Message, color.FgGreen))
	case types.StatusWarning:
		fmt.Fprintln(w, r.paint(result.Status.Message, color.FgYellow))
	default:
		fmt.Fprintln(w, r.paint(result.Status.Message, color.FgRed))
	}
}

func (r *TextRenderer) renderResult(w io.Writer, result *types.MatchResult) {
	if result.Result == "PASS" {
		fmt.Fprintf(w, "Result: %s\n", r.paint("PASS", color.FgGreen))
	} else {
		fmt.Fprintf(w, "Result: %s (best match below %s)\n", r.paint("FAIL", color.FgRed), result.MinTier.Key())
	}
}

func (r *TextRenderer) colorTier(t types.Tier, s string) string {
	switch t {
	case types.TierExcellent:
		return r.paint(s, color.FgGreen)
	case types.TierGood:
		return r.paint(s, color.FgYellow)
	case types.TierFair:
		return r.paint(s, color.FgHiYellow)
	default:
		return r.paint(s, color.FgRed)
	}
}

func (r *TextRenderer) colorDiff(d types.DiffTier, s string) string {
	switch d {
	case types.DiffExact:
		return r.paint(s, color.FgGreen)
	case types.DiffClose:
		return r.paint(s, color.FgYellow)
	default:
		return r.paint(s, color.FgRed)
	}
}

// paint applies attributes without touching the global color.NoColor switch
func (r *TextRenderer) paint(s string, attrs ...color.Attribute) string {
	if !r.ColorEnabled {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}
