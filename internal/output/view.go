package output

import (
	"fmt"
	"os"

	"github.com/kcsbuilding/guttergauge/internal/access"
	"github.com/kcsbuilding/guttergauge/internal/match"
	"github.com/kcsbuilding/guttergauge/internal/types"
)

// CandidateView is a ranked candidate prepared for display. BuyPrice is
// only set when the viewer's role may see it.
type CandidateView struct {
	Rank           int             `json:"rank"`
	Badge          string          `json:"badge"`
	Description    string          `json:"description"`
	Supplier       string          `json:"supplier"`
	SupplierCode   string          `json:"supplier_code,omitempty"`
	MatchScore     float64         `json:"match_score"`
	ErrorScore     float64         `json:"error_score"`
	Tier           types.Tier      `json:"tier"`
	TierLabel      string          `json:"tier_label"`
	TierColor      string          `json:"tier_color"`
	Dimensions     []DimensionView `json:"dimensions"`
	SellPrice      *float64        `json:"sell_price,omitempty"`
	BuyPrice       *float64        `json:"buy_price,omitempty"`
	SpecURL        string          `json:"spec_url,omitempty"`
	ImagePath      string          `json:"image_path,omitempty"`
	ImageAvailable bool            `json:"image_available"`
}

// DimensionView compares one dimension of the measurement and the product
type DimensionView struct {
	Name     string         `json:"name"`
	Measured float64        `json:"measured"`
	Product  float64        `json:"product"`
	Diff     float64        `json:"diff"`
	DiffText string         `json:"diff_text"`
	DiffTier types.DiffTier `json:"diff_tier"`
}

// Badge returns the rank label shown next to a candidate
func Badge(rank int) string {
	switch rank {
	case 1:
		return "BEST MATCH"
	case 2:
		return "2ND BEST"
	case 3:
		return "3RD BEST"
	default:
		return fmt.Sprintf("#%d", rank)
	}
}

// NewCandidateView prepares a candidate for a viewer with the given role
func NewCandidateView(m types.Measurement, c *types.ScoredCandidate, role access.Role) CandidateView {
	p := c.Profile
	v := CandidateView{
		Rank:         c.Rank,
		Badge:        Badge(c.Rank),
		Description:  p.Description,
		Supplier:     p.Supplier,
		SupplierCode: p.SupplierCode,
		MatchScore:   c.MatchScore,
		ErrorScore:   c.ErrorScore,
		Tier:         c.Tier,
		TierLabel:    c.Tier.String(),
		TierColor:    c.Tier.HexColor(),
		Dimensions: []DimensionView{
			dimension("Base", m.Base, p.Base, c.DiffBase),
			dimension("Face", m.Face, p.Face, c.DiffFace),
			dimension("Back", m.Back, p.Back, c.DiffBack),
		},
		SellPrice:      p.SellPrice,
		SpecURL:        p.SpecURL,
		ImagePath:      p.ImagePath,
		ImageAvailable: fileExists(p.ImagePath),
	}
	if role.Can(access.CapViewBuyPrice) {
		v.BuyPrice = p.BuyPrice
	}
	return v
}

// CandidateViews prepares every candidate of a result
func CandidateViews(result *types.MatchResult, role access.Role) []CandidateView {
	views := make([]CandidateView, 0, len(result.Candidates))
	for _, c := range result.Candidates {
		views = append(views, NewCandidateView(result.Measurement, c, role))
	}
	return views
}

// PriceLines returns the pricing lines for a candidate
func PriceLines(v CandidateView) []string {
	var lines []string
	if v.SellPrice != nil {
		lines = append(lines, fmt.Sprintf("Sell: $%.2f inc GST", *v.SellPrice))
	}
	if v.BuyPrice != nil {
		lines = append(lines, fmt.Sprintf("Buy: $%.2f inc GST", *v.BuyPrice))
	}
	if v.SellPrice == nil {
		lines = append(lines, "Price on application")
	}
	return lines
}

// Percent formats a match score as a whole percentage
func Percent(score float64) string {
	return fmt.Sprintf("%.0f%%", score)
}

func dimension(name string, measured, product, diff float64) DimensionView {
	return DimensionView{
		Name:     name,
		Measured: measured,
		Product:  product,
		Diff:     diff,
		DiffText: match.FormatDiff(diff),
		DiffTier: match.ClassifyDiff(diff),
	}
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
