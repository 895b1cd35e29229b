package match

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/kcsbuilding/guttergauge/internal/types"
)

// Request is one user search
type Request struct {
	Measurement types.Measurement
	Region      string
	Category    string

	// TopN limits the result size; zero uses the engine default
	TopN int

	// MinTier fails the result when the best match is below it
	MinTier *types.Tier
}

// Engine runs the filter, score and rank pipeline
type Engine struct {
	topN   int
	logger hclog.Logger
}

// NewEngine creates an Engine returning at most topN candidates per request
func NewEngine(topN int, logger hclog.Logger) *Engine {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Engine{topN: topN, logger: logger}
}

// NewDefaultEngine creates an Engine with DefaultTopN and no logging
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTopN, nil)
}

// TopN returns the engine's default result size
func (e *Engine) TopN() int {
	return e.topN
}

// Validate checks the request preconditions and canonicalizes its
// region and category selectors.
func (e *Engine) Validate(req *Request) error {
	if err := req.Measurement.Validate(); err != nil {
		return err
	}
	if !req.Measurement.Searchable() {
		return ErrBaseRequired
	}
	region, ok := NormalizeRegion(req.Region)
	if !ok {
		return fmt.Errorf("%w: %q%s", ErrInvalidRegion, req.Region, didYouMean(req.Region, Regions))
	}
	category, ok := NormalizeCategory(req.Category)
	if !ok {
		return fmt.Errorf("%w: %q%s", ErrInvalidCategory, req.Category, didYouMean(req.Category, Categories))
	}
	req.Region = region
	req.Category = category
	return nil
}

// Match runs a request against the catalog profiles. The only errors are
// request precondition failures; an empty catalog or filter result yields
// an empty, valid MatchResult.
func (e *Engine) Match(profiles []*types.Profile, req Request) (*types.MatchResult, error) {
	if err := e.Validate(&req); err != nil {
		return nil, err
	}

	topN := req.TopN
	if topN <= 0 {
		topN = e.topN
	}

	filtered := Filter(profiles, req.Region, req.Category)
	result := types.NewMatchResult(req.Measurement, req.Region, req.Category)
	result.Considered = len(filtered)
	result.MinTier = req.MinTier

	for _, c := range Rank(filtered, req.Measurement, topN) {
		result.AddCandidate(c)
	}
	result.Compute()

	e.logger.Debug("match complete",
		"measurement", req.Measurement.String(),
		"region", req.Region,
		"category", req.Category,
		"catalog", len(profiles),
		"considered", result.Considered,
		"returned", len(result.Candidates),
	)
	return result, nil
}
