package hicuts

import "math/rand"

// CutAlgo selects how an internal node partitions its box.
type CutAlgo int

const (
	// Equidistant cuts the chosen dimension into equal-width pieces via
	// geom.Box.Cut.
	Equidistant CutAlgo = iota
	// Unequal cuts at the rule set's own interval endpoints via
	// geom.Box.UnequalCut, falling back to Equidistant when there are
	// fewer than two usable cut points.
	Unequal
)

// DimChoice selects the dimension-selection heuristic.
type DimChoice int

const (
	// MaxDistinct picks the dimension with the most pairwise-disjoint
	// rule intervals, breaking ties by interval span and then uniformly
	// at random.
	MaxDistinct DimChoice = iota
	// LeastMaxRules trial-cuts every dimension and picks the one that
	// minimizes the largest resulting child's rule count.
	LeastMaxRules
)

// config holds the tunables BuildTree consults. Build one with
// newConfig and a list of Option values; there is no exported type so
// callers cannot construct an invalid config by hand.
type config struct {
	binth    int
	spfac    int
	dimChoice DimChoice
	cutAlgo  CutAlgo
	rng      *rand.Rand
}

// Option configures a tree build. Options are applied in the order
// given, so a later option overrides an earlier one.
type Option func(*config)

// WithBinth sets the maximum number of rules a leaf may hold before it
// stops being cut further. Default 4.
func WithBinth(n int) Option {
	return func(c *config) { c.binth = n }
}

// WithSpfac sets the space-expansion factor determine_number_of_cuts
// bounds itself by. Default 4.
func WithSpfac(n int) Option {
	return func(c *config) { c.spfac = n }
}

// WithDimChoice sets the dimension-selection heuristic. Default
// MaxDistinct.
func WithDimChoice(d DimChoice) Option {
	return func(c *config) { c.dimChoice = d }
}

// WithCutAlgo sets the cut strategy. Default Equidistant.
func WithCutAlgo(a CutAlgo) Option {
	return func(c *config) { c.cutAlgo = a }
}

// WithRand supplies the random source used to break dimension-selection
// ties. There is no package-level default: callers must thread an
// explicit, seeded *rand.Rand so a build is reproducible given a fixed
// seed.
func WithRand(r *rand.Rand) Option {
	return func(c *config) { c.rng = r }
}

func newConfig(opts ...Option) (*config, error) {
	c := &config{
		binth:     4,
		spfac:     4,
		dimChoice: MaxDistinct,
		cutAlgo:   Equidistant,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		return nil, ErrNeedRand
	}
	return c, nil
}
