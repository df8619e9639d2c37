package delaunay

// Option customizes a triangulation call.
type Option func(*config)

type config struct {
	legalize bool
	maxFlips int
}

func newConfig(opts []Option) *config {
	cfg := &config{legalize: true}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithMaxFlips caps the number of edge flips. Zero selects a cap quadratic in
// the number of points. Reaching the cap ends legalization with a Partial
// outcome. Panics on negative values.
func WithMaxFlips(n int) Option {
	if n < 0 {
		panic("delaunay: WithMaxFlips(negative)")
	}
	return func(c *config) {
		c.maxFlips = n
	}
}

// WithoutLegalization returns the sweep triangulation as built, before any
// flips.
func WithoutLegalization() Option {
	return func(c *config) {
		c.legalize = false
	}
}

func (c *config) flipCap(points int) int {
	if c.maxFlips > 0 {
		return c.maxFlips
	}
	if points < 8 {
		return 64
	}
	return points * points
}
