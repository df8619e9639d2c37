package contour

// Option customizes a contouring call.
type Option func(*config)

type config struct {
	mapper *coordinateMapper
	pick   int
}

func newConfig(opts []Option) *config {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithCoordinates maps the output from grid index space into world space using
// the X and Y coordinate grids, which must have the same shape as the samples.
// Panics on nil grids.
func WithCoordinates(x, y [][]float64) Option {
	if x == nil || y == nil {
		panic("contour: WithCoordinates(nil)")
	}
	return func(c *config) {
		c.mapper = &coordinateMapper{x: x, y: y}
	}
}

// WithPick sets the identity tag stamped on every emitted primitive.
func WithPick(pick int) Option {
	return func(c *config) {
		c.pick = pick
	}
}
