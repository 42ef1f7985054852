package kern

import "runtime"

// Option configures a [Determiner].
type Option func(*options)

type options struct {
	probes      int
	exitAnchor  string
	concurrency int
}

func defaultOptions() options {
	return options{
		probes:      defaultProbes,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithProbes sets the number of evenly spaced offsets at which the distance is
// sampled before bisecting. More probes make it less likely that the solver settles
// on a local crossing in deeply concave outlines. Values below 2 are raised to 2.
func WithProbes(n int) Option {
	return func(o *options) {
		o.probes = max(n, 2)
	}
}

// WithExitAnchor enables cursive attachment: when a query's height is positive, it
// is reduced by the y coordinate of the left glyph's anchor with the given name, if
// the glyph has one.
func WithExitAnchor(name string) Option {
	return func(o *options) {
		o.exitAnchor = name
	}
}

// WithConcurrency limits how many queries [Determiner.DetermineKerns] evaluates at
// once. Values below 1 are raised to 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}
