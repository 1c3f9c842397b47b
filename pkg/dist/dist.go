// Package dist abstracts the uncertainty-tracking numeric substrate that the
// statistical core runs on.  On target hardware distribution construction
// and moment extraction are delegated to the SoC; off target the Empirical
// substrate stands in as a compatibility shim.
package dist

// WeightedSample pairs an observation with a credibility weight in (0, 1]
type WeightedSample struct {
	Value  float64
	Weight float64
}

// Distribution is an opaque probabilistic representation of a sample set.
// Callers never inspect its internals, only extract moments.
type Distribution interface {
	// Moment returns the order-th statistical moment: order 1 is the mean,
	// order 2 and above are central moments (order 2 is the variance)
	Moment(order int) float64
}

// Substrate builds distributions from raw or weighted samples.  It is
// injected into the statistical core so tests can substitute their own
// implementation.
type Substrate interface {
	FromSamples(values []float64) (Distribution, error)
	FromWeightedSamples(samples []WeightedSample) (Distribution, error)
}
