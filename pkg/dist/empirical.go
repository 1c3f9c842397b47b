package dist

import (
	"fmt"
	"math"
)

var _ Substrate = Empirical{}
var _ Distribution = &empiricalDist{}

// Empirical is the reference in-process substrate: it materializes the
// weighted empirical distribution of the samples it is given.  Moments are
// computed directly, so results match the textbook formulas rather than any
// hardware uncertainty representation.
type Empirical struct{}

// NewEmpirical returns the reference substrate
func NewEmpirical() Empirical {
	return Empirical{}
}

// FromSamples builds an empirical distribution with every sample weighted
// equally
func (e Empirical) FromSamples(values []float64) (Distribution, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("cannot build a distribution from zero samples")
	}
	samples := make([]WeightedSample, len(values))
	for i, v := range values {
		samples[i] = WeightedSample{Value: v, Weight: 1.0}
	}
	return newEmpiricalDist(samples)
}

// FromWeightedSamples builds an empirical distribution from explicitly
// weighted samples
func (e Empirical) FromWeightedSamples(samples []WeightedSample) (Distribution, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot build a distribution from zero samples")
	}
	own := make([]WeightedSample, len(samples))
	copy(own, samples)
	return newEmpiricalDist(own)
}

type empiricalDist struct {
	samples     []WeightedSample
	totalWeight float64
	mean        float64
}

func newEmpiricalDist(samples []WeightedSample) (*empiricalDist, error) {
	total := 0.0
	weightedSum := 0.0
	for _, s := range samples {
		if s.Weight < 0 || math.IsNaN(s.Weight) || math.IsInf(s.Weight, 0) {
			return nil, fmt.Errorf("sample weight %v is not a non-negative finite number", s.Weight)
		}
		total += s.Weight
		weightedSum += s.Weight * s.Value
	}
	if total <= 0 {
		return nil, fmt.Errorf("total sample weight must be positive")
	}
	return &empiricalDist{
		samples:     samples,
		totalWeight: total,
		mean:        weightedSum / total,
	}, nil
}

// Moment returns the mean for order 1 and the order-th central moment
// otherwise, each weighted by sample credibility
func (d *empiricalDist) Moment(order int) float64 {
	if order <= 1 {
		return d.mean
	}
	sum := 0.0
	for _, s := range d.samples {
		sum += s.Weight * math.Pow(s.Value-d.mean, float64(order))
	}
	return sum / d.totalWeight
}
