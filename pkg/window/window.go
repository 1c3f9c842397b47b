// Package window implements the uncertainty-aware weighted mean of a sample
// window.  The estimate is self-referential: the spread of the raw samples
// decides how much credibility each sample keeps when the mean is recomputed.
package window

import (
	"math"

	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/dist"
)

// EmptyWindow is returned when a weighted mean is requested for zero samples.
// Moment extraction on an empty distribution is undefined, so the request is
// rejected instead of propagating into the substrate.
type EmptyWindow struct{}

func (e EmptyWindow) Error() string {
	return "cannot compute the weighted mean of an empty sample window"
}

// WeightedMean returns the credibility-weighted mean of the sample window.
//
// The raw samples form an empirical distribution whose first two moments set
// the center and spread.  Each sample is then assigned a Gaussian kernel
// weight exp(-(x-mean)^2 / (2*variance)), so outliers relative to the
// observed spread contribute less, and the mean of the reweighted
// distribution is the result.  When the variance is zero there is no
// discriminating signal and every sample keeps weight 1.0, collapsing the
// result to the plain mean.
func WeightedMean(samples []float32, sub dist.Substrate) (float32, error) {
	if len(samples) == 0 {
		return 0, EmptyWindow{}
	}

	values := make([]float64, len(samples))
	for i, s := range samples {
		values[i] = float64(s)
	}

	d, err := sub.FromSamples(values)
	if err != nil {
		return 0, err
	}
	mean := d.Moment(1)
	variance := d.Moment(2)

	weighted := make([]dist.WeightedSample, len(values))
	for i, v := range values {
		weight := 1.0
		if variance > 0 {
			diff := v - mean
			weight = math.Exp(-(diff * diff) / (2.0 * variance))
		}
		weighted[i] = dist.WeightedSample{Value: v, Weight: weight}
	}

	dw, err := sub.FromWeightedSamples(weighted)
	if err != nil {
		return 0, err
	}
	return float32(dw.Moment(1)), nil
}
