package dist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMomentsFromSamples(t *testing.T) {
	sub := NewEmpirical()
	d, err := sub.FromSamples([]float64{1, 1, 1, 2, 2, 2})
	assert.NoError(t, err)
	assert.Equal(t, 1.5, d.Moment(1))
	assert.Equal(t, 0.25, d.Moment(2))
}

func TestMomentsFromWeightedSamples(t *testing.T) {
	sub := NewEmpirical()
	tt := []struct {
		name    string
		samples []WeightedSample
		mean    float64
	}{
		{
			name:    "uniform weights match the plain mean",
			samples: []WeightedSample{{1, 1}, {2, 1}, {3, 1}},
			mean:    2.0,
		},
		{
			name:    "zero weight removes a sample",
			samples: []WeightedSample{{1, 1}, {100, 0}},
			mean:    1.0,
		},
		{
			name:    "weights pull the mean toward credible samples",
			samples: []WeightedSample{{0, 0.9}, {10, 0.1}},
			mean:    1.0,
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			d, err := sub.FromWeightedSamples(tc.samples)
			assert.NoError(t, err)
			assert.InDelta(t, tc.mean, d.Moment(1), 1e-12)
		})
	}
}

func TestDegenerateVariance(t *testing.T) {
	sub := NewEmpirical()
	d, err := sub.FromSamples([]float64{7, 7, 7})
	assert.NoError(t, err)
	assert.Equal(t, 7.0, d.Moment(1))
	assert.Equal(t, 0.0, d.Moment(2))
}

func TestEmptyInputRejected(t *testing.T) {
	sub := NewEmpirical()
	_, err := sub.FromSamples(nil)
	assert.Error(t, err)
	_, err = sub.FromWeightedSamples(nil)
	assert.Error(t, err)
}

func TestBadWeightsRejected(t *testing.T) {
	sub := NewEmpirical()
	_, err := sub.FromWeightedSamples([]WeightedSample{{1, -0.5}})
	assert.Error(t, err)
	_, err = sub.FromWeightedSamples([]WeightedSample{{1, 0}, {2, 0}})
	assert.Error(t, err)
}
