package window

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/dist"
)

func TestIdenticalSamplesCollapse(t *testing.T) {
	tt := []struct {
		name    string
		samples []float32
	}{
		{name: "single sample", samples: []float32{3.5}},
		{name: "all equal", samples: []float32{7.25, 7.25, 7.25, 7.25}},
		{name: "all zero", samples: []float32{0, 0, 0}},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := WeightedMean(tc.samples, dist.NewEmpirical())
			assert.NoError(t, err)
			assert.Equal(t, tc.samples[0], got)
		})
	}
}

func TestOutlierIsDownWeighted(t *testing.T) {
	// four samples clustered at zero and one far outlier: the kernel must
	// pull the estimate strictly below the arithmetic mean of 20
	got, err := WeightedMean([]float32{0, 0, 0, 0, 100}, dist.NewEmpirical())
	assert.NoError(t, err)
	assert.Less(t, got, float32(20.0))
	assert.GreaterOrEqual(t, got, float32(0.0))
}

func TestMatchesReferenceFormula(t *testing.T) {
	samples := []float32{1.25, 2.0, 2.5, 3.75, 10.0}

	values := make([]float64, len(samples))
	sum := 0.0
	for i, s := range samples {
		values[i] = float64(s)
		sum += float64(s)
	}
	mean := sum / float64(len(values))
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	num, den := 0.0, 0.0
	for _, v := range values {
		w := math.Exp(-(v - mean) * (v - mean) / (2.0 * variance))
		num += w * v
		den += w
	}
	want := float32(num / den)

	got, err := WeightedMean(samples, dist.NewEmpirical())
	assert.NoError(t, err)
	assert.InDelta(t, want, got, 1e-6)
}

func TestDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(43))
	samples := make([]float32, 256)
	for i := range samples {
		samples[i] = float32(r.NormFloat64()*2.5 + 10.0)
	}
	first, err := WeightedMean(samples, dist.NewEmpirical())
	assert.NoError(t, err)
	second, err := WeightedMean(samples, dist.NewEmpirical())
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestInputNotMutated(t *testing.T) {
	samples := []float32{5, 6, 7, 50}
	orig := append([]float32(nil), samples...)
	_, err := WeightedMean(samples, dist.NewEmpirical())
	assert.NoError(t, err)
	assert.Equal(t, orig, samples)
}

func TestEmptyWindowRejected(t *testing.T) {
	_, err := WeightedMean(nil, dist.NewEmpirical())
	assert.Error(t, err)
	assert.IsType(t, EmptyWindow{}, err)
}

func BenchmarkWeightedMean(b *testing.B) {
	r := rand.New(rand.NewSource(43))
	samples := make([]float32, 1023)
	for i := range samples {
		samples[i] = float32(r.NormFloat64())
	}
	sub := dist.NewEmpirical()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := WeightedMean(samples, sub); err != nil {
			b.Fail()
		}
	}
}
