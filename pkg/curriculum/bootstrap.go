package curriculum

import (
	"math/rand/v2"
)

const (
	DefaultResamples  = 1000
	DefaultConfidence = 0.95
)

// Bootstrapper estimates confidence intervals of the mean by resampling with replacement.
// It is not safe for concurrent use.
type Bootstrapper struct {
	rng        *rand.Rand
	resamples  int
	confidence float64
}

// BootstrapOption configures a Bootstrapper.
type BootstrapOption func(b *Bootstrapper)

// WithSeed makes the resampling deterministic.
func WithSeed(seed uint64) BootstrapOption {
	return func(b *Bootstrapper) {
		b.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithResamples sets the number of resamples drawn per interval. Values below 1 are ignored.
func WithResamples(n int) BootstrapOption {
	return func(b *Bootstrapper) {
		if n > 0 {
			b.resamples = n
		}
	}
}

// WithConfidence sets the confidence level. Values outside (0, 1) are ignored.
func WithConfidence(confidence float64) BootstrapOption {
	return func(b *Bootstrapper) {
		if confidence > 0 && confidence < 1 {
			b.confidence = confidence
		}
	}
}

// NewBootstrapper creates a Bootstrapper drawing DefaultResamples resamples at the
// DefaultConfidence level from an unseeded source unless configured otherwise.
func NewBootstrapper(opts ...BootstrapOption) *Bootstrapper {
	b := &Bootstrapper{
		resamples:  DefaultResamples,
		confidence: DefaultConfidence,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return b
}

// Resamples returns the number of resamples drawn per interval.
func (b *Bootstrapper) Resamples() int {
	return b.resamples
}

// Confidence returns the confidence level.
func (b *Bootstrapper) Confidence() float64 {
	return b.confidence
}

// CI returns the percentile bootstrap confidence interval of the mean of data. With fewer
// than two observations the interval is undefined and CI returns the Insufficient sentinel.
func (b *Bootstrapper) CI(data []float64) CI {
	n := len(data)
	if n < 2 {
		return CI{Insufficient: true}
	}

	means := make([]float64, b.resamples)
	for i := range means {
		var sum float64
		for j := 0; j < n; j++ {
			sum += data[b.rng.IntN(n)]
		}

		means[i] = sum / float64(n)
	}

	alpha := 1 - b.confidence

	return CI{
		Lower: percentile(means, alpha/2),
		Upper: percentile(means, 1-alpha/2),
	}
}
