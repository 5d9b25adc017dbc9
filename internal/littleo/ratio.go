package littleo

import (
	"github.com/snoonan2/theory-extraCredit/internal/growth"
)

// DefaultPoints returns the sample points used when none are given.
func DefaultPoints() []int {
	return []int{10, 100, 1000, 10000}
}

// RatioSequence holds f(n)/g(n) for each usable sample point, in order.
type RatioSequence []float64

// Sample records one probe of a candidate against a target.
type Sample struct {
	N     int
	F     float64
	G     float64
	Ratio float64
	// Err is set when the point was skipped.
	Err error
}

// Skipped reports whether the point contributed no ratio.
func (s Sample) Skipped() bool {
	return s.Err != nil
}

func probe(f, g growth.Evaluator, points []int) []Sample {
	samples := make([]Sample, 0, len(points))
	for _, n := range points {
		s := Sample{N: n}
		x := float64(n)

		fv, err := f(x)
		if err != nil {
			s.Err = err
			samples = append(samples, s)
			continue
		}
		gv, err := g(x)
		if err != nil {
			s.F, s.Err = fv, err
			samples = append(samples, s)
			continue
		}
		s.F, s.G = fv, gv
		if gv == 0 {
			s.Err = ErrZeroDenominator
		} else {
			s.Ratio = fv / gv
		}
		samples = append(samples, s)
	}
	return samples
}

func ratiosOf(samples []Sample) RatioSequence {
	out := make(RatioSequence, 0, len(samples))
	for _, s := range samples {
		if !s.Skipped() {
			out = append(out, s.Ratio)
		}
	}
	return out
}

// Ratios evaluates f(n)/g(n) at each point. Points where either function
// fails or g(n) is zero are left out.
func Ratios(f, g growth.Evaluator, points []int) RatioSequence {
	return ratiosOf(probe(f, g, points))
}

// Decreasing reports whether every ratio is strictly below the one before.
// A ratio that has reached exactly zero may stay there: that is what a finite
// candidate over the +Inf factorial sentinel produces. NaN fails every step.
func (r RatioSequence) Decreasing() bool {
	for i := 0; i+1 < len(r); i++ {
		a, b := r[i], r[i+1]
		if a > b || (a == 0 && b == 0) {
			continue
		}
		return false
	}
	return true
}

// IsLittleO reports whether f is o(g) judged over points. A nil points
// slice means DefaultPoints. With no usable sample the answer is false.
func IsLittleO(f, g growth.Evaluator, points []int) bool {
	if points == nil {
		points = DefaultPoints()
	}
	return decide(Ratios(f, g, points))
}

func decide(r RatioSequence) bool {
	if len(r) == 0 {
		return false
	}
	return r.Decreasing()
}
