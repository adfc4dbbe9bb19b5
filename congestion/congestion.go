package congestion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadload/network"
)

// ErrBadSpec indicates unusable congestion parameters.
var ErrBadSpec = fmt.Errorf("congestion: bad spec: %w", network.ErrConfiguration)

// Default BPR shape parameters.
const (
	DefaultAlpha = 0.15
	DefaultBeta  = 4.0
)

// Constant returns a flow-independent travel time.
func Constant(t float64) (network.CongestionFunc, error) {
	if !finiteNonNeg(t) {
		return nil, fmt.Errorf("%w: constant %g", ErrBadSpec, t)
	}

	return func(int) float64 { return t }, nil
}

// Linear returns intercept + slope·n.
func Linear(intercept, slope float64) (network.CongestionFunc, error) {
	if !finiteNonNeg(intercept) || !finiteNonNeg(slope) {
		return nil, fmt.Errorf("%w: linear %g + %g·n", ErrBadSpec, intercept, slope)
	}

	return func(n int) float64 { return intercept + slope*float64(n) }, nil
}

// Polynomial returns Σ coefficients[i]·nⁱ evaluated with Horner's rule.
// Coefficients must be non-negative so the function is non-decreasing.
func Polynomial(coefficients ...float64) (network.CongestionFunc, error) {
	if len(coefficients) == 0 {
		return nil, fmt.Errorf("%w: polynomial without coefficients", ErrBadSpec)
	}
	for i, c := range coefficients {
		if !finiteNonNeg(c) {
			return nil, fmt.Errorf("%w: polynomial coefficient %d = %g", ErrBadSpec, i, c)
		}
	}
	cs := append([]float64(nil), coefficients...)

	return func(n int) float64 {
		x := float64(n)
		var acc float64
		for i := len(cs) - 1; i >= 0; i-- {
			acc = acc*x + cs[i]
		}
		return acc
	}, nil
}

// BPR returns the Bureau of Public Roads link-performance function
// freeFlow·(1 + alpha·(n/capacity)^beta).
func BPR(freeFlow, capacity, alpha, beta float64) (network.CongestionFunc, error) {
	switch {
	case !finiteNonNeg(freeFlow):
		return nil, fmt.Errorf("%w: bpr free-flow time %g", ErrBadSpec, freeFlow)
	case !(capacity > 0) || math.IsInf(capacity, 0):
		return nil, fmt.Errorf("%w: bpr capacity %g", ErrBadSpec, capacity)
	case !finiteNonNeg(alpha) || !finiteNonNeg(beta):
		return nil, fmt.Errorf("%w: bpr alpha=%g beta=%g", ErrBadSpec, alpha, beta)
	}

	return func(n int) float64 {
		return freeFlow * (1 + alpha*math.Pow(float64(n)/capacity, beta))
	}, nil
}

// Validate evaluates fn at every flow in [0, upTo] and reports the first value
// that is negative, NaN or infinite.
func Validate(fn network.CongestionFunc, upTo int) error {
	if fn == nil {
		return fmt.Errorf("%w: nil function", ErrBadSpec)
	}
	for n := 0; n <= upTo; n++ {
		if t := fn(n); !finiteNonNeg(t) {
			return fmt.Errorf("%w: f(%d)=%g", ErrBadSpec, n, t)
		}
	}

	return nil
}

func finiteNonNeg(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
