package congestion

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadload/network"
)

// Kind names a congestion-function family in configuration files.
type Kind string

// Supported kinds.
const (
	KindConstant   Kind = "constant"
	KindLinear     Kind = "linear"
	KindPolynomial Kind = "polynomial"
	KindBPR        Kind = "bpr"
)

// Spec is the declarative form of a congestion function. Only the fields of the
// selected Kind are read.
type Spec struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// constant
	Value float64 `json:"value,omitempty" yaml:"value,omitempty"`

	// linear
	Intercept float64 `json:"intercept,omitempty" yaml:"intercept,omitempty"`
	Slope     float64 `json:"slope,omitempty" yaml:"slope,omitempty"`

	// polynomial
	Coefficients []float64 `json:"coefficients,omitempty" yaml:"coefficients,omitempty"`

	// bpr; zero Alpha/Beta fall back to DefaultAlpha/DefaultBeta
	FreeFlow float64 `json:"free_flow,omitempty" yaml:"free_flow,omitempty"`
	Capacity float64 `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Alpha    float64 `json:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta     float64 `json:"beta,omitempty" yaml:"beta,omitempty"`
}

// Func builds the congestion function described by s.
func (s Spec) Func() (network.CongestionFunc, error) {
	switch Kind(strings.ToLower(string(s.Kind))) {
	case KindConstant:
		return Constant(s.Value)
	case KindLinear:
		return Linear(s.Intercept, s.Slope)
	case KindPolynomial:
		return Polynomial(s.Coefficients...)
	case KindBPR:
		alpha, beta := s.Alpha, s.Beta
		if alpha == 0 {
			alpha = DefaultAlpha
		}
		if beta == 0 {
			beta = DefaultBeta
		}
		return BPR(s.FreeFlow, s.Capacity, alpha, beta)
	case "":
		return nil, fmt.Errorf("%w: missing kind", ErrBadSpec)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrBadSpec, s.Kind)
	}
}

// String renders s as a short formula, e.g. "0+0.01n" or "45".
func (s Spec) String() string {
	switch Kind(strings.ToLower(string(s.Kind))) {
	case KindConstant:
		return fmt.Sprintf("%g", s.Value)
	case KindLinear:
		return fmt.Sprintf("%g+%gn", s.Intercept, s.Slope)
	case KindPolynomial:
		return fmt.Sprintf("poly%v", s.Coefficients)
	case KindBPR:
		return fmt.Sprintf("bpr(t0=%g,c=%g)", s.FreeFlow, s.Capacity)
	default:
		return string(s.Kind)
	}
}
