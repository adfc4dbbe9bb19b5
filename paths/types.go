package paths

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/roadload/network"
)

var (
	// ErrNilNetwork is returned when a nil *network.Network is passed to Enumerate.
	ErrNilNetwork = fmt.Errorf("paths: network is nil: %w", network.ErrConfiguration)

	// ErrPathLimit indicates that the number of simple paths exceeds MaxPaths.
	ErrPathLimit = errors.New("paths: path limit exceeded")
)

// Path is a simple node sequence from source to sink. Consecutive nodes are
// joined by roads; no node repeats.
type Path []network.Node

// Len reports the number of roads on p.
func (p Path) Len() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Each calls fn for every road (p[i], p[i+1]) in order and stops at the first error.
func (p Path) Each(fn func(from, to network.Node) error) error {
	for i := 0; i+1 < len(p); i++ {
		if err := fn(p[i], p[i+1]); err != nil {
			return err
		}
	}

	return nil
}

// Equal reports whether p and q visit the same nodes in the same order.
func (p Path) Equal(q Path) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}

	return true
}

// String renders p as "0→1→3".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, n := range p {
		parts[i] = fmt.Sprint(int(n))
	}

	return strings.Join(parts, "→")
}

// Option configures Enumerate.
type Option func(*Options)

// Options holds enumeration parameters.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxDepth, if non-negative, is the maximum number of roads per path.
	// Default is -1 (no limit).
	MaxDepth int

	// MaxPaths, if positive, caps the number of paths; exceeding it is an error.
	// Default is 0 (no limit).
	MaxPaths int
}

// DefaultOptions returns Options with a background context and no limits.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		MaxPaths: 0,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits paths to at most limit roads.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithMaxPaths makes Enumerate fail with ErrPathLimit when more than limit
// paths exist. A non-positive limit disables the check.
func WithMaxPaths(limit int) Option {
	return func(o *Options) {
		o.MaxPaths = limit
	}
}
