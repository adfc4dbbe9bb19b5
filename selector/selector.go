package selector

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
	"github.com/katalvlaran/roadload/traveltime"
)

var (
	// ErrNoCandidates indicates Select was called with an empty path list.
	ErrNoCandidates = fmt.Errorf("selector: no candidate paths: %w", network.ErrConfiguration)

	// ErrNilTimes indicates Select was called without travel times.
	ErrNilTimes = fmt.Errorf("selector: travel times are nil: %w", network.ErrConfiguration)
)

// unset marks "no path selected yet".
const unset = -1

// Select returns the candidate with the smallest total travel time and its
// index in candidates.
func Select(candidates []paths.Path, times *traveltime.Times) (paths.Path, int, error) {
	p, idx, _, err := SelectWithCost(candidates, times)
	return p, idx, err
}

// SelectWithCost is Select that also returns the winning path's total time.
func SelectWithCost(candidates []paths.Path, times *traveltime.Times) (paths.Path, int, float64, error) {
	if len(candidates) == 0 {
		return nil, unset, 0, ErrNoCandidates
	}
	if times == nil {
		return nil, unset, 0, ErrNilTimes
	}

	best := unset
	var bestCost float64
	for i, p := range candidates {
		cost := times.PathTime(p)
		if best == unset || cost < bestCost {
			best, bestCost = i, cost
		}
	}

	return candidates[best], best, bestCost, nil
}
