package paths

import (
	"fmt"

	"github.com/katalvlaran/roadload/network"
)

// walker holds the state of one Enumerate call. A new walker is allocated per
// call, so no accumulator is ever shared between calls.
type walker struct {
	net  *network.Network
	opts Options
	sink network.Node

	onPath []bool // onPath[i] is true while Nodes()[i] is on the current path
	cur    Path   // current path, source first
	out    []Path // discovered paths
}

// Enumerate returns every simple path from source to sink in discovery order.
//
// Steps:
//  1. Validate the network and apply options.
//  2. Return an empty result if source or sink is not a node of net.
//  3. Depth-first search from source with a fresh accumulator.
//
// When source == sink the single path [source] is returned.
func Enumerate(net *network.Network, source, sink network.Node, opts ...Option) ([]Path, error) {
	// 1) Validate input
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 2) Unknown endpoints yield no paths
	if !net.HasNode(source) || !net.HasNode(sink) {
		return []Path{}, nil
	}

	// 3) Traverse
	w := &walker{
		net:    net,
		opts:   o,
		sink:   sink,
		onPath: make([]bool, net.NodeCount()),
		cur:    make(Path, 0, net.NodeCount()),
		out:    []Path{},
	}
	if err := w.extend(source); err != nil {
		return nil, err
	}

	return w.out, nil
}

// extend pushes id onto the current path and explores from it.
func (w *walker) extend(id network.Node) error {
	// 1) Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	idx := w.net.Index(id)
	w.cur = append(w.cur, id)
	w.onPath[idx] = true
	defer func() {
		w.cur = w.cur[:len(w.cur)-1]
		w.onPath[idx] = false
	}()

	// 2) Sink reached: record a copy of the current path
	if id == w.sink {
		if w.opts.MaxPaths > 0 && len(w.out) >= w.opts.MaxPaths {
			return fmt.Errorf("%w: more than %d paths", ErrPathLimit, w.opts.MaxPaths)
		}
		p := make(Path, len(w.cur))
		copy(p, w.cur)
		w.out = append(w.out, p)

		return nil
	}

	// 3) Depth limit: len(cur)-1 roads used so far
	if w.opts.MaxDepth >= 0 && len(w.cur)-1 >= w.opts.MaxDepth {
		return nil
	}

	// 4) Ascending neighbors not yet on the path
	for _, nb := range w.net.Neighbors(id) {
		if w.onPath[w.net.Index(nb)] {
			continue
		}
		if err := w.extend(nb); err != nil {
			return err
		}
	}

	return nil
}
