package paths

import "github.com/katalvlaran/roadload/network"

// hop is a queued node position and its road count from the source.
type hop struct {
	idx   int
	depth int
}

// Hops returns the fewest roads needed to drive from source to sink, using a
// breadth-first search in ascending neighbor order. ok is false when either
// node is absent or sink cannot be reached. Hops(net, s, s) is (0, true) for
// any node s of net.
//
// Complexity: O(V²) over the dense adjacency.
func Hops(net *network.Network, source, sink network.Node) (int, bool) {
	if net == nil {
		return 0, false
	}
	src, dst := net.Index(source), net.Index(sink)
	if src < 0 || dst < 0 {
		return 0, false
	}

	n := net.NodeCount()
	seen := make([]bool, n)
	queue := make([]hop, 0, n)
	seen[src] = true
	queue = append(queue, hop{idx: src})

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.idx == dst {
			return cur.depth, true
		}
		for j := 0; j < n; j++ {
			if seen[j] || net.RoadAt(cur.idx, j) == nil {
				continue
			}
			seen[j] = true
			queue = append(queue, hop{idx: j, depth: cur.depth + 1})
		}
	}

	return 0, false
}

// Reachable reports whether sink can be reached from source.
func Reachable(net *network.Network, source, sink network.Node) bool {
	_, ok := Hops(net, source, sink)
	return ok
}
