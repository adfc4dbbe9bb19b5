package paths_test

import (
	"fmt"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
)

// ExampleEnumerate lists the three routes of the Braess network with the 1→2
// shortcut, in discovery order.
func ExampleEnumerate() {
	edges := builder.MustBuild(nil, builder.Braess(true))
	net, err := network.Build(edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	ps, err := paths.Enumerate(net, 0, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range ps {
		fmt.Println(p)
	}

	// Output:
	// 0→1→2→3
	// 0→1→3
	// 0→2→3
}
