package loader_test

import (
	"fmt"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/loader"
)

// ExampleRun loads four vehicles onto the Braess network without the shortcut.
// The two routes tie at first and then alternate.
func ExampleRun() {
	res, err := loader.Run(builder.MustBuild(nil, builder.Braess(false)), 0, 3, 4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range res.Paths {
		fmt.Printf("%s: %d\n", p, res.PathCounts[i])
	}
	fmt.Printf("%.2f\n", res.Series)

	// Output:
	// 0→1→3: 2
	// 0→2→3: 2
	// [45.01 90.02 135.05 180.08]
}
