package compare_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/compare"
)

// ExampleDiff compares the Braess network with and without the shortcut at
// 1000 vehicles. At this load the shortcut still helps; the paradox only
// appears under heavier traffic.
func ExampleDiff() {
	scenarios := []compare.Scenario{
		{Name: "before", Edges: builder.MustBuild(nil, builder.Braess(false)), Source: 0, Sink: 3, Vehicles: 1000},
		{Name: "after", Edges: builder.MustBuild(nil, builder.Braess(true)), Source: 0, Sink: 3, Vehicles: 1000},
	}
	out, err := compare.Run(context.Background(), scenarios, compare.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	d := compare.Diff(out[0], out[1])
	fmt.Printf("before=%.0f after=%.0f paradox=%v\n", out[0].Stats.Final, out[1].Stats.Final, d.Paradox)

	// Output: before=50000 after=25000 paradox=false
}
