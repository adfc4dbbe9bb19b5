package paths_test

import (
	"testing"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/network"
	"github.com/katalvlaran/roadload/paths"
)

// BenchmarkEnumerate_Grid5x5 enumerates the C(8,4)=70 monotone paths of a 5×5 lattice.
func BenchmarkEnumerate_Grid5x5(b *testing.B) {
	net, err := network.Build(builder.MustBuild(nil, builder.Grid(5, 5)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = paths.Enumerate(net, 0, 24)
	}
}
