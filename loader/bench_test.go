package loader_test

import (
	"testing"

	"github.com/katalvlaran/roadload/builder"
	"github.com/katalvlaran/roadload/loader"
)

func BenchmarkRun_Braess1000(b *testing.B) {
	edges := builder.MustBuild(nil, builder.Braess(true))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loader.Run(edges, 0, 3, 1000); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRun_Grid4x4(b *testing.B) {
	edges := builder.MustBuild(nil, builder.Grid(4, 4))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := loader.Run(edges, 0, 15, 200); err != nil {
			b.Fatal(err)
		}
	}
}
