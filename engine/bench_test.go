package engine_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/deepsearch/engine"
	"github.com/katalvlaran/deepsearch/treespace"
)

// BenchmarkSearch_FrontierSizes compares a wide-open BFS against runs whose
// frontier bound forces iterative deepening early.
func BenchmarkSearch_FrontierSizes(b *testing.B) {
	const size = (1 << 12) - 1
	tr, _ := treespace.New(size, 2, size-1)

	for _, frontier := range []int{0, 16, 256, size} {
		b.Run(fmt.Sprintf("frontier=%d", frontier), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				e, _ := engine.New[int](tr, engine.WithFrontierCapacity(frontier), engine.WithTotalCapacity(size))
				_, _ = e.Search()
			}
		})
	}
}
