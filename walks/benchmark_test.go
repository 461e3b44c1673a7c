package walks_test

import (
	"frontier/walks"
	"testing"
)

// BenchmarkWalker_GridBFS walks a 100x100 grid, pushing the four neighbors of
// every produced cell. Roughly three out of four pushes are duplicates, so
// this exercises both the visited lookup and the lazy discard path.
func BenchmarkWalker_GridBFS(b *testing.B) {
	b.ReportAllocs()
	const side = 100
	type cell struct{ x, y int }

	for i := 0; i < b.N; i++ {
		w := walks.NewWalker(cell{0, 0})
		for c, ok := w.Next(); ok; c, ok = w.Next() {
			if c.x > 0 {
				w.PushBack(cell{c.x - 1, c.y})
			}
			if c.x < side-1 {
				w.PushBack(cell{c.x + 1, c.y})
			}
			if c.y > 0 {
				w.PushBack(cell{c.x, c.y - 1})
			}
			if c.y < side-1 {
				w.PushBack(cell{c.x, c.y + 1})
			}
		}
	}
}

func BenchmarkWalker_Next(b *testing.B) {
	b.ReportAllocs()
	w := walks.NewWalker(0)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.PushBack(i + 1)
		w.Next()
	}
}

func BenchmarkWalker_DuplicateHeavy(b *testing.B) {
	b.ReportAllocs()
	values := make([]int, 1024)
	for i := range values {
		values[i] = i % 32 // 32 distinct values, heavily duplicated
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := walks.NewWalker(values[0])
		w.PushAll(values...)
		for _, ok := w.Next(); ok; _, ok = w.Next() {
		}
	}
}
