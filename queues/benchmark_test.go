package queues_test

import (
	"frontier/queues"
	"testing"
)

func BenchmarkArrayDeque_PushBack_PopFront(b *testing.B) {
	b.ReportAllocs()
	dq := queues.NewArrayDeque[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dq.PushBack(i)
		dq.PopFront()
	}
}

func BenchmarkArrayDeque_PushFront_PopBack(b *testing.B) {
	b.ReportAllocs()
	dq := queues.NewArrayDeque[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dq.PushFront(i)
		dq.PopBack()
	}
}

func BenchmarkArrayDeque_Grow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		dq := queues.NewArrayDeque[int](1)
		for j := 0; j < 1024; j++ {
			dq.PushBack(j)
		}
	}
}

func BenchmarkArrayDeque_PushBackAll(b *testing.B) {
	b.ReportAllocs()
	batch := make([]int, 64)
	for i := range batch {
		batch[i] = i
	}
	dq := queues.NewArrayDeque[int](1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dq.PushBackAll(batch...)
		dq.Clear()
	}
}
