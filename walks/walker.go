package walks

import (
	"iter"

	"frontier/queues"
)

// Walker is a generic worklist iterator that produces each distinct value at
// most once. It owns a double-ended pending queue and a set of values it has
// already produced; Next drains the queue front-to-back, silently discarding
// values that were produced before.
//
// Duplicates are allowed in the pending queue at any time: de-duplication
// happens lazily when a value reaches the front, not at insertion time.
// Once a value has been produced it is suppressed for the lifetime of the
// Walker, even if it is pushed again after exhaustion.
type Walker[T comparable] struct {
	pending *queues.ArrayDeque[T]
	visited map[T]struct{}
}

// NewWalker creates a Walker whose pending queue holds exactly seed.
func NewWalker[T comparable](seed T) *Walker[T] {
	w := &Walker[T]{
		pending: queues.NewArrayDeque[T](0),
		visited: make(map[T]struct{}),
	}
	w.pending.PushFront(seed)
	return w
}

// CollectWalker creates a Walker by eagerly draining seq into the pending
// queue, preserving its order. seq must be finite: an infinite sequence
// never returns from the drain.
func CollectWalker[T comparable](seq iter.Seq[T]) *Walker[T] {
	w := &Walker[T]{
		pending: queues.NewArrayDeque[T](0),
		visited: make(map[T]struct{}),
	}
	for v := range seq {
		w.pending.PushBack(v)
	}
	return w
}

// PushFront inserts value at the head of the pending queue. No visited check
// is performed; an already-produced value is discarded later, by Next.
func (w *Walker[T]) PushFront(value T) {
	w.pending.PushFront(value)
}

// PushBack inserts value at the tail of the pending queue.
func (w *Walker[T]) PushBack(value T) {
	w.pending.PushBack(value)
}

// PushAll inserts all values at the tail of the pending queue, preserving
// argument order.
func (w *Walker[T]) PushAll(values ...T) {
	w.pending.PushBackAll(values...)
}

// Next removes front elements from the pending queue until it finds one that
// has not been produced yet, marks it produced and returns it. It returns
// ok == false when the queue drains without finding one; a later push of an
// unproduced value makes Next productive again.
func (w *Walker[T]) Next() (value T, ok bool) {
	for {
		next, ok := w.pending.PopFront()
		if !ok {
			var zero T
			return zero, false
		}
		if _, seen := w.visited[next]; seen {
			continue
		}
		w.visited[next] = struct{}{}
		return next, true
	}
}

// Seen reports whether value has been produced by this Walker.
func (w *Walker[T]) Seen(value T) bool {
	_, ok := w.visited[value]
	return ok
}

// Pending returns the number of values awaiting production, duplicates
// included.
func (w *Walker[T]) Pending() int {
	return w.pending.Size()
}

// All returns a single-use sequence view over Next. Pushing onto the Walker
// from inside the consuming loop is supported; the sequence ends only when
// the pending queue drains.
func (w *Walker[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, ok := w.Next(); ok; v, ok = w.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
