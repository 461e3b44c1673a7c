package queues

import "math/bits"

// ArrayDeque is a generic double-ended queue implementation using a circular
// array (ring buffer). It supports efficient insertion and removal at both
// ends with amortized O(1) time complexity.
type ArrayDeque[T any] struct {
	buf  []T // backing array, length == capacity (power of two)
	head int // index of the first element
	size int // number of elements in the deque
	mask int // capacity - 1, used for fast modulo: idx & mask
}

// NewArrayDeque creates a new ArrayDeque with the specified initial capacity.
func NewArrayDeque[T any](initialCapacity int) *ArrayDeque[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}

	// compute capacity as the next power of two >= initialCapacity
	var capacity int
	if initialCapacity <= 1 {
		capacity = 1
	} else {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &ArrayDeque[T]{
		buf:  make([]T, capacity),
		head: 0,
		size: 0,
		mask: capacity - 1,
	}
}

// resize resizes the underlying buffer.
// If isShrink is true, it shrinks the buffer to fit the current size.
// If isShrink is false, it grows the buffer to hold size+capDiff elements.
// all capacities are powers of two.
func (dq *ArrayDeque[T]) resize(capDiff int, isShrink bool) {
	var newCapacity int
	switch {
	case isShrink && dq.size == 0:
		newCapacity = 1
	case isShrink:
		newCapacity = 1 << uint(bits.Len(uint(dq.size-1)))
	default:
		newCapacity = 1 << uint(bits.Len(uint(dq.size+capDiff-1)))
	}

	newBuf := make([]T, newCapacity)

	if dq.head+dq.size <= len(dq.buf) {
		// if not wrapped around
		copy(newBuf, dq.buf[dq.head:dq.head+dq.size])
	} else {
		// wrapped around
		// copy head to end
		n := copy(newBuf, dq.buf[dq.head:])
		// copy from start to tail
		tailPos := (dq.head + dq.size) & dq.mask
		copy(newBuf[n:], dq.buf[:tailPos])
	}

	clear(dq.buf)
	// update fields
	dq.buf = newBuf
	dq.head = 0
	dq.mask = newCapacity - 1
}

// PushFront inserts value at the head of the deque.
func (dq *ArrayDeque[T]) PushFront(value T) {
	if dq.size == len(dq.buf) {
		dq.resize(1, false)
	}
	dq.head = (dq.head - 1) & dq.mask
	dq.buf[dq.head] = value
	dq.size++
}

// PushBack inserts value at the tail of the deque.
func (dq *ArrayDeque[T]) PushBack(value T) {
	if dq.size == len(dq.buf) {
		dq.resize(1, false)
	}
	dq.buf[(dq.head+dq.size)&dq.mask] = value
	dq.size++
}

// PushBackAll inserts all values at the tail of the deque, preserving
// argument order, with at most one resize.
func (dq *ArrayDeque[T]) PushBackAll(values ...T) {
	n := len(values)
	if dq.size+n > len(dq.buf) {
		dq.resize(n, false)
	}
	tail := (dq.head + dq.size) & dq.mask
	if tail+n <= len(dq.buf) {
		copy(dq.buf[tail:], values)
	} else {
		// wrapped around
		part1Len := len(dq.buf) - tail
		copy(dq.buf[tail:], values[:part1Len])
		copy(dq.buf, values[part1Len:])
	}
	dq.size += n
}

// PopFront removes and returns the element at the head of the deque.
func (dq *ArrayDeque[T]) PopFront() (value T, ok bool) {
	if dq.size == 0 {
		return value, false
	}
	value = dq.buf[dq.head]
	var zero T
	dq.buf[dq.head] = zero // clear reference
	dq.head = (dq.head + 1) & dq.mask
	dq.size--
	return value, true
}

// PopBack removes and returns the element at the tail of the deque.
func (dq *ArrayDeque[T]) PopBack() (value T, ok bool) {
	if dq.size == 0 {
		return value, false
	}
	tail := (dq.head + dq.size - 1) & dq.mask
	value = dq.buf[tail]
	var zero T
	dq.buf[tail] = zero // clear reference
	dq.size--
	return value, true
}

// Front returns the element at the head of the deque without removing it.
func (dq *ArrayDeque[T]) Front() (value T, ok bool) {
	if dq.size == 0 {
		return value, false
	}
	return dq.buf[dq.head], true
}

// Back returns the element at the tail of the deque without removing it.
func (dq *ArrayDeque[T]) Back() (value T, ok bool) {
	if dq.size == 0 {
		return value, false
	}
	return dq.buf[(dq.head+dq.size-1)&dq.mask], true
}

func (dq *ArrayDeque[T]) Size() int {
	return dq.size
}

func (dq *ArrayDeque[T]) IsEmpty() bool {
	return dq.size == 0
}

func (dq *ArrayDeque[T]) Clear() {
	clear(dq.buf)
	dq.head = 0
	dq.size = 0
}

func (dq *ArrayDeque[T]) ResizeToFit() {
	dq.resize(0, true)
}
