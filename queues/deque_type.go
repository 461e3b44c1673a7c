package queues

type Deque[T any] interface {
	// puts an element at the front of the deque
	PushFront(value T)
	// puts an element at the end of the deque
	PushBack(value T)
	// puts multiple elements at the end of the deque
	PushBackAll(values ...T)
	// removes and returns the element at the front of the deque
	PopFront() (value T, ok bool)
	// removes and returns the element at the end of the deque
	PopBack() (value T, ok bool)
	// returns the element at the front of the deque without removing it
	Front() (value T, ok bool)
	// returns the element at the end of the deque without removing it
	Back() (value T, ok bool)
	// returns the number of elements in the deque
	Size() int
	// returns true if the deque is empty
	IsEmpty() bool
	// removes all elements from the deque
	Clear()
}
