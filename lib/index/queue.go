package index

// queueNode is a single element of a Queue
type queueNode[T any] struct {
	item T
	next *queueNode[T]
}

// Queue is a FIFO queue backed by a singly linked list. It is used to collect
// the results of a traversal in order before they are copied into a slice of
// the exact size.
type Queue[T any] struct {
	first *queueNode[T]
	last  *queueNode[T]
	n     int
}

// NewQueue creates an empty queue
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of items in the queue
func (q *Queue[T]) Len() int { return q.n }

// IsEmpty returns whether the queue holds no items
func (q *Queue[T]) IsEmpty() bool { return q.first == nil }

// Enqueue appends an item at the end of the queue
func (q *Queue[T]) Enqueue(item T) {
	n := &queueNode[T]{item: item}
	if q.last == nil {
		q.first = n
	} else {
		q.last.next = n
	}
	q.last = n
	q.n++
}

// Peek returns the first item without removing it
func (q *Queue[T]) Peek() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}
	return q.first.item, true
}

// Dequeue removes and returns the first item of the queue
func (q *Queue[T]) Dequeue() (T, bool) {
	if q.first == nil {
		var zero T
		return zero, false
	}
	item := q.first.item
	q.first = q.first.next
	q.n--
	if q.first == nil {
		q.last = nil
	}
	return item, true
}

// Drain dequeues all items into a slice, preserving their order.
// The returned slice is never nil.
func (q *Queue[T]) Drain() []T {
	items := make([]T, q.n)
	for i := range items {
		items[i], _ = q.Dequeue()
	}
	return items
}
