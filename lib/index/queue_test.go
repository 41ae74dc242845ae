package index

import "testing"

// TestQueueOrder tests FIFO behavior and draining
func TestQueueOrder(t *testing.T) {
	q := NewQueue[int]()

	if !q.IsEmpty() {
		t.Fatal("new queue should be empty")
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should return ok=false")
	}

	for i := 1; i <= 5; i++ {
		q.Enqueue(i)
	}
	if q.Len() != 5 {
		t.Errorf("expected 5 items, got %d", q.Len())
	}

	first, ok := q.Peek()
	if !ok || first != 1 {
		t.Errorf("expected peek (1, true), got (%d, %t)", first, ok)
	}

	if v, _ := q.Dequeue(); v != 1 {
		t.Errorf("expected 1, got %d", v)
	}

	items := q.Drain()
	if !equalInts(items, []int{2, 3, 4, 5}) {
		t.Errorf("expected [2 3 4 5], got %v", items)
	}
	if !q.IsEmpty() || q.Len() != 0 {
		t.Error("queue should be empty after Drain")
	}

	// queue is reusable after being drained
	q.Enqueue(9)
	if items := q.Drain(); !equalInts(items, []int{9}) {
		t.Errorf("expected [9], got %v", items)
	}
}
