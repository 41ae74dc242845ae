package index

import "time"

// Edge is a (neighbor, timestamp) pair stored in a TimeOrderedList
type Edge struct {
	ID   int       `json:"id"`
	Date time.Time `json:"date"`
}

type listNode struct {
	edge Edge
	next *listNode
}

// TimeOrderedList is a singly linked list that keeps its edges sorted by
// descending timestamp (most recent first). An edge with a timestamp equal
// to existing edges is placed in front of them.
//
// Insertion scans from the head and is O(k) in the list length. This is
// acceptable for per-user fan-out, where k is small compared to the number
// of users in the index that owns the lists.
//
// Thread-safety: TimeOrderedList is not thread-safe.
type TimeOrderedList struct {
	head *listNode
	size int
}

// Len returns the number of edges in the list
func (l *TimeOrderedList) Len() int { return l.size }

// Insert adds an edge at its position in descending timestamp order
func (l *TimeOrderedList) Insert(id int, date time.Time) {
	n := &listNode{edge: Edge{ID: id, Date: date}}
	l.size++

	// case 1: empty list or not older than the head
	if l.head == nil || !date.Before(l.head.edge.Date) {
		n.next = l.head
		l.head = n
		return
	}

	// case 2: splice in front of the first edge that is not newer
	cur := l.head
	for cur.next != nil {
		if !date.Before(cur.next.edge.Date) {
			n.next = cur.next
			cur.next = n
			return
		}
		cur = cur.next
	}

	// case 3: oldest edge, append at the tail
	cur.next = n
}

// Contains returns whether an edge to id exists (linear scan)
func (l *TimeOrderedList) Contains(id int) bool {
	found := false
	l.Each(func(e Edge) bool {
		found = e.ID == id
		return !found
	})
	return found
}

// Each calls fn for every edge front to back until fn returns false
func (l *TimeOrderedList) Each(fn func(e Edge) bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if !fn(cur.edge) {
			return
		}
	}
}

// Edges returns all edges, most recent first
func (l *TimeOrderedList) Edges() []Edge {
	edges := make([]Edge, 0, l.size)
	l.Each(func(e Edge) bool {
		edges = append(edges, e)
		return true
	})
	return edges
}

// IDs returns the neighbor ids of all edges, most recent first
func (l *TimeOrderedList) IDs() []int {
	ids := make([]int, 0, l.size)
	l.Each(func(e Edge) bool {
		ids = append(ids, e.ID)
		return true
	})
	return ids
}
