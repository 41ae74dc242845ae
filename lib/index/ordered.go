package index

import (
	"cmp"
	"fmt"
	"math"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

// Policy defines how an OrderedIndex treats keys that compare equal
type Policy uint8

const (
	PolicyUnique Policy = iota // equal keys overwrite the stored value
	PolicyMulti                // equal keys are kept, newest entry first
)

func (p Policy) String() string {
	switch p {
	case PolicyUnique:
		return "unique"
	case PolicyMulti:
		return "multi"
	default:
		return "unknown"
	}
}

// Comparator returns a negative number if a < b, zero if a == b and a positive
// number if a > b.
type Comparator[K any] func(a, b K) int

// Descending reverses the order of a comparator
func Descending[K any](c Comparator[K]) Comparator[K] {
	return func(a, b K) int {
		return c(b, a)
	}
}

// --------------------------------------------------------------------------
// Node Arena
// --------------------------------------------------------------------------

// handle addresses a node in the arena of an OrderedIndex
type handle int32

const nilHandle handle = -1

const (
	red   = true
	black = false
)

// node is a single tree node. The color is the color of the link from the
// parent to this node.
type node[K any, V any] struct {
	key   K
	value V
	left  handle
	right handle
	color bool
}

// --------------------------------------------------------------------------
// OrderedIndex
// --------------------------------------------------------------------------

// OrderedIndex is a left-leaning red-black tree mapping keys to values.
// Nodes are allocated from an append-only arena and addressed by handles,
// there is no delete operation.
//
// Thread-safety: OrderedIndex is not thread-safe. Put rotates nodes in place,
// concurrent readers must be excluded while a Put is running.
type OrderedIndex[K any, V any] struct {
	nodes  []node[K, V]
	root   handle
	cmp    Comparator[K]
	policy Policy
}

// New creates an empty index ordered by the given comparator
func New[K any, V any](c Comparator[K], policy Policy) *OrderedIndex[K, V] {
	if c == nil {
		panic("index: comparator must not be nil")
	}
	return &OrderedIndex[K, V]{
		nodes:  make([]node[K, V], 0),
		root:   nilHandle,
		cmp:    c,
		policy: policy,
	}
}

// NewOrdered creates an empty index for naturally ordered keys (ascending)
func NewOrdered[K cmp.Ordered, V any](policy Policy) *OrderedIndex[K, V] {
	return New[K, V](cmp.Compare[K], policy)
}

// Len returns the number of entries in the index
func (t *OrderedIndex[K, V]) Len() int {
	return len(t.nodes)
}

// Policy returns the duplicate key policy of the index
func (t *OrderedIndex[K, V]) Policy() Policy {
	return t.policy
}

// --------------------------------------------------------------------------
// Lookup
// --------------------------------------------------------------------------

// Get returns the value stored for key. The boolean return value is false if
// no entry compares equal to key. For multi indexes the first equal entry
// met on the search path is returned.
func (t *OrderedIndex[K, V]) Get(key K) (V, bool) {
	x := t.root
	for x != nilHandle {
		n := &t.nodes[x]
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			x = n.left
		case c > 0:
			x = n.right
		default:
			return n.value, true
		}
	}
	var zero V
	return zero, false
}

// Has returns whether an entry with an equal key exists
func (t *OrderedIndex[K, V]) Has(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Min returns the smallest key in comparator order
func (t *OrderedIndex[K, V]) Min() (K, bool) {
	var key K
	if t.root == nilHandle {
		return key, false
	}
	x := t.root
	for x != nilHandle {
		key = t.nodes[x].key
		x = t.nodes[x].left
	}
	return key, true
}

// Max returns the largest key in comparator order
func (t *OrderedIndex[K, V]) Max() (K, bool) {
	var key K
	if t.root == nilHandle {
		return key, false
	}
	x := t.root
	for x != nilHandle {
		key = t.nodes[x].key
		x = t.nodes[x].right
	}
	return key, true
}

// Height returns the height of the tree. An empty tree has height -1 and a
// tree with a single node has height 0.
func (t *OrderedIndex[K, V]) Height() int {
	return t.height(t.root)
}

func (t *OrderedIndex[K, V]) height(x handle) int {
	if x == nilHandle {
		return -1
	}
	return 1 + max(t.height(t.nodes[x].left), t.height(t.nodes[x].right))
}

// --------------------------------------------------------------------------
// Insertion
// --------------------------------------------------------------------------

// Put inserts a key-value pair. It returns false if a unique index already
// contained the key, in which case the value was overwritten in place.
func (t *OrderedIndex[K, V]) Put(key K, value V) (inserted bool) {
	before := len(t.nodes)
	t.root = t.insert(t.root, key, value)
	t.nodes[t.root].color = black
	return len(t.nodes) > before
}

// insert descends recursively and fixes right leaning and doubled red links
// on the way back up.
//
// Note: the arena may grow during the recursive call, so child handles are
// assigned only after the call returned and never through a stale reference.
func (t *OrderedIndex[K, V]) insert(h handle, key K, value V) handle {
	if h == nilHandle {
		return t.alloc(key, value)
	}

	c := t.cmp(key, t.nodes[h].key)
	switch {
	case c < 0:
		l := t.insert(t.nodes[h].left, key, value)
		t.nodes[h].left = l
	case c > 0:
		r := t.insert(t.nodes[h].right, key, value)
		t.nodes[h].right = r
	case t.policy == PolicyUnique:
		t.nodes[h].value = value
	default:
		// equal key in a multi index: place the new entry in front
		l := t.insert(t.nodes[h].left, key, value)
		t.nodes[h].left = l
	}

	if t.isRed(t.nodes[h].right) && !t.isRed(t.nodes[h].left) {
		h = t.rotateLeft(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[t.nodes[h].left].left) {
		h = t.rotateRight(h)
	}
	if t.isRed(t.nodes[h].left) && t.isRed(t.nodes[h].right) {
		t.flipColors(h)
	}
	return h
}

func (t *OrderedIndex[K, V]) alloc(key K, value V) handle {
	if len(t.nodes) >= math.MaxInt32 {
		panic(fmt.Sprintf("index: arena exhausted after %d nodes", len(t.nodes)))
	}
	t.nodes = append(t.nodes, node[K, V]{
		key:   key,
		value: value,
		left:  nilHandle,
		right: nilHandle,
		color: red,
	})
	return handle(len(t.nodes) - 1)
}

func (t *OrderedIndex[K, V]) isRed(x handle) bool {
	if x == nilHandle {
		return false
	}
	return t.nodes[x].color == red
}

func (t *OrderedIndex[K, V]) rotateLeft(h handle) handle {
	x := t.nodes[h].right
	t.nodes[h].right = t.nodes[x].left
	t.nodes[x].left = h
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = red
	return x
}

func (t *OrderedIndex[K, V]) rotateRight(h handle) handle {
	x := t.nodes[h].left
	t.nodes[h].left = t.nodes[x].right
	t.nodes[x].right = h
	t.nodes[x].color = t.nodes[h].color
	t.nodes[h].color = red
	return x
}

// flipColors requires a black node with two red children
func (t *OrderedIndex[K, V]) flipColors(h handle) {
	t.nodes[h].color = red
	t.nodes[t.nodes[h].left].color = black
	t.nodes[t.nodes[h].right].color = black
}

// --------------------------------------------------------------------------
// Traversal
// --------------------------------------------------------------------------

// Ascend calls fn for every entry in comparator order until fn returns false
func (t *OrderedIndex[K, V]) Ascend(fn func(key K, value V) bool) {
	t.ascend(t.root, fn)
}

func (t *OrderedIndex[K, V]) ascend(x handle, fn func(K, V) bool) bool {
	if x == nilHandle {
		return true
	}
	if !t.ascend(t.nodes[x].left, fn) {
		return false
	}
	if !fn(t.nodes[x].key, t.nodes[x].value) {
		return false
	}
	return t.ascend(t.nodes[x].right, fn)
}

// Filter traverses the whole index and enqueues every value matching pred.
// A nil pred matches every entry.
func (t *OrderedIndex[K, V]) Filter(pred func(key K, value V) bool) *Queue[V] {
	queue := NewQueue[V]()
	t.Ascend(func(key K, value V) bool {
		if pred == nil || pred(key, value) {
			queue.Enqueue(value)
		}
		return true
	})
	return queue
}

// Values returns all values in comparator order
func (t *OrderedIndex[K, V]) Values() []V {
	return t.Filter(nil).Drain()
}

// Keys returns all keys in comparator order
func (t *OrderedIndex[K, V]) Keys() []K {
	keys := make([]K, 0, len(t.nodes))
	t.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
