package index

import (
	"math/rand"
	"sort"
	"testing"
	"time"
)

// --------------------------------------------------------------------------
// Invariant helpers
// --------------------------------------------------------------------------

// checkLLRB verifies symmetric order, left leaning red links, no double red
// links and perfect black balance
func checkLLRB[K any, V any](t *testing.T, idx *OrderedIndex[K, V]) {
	t.Helper()

	if idx.root != nilHandle && idx.isRed(idx.root) {
		t.Fatalf("root must be black")
	}

	// symmetric order
	keys := idx.Keys()
	for i := 1; i < len(keys); i++ {
		if idx.cmp(keys[i-1], keys[i]) > 0 {
			t.Fatalf("in-order traversal not sorted at position %d", i)
		}
	}
	if len(keys) != idx.Len() {
		t.Fatalf("traversal yielded %d keys, expected %d", len(keys), idx.Len())
	}

	// red links lean left, no two reds in a row
	var is23 func(x handle) bool
	is23 = func(x handle) bool {
		if x == nilHandle {
			return true
		}
		n := idx.nodes[x]
		if idx.isRed(n.right) {
			return false
		}
		if x != idx.root && idx.isRed(x) && idx.isRed(n.left) {
			return false
		}
		return is23(n.left) && is23(n.right)
	}
	if !is23(idx.root) {
		t.Fatalf("tree is not a 2-3 tree")
	}

	// every path from the root to a leaf has the same number of black links
	blackHeight := 0
	for x := idx.root; x != nilHandle; x = idx.nodes[x].left {
		if !idx.isRed(x) {
			blackHeight++
		}
	}
	var balanced func(x handle, remaining int) bool
	balanced = func(x handle, remaining int) bool {
		if x == nilHandle {
			return remaining == 0
		}
		if !idx.isRed(x) {
			remaining--
		}
		return balanced(idx.nodes[x].left, remaining) && balanced(idx.nodes[x].right, remaining)
	}
	if !balanced(idx.root, blackHeight) {
		t.Fatalf("tree is not black balanced")
	}
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

// TestOrderedIndexEmpty tests the behavior of an empty index
func TestOrderedIndexEmpty(t *testing.T) {
	idx := NewOrdered[int, string](PolicyUnique)

	if idx.Len() != 0 {
		t.Errorf("new index should be empty, has %d entries", idx.Len())
	}
	if idx.Height() != -1 {
		t.Errorf("empty index should have height -1, got %d", idx.Height())
	}
	if _, ok := idx.Get(42); ok {
		t.Error("Get on empty index should return ok=false")
	}
	if _, ok := idx.Min(); ok {
		t.Error("Min on empty index should return ok=false")
	}
	if _, ok := idx.Max(); ok {
		t.Error("Max on empty index should return ok=false")
	}
	if values := idx.Values(); values == nil || len(values) != 0 {
		t.Errorf("Values on empty index should be an empty slice, got %v", values)
	}
}

// TestOrderedIndexUnique tests put and get on a unique index
func TestOrderedIndexUnique(t *testing.T) {
	idx := NewOrdered[int, string](PolicyUnique)

	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		if !idx.Put(k, "v") {
			t.Errorf("Put(%d) should insert a new entry", k)
		}
	}

	if idx.Put(3, "updated") {
		t.Error("Put with an existing key should overwrite, not insert")
	}
	if idx.Len() != 7 {
		t.Errorf("expected 7 entries, got %d", idx.Len())
	}

	value, ok := idx.Get(3)
	if !ok || value != "updated" {
		t.Errorf("expected (updated, true), got (%s, %t)", value, ok)
	}
	if _, ok := idx.Get(6); ok {
		t.Error("Get on a missing key should return ok=false")
	}

	if min, _ := idx.Min(); min != 1 {
		t.Errorf("expected min 1, got %d", min)
	}
	if max, _ := idx.Max(); max != 9 {
		t.Errorf("expected max 9, got %d", max)
	}

	checkLLRB(t, idx)
}

// TestOrderedIndexMultiNewestFirst tests that equal keys are kept and the
// most recently inserted entry is traversed first
func TestOrderedIndexMultiNewestFirst(t *testing.T) {
	idx := NewOrdered[int, string](PolicyMulti)

	idx.Put(2, "a")
	idx.Put(1, "b")
	idx.Put(2, "c")
	idx.Put(3, "d")
	idx.Put(2, "e")

	if idx.Len() != 5 {
		t.Fatalf("expected 5 entries, got %d", idx.Len())
	}

	expected := []string{"b", "e", "c", "a", "d"}
	got := idx.Values()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected traversal %v, got %v", expected, got)
		}
	}

	checkLLRB(t, idx)
}

// TestOrderedIndexDescendingTime tests a newest first time index
func TestOrderedIndexDescendingTime(t *testing.T) {
	idx := New[time.Time, int](Descending(time.Time.Compare), PolicyMulti)

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	idx.Put(base, 1)
	idx.Put(base.Add(48*time.Hour), 2)
	idx.Put(base.Add(24*time.Hour), 3)
	idx.Put(base, 4)

	expected := []int{2, 3, 4, 1}
	got := idx.Values()
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected traversal %v, got %v", expected, got)
		}
	}

	before := idx.Filter(func(k time.Time, _ int) bool {
		return k.Before(base.Add(24 * time.Hour))
	}).Drain()
	if len(before) != 2 || before[0] != 4 || before[1] != 1 {
		t.Errorf("expected [4 1], got %v", before)
	}
}

// TestOrderedIndexInvariantAfterEveryPut tests that the search tree and LLRB
// invariants hold after every single insertion
func TestOrderedIndexInvariantAfterEveryPut(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, policy := range []Policy{PolicyUnique, PolicyMulti} {
		t.Run(policy.String(), func(t *testing.T) {
			idx := NewOrdered[int, int](policy)
			for i := 0; i < 500; i++ {
				idx.Put(rng.Intn(200), i)
				checkLLRB(t, idx)
			}
		})
	}
}

// TestOrderedIndexSortedInput tests that ascending and descending input
// keeps the tree balanced
func TestOrderedIndexSortedInput(t *testing.T) {
	const n = 1 << 12

	asc := NewOrdered[int, int](PolicyUnique)
	desc := NewOrdered[int, int](PolicyUnique)
	for i := 0; i < n; i++ {
		asc.Put(i, i)
		desc.Put(n-i, i)
	}

	// an LLRB with n nodes has height at most 2 log2(n)
	limit := 2 * 12
	if asc.Height() > limit {
		t.Errorf("ascending input: height %d exceeds %d", asc.Height(), limit)
	}
	if desc.Height() > limit {
		t.Errorf("descending input: height %d exceeds %d", desc.Height(), limit)
	}

	checkLLRB(t, asc)
	checkLLRB(t, desc)
}

// TestOrderedIndexMatchesSort tests traversal against a sorted copy
func TestOrderedIndexMatchesSort(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	idx := NewOrdered[int, int](PolicyMulti)

	inserted := make([]int, 0, 1000)
	for i := 0; i < 1000; i++ {
		k := rng.Intn(10000)
		idx.Put(k, k)
		inserted = append(inserted, k)
	}
	sort.Ints(inserted)

	got := idx.Values()
	for i := range inserted {
		if got[i] != inserted[i] {
			t.Fatalf("position %d: expected %d, got %d", i, inserted[i], got[i])
		}
	}
}

// TestOrderedIndexAscendStops tests early termination of a traversal
func TestOrderedIndexAscendStops(t *testing.T) {
	idx := NewOrdered[int, int](PolicyUnique)
	for i := 0; i < 100; i++ {
		idx.Put(i, i)
	}

	visited := 0
	idx.Ascend(func(k, _ int) bool {
		visited++
		return k < 9
	})
	if visited != 10 {
		t.Errorf("expected traversal to stop after 10 entries, visited %d", visited)
	}
}

// BenchmarkOrderedIndexPut measures insertion of random keys
func BenchmarkOrderedIndexPut(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	idx := NewOrdered[int, int](PolicyUnique)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Put(rng.Int(), i)
	}
}

// BenchmarkOrderedIndexGet measures lookups in a tree with 100k entries
func BenchmarkOrderedIndexGet(b *testing.B) {
	idx := NewOrdered[int, int](PolicyUnique)
	for i := 0; i < 100_000; i++ {
		idx.Put(i, i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		idx.Get(i % 100_000)
	}
}
