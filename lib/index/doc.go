// Package index provides the in-memory indexing primitives shared by all
// dWeet engines. Every structure in this package is append-only and
// single-threaded; callers that need concurrent access must provide their
// own synchronization (see the lstore package).
//
// The package contains:
//   - OrderedIndex: a left-leaning red-black tree (LLRB) backed by an
//     append-only node arena. It is parameterized by a comparator and a
//     duplicate-key policy, so the same type serves as a unique primary key
//     index, a non-unique time index and a topic index.
//   - TimeOrderedList: a singly linked list kept in descending timestamp
//     order, used for follower/follows adjacency and as scratch space for
//     intersection results.
//   - Queue: a FIFO used to collect traversal results in order before they
//     are materialized into a slice.
//   - Ranked / SortDescending / TopN: an in-place partition-exchange sort
//     over (key, count) pairs for leaderboard style queries.
//
// Duplicate Policies:
//
//   - PolicyUnique: a second Put with a key comparing equal to an existing
//     key overwrites the stored value. The size of the index is unchanged.
//   - PolicyMulti: equal keys are permitted. A new entry is placed in front
//     of all existing entries with an equal key, which means that in-order
//     traversal yields equal keys in reverse insertion order (most recent
//     first).
//
// LLRB Invariants:
//
// After every Put the tree satisfies:
//  1. Symmetric order: in-order traversal yields keys in comparator order.
//  2. Red links lean left and no node has two red links in a row.
//  3. Every path from the root to a nil link has the same number of black
//     links.
//  4. The root is black.
//
// Example usage:
//
//	// Newest first time index
//	byDate := index.New[time.Time, int](index.Descending(time.Time.Compare), index.PolicyMulti)
//	byDate.Put(t1, 1)
//	byDate.Put(t2, 2)
//
//	// Collect all entries before a date
//	queue := byDate.Filter(func(k time.Time, _ int) bool { return k.Before(limit) })
//	ids := queue.Drain()
package index
