// Package lstore implements a local, in-memory, single-node social store based
// on the store.ISocialStore interface. It provides a thin, synchronized wrapper
// around the three engines of the db package. Data is stored entirely in memory
// and is not persisted between process restarts.
//
// Key Features:
//   - Pure in-memory storage without persistence
//   - One read-write lock per engine (users, weets, followers), so queries on
//     different datasets never block each other
//   - Validation of timestamps before they reach the engines
//   - Operation and rejection counters exported with VictoriaMetrics
//
// Implementation Details:
//
//   - Locking: Inserting into an engine rotates tree nodes in place. Writers
//     take the exclusive lock of their engine, readers the shared lock. The
//     engines return freshly allocated slices, so results can be used after
//     the lock was released.
//
//   - Validation: Mutations with a zero timestamp are rejected with a
//     store.Error of code RetCInvalidOperation and never reach the engines.
//
//   - Metrics: Every call increments dweet_store_operations_total, rejected
//     mutations (duplicate ids, self follows, duplicate relationships) also
//     increment dweet_store_rejected_total. Both are labeled with the store
//     name and the operation. They are exposed by the server on /metrics.
//
// Usage Example:
//
//	// LLRBEngines creates the engines of the llrb package
//	s := lstore.NewLocalStore(lstore.LLRBEngines, &lstore.Options{Name: "shard-1"})
//
//	ok, err := s.AddFollower(1, 2, time.Now())
//	followers, found, err := s.GetFollowers(2)
package lstore
