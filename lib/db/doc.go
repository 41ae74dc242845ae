// Package db defines the engine interfaces of dWeet. An engine is the
// single-threaded, error free core that indexes users, weets and follow
// relationships in memory.
//
// The package focuses on:
//   - Three narrow interfaces (UserDB, WeetDB, FollowerDB), one per dataset
//   - Explicit absence: every lookup returns a boolean "found" flag instead
//     of a nil record
//   - Standardized metadata reporting through DatabaseInfo
//
// Key Components:
//
//   - UserDB: users indexed by id (unique) and by join date (non-unique,
//     newest first). Range queries traverse the date index and filter.
//
//   - WeetDB: weets indexed by id, by timestamp and by topic. The topic of a
//     weet is the first hashtag found in its message; the engine counts how
//     often every topic was mentioned and answers trending queries.
//
//   - FollowerDB: per user adjacency lists (followers and follows) kept in
//     descending date order, plus leaderboard and intersection queries.
//
//   - DatabaseInfo: size and per index statistics (entries, height) of an
//     engine instance.
//
// Note on Ordering:
//   - All queries returning users or weets return them newest first.
//   - Entries with equal timestamps are returned in reverse insertion order.
//
// Note on Mutations:
//   - The engines are append-only. Rejected mutations (duplicate ids,
//     duplicate relationships, self follows) return false and leave the
//     engine unchanged.
//
// Note on Thread-Safety:
//   - Engines are NOT thread-safe. Inserting rotates tree nodes in place, so
//     readers must never run concurrently with a writer. The lstore package
//     (github.com/ValentinKolb/dWeet/lib/store/lstore) wraps engines with one
//     read-write lock per engine.
//
// Related Packages:
//
// The engines/llrb package (github.com/ValentinKolb/dWeet/lib/db/engines/llrb)
// implements all three interfaces on top of the left-leaning red-black
// trees and time ordered lists of the index package.
//
// The testing package (github.com/ValentinKolb/dWeet/lib/db/testing) provides
// standardized tests for engine implementations:
//   - RunUserDBTests, RunWeetDBTests, RunFollowerDBTests
package db
