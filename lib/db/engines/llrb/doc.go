// Package llrb implements the engine interfaces of the db package on top of
// the left-leaning red-black trees of the index package.
//
// The package provides three engines:
//
//   - NewUserDirectory (db.UserDB): two indexes over the same user records, one
//     unique index keyed by id and one multi index keyed by join date with a
//     descending comparator. Listing and range queries traverse the date index
//     and filter, so they return users newest first.
//
//   - NewMessageStore (db.WeetDB): the same layout for weets, plus a topic index
//     mapping every hashtag to its mention counter. The topic of a weet is the
//     first match of `#(\w+|\W+)` in its message, including the '#'. Trending
//     topics are computed by ranking all counters with index.SortDescending.
//
//   - NewFollowerGraph (db.FollowerDB): a unique index from user id to a
//     relationship holding two index.TimeOrderedList (followers and follows).
//     An edge a -> b is stored in a's follows and in b's followers with the same
//     date. Users enter the graph with their first edge, in either direction.
//
// Complexity (n entries, k edges of a user):
//   - Add: O(log n) per index, AddFollower additionally O(k) for the duplicate
//     check and the ordered list insert
//   - Lookup by id: O(log n)
//   - Filtered queries and trending: O(n)
//   - Mutual queries: O(k1 * k2)
//
// Thread-safety: none of the engines is thread-safe. See the lstore package for
// a synchronized wrapper.
package llrb
