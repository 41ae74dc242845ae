// Package util provides statistics helpers for engine implementations that
// satisfy the interfaces of the db package.
//
// The package contains:
//   - Stats / NewStats: mean, min, max and standard deviation of a sample set
//   - DegreeStats: spread of follow relationships over users, reported by
//     FollowerDB engines in their DatabaseInfo
//   - LengthHistogram: exponential bucket histogram for text lengths, used to
//     report the distribution of message lengths without keeping the samples
//
// The histogram is safe for concurrent use, the plain functions keep no state.
package util
