// Package testing provides standardised tests and benchmarks for engine
// implementations of the db package interfaces.
//
// The package contains:
//   - RunUserDBTests, RunWeetDBTests, RunFollowerDBTests: conformance suites
//     covering ordering, duplicate handling, absence and trending rules
//   - RunWeetDBBenchmarks, RunFollowerDBBenchmarks: throughput of common
//     operations on a randomly generated dataset
//   - Day: a deterministic timestamp helper shared by the suites
//
// Example usage:
//
//	// Running the standard test suites
//	testing.RunUserDBTests(t, "MyUsers", func() db.UserDB {
//		return NewMyUserDB()
//	})
//
//	// Running performance benchmarks
//	testing.RunFollowerDBBenchmarks(b, "MyGraph", func() db.FollowerDB {
//		return NewMyGraph()
//	})
package testing
