// Package store provides the query surface of dWeet on top of the engines of
// the db package, adding unified error handling and a pluggable backend.
//
// The package focuses on:
//   - A unified interface (ISocialStore) for users, weets and follow
//     relationships, shared by the local store and the RPC client
//   - Pluggable engines through the DBFactory pattern
//
// Key Components:
//
//   - ISocialStore Interface: The core abstraction defining all operations of
//     the social store. Every method returns an error in addition to its
//     result. Domain outcomes (a rejected mutation, an unknown id, not enough
//     topics for trending) are NOT errors: they are reported through the
//     boolean return values. Errors indicate invalid input or a failure of
//     the infrastructure (serialization, transport, server).
//
//   - Error System: A structured error reporting mechanism using typed error codes
//     and descriptive messages. Errors created by a server are transported to
//     the client with their code, so callers can use errors.As on both sides.
//
//   - DBFactory: A function type creating the three engines (users, weets,
//     followers) of a store, providing dependency injection of the engines.
//
// Implementations:
//
//	- Local Store (lstore): synchronizes the engines with one read-write lock
//	  per engine and counts operations with VictoriaMetrics counters.
//	  Available in the "github.com/ValentinKolb/dWeet/lib/store/lstore" package.
//
//	- RPC Client (rpc/client): forwards every operation to a dWeet server.
//	  Available in the "github.com/ValentinKolb/dWeet/rpc/client" package.
//
// The testing package (github.com/ValentinKolb/dWeet/lib/store/testing) runs
// the same conformance suite against both implementations.
package store
