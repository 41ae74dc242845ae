// Package common provides core data structures and utilities shared across
// the RPC packages of dWeet. It defines the message protocol, the configuration
// structures and the logging setup used by the other packages.
//
// The package focuses on:
//   - Message protocol definition for client server communication
//   - Configuration structures for client and server components
//   - Custom logging implementation integrated with Dragonboat's logger package
//
// Key Components:
//
//   - Message: Core data structure for all RPC communication, with a flexible
//     structure that adapts to the different operations of store.ISocialStore.
//     Includes factory methods for creating request and response messages.
//     Errors of type *store.Error keep their return code on the wire.
//
//   - MessageType: Enumeration of all supported operations, grouped into user,
//     weet, follower and metadata operations plus control messages.
//
//   - ServerConfig: Configuration of a server: served shards, endpoint, log
//     level, statistics interval and metrics exposition.
//
//   - ClientConfig: Configuration for client components, controlling connection
//     parameters, timeouts, and retry behavior.
//
//   - Logger: Custom logging implementation for Dragonboat's logger facade
//     (github.com/lni/dragonboat/v4/logger), providing consistent formatting
//     ("LEVEL | package | message") across the application.
package common
