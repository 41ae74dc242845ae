// Package rpc provides the remote access layer of dWeet. It connects clients
// to the social stores held by a dWeet server.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures used across the RPC system, including the
//     Message protocol, configuration structures, and logging.
//
//   - transport: Network communication abstractions. The http subpackage
//     provides the client and server transport, including the optional
//     prometheus endpoint of the server.
//
//   - serializer: Message serialization (JSON, GOB) for converting between
//     Message objects and byte arrays.
//
//   - client: The RPC client implementing store.ISocialStore, allowing
//     applications to use a remote store like a local one.
//
//   - server: RPC server components that handle incoming requests, including
//     the adapter for social store operations and request statistics.
package rpc
