// Package server implements the RPC server of dWeet. It provides the adapter
// translating RPC messages into store.ISocialStore calls, along with the core
// server implementation that manages shards and request routing.
//
// The package focuses on:
//   - Server-side RPC request handling for all social store operations
//   - Adapter pattern to decouple application logic from RPC mechanisms
//   - Multiple independent shards per server, addressed by id
//   - Request statistics per message type
//
// Key Components:
//
//   - IRPCServerAdapter: Interface defining the contract for all server adapters,
//     with the Handle method that processes incoming requests against a
//     store.ISocialStore.
//
//   - NewISocialStoreServerAdapter: Factory function creating the adapter for
//     social store operations. Errors returned by the store are copied into the
//     response including their store.RetCode.
//
//   - NewRPCServer: Factory function creating a configured server with the specified
//     transport and serializer mechanisms. Shards are kept in a concurrent
//     xsync.MapOf, every shard is a local store (lstore) on the llrb engines.
//
//   - Statistics: every request updates a go-metrics timer named after its
//     message type (e.g. "rpc.get_followers"), failed requests increment
//     "rpc.errors". With a positive StatsInterval the registry is logged
//     periodically through the "rpc" logger.
//
// Usage Example:
//
//	config := common.ServerConfig{
//	  Shards:        []common.ServerShard{{ShardID: 1}, {ShardID: 2}},
//	  Endpoint:      "0.0.0.0:8080",
//	  LogLevel:      "info",
//	  StatsInterval: 60,
//	  Metrics:       true,
//	}
//
//	s := server.NewRPCServer(config, http.NewHttpServerTransport(), serializer.NewJSONSerializer())
//	if err := s.Serve(); err != nil {
//	  log.Fatalf("Server error: %v", err)
//	}
//
// Thread Safety:
//
//	The server implementation is thread-safe and can handle concurrent requests
//	across multiple connections. Each request is processed independently.
//	Serve is not thread-safe and should be called only once.
package server
