// Package client implements the RPC client of the dWeet store. It provides an
// implementation of the store.ISocialStore interface that forwards every
// operation to a remote shard.
//
// The package focuses on:
//   - Transparent RPC access to a remote social store
//   - Integration with the transport and serialization layers
//   - Keeping store errors intact, a *store.Error returned by the server is
//     returned as *store.Error by the client with the same RetCode
//
// Key Components:
//
//   - NewRPCStore: Factory function that creates a client implementing the
//     store.ISocialStore interface. All operations are sent to one shard via
//     the configured transport layer.
//
// Usage Example:
//
//	// Configure the client
//	config := common.ClientConfig{
//	  Endpoints:              []string{"localhost:8080"},
//	  TimeoutSecond:          5,
//	  RetryCount:             3,
//	  ConnectionsPerEndpoint: 4,
//	}
//
//	// Create store client
//	s, _ := client.NewRPCStore(1, config, http.NewHttpClientTransport(), serializer.NewJSONSerializer())
//
//	// Use the store
//	s.AddUser(model.User{ID: 1, Name: "Ada", DateJoined: time.Now()})
//	followers, found, _ := s.GetFollowers(1)
//
// Absence is reported the same way as by a local store: listings are empty
// slices, lookups return found == false.
//
// Thread Safety:
//
//	The client is thread-safe and can be used concurrently from multiple
//	goroutines without additional synchronization.
package client
