// Package testing provides a conformance suite for store.ISocialStore
// implementations.
//
// RunIStoreTests only uses the public interface of the store, so the same
// suite validates the local store (lstore) and the RPC client talking to a
// server backed by a local store.
//
// Example usage:
//
//	testing.RunIStoreTests(t, "LocalStore", func() store.ISocialStore {
//		return lstore.NewLocalStore(lstore.LLRBEngines, nil)
//	})
package testing
