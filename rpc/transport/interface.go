package transport

import (
	"github.com/ValentinKolb/dWeet/rpc/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ServerHandleFunc is called by a server transport for every request. It
// receives the id of the addressed shard and the encoded request and returns
// the encoded response. Unknown shards are answered with an error message by
// the handler, the transport never inspects the payload.
type ServerHandleFunc func(shardId uint64, req []byte) (resp []byte)

// IRPCServerTransport is the server side of a transport
type IRPCServerTransport interface {
	// RegisterHandler sets the handler for all shards. It must be called
	// before Listen
	RegisterHandler(handler ServerHandleFunc)
	// Listen serves requests on config.Endpoint and blocks until the
	// transport fails
	Listen(config common.ServerConfig) error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the client side of a transport.
// Implementations must be safe for concurrent use after Connect returned.
type IRPCClientTransport interface {
	// Connect initializes the transport with the endpoints, timeout and
	// retry settings of config
	Connect(config common.ClientConfig) error
	// Send delivers req to the given shard and returns the raw response.
	// Errors only describe transport failures, store errors travel inside
	// the response
	Send(shardId uint64, req []byte) (resp []byte, err error)
	// Close releases all connections, Send fails afterwards
	Close() error
}
