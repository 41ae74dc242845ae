package client

import (
	"fmt"

	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/transport"
	"github.com/lni/dragonboat/v4/logger"
)

var (
	Logger = logger.GetLogger("rpc")
)

// rpcClientAdapter is a struct that stores all data needed for an implementation of an RPC client
type rpcClientAdapter struct {
	shardId    uint64
	config     common.ClientConfig
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
}

// invokeRPCRequest is a helper function used for all RPC Clients to send requests
// It takes a shard ID, a request message, a transport layer and a serializer as parameters
// It returns a response message and an error if any occurs
// This method also checks if the response is an error response and if the type of the response is the expected type
func invokeRPCRequest(shardId uint64, req *common.Message, transport transport.IRPCClientTransport, serializer serializer.IRPCSerializer) (*common.Message, error) {
	// Serialize the request
	reqBytes, err := serializer.Serialize(*req)
	if err != nil {
		return nil, fmt.Errorf("RPC ISocialStoreAdapter - failed to serialize %s request: %w", req.MsgType, err)
	}

	// Send the request
	respBytes, err := transport.Send(shardId, reqBytes)
	if err != nil {
		return nil, fmt.Errorf("RPC ISocialStoreAdapter - %s request to shard %d failed: %w", req.MsgType, shardId, err)
	}

	// Deserialize the response
	resp := &common.Message{}
	err = serializer.Deserialize(respBytes, resp)
	if err != nil {
		return nil, fmt.Errorf("RPC ISocialStoreAdapter - failed to deserialize response: %w", err)
	}

	// Check if the response is an error response, store errors keep their code
	if err := resp.AsError(); err != nil {
		Logger.Debugf("%s request to shard %d returned an error: %v", req.MsgType, shardId, err)
		return nil, err
	}

	// Check if the type of the response is the expected type
	if resp.MsgType != req.MsgType {
		return nil, fmt.Errorf("RPC ISocialStoreAdapter - Unexpected message type: %s, expected %s", resp.MsgType, req.MsgType)
	}

	// Return the response
	return resp, nil
}
