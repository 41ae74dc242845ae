package serializer

import "github.com/ValentinKolb/dWeet/rpc/common"

// IRPCSerializer is the interface for all Message Serializers.
// Client and server of a shard must use the same serializer.
type IRPCSerializer interface {
	// Name returns the name of the format as used by the --serializer flag
	Name() string
	// Serialize serializes a Message into a byte array
	// It returns the serialized byte array and an error if any
	Serialize(msg common.Message) ([]byte, error)
	// Deserialize deserializes a byte array into a Message
	// It takes a byte array and a pointer to a Message as parameters.
	// Decoding a response of a different serializer returns an error
	Deserialize(b []byte, msg *common.Message) error
}
