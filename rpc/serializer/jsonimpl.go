package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/ValentinKolb/dWeet/rpc/common"
)

// NewJSONSerializer creates a new serializer using json encoding.
// Message types are encoded by name (e.g. "get_followers") and dates as
// RFC 3339 strings, which keeps the messages readable with curl.
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRPCSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) Name() string {
	return "json"
}

func (j jsonSerializerImpl) Serialize(msg common.Message) ([]byte, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("json: failed to encode %s message: %w", msg.MsgType, err)
	}
	return b, nil
}

func (j jsonSerializerImpl) Deserialize(b []byte, msg *common.Message) error {
	if err := json.Unmarshal(b, msg); err != nil {
		return fmt.Errorf("json: failed to decode message of %d bytes: %w", len(b), err)
	}
	return nil
}
