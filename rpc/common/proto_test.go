package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/store"
)

func TestMessageTypeNames(t *testing.T) {
	seen := map[string]MessageType{}
	for _, msgType := range append(MessageTypes(), MsgTSuccess, MsgTError) {
		name := msgType.String()
		if name == "unknown" {
			t.Errorf("message type %d has no name", msgType)
		}
		if other, ok := seen[name]; ok {
			t.Errorf("name %q used by %d and %d", name, other, msgType)
		}
		seen[name] = msgType

		data, err := json.Marshal(msgType)
		if err != nil {
			t.Fatalf("marshal %s: %v", name, err)
		}
		var decoded MessageType
		if err := json.Unmarshal(data, &decoded); err != nil || decoded != msgType {
			t.Errorf("expected %s after decoding, got %s (%v)", name, decoded, err)
		}
	}

	var decoded MessageType
	if err := json.Unmarshal([]byte(`"drop_table"`), &decoded); err == nil {
		t.Error("expected unknown names to be rejected")
	}
	if MessageType(200).String() != "unknown" {
		t.Error("expected out of range types to be unknown")
	}
}

func TestResponseErrors(t *testing.T) {
	if err := NewOkResponse(MsgTAddUser, true, nil).AsError(); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	// store errors keep their code
	resp := NewOkResponse(MsgTAddUser, false, store.NewError(store.RetCInvalidOperation, "date must be set"))
	var storeErr *store.Error
	if err := resp.AsError(); !errors.As(err, &storeErr) || storeErr.Code != store.RetCInvalidOperation || storeErr.Msg != "date must be set" {
		t.Errorf("expected the store error to survive, got %v", err)
	}

	// wrapped store errors too
	resp = NewOkResponse(MsgTAddUser, false, fmt.Errorf("shard 1: %w", store.NewError(store.RetCNotFound, "no shard")))
	if err := resp.AsError(); !errors.As(err, &storeErr) || storeErr.Code != store.RetCNotFound {
		t.Errorf("expected the wrapped store error to survive, got %v", err)
	}

	// other errors are plain
	resp = NewCountResponse(MsgTGetNumFollowers, 0, false, errors.New("boom"))
	if err := resp.AsError(); err == nil || errors.As(err, &storeErr) || err.Error() != "boom" {
		t.Errorf("expected a plain error, got %v", err)
	}

	if err := NewErrorResponse("bad request").AsError(); err == nil {
		t.Error("expected error responses to carry an error")
	}
}

func TestInfoResponse(t *testing.T) {
	info := store.Info{
		Users:  db.DatabaseInfo{DbType: db.ImplLLRB, Size: 3},
		Topics: 7,
	}
	decoded, err := NewInfoResponse(info, nil).DecodeInfo()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if decoded.Users.Size != 3 || decoded.Users.DbType != db.ImplLLRB || decoded.Topics != 7 {
		t.Errorf("unexpected info: %+v", decoded)
	}
}
