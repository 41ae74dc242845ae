package serializer

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/ValentinKolb/dWeet/rpc/common"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRPCSerializer{
	"JSON": NewJSONSerializer,
	"GOB":  NewGOBSerializer,
}

var testDate = time.Date(2016, time.April, 2, 18, 4, 5, 0, time.UTC)

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Basic message with just a type
		{MsgType: common.MsgTSuccess},

		// AddUser request
		*common.NewAddUserRequest(model.User{ID: 1, Name: "Alice", DateJoined: testDate}),

		// GetWeet response
		*common.NewWeetResponse(model.Weet{ID: 9, UserID: 1, Message: "hi #there", Date: testDate}, true, nil),

		// AddFollower request
		*common.NewAddFollowerRequest(1, 2, testDate),

		// Listing responses
		*common.NewUsersResponse(common.MsgTGetUsers, []model.User{
			{ID: 2, Name: "Bob", DateJoined: testDate.Add(time.Hour)},
			{ID: 1, Name: "Alice", DateJoined: testDate},
		}, nil),
		*common.NewIDsResponse(common.MsgTGetFollowers, []int{3, 1, 2}, true, nil),
		*common.NewTrendingResponse([]string{"#a", "#b"}, true, nil),
		*common.NewCountResponse(common.MsgTGetNumFollowers, 12, true, nil),

		// Error responses
		*common.NewOkResponse(common.MsgTAddWeet, false, store.NewError(store.RetCInvalidOperation, "date must be set")),
		*common.NewErrorResponse("test error message"),

		// Meta data
		{
			MsgType: common.MsgTInfo,
			Meta:    []byte(`{"topics":3}`),
		},
	}
}

// TestSerializerRoundTrip tests that messages can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	messages := testMessages()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, msg := range messages {
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message %d: %v", i, err)
					continue
				}

				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message %d: %v", i, err)
					continue
				}

				if !reflect.DeepEqual(msg, result) {
					t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, msg, result)
				}
			}
		})
	}
}

// TestMessageTypes tests each message type with each serializer
func TestMessageTypes(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for _, msgType := range append(common.MessageTypes(), common.MsgTSuccess, common.MsgTError) {
				msg := common.Message{MsgType: msgType}

				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message type %s: %v", msgType, err)
					continue
				}

				var result common.Message
				if err = serializer.Deserialize(data, &result); err != nil {
					t.Errorf("Failed to deserialize message type %s: %v", msgType, err)
					continue
				}

				if result.MsgType != msgType {
					t.Errorf("Message type doesn't match after round trip: Expected %s, got %s", msgType, result.MsgType)
				}
			}
		})
	}
}

// TestDeserializeGarbage tests that invalid input is reported as an error
func TestDeserializeGarbage(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			var result common.Message
			if err := factory().Deserialize([]byte("not a message at all"), &result); err == nil {
				t.Error("expected an error for garbage input")
			}
		})
	}
}

func TestNames(t *testing.T) {
	for name, factory := range testSerializers {
		if got := factory().Name(); got != strings.ToLower(name) {
			t.Errorf("expected name %q, got %q", strings.ToLower(name), got)
		}
	}
}
