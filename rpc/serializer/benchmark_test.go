package serializer

import (
	"fmt"
	"testing"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/rpc/common"
)

// benchmarkMessages returns a set of messages for targeted benchmarking
func benchmarkMessages() map[string]common.Message {
	users := make([]model.User, 100)
	for i := range users {
		users[i] = model.User{ID: i, Name: fmt.Sprintf("user-%d", i), DateJoined: testDate}
	}
	weets := make([]model.Weet, 100)
	for i := range weets {
		weets[i] = model.Weet{ID: i, UserID: i % 7, Message: "a short message about #benchmarks", Date: testDate}
	}
	ids := make([]int, 1000)
	for i := range ids {
		ids[i] = i
	}

	return map[string]common.Message{
		"Empty":        {MsgType: common.MsgTSuccess},
		"IDRequest":    *common.NewIDRequest(common.MsgTGetFollowers, 42),
		"AddWeet":      *common.NewAddWeetRequest(weets[0]),
		"Users100":     *common.NewUsersResponse(common.MsgTGetUsers, users, nil),
		"Weets100":     *common.NewWeetsResponse(common.MsgTGetWeets, weets, nil),
		"IDs1000":      *common.NewIDsResponse(common.MsgTGetTopUsers, ids, true, nil),
		"ErrorMessage": *common.NewErrorResponse("Lorem ipsum dolor sit amet, consectetur adipiscing elit."),
	}
}

// BenchmarkSerialize benchmarks serialization for all implementations with various message types
func BenchmarkSerialize(b *testing.B) {
	messages := benchmarkMessages()

	for name, factory := range testSerializers {
		for msgName, msg := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := serializer.Serialize(msg); err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks deserialization for all implementations with various message types
func BenchmarkDeserialize(b *testing.B) {
	messages := benchmarkMessages()

	for name, factory := range testSerializers {
		for msgName, msg := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				data, err := serializer.Serialize(msg)
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}
				b.ReportMetric(float64(len(data)), "bytes")
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var result common.Message
					if err := serializer.Deserialize(data, &result); err != nil {
						b.Fatalf("Failed to deserialize: %v", err)
					}
				}
			})
		}
	}
}
