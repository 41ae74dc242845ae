package server

import (
	"errors"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
	storetesting "github.com/ValentinKolb/dWeet/lib/store/testing"
	"github.com/ValentinKolb/dWeet/rpc/client"
	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/transport"
	gometrics "github.com/rcrowley/go-metrics"
)

// loopback connects a client directly to the handler of a server
type loopback struct {
	handler transport.ServerHandleFunc
}

func (l *loopback) RegisterHandler(handler transport.ServerHandleFunc) { l.handler = handler }
func (l *loopback) Listen(common.ServerConfig) error                   { return nil }
func (l *loopback) Connect(common.ClientConfig) error                  { return nil }
func (l *loopback) Close() error                                       { return nil }

func (l *loopback) Send(shardId uint64, req []byte) ([]byte, error) {
	if l.handler == nil {
		return nil, errors.New("loopback: no handler registered")
	}
	return l.handler(shardId, req), nil
}

func testConfig(shards ...uint64) common.ServerConfig {
	config := common.ServerConfig{LogLevel: "error"}
	for _, id := range shards {
		config.Shards = append(config.Shards, common.ServerShard{ShardID: id})
	}
	return config
}

// startServer serves the given shards over a loopback transport
func startServer(t *testing.T, s serializer.IRPCSerializer, shards ...uint64) (*rpcServer, *loopback) {
	t.Helper()
	lb := &loopback{}
	srv := NewRPCServer(testConfig(shards...), lb, s)
	if err := srv.Serve(); err != nil {
		t.Fatalf("failed to start server: %v", err)
	}
	return srv, lb
}

func connect(t *testing.T, lb *loopback, s serializer.IRPCSerializer, shardId uint64) store.ISocialStore {
	t.Helper()
	c, err := client.NewRPCStore(shardId, common.ClientConfig{Endpoints: []string{"loopback"}}, lb, s)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// --------------------------------------------------------------------------
// Tests
// --------------------------------------------------------------------------

func TestStoreOverRPC(t *testing.T) {
	serializers := map[string]func() serializer.IRPCSerializer{
		"json": serializer.NewJSONSerializer,
		"gob":  serializer.NewGOBSerializer,
	}

	for name, newSerializer := range serializers {
		storetesting.RunIStoreTests(t, name, func() store.ISocialStore {
			s := newSerializer()
			lb := &loopback{}
			if err := NewRPCServer(testConfig(1), lb, s).Serve(); err != nil {
				panic(err)
			}
			c, err := client.NewRPCStore(1, common.ClientConfig{Endpoints: []string{"loopback"}}, lb, s)
			if err != nil {
				panic(err)
			}
			return c
		})
	}
}

func TestShardsAreIndependent(t *testing.T) {
	s := serializer.NewJSONSerializer()
	_, lb := startServer(t, s, 1, 2)

	first := connect(t, lb, s, 1)
	second := connect(t, lb, s, 2)

	if ok, err := first.AddUser(model.User{ID: 1, Name: "Ada", DateJoined: time.Date(2016, 1, 1, 12, 0, 0, 0, time.UTC)}); err != nil || !ok {
		t.Fatalf("AddUser failed: (%v, %v)", ok, err)
	}
	if _, found, err := second.GetUser(1); err != nil || found {
		t.Errorf("expected user to be absent on shard 2, got (%v, %v)", found, err)
	}
	if _, found, err := first.GetUser(1); err != nil || !found {
		t.Errorf("expected user on shard 1, got (%v, %v)", found, err)
	}
}

func TestUnknownShard(t *testing.T) {
	s := serializer.NewJSONSerializer()
	srv, lb := startServer(t, s, 1)
	c := connect(t, lb, s, 7)

	if _, err := c.GetUsers(); err == nil {
		t.Error("expected an error for an unknown shard")
	}
	if n := gometrics.GetOrRegisterCounter("rpc.errors", srv.stats).Count(); n != 1 {
		t.Errorf("expected 1 error, got %d", n)
	}
}

func TestRequestStats(t *testing.T) {
	s := serializer.NewGOBSerializer()
	srv, lb := startServer(t, s, 1)
	c := connect(t, lb, s, 1)

	for i := 0; i < 3; i++ {
		if _, _, err := c.GetFollowers(i); err != nil {
			t.Fatalf("GetFollowers failed: %v", err)
		}
	}
	if _, err := c.AddUser(model.User{ID: 1, Name: "no date"}); err == nil {
		t.Fatal("expected AddUser without a date to fail")
	}

	if n := gometrics.GetOrRegisterTimer("rpc."+common.MsgTGetFollowers.String(), srv.stats).Count(); n != 3 {
		t.Errorf("expected 3 timed get_followers requests, got %d", n)
	}
	if n := gometrics.GetOrRegisterTimer("rpc."+common.MsgTAddUser.String(), srv.stats).Count(); n != 1 {
		t.Errorf("expected 1 timed add_user request, got %d", n)
	}
	if n := gometrics.GetOrRegisterCounter("rpc.errors", srv.stats).Count(); n != 1 {
		t.Errorf("expected 1 error, got %d", n)
	}
}

func TestGarbageRequest(t *testing.T) {
	s := serializer.NewJSONSerializer()
	_, lb := startServer(t, s, 1)

	resp := &common.Message{}
	if err := s.Deserialize(lb.handler(1, []byte("not a message")), resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.MsgType != common.MsgTError || resp.AsError() == nil {
		t.Errorf("expected an error response, got %+v", resp)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		shards []uint64
	}{
		{"no shards", nil},
		{"duplicate shard", []uint64{1, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := NewRPCServer(testConfig(tt.shards...), &loopback{}, serializer.NewJSONSerializer())
			if err := srv.Serve(); err == nil {
				t.Error("expected Serve to fail")
			}
		})
	}
}
