package client

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/ValentinKolb/dWeet/rpc/common"
	"github.com/ValentinKolb/dWeet/rpc/serializer"
	"github.com/ValentinKolb/dWeet/rpc/transport"
)

// NewRPCStore creates a new RPC store
// The function takes a shard ID, a config, a transport and a serializer as parameters
// It returns a store.ISocialStore and an error
func NewRPCStore(
	shardId uint64,
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (store.ISocialStore, error) {

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	// Connect the transport
	err := transport.Connect(config)
	if err != nil {
		return nil, err
	}

	// Create a new RPC store
	s := rpcStore{
		rpcClientAdapter{
			shardId:    shardId,
			config:     config,
			transport:  transport,
			serializer: serializer,
		},
	}

	// Return the RPC store
	return &s, nil
}

type rpcStore struct {
	rpcClientAdapter
}

func (i *rpcStore) invoke(req *common.Message) (*common.Message, error) {
	return invokeRPCRequest(i.shardId, req, i.transport, i.serializer)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see the store package in interface.go)
// --------------------------------------------------------------------------

func (i *rpcStore) AddUser(user model.User) (bool, error) {
	return i.ok(common.NewAddUserRequest(user))
}

func (i *rpcStore) GetUser(id int) (model.User, bool, error) {
	resp, err := i.invoke(common.NewIDRequest(common.MsgTGetUser, id))
	if err != nil || !resp.Ok || resp.User == nil {
		return model.User{}, false, err
	}
	return *resp.User, true, nil
}

func (i *rpcStore) GetUsers() ([]model.User, error) {
	return i.users(common.NewRequest(common.MsgTGetUsers))
}

func (i *rpcStore) GetUsersContaining(text string) ([]model.User, error) {
	return i.users(common.NewTextRequest(common.MsgTGetUsersContaining, text))
}

func (i *rpcStore) GetUsersJoinedBefore(date time.Time) ([]model.User, error) {
	return i.users(common.NewDateRequest(common.MsgTGetUsersJoinedBefore, date))
}

func (i *rpcStore) AddWeet(weet model.Weet) (bool, error) {
	return i.ok(common.NewAddWeetRequest(weet))
}

func (i *rpcStore) GetWeet(id int) (model.Weet, bool, error) {
	resp, err := i.invoke(common.NewIDRequest(common.MsgTGetWeet, id))
	if err != nil || !resp.Ok || resp.Weet == nil {
		return model.Weet{}, false, err
	}
	return *resp.Weet, true, nil
}

func (i *rpcStore) GetWeets() ([]model.Weet, error) {
	return i.weets(common.NewRequest(common.MsgTGetWeets))
}

func (i *rpcStore) GetWeetsByUser(userID int) ([]model.Weet, error) {
	return i.weets(common.NewIDRequest(common.MsgTGetWeetsByUser, userID))
}

func (i *rpcStore) GetWeetsContaining(text string) ([]model.Weet, error) {
	return i.weets(common.NewTextRequest(common.MsgTGetWeetsContaining, text))
}

func (i *rpcStore) GetWeetsOn(date time.Time) ([]model.Weet, error) {
	return i.weets(common.NewDateRequest(common.MsgTGetWeetsOn, date))
}

func (i *rpcStore) GetWeetsBefore(date time.Time) ([]model.Weet, error) {
	return i.weets(common.NewDateRequest(common.MsgTGetWeetsBefore, date))
}

func (i *rpcStore) GetTrending() ([]string, bool, error) {
	resp, err := i.invoke(common.NewRequest(common.MsgTGetTrending))
	if err != nil || !resp.Ok {
		return nil, false, err
	}
	return resp.Topics, true, nil
}

func (i *rpcStore) GetTopicMentions(topic string) (int, bool, error) {
	return i.count(common.NewTextRequest(common.MsgTGetTopicMentions, topic))
}

func (i *rpcStore) AddFollower(followerID, followedID int, date time.Time) (bool, error) {
	return i.ok(common.NewAddFollowerRequest(followerID, followedID, date))
}

func (i *rpcStore) GetFollowers(id int) ([]int, bool, error) {
	return i.ids(common.NewIDRequest(common.MsgTGetFollowers, id))
}

func (i *rpcStore) GetFollows(id int) ([]int, bool, error) {
	return i.ids(common.NewIDRequest(common.MsgTGetFollows, id))
}

func (i *rpcStore) IsAFollower(followerID, followedID int) (bool, error) {
	return i.ok(common.NewPairRequest(common.MsgTIsAFollower, followerID, followedID))
}

func (i *rpcStore) GetNumFollowers(id int) (int, bool, error) {
	return i.count(common.NewIDRequest(common.MsgTGetNumFollowers, id))
}

func (i *rpcStore) GetNumFollows(id int) (int, bool, error) {
	return i.count(common.NewIDRequest(common.MsgTGetNumFollows, id))
}

func (i *rpcStore) GetMutualFollowers(a, b int) ([]int, bool, error) {
	return i.ids(common.NewPairRequest(common.MsgTGetMutualFollowers, a, b))
}

func (i *rpcStore) GetMutualFollows(a, b int) ([]int, bool, error) {
	return i.ids(common.NewPairRequest(common.MsgTGetMutualFollows, a, b))
}

func (i *rpcStore) GetTopUsers() ([]int, error) {
	ids, _, err := i.ids(common.NewRequest(common.MsgTGetTopUsers))
	return ids, err
}

func (i *rpcStore) GetInfo() (store.Info, error) {
	resp, err := i.invoke(common.NewRequest(common.MsgTInfo))
	if err != nil {
		return store.Info{}, err
	}
	return resp.DecodeInfo()
}

// --------------------------------------------------------------------------
// Response Helpers
// --------------------------------------------------------------------------

// Listings are never nil, an empty result is an empty slice. Both
// serializers drop empty slices on the wire.

func (i *rpcStore) ok(req *common.Message) (bool, error) {
	resp, err := i.invoke(req)
	if err != nil {
		return false, err
	}
	return resp.Ok, nil
}

func (i *rpcStore) users(req *common.Message) ([]model.User, error) {
	resp, err := i.invoke(req)
	if err != nil {
		return nil, err
	}
	if resp.Users == nil {
		return []model.User{}, nil
	}
	return resp.Users, nil
}

func (i *rpcStore) weets(req *common.Message) ([]model.Weet, error) {
	resp, err := i.invoke(req)
	if err != nil {
		return nil, err
	}
	if resp.Weets == nil {
		return []model.Weet{}, nil
	}
	return resp.Weets, nil
}

func (i *rpcStore) ids(req *common.Message) ([]int, bool, error) {
	resp, err := i.invoke(req)
	if err != nil || !resp.Ok {
		return nil, false, err
	}
	if resp.IDs == nil {
		return []int{}, true, nil
	}
	return resp.IDs, true, nil
}

func (i *rpcStore) count(req *common.Message) (int, bool, error) {
	resp, err := i.invoke(req)
	if err != nil {
		return 0, false, err
	}
	return resp.Count, resp.Ok, nil
}
