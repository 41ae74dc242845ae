package server

import (
	"fmt"

	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/ValentinKolb/dWeet/rpc/common"
)

func NewISocialStoreServerAdapter() IRPCServerAdapter {
	return &iSocialStoreServerAdapterImpl{}
}

type iSocialStoreServerAdapterImpl struct{}

func (adapter *iSocialStoreServerAdapterImpl) Handle(req *common.Message, s store.ISocialStore) *common.Message {
	// Check for nil store
	if s == nil {
		return common.NewErrorResponse("handler: store is nil")
	}

	// Handle different message types
	switch t := req.MsgType; t {

	// users
	case common.MsgTAddUser:
		if req.User == nil {
			return common.NewErrorResponse("add_user: request carries no user")
		}
		ok, err := s.AddUser(*req.User)
		return common.NewOkResponse(t, ok, err)
	case common.MsgTGetUser:
		user, found, err := s.GetUser(req.ID)
		return common.NewUserResponse(user, found, err)
	case common.MsgTGetUsers:
		users, err := s.GetUsers()
		return common.NewUsersResponse(t, users, err)
	case common.MsgTGetUsersContaining:
		users, err := s.GetUsersContaining(req.Text)
		return common.NewUsersResponse(t, users, err)
	case common.MsgTGetUsersJoinedBefore:
		users, err := s.GetUsersJoinedBefore(req.Date)
		return common.NewUsersResponse(t, users, err)

	// weets
	case common.MsgTAddWeet:
		if req.Weet == nil {
			return common.NewErrorResponse("add_weet: request carries no weet")
		}
		ok, err := s.AddWeet(*req.Weet)
		return common.NewOkResponse(t, ok, err)
	case common.MsgTGetWeet:
		weet, found, err := s.GetWeet(req.ID)
		return common.NewWeetResponse(weet, found, err)
	case common.MsgTGetWeets:
		weets, err := s.GetWeets()
		return common.NewWeetsResponse(t, weets, err)
	case common.MsgTGetWeetsByUser:
		weets, err := s.GetWeetsByUser(req.ID)
		return common.NewWeetsResponse(t, weets, err)
	case common.MsgTGetWeetsContaining:
		weets, err := s.GetWeetsContaining(req.Text)
		return common.NewWeetsResponse(t, weets, err)
	case common.MsgTGetWeetsOn:
		weets, err := s.GetWeetsOn(req.Date)
		return common.NewWeetsResponse(t, weets, err)
	case common.MsgTGetWeetsBefore:
		weets, err := s.GetWeetsBefore(req.Date)
		return common.NewWeetsResponse(t, weets, err)
	case common.MsgTGetTrending:
		topics, ok, err := s.GetTrending()
		return common.NewTrendingResponse(topics, ok, err)
	case common.MsgTGetTopicMentions:
		n, found, err := s.GetTopicMentions(req.Text)
		return common.NewCountResponse(t, n, found, err)

	// followers
	case common.MsgTAddFollower:
		ok, err := s.AddFollower(req.ID, req.OtherID, req.Date)
		return common.NewOkResponse(t, ok, err)
	case common.MsgTGetFollowers:
		ids, found, err := s.GetFollowers(req.ID)
		return common.NewIDsResponse(t, ids, found, err)
	case common.MsgTGetFollows:
		ids, found, err := s.GetFollows(req.ID)
		return common.NewIDsResponse(t, ids, found, err)
	case common.MsgTIsAFollower:
		ok, err := s.IsAFollower(req.ID, req.OtherID)
		return common.NewOkResponse(t, ok, err)
	case common.MsgTGetNumFollowers:
		n, found, err := s.GetNumFollowers(req.ID)
		return common.NewCountResponse(t, n, found, err)
	case common.MsgTGetNumFollows:
		n, found, err := s.GetNumFollows(req.ID)
		return common.NewCountResponse(t, n, found, err)
	case common.MsgTGetMutualFollowers:
		ids, found, err := s.GetMutualFollowers(req.ID, req.OtherID)
		return common.NewIDsResponse(t, ids, found, err)
	case common.MsgTGetMutualFollows:
		ids, found, err := s.GetMutualFollows(req.ID, req.OtherID)
		return common.NewIDsResponse(t, ids, found, err)
	case common.MsgTGetTopUsers:
		ids, err := s.GetTopUsers()
		return common.NewIDsResponse(t, ids, true, err)

	// metadata
	case common.MsgTInfo:
		info, err := s.GetInfo()
		return common.NewInfoResponse(info, err)

	default:
		return common.NewErrorResponse(
			fmt.Sprintf("RPC ISocialStoreAdapter - Unsupported message type: %s", req.MsgType),
		)
	}
}
