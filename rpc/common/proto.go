package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
)

// --------------------------------------------------------------------------
// Message Structure
// --------------------------------------------------------------------------

// Message represents a single message used for both requests and responses.
// Which fields are used depends on the type of message.
type Message struct {
	// Type of message
	MsgType MessageType `json:"msg_type"`

	// Request fields
	ID      int         `json:"id,omitempty"`       // Used for: lookups by id, follower id, first user of mutual queries
	OtherID int         `json:"other_id,omitempty"` // Used for: followed id, second user of mutual queries
	Text    string      `json:"text,omitempty"`     // Used for: containing queries, topic mentions
	Date    time.Time   `json:"date"`               // Used for: date queries, AddFollower
	User    *model.User `json:"user,omitempty"`     // Used for: AddUser (request), GetUser (response)
	Weet    *model.Weet `json:"weet,omitempty"`     // Used for: AddWeet (request), GetWeet (response)

	// Response only fields
	Users   []model.User  `json:"users,omitempty"`    // Used for: user listings
	Weets   []model.Weet  `json:"weets,omitempty"`    // Used for: weet listings
	IDs     []int         `json:"ids,omitempty"`      // Used for: follower queries, top users
	Topics  []string      `json:"topics,omitempty"`   // Used for: trending
	Count   int           `json:"count,omitempty"`    // Used for: number of followers/follows, topic mentions
	Ok      bool          `json:"ok,omitempty"`       // Used for: accepted mutations, found flags
	Err     string        `json:"err,omitempty"`      // Empty if no error, otherwise contains the error message
	ErrCode store.RetCode `json:"err_code,omitempty"` // Code of a store.Error, zero for other errors

	// Meta information
	Meta []byte `json:"meta,omitempty"` // Used for: Info (json encoded store.Info)
}

// AsError returns the error carried by a response, nil if there is none.
// Errors with a code are returned as *store.Error.
func (m *Message) AsError() error {
	if m.Err == "" && m.MsgType != MsgTError {
		return nil
	}
	if m.ErrCode != store.RetCSuccess {
		return store.NewError(m.ErrCode, m.Err)
	}
	return errors.New(m.Err)
}

// withErr stores err in the response, keeping the code of a store.Error
func (m *Message) withErr(err error) *Message {
	if err == nil {
		return m
	}
	m.Err = err.Error()
	var storeErr *store.Error
	if errors.As(err, &storeErr) {
		m.Err = storeErr.Msg
		m.ErrCode = storeErr.Code
	}
	return m
}

// --------------------------------------------------------------------------
// Request Factory Functions
// --------------------------------------------------------------------------

// NewAddUserRequest creates a new AddUser request
func NewAddUserRequest(user model.User) *Message {
	return &Message{MsgType: MsgTAddUser, User: &user}
}

// NewAddWeetRequest creates a new AddWeet request
func NewAddWeetRequest(weet model.Weet) *Message {
	return &Message{MsgType: MsgTAddWeet, Weet: &weet}
}

// NewAddFollowerRequest creates a new AddFollower request
func NewAddFollowerRequest(followerID, followedID int, date time.Time) *Message {
	return &Message{MsgType: MsgTAddFollower, ID: followerID, OtherID: followedID, Date: date}
}

// NewRequest creates a request without arguments (e.g. GetUsers, GetTrending)
func NewRequest(t MessageType) *Message {
	return &Message{MsgType: t}
}

// NewIDRequest creates a request for a single id (e.g. GetUser, GetFollowers)
func NewIDRequest(t MessageType, id int) *Message {
	return &Message{MsgType: t, ID: id}
}

// NewPairRequest creates a request for two ids (e.g. IsAFollower, GetMutualFollows)
func NewPairRequest(t MessageType, id, otherID int) *Message {
	return &Message{MsgType: t, ID: id, OtherID: otherID}
}

// NewTextRequest creates a request with a text argument (e.g. GetWeetsContaining)
func NewTextRequest(t MessageType, text string) *Message {
	return &Message{MsgType: t, Text: text}
}

// NewDateRequest creates a request with a date argument (e.g. GetWeetsBefore)
func NewDateRequest(t MessageType, date time.Time) *Message {
	return &Message{MsgType: t, Date: date}
}

// --------------------------------------------------------------------------
// Response Factory Functions
// --------------------------------------------------------------------------

// NewOkResponse creates a response carrying a boolean result
func NewOkResponse(t MessageType, ok bool, err error) *Message {
	return (&Message{MsgType: t, Ok: ok}).withErr(err)
}

// NewUserResponse creates a GetUser response
func NewUserResponse(user model.User, found bool, err error) *Message {
	msg := &Message{MsgType: MsgTGetUser, Ok: found}
	if found {
		msg.User = &user
	}
	return msg.withErr(err)
}

// NewWeetResponse creates a GetWeet response
func NewWeetResponse(weet model.Weet, found bool, err error) *Message {
	msg := &Message{MsgType: MsgTGetWeet, Ok: found}
	if found {
		msg.Weet = &weet
	}
	return msg.withErr(err)
}

// NewUsersResponse creates a response carrying a list of users
func NewUsersResponse(t MessageType, users []model.User, err error) *Message {
	return (&Message{MsgType: t, Users: users}).withErr(err)
}

// NewWeetsResponse creates a response carrying a list of weets
func NewWeetsResponse(t MessageType, weets []model.Weet, err error) *Message {
	return (&Message{MsgType: t, Weets: weets}).withErr(err)
}

// NewIDsResponse creates a response carrying a list of user ids
func NewIDsResponse(t MessageType, ids []int, found bool, err error) *Message {
	return (&Message{MsgType: t, IDs: ids, Ok: found}).withErr(err)
}

// NewCountResponse creates a response carrying a number
func NewCountResponse(t MessageType, count int, found bool, err error) *Message {
	return (&Message{MsgType: t, Count: count, Ok: found}).withErr(err)
}

// NewTrendingResponse creates a GetTrending response
func NewTrendingResponse(topics []string, ok bool, err error) *Message {
	return (&Message{MsgType: MsgTGetTrending, Topics: topics, Ok: ok}).withErr(err)
}

// NewInfoResponse creates an Info response. The info is json encoded since
// engine metadata has no fixed type.
func NewInfoResponse(info store.Info, err error) *Message {
	msg := &Message{MsgType: MsgTInfo}
	if err != nil {
		return msg.withErr(err)
	}
	meta, err := json.Marshal(info)
	if err != nil {
		return msg.withErr(store.NewError(store.RetCInternalError, fmt.Sprintf("failed to encode info: %v", err)))
	}
	msg.Meta = meta
	return msg
}

// DecodeInfo decodes the info of an Info response
func (m *Message) DecodeInfo() (store.Info, error) {
	var info store.Info
	if err := json.Unmarshal(m.Meta, &info); err != nil {
		return store.Info{}, fmt.Errorf("failed to decode info: %w", err)
	}
	return info, nil
}

// NewErrorResponse creates a new Error response
func NewErrorResponse(err string) *Message {
	return &Message{
		MsgType: MsgTError,
		Err:     err,
	}
}

// --------------------------------------------------------------------------
// Message Type Definition
// --------------------------------------------------------------------------

// MessageType defines the type of message used in RPC communication.
type MessageType uint8

// String returns the string representation of a MessageType.
func (t MessageType) String() string {
	if int(t) < len(msgTypeNames) && msgTypeNames[t] != "" {
		return msgTypeNames[t]
	}
	return "unknown"
}

// MessageTypes returns all message types of store operations
func MessageTypes() []MessageType {
	types := make([]MessageType, 0, len(msgTypeNames))
	for t := MsgTAddUser; t <= MsgTInfo; t++ {
		types = append(types, t)
	}
	return types
}

// MarshalJSON implements the json.Marshaller interface for MessageType.
// This allows MessageType to be serialized as a string in JSON.
func (t MessageType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for MessageType.
// This allows MessageType to be deserialized from a string in JSON.
func (t *MessageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, name := range msgTypeNames {
		if name != "" && name == s {
			*t = MessageType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown message type: %s", s)
}

// --------------------------------------------------------------------------
// Message Type Constants
// --------------------------------------------------------------------------

const (
	// General message types

	MsgTUnknown MessageType = iota
	MsgTSuccess             // Indicates a successful operation
	MsgTError               // Indicates an error occurred

	// User operations

	MsgTAddUser              // Add a user
	MsgTGetUser              // Get a user by id
	MsgTGetUsers             // List all users
	MsgTGetUsersContaining   // List users by name
	MsgTGetUsersJoinedBefore // List users by join date

	// Weet operations

	MsgTAddWeet            // Add a weet
	MsgTGetWeet            // Get a weet by id
	MsgTGetWeets           // List all weets
	MsgTGetWeetsByUser     // List weets of a user
	MsgTGetWeetsContaining // List weets by message
	MsgTGetWeetsOn         // List weets by exact date
	MsgTGetWeetsBefore     // List weets before a date
	MsgTGetTrending        // Get the trending topics
	MsgTGetTopicMentions   // Get the number of mentions of a topic

	// Follower operations

	MsgTAddFollower        // Add a follow relationship
	MsgTGetFollowers       // List followers of a user
	MsgTGetFollows         // List users a user follows
	MsgTIsAFollower        // Check a follow relationship
	MsgTGetNumFollowers    // Count followers of a user
	MsgTGetNumFollows      // Count follows of a user
	MsgTGetMutualFollowers // Intersect followers of two users
	MsgTGetMutualFollows   // Intersect follows of two users
	MsgTGetTopUsers        // Rank users by followers

	// Metadata

	MsgTInfo // Get store info
)

var msgTypeNames = [...]string{
	MsgTUnknown:              "",
	MsgTSuccess:              "success",
	MsgTError:                "error",
	MsgTAddUser:              "add_user",
	MsgTGetUser:              "get_user",
	MsgTGetUsers:             "get_users",
	MsgTGetUsersContaining:   "get_users_containing",
	MsgTGetUsersJoinedBefore: "get_users_joined_before",
	MsgTAddWeet:              "add_weet",
	MsgTGetWeet:              "get_weet",
	MsgTGetWeets:             "get_weets",
	MsgTGetWeetsByUser:       "get_weets_by_user",
	MsgTGetWeetsContaining:   "get_weets_containing",
	MsgTGetWeetsOn:           "get_weets_on",
	MsgTGetWeetsBefore:       "get_weets_before",
	MsgTGetTrending:          "get_trending",
	MsgTGetTopicMentions:     "get_topic_mentions",
	MsgTAddFollower:          "add_follower",
	MsgTGetFollowers:         "get_followers",
	MsgTGetFollows:           "get_follows",
	MsgTIsAFollower:          "is_a_follower",
	MsgTGetNumFollowers:      "get_num_followers",
	MsgTGetNumFollows:        "get_num_follows",
	MsgTGetMutualFollowers:   "get_mutual_followers",
	MsgTGetMutualFollows:     "get_mutual_follows",
	MsgTGetTopUsers:          "get_top_users",
	MsgTInfo:                 "info",
}
