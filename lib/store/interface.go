package store

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/model"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// Engines bundles the three engines a store is built from
type Engines struct {
	Users     db.UserDB
	Weets     db.WeetDB
	Followers db.FollowerDB
}

// DBFactory is a function type that creates the engines used by the store.
// This is used to abstract the creation of the engines from the store implementation.
type DBFactory func() Engines

// Info summarizes the state of a store
type Info struct {
	Users     db.DatabaseInfo `json:"users"`
	Weets     db.DatabaseInfo `json:"weets"`
	Followers db.DatabaseInfo `json:"followers"`
	Topics    int             `json:"topics"`
}

// ISocialStore is the query surface of dWeet. Rejected mutations return false,
// lookups of unknown ids return false as their "found" value. The error return
// value is reserved for invalid input and for failures of the layers between
// the caller and the engines (e.g. the network).
//
// Invalid input is a rule of the store layer, the engines accept any record:
// AddUser, AddWeet and AddFollower reject a zero timestamp with a *Error of
// code RetCInvalidOperation and (false, err). Nothing is stored in that case.
type ISocialStore interface {
	// AddUser adds a user. Returns false if the id is already taken.
	AddUser(user model.User) (ok bool, err error)
	// GetUser returns the user with the given id.
	GetUser(id int) (user model.User, found bool, err error)
	// GetUsers returns all users, most recently joined first.
	GetUsers() (users []model.User, err error)
	// GetUsersContaining returns all users whose name contains text (case-sensitive).
	GetUsersContaining(text string) (users []model.User, err error)
	// GetUsersJoinedBefore returns all users that joined strictly before date.
	GetUsersJoinedBefore(date time.Time) (users []model.User, err error)

	// AddWeet adds a weet. Returns false if the id is already taken.
	AddWeet(weet model.Weet) (ok bool, err error)
	// GetWeet returns the weet with the given id.
	GetWeet(id int) (weet model.Weet, found bool, err error)
	// GetWeets returns all weets, newest first.
	GetWeets() (weets []model.Weet, err error)
	// GetWeetsByUser returns all weets of a user, newest first.
	GetWeetsByUser(userID int) (weets []model.Weet, err error)
	// GetWeetsContaining returns all weets whose message contains text.
	GetWeetsContaining(text string) (weets []model.Weet, err error)
	// GetWeetsOn returns all weets with a timestamp equal to date.
	GetWeetsOn(date time.Time) (weets []model.Weet, err error)
	// GetWeetsBefore returns all weets with a timestamp strictly before date.
	GetWeetsBefore(date time.Time) (weets []model.Weet, err error)
	// GetTrending returns the 10 most mentioned topics. ok is false if fewer
	// than 10 distinct topics exist.
	GetTrending() (topics []string, ok bool, err error)
	// GetTopicMentions returns how often a topic (including the '#') was mentioned.
	GetTopicMentions(topic string) (mentions int, found bool, err error)

	// AddFollower records that followerID follows followedID since date.
	// Returns false for self follows and already existing relationships.
	AddFollower(followerID, followedID int, date time.Time) (ok bool, err error)
	// GetFollowers returns the followers of id, most recent relationship first.
	GetFollowers(id int) (ids []int, found bool, err error)
	// GetFollows returns the users id follows, most recent relationship first.
	GetFollows(id int) (ids []int, found bool, err error)
	// IsAFollower returns whether followerID follows followedID.
	IsAFollower(followerID, followedID int) (follows bool, err error)
	// GetNumFollowers returns the number of followers of id.
	GetNumFollowers(id int) (n int, found bool, err error)
	// GetNumFollows returns the number of users id follows.
	GetNumFollows(id int) (n int, found bool, err error)
	// GetMutualFollowers returns the users following both a and b.
	GetMutualFollowers(a, b int) (ids []int, found bool, err error)
	// GetMutualFollows returns the users followed by both a and b.
	GetMutualFollows(a, b int) (ids []int, found bool, err error)
	// GetTopUsers returns all users of the follower graph, most followed first.
	GetTopUsers() (ids []int, err error)

	// GetInfo returns metadata about the engines underlying the store.
	// It is not guaranteed that the information is up-to-date!
	GetInfo() (info Info, err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("StoreError (code %s): %s", e.Code, e.Msg)
}

// NewError creates a new Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Command executed successfully.
	RetCInternalError                       // 1: Command failed due to an internal error.
	RetCUnsupportedOperation                // 2: Operation is not supported by the store.
	RetCInvalidOperation                    // 3: Invalid operation (e.g. malformed arguments).
	RetCNotFound                            // 4: A referenced entity does not exist.
)

func (c RetCode) String() string {
	switch c {
	case RetCSuccess:
		return "Success"
	case RetCInternalError:
		return "InternalError"
	case RetCUnsupportedOperation:
		return "UnsupportedOperation"
	case RetCInvalidOperation:
		return "InvalidOperation"
	case RetCNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}
