package db

import (
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

type Implementation string

const (
	ImplLLRB Implementation = "llrb"
)

// TrendingSize is the number of topics returned by WeetDB.GetTrending
const TrendingSize = 10

// IndexInfo describes a single index of an engine
type IndexInfo struct {
	Name    string `json:"name"`
	Policy  string `json:"policy"`
	Entries int    `json:"entries"`
	Height  int    `json:"height"`
}

// DatabaseInfo holds metadata about an engine instance
type DatabaseInfo struct {
	DbType   Implementation `json:"db_type"`
	Size     int            `json:"size"`
	Indexes  []IndexInfo    `json:"indexes"`
	Metadata any            `json:"metadata,omitempty"` // engine specific details
}

// --------------------------------------------------------------------------
// Database Interfaces
// --------------------------------------------------------------------------

// UserDB stores user profiles indexed by id and by join date.
// All query results are ordered newest first (by join date).
type UserDB interface {
	// AddUser adds a user. It returns false, and does not change the db, if a
	// user with the same id already exists.
	AddUser(user model.User) (ok bool)

	// GetUser returns the user with the given id. The boolean return value
	// indicates whether the user was found.
	GetUser(id int) (user model.User, found bool)

	// GetUsers returns all users.
	GetUsers() []model.User

	// GetUsersContaining returns all users whose name contains query
	// (case-sensitive).
	GetUsersContaining(query string) []model.User

	// GetUsersJoinedBefore returns all users that joined strictly before date.
	GetUsersJoinedBefore(date time.Time) []model.User

	// Len returns the number of users.
	Len() int

	// Info returns metadata about the db.
	Info() DatabaseInfo
}

// WeetDB stores weets indexed by id, by date and by topic (hashtag).
// All query results are ordered newest first.
type WeetDB interface {
	// AddWeet adds a weet and counts the first hashtag of its message.
	// It returns false, and does not change the db, if a weet with the
	// same id already exists.
	AddWeet(weet model.Weet) (ok bool)

	// GetWeet returns the weet with the given id. The boolean return value
	// indicates whether the weet was found.
	GetWeet(id int) (weet model.Weet, found bool)

	// GetWeets returns all weets.
	GetWeets() []model.Weet

	// GetWeetsByUser returns all weets written by the user with the given id.
	GetWeetsByUser(userID int) []model.Weet

	// GetWeetsContaining returns all weets whose message contains query.
	GetWeetsContaining(query string) []model.Weet

	// GetWeetsOn returns all weets with a timestamp equal to date.
	GetWeetsOn(date time.Time) []model.Weet

	// GetWeetsBefore returns all weets with a timestamp strictly before date.
	GetWeetsBefore(date time.Time) []model.Weet

	// GetTrending returns the TrendingSize most mentioned topics, most
	// mentioned first. The boolean return value is false (and the slice nil)
	// if fewer than TrendingSize distinct topics were recorded.
	GetTrending() (topics []string, ok bool)

	// GetTopicMentions returns how often topic was mentioned.
	GetTopicMentions(topic string) (mentions int, found bool)

	// NumTopics returns the number of distinct topics.
	NumTopics() int

	// Len returns the number of weets.
	Len() int

	// Info returns metadata about the db.
	Info() DatabaseInfo
}

// FollowerDB stores the directed follow relationships between users.
// Lists of users are ordered by the date of the relationship, newest first.
type FollowerDB interface {
	// AddFollower records that follower follows followed since date.
	// It returns false, and does not change the db, if follower == followed
	// or the relationship already exists.
	AddFollower(follower, followed int, date time.Time) (ok bool)

	// GetFollowers returns the ids of all users following uid.
	// The boolean return value is false if uid is unknown.
	GetFollowers(uid int) (ids []int, found bool)

	// GetFollows returns the ids of all users uid follows.
	// The boolean return value is false if uid is unknown.
	GetFollows(uid int) (ids []int, found bool)

	// IsAFollower returns whether follower follows followed.
	IsAFollower(follower, followed int) bool

	// GetNumFollowers returns the number of followers of uid.
	GetNumFollowers(uid int) (n int, found bool)

	// GetNumFollows returns the number of users uid follows.
	GetNumFollows(uid int) (n int, found bool)

	// GetMutualFollowers returns the ids of all users following both uid1
	// and uid2. The boolean return value is false if either id is unknown.
	GetMutualFollowers(uid1, uid2 int) (ids []int, found bool)

	// GetMutualFollows returns the ids of all users followed by both uid1
	// and uid2. The boolean return value is false if either id is unknown.
	GetMutualFollows(uid1, uid2 int) (ids []int, found bool)

	// GetTopUsers returns the ids of all known users, ordered by number of
	// followers (descending). Users with the same number of followers are in
	// no particular order.
	GetTopUsers() []int

	// GetFollowerCounts returns the number of followers of every known user.
	GetFollowerCounts() []int

	// Len returns the number of users with at least one relationship.
	Len() int

	// Info returns metadata about the db.
	Info() DatabaseInfo
}
