package lstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
)

var log = logger.GetLogger("store")

// Options configures a local store
type Options struct {
	// Name is used as the "store" label of all metrics of the store
	Name string
}

// DefaultOptions returns the default local store options
func DefaultOptions() *Options {
	return &Options{Name: "default"}
}

// storeImpl guards every engine with its own read-write lock. Engines rotate
// tree nodes on insert, so readers are excluded while a writer is active.
type storeImpl struct {
	name string

	usersMu sync.RWMutex
	weetsMu sync.RWMutex
	graphMu sync.RWMutex
	engines store.Engines
}

// NewLocalStore creates a new local store instance with the engines created by
// factory. The options are optional.
// This store implementation is not distributed and only works on a single node.
func NewLocalStore(factory store.DBFactory, opts *Options) store.ISocialStore {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &storeImpl{
		name:    opts.Name,
		engines: factory(),
	}
}

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// count increments the operation counter of op
func (s *storeImpl) count(op string) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`dweet_store_operations_total{store=%q,op=%q}`, s.name, op)).Inc()
}

// reject increments the rejection counter of op
func (s *storeImpl) reject(op string, format string, args ...any) {
	metrics.GetOrCreateCounter(fmt.Sprintf(`dweet_store_rejected_total{store=%q,op=%q}`, s.name, op)).Inc()
	log.Debugf("[%s] %s rejected: %s", s.name, op, fmt.Sprintf(format, args...))
}

// requireDate returns an invalid operation error for zero timestamps
func requireDate(op string, date time.Time) error {
	if date.IsZero() {
		return store.NewError(store.RetCInvalidOperation, fmt.Sprintf("%s: date must be set", op))
	}
	return nil
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) AddUser(user model.User) (bool, error) {
	s.count("add_user")
	if err := requireDate("add user", user.DateJoined); err != nil {
		return false, err
	}

	s.usersMu.Lock()
	ok := s.engines.Users.AddUser(user)
	s.usersMu.Unlock()

	if !ok {
		s.reject("add_user", "duplicate user id %d", user.ID)
	}
	return ok, nil
}

func (s *storeImpl) GetUser(id int) (model.User, bool, error) {
	s.count("get_user")
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	user, found := s.engines.Users.GetUser(id)
	return user, found, nil
}

func (s *storeImpl) GetUsers() ([]model.User, error) {
	s.count("get_users")
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return s.engines.Users.GetUsers(), nil
}

func (s *storeImpl) GetUsersContaining(text string) ([]model.User, error) {
	s.count("get_users_containing")
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return s.engines.Users.GetUsersContaining(text), nil
}

func (s *storeImpl) GetUsersJoinedBefore(date time.Time) ([]model.User, error) {
	s.count("get_users_joined_before")
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return s.engines.Users.GetUsersJoinedBefore(date), nil
}

func (s *storeImpl) AddWeet(weet model.Weet) (bool, error) {
	s.count("add_weet")
	if err := requireDate("add weet", weet.Date); err != nil {
		return false, err
	}

	s.weetsMu.Lock()
	ok := s.engines.Weets.AddWeet(weet)
	s.weetsMu.Unlock()

	if !ok {
		s.reject("add_weet", "duplicate weet id %d", weet.ID)
	}
	return ok, nil
}

func (s *storeImpl) GetWeet(id int) (model.Weet, bool, error) {
	s.count("get_weet")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	weet, found := s.engines.Weets.GetWeet(id)
	return weet, found, nil
}

func (s *storeImpl) GetWeets() ([]model.Weet, error) {
	s.count("get_weets")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	return s.engines.Weets.GetWeets(), nil
}

func (s *storeImpl) GetWeetsByUser(userID int) ([]model.Weet, error) {
	s.count("get_weets_by_user")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	return s.engines.Weets.GetWeetsByUser(userID), nil
}

func (s *storeImpl) GetWeetsContaining(text string) ([]model.Weet, error) {
	s.count("get_weets_containing")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	return s.engines.Weets.GetWeetsContaining(text), nil
}

func (s *storeImpl) GetWeetsOn(date time.Time) ([]model.Weet, error) {
	s.count("get_weets_on")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	return s.engines.Weets.GetWeetsOn(date), nil
}

func (s *storeImpl) GetWeetsBefore(date time.Time) ([]model.Weet, error) {
	s.count("get_weets_before")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	return s.engines.Weets.GetWeetsBefore(date), nil
}

func (s *storeImpl) GetTrending() ([]string, bool, error) {
	s.count("get_trending")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	topics, ok := s.engines.Weets.GetTrending()
	return topics, ok, nil
}

func (s *storeImpl) GetTopicMentions(topic string) (int, bool, error) {
	s.count("get_topic_mentions")
	s.weetsMu.RLock()
	defer s.weetsMu.RUnlock()
	n, found := s.engines.Weets.GetTopicMentions(topic)
	return n, found, nil
}

func (s *storeImpl) AddFollower(followerID, followedID int, date time.Time) (bool, error) {
	s.count("add_follower")
	if err := requireDate("add follower", date); err != nil {
		return false, err
	}

	s.graphMu.Lock()
	ok := s.engines.Followers.AddFollower(followerID, followedID, date)
	s.graphMu.Unlock()

	if !ok {
		s.reject("add_follower", "self follow or duplicate relationship %d -> %d", followerID, followedID)
	}
	return ok, nil
}

func (s *storeImpl) GetFollowers(id int) ([]int, bool, error) {
	s.count("get_followers")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	ids, found := s.engines.Followers.GetFollowers(id)
	return ids, found, nil
}

func (s *storeImpl) GetFollows(id int) ([]int, bool, error) {
	s.count("get_follows")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	ids, found := s.engines.Followers.GetFollows(id)
	return ids, found, nil
}

func (s *storeImpl) IsAFollower(followerID, followedID int) (bool, error) {
	s.count("is_a_follower")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	return s.engines.Followers.IsAFollower(followerID, followedID), nil
}

func (s *storeImpl) GetNumFollowers(id int) (int, bool, error) {
	s.count("get_num_followers")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	n, found := s.engines.Followers.GetNumFollowers(id)
	return n, found, nil
}

func (s *storeImpl) GetNumFollows(id int) (int, bool, error) {
	s.count("get_num_follows")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	n, found := s.engines.Followers.GetNumFollows(id)
	return n, found, nil
}

func (s *storeImpl) GetMutualFollowers(a, b int) ([]int, bool, error) {
	s.count("get_mutual_followers")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	ids, found := s.engines.Followers.GetMutualFollowers(a, b)
	return ids, found, nil
}

func (s *storeImpl) GetMutualFollows(a, b int) ([]int, bool, error) {
	s.count("get_mutual_follows")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	ids, found := s.engines.Followers.GetMutualFollows(a, b)
	return ids, found, nil
}

func (s *storeImpl) GetTopUsers() ([]int, error) {
	s.count("get_top_users")
	s.graphMu.RLock()
	defer s.graphMu.RUnlock()
	return s.engines.Followers.GetTopUsers(), nil
}

func (s *storeImpl) GetInfo() (store.Info, error) {
	s.count("get_info")
	info := store.Info{}

	s.usersMu.RLock()
	info.Users = s.engines.Users.Info()
	s.usersMu.RUnlock()

	s.weetsMu.RLock()
	info.Weets = s.engines.Weets.Info()
	info.Topics = s.engines.Weets.NumTopics()
	s.weetsMu.RUnlock()

	s.graphMu.RLock()
	info.Followers = s.engines.Followers.Info()
	s.graphMu.RUnlock()

	return info, nil
}
