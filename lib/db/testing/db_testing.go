package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/model"
)

// UserDBFactory creates a new, empty UserDB instance
type UserDBFactory func() db.UserDB

// WeetDBFactory creates a new, empty WeetDB instance
type WeetDBFactory func() db.WeetDB

// FollowerDBFactory creates a new, empty FollowerDB instance
type FollowerDBFactory func() db.FollowerDB

// RunUserDBTests runs the conformance suite for a UserDB implementation
func RunUserDBTests(t *testing.T, name string, factory UserDBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("AddGet", func(t *testing.T) {
			testAddGetUser(t, factory())
		})

		t.Run("DuplicateID", func(t *testing.T) {
			testDuplicateUser(t, factory())
		})

		t.Run("NewestFirst", func(t *testing.T) {
			testUsersNewestFirst(t, factory())
		})

		t.Run("Containing", func(t *testing.T) {
			testUsersContaining(t, factory())
		})

		t.Run("JoinedBefore", func(t *testing.T) {
			testUsersJoinedBefore(t, factory())
		})

		t.Run("Empty", func(t *testing.T) {
			testUsersEmpty(t, factory())
		})

		t.Run("Info", func(t *testing.T) {
			testUsersInfo(t, factory())
		})
	})
}

// RunWeetDBTests runs the conformance suite for a WeetDB implementation
func RunWeetDBTests(t *testing.T, name string, factory WeetDBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("AddGet", func(t *testing.T) {
			testAddGetWeet(t, factory())
		})

		t.Run("DuplicateID", func(t *testing.T) {
			testDuplicateWeet(t, factory())
		})

		t.Run("Queries", func(t *testing.T) {
			testWeetQueries(t, factory())
		})

		t.Run("SameTimestamp", func(t *testing.T) {
			testWeetsSameTimestamp(t, factory())
		})

		t.Run("TrendingBelowThreshold", func(t *testing.T) {
			testTrendingBelowThreshold(t, factory())
		})

		t.Run("Trending", func(t *testing.T) {
			testTrending(t, factory())
		})

		t.Run("TrendingCats", func(t *testing.T) {
			testTrendingCats(t, factory())
		})

		t.Run("FirstHashtagOnly", func(t *testing.T) {
			testFirstHashtagOnly(t, factory())
		})
	})
}

// RunFollowerDBTests runs the conformance suite for a FollowerDB implementation
func RunFollowerDBTests(t *testing.T, name string, factory FollowerDBFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("AddFollower", func(t *testing.T) {
			testAddFollower(t, factory())
		})

		t.Run("SelfFollow", func(t *testing.T) {
			testSelfFollow(t, factory())
		})

		t.Run("DuplicateEdge", func(t *testing.T) {
			testDuplicateEdge(t, factory())
		})

		t.Run("DateOrder", func(t *testing.T) {
			testFollowDateOrder(t, factory())
		})

		t.Run("IsAFollower", func(t *testing.T) {
			testIsAFollower(t, factory())
		})

		t.Run("Unknown", func(t *testing.T) {
			testUnknownUser(t, factory())
		})

		t.Run("Mutual", func(t *testing.T) {
			testMutual(t, factory())
		})

		t.Run("TopUsers", func(t *testing.T) {
			testTopUsers(t, factory())
		})

		t.Run("Symmetry", func(t *testing.T) {
			testEdgeSymmetry(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

// Day returns noon (UTC) of the n-th day of January 2016
func Day(n int) time.Time {
	return time.Date(2016, time.January, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

func userIDs(users []model.User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}

func weetIDs(weets []model.Weet) []int {
	ids := make([]int, len(weets))
	for i, w := range weets {
		ids[i] = w.ID
	}
	return ids
}

func equalIDs(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func sameSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int, len(a))
	for _, id := range a {
		seen[id]++
	}
	for _, id := range b {
		seen[id]--
		if seen[id] < 0 {
			return false
		}
	}
	return true
}

// --------------------------------------------------------------------------
// UserDB tests
// --------------------------------------------------------------------------

func testAddGetUser(t *testing.T, users db.UserDB) {
	user := model.User{ID: 7, Name: "Alice", DateJoined: Day(3)}
	if !users.AddUser(user) {
		t.Fatal("expected AddUser to succeed")
	}

	got, found := users.GetUser(7)
	if !found {
		t.Fatal("expected user to be found")
	}
	if got.ID != user.ID || got.Name != user.Name || !got.DateJoined.Equal(user.DateJoined) {
		t.Errorf("expected %v, got %v", user, got)
	}

	if _, found := users.GetUser(8); found {
		t.Error("expected unknown user to be absent")
	}
	if users.Len() != 1 {
		t.Errorf("expected size 1, got %d", users.Len())
	}
}

func testDuplicateUser(t *testing.T, users db.UserDB) {
	users.AddUser(model.User{ID: 1, Name: "first", DateJoined: Day(1)})
	if users.AddUser(model.User{ID: 1, Name: "second", DateJoined: Day(2)}) {
		t.Error("expected duplicate AddUser to return false")
	}
	if users.Len() != 1 {
		t.Errorf("expected size to stay 1, got %d", users.Len())
	}
	if got, _ := users.GetUser(1); got.Name != "first" {
		t.Errorf("expected the first user to be kept, got %q", got.Name)
	}
	if n := len(users.GetUsers()); n != 1 {
		t.Errorf("expected 1 listed user, got %d", n)
	}
}

func testUsersNewestFirst(t *testing.T, users db.UserDB) {
	users.AddUser(model.User{ID: 1, Name: "a", DateJoined: Day(1)})
	users.AddUser(model.User{ID: 2, Name: "b", DateJoined: Day(2)})
	users.AddUser(model.User{ID: 3, Name: "c", DateJoined: Day(3)})

	if ids := userIDs(users.GetUsers()); !equalIDs(ids, []int{3, 2, 1}) {
		t.Errorf("expected [3 2 1], got %v", ids)
	}

	// users with the same join date: the latest added comes first
	users.AddUser(model.User{ID: 4, Name: "d", DateJoined: Day(2)})
	if ids := userIDs(users.GetUsers()); !equalIDs(ids, []int{3, 4, 2, 1}) {
		t.Errorf("expected [3 4 2 1], got %v", ids)
	}
}

func testUsersContaining(t *testing.T, users db.UserDB) {
	users.AddUser(model.User{ID: 1, Name: "Anna", DateJoined: Day(1)})
	users.AddUser(model.User{ID: 2, Name: "Hannah", DateJoined: Day(2)})
	users.AddUser(model.User{ID: 3, Name: "Bob", DateJoined: Day(3)})

	if ids := userIDs(users.GetUsersContaining("nn")); !equalIDs(ids, []int{2, 1}) {
		t.Errorf("expected [2 1], got %v", ids)
	}
	// case-sensitive
	if ids := userIDs(users.GetUsersContaining("bob")); len(ids) != 0 {
		t.Errorf("expected no match for lower case query, got %v", ids)
	}
	if ids := userIDs(users.GetUsersContaining("")); len(ids) != 3 {
		t.Errorf("expected the empty query to match all users, got %v", ids)
	}
}

func testUsersJoinedBefore(t *testing.T, users db.UserDB) {
	for i := 1; i <= 5; i++ {
		users.AddUser(model.User{ID: i, Name: fmt.Sprintf("user%d", i), DateJoined: Day(i)})
	}

	// strictly before
	if ids := userIDs(users.GetUsersJoinedBefore(Day(3))); !equalIDs(ids, []int{2, 1}) {
		t.Errorf("expected [2 1], got %v", ids)
	}
	if ids := userIDs(users.GetUsersJoinedBefore(Day(1))); len(ids) != 0 {
		t.Errorf("expected no users, got %v", ids)
	}
	if ids := userIDs(users.GetUsersJoinedBefore(Day(10))); !equalIDs(ids, []int{5, 4, 3, 2, 1}) {
		t.Errorf("expected all users, got %v", ids)
	}
}

func testUsersEmpty(t *testing.T, users db.UserDB) {
	if got := users.GetUsers(); got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non nil slice, got %v", got)
	}
	if got := users.GetUsersJoinedBefore(Day(1)); got == nil || len(got) != 0 {
		t.Errorf("expected an empty, non nil slice, got %v", got)
	}
	if users.Len() != 0 {
		t.Errorf("expected size 0, got %d", users.Len())
	}
}

func testUsersInfo(t *testing.T, users db.UserDB) {
	for i := 1; i <= 100; i++ {
		users.AddUser(model.User{ID: i, Name: "u", DateJoined: Day(i % 7)})
	}
	info := users.Info()
	if info.Size != 100 {
		t.Errorf("expected size 100, got %d", info.Size)
	}
	for _, idx := range info.Indexes {
		if idx.Entries != 100 {
			t.Errorf("index %s: expected 100 entries, got %d", idx.Name, idx.Entries)
		}
		// a red-black tree of 100 nodes is at most 2*log2(101) high
		if idx.Height < 6 || idx.Height > 13 {
			t.Errorf("index %s: unexpected height %d", idx.Name, idx.Height)
		}
	}
}

// --------------------------------------------------------------------------
// WeetDB tests
// --------------------------------------------------------------------------

func testAddGetWeet(t *testing.T, weets db.WeetDB) {
	weet := model.Weet{ID: 1, UserID: 42, Message: "hello #world", Date: Day(1)}
	if !weets.AddWeet(weet) {
		t.Fatal("expected AddWeet to succeed")
	}

	got, found := weets.GetWeet(1)
	if !found {
		t.Fatal("expected weet to be found")
	}
	if got.ID != 1 || got.UserID != 42 || got.Message != weet.Message || !got.Date.Equal(weet.Date) {
		t.Errorf("expected %v, got %v", weet, got)
	}

	if _, found := weets.GetWeet(2); found {
		t.Error("expected unknown weet to be absent")
	}
	if weets.Len() != 1 {
		t.Errorf("expected size 1, got %d", weets.Len())
	}
}

func testDuplicateWeet(t *testing.T, weets db.WeetDB) {
	weets.AddWeet(model.Weet{ID: 1, UserID: 1, Message: "#a", Date: Day(1)})
	if weets.AddWeet(model.Weet{ID: 1, UserID: 2, Message: "#a", Date: Day(2)}) {
		t.Error("expected duplicate AddWeet to return false")
	}
	if weets.Len() != 1 {
		t.Errorf("expected size 1, got %d", weets.Len())
	}
	// the rejected weet must not be counted
	if n, _ := weets.GetTopicMentions("#a"); n != 1 {
		t.Errorf("expected 1 mention, got %d", n)
	}
}

func testWeetQueries(t *testing.T, weets db.WeetDB) {
	weets.AddWeet(model.Weet{ID: 1, UserID: 1, Message: "good morning", Date: Day(1)})
	weets.AddWeet(model.Weet{ID: 2, UserID: 2, Message: "good night", Date: Day(2)})
	weets.AddWeet(model.Weet{ID: 3, UserID: 1, Message: "lunch", Date: Day(3)})
	weets.AddWeet(model.Weet{ID: 4, UserID: 1, Message: "Good evening", Date: Day(4)})

	if ids := weetIDs(weets.GetWeets()); !equalIDs(ids, []int{4, 3, 2, 1}) {
		t.Errorf("GetWeets: expected [4 3 2 1], got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsByUser(1)); !equalIDs(ids, []int{4, 3, 1}) {
		t.Errorf("GetWeetsByUser: expected [4 3 1], got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsByUser(99)); len(ids) != 0 {
		t.Errorf("GetWeetsByUser: expected no weets, got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsContaining("good")); !equalIDs(ids, []int{2, 1}) {
		t.Errorf("GetWeetsContaining: expected [2 1], got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsOn(Day(3))); !equalIDs(ids, []int{3}) {
		t.Errorf("GetWeetsOn: expected [3], got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsOn(Day(3).Add(time.Second))); len(ids) != 0 {
		t.Errorf("GetWeetsOn: expected exact timestamp match only, got %v", ids)
	}
	if ids := weetIDs(weets.GetWeetsBefore(Day(3))); !equalIDs(ids, []int{2, 1}) {
		t.Errorf("GetWeetsBefore: expected [2 1], got %v", ids)
	}
}

func testWeetsSameTimestamp(t *testing.T, weets db.WeetDB) {
	for i := 1; i <= 3; i++ {
		weets.AddWeet(model.Weet{ID: i, UserID: 1, Message: "tick", Date: Day(1)})
	}
	if ids := weetIDs(weets.GetWeetsOn(Day(1))); !equalIDs(ids, []int{3, 2, 1}) {
		t.Errorf("expected the latest added weet first, got %v", ids)
	}
}

func testTrendingBelowThreshold(t *testing.T, weets db.WeetDB) {
	if topics, ok := weets.GetTrending(); ok || topics != nil {
		t.Errorf("expected (nil, false) for an empty store, got (%v, %v)", topics, ok)
	}

	for i := 0; i < db.TrendingSize-1; i++ {
		weets.AddWeet(model.Weet{ID: i, UserID: 1, Message: fmt.Sprintf("#topic%d", i), Date: Day(1)})
	}
	if topics, ok := weets.GetTrending(); ok || topics != nil {
		t.Errorf("expected (nil, false) with %d topics, got (%v, %v)", db.TrendingSize-1, topics, ok)
	}
	if weets.NumTopics() != db.TrendingSize-1 {
		t.Errorf("expected %d topics, got %d", db.TrendingSize-1, weets.NumTopics())
	}
}

func testTrending(t *testing.T, weets db.WeetDB) {
	// topic i is mentioned i+1 times, 15 topics
	id := 0
	for topic := 0; topic < 15; topic++ {
		for n := 0; n <= topic; n++ {
			id++
			weets.AddWeet(model.Weet{ID: id, UserID: n, Message: fmt.Sprintf("about #t%02d", topic), Date: Day(n + 1)})
		}
	}

	topics, ok := weets.GetTrending()
	if !ok {
		t.Fatal("expected trending topics")
	}
	if len(topics) != db.TrendingSize {
		t.Fatalf("expected %d topics, got %d", db.TrendingSize, len(topics))
	}

	last := -1
	for i, topic := range topics {
		mentions, found := weets.GetTopicMentions(topic)
		if !found {
			t.Fatalf("trending topic %q not found", topic)
		}
		if i > 0 && mentions > last {
			t.Errorf("mentions not non-increasing at %d: %d > %d", i, mentions, last)
		}
		last = mentions
	}

	// the ranking covers all topics, so the 10 most mentioned are returned
	if topics[0] != "#t14" || topics[9] != "#t05" {
		t.Errorf("expected #t14 ... #t05, got %v", topics)
	}
}

func testTrendingCats(t *testing.T, weets db.WeetDB) {
	id := 0
	for i := 0; i < 9; i++ {
		id++
		weets.AddWeet(model.Weet{ID: id, UserID: 1, Message: fmt.Sprintf("#other%d", i), Date: Day(1)})
	}
	for i := 0; i < 5; i++ {
		id++
		weets.AddWeet(model.Weet{ID: id, UserID: 2, Message: "I love #cats", Date: Day(2)})
	}

	topics, ok := weets.GetTrending()
	if !ok {
		t.Fatal("expected trending topics with 10 distinct topics")
	}
	if topics[0] != "#cats" {
		t.Errorf("expected #cats to trend first, got %v", topics)
	}
}

func testFirstHashtagOnly(t *testing.T, weets db.WeetDB) {
	weets.AddWeet(model.Weet{ID: 1, UserID: 1, Message: "#go is better than #rust", Date: Day(1)})
	weets.AddWeet(model.Weet{ID: 2, UserID: 1, Message: "no topic", Date: Day(1)})

	if n, found := weets.GetTopicMentions("#go"); !found || n != 1 {
		t.Errorf("expected #go to be mentioned once, got (%d, %v)", n, found)
	}
	if _, found := weets.GetTopicMentions("#rust"); found {
		t.Error("expected only the first hashtag to be counted")
	}
	if weets.NumTopics() != 1 {
		t.Errorf("expected 1 topic, got %d", weets.NumTopics())
	}
}

// --------------------------------------------------------------------------
// FollowerDB tests
// --------------------------------------------------------------------------

func testAddFollower(t *testing.T, graph db.FollowerDB) {
	// users {1, 2, 3}
	if !graph.AddFollower(1, 2, Day(1)) {
		t.Fatal("expected AddFollower(1, 2) to succeed")
	}
	if !graph.AddFollower(3, 2, Day(2)) {
		t.Fatal("expected AddFollower(3, 2) to succeed")
	}

	if ids, ok := graph.GetFollowers(2); !ok || !equalIDs(ids, []int{3, 1}) {
		t.Errorf("expected followers [3 1], got (%v, %v)", ids, ok)
	}
	if n, ok := graph.GetNumFollowers(2); !ok || n != 2 {
		t.Errorf("expected 2 followers, got (%d, %v)", n, ok)
	}
	if ids, ok := graph.GetFollows(1); !ok || !equalIDs(ids, []int{2}) {
		t.Errorf("expected follows [2], got (%v, %v)", ids, ok)
	}
	if n, ok := graph.GetNumFollows(1); !ok || n != 1 {
		t.Errorf("expected 1 follow, got (%d, %v)", n, ok)
	}
	// user 2 is known to the graph but follows nobody
	if ids, ok := graph.GetFollows(2); !ok || len(ids) != 0 {
		t.Errorf("expected no follows for 2, got (%v, %v)", ids, ok)
	}
	if graph.Len() != 3 {
		t.Errorf("expected 3 users in the graph, got %d", graph.Len())
	}
}

func testSelfFollow(t *testing.T, graph db.FollowerDB) {
	if graph.AddFollower(5, 5, Day(1)) {
		t.Error("expected self follow to be rejected")
	}
	if _, ok := graph.GetFollowers(5); ok {
		t.Error("expected a rejected self follow to leave the graph unchanged")
	}
	if graph.Len() != 0 {
		t.Errorf("expected an empty graph, got %d users", graph.Len())
	}
}

func testDuplicateEdge(t *testing.T, graph db.FollowerDB) {
	graph.AddFollower(1, 2, Day(1))
	if graph.AddFollower(1, 2, Day(5)) {
		t.Error("expected duplicate edge to be rejected")
	}
	if ids, _ := graph.GetFollowers(2); !equalIDs(ids, []int{1}) {
		t.Errorf("expected followers [1], got %v", ids)
	}
	if n, _ := graph.GetNumFollows(1); n != 1 {
		t.Errorf("expected 1 follow, got %d", n)
	}

	// the reverse direction is a different edge
	if !graph.AddFollower(2, 1, Day(2)) {
		t.Error("expected reverse edge to be accepted")
	}
}

func testFollowDateOrder(t *testing.T, graph db.FollowerDB) {
	// inserted out of date order, including a tie
	graph.AddFollower(10, 1, Day(3))
	graph.AddFollower(11, 1, Day(1))
	graph.AddFollower(12, 1, Day(5))
	graph.AddFollower(13, 1, Day(3))
	graph.AddFollower(14, 1, Day(2))

	// newest first, ties: the latest inserted first
	if ids, _ := graph.GetFollowers(1); !equalIDs(ids, []int{12, 13, 10, 14, 11}) {
		t.Errorf("expected [12 13 10 14 11], got %v", ids)
	}

	graph.AddFollower(1, 20, Day(1))
	graph.AddFollower(1, 21, Day(9))
	graph.AddFollower(1, 22, Day(4))
	if ids, _ := graph.GetFollows(1); !equalIDs(ids, []int{21, 22, 20}) {
		t.Errorf("expected [21 22 20], got %v", ids)
	}
}

func testIsAFollower(t *testing.T, graph db.FollowerDB) {
	graph.AddFollower(1, 2, Day(1))
	graph.AddFollower(2, 3, Day(1))

	tests := []struct {
		follower, followed int
		expected           bool
	}{
		{1, 2, true},
		{2, 1, false},
		{2, 3, true},
		{1, 3, false},
		{9, 1, false},
		{1, 9, false},
	}

	for _, tc := range tests {
		if got := graph.IsAFollower(tc.follower, tc.followed); got != tc.expected {
			t.Errorf("IsAFollower(%d, %d) = %v, want %v", tc.follower, tc.followed, got, tc.expected)
		}

		// must agree with the follows list
		follows, _ := graph.GetFollows(tc.follower)
		member := false
		for _, id := range follows {
			member = member || id == tc.followed
		}
		if member != tc.expected {
			t.Errorf("GetFollows(%d) membership of %d = %v, want %v", tc.follower, tc.followed, member, tc.expected)
		}
	}
}

func testUnknownUser(t *testing.T, graph db.FollowerDB) {
	graph.AddFollower(1, 2, Day(1))

	if ids, ok := graph.GetFollowers(99); ok || ids != nil {
		t.Errorf("GetFollowers: expected (nil, false), got (%v, %v)", ids, ok)
	}
	if ids, ok := graph.GetFollows(99); ok || ids != nil {
		t.Errorf("GetFollows: expected (nil, false), got (%v, %v)", ids, ok)
	}
	if _, ok := graph.GetNumFollowers(99); ok {
		t.Error("GetNumFollowers: expected absence")
	}
	if _, ok := graph.GetNumFollows(99); ok {
		t.Error("GetNumFollows: expected absence")
	}
	if _, ok := graph.GetMutualFollowers(1, 99); ok {
		t.Error("GetMutualFollowers: expected absence")
	}
	if _, ok := graph.GetMutualFollows(99, 1); ok {
		t.Error("GetMutualFollows: expected absence")
	}
}

func testMutual(t *testing.T, graph db.FollowerDB) {
	// followers of 1: 10, 11, 12 - followers of 2: 11, 12, 13
	graph.AddFollower(10, 1, Day(1))
	graph.AddFollower(11, 1, Day(2))
	graph.AddFollower(12, 1, Day(3))
	graph.AddFollower(11, 2, Day(9))
	graph.AddFollower(12, 2, Day(1))
	graph.AddFollower(13, 2, Day(1))

	ids, ok := graph.GetMutualFollowers(1, 2)
	if !ok {
		t.Fatal("expected both users to be known")
	}
	// ordered by the edge dates of the first user
	if !equalIDs(ids, []int{12, 11}) {
		t.Errorf("expected [12 11], got %v", ids)
	}
	if other, _ := graph.GetMutualFollowers(2, 1); !sameSet(ids, other) {
		t.Errorf("expected the same set in both directions, got %v and %v", ids, other)
	}

	// follows of 11: 1, 2 - follows of 12: 1, 2 - follows of 10: 1
	if ids, _ := graph.GetMutualFollows(11, 12); !sameSet(ids, []int{1, 2}) {
		t.Errorf("expected {1, 2}, got %v", ids)
	}
	if ids, _ := graph.GetMutualFollows(10, 13); len(ids) != 0 {
		t.Errorf("expected no mutual follows, got %v", ids)
	}
}

func testTopUsers(t *testing.T, graph db.FollowerDB) {
	// user i has i followers
	for user := 1; user <= 6; user++ {
		for f := 0; f < user; f++ {
			graph.AddFollower(100+f, user, Day(f+1))
		}
	}

	top := graph.GetTopUsers()
	if len(top) != graph.Len() {
		t.Fatalf("expected all %d users, got %d", graph.Len(), len(top))
	}
	if !equalIDs(top[:6], []int{6, 5, 4, 3, 2, 1}) {
		t.Errorf("expected [6 5 4 3 2 1] first, got %v", top)
	}

	last := -1
	for i, uid := range top {
		n, _ := graph.GetNumFollowers(uid)
		if i > 0 && n > last {
			t.Errorf("follower counts not non-increasing at %d", i)
		}
		last = n
	}
}

func testEdgeSymmetry(t *testing.T, graph db.FollowerDB) {
	for i := 0; i < 200; i++ {
		graph.AddFollower(i%13, (i*7)%17, Day(i%28+1))
	}

	for uid := 0; uid < 17; uid++ {
		follows, ok := graph.GetFollows(uid)
		if !ok {
			continue
		}
		for _, other := range follows {
			followers, _ := graph.GetFollowers(other)
			count := 0
			for _, id := range followers {
				if id == uid {
					count++
				}
			}
			if count != 1 {
				t.Errorf("edge %d -> %d found %d times in followers of %d", uid, other, count, other)
			}
		}
		if n, _ := graph.GetNumFollows(uid); n != len(follows) {
			t.Errorf("count %d differs from list length %d", n, len(follows))
		}
	}
}
