package testing

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
)

// StoreFactory creates a new, empty store
type StoreFactory func() store.ISocialStore

// RunIStoreTests runs the conformance suite for a store.ISocialStore
// implementation. The suite only uses the public interface, so it can be run
// against local stores and against RPC clients alike.
func RunIStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Users", func(t *testing.T) {
			testUsers(t, factory())
		})

		t.Run("Weets", func(t *testing.T) {
			testWeets(t, factory())
		})

		t.Run("Trending", func(t *testing.T) {
			testTrending(t, factory())
		})

		t.Run("FollowScenario", func(t *testing.T) {
			testFollowScenario(t, factory())
		})

		t.Run("Mutual", func(t *testing.T) {
			testMutual(t, factory())
		})

		t.Run("Absence", func(t *testing.T) {
			testAbsence(t, factory())
		})

		t.Run("InvalidDate", func(t *testing.T) {
			testInvalidDate(t, factory())
		})

		t.Run("Info", func(t *testing.T) {
			testInfo(t, factory())
		})

		t.Run("Concurrent", func(t *testing.T) {
			testConcurrent(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Helper functions
// --------------------------------------------------------------------------

func day(n int) time.Time {
	return time.Date(2016, time.March, 1, 9, 30, 0, 0, time.UTC).AddDate(0, 0, n-1)
}

// must fails the test on an error and returns the value of a store call,
// e.g. must[bool](t)(s.AddUser(user))
func must[T any](t testing.TB) func(T, error) T {
	return func(value T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return value
	}
}

// mustFound is must for calls reporting absence,
// e.g. mustFound[model.User](t)(s.GetUser(id))
func mustFound[T any](t testing.TB) func(T, bool, error) (T, bool) {
	return func(value T, found bool, err error) (T, bool) {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return value, found
	}
}

func equalInts(a, b []int) bool {
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

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testUsers(t *testing.T, s store.ISocialStore) {
	for i := 1; i <= 3; i++ {
		user := model.User{ID: i, Name: fmt.Sprintf("user-%d", i), DateJoined: day(i)}
		if !must[bool](t)(s.AddUser(user)) {
			t.Fatalf("expected AddUser(%d) to succeed", i)
		}
	}
	if must[bool](t)(s.AddUser(model.User{ID: 2, Name: "dup", DateJoined: day(9)})) {
		t.Error("expected duplicate AddUser to return false")
	}

	user, found := mustFound[model.User](t)(s.GetUser(2))
	if !found || user.Name != "user-2" || !user.DateJoined.Equal(day(2)) {
		t.Errorf("unexpected user: (%v, %v)", user, found)
	}

	users := must[[]model.User](t)(s.GetUsers())
	if len(users) != 3 || users[0].ID != 3 || users[2].ID != 1 {
		t.Errorf("expected users newest first, got %v", users)
	}

	users = must[[]model.User](t)(s.GetUsersContaining("-1"))
	if len(users) != 1 || users[0].ID != 1 {
		t.Errorf("expected user 1, got %v", users)
	}

	users = must[[]model.User](t)(s.GetUsersJoinedBefore(day(3)))
	if len(users) != 2 || users[0].ID != 2 || users[1].ID != 1 {
		t.Errorf("expected users [2 1], got %v", users)
	}
}

func testWeets(t *testing.T, s store.ISocialStore) {
	weets := []model.Weet{
		{ID: 1, UserID: 1, Message: "hello #world", Date: day(1)},
		{ID: 2, UserID: 2, Message: "hello again", Date: day(2)},
		{ID: 3, UserID: 1, Message: "bye #world", Date: day(3)},
	}
	for _, w := range weets {
		if !must[bool](t)(s.AddWeet(w)) {
			t.Fatalf("expected AddWeet(%d) to succeed", w.ID)
		}
	}
	if must[bool](t)(s.AddWeet(weets[0])) {
		t.Error("expected duplicate AddWeet to return false")
	}

	weet, found := mustFound[model.Weet](t)(s.GetWeet(3))
	if !found || weet.Message != "bye #world" || weet.UserID != 1 {
		t.Errorf("unexpected weet: (%v, %v)", weet, found)
	}

	check := func(name string, got []model.Weet, want ...int) {
		t.Helper()
		ids := make([]int, len(got))
		for i, w := range got {
			ids[i] = w.ID
		}
		if !equalInts(ids, want) {
			t.Errorf("%s: expected %v, got %v", name, want, ids)
		}
	}

	check("GetWeets", must[[]model.Weet](t)(s.GetWeets()), 3, 2, 1)
	check("GetWeetsByUser", must[[]model.Weet](t)(s.GetWeetsByUser(1)), 3, 1)
	check("GetWeetsContaining", must[[]model.Weet](t)(s.GetWeetsContaining("hello")), 2, 1)
	check("GetWeetsOn", must[[]model.Weet](t)(s.GetWeetsOn(day(2))), 2)
	check("GetWeetsBefore", must[[]model.Weet](t)(s.GetWeetsBefore(day(3))), 2, 1)

	if n, found := mustFound[int](t)(s.GetTopicMentions("#world")); !found || n != 2 {
		t.Errorf("expected #world to be mentioned twice, got (%d, %v)", n, found)
	}
}

func testTrending(t *testing.T, s store.ISocialStore) {
	if topics, ok := mustFound[[]string](t)(s.GetTrending()); ok || len(topics) != 0 {
		t.Errorf("expected no trending topics, got (%v, %v)", topics, ok)
	}

	id := 0
	for i := 0; i < 9; i++ {
		id++
		must[bool](t)(s.AddWeet(model.Weet{ID: id, UserID: 1, Message: fmt.Sprintf("#topic%d", i), Date: day(1)}))
	}
	for i := 0; i < 3; i++ {
		id++
		must[bool](t)(s.AddWeet(model.Weet{ID: id, UserID: 2, Message: "I love #cats", Date: day(2)}))
	}

	topics, ok := mustFound[[]string](t)(s.GetTrending())
	if !ok || len(topics) != 10 {
		t.Fatalf("expected 10 trending topics, got (%v, %v)", topics, ok)
	}
	if topics[0] != "#cats" {
		t.Errorf("expected #cats first, got %v", topics)
	}
}

func testFollowScenario(t *testing.T, s store.ISocialStore) {
	// users {1, 2, 3}
	if !must[bool](t)(s.AddFollower(1, 2, day(1))) {
		t.Fatal("expected AddFollower(1, 2) to succeed")
	}
	if must[bool](t)(s.AddFollower(1, 2, day(2))) {
		t.Error("expected duplicate AddFollower to return false")
	}
	if must[bool](t)(s.AddFollower(3, 3, day(2))) {
		t.Error("expected self follow to return false")
	}
	if !must[bool](t)(s.AddFollower(3, 2, day(3))) {
		t.Fatal("expected AddFollower(3, 2) to succeed")
	}

	if ids, found := mustFound[[]int](t)(s.GetFollowers(2)); !found || !equalInts(ids, []int{3, 1}) {
		t.Errorf("expected followers [3 1], got (%v, %v)", ids, found)
	}
	if ids, found := mustFound[[]int](t)(s.GetFollows(1)); !found || !equalInts(ids, []int{2}) {
		t.Errorf("expected follows [2], got (%v, %v)", ids, found)
	}
	if n, found := mustFound[int](t)(s.GetNumFollowers(2)); !found || n != 2 {
		t.Errorf("expected 2 followers, got (%d, %v)", n, found)
	}
	if n, found := mustFound[int](t)(s.GetNumFollows(3)); !found || n != 1 {
		t.Errorf("expected 1 follow, got (%d, %v)", n, found)
	}
	if !must[bool](t)(s.IsAFollower(1, 2)) || must[bool](t)(s.IsAFollower(2, 1)) {
		t.Error("IsAFollower does not match the added relationships")
	}

	top := must[[]int](t)(s.GetTopUsers())
	if len(top) != 3 || top[0] != 2 {
		t.Errorf("expected user 2 to lead the top users, got %v", top)
	}
}

func testMutual(t *testing.T, s store.ISocialStore) {
	must[bool](t)(s.AddFollower(10, 1, day(1)))
	must[bool](t)(s.AddFollower(11, 1, day(2)))
	must[bool](t)(s.AddFollower(11, 2, day(3)))
	must[bool](t)(s.AddFollower(10, 2, day(4)))
	must[bool](t)(s.AddFollower(12, 2, day(5)))

	if ids, found := mustFound[[]int](t)(s.GetMutualFollowers(1, 2)); !found || !equalInts(ids, []int{11, 10}) {
		t.Errorf("expected mutual followers [11 10], got (%v, %v)", ids, found)
	}
	if ids, found := mustFound[[]int](t)(s.GetMutualFollows(10, 11)); !found || len(ids) != 2 {
		t.Errorf("expected 2 mutual follows, got (%v, %v)", ids, found)
	}
	if ids, found := mustFound[[]int](t)(s.GetMutualFollows(10, 12)); !found || !equalInts(ids, []int{2}) {
		t.Errorf("expected mutual follows [2], got (%v, %v)", ids, found)
	}
}

func testAbsence(t *testing.T, s store.ISocialStore) {
	if _, found := mustFound[model.User](t)(s.GetUser(404)); found {
		t.Error("GetUser: expected absence")
	}
	if _, found := mustFound[model.Weet](t)(s.GetWeet(404)); found {
		t.Error("GetWeet: expected absence")
	}
	if _, found := mustFound[[]int](t)(s.GetFollowers(404)); found {
		t.Error("GetFollowers: expected absence")
	}
	if _, found := mustFound[[]int](t)(s.GetFollows(404)); found {
		t.Error("GetFollows: expected absence")
	}
	if _, found := mustFound[int](t)(s.GetNumFollowers(404)); found {
		t.Error("GetNumFollowers: expected absence")
	}
	if _, found := mustFound[[]int](t)(s.GetMutualFollowers(404, 405)); found {
		t.Error("GetMutualFollowers: expected absence")
	}
	if _, found := mustFound[int](t)(s.GetTopicMentions("#none")); found {
		t.Error("GetTopicMentions: expected absence")
	}
	if must[bool](t)(s.IsAFollower(404, 405)) {
		t.Error("IsAFollower: expected false for unknown users")
	}
	if users := must[[]model.User](t)(s.GetUsers()); len(users) != 0 {
		t.Errorf("GetUsers: expected no users, got %v", users)
	}
	if top := must[[]int](t)(s.GetTopUsers()); len(top) != 0 {
		t.Errorf("GetTopUsers: expected no users, got %v", top)
	}
}

func testInvalidDate(t *testing.T, s store.ISocialStore) {
	requireInvalid := func(name string, ok bool, err error) {
		t.Helper()
		var storeErr *store.Error
		if !errors.As(err, &storeErr) || storeErr.Code != store.RetCInvalidOperation {
			t.Errorf("%s: expected an invalid operation error, got %v", name, err)
		}
		if ok {
			t.Errorf("%s: expected false", name)
		}
	}

	ok, err := s.AddUser(model.User{ID: 1, Name: "no date"})
	requireInvalid("AddUser", ok, err)
	ok, err = s.AddWeet(model.Weet{ID: 1, UserID: 1, Message: "#no date"})
	requireInvalid("AddWeet", ok, err)
	ok, err = s.AddFollower(1, 2, time.Time{})
	requireInvalid("AddFollower", ok, err)

	// nothing was stored
	if _, found := mustFound[model.User](t)(s.GetUser(1)); found {
		t.Error("expected the invalid user not to be stored")
	}
	if _, found := mustFound[[]int](t)(s.GetFollowers(2)); found {
		t.Error("expected the invalid relationship not to be stored")
	}
}

func testInfo(t *testing.T, s store.ISocialStore) {
	must[bool](t)(s.AddUser(model.User{ID: 1, Name: "a", DateJoined: day(1)}))
	must[bool](t)(s.AddWeet(model.Weet{ID: 1, UserID: 1, Message: "#a", Date: day(1)}))
	must[bool](t)(s.AddWeet(model.Weet{ID: 2, UserID: 1, Message: "#b", Date: day(1)}))
	must[bool](t)(s.AddFollower(1, 2, day(1)))

	info := must[store.Info](t)(s.GetInfo())
	if info.Users.Size != 1 || info.Weets.Size != 2 || info.Followers.Size != 2 || info.Topics != 2 {
		t.Errorf("unexpected info: %+v", info)
	}
}

func testConcurrent(t *testing.T, s store.ISocialStore) {
	const writers = 4
	const perWriter = 50

	var wg sync.WaitGroup
	errs := make(chan error, writers*perWriter*4)

	for w := 0; w < writers; w++ {
		wg.Add(2)

		// writer
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				id := w*perWriter + i
				if _, err := s.AddUser(model.User{ID: id, Name: "u", DateJoined: day(i%28 + 1)}); err != nil {
					errs <- err
				}
				if _, err := s.AddWeet(model.Weet{ID: id, UserID: id, Message: fmt.Sprintf("#t%d", i%12), Date: day(i%28 + 1)}); err != nil {
					errs <- err
				}
				if _, err := s.AddFollower(id, (id+1)%(writers*perWriter), day(i%28+1)); err != nil {
					errs <- err
				}
			}
		}(w)

		// reader
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if _, err := s.GetUsers(); err != nil {
					errs <- err
				}
				if _, _, err := s.GetTrending(); err != nil {
					errs <- err
				}
				if _, err := s.GetTopUsers(); err != nil {
					errs <- err
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	if users := must[[]model.User](t)(s.GetUsers()); len(users) != writers*perWriter {
		t.Errorf("expected %d users, got %d", writers*perWriter, len(users))
	}
	if n, found := mustFound[int](t)(s.GetNumFollowers(0)); !found || n != 1 {
		t.Errorf("expected user 0 to have 1 follower, got (%d, %v)", n, found)
	}
}
