package llrb

import (
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/db/util"
	"github.com/ValentinKolb/dWeet/lib/index"
)

// relationship is the adjacency of a single user. The list lengths are the
// follower and follow counts, they only change through AddFollower.
type relationship struct {
	userID    int
	followers index.TimeOrderedList // users following userID
	follows   index.TimeOrderedList // users followed by userID
}

// --------------------------------------------------------------------------
// FollowerGraphStore
// --------------------------------------------------------------------------

// followerGraphImpl keeps one relationship per user in a unique index keyed by
// user id. A user becomes known to the graph with its first relationship.
type followerGraphImpl struct {
	users *index.OrderedIndex[int, *relationship]
}

// NewFollowerGraph creates an empty follower graph
func NewFollowerGraph() db.FollowerDB {
	return &followerGraphImpl{
		users: index.NewOrdered[int, *relationship](index.PolicyUnique),
	}
}

// relationshipOf returns the relationship of uid, creating it if needed
func (f *followerGraphImpl) relationshipOf(uid int) *relationship {
	if r, ok := f.users.Get(uid); ok {
		return r
	}
	r := &relationship{userID: uid}
	f.users.Put(uid, r)
	return r
}

// AddFollower records the edge follower -> followed
func (f *followerGraphImpl) AddFollower(follower, followed int, date time.Time) bool {
	if follower == followed {
		return false
	}

	a := f.relationshipOf(follower)
	b := f.relationshipOf(followed)

	if a.follows.Contains(followed) {
		return false
	}

	a.follows.Insert(followed, date)
	b.followers.Insert(follower, date)
	return true
}

func (f *followerGraphImpl) GetFollowers(uid int) ([]int, bool) {
	r, ok := f.users.Get(uid)
	if !ok {
		return nil, false
	}
	return r.followers.IDs(), true
}

func (f *followerGraphImpl) GetFollows(uid int) ([]int, bool) {
	r, ok := f.users.Get(uid)
	if !ok {
		return nil, false
	}
	return r.follows.IDs(), true
}

func (f *followerGraphImpl) IsAFollower(follower, followed int) bool {
	r, ok := f.users.Get(follower)
	if !ok {
		return false
	}
	return r.follows.Contains(followed)
}

func (f *followerGraphImpl) GetNumFollowers(uid int) (int, bool) {
	r, ok := f.users.Get(uid)
	if !ok {
		return 0, false
	}
	return r.followers.Len(), true
}

func (f *followerGraphImpl) GetNumFollows(uid int) (int, bool) {
	r, ok := f.users.Get(uid)
	if !ok {
		return 0, false
	}
	return r.follows.Len(), true
}

func (f *followerGraphImpl) GetMutualFollowers(uid1, uid2 int) ([]int, bool) {
	return f.mutual(uid1, uid2, func(r *relationship) *index.TimeOrderedList {
		return &r.followers
	})
}

func (f *followerGraphImpl) GetMutualFollows(uid1, uid2 int) ([]int, bool) {
	return f.mutual(uid1, uid2, func(r *relationship) *index.TimeOrderedList {
		return &r.follows
	})
}

// mutual intersects the selected lists of uid1 and uid2 by comparing every
// pair of edges. Matches are ordered by the edge date of uid1, newest first.
func (f *followerGraphImpl) mutual(uid1, uid2 int, list func(r *relationship) *index.TimeOrderedList) ([]int, bool) {
	r1, ok1 := f.users.Get(uid1)
	r2, ok2 := f.users.Get(uid2)
	if !ok1 || !ok2 {
		return nil, false
	}

	var result index.TimeOrderedList
	list(r1).Each(func(e1 index.Edge) bool {
		list(r2).Each(func(e2 index.Edge) bool {
			if e1.ID == e2.ID {
				result.Insert(e1.ID, e1.Date)
				return false
			}
			return true
		})
		return true
	})
	return result.IDs(), true
}

// GetTopUsers ranks all known users by their number of followers
func (f *followerGraphImpl) GetTopUsers() []int {
	ranked := make([]index.Ranked[int], 0, f.users.Len())
	f.users.Ascend(func(uid int, r *relationship) bool {
		ranked = append(ranked, index.Ranked[int]{Key: uid, Count: r.followers.Len()})
		return true
	})
	return index.Keys(index.TopN(ranked, len(ranked)))
}

func (f *followerGraphImpl) GetFollowerCounts() []int {
	counts := make([]int, 0, f.users.Len())
	f.users.Ascend(func(_ int, r *relationship) bool {
		counts = append(counts, r.followers.Len())
		return true
	})
	return counts
}

func (f *followerGraphImpl) Len() int {
	return f.users.Len()
}

func (f *followerGraphImpl) Info() db.DatabaseInfo {
	edges := 0
	f.users.Ascend(func(_ int, r *relationship) bool {
		edges += r.follows.Len()
		return true
	})

	meta := &struct {
		Edges           int              `json:"edges"`
		FollowerDegrees util.DegreeStats `json:"follower_degrees"`
	}{
		Edges:           edges,
		FollowerDegrees: util.NewDegreeStats(f.GetFollowerCounts()),
	}

	return db.DatabaseInfo{
		DbType: db.ImplLLRB,
		Size:   f.Len(),
		Indexes: []db.IndexInfo{
			indexInfo("relationships_by_user", f.users),
		},
		Metadata: meta,
	}
}
