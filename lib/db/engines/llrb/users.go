package llrb

import (
	"strings"
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/index"
	"github.com/ValentinKolb/dWeet/lib/model"
)

// --------------------------------------------------------------------------
// UserDirectory
// --------------------------------------------------------------------------

// userDirectoryImpl indexes users by id (unique) and by join date (multi,
// newest first). Both indexes hold the same records.
type userDirectoryImpl struct {
	byID   *index.OrderedIndex[int, model.User]
	byDate *index.OrderedIndex[time.Time, model.User]
}

// NewUserDirectory creates an empty user directory
func NewUserDirectory() db.UserDB {
	return &userDirectoryImpl{
		byID:   index.NewOrdered[int, model.User](index.PolicyUnique),
		byDate: index.New[time.Time, model.User](newestFirst, index.PolicyMulti),
	}
}

// AddUser adds a user unless the id is already taken
func (u *userDirectoryImpl) AddUser(user model.User) bool {
	if u.byID.Has(user.ID) {
		return false
	}
	u.byID.Put(user.ID, user)
	u.byDate.Put(user.DateJoined, user)
	return true
}

func (u *userDirectoryImpl) GetUser(id int) (model.User, bool) {
	return u.byID.Get(id)
}

func (u *userDirectoryImpl) GetUsers() []model.User {
	return u.byDate.Values()
}

func (u *userDirectoryImpl) GetUsersContaining(query string) []model.User {
	return u.byDate.Filter(func(_ time.Time, user model.User) bool {
		return strings.Contains(user.Name, query)
	}).Drain()
}

func (u *userDirectoryImpl) GetUsersJoinedBefore(date time.Time) []model.User {
	return u.byDate.Filter(func(joined time.Time, _ model.User) bool {
		return joined.Before(date)
	}).Drain()
}

func (u *userDirectoryImpl) Len() int {
	return u.byID.Len()
}

func (u *userDirectoryImpl) Info() db.DatabaseInfo {
	meta := &struct {
		Newest time.Time `json:"newest"`
		Oldest time.Time `json:"oldest"`
	}{}
	// the date index is descending, so Min is the most recent join date
	meta.Newest, _ = u.byDate.Min()
	meta.Oldest, _ = u.byDate.Max()

	return db.DatabaseInfo{
		DbType: db.ImplLLRB,
		Size:   u.Len(),
		Indexes: []db.IndexInfo{
			indexInfo("users_by_id", u.byID),
			indexInfo("users_by_date", u.byDate),
		},
		Metadata: meta,
	}
}
