package llrb

import (
	"testing"

	"github.com/ValentinKolb/dWeet/lib/db"
	dbtesting "github.com/ValentinKolb/dWeet/lib/db/testing"
)

func Test(t *testing.T) {
	dbtesting.RunUserDBTests(t, "UserDirectory", func() db.UserDB {
		return NewUserDirectory()
	})
	dbtesting.RunWeetDBTests(t, "MessageStore", func() db.WeetDB {
		return NewMessageStore()
	})
	dbtesting.RunFollowerDBTests(t, "FollowerGraph", func() db.FollowerDB {
		return NewFollowerGraph()
	})
}

func Benchmark(b *testing.B) {
	dbtesting.RunFollowerDBBenchmarks(b, "FollowerGraph", func() db.FollowerDB {
		return NewFollowerGraph()
	})
	dbtesting.RunWeetDBBenchmarks(b, "MessageStore", func() db.WeetDB {
		return NewMessageStore()
	})
}
