package llrb

import (
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/index"
)

// newestFirst orders timestamps descending, so an in-order traversal of a
// date index yields the most recent entry first
var newestFirst = index.Descending(time.Time.Compare)

// indexStats is the part of an OrderedIndex reported in DatabaseInfo
type indexStats interface {
	Len() int
	Height() int
	Policy() index.Policy
}

func indexInfo(name string, idx indexStats) db.IndexInfo {
	return db.IndexInfo{
		Name:    name,
		Policy:  idx.Policy().String(),
		Entries: idx.Len(),
		Height:  idx.Height(),
	}
}
