package llrb

import (
	"fmt"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
)

func day(n int) time.Time {
	return time.Date(2016, time.January, n, 12, 0, 0, 0, time.UTC)
}

func TestTopicOf(t *testing.T) {
	tests := []struct {
		message string
		topic   string
		ok      bool
	}{
		{"I love #cats", "#cats", true},
		{"#first and #second", "#first", true},
		{"no hashtag here", "", false},
		{"trailing #", "", false},
		{"symbols #!!! only", "#!!! ", true},
		{"#go_lang rocks", "#go_lang", true},
		{"mixed #a1-b", "#a1", true},
	}

	for _, tc := range tests {
		t.Run(tc.message, func(t *testing.T) {
			topic, ok := TopicOf(tc.message)
			if ok != tc.ok || topic != tc.topic {
				t.Errorf("TopicOf(%q) = (%q, %v), want (%q, %v)", tc.message, topic, ok, tc.topic, tc.ok)
			}
		})
	}
}

func TestMessageStoreInfo(t *testing.T) {
	store := NewMessageStore()
	info := store.Info()
	if info.Size != 0 || len(info.Indexes) != 3 {
		t.Fatalf("unexpected info for empty store: %+v", info)
	}
	for _, idx := range info.Indexes {
		if idx.Height != -1 {
			t.Errorf("index %s: expected height -1, got %d", idx.Name, idx.Height)
		}
	}
}

func TestFollowerGraphInfo(t *testing.T) {
	graph := NewFollowerGraph()
	graph.AddFollower(1, 2, day(1))
	graph.AddFollower(3, 2, day(2))
	graph.AddFollower(2, 1, day(3))

	info := graph.Info()
	if info.Size != 3 {
		t.Errorf("expected 3 users, got %d", info.Size)
	}
	if info.Indexes[0].Entries != 3 {
		t.Errorf("expected 3 entries, got %d", info.Indexes[0].Entries)
	}
}

func TestTrendingTiesKeepTopicOrder(t *testing.T) {
	store := NewMessageStore()
	for i := 0; i < 12; i++ {
		store.AddWeet(model.Weet{ID: i, UserID: 1, Message: fmt.Sprintf("#t%02d", i), Date: day(1)})
	}
	store.AddWeet(model.Weet{ID: 12, UserID: 2, Message: "again #t11", Date: day(2)})

	topics, ok := store.GetTrending()
	if !ok {
		t.Fatal("expected trending topics")
	}
	want := []string{"#t11", "#t00", "#t01", "#t02", "#t03", "#t04", "#t05", "#t06", "#t07", "#t08"}
	if fmt.Sprint(topics) != fmt.Sprint(want) {
		t.Errorf("expected %v, got %v", want, topics)
	}
}
