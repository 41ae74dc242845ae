package lstore

import (
	"strings"
	"testing"
	"time"

	"github.com/ValentinKolb/dWeet/lib/model"
	"github.com/ValentinKolb/dWeet/lib/store"
	storetesting "github.com/ValentinKolb/dWeet/lib/store/testing"
	"github.com/VictoriaMetrics/metrics"
)

func Test(t *testing.T) {
	storetesting.RunIStoreTests(t, "LocalStore", func() store.ISocialStore {
		return NewLocalStore(LLRBEngines, nil)
	})
}

func TestRejectionCounter(t *testing.T) {
	s := NewLocalStore(LLRBEngines, &Options{Name: "rejection-test"})
	s.AddFollower(1, 1, day())
	s.AddFollower(1, 2, day())
	s.AddFollower(1, 2, day())

	rejected := metrics.GetOrCreateCounter(`dweet_store_rejected_total{store="rejection-test",op="add_follower"}`)
	if got := rejected.Get(); got != 2 {
		t.Errorf("expected 2 rejected mutations, got %d", got)
	}
	total := metrics.GetOrCreateCounter(`dweet_store_operations_total{store="rejection-test",op="add_follower"}`)
	if got := total.Get(); got != 3 {
		t.Errorf("expected 3 operations, got %d", got)
	}

	var sb strings.Builder
	metrics.WritePrometheus(&sb, false)
	if !strings.Contains(sb.String(), `dweet_store_rejected_total{store="rejection-test",op="add_follower"} 2`) {
		t.Error("expected the rejection counter in the prometheus output")
	}
}

func TestUserCopies(t *testing.T) {
	s := NewLocalStore(LLRBEngines, nil)
	s.AddUser(model.User{ID: 1, Name: "a", DateJoined: day()})

	users, _ := s.GetUsers()
	users[0].Name = "changed"

	again, _ := s.GetUsers()
	if again[0].Name != "a" {
		t.Error("expected results to be independent of the stored records")
	}
}

func day() time.Time {
	return time.Date(2016, time.May, 4, 0, 0, 0, 0, time.UTC)
}
