package testing

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/model"
)

// RunWeetDBBenchmarks runs all benchmarks for a WeetDB implementation
func RunWeetDBBenchmarks(b *testing.B, name string, factory WeetDBFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("AddWeet", func(b *testing.B) {
			benchmarkAddWeet(b, factory())
		})

		b.Run("GetWeet", func(b *testing.B) {
			benchmarkGetWeet(b, factory())
		})

		b.Run("GetTrending", func(b *testing.B) {
			benchmarkGetTrending(b, factory())
		})
	})
}

// RunFollowerDBBenchmarks runs all benchmarks for a FollowerDB implementation
func RunFollowerDBBenchmarks(b *testing.B, name string, factory FollowerDBFactory) {
	b.Run(name, func(b *testing.B) {
		b.Run("AddFollower", func(b *testing.B) {
			benchmarkAddFollower(b, factory())
		})

		b.Run("IsAFollower", func(b *testing.B) {
			benchmarkIsAFollower(b, factory())
		})

		b.Run("GetTopUsers", func(b *testing.B) {
			benchmarkGetTopUsers(b, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Dataset generation
// --------------------------------------------------------------------------

const (
	benchUsers  = 1_000
	benchWeets  = 10_000
	benchTopics = 50
)

func randomWeet(r *rand.Rand, id int) model.Weet {
	return model.Weet{
		ID:      id,
		UserID:  r.Intn(benchUsers),
		Message: fmt.Sprintf("weet %d about #topic%d", id, r.Intn(benchTopics)),
		Date:    Day(1 + r.Intn(365)),
	}
}

func fillWeets(weets db.WeetDB) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < benchWeets; i++ {
		weets.AddWeet(randomWeet(r, i))
	}
}

func fillFollowers(graph db.FollowerDB) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < benchUsers*10; i++ {
		graph.AddFollower(r.Intn(benchUsers), r.Intn(benchUsers), Day(1+r.Intn(365)))
	}
}

// --------------------------------------------------------------------------
// Benchmarks
// --------------------------------------------------------------------------

func benchmarkAddWeet(b *testing.B, weets db.WeetDB) {
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		weets.AddWeet(randomWeet(r, i))
	}
}

func benchmarkGetWeet(b *testing.B, weets db.WeetDB) {
	fillWeets(weets)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		weets.GetWeet(i % benchWeets)
	}
}

func benchmarkGetTrending(b *testing.B, weets db.WeetDB) {
	fillWeets(weets)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		weets.GetTrending()
	}
}

func benchmarkAddFollower(b *testing.B, graph db.FollowerDB) {
	r := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		graph.AddFollower(r.Intn(benchUsers), r.Intn(benchUsers), Day(1+r.Intn(365)))
	}
}

func benchmarkIsAFollower(b *testing.B, graph db.FollowerDB) {
	fillFollowers(graph)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		graph.IsAFollower(i%benchUsers, (i*31)%benchUsers)
	}
}

func benchmarkGetTopUsers(b *testing.B, graph db.FollowerDB) {
	fillFollowers(graph)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		graph.GetTopUsers()
	}
}
