package index

import (
	"math/rand"
	"testing"
)

// TestSortDescending tests sorting of small and random inputs. Keys are the
// input positions.
func TestSortDescending(t *testing.T) {
	tests := []struct {
		name   string
		counts []int
	}{
		{"empty", nil},
		{"single", []int{1}},
		{"sorted", []int{5, 4, 3, 2, 1}},
		{"reversed", []int{1, 2, 3, 4, 5}},
		{"duplicates", []int{2, 2, 1, 2, 3, 3, 1}},
		{"all equal", []int{7, 7, 7, 7}},
	}

	rng := rand.New(rand.NewSource(11))
	random := make([]int, 200)
	for i := range random {
		random[i] = rng.Intn(30)
	}
	tests = append(tests, struct {
		name   string
		counts []int
	}{"random", random})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]Ranked[int], len(tt.counts))
			for i, c := range tt.counts {
				items[i] = Ranked[int]{Key: i, Count: c}
			}

			SortDescending(items)

			if len(items) != len(tt.counts) {
				t.Fatalf("sort changed the length")
			}
			for i := 1; i < len(items); i++ {
				if items[i].Count > items[i-1].Count {
					t.Fatalf("not descending at %d: %v", i, items)
				}
				// keys are input positions, ties must keep the input order
				if items[i].Count == items[i-1].Count && items[i].Key < items[i-1].Key {
					t.Fatalf("tie at %d does not keep the input order: %v", i, items)
				}
			}

			// every key must still be present exactly once
			seen := make(map[int]bool)
			for _, item := range items {
				if seen[item.Key] {
					t.Fatalf("key %d appears twice", item.Key)
				}
				seen[item.Key] = true
				if tt.counts[item.Key] != item.Count {
					t.Fatalf("key %d lost its count", item.Key)
				}
			}
		})
	}
}

// TestTopN tests truncation after sorting
func TestTopN(t *testing.T) {
	items := []Ranked[string]{
		{"a", 1}, {"b", 5}, {"c", 3}, {"d", 4},
	}

	top := TopN(items, 2)
	if len(top) != 2 || top[0].Key != "b" || top[1].Key != "d" {
		t.Errorf("expected [b d], got %v", top)
	}

	if all := TopN(items, 10); len(all) != 4 {
		t.Errorf("expected all 4 items, got %d", len(all))
	}
	if none := TopN(items, -1); len(none) != 0 {
		t.Errorf("expected no items, got %d", len(none))
	}

	keys := Keys(TopN(items, 3))
	if len(keys) != 3 || keys[0] != "b" || keys[1] != "d" || keys[2] != "c" {
		t.Errorf("expected [b d c], got %v", keys)
	}
}
