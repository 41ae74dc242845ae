package index

// Ranked is a key with a count, e.g. a user and its number of followers
type Ranked[K any] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// SortDescending sorts items in place by descending count. It uses a
// partition-exchange sort with the middle element as pivot. Items with equal
// counts are ordered by their input position, so ties keep the order of the
// input (e.g. key order when items were collected by an index traversal).
//
// The average cost is O(n log n) and the worst case is O(n²), which is fine
// for the small leaderboards this is used for.
func SortDescending[K any](items []Ranked[K]) {
	if len(items) < 2 {
		return
	}
	pos := make([]int, len(items))
	for i := range pos {
		pos[i] = i
	}
	quickSort(items, pos, 0, len(items)-1)
}

// before reports whether the item at i belongs in front of the pivot
func before[K any](items []Ranked[K], pos []int, i, pivotCount, pivotPos int) bool {
	if items[i].Count != pivotCount {
		return items[i].Count > pivotCount
	}
	return pos[i] < pivotPos
}

// after reports whether the item at j belongs behind the pivot
func after[K any](items []Ranked[K], pos []int, j, pivotCount, pivotPos int) bool {
	if items[j].Count != pivotCount {
		return items[j].Count < pivotCount
	}
	return pos[j] > pivotPos
}

// quickSort sorts items[low..high] and moves the input positions in pos along
func quickSort[K any](items []Ranked[K], pos []int, low, high int) {
	mid := low + (high-low)/2
	pivotCount, pivotPos := items[mid].Count, pos[mid]

	i, j := low, high
	for i <= j {
		for before(items, pos, i, pivotCount, pivotPos) {
			i++
		}
		for after(items, pos, j, pivotCount, pivotPos) {
			j--
		}
		if i <= j {
			items[i], items[j] = items[j], items[i]
			pos[i], pos[j] = pos[j], pos[i]
			i++
			j--
		}
	}

	if low < j {
		quickSort(items, pos, low, j)
	}
	if high > i {
		quickSort(items, pos, i, high)
	}
}

// TopN sorts items by descending count and returns the first n of them.
// The returned slice shares its backing array with items.
func TopN[K any](items []Ranked[K], n int) []Ranked[K] {
	SortDescending(items)
	if n < 0 {
		n = 0
	}
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}

// Keys returns the keys of ranked items in their current order
func Keys[K any](items []Ranked[K]) []K {
	keys := make([]K, len(items))
	for i, item := range items {
		keys[i] = item.Key
	}
	return keys
}
