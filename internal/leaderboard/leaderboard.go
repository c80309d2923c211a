package leaderboard

import (
	"sort"
	"sync"
)

// Entry is one recorded (time, score) attempt.
type Entry struct {
	TimeTaken float64 `json:"time_taken"`
	Score     float64 `json:"score"`
}

// Board keeps a ranked history of attempts for the lifetime of the process.
// Entries are append-only; the whole history is re-sorted after every append
// so tie-breaks stay deterministic. Ordering is score descending, then time
// ascending (faster wins ties). Safe for concurrent use.
type Board struct {
	mu      sync.Mutex
	entries []Entry
	max     int // 0 means unbounded
}

func New() *Board {
	return &Board{}
}

// NewWithCapacity returns a board that retains at most max entries after
// each re-sort. The sort and tie-break rule is unchanged for the retained
// prefix.
func NewWithCapacity(max int) *Board {
	return &Board{max: max}
}

// Record appends an attempt and re-sorts the history.
func (b *Board) Record(timeTaken, score float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries = append(b.entries, Entry{TimeTaken: timeTaken, Score: score})
	sort.SliceStable(b.entries, func(i, j int) bool {
		if b.entries[i].Score != b.entries[j].Score {
			return b.entries[i].Score > b.entries[j].Score
		}
		return b.entries[i].TimeTaken < b.entries[j].TimeTaken
	})

	if b.max > 0 && len(b.entries) > b.max {
		b.entries = b.entries[:b.max]
	}
}

// Top returns a copy of the first n entries, or fewer if the history is
// shorter.
func (b *Board) Top(n int) []Entry {
	b.mu.Lock()
	defer b.mu.Unlock()

	if n > len(b.entries) {
		n = len(b.entries)
	}
	if n < 0 {
		n = 0
	}
	top := make([]Entry, n)
	copy(top, b.entries[:n])
	return top
}

// Len reports how many entries are currently retained.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}
