package leaderboard

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard_OrderingAndTieBreak(t *testing.T) {
	board := New()

	board.Record(120, 5)
	board.Record(60, 5)
	board.Record(90, 7)

	top := board.Top(10)
	require.Len(t, top, 3)

	// Higher score first; equal scores broken by ascending time.
	assert.Equal(t, Entry{TimeTaken: 90, Score: 7}, top[0])
	assert.Equal(t, Entry{TimeTaken: 60, Score: 5}, top[1])
	assert.Equal(t, Entry{TimeTaken: 120, Score: 5}, top[2])
}

func TestBoard_TopTruncates(t *testing.T) {
	board := New()
	board.Record(10, 1)
	board.Record(20, 2)
	board.Record(30, 3)

	assert.Len(t, board.Top(2), 2)
	assert.Len(t, board.Top(0), 0)
	assert.Len(t, board.Top(100), 3)
}

func TestBoard_TopReturnsCopy(t *testing.T) {
	board := New()
	board.Record(10, 1)

	top := board.Top(1)
	top[0].Score = 99

	assert.Equal(t, float64(1), board.Top(1)[0].Score)
}

func TestBoard_CapacityKeepsSortedPrefix(t *testing.T) {
	board := NewWithCapacity(2)

	board.Record(120, 5)
	board.Record(60, 5)
	board.Record(90, 7)

	top := board.Top(10)
	require.Len(t, top, 2)
	assert.Equal(t, Entry{TimeTaken: 90, Score: 7}, top[0])
	assert.Equal(t, Entry{TimeTaken: 60, Score: 5}, top[1])
	assert.Equal(t, 2, board.Len())
}

func TestBoard_ConcurrentRecords(t *testing.T) {
	board := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			board.Record(float64(i), float64(i%5))
		}(i)
	}
	wg.Wait()

	top := board.Top(50)
	require.Len(t, top, 50)
	for i := 1; i < len(top); i++ {
		if top[i-1].Score == top[i].Score {
			assert.LessOrEqual(t, top[i-1].TimeTaken, top[i].TimeTaken)
		} else {
			assert.Greater(t, top[i-1].Score, top[i].Score)
		}
	}
}
