package frontier

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrainMarksVisited(t *testing.T) {
	f := New("http://example.com/", 10)
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Pending())

	batch := f.Drain(5)
	assert.Equal(t, []string{"http://example.com/"}, batch)
	assert.True(t, f.Visited("http://example.com/"))
	assert.Equal(t, 1, f.VisitedCount())
	assert.Equal(t, 0, f.Len())
	assert.False(t, f.Pending())
}

func TestPushRejectsVisited(t *testing.T) {
	f := New("http://example.com/", 10)
	f.Drain(1)

	assert.False(t, f.Push("http://example.com/"))
	assert.True(t, f.Push("http://example.com/a"))
	assert.Equal(t, 1, f.Len())
}

func TestPushRespectsQueueBudget(t *testing.T) {
	f := New("http://example.com/", 3)
	assert.True(t, f.Push("http://example.com/a"))
	assert.True(t, f.Push("http://example.com/b"))
	assert.False(t, f.Push("http://example.com/c"))
	assert.Equal(t, 3, f.Len())
}

func TestDrainSkipsQueuedDuplicates(t *testing.T) {
	f := New("http://example.com/", 10)
	f.Push("http://example.com/a")
	f.Push("http://example.com/a")
	f.Push("http://example.com/b")

	// the duplicate is popped but not returned, and it uses up one slot
	batch := f.Drain(3)
	assert.Equal(t, []string{"http://example.com/", "http://example.com/a"}, batch)
	assert.Equal(t, 1, f.Len())

	batch = f.Drain(3)
	assert.Equal(t, []string{"http://example.com/b"}, batch)
	assert.Equal(t, 3, f.VisitedCount())
}

func TestDrainNeverExceedsBudget(t *testing.T) {
	f := New("http://example.com/", 3)
	f.Push("http://example.com/a")
	f.Push("http://example.com/b")

	assert.Len(t, f.Drain(2), 2)
	f.Push("http://example.com/c")
	f.Push("http://example.com/d")

	assert.Equal(t, []string{"http://example.com/b"}, f.Drain(5))
	assert.Equal(t, 3, f.VisitedCount())
	assert.False(t, f.Pending())
	assert.Empty(t, f.Drain(5))
	assert.Equal(t, 3, f.VisitedCount())
}

func TestConcurrentPushAndDrain(t *testing.T) {
	const budget = 200
	f := New("http://example.com/0", budget)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				f.Push(fmt.Sprintf("http://example.com/%d", (w*37+i)%150))
			}
		}()
	}

	seen := make(map[string]int)
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	drain := func() {
		for _, u := range f.Drain(7) {
			seen[u]++
		}
	}
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			drain()
		}
	}
	for f.Pending() {
		drain()
	}

	require.LessOrEqual(t, f.VisitedCount(), budget)
	assert.Equal(t, len(seen), f.VisitedCount())
	for u, n := range seen {
		assert.Equal(t, 1, n, u)
	}
}
