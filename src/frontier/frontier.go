// Frontier是爬取过程中唯一的共享可变状态：FIFO待爬队列 + visited集合
// worker在batch执行期间并发Push，orchestrator在batch之间Drain，均由同一把锁保护
package frontier

import (
	"sync"
)

type Frontier struct {
	mu      sync.Mutex
	queue   []string
	visited map[string]struct{}
	budget  int
}

// New seeds the queue with start. budget bounds both the queue length at
// push time and the number of URLs Drain will ever mark visited.
func New(start string, budget int) *Frontier {
	return &Frontier{
		queue:   []string{start},
		visited: make(map[string]struct{}),
		budget:  budget,
	}
}

// Push appends u unless it was already dispatched or the queue has reached
// the budget in length. The length gate is advisory; the visited count is
// what caps total fetches. Duplicates already waiting in the queue are
// allowed and are skipped by Drain.
func (f *Frontier) Push(u string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[u]; ok {
		return false
	}
	if len(f.queue) >= f.budget {
		return false
	}
	f.queue = append(f.queue, u)
	return true
}

// Drain pops up to n entries from the head of the queue and returns the ones
// not yet visited, marking each visited before it is returned. Popped entries
// that were already visited count against n. Drain never lets the visited
// count exceed the budget.
func (f *Frontier) Drain(n int) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	if remaining := f.budget - len(f.visited); n > remaining {
		n = remaining
	}
	if n > len(f.queue) {
		n = len(f.queue)
	}

	var batch []string
	for i := 0; i < n; i++ {
		u := f.queue[0]
		f.queue = f.queue[1:]
		if _, ok := f.visited[u]; ok {
			continue
		}
		f.visited[u] = struct{}{}
		batch = append(batch, u)
	}
	return batch
}

// Pending reports whether another batch may be drained: the queue is not
// empty and fewer than budget URLs have been visited.
func (f *Frontier) Pending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue) > 0 && len(f.visited) < f.budget
}

func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}

func (f *Frontier) Visited(u string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.visited[u]
	return ok
}
