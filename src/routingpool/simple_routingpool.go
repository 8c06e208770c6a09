// 固定大小的协程池
// worker在Start时一次性创建，通过channel接收任务（task），直到Stop
// 调用方自行等待一批任务完成（例如WaitGroup），池本身不关心batch
// NOTE: 注意当前实现没有处理worker崩溃、需要重启等问题
package routingpool

import (
	"context"
	"errors"
	"sync"
)

var ErrStopped = errors.New("routing pool stopped")

type Task func(context.Context)

type SimpleRoutingPool struct {
	wg sync.WaitGroup

	ctx   context.Context
	size  int
	tasks chan Task

	mu      sync.Mutex
	stopped bool
}

func NewSimpleRoutingPool(ctx context.Context, size int) RoutingPool {
	if size < 1 {
		size = 1
	}
	return &SimpleRoutingPool{
		ctx:   ctx,
		size:  size,
		tasks: make(chan Task),
	}
}

func (s *SimpleRoutingPool) Start() error {
	for i := 0; i != s.size; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for task := range s.tasks {
				task(s.ctx)
			}
		}()
	}
	return nil
}

// Submit blocks until a worker picks the task up.
func (s *SimpleRoutingPool) Submit(task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return ErrStopped
	}
	s.tasks <- task
	return nil
}

func (s *SimpleRoutingPool) Size() int {
	return s.size
}

// Stop lets queued tasks finish and waits for every worker to exit.
func (s *SimpleRoutingPool) Stop() {
	s.mu.Lock()
	if !s.stopped {
		s.stopped = true
		close(s.tasks)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
