package priority_queue

import "sync"

// SyncPriorityQueue guards a PriorityQueue with a mutex so several goroutines
// can push and pop. Pop reports an empty queue instead of panicking, since
// another goroutine may drain it between a size check and the pop.
type SyncPriorityQueue[T any] struct {
	queue *PriorityQueue[T]
	mutex sync.Mutex
}

// NewSyncMaxPriorityQueue creates a thread-safe max heap
func NewSyncMaxPriorityQueue[T any](opts ...Option) *SyncPriorityQueue[T] {
	return &SyncPriorityQueue[T]{
		queue: NewMaxPriorityQueue[T](opts...),
	}
}

// Push adds an item and returns the queue size afterwards
func (s *SyncPriorityQueue[T]) Push(item T, priority int) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.queue.Insert(item, priority)
	return s.queue.Len()
}

// Pop removes and returns the item with the highest priority
func (s *SyncPriorityQueue[T]) Pop() (T, int, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.queue.TryExtractMax()
}

// Size returns the number of items in the queue
func (s *SyncPriorityQueue[T]) Size() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.queue.Len()
}

// GetSnapshot returns a copy of the queued items in heap storage order
func (s *SyncPriorityQueue[T]) GetSnapshot() []T {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.queue.GetSnapshot()
}
