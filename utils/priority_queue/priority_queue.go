package priority_queue

import (
	"errors"
	"fmt"

	"github.com/FrenchMajesty/turbo-heap/utils/dynarray"
	"github.com/FrenchMajesty/turbo-heap/utils/logger"
)

var (
	// ErrInvalidQueue is the panic value for operations on a nil or freed queue.
	ErrInvalidQueue = errors.New("priority_queue: invalid queue")
	// ErrEmptyQueue is the panic value for Max, MaxPriority and ExtractMax on an empty queue.
	ErrEmptyQueue = errors.New("priority_queue: queue is empty")
)

// PriorityQueue is a binary max-heap: higher priority values come out first.
//
// Payloads are borrowed, not owned. The queue stores and hands back exactly
// the values it was given and never copies, mutates or releases what they
// point to. Free releases the queue's own storage only, so callers that need
// their payloads back must Drain (or ExtractMax) before freeing.
//
// Calling Max, MaxPriority or ExtractMax on an empty queue, or anything on a
// nil or freed queue, is a programming error and panics. Check IsEmpty first,
// or use the Try variants.
//
// A PriorityQueue is not safe for concurrent use; see SyncPriorityQueue.
type PriorityQueue[T any] struct {
	storage dynarray.Sequence[*heapElement[T]]
	logger  logger.Logger
}

// Option configures a PriorityQueue
type Option func(*config)

type config struct {
	logger   logger.Logger
	capacity int
}

// WithLogger sets where contract violations and lifecycle events are reported. Defaults to a NoopLogger.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithCapacity pre-sizes the backing array for n elements
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// NewMaxPriorityQueue creates an empty max heap
func NewMaxPriorityQueue[T any](opts ...Option) *PriorityQueue[T] {
	cfg := buildConfig(opts)
	return newWithStorage(dynarray.NewWithCapacity[*heapElement[T]](cfg.capacity), cfg)
}

// NewPriorityQueue is an alias for NewMaxPriorityQueue
func NewPriorityQueue[T any](opts ...Option) *PriorityQueue[T] {
	return NewMaxPriorityQueue[T](opts...)
}

func buildConfig(opts []Option) config {
	cfg := config{logger: logger.NewNoopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNoopLogger()
	}
	return cfg
}

func newWithStorage[T any](storage dynarray.Sequence[*heapElement[T]], cfg config) *PriorityQueue[T] {
	return &PriorityQueue[T]{
		storage: storage,
		logger:  cfg.logger,
	}
}

// IsEmpty reports whether the queue holds no elements
func (pq *PriorityQueue[T]) IsEmpty() bool {
	pq.mustBeValid("IsEmpty")
	return pq.storage.Len() == 0
}

// Len returns the number of queued elements
func (pq *PriorityQueue[T]) Len() int {
	pq.mustBeValid("Len")
	return pq.storage.Len()
}

// Insert adds payload with the given priority. O(log n).
func (pq *PriorityQueue[T]) Insert(payload T, priority int) {
	pq.mustBeValid("Insert")
	pq.storage.Append(&heapElement[T]{payload: payload, priority: priority})
	pq.siftUp(pq.storage.Len() - 1)
}

// Max returns the payload with the highest priority without removing it.
// Panics with ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue[T]) Max() T {
	return pq.root("Max").payload
}

// MaxPriority returns the highest priority in the queue.
// Panics with ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue[T]) MaxPriority() int {
	return pq.root("MaxPriority").priority
}

// ExtractMax removes and returns the payload with the highest priority.
// Ownership of the payload goes back to the caller. O(log n).
// Panics with ErrEmptyQueue if the queue is empty.
func (pq *PriorityQueue[T]) ExtractMax() T {
	return pq.extract("ExtractMax").payload
}

// TryMax is Max and MaxPriority without the panic: ok is false when the queue is empty
func (pq *PriorityQueue[T]) TryMax() (payload T, priority int, ok bool) {
	if pq.IsEmpty() {
		return payload, 0, false
	}
	el := pq.storage.Get(0)
	return el.payload, el.priority, true
}

// TryExtractMax is ExtractMax without the panic: ok is false when the queue is empty
func (pq *PriorityQueue[T]) TryExtractMax() (payload T, priority int, ok bool) {
	if pq.IsEmpty() {
		return payload, 0, false
	}
	el := pq.extract("TryExtractMax")
	return el.payload, el.priority, true
}

// Drain extracts every element in non-increasing priority order and hands
// each payload to fn. The queue is empty afterwards.
func (pq *PriorityQueue[T]) Drain(fn func(payload T, priority int)) {
	for !pq.IsEmpty() {
		el := pq.extract("Drain")
		fn(el.payload, el.priority)
	}
}

// GetSnapshot returns the payloads in heap storage order without modifying
// the queue. Only the first entry is guaranteed to be the maximum.
func (pq *PriorityQueue[T]) GetSnapshot() []T {
	pq.mustBeValid("GetSnapshot")
	items := make([]T, pq.storage.Len())
	for i := range items {
		items[i] = pq.storage.Get(i).payload
	}
	return items
}

// Free releases the backing storage and element records. Payloads still in
// the queue are not touched; they stay the caller's responsibility. The queue
// must not be used afterwards.
func (pq *PriorityQueue[T]) Free() {
	pq.mustBeValid("Free")
	if n := pq.storage.Len(); n > 0 {
		pq.logger.Printf("priority_queue: freeing with %d elements still queued, payloads are left to the caller", n)
	}
	pq.storage.Free()
	pq.storage = nil
}

// extract removes the root: the last element takes its slot and sinks back
// into place.
func (pq *PriorityQueue[T]) extract(op string) *heapElement[T] {
	root := pq.root(op)
	last := pq.storage.Len() - 1
	if last > 0 {
		pq.storage.Set(0, pq.storage.Get(last))
	}
	pq.storage.RemoveLast()
	pq.siftDown(0)
	return root
}

func (pq *PriorityQueue[T]) root(op string) *heapElement[T] {
	pq.mustBeValid(op)
	if pq.storage.Len() == 0 {
		pq.fail(fmt.Errorf("%w: %s called with no elements", ErrEmptyQueue, op))
	}
	return pq.storage.Get(0)
}

func (pq *PriorityQueue[T]) mustBeValid(op string) {
	if pq == nil {
		panic(fmt.Errorf("%w: %s called on nil queue", ErrInvalidQueue, op))
	}
	if pq.storage == nil {
		pq.fail(fmt.Errorf("%w: %s called on freed or uninitialized queue", ErrInvalidQueue, op))
	}
}

func (pq *PriorityQueue[T]) fail(err error) {
	if pq.logger != nil {
		pq.logger.Printf("%v", err)
	}
	panic(err)
}
