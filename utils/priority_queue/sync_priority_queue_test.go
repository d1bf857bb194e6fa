package priority_queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSyncPriorityQueue_PushPop(t *testing.T) {
	pq := NewSyncMaxPriorityQueue[string]()

	assert.Equal(t, 1, pq.Push("low", 1))
	assert.Equal(t, 2, pq.Push("high", 10))
	assert.Equal(t, 3, pq.Push("medium", 5))
	assert.Equal(t, 3, pq.Size())
	assert.Len(t, pq.GetSnapshot(), 3)

	for _, expected := range []string{"high", "medium", "low"} {
		item, _, ok := pq.Pop()
		require.True(t, ok)
		assert.Equal(t, expected, item)
	}

	_, _, ok := pq.Pop()
	assert.False(t, ok, "pop on an empty queue reports instead of panicking")
}

func TestSyncPriorityQueue_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const perProducer = 250

	pq := NewSyncMaxPriorityQueue[int](WithCapacity(producers * perProducer))
	g, _ := errgroup.WithContext(context.Background())

	for p := 0; p < producers; p++ {
		p := p
		g.Go(func() error {
			for i := 0; i < perProducer; i++ {
				v := p*perProducer + i
				pq.Push(v, v%97)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	require.Equal(t, producers*perProducer, pq.Size())

	seen := make(map[int]bool, producers*perProducer)
	prev := 97
	for {
		item, priority, ok := pq.Pop()
		if !ok {
			break
		}
		require.LessOrEqual(t, priority, prev)
		require.False(t, seen[item], "item %d popped twice", item)
		seen[item] = true
		prev = priority
	}
	assert.Len(t, seen, producers*perProducer)
}

func TestSyncPriorityQueue_ConcurrentConsumers(t *testing.T) {
	pq := NewSyncMaxPriorityQueue[int]()
	for i := 0; i < 1000; i++ {
		pq.Push(i, i)
	}

	counts := make([]int, 4)
	g := new(errgroup.Group)
	for c := range counts {
		c := c
		g.Go(func() error {
			for {
				if _, _, ok := pq.Pop(); !ok {
					return nil
				}
				counts[c]++
			}
		})
	}
	require.NoError(t, g.Wait())

	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, 1000, total)
	assert.Equal(t, 0, pq.Size())
}
