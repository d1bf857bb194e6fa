package priority_queue

// heapElement pairs a caller-owned payload with its priority. Once inserted
// its content never changes; sift operations only move it between slots.
type heapElement[T any] struct {
	payload  T
	priority int
}

// The heap is a complete binary tree laid out breadth-first in storage:
// the children of i live at 2i+1 and 2i+2, its parent at (i-1)/2.

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func (pq *PriorityQueue[T]) priorityAt(i int) int {
	return pq.storage.Get(i).priority
}

func (pq *PriorityQueue[T]) swap(i, j int) {
	tmp := pq.storage.Get(i)
	pq.storage.Set(i, pq.storage.Get(j))
	pq.storage.Set(j, tmp)
}

// siftUp moves the element at index towards the root while it is strictly
// greater than its parent. Equal priorities stop the walk.
func (pq *PriorityQueue[T]) siftUp(index int) {
	for index != 0 {
		p := parent(index)
		if pq.priorityAt(index) <= pq.priorityAt(p) {
			return
		}
		pq.swap(index, p)
		index = p
	}
}

// siftDown moves the element at index towards the leaves, swapping with the
// larger child until neither child outranks it. When both children carry the
// same priority the right one is taken.
func (pq *PriorityQueue[T]) siftDown(index int) {
	n := pq.storage.Len()
	for left(index) < n {
		l := left(index)
		r := right(index)
		if r >= n {
			r = l // single child
		}

		current := pq.priorityAt(index)
		lp, rp := pq.priorityAt(l), pq.priorityAt(r)
		if current >= lp && current >= rp {
			return
		}

		child := r
		if lp > rp {
			child = l
		}
		pq.swap(index, child)
		index = child
	}
}
