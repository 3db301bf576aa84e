package aoc

import "container/heap"

// Stack is a LIFO of T. The zero value is empty and ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes the top of the stack. It reports false when the stack is
// empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

// While pops until the stack is empty or f returns false. f may push.
func (s *Stack[T]) While(f func(T) bool) {
	for v, ok := s.Pop(); ok && f(v); v, ok = s.Pop() {
	}
}

// Queue is a FIFO of T.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue holding in, first element at the head.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{items: in}
}

func (q *Queue[T]) Len() int { return len(q.items) - q.head }

func (q *Queue[T]) Push(v T) {
	if q.head > 0 && q.head == len(q.items) {
		q.items, q.head = q.items[:0], 0
	}
	q.items = append(q.items, v)
}

// Pop removes the head of the queue. It reports false when the queue is
// empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.Len() == 0 {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	return v, true
}

// MustPop pops the head of the queue and panics if it is empty.
func (q *Queue[T]) MustPop() T {
	v, ok := q.Pop()
	if !ok {
		panic("pop from empty queue")
	}
	return v
}

// While pops until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	for v, ok := q.Pop(); ok && f(v); v, ok = q.Pop() {
	}
}

// PQI is an item in a PQ with value V and priority P.
type PQI[T any] struct {
	V T
	P int

	ix int // position in the heap, -1 once popped
}

// Queued reports whether i is still waiting in its queue.
func (i *PQI[T]) Queued() bool { return i.ix >= 0 }

// PQ is a min-priority queue. Items are pointers so that a caller holding
// one can lower its priority in place with Update.
type PQ[T any] struct {
	h itemHeap[T]
}

// MinQueue returns an empty PQ that pops the lowest priority first.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

func (pq *PQ[T]) Len() int { return len(pq.h) }

func (pq *PQ[T]) Push(it *PQI[T]) { heap.Push(&pq.h, it) }

// Pop removes the lowest priority item. It panics if pq is empty.
func (pq *PQ[T]) Pop() *PQI[T] { return heap.Pop(&pq.h).(*PQI[T]) }

// Peek returns the lowest priority item without removing it. It panics if
// pq is empty.
func (pq *PQ[T]) Peek() *PQI[T] { return pq.h[0] }

// Update restores heap order after it.P changed. it must still be queued.
func (pq *PQ[T]) Update(it *PQI[T]) {
	if !it.Queued() {
		panic("update of popped item")
	}
	heap.Fix(&pq.h, it.ix)
}

type itemHeap[T any] []*PQI[T]

func (h itemHeap[T]) Len() int           { return len(h) }
func (h itemHeap[T]) Less(i, j int) bool { return h[i].P < h[j].P }

func (h itemHeap[T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].ix, h[j].ix = i, j
}

func (h *itemHeap[T]) Push(x any) {
	it := x.(*PQI[T])
	it.ix = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[T]) Pop() any {
	old := *h
	it := old[len(old)-1]
	old[len(old)-1] = nil
	it.ix = -1
	*h = old[:len(old)-1]
	return it
}
