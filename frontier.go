package search

import "container/heap"

// entry is a frontier record. parent and cost travel with the state so
// strategies that settle on pop can record the node when it is popped.
type entry[S comparable] struct {
	state     S
	parent    S
	hasParent bool
	cost      float64
	priority  float64
	sequence  int
}

// frontier is the ordering policy; it is the only thing that differs between strategies.
type frontier[S comparable] interface {
	push(item *entry[S])
	pop() *entry[S]
	len() int
}

func newFrontier[S comparable](strategy Strategy) frontier[S] {
	switch strategy {
	case BreadthFirst:
		return &fifo[S]{}
	case DepthFirst:
		return &lifo[S]{}
	default:
		return &heapFrontier[S]{}
	}
}

// fifo pops the oldest entry.
type fifo[S comparable] struct {
	items []*entry[S]
	head  int
}

func (q *fifo[S]) push(item *entry[S]) { q.items = append(q.items, item) }

func (q *fifo[S]) pop() *entry[S] {
	item := q.items[q.head]
	q.items[q.head] = nil
	q.head++
	// compact once the consumed prefix dominates
	if q.head > 64 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item
}

func (q *fifo[S]) len() int { return len(q.items) - q.head }

// lifo pops the newest entry.
type lifo[S comparable] struct {
	items []*entry[S]
}

func (s *lifo[S]) push(item *entry[S]) { s.items = append(s.items, item) }

func (s *lifo[S]) pop() *entry[S] {
	n := len(s.items)
	item := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	return item
}

func (s *lifo[S]) len() int { return len(s.items) }

// heapFrontier pops the entry with the lowest priority.
type heapFrontier[S comparable] struct {
	queue priorityQueue[S]
}

func (h *heapFrontier[S]) push(item *entry[S]) { heap.Push(&h.queue, item) }
func (h *heapFrontier[S]) pop() *entry[S]      { return heap.Pop(&h.queue).(*entry[S]) }
func (h *heapFrontier[S]) len() int            { return h.queue.Len() }
