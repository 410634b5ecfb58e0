// SPDX-License-Identifier: MIT

// Package pqueue provides an indexed binary min-heap over vertex ranks.
//
// The queue does not store keys of its own: it orders ranks by a cost slice
// shared with the caller (normally mapgraph.State.Cost). DecreaseKey writes the
// new cost into that slice and restores heap order through a rank→position
// index, so no scan is needed.
//
// Ties on cost are broken by the lower rank, which makes DeleteMin fully
// deterministic. Both DeleteMin and DecreaseKey are O(log n).
package pqueue

import (
	"container/heap"
	"errors"
	"fmt"
)

var (
	// ErrEmptyQueue indicates DeleteMin on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrNotQueued indicates DecreaseKey on a rank that is not in the queue.
	ErrNotQueued = errors.New("pqueue: rank is not queued")

	// ErrKeyIncrease indicates DecreaseKey with a cost above the current one.
	ErrKeyIncrease = errors.New("pqueue: new cost exceeds current cost")

	// ErrRankOutOfRange indicates a rank outside [0..len(cost)-1].
	ErrRankOutOfRange = errors.New("pqueue: rank out of range")

	// ErrDuplicateRank indicates the same rank twice in the initial order.
	ErrDuplicateRank = errors.New("pqueue: duplicate rank")
)

// notQueued marks a rank absent from the heap in the position index.
const notQueued = -1

// Queue is a min-priority queue of ranks keyed by a shared cost slice.
// It is not safe for concurrent use.
type Queue struct {
	h rankHeap
}

// New builds a queue holding the ranks in order, keyed by cost.
// Every rank must lie in [0..len(cost)-1] and appear once.
//
// Complexity: O(len(order)) (bottom-up heapify).
func New(order []int, cost []float64) (*Queue, error) {
	pos := make([]int, len(cost))
	for i := range pos {
		pos[i] = notQueued
	}
	items := make([]int, len(order))
	for i, r := range order {
		if r < 0 || r >= len(cost) {
			return nil, fmt.Errorf("New: rank %d: %w", r, ErrRankOutOfRange)
		}
		if pos[r] != notQueued {
			return nil, fmt.Errorf("New: rank %d: %w", r, ErrDuplicateRank)
		}
		items[i] = r
		pos[r] = i
	}

	q := &Queue{h: rankHeap{items: items, pos: pos, cost: cost}}
	heap.Init(&q.h)

	return q, nil
}

// IsEmpty reports whether the queue holds no ranks.
func (q *Queue) IsEmpty() bool { return len(q.h.items) == 0 }

// Len returns the number of queued ranks.
func (q *Queue) Len() int { return len(q.h.items) }

// Contains reports whether r is still queued.
func (q *Queue) Contains(r int) bool {
	return r >= 0 && r < len(q.h.pos) && q.h.pos[r] != notQueued
}

// DeleteMin removes and returns the rank with the smallest cost (lowest rank
// on ties). It returns ErrEmptyQueue when nothing is queued.
//
// Complexity: O(log n).
func (q *Queue) DeleteMin() (int, error) {
	if q.IsEmpty() {
		return 0, ErrEmptyQueue
	}

	return heap.Pop(&q.h).(int), nil
}

// DecreaseKey lowers the cost of queued rank r to newCost and restores heap
// order. A newCost above the current cost is rejected with ErrKeyIncrease and
// leaves the cost untouched; equal costs are accepted.
//
// Complexity: O(log n).
func (q *Queue) DecreaseKey(r int, newCost float64) error {
	if !q.Contains(r) {
		return fmt.Errorf("DecreaseKey(%d): %w", r, ErrNotQueued)
	}
	if !(newCost <= q.h.cost[r]) {
		return fmt.Errorf("DecreaseKey(%d, %v) over %v: %w", r, newCost, q.h.cost[r], ErrKeyIncrease)
	}
	q.h.cost[r] = newCost
	heap.Fix(&q.h, q.h.pos[r])

	return nil
}

// rankHeap implements heap.Interface over ranks, tracking each rank's slot.
type rankHeap struct {
	items []int     // heap-ordered ranks
	pos   []int     // rank → index into items, notQueued when absent
	cost  []float64 // shared keys, indexed by rank
}

func (h rankHeap) Len() int { return len(h.items) }

// Less orders by cost, then by rank.
func (h rankHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if h.cost[a] != h.cost[b] {
		return h.cost[a] < h.cost[b]
	}

	return a < b
}

func (h rankHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i]] = i
	h.pos[h.items[j]] = j
}

func (h *rankHeap) Push(x interface{}) {
	r := x.(int)
	h.pos[r] = len(h.items)
	h.items = append(h.items, r)
}

func (h *rankHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	r := old[n-1]
	h.items = old[:n-1]
	h.pos[r] = notQueued

	return r
}
