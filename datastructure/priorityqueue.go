// Package datastructure holds the in-memory structures used to order,
// sequence and filter tasks.
package datastructure

import "mydaytasks/model"

// PriorityQueue is an array-backed binary min-heap keyed on the negated
// priority rank, so the most important task sits at the root.
// It is not safe for concurrent use.
type PriorityQueue struct {
	heap []model.Task
}

func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{}
}

func (q *PriorityQueue) Len() int { return len(q.heap) }

func (q *PriorityQueue) IsEmpty() bool { return len(q.heap) == 0 }

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }

func key(t model.Task) int { return -t.Priority.Rank() }

func (q *PriorityQueue) swap(i, j int) {
	q.heap[i], q.heap[j] = q.heap[j], q.heap[i]
}

func (q *PriorityQueue) siftUp(i int) {
	for i > 0 && key(q.heap[i]) < key(q.heap[parent(i)]) {
		q.swap(i, parent(i))
		i = parent(i)
	}
}

func (q *PriorityQueue) siftDown(i int) {
	n := len(q.heap)
	for {
		smallest := i
		if l := left(i); l < n && key(q.heap[l]) < key(q.heap[smallest]) {
			smallest = l
		}
		if r := right(i); r < n && key(q.heap[r]) < key(q.heap[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		q.swap(i, smallest)
		i = smallest
	}
}

// Enqueue appends the task and sifts it up.
func (q *PriorityQueue) Enqueue(t model.Task) {
	q.heap = append(q.heap, t)
	q.siftUp(len(q.heap) - 1)
}

// Dequeue removes and returns the highest-priority task.
func (q *PriorityQueue) Dequeue() (model.Task, bool) {
	if q.IsEmpty() {
		return model.Task{}, false
	}
	root := q.heap[0]
	last := len(q.heap) - 1
	q.heap[0] = q.heap[last]
	q.heap = q.heap[:last]
	if len(q.heap) > 0 {
		q.siftDown(0)
	}
	return root, true
}

func (q *PriorityQueue) Peek() (model.Task, bool) {
	if q.IsEmpty() {
		return model.Task{}, false
	}
	return q.heap[0], true
}

func (q *PriorityQueue) indexOf(id string) int {
	for i := range q.heap {
		if q.heap[i].ID == id {
			return i
		}
	}
	return -1
}

// Update patches the task in place and rebuilds the heap order from the
// root. A priority change can move the entry anywhere, so the whole heap
// is re-sifted rather than only the touched path.
func (q *PriorityQueue) Update(id string, patch model.TaskPatch) bool {
	i := q.indexOf(id)
	if i == -1 {
		return false
	}
	q.heap[i] = patch.Apply(q.heap[i])
	for j := len(q.heap)/2 - 1; j >= 0; j-- {
		q.siftDown(j)
	}
	return true
}

// Remove deletes the task with the given id by moving the last leaf into
// its slot and restoring heap order from there.
func (q *PriorityQueue) Remove(id string) bool {
	i := q.indexOf(id)
	if i == -1 {
		return false
	}
	last := len(q.heap) - 1
	q.heap[i] = q.heap[last]
	q.heap = q.heap[:last]
	if i < len(q.heap) {
		q.siftDown(i)
		q.siftUp(i)
	}
	return true
}

// Tasks returns every queued task in priority order. The queue itself is
// left untouched.
func (q *PriorityQueue) Tasks() []model.Task {
	tmp := &PriorityQueue{heap: make([]model.Task, len(q.heap))}
	copy(tmp.heap, q.heap)

	out := make([]model.Task, 0, len(q.heap))
	for {
		t, ok := tmp.Dequeue()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}
