package datastructure

import "mydaytasks/model"

type taskNode struct {
	task model.Task
	next *taskNode
}

// TaskList is a singly linked list of tasks with an id index for O(1)
// lookup. It answers "which task comes after this one" and nothing more.
type TaskList struct {
	head  *taskNode
	tail  *taskNode
	index map[string]*taskNode
	size  int
}

func NewTaskList() *TaskList {
	return &TaskList{index: make(map[string]*taskNode)}
}

func (l *TaskList) Len() int { return l.size }

func (l *TaskList) IsEmpty() bool { return l.size == 0 }

// Append adds the task at the tail.
func (l *TaskList) Append(t model.Task) {
	n := &taskNode{task: t}
	l.index[t.ID] = n
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertAfter links t directly after the task with the given id.
// It reports false when that id is not in the list.
func (l *TaskList) InsertAfter(id string, t model.Task) bool {
	prev, ok := l.index[id]
	if !ok {
		return false
	}
	n := &taskNode{task: t, next: prev.next}
	prev.next = n
	l.index[t.ID] = n
	if prev == l.tail {
		l.tail = n
	}
	l.size++
	return true
}

// Remove unlinks the task with the given id.
func (l *TaskList) Remove(id string) bool {
	if _, ok := l.index[id]; !ok || l.head == nil {
		return false
	}

	if l.head.task.ID == id {
		l.head = l.head.next
		if l.head == nil {
			l.tail = nil
		}
		delete(l.index, id)
		l.size--
		return true
	}

	cur := l.head
	for cur.next != nil && cur.next.task.ID != id {
		cur = cur.next
	}
	if cur.next == nil {
		return false
	}
	if cur.next == l.tail {
		l.tail = cur
	}
	cur.next = cur.next.next
	delete(l.index, id)
	l.size--
	return true
}

func (l *TaskList) Get(id string) (model.Task, bool) {
	n, ok := l.index[id]
	if !ok {
		return model.Task{}, false
	}
	return n.task, true
}

func (l *TaskList) Update(id string, patch model.TaskPatch) bool {
	n, ok := l.index[id]
	if !ok {
		return false
	}
	n.task = patch.Apply(n.task)
	return true
}

// Next returns the task linked after id. It reports false when id is
// unknown or is the tail.
func (l *TaskList) Next(id string) (model.Task, bool) {
	n, ok := l.index[id]
	if !ok || n.next == nil {
		return model.Task{}, false
	}
	return n.next.task, true
}

// Tasks returns the tasks in list order.
func (l *TaskList) Tasks() []model.Task {
	out := make([]model.Task, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.task)
	}
	return out
}
