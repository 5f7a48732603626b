package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"mydaytasks/datastructure"
	"mydaytasks/model"
	"mydaytasks/storage"
)

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidNext     = errors.New("next must reference an existing task")
)

// TaskInput carries the caller-supplied fields of a new task.
type TaskInput struct {
	Title       string
	Description string
	Completed   bool
	Priority    model.Priority
	Category    model.Category
	DueDate     *time.Time
}

// ViewOptions narrows and orders the task view. Zero values mean no filter
// and priority order.
type ViewOptions struct {
	Query    string
	Category model.Category
	Priority model.Priority
	Sort     model.SortOption
}

// TaskState owns the canonical task list. The priority queue and the
// sequence list are projections of it and are only touched here.
//
// Slice order is the sequence order, so the list can always be rebuilt
// from the slice alone.
type TaskState struct {
	mu    sync.RWMutex
	store storage.Store
	tasks []model.Task
	queue *datastructure.PriorityQueue
	list  *datastructure.TaskList

	now   func() time.Time
	newID func() string
}

type Option func(*TaskState)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *TaskState) { s.now = now }
}

// WithIDGenerator overrides uuid task ids.
func WithIDGenerator(newID func() string) Option {
	return func(s *TaskState) { s.newID = newID }
}

func NewTaskState(store storage.Store, opts ...Option) *TaskState {
	s := &TaskState{
		store: store,
		queue: datastructure.NewPriorityQueue(),
		list:  datastructure.NewTaskList(),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory list with the stored one. A storage failure
// is logged and leaves the list empty.
func (s *TaskState) Load(ctx context.Context) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("Warning: failed to load tasks, starting empty: %v\n", err)
		tasks = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
	s.rebuild()
}

func (s *TaskState) rebuild() {
	s.queue = datastructure.NewPriorityQueue()
	s.list = datastructure.NewTaskList()
	for _, t := range s.tasks {
		s.queue.Enqueue(t)
		s.list.Append(t)
	}
}

func (s *TaskState) persist(ctx context.Context) {
	snapshot := make([]model.Task, len(s.tasks))
	copy(snapshot, s.tasks)
	if err := s.store.Save(ctx, snapshot); err != nil {
		log.Printf("Warning: failed to save tasks: %v\n", err)
	}
}

func (s *TaskState) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *TaskState) newTask(in TaskInput) (model.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Task{}, ErrTitleRequired
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return model.Task{}, fmt.Errorf("%w: %q", ErrInvalidPriority, in.Priority)
	}
	if in.Category == "" {
		in.Category = model.CategoryPersonal
	}
	if !in.Category.Valid() {
		return model.Task{}, fmt.Errorf("%w: %q", ErrInvalidCategory, in.Category)
	}

	return model.Task{
		ID:          s.newID(),
		Title:       title,
		Description: in.Description,
		Completed:   in.Completed,
		Priority:    in.Priority,
		Category:    in.Category,
		CreatedAt:   s.now(),
		DueDate:     in.DueDate,
	}, nil
}

// Add appends a new task to the end of the sequence.
func (s *TaskState) Add(ctx context.Context, in TaskInput) (model.Task, error) {
	t, err := s.newTask(in)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendTask(t)
	s.persist(ctx)
	return t, nil
}

// AddAfter inserts a new task directly after afterID in the sequence and
// points afterID's Next at it.
func (s *TaskState) AddAfter(ctx context.Context, afterID string, in TaskInput) (model.Task, error) {
	t, err := s.newTask(in)
	if err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.insertAfter(afterID, t) {
		return model.Task{}, ErrTaskNotFound
	}
	s.persist(ctx)
	return t, nil
}

// AddMany adds all inputs or none of them. With an empty afterID they are
// appended; otherwise they are chained in order behind afterID.
func (s *TaskState) AddMany(ctx context.Context, afterID string, inputs []TaskInput) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(inputs))
	for _, in := range inputs {
		t, err := s.newTask(in)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if afterID != "" && s.indexOf(afterID) == -1 {
		return nil, ErrTaskNotFound
	}

	for _, t := range tasks {
		if afterID == "" {
			s.appendTask(t)
			continue
		}
		s.insertAfter(afterID, t)
		afterID = t.ID
	}
	// pick up the Next links set by later inserts
	for i := range tasks {
		tasks[i], _ = s.list.Get(tasks[i].ID)
	}
	s.persist(ctx)
	return tasks, nil
}

func (s *TaskState) appendTask(t model.Task) {
	s.tasks = append(s.tasks, t)
	s.queue.Enqueue(t)
	s.list.Append(t)
}

// insertAfter reports false when afterID is unknown. Callers hold s.mu.
func (s *TaskState) insertAfter(afterID string, t model.Task) bool {
	i := s.indexOf(afterID)
	if i == -1 {
		return false
	}

	t.Next = s.tasks[i].Next
	next := t.ID
	link := model.TaskPatch{Next: &next}
	s.tasks[i] = link.Apply(s.tasks[i])
	s.queue.Update(afterID, link)
	s.list.Update(afterID, link)

	s.tasks = append(s.tasks, model.Task{})
	copy(s.tasks[i+2:], s.tasks[i+1:])
	s.tasks[i+1] = t
	s.queue.Enqueue(t)
	s.list.InsertAfter(afterID, t)
	return true
}

func (s *TaskState) validatePatch(id string, p model.TaskPatch) error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return ErrTitleRequired
	}
	if p.Priority != nil && !p.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, *p.Priority)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, *p.Category)
	}
	if p.Next != nil && *p.Next != "" && (*p.Next == id || s.indexOf(*p.Next) == -1) {
		return ErrInvalidNext
	}
	return nil
}

// Update merges the patch into the task and both projections.
func (s *TaskState) Update(ctx context.Context, id string, patch model.TaskPatch) (model.Task, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i == -1 {
		return model.Task{}, ErrTaskNotFound
	}
	if err := s.validatePatch(id, patch); err != nil {
		return model.Task{}, err
	}

	s.tasks[i] = patch.Apply(s.tasks[i])
	s.queue.Update(id, patch)
	s.list.Update(id, patch)
	s.persist(ctx)
	return s.tasks[i], nil
}

func (s *TaskState) Complete(ctx context.Context, id string) (model.Task, error) {
	done := true
	return s.Update(ctx, id, model.TaskPatch{Completed: &done})
}

// Delete removes the task everywhere and clears any Next reference that
// pointed at it.
func (s *TaskState) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(id)
	if i == -1 {
		return ErrTaskNotFound
	}

	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.queue.Remove(id)
	s.list.Remove(id)

	empty := ""
	unlink := model.TaskPatch{Next: &empty}
	for j := range s.tasks {
		if s.tasks[j].Next == id {
			s.tasks[j] = unlink.Apply(s.tasks[j])
			s.queue.Update(s.tasks[j].ID, unlink)
			s.list.Update(s.tasks[j].ID, unlink)
		}
	}

	s.persist(ctx)
	return nil
}

func (s *TaskState) Get(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Get(id)
}

// All returns the tasks in sequence order.
func (s *TaskState) All() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// NextTask returns the task that follows id in the sequence.
func (s *TaskState) NextTask(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list.Next(id)
}

// Top returns the highest-priority task.
func (s *TaskState) Top() (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Peek()
}

// Queue returns every task in priority order.
func (s *TaskState) Queue() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queue.Tasks()
}

// View applies category, priority and text filters, then sorts.
func (s *TaskState) View(opts ViewOptions) []model.Task {
	result := s.All()

	if opts.Category != "" {
		result = filter(result, func(t model.Task) bool { return t.Category == opts.Category })
	}
	if opts.Priority != "" {
		result = filter(result, func(t model.Task) bool { return t.Priority == opts.Priority })
	}
	if opts.Query != "" {
		result = datastructure.Search(result, opts.Query)
	}

	sortBy := opts.Sort
	if sortBy == "" {
		sortBy = model.SortByPriority
	}
	return datastructure.Sort(result, sortBy)
}

func filter(tasks []model.Task, keep func(model.Task) bool) []model.Task {
	out := make([]model.Task, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
