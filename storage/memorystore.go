package storage

import (
	"context"
	"sync"

	"mydaytasks/model"
)

// MemoryStore keeps the last saved list in process memory.
type MemoryStore struct {
	mu    sync.Mutex
	tasks []model.Task
	saves int
}

func NewMemoryStore(tasks ...model.Task) *MemoryStore {
	return &MemoryStore{tasks: tasks}
}

func (s *MemoryStore) Load(ctx context.Context) ([]model.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out, nil
}

func (s *MemoryStore) Save(ctx context.Context, tasks []model.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make([]model.Task, len(tasks))
	copy(s.tasks, tasks)
	s.saves++
	return nil
}

// Saves returns how many times Save has been called.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *MemoryStore) Close() error { return nil }
