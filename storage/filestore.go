package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"mydaytasks/model"
)

// FileStore keeps the task list as one JSON array in a file. A sibling
// .lock file serialises access between processes.
type FileStore struct {
	path string
	flk  *flock.Flock
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path: path,
		flk:  flock.New(path + ".lock"),
	}
}

func (s *FileStore) Path() string { return s.path }

// Load returns an empty list when the file does not exist yet.
func (s *FileStore) Load(ctx context.Context) ([]model.Task, error) {
	if err := s.flk.RLock(); err != nil {
		return nil, fmt.Errorf("failed to lock %s: %w", s.path, err)
	}
	defer s.flk.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Task{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	var tasks []model.Task
	if len(data) == 0 {
		return []model.Task{}, nil
	}
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return tasks, nil
}

// Save rewrites the file through a temp file and rename.
func (s *FileStore) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("failed to lock %s: %w", s.path, err)
	}
	defer s.flk.Unlock()

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return s.flk.Close()
}
