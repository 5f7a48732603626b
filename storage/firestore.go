package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"mydaytasks/model"
)

const taskListCollection = "TaskLists"

type taskListDoc struct {
	Tasks     []model.Task `firestore:"tasks"`
	UpdatedAt time.Time    `firestore:"updatedat"`
}

// FirestoreStore keeps the task list inside a single document of the
// TaskLists collection.
type FirestoreStore struct {
	client *firestore.Client
	doc    string
}

func NewFirestoreStore(client *firestore.Client, doc string) *FirestoreStore {
	return &FirestoreStore{client: client, doc: doc}
}

func (s *FirestoreStore) ref() *firestore.DocumentRef {
	return s.client.Collection(taskListCollection).Doc(s.doc)
}

func (s *FirestoreStore) Load(ctx context.Context) ([]model.Task, error) {
	snap, err := s.ref().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("failed to get task list: %w", err)
	}

	var doc taskListDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse task list: %w", err)
	}
	if doc.Tasks == nil {
		return []model.Task{}, nil
	}
	return doc.Tasks, nil
}

func (s *FirestoreStore) Save(ctx context.Context, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	doc := taskListDoc{Tasks: tasks, UpdatedAt: time.Now()}
	if _, err := s.ref().Set(ctx, doc); err != nil {
		return fmt.Errorf("failed to save task list: %w", err)
	}
	return nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
