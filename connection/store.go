package connection

import (
	"context"
	"fmt"

	"mydaytasks/config"
	"mydaytasks/storage"
)

// OpenStore builds the task backend selected by cfg.Storage.
func OpenStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.TasksFile), nil
	case "firestore":
		client, err := FBConnection(ctx, cfg.FirebaseCredentials)
		if err != nil {
			return nil, err
		}
		return storage.NewFirestoreStore(client, cfg.FirestoreDoc), nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage)
}
