package ports

import (
	"context"
	"time"

	"infernocorp/internal/domain/game"
)

// SaveRecord is one serialized game stored under a fixed key.
type SaveRecord struct {
	Key       string
	Blob      []byte
	Day       int
	UpdatedAt time.Time
}

type SaveRepository interface {
	// Get returns ErrNotFound when nothing is saved under key.
	Get(ctx context.Context, key string) (SaveRecord, error)
	Put(ctx context.Context, record SaveRecord) error
	Delete(ctx context.Context, key string) error
}

type JournalRepository interface {
	Append(ctx context.Context, slot string, events []game.Event) error
	// ListBySlot returns the newest events first.
	ListBySlot(ctx context.Context, slot string, limit int) ([]game.Event, error)
}
