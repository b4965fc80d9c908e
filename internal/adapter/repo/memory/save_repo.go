package memory

import (
	"context"

	"infernocorp/internal/app/ports"
)

type SaveRepo struct {
	store *Store
}

func NewSaveRepo(store *Store) SaveRepo {
	return SaveRepo{store: store}
}

func (r SaveRepo) Get(ctx context.Context, key string) (ports.SaveRecord, error) {
	var (
		rec ports.SaveRecord
		ok  bool
	)
	r.store.read(ctx, func() {
		rec, ok = r.store.saves[key]
	})
	if !ok {
		return ports.SaveRecord{}, ports.ErrNotFound
	}
	rec.Blob = append([]byte(nil), rec.Blob...)
	return rec, nil
}

func (r SaveRepo) Put(ctx context.Context, rec ports.SaveRecord) error {
	rec.Blob = append([]byte(nil), rec.Blob...)
	r.store.write(ctx, func() {
		r.store.saves[rec.Key] = rec
	})
	return nil
}

func (r SaveRepo) Delete(ctx context.Context, key string) error {
	r.store.write(ctx, func() {
		delete(r.store.saves, key)
	})
	return nil
}
