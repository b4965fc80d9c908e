package memory

import (
	"context"

	"infernocorp/internal/domain/game"
)

type JournalRepo struct {
	store *Store
}

func NewJournalRepo(store *Store) JournalRepo {
	return JournalRepo{store: store}
}

func (r JournalRepo) Append(ctx context.Context, slot string, events []game.Event) error {
	r.store.write(ctx, func() {
		r.store.journal[slot] = append(r.store.journal[slot], events...)
	})
	return nil
}

func (r JournalRepo) ListBySlot(ctx context.Context, slot string, limit int) ([]game.Event, error) {
	var out []game.Event
	r.store.read(ctx, func() {
		all := r.store.journal[slot]
		n := len(all)
		if limit > 0 && limit < n {
			n = limit
		}
		out = make([]game.Event, 0, n)
		for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, all[i])
		}
	})
	return out, nil
}
