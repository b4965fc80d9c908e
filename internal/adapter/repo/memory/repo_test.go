package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

func TestSaveRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSaveRepo(NewStore())

	_, err := repo.Get(ctx, "slot")
	require.ErrorIs(t, err, ports.ErrNotFound)

	blob := []byte(`{"state":{}}`)
	require.NoError(t, repo.Put(ctx, ports.SaveRecord{Key: "slot", Blob: blob, Day: 3}))
	blob[0] = 'X'

	rec, err := repo.Get(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, `{"state":{}}`, string(rec.Blob))
	assert.Equal(t, 3, rec.Day)

	require.NoError(t, repo.Delete(ctx, "slot"))
	_, err = repo.Get(ctx, "slot")
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestJournalListsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewJournalRepo(NewStore())
	require.NoError(t, repo.Append(ctx, "slot", []game.Event{{Type: "a", Day: 1}, {Type: "b", Day: 2}}))
	require.NoError(t, repo.Append(ctx, "slot", []game.Event{{Type: "c", Day: 3}}))

	events, err := repo.ListBySlot(ctx, "slot", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "c", events[0].Type)
	assert.Equal(t, "b", events[1].Type)
}

func TestTxManagerHoldsLockForRepos(t *testing.T) {
	store := NewStore()
	tx := NewTxManager(store)
	saves := NewSaveRepo(store)
	journal := NewJournalRepo(store)

	err := tx.RunInTx(context.Background(), func(ctx context.Context) error {
		if err := saves.Put(ctx, ports.SaveRecord{Key: "k"}); err != nil {
			return err
		}
		return journal.Append(ctx, "k", []game.Event{{Type: "x"}})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.RunInTx(context.Background(), func(context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	_, err = saves.Get(context.Background(), "k")
	assert.NoError(t, err)
}
