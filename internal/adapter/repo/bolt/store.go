// Package bolt persists saves and the journal in a single bbolt file.
package bolt

import (
	"context"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"go.etcd.io/bbolt"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

const (
	savesBucket   = "saves"
	saveInfo      = "save_info"
	journalPrefix = "journal/"
)

// Store implements the save, journal and transaction ports.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

type txKey struct{}

// RunInTx runs fn inside one read-write bbolt transaction; repository calls
// made with the returned context join it.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok {
		return fn(ctx)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (s *Store) update(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if tx, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok {
		return fn(tx)
	}
	return s.db.Update(fn)
}

func (s *Store) view(ctx context.Context, fn func(tx *bbolt.Tx) error) error {
	if tx, ok := ctx.Value(txKey{}).(*bbolt.Tx); ok {
		return fn(tx)
	}
	return s.db.View(fn)
}

type info struct {
	Day       int       `json:"day"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) Get(ctx context.Context, key string) (ports.SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return ports.SaveRecord{}, err
	}
	rec := ports.SaveRecord{Key: key}
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		blob := tx.Bucket([]byte(savesBucket)).Get([]byte(key))
		if blob == nil {
			return ports.ErrNotFound
		}
		rec.Blob = append([]byte(nil), blob...)
		if raw := tx.Bucket([]byte(saveInfo)).Get([]byte(key)); raw != nil {
			var meta info
			if err := sonic.ConfigStd.Unmarshal(raw, &meta); err != nil {
				return fmt.Errorf("unmarshal save info: %w", err)
			}
			rec.Day, rec.UpdatedAt = meta.Day, meta.UpdatedAt
		}
		return nil
	})
	if err != nil {
		return ports.SaveRecord{}, err
	}
	return rec, nil
}

func (s *Store) Put(ctx context.Context, rec ports.SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(rec.Key) == "" {
		return fmt.Errorf("save key is required")
	}
	meta, err := sonic.ConfigStd.Marshal(info{Day: rec.Day, UpdatedAt: rec.UpdatedAt})
	if err != nil {
		return fmt.Errorf("marshal save info: %w", err)
	}
	return s.update(ctx, func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(savesBucket)).Put([]byte(rec.Key), rec.Blob); err != nil {
			return err
		}
		return tx.Bucket([]byte(saveInfo)).Put([]byte(rec.Key), meta)
	})
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.update(ctx, func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(savesBucket)).Delete([]byte(key)); err != nil {
			return err
		}
		return tx.Bucket([]byte(saveInfo)).Delete([]byte(key))
	})
}

func (s *Store) Append(ctx context.Context, slot string, events []game.Event) error {
	if len(events) == 0 {
		return nil
	}
	return s.update(ctx, func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(journalBucket(slot))
		if err != nil {
			return fmt.Errorf("create journal bucket: %w", err)
		}
		for _, e := range events {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			payload, err := sonic.ConfigStd.Marshal(e)
			if err != nil {
				return fmt.Errorf("marshal event: %w", err)
			}
			if err := bucket.Put(seqKey(seq), payload); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) ListBySlot(ctx context.Context, slot string, limit int) ([]game.Event, error) {
	out := []game.Event{}
	err := s.view(ctx, func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(journalBucket(slot))
		if bucket == nil {
			return nil
		}
		c := bucket.Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(out) >= limit {
				break
			}
			var e game.Event
			if err := sonic.ConfigStd.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("unmarshal event: %w", err)
			}
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range []string{savesBucket, saveInfo} {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

func journalBucket(slot string) []byte {
	return []byte(journalPrefix + slot)
}

func seqKey(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}
