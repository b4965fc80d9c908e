// Package sqlite persists saves and the journal in a local SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	_ "modernc.org/sqlite"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

type Store struct {
	db *sql.DB
}

// Open creates the file and schema if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite", cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := createSchemas(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schemas: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func createSchemas(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS save_slots (
			slot_key TEXT PRIMARY KEY,
			blob BLOB NOT NULL,
			day INTEGER NOT NULL DEFAULT 0,
			updated_at INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS journal_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			slot_key TEXT NOT NULL,
			type TEXT NOT NULL,
			day INTEGER NOT NULL,
			occurred_at INTEGER NOT NULL,
			payload TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_journal_events_slot ON journal_events(slot_key, id);`,
	}
	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

func (s *Store) q(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return s.db
}

func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

func (s *Store) Get(ctx context.Context, key string) (ports.SaveRecord, error) {
	rec := ports.SaveRecord{Key: key}
	var updated int64
	err := s.q(ctx).QueryRowContext(ctx,
		`SELECT blob, day, updated_at FROM save_slots WHERE slot_key = ?`, key,
	).Scan(&rec.Blob, &rec.Day, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.SaveRecord{}, ports.ErrNotFound
		}
		return ports.SaveRecord{}, fmt.Errorf("get save: %w", err)
	}
	rec.UpdatedAt = fromMillis(updated)
	return rec, nil
}

func (s *Store) Put(ctx context.Context, rec ports.SaveRecord) error {
	_, err := s.q(ctx).ExecContext(ctx, `
		INSERT INTO save_slots (slot_key, blob, day, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE SET blob = excluded.blob, day = excluded.day, updated_at = excluded.updated_at`,
		rec.Key, rec.Blob, rec.Day, toMillis(rec.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put save: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.q(ctx).ExecContext(ctx, `DELETE FROM save_slots WHERE slot_key = ?`, key); err != nil {
		return fmt.Errorf("delete save: %w", err)
	}
	return nil
}

func (s *Store) Append(ctx context.Context, slot string, events []game.Event) error {
	for _, e := range events {
		payload, err := sonic.ConfigStd.MarshalToString(e.Payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		_, err = s.q(ctx).ExecContext(ctx,
			`INSERT INTO journal_events (slot_key, type, day, occurred_at, payload) VALUES (?, ?, ?, ?, ?)`,
			slot, e.Type, e.Day, toMillis(e.OccurredAt), payload,
		)
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}
	}
	return nil
}

func (s *Store) ListBySlot(ctx context.Context, slot string, limit int) ([]game.Event, error) {
	query := `SELECT type, day, occurred_at, payload FROM journal_events WHERE slot_key = ? ORDER BY id DESC`
	args := []any{slot}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	out := []game.Event{}
	for rows.Next() {
		var (
			e        game.Event
			occurred int64
			payload  string
		)
		if err := rows.Scan(&e.Type, &e.Day, &occurred, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.OccurredAt = fromMillis(occurred)
		if payload != "" {
			_ = sonic.ConfigStd.UnmarshalFromString(payload, &e.Payload)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
