// Package session owns the one live game and the only path that mutates it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/platform/random"
)

type SeedSource interface {
	Next() int64
}

// Deps are the collaborators a Session calls after each commit. Any of the
// ports may be nil.
type Deps struct {
	Saves     ports.SaveRepository
	Journal   ports.JournalRepository
	TxManager ports.TxManager
	Notifier  ports.Notifier
	Metrics   ports.OperationMetrics
	Seeds     SeedSource
	Logger    *zap.Logger
	Now       func() time.Time
	Slot      string
}

// Session serializes every operation: fn runs on a clone under the lock and
// the clone replaces the live state only if fn succeeds.
type Session struct {
	catalog game.Catalog
	deps    Deps

	mu      sync.Mutex
	state   *game.State
	meta    Meta
	lastErr error
}

func New(catalog game.Catalog, deps Deps) (*Session, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Slot == "" {
		deps.Slot = SaveKey
	}
	if deps.Seeds == nil {
		seeds, err := random.NewSeeds(0)
		if err != nil {
			return nil, err
		}
		deps.Seeds = seeds
	}
	return &Session{catalog: catalog, deps: deps}, nil
}

func (s *Session) Catalog() game.Catalog {
	return s.catalog
}

// Create starts a fresh game, replacing any live one.
func (s *Session) Create(ctx context.Context) *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.create(ctx)
}

// Reset discards the live game and starts over.
func (s *Session) Reset(ctx context.Context) *game.State {
	return s.Create(ctx)
}

func (s *Session) create(ctx context.Context) *game.State {
	seed := s.deps.Seeds.Next()
	next := game.NewState(s.catalog, random.NewSeededRNG(seed))
	now := s.deps.Now()
	s.meta = Meta{CreatedAt: now}
	s.commit(ctx, "new_game", seed, next)
	return next.Clone()
}

// Load restores the saved game. A missing or unreadable save starts a new
// game; the returned bool reports whether a save was used.
func (s *Session) Load(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.deps.Saves != nil {
		rec, err := s.deps.Saves.Get(ctx, s.deps.Slot)
		switch {
		case err == nil:
			state, meta, derr := Decode(rec.Blob)
			if derr == nil {
				s.state, s.meta = state, meta
				s.deps.Logger.Info("save loaded", zap.String("slot", s.deps.Slot), zap.Int("day", state.Day))
				return true
			}
			s.deps.Logger.Warn("discarding unreadable save", zap.String("slot", s.deps.Slot), zap.Error(derr))
		case errors.Is(err, ports.ErrNotFound):
			s.deps.Logger.Info("no saved game", zap.String("slot", s.deps.Slot))
		default:
			s.report("load", err)
		}
	}
	s.create(ctx)
	return false
}

// Snapshot returns a deep copy of the live state, or nil before Create/Load.
func (s *Session) Snapshot() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return nil
	}
	return s.state.Clone()
}

func (s *Session) Meta() Meta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta
}

// LastSystemError is the most recent persistence failure, if any.
func (s *Session) LastSystemError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Mutate runs one operation. fn draws only from r; its error aborts the
// operation with no state change.
func (s *Session) Mutate(ctx context.Context, op string, fn func(next *game.State, r dice.Rand) error) (*game.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == nil {
		return nil, game.ErrNoActiveGame
	}
	seed := s.deps.Seeds.Next()
	next := s.state.Clone()
	if err := fn(next, random.NewSeededRNG(seed)); err != nil {
		s.deps.Logger.Debug("operation rejected", zap.String("op", op), zap.Int64("seed", seed), zap.Error(err))
		if s.deps.Metrics != nil {
			s.deps.Metrics.RecordRejected(op, game.Code(err))
		}
		return nil, err
	}
	s.commit(ctx, op, seed, next)
	return next.Clone(), nil
}

func (s *Session) commit(ctx context.Context, op string, seed int64, next *game.State) {
	out := next.Drain()
	now := s.deps.Now()
	for i := range out.Events {
		out.Events[i].OccurredAt = now
		if out.Events[i].Payload == nil {
			out.Events[i].Payload = map[string]any{}
		}
		out.Events[i].Payload["op"] = op
		out.Events[i].Payload["seed"] = seed
	}

	s.state = next
	s.meta.SavedAt = now
	s.meta.Day = next.Day
	s.meta.LastOp = op
	s.meta.LastSeed = seed
	s.meta.Operations++
	s.deps.Logger.Info("operation committed",
		zap.String("op", op),
		zap.Int64("seed", seed),
		zap.Int("day", next.Day),
		zap.Int("events", len(out.Events)),
	)

	if err := s.persist(ctx, next, out.Events); err != nil {
		s.report(op, err)
	} else {
		s.lastErr = nil
	}
	if s.deps.Notifier != nil {
		for _, n := range out.Notices {
			s.deps.Notifier.Notify(n.Message, n.Severity)
		}
	}
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordSuccess(op)
	}
}

func (s *Session) persist(ctx context.Context, state *game.State, events []game.Event) error {
	if s.deps.Saves == nil && s.deps.Journal == nil {
		return nil
	}
	blob, err := Encode(state, s.meta)
	if err != nil {
		return err
	}
	write := func(txCtx context.Context) error {
		if s.deps.Saves != nil {
			rec := ports.SaveRecord{Key: s.deps.Slot, Blob: blob, Day: state.Day, UpdatedAt: s.meta.SavedAt}
			if err := s.deps.Saves.Put(txCtx, rec); err != nil {
				return err
			}
		}
		if s.deps.Journal != nil && len(events) > 0 {
			if err := s.deps.Journal.Append(txCtx, s.deps.Slot, events); err != nil {
				return err
			}
		}
		return nil
	}
	if s.deps.TxManager == nil {
		return write(ctx)
	}
	return s.deps.TxManager.RunInTx(ctx, write)
}

func (s *Session) report(op string, err error) {
	sysErr := &SystemError{Op: op, Err: err}
	s.lastErr = sysErr
	s.deps.Logger.Error("persistence failed", zap.String("op", op), zap.Error(sysErr))
	if s.deps.Metrics != nil {
		s.deps.Metrics.RecordSystemError(op)
	}
	if s.deps.Notifier != nil {
		s.deps.Notifier.Notify("Progress could not be saved; the game continues.", game.SeverityError)
	}
}
