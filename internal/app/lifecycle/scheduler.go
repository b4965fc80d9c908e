package lifecycle

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"infernocorp/internal/domain/lifecycle"
)

const (
	DefaultPollInterval = time.Second
	DefaultMaxCatchUp   = 3
)

// Ticker is the operation the Scheduler drives once per day boundary.
type Ticker interface {
	Tick(ctx context.Context) (TickResponse, error)
}

// Scheduler turns wall-clock day boundaries into ticks. It never runs more
// than MaxCatchUp ticks for one poll, however many days were missed.
//
// When Anchor is set it is read on every poll; a new value (a new game)
// moves Calendar.StartAt there and restarts day counting.
type Scheduler struct {
	Ticker       Ticker
	Calendar     lifecycle.Calendar
	Anchor       func() time.Time
	Logger       *zap.Logger
	Now          func() time.Time
	PollInterval time.Duration
	MaxCatchUp   int

	mu      sync.Mutex
	started bool
	lastDay int64
}

// Run polls until ctx is done. Call in a goroutine.
func (s *Scheduler) Run(ctx context.Context) {
	logger := s.logger()
	interval := s.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	logger.Info("lifecycle scheduler started", zap.Duration("day", s.Calendar.DayDuration), zap.Duration("poll", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.Advance(ctx)
	for {
		select {
		case <-ctx.Done():
			logger.Info("lifecycle scheduler stopped")
			return
		case <-ticker.C:
			s.Advance(ctx)
		}
	}
}

// Advance runs one tick per day boundary crossed since the previous call
// and returns how many ran. The first call only records the current day.
func (s *Scheduler) Advance(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	s.reanchor()
	day := s.Calendar.DayIndexAt(now())
	if !s.started {
		s.started = true
		s.lastDay = day
		return 0
	}
	if day <= s.lastDay {
		return 0
	}

	pending := day - s.lastDay
	limit := int64(s.MaxCatchUp)
	if limit <= 0 {
		limit = DefaultMaxCatchUp
	}
	if pending > limit {
		s.logger().Warn("skipping missed days", zap.Int64("missed", pending), zap.Int64("ticking", limit))
		pending = limit
	}
	s.lastDay = day

	ran := 0
	for i := int64(0); i < pending; i++ {
		resp, err := s.Ticker.Tick(ctx)
		if err != nil {
			s.logger().Error("scheduled tick failed", zap.Error(err))
			break
		}
		ran++
		fields := []zap.Field{zap.Int("day", resp.Report.Day), zap.Int("retired", len(resp.Report.Retired))}
		if resp.Report.Corporate != nil {
			fields = append(fields, zap.String("corporate_event", string(resp.Report.Corporate.Event.Kind)))
		}
		s.logger().Info("day advanced", fields...)
	}
	return ran
}

func (s *Scheduler) reanchor() {
	if s.Anchor == nil {
		return
	}
	start := s.Anchor()
	if start.IsZero() || start.Equal(s.Calendar.StartAt) {
		return
	}
	if s.started {
		s.logger().Info("calendar re-anchored", zap.Time("start", start))
	}
	s.Calendar = lifecycle.NewCalendar(start, s.Calendar.DayDuration)
	s.started = false
}

func (s *Scheduler) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
