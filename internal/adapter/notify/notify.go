// Package notify holds Notifier adapters: a zap sink, an in-memory feed,
// a websocket hub and a fan-out.
package notify

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

type Entry struct {
	Message  string        `json:"message"`
	Severity game.Severity `json:"severity"`
	At       time.Time     `json:"at"`
}

// LogSink writes notifications to a zap logger.
type LogSink struct {
	Logger *zap.Logger
}

func (l LogSink) Notify(message string, severity game.Severity) {
	if l.Logger == nil {
		return
	}
	field := zap.String("severity", string(severity))
	switch severity {
	case game.SeverityError:
		l.Logger.Error(message, field)
	case game.SeverityWarning:
		l.Logger.Warn(message, field)
	default:
		l.Logger.Info(message, field)
	}
}

const DefaultFeedSize = 200

// Feed keeps the most recent notifications for polling clients.
type Feed struct {
	mu      sync.Mutex
	entries []Entry
	next    int
	full    bool
	now     func() time.Time
}

func NewFeed(size int) *Feed {
	if size <= 0 {
		size = DefaultFeedSize
	}
	return &Feed{entries: make([]Entry, size), now: time.Now}
}

func (f *Feed) Notify(message string, severity game.Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[f.next] = Entry{Message: message, Severity: severity, At: f.now().UTC()}
	f.next = (f.next + 1) % len(f.entries)
	if f.next == 0 {
		f.full = true
	}
}

// Recent returns up to n entries, newest first. n <= 0 returns everything held.
func (f *Feed) Recent(n int) []Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := f.next
	if f.full {
		count = len(f.entries)
	}
	if n <= 0 || n > count {
		n = count
	}
	out := make([]Entry, 0, n)
	idx := f.next
	for len(out) < n {
		idx = (idx - 1 + len(f.entries)) % len(f.entries)
		out = append(out, f.entries[idx])
	}
	return out
}

// Multi fans a notification out to every non-nil notifier.
type Multi []ports.Notifier

func (m Multi) Notify(message string, severity game.Severity) {
	for _, n := range m {
		if n != nil {
			n.Notify(message, severity)
		}
	}
}
