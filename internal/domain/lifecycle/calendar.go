package lifecycle

import "time"

const DefaultDayDuration = 5 * time.Minute

// Calendar maps wall-clock time onto game day boundaries.
type Calendar struct {
	StartAt     time.Time
	DayDuration time.Duration
}

func NewCalendar(start time.Time, day time.Duration) Calendar {
	if day <= 0 {
		day = DefaultDayDuration
	}
	if start.IsZero() {
		start = time.Unix(0, 0)
	}
	return Calendar{StartAt: start, DayDuration: day}
}

// DayIndexAt counts whole days elapsed since StartAt.
func (c Calendar) DayIndexAt(now time.Time) int64 {
	elapsed := now.Sub(c.StartAt)
	if elapsed < 0 || c.DayDuration <= 0 {
		return 0
	}
	return int64(elapsed / c.DayDuration)
}

// NextBoundary is the wall-clock time the next day starts.
func (c Calendar) NextBoundary(now time.Time) time.Time {
	return c.StartAt.Add(time.Duration(c.DayIndexAt(now)+1) * c.DayDuration)
}
