package game

import (
	"fmt"

	"infernocorp/internal/domain/dice"
)

// Recruit hires a candidate from the pool onto the active roster.
func Recruit(s *State, daemonID string) error {
	idx, ok := s.Roster.Candidate(daemonID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCandidate, daemonID)
	}
	c := s.Roster.Pool[idx]
	if !s.Ledger.Spend(c.Cost) {
		return fmt.Errorf("%w: recruiting %s costs %d, have %d", ErrInsufficientCredits, c.Daemon.Name, c.Cost, s.Ledger.Credits)
	}
	d := c.Daemon
	d.Active = d.LifespanDays > 0
	d.RecruitedDay = s.Day
	s.Roster.Daemons = append(s.Roster.Daemons, d)
	s.Roster.Pool = append(s.Roster.Pool[:idx:idx], s.Roster.Pool[idx+1:]...)

	s.Record(EventDaemonRecruited, map[string]any{"daemon_id": d.ID, "name": d.Name, "cost": c.Cost})
	s.Notify(SeveritySuccess, "%s the %s daemon joins the corporation", d.Name, d.Specialization)
	return nil
}

// RefreshPool replaces the whole recruitment pool regardless of what it held.
func RefreshPool(s *State, cat Catalog, r dice.Rand) error {
	cost := cat.Prices.PoolRefresh
	if !s.Ledger.Spend(cost) {
		return fmt.Errorf("%w: refreshing the pool costs %d, have %d", ErrInsufficientCredits, cost, s.Ledger.Credits)
	}
	s.Roster.Pool = cat.Generator().Candidates(r, s.Day, cat.PoolSize)

	s.Record(EventPoolRefreshed, map[string]any{"cost": cost, "candidates": len(s.Roster.Pool)})
	s.Notify(SeverityInfo, "Recruitment pool refreshed with %d new candidates", len(s.Roster.Pool))
	return nil
}
