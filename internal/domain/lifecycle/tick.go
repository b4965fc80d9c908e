// Package lifecycle advances the game one day at a time.
package lifecycle

import (
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/roster"
)

const (
	// CorporateEventChance is the per-tick odds of a random corporate event.
	CorporateEventChance = 0.05
	legacyRecoveryChance = 0.3

	moralePerQuartersLevel = 5
	healthPerWardLevel     = 15
)

type Report struct {
	Day       int               `json:"day"`
	Retired   []string          `json:"retired,omitempty"`
	Corporate *CorporateOutcome `json:"corporate,omitempty"`
}

// Tick advances one day: aging, then facility regeneration for those still
// active, then one roll for a corporate event. Calling it twice is two days.
func Tick(s *game.State, events []CorporateEvent, r dice.Rand) Report {
	s.Day++
	rep := Report{Day: s.Day}

	for _, d := range s.Roster.ActiveDaemons() {
		d.LifespanDays = max(0, d.LifespanDays-1)
		if d.LifespanDays == 0 {
			s.RetireDaemon(d.ID, "lifespan expired", dice.Chance(r, legacyRecoveryChance))
			rep.Retired = append(rep.Retired, d.ID)
		}
	}

	morale := moralePerQuartersLevel * s.Roster.RoomLevel(roster.LivingQuarters)
	health := healthPerWardLevel * s.Roster.RoomLevel(roster.RecoveryWard)
	for _, d := range s.Roster.ActiveDaemons() {
		d.Morale = roster.ClampStat(d.Morale + morale)
		if d.Health < roster.MaxStat {
			d.Health = roster.ClampStat(d.Health + health)
		}
	}

	s.Record(game.EventDayAdvanced, map[string]any{"day": s.Day, "retired": rep.Retired})

	if dice.Chance(r, CorporateEventChance) {
		if out, ok := Trigger(s, events, r); ok {
			rep.Corporate = &out
		}
	}
	return rep
}
