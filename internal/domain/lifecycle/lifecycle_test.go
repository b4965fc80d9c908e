package lifecycle

import (
	"math/rand"
	"testing"
	"time"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
)

func newState(t *testing.T) *game.State {
	t.Helper()
	s := game.NewState(game.DefaultCatalog(), rand.New(rand.NewSource(5)))
	s.Drain()
	return s
}

func TestTick_AgesAndRegenerates(t *testing.T) {
	s := newState(t)
	g, _ := s.Roster.Daemon("grizzlethorn")
	g.Health = 50
	g.Morale = 98
	ward, _ := s.Roster.Room("recovery-ward")
	ward.Level = 2

	rep := Tick(s, DefaultCorporateEvents, &dice.Script{Floats: []float64{0.99}})

	if rep.Day != 2 || s.Day != 2 {
		t.Fatalf("day mismatch: got=%d want=2", s.Day)
	}
	g, _ = s.Roster.Daemon("grizzlethorn")
	if g.LifespanDays != 24 {
		t.Fatalf("lifespan mismatch: got=%d want=24", g.LifespanDays)
	}
	if g.Health != 80 {
		t.Fatalf("health mismatch: got=%d want=80", g.Health)
	}
	if g.Morale != 100 {
		t.Fatalf("morale should cap at 100: got=%d", g.Morale)
	}
	if rep.Corporate != nil {
		t.Fatalf("no corporate event expected on a 0.99 roll")
	}
}

func TestTick_RetiresAtZeroLifespanWithoutRegen(t *testing.T) {
	s := newState(t)
	d, _ := s.Roster.Daemon("skulkvane")
	d.LifespanDays = 1
	d.Morale = 10

	rep := Tick(s, DefaultCorporateEvents, &dice.Script{Floats: []float64{0.99}})

	d, _ = s.Roster.Daemon("skulkvane")
	if d.Active || d.LifespanDays != 0 {
		t.Fatalf("daemon should retire: %+v", d)
	}
	if d.Morale != 10 {
		t.Fatalf("retired daemons must not regenerate: morale=%d", d.Morale)
	}
	if len(rep.Retired) != 1 || rep.Retired[0] != "skulkvane" {
		t.Fatalf("retired mismatch: %v", rep.Retired)
	}
	if d.RetiredDay != 2 {
		t.Fatalf("retired day mismatch: got=%d want=2", d.RetiredDay)
	}
}

func TestTick_FiresCorporateEventOnLowRoll(t *testing.T) {
	s := newState(t)
	// corporate roll 0.01, then Pick index 3 (equipment audit)
	rep := Tick(s, DefaultCorporateEvents, &dice.Script{Floats: []float64{0.01}, Ints: []int{3}})
	if rep.Corporate == nil || rep.Corporate.Event.Kind != EquipmentAudit {
		t.Fatalf("expected equipment audit, got=%+v", rep.Corporate)
	}
	if len(s.EventLog) != 1 {
		t.Fatalf("event log mismatch: got=%d want=1", len(s.EventLog))
	}
}

func TestApplyCorporate_PerformanceReview(t *testing.T) {
	s := newState(t)
	d, _ := s.Roster.Daemon("skulkvane")
	d.LifespanDays = 1
	credits := s.Ledger.Credits

	out := ApplyCorporate(s, DefaultCorporateEvents[0], &dice.Script{Floats: []float64{0.99}})

	if got := s.Ledger.Credits - credits; got != 100 {
		t.Fatalf("grant mismatch: got=%d want=100", got)
	}
	g, _ := s.Roster.Daemon("grizzlethorn")
	if g.LifespanDays != 24 {
		t.Fatalf("lifespan mismatch: got=%d want=24", g.LifespanDays)
	}
	if len(out.Retired) != 1 || out.Retired[0] != "skulkvane" {
		t.Fatalf("retired mismatch: %v", out.Retired)
	}
}

func TestApplyCorporate_TeamBuildingFloorsAtZero(t *testing.T) {
	s := newState(t)
	s.Ledger.Credits = 30
	before, _ := s.Roster.Daemon("murgatroyd")
	morale := before.Morale

	out := ApplyCorporate(s, DefaultCorporateEvents[1], &dice.Script{})

	if s.Ledger.Credits != 0 || out.Charged != 30 {
		t.Fatalf("charge mismatch: credits=%d charged=%d", s.Ledger.Credits, out.Charged)
	}
	after, _ := s.Roster.Daemon("murgatroyd")
	if after.Morale != morale+10 {
		t.Fatalf("morale mismatch: got=%d want=%d", after.Morale, morale+10)
	}
}

func TestApplyCorporate_BudgetCutsChangesNothing(t *testing.T) {
	s := newState(t)
	snapshot := s.Clone()

	ApplyCorporate(s, DefaultCorporateEvents[2], &dice.Script{})

	if s.Ledger != snapshot.Ledger || s.Roster.Daemons[0].Morale != snapshot.Roster.Daemons[0].Morale {
		t.Fatalf("budget cuts must not touch state")
	}
	if len(s.EventLog) != 1 || s.EventLog[0].Kind != string(BudgetCuts) {
		t.Fatalf("budget cuts must still be logged: %+v", s.EventLog)
	}
}

func TestApplyCorporate_EquipmentAudit(t *testing.T) {
	s := newState(t)
	veil, _ := s.Roster.Item("veil-of-whispers")
	veil.Durability = 5

	ApplyCorporate(s, DefaultCorporateEvents[3], &dice.Script{})

	veil, _ = s.Roster.Item("veil-of-whispers")
	cleaver, _ := s.Roster.Item("brimstone-cleaver")
	if veil.Durability != 0 || cleaver.Durability != 70 {
		t.Fatalf("durability mismatch: veil=%d cleaver=%d", veil.Durability, cleaver.Durability)
	}
	if s.Ledger.BureaucraticLeverage != 2 {
		t.Fatalf("leverage mismatch: got=%d want=2", s.Ledger.BureaucraticLeverage)
	}
}

func TestCalendar_DayIndex(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cal := NewCalendar(start, 10*time.Minute)

	if got := cal.DayIndexAt(start.Add(-time.Minute)); got != 0 {
		t.Fatalf("before start: got=%d want=0", got)
	}
	if got := cal.DayIndexAt(start.Add(25 * time.Minute)); got != 2 {
		t.Fatalf("day index mismatch: got=%d want=2", got)
	}
	if got := cal.NextBoundary(start.Add(25 * time.Minute)); !got.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("next boundary mismatch: got=%s", got)
	}
	if NewCalendar(time.Time{}, 0).DayDuration != DefaultDayDuration {
		t.Fatalf("default day duration not applied")
	}
}
