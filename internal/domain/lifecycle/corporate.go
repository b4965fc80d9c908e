package lifecycle

import (
	"fmt"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/roster"
)

type Kind string

const (
	PerformanceReview Kind = "performance_review"
	TeamBuilding      Kind = "team_building"
	BudgetCuts        Kind = "budget_cuts"
	EquipmentAudit    Kind = "equipment_audit"
)

// CorporateEvent is data; ApplyCorporate is its only interpreter. Magnitude
// is lifespan, morale or durability depending on Kind.
type CorporateEvent struct {
	Kind        Kind              `json:"kind" yaml:"kind"`
	Name        string            `json:"name" yaml:"name"`
	Description string            `json:"description" yaml:"description"`
	Magnitude   int               `json:"magnitude" yaml:"magnitude"`
	Grant       economy.Resources `json:"grant" yaml:"grant"`
	Charge      int               `json:"charge" yaml:"charge"`
}

var DefaultCorporateEvents = []CorporateEvent{
	{
		Kind:        PerformanceReview,
		Name:        "Performance Review",
		Description: "Middle management demands results. Everyone ages a little.",
		Magnitude:   1,
		Grant:       economy.Resources{Credits: 100},
	},
	{
		Kind:        TeamBuilding,
		Name:        "Team Building Retreat",
		Description: "A mandatory weekend of trust falls into lava.",
		Magnitude:   10,
		Charge:      100,
	},
	{
		Kind:        BudgetCuts,
		Name:        "Budget Cuts",
		Description: "Accounting circulates a memo. Nobody reads it.",
	},
	{
		Kind:        EquipmentAudit,
		Name:        "Equipment Audit",
		Description: "Inspectors poke every item with a very pointy stick.",
		Magnitude:   10,
		Grant:       economy.Resources{BureaucraticLeverage: 2},
	},
}

// CorporateOutcome reports what an event actually did.
type CorporateOutcome struct {
	Event   CorporateEvent `json:"event"`
	Charged int            `json:"charged"`
	Retired []string       `json:"retired,omitempty"`
	Message string         `json:"message"`
}

// ApplyCorporate interprets ev against the state. r is only drawn from for
// legacy rolls of daemons the event retires.
func ApplyCorporate(s *game.State, ev CorporateEvent, r dice.Rand) CorporateOutcome {
	out := CorporateOutcome{Event: ev}
	switch ev.Kind {
	case PerformanceReview:
		for _, d := range s.Roster.ActiveDaemons() {
			d.LifespanDays = max(0, d.LifespanDays-ev.Magnitude)
			if d.LifespanDays == 0 {
				s.RetireDaemon(d.ID, "failed "+ev.Name, dice.Chance(r, legacyRecoveryChance))
				out.Retired = append(out.Retired, d.ID)
			}
		}
		s.Ledger.Add(ev.Grant)
		out.Message = fmt.Sprintf("%s: all daemons lose %d lifespan, corporation gains %d credits.", ev.Name, ev.Magnitude, ev.Grant.Credits)
	case TeamBuilding:
		for _, d := range s.Roster.ActiveDaemons() {
			d.Morale = roster.ClampStat(d.Morale + ev.Magnitude)
		}
		out.Charged = s.Ledger.Charge(ev.Charge)
		out.Message = fmt.Sprintf("%s: all daemons gain %d morale, costing %d credits.", ev.Name, ev.Magnitude, out.Charged)
		if out.Charged < ev.Charge {
			out.Message += fmt.Sprintf(" The treasury was %d short.", ev.Charge-out.Charged)
		}
	case EquipmentAudit:
		for i := range s.Roster.Equipment {
			item := &s.Roster.Equipment[i]
			item.Durability = roster.ClampStat(item.Durability - ev.Magnitude)
		}
		s.Ledger.Add(ev.Grant)
		out.Message = fmt.Sprintf("%s: all equipment loses %d durability, corporation gains %d bureaucratic leverage.", ev.Name, ev.Magnitude, ev.Grant.BureaucraticLeverage)
	default:
		out.Message = fmt.Sprintf("%s: %s", ev.Name, ev.Description)
	}

	s.AppendLog(game.LogEntry{Day: s.Day, Kind: string(ev.Kind), Name: ev.Name, Message: out.Message})
	s.Record(game.EventCorporate, map[string]any{"kind": string(ev.Kind), "name": ev.Name, "charged": out.Charged, "retired": out.Retired})
	s.Notify(game.SeverityWarning, "%s", out.Message)
	return out
}

// Trigger fires one event picked uniformly from events.
func Trigger(s *game.State, events []CorporateEvent, r dice.Rand) (CorporateOutcome, bool) {
	if len(events) == 0 {
		return CorporateOutcome{}, false
	}
	return ApplyCorporate(s, dice.Pick(r, events), r), true
}
