package game

import (
	"fmt"

	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/roster"
)

type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseTeamSelected Phase = "team_selected"
	PhaseResolving    Phase = "resolving"
	PhaseApplied      Phase = "applied"
)

// Selection is the mission orchestrator's pending choice.
type Selection struct {
	Phase     Phase    `json:"phase"`
	PlanetID  string   `json:"planet_id,omitempty"`
	DaemonIDs []string `json:"daemon_ids,omitempty"`
}

func (s *Selection) Clear() {
	*s = Selection{Phase: PhaseIdle}
}

type LogEntry struct {
	Day     int    `json:"day"`
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

const MaxEventLog = 100

// State is the whole game: entity store, ledger, calendar and the
// orchestrator's selection. Operations mutate a Clone and the caller swaps
// it in once the operation has fully succeeded.
type State struct {
	Day       int            `json:"day"`
	Ledger    economy.Ledger `json:"ledger"`
	Roster    roster.Store   `json:"roster"`
	Selection Selection      `json:"selection"`
	EventLog  []LogEntry     `json:"event_log"`

	outbox Outbox
}

func (s *State) Clone() *State {
	out := &State{
		Day:       s.Day,
		Ledger:    s.Ledger,
		Roster:    s.Roster.Clone(),
		Selection: s.Selection,
		EventLog:  append([]LogEntry(nil), s.EventLog...),
	}
	out.Selection.DaemonIDs = append([]string(nil), s.Selection.DaemonIDs...)
	return out
}

// AppendLog records an entry for display, keeping the newest MaxEventLog.
func (s *State) AppendLog(entry LogEntry) {
	s.EventLog = append(s.EventLog, entry)
	if over := len(s.EventLog) - MaxEventLog; over > 0 {
		s.EventLog = append([]LogEntry(nil), s.EventLog[over:]...)
	}
}

func (s *State) Record(eventType string, payload map[string]any) {
	s.outbox.Events = append(s.outbox.Events, Event{Type: eventType, Day: s.Day, Payload: payload})
}

func (s *State) Notify(severity Severity, format string, args ...any) {
	s.outbox.Notices = append(s.outbox.Notices, Notice{Severity: severity, Message: fmt.Sprintf(format, args...)})
}

// Drain hands over what the last operation recorded and empties the outbox.
func (s *State) Drain() Outbox {
	out := s.outbox
	s.outbox = Outbox{}
	return out
}

// RetireDaemon retires and records the side effects in one place so every
// caller (missions, ticks, corporate events) reports the same way.
func (s *State) RetireDaemon(id, cause string, recoverLegacy bool) {
	d, ok := s.Roster.Daemon(id)
	if !ok || !d.Active {
		return
	}
	recovered := s.Roster.Retire(id, s.Day, recoverLegacy)
	payload := map[string]any{"daemon_id": id, "name": d.Name, "cause": cause}
	if recovered != nil {
		payload["recovered_equipment_id"] = recovered.ID
		s.Notify(SeverityInfo, "%s salvaged from %s's remains (durability %d)", recovered.Name, d.Name, recovered.Durability)
	}
	s.Record(EventDaemonRetired, payload)
	s.Notify(SeverityWarning, "%s has been retired (%s)", d.Name, cause)
}
