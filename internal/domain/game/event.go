package game

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError:
		return true
	default:
		return false
	}
}

type Notice struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Event is a journal record. OccurredAt is stamped when the operation commits.
type Event struct {
	Type       string         `json:"type"`
	Day        int            `json:"day"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

const (
	EventGameCreated         = "game_created"
	EventMissionResolved     = "mission_resolved"
	EventTeamSelected        = "team_selected"
	EventDaemonRetired       = "daemon_retired"
	EventDaemonRecruited     = "daemon_recruited"
	EventPoolRefreshed       = "pool_refreshed"
	EventRoomUpgraded        = "room_upgraded"
	EventEquipmentCrafted    = "equipment_crafted"
	EventEquipmentRepaired   = "equipment_repaired"
	EventEquipmentAssigned   = "equipment_assigned"
	EventEquipmentUnassigned = "equipment_unassigned"
	EventDayAdvanced         = "day_advanced"
	EventCorporate           = "corporate_event"
	EventPlanetConquered     = "planet_conquered"
)

type Outbox struct {
	Events  []Event
	Notices []Notice
}
