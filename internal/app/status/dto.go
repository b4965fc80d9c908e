package status

import (
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/mission"
	"infernocorp/internal/domain/roster"
)

type Request struct{}

type DaemonView struct {
	roster.Daemon
	Equipment  *roster.Equipment `json:"equipment,omitempty"`
	Deployable bool              `json:"deployable"`
}

type EquipmentView struct {
	roster.Equipment
	RepairCost int `json:"repair_cost"`
}

type RoomView struct {
	roster.Room
	Bonus string `json:"bonus"`
}

type SelectionView struct {
	game.Selection
	Preview *mission.Chance `json:"preview,omitempty"`
}

// Response is the full state view returned after every operation.
type Response struct {
	Day       int                `json:"day"`
	Resources economy.Resources  `json:"resources"`
	Daemons   []DaemonView       `json:"daemons"`
	Equipment []EquipmentView    `json:"equipment"`
	Rooms     []RoomView         `json:"rooms"`
	Planets   []roster.Planet    `json:"planets"`
	Pool      []roster.Candidate `json:"recruitment_pool"`
	Selection SelectionView      `json:"selection"`
	EventLog  []game.LogEntry    `json:"event_log"`
	Prices    game.Prices        `json:"prices"`
}
