package management

import (
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/roster"
)

type Response struct {
	State status.Response `json:"state"`
}

type RoomResponse struct {
	Room  roster.Room     `json:"room"`
	State status.Response `json:"state"`
}

type EquipmentResponse struct {
	Equipment roster.Equipment `json:"equipment"`
	State     status.Response  `json:"state"`
}
