package mission

import (
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/mission"
)

type SelectRequest struct {
	PlanetID  string   `json:"planet_id"`
	DaemonIDs []string `json:"daemon_ids"`
}

type SelectResponse struct {
	Chance mission.Chance  `json:"chance"`
	State  status.Response `json:"state"`
}

type ExecuteResponse struct {
	Result mission.Result  `json:"result"`
	State  status.Response `json:"state"`
}
