package lifecycle

import (
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/lifecycle"
)

type TickResponse struct {
	Report lifecycle.Report `json:"report"`
	State  status.Response  `json:"state"`
}

type EventResponse struct {
	Outcome lifecycle.CorporateOutcome `json:"outcome"`
	State   status.Response            `json:"state"`
}
