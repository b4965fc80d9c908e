package history

import "infernocorp/internal/domain/game"

type Request struct {
	Limit        int
	Types        []string
	OccurredFrom int64
	OccurredTo   int64
}

type Summary struct {
	LastDay         int `json:"last_day"`
	Missions        int `json:"missions"`
	Successes       int `json:"successes"`
	Retirements     int `json:"retirements"`
	Conquests       int `json:"conquests"`
	CorporateEvents int `json:"corporate_events"`
	Recruits        int `json:"recruits"`
}

type Response struct {
	Events  []game.Event `json:"events"`
	Summary Summary      `json:"summary"`
}
