// Package mission exposes team selection and mission execution.
package mission

import (
	"context"
	"strings"

	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/mission"
)

const (
	OpSelect  = "select_mission_team"
	OpExecute = "execute_mission"
)

type UseCase struct {
	Session *session.Session
}

func (u UseCase) Select(ctx context.Context, req SelectRequest) (SelectResponse, error) {
	planetID := strings.TrimSpace(req.PlanetID)
	ids := make([]string, 0, len(req.DaemonIDs))
	for _, id := range req.DaemonIDs {
		ids = append(ids, strings.TrimSpace(id))
	}

	var chance mission.Chance
	state, err := u.Session.Mutate(ctx, OpSelect, func(next *game.State, _ dice.Rand) error {
		var err error
		chance, err = mission.Select(next, planetID, ids)
		return err
	})
	if err != nil {
		return SelectResponse{}, err
	}
	return SelectResponse{Chance: chance, State: status.View(state, u.Session.Catalog())}, nil
}

func (u UseCase) Execute(ctx context.Context) (ExecuteResponse, error) {
	var res mission.Result
	state, err := u.Session.Mutate(ctx, OpExecute, func(next *game.State, r dice.Rand) error {
		var err error
		res, err = mission.Execute(next, r)
		return err
	})
	if err != nil {
		return ExecuteResponse{}, err
	}
	return ExecuteResponse{Result: res, State: status.View(state, u.Session.Catalog())}, nil
}
