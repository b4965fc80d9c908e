package mission

import (
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/roster"
)

// Select validates a team and parks it on the state until Execute.
// Selecting again replaces the previous choice.
func Select(s *game.State, planetID string, daemonIDs []string) (Chance, error) {
	team, planet, err := Team(s, planetID, daemonIDs)
	if err != nil {
		return Chance{}, err
	}
	s.Selection = game.Selection{
		Phase:     game.PhaseTeamSelected,
		PlanetID:  planet.ID,
		DaemonIDs: append([]string(nil), daemonIDs...),
	}
	chance := SuccessChance(team, planet, s.Roster.RoomLevel(roster.CommandCenter))
	s.Record(game.EventTeamSelected, map[string]any{"planet_id": planet.ID, "daemon_ids": s.Selection.DaemonIDs, "success_chance": chance.Display})
	return chance, nil
}

// Preview recomputes the odds of the pending selection, if it is still valid.
func Preview(s *game.State) (Chance, bool) {
	if s.Selection.Phase != game.PhaseTeamSelected {
		return Chance{}, false
	}
	team, planet, err := Team(s, s.Selection.PlanetID, s.Selection.DaemonIDs)
	if err != nil {
		return Chance{}, false
	}
	return SuccessChance(team, planet, s.Roster.RoomLevel(roster.CommandCenter)), true
}

// Execute runs the selected mission to completion and returns to idle.
func Execute(s *game.State, r dice.Rand) (Result, error) {
	if s.Selection.Phase != game.PhaseTeamSelected {
		return Result{}, game.ErrNoMissionSelected
	}
	team, planet, err := Team(s, s.Selection.PlanetID, s.Selection.DaemonIDs)
	if err != nil {
		return Result{}, err
	}

	s.Selection.Phase = game.PhaseResolving
	res := Resolve(team, planet, s.Roster.RoomLevel(roster.CommandCenter), r)

	Apply(s, &res)
	s.Selection.Phase = game.PhaseApplied

	s.Selection.Clear()
	return res, nil
}
