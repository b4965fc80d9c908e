package status

import (
	"context"

	"infernocorp/internal/app/session"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/mission"
)

type UseCase struct {
	Session *session.Session
}

func (u UseCase) Execute(_ context.Context, _ Request) (Response, error) {
	state := u.Session.Snapshot()
	if state == nil {
		return Response{}, game.ErrNoActiveGame
	}
	return View(state, u.Session.Catalog()), nil
}

// View derives the display model from a state snapshot.
func View(s *game.State, cat game.Catalog) Response {
	out := Response{
		Day:       s.Day,
		Resources: s.Ledger.Resources,
		Daemons:   make([]DaemonView, 0, len(s.Roster.Daemons)),
		Equipment: make([]EquipmentView, 0, len(s.Roster.Equipment)),
		Rooms:     make([]RoomView, 0, len(s.Roster.Rooms)),
		Planets:   s.Roster.Planets,
		Pool:      s.Roster.Pool,
		Selection: SelectionView{Selection: s.Selection},
		EventLog:  s.EventLog,
		Prices:    cat.Prices,
	}
	for _, d := range s.Roster.Daemons {
		v := DaemonView{Daemon: d, Deployable: d.Deployable()}
		if item, ok := s.Roster.EquipmentOf(d.ID); ok {
			held := *item
			v.Equipment = &held
		}
		out.Daemons = append(out.Daemons, v)
	}
	for _, e := range s.Roster.Equipment {
		out.Equipment = append(out.Equipment, EquipmentView{Equipment: e, RepairCost: game.RepairCost(cat, e)})
	}
	for _, r := range s.Roster.Rooms {
		out.Rooms = append(out.Rooms, RoomView{Room: r, Bonus: r.Bonus()})
	}
	if chance, ok := mission.Preview(s); ok {
		out.Selection.Preview = &chance
	}
	if out.EventLog == nil {
		out.EventLog = []game.LogEntry{}
	}
	return out
}
