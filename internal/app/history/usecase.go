package history

import (
	"context"
	"errors"
	"strings"
	"time"

	"infernocorp/internal/app/ports"
	"infernocorp/internal/domain/game"
)

var ErrInvalidRequest = errors.New("invalid history request")

const (
	DefaultLimit = 50
	MaxLimit     = 500
)

type UseCase struct {
	Journal ports.JournalRepository
	Slot    string
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if req.Limit < 0 || (req.OccurredFrom > 0 && req.OccurredTo > 0 && req.OccurredFrom > req.OccurredTo) {
		return Response{}, ErrInvalidRequest
	}
	if req.Limit == 0 {
		req.Limit = DefaultLimit
	}
	req.Limit = min(req.Limit, MaxLimit)

	events, err := u.Journal.ListBySlot(ctx, u.Slot, req.Limit)
	if err != nil {
		return Response{}, err
	}
	events = filterByTimeWindow(events, req.OccurredFrom, req.OccurredTo)
	events = filterByType(events, req.Types)
	return Response{Events: events, Summary: summarize(events)}, nil
}

func filterByTimeWindow(events []game.Event, from, to int64) []game.Event {
	if from <= 0 && to <= 0 {
		return events
	}
	out := make([]game.Event, 0, len(events))
	for _, evt := range events {
		ts := evt.OccurredAt.Unix()
		if from > 0 && ts < from {
			continue
		}
		if to > 0 && ts > to {
			continue
		}
		out = append(out, evt)
	}
	return out
}

func filterByType(events []game.Event, types []string) []game.Event {
	wanted := map[string]bool{}
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			wanted[t] = true
		}
	}
	if len(wanted) == 0 {
		return events
	}
	out := make([]game.Event, 0, len(events))
	for _, evt := range events {
		if wanted[evt.Type] {
			out = append(out, evt)
		}
	}
	return out
}

func summarize(events []game.Event) Summary {
	var s Summary
	for _, evt := range events {
		s.LastDay = max(s.LastDay, evt.Day)
		switch evt.Type {
		case game.EventMissionResolved:
			s.Missions++
			if ok, _ := evt.Payload["success"].(bool); ok {
				s.Successes++
			}
		case game.EventDaemonRetired:
			s.Retirements++
		case game.EventPlanetConquered:
			s.Conquests++
		case game.EventCorporate:
			s.CorporateEvents++
		case game.EventDaemonRecruited:
			s.Recruits++
		case game.EventDayAdvanced:
			s.LastDay = max(s.LastDay, int(num(evt.Payload["day"])))
		}
	}
	return s
}

func num(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		if t, ok := v.(time.Time); ok {
			return float64(t.Unix())
		}
		return 0
	}
}
