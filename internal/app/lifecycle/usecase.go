package lifecycle

import (
	"context"

	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/lifecycle"
)

const (
	OpTick        = "tick"
	OpRandomEvent = "trigger_random_event"
)

type UseCase struct {
	Session *session.Session
	// Events defaults to lifecycle.DefaultCorporateEvents.
	Events []lifecycle.CorporateEvent
}

func (u UseCase) events() []lifecycle.CorporateEvent {
	if len(u.Events) == 0 {
		return lifecycle.DefaultCorporateEvents
	}
	return u.Events
}

func (u UseCase) Tick(ctx context.Context) (TickResponse, error) {
	var rep lifecycle.Report
	state, err := u.Session.Mutate(ctx, OpTick, func(next *game.State, r dice.Rand) error {
		rep = lifecycle.Tick(next, u.events(), r)
		return nil
	})
	if err != nil {
		return TickResponse{}, err
	}
	return TickResponse{Report: rep, State: status.View(state, u.Session.Catalog())}, nil
}

// TriggerRandomEvent fires one corporate event regardless of the daily roll.
func (u UseCase) TriggerRandomEvent(ctx context.Context) (EventResponse, error) {
	var out lifecycle.CorporateOutcome
	state, err := u.Session.Mutate(ctx, OpRandomEvent, func(next *game.State, r dice.Rand) error {
		out, _ = lifecycle.Trigger(next, u.events(), r)
		return nil
	})
	if err != nil {
		return EventResponse{}, err
	}
	return EventResponse{Outcome: out, State: status.View(state, u.Session.Catalog())}, nil
}
