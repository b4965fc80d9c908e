package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"infernocorp/internal/domain/game"
)

func TestUseCase_SummarizesJournal(t *testing.T) {
	repo := fakeRepo{events: []game.Event{
		{Type: game.EventMissionResolved, Day: 2, OccurredAt: time.Unix(10, 0), Payload: map[string]any{"success": true}},
		{Type: game.EventPlanetConquered, Day: 2, OccurredAt: time.Unix(10, 0)},
		{Type: game.EventMissionResolved, Day: 3, OccurredAt: time.Unix(20, 0), Payload: map[string]any{"success": false}},
		{Type: game.EventDaemonRetired, Day: 3, OccurredAt: time.Unix(20, 0)},
		{Type: game.EventDayAdvanced, Day: 4, OccurredAt: time.Unix(30, 0), Payload: map[string]any{"day": 4.0}},
	}}

	uc := UseCase{Journal: repo}
	out, err := uc.Execute(context.Background(), Request{Limit: 10})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	want := Summary{LastDay: 4, Missions: 2, Successes: 1, Retirements: 1, Conquests: 1}
	if out.Summary != want {
		t.Fatalf("summary mismatch: got=%+v want=%+v", out.Summary, want)
	}
	if len(out.Events) != 5 {
		t.Fatalf("expected 5 events, got %d", len(out.Events))
	}
}

func TestUseCase_FiltersByTypeAndWindow(t *testing.T) {
	repo := fakeRepo{events: []game.Event{
		{Type: game.EventMissionResolved, OccurredAt: time.Unix(10, 0)},
		{Type: game.EventMissionResolved, OccurredAt: time.Unix(20, 0)},
		{Type: game.EventDaemonRetired, OccurredAt: time.Unix(20, 0)},
	}}

	uc := UseCase{Journal: repo}
	out, err := uc.Execute(context.Background(), Request{Types: []string{" mission_resolved "}, OccurredFrom: 15})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].OccurredAt.Unix() != 20 {
		t.Fatalf("filter mismatch: %+v", out.Events)
	}
}

func TestUseCase_RejectsInvertedWindow(t *testing.T) {
	uc := UseCase{Journal: fakeRepo{}}
	if _, err := uc.Execute(context.Background(), Request{OccurredFrom: 20, OccurredTo: 10}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

type fakeRepo struct {
	events []game.Event
}

func (r fakeRepo) Append(_ context.Context, _ string, _ []game.Event) error {
	return nil
}

func (r fakeRepo) ListBySlot(_ context.Context, _ string, _ int) ([]game.Event, error) {
	return r.events, nil
}
