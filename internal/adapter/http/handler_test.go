package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/cloudwego/hertz/pkg/route/param"

	metricsinmem "infernocorp/internal/adapter/metrics/inmemory"
	"infernocorp/internal/adapter/notify"
	memoryrepo "infernocorp/internal/adapter/repo/memory"
	"infernocorp/internal/app/history"
	lifecycleapp "infernocorp/internal/app/lifecycle"
	"infernocorp/internal/app/management"
	missionapp "infernocorp/internal/app/mission"
	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/platform/random"
)

func newTestHandler(t *testing.T) Handler {
	t.Helper()
	store := memoryrepo.NewStore()
	journal := memoryrepo.NewJournalRepo(store)
	feed := notify.NewFeed(20)
	recorder := metricsinmem.NewRecorder()
	seeds, err := random.NewSeeds(11)
	if err != nil {
		t.Fatalf("seeds: %v", err)
	}
	sess, err := session.New(game.DefaultCatalog(), session.Deps{
		Saves:     memoryrepo.NewSaveRepo(store),
		Journal:   journal,
		TxManager: memoryrepo.NewTxManager(store),
		Notifier:  feed,
		Metrics:   recorder,
		Seeds:     seeds,
	})
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	sess.Create(context.Background())
	return Handler{
		StatusUC:     status.UseCase{Session: sess},
		ManagementUC: management.UseCase{Session: sess},
		MissionUC:    missionapp.UseCase{Session: sess},
		LifecycleUC:  lifecycleapp.UseCase{Session: sess},
		HistoryUC:    history.UseCase{Journal: journal, Slot: session.SaveKey},
		Feed:         feed,
		KPI:          recorder,
	}
}

func decodeBody(t *testing.T, ctx *app.RequestContext) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(ctx.Response.Body(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func errorCode(t *testing.T, ctx *app.RequestContext) any {
	t.Helper()
	errObj, _ := decodeBody(t, ctx)["error"].(map[string]any)
	return errObj["code"]
}

func TestWriteError_ValidationIsBadRequest(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, game.ErrUnknownPlanet)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "unknown_planet"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_BusinessRuleIsConflict(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, game.ErrInsufficientCredits)

	if got, want := ctx.Response.StatusCode(), consts.StatusConflict; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "insufficient_credits"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestWriteError_UnknownIsInternal(t *testing.T) {
	ctx := &app.RequestContext{}
	writeError(ctx, errors.New("disk on fire"))

	if got, want := ctx.Response.StatusCode(), consts.StatusInternalServerError; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	errObj, _ := decodeBody(t, ctx)["error"].(map[string]any)
	if got, want := errObj["message"], "internal error"; got != want {
		t.Fatalf("message mismatch: got=%q want=%q", got, want)
	}
}

func TestState_ReturnsSnakeCaseView(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	h.state(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	body := decodeBody(t, ctx)
	for _, key := range []string{"day", "resources", "daemons", "recruitment_pool", "event_log", "selection"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing key %q in %v", key, body)
		}
	}
	resources, _ := body["resources"].(map[string]any)
	if got, want := resources["credits"], float64(1000); got != want {
		t.Fatalf("credits mismatch: got=%v want=%v", got, want)
	}
}

func TestUpgradeRoom_UsesPathParam(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "command-center"}}
	h.upgradeRoom(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	room, _ := decodeBody(t, ctx)["room"].(map[string]any)
	if got, want := room["level"], float64(1); got != want {
		t.Fatalf("level mismatch: got=%v want=%v", got, want)
	}
	if got, want := room["upgrade_cost"], float64(450); got != want {
		t.Fatalf("upgrade cost mismatch: got=%v want=%v", got, want)
	}
}

func TestUpgradeRoom_UnknownRoom(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "dungeon"}}
	h.upgradeRoom(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "unknown_room"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCraft_RejectsInvalidJSON(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"item_type":`))
	h.craft(context.Background(), ctx)

	if got, want := errorCode(t, ctx), "invalid_json"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestCraftThenEquip(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"item_type":"Bureaucracy"}`))
	h.craft(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("craft status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	item, _ := decodeBody(t, ctx)["equipment"].(map[string]any)
	id, _ := item["id"].(string)
	if id == "" {
		t.Fatalf("crafted item has no id: %v", item)
	}

	ctx = &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: id}}
	ctx.Request.SetBody([]byte(`{"daemon_id":"murgatroyd"}`))
	h.equip(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("equip status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
}

func TestExecuteMission_WithoutSelection(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	h.executeMission(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if got, want := errorCode(t, ctx), "no_mission_selected"; got != want {
		t.Fatalf("error code mismatch: got=%q want=%q", got, want)
	}
}

func TestSelectAndExecuteMission(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(`{"planet_id":"aurelia","daemon_ids":["grizzlethorn","skulkvane"]}`))
	h.selectTeam(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("select status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}

	ctx = &app.RequestContext{}
	h.executeMission(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusOK; got != want {
		t.Fatalf("execute status mismatch: got=%d want=%d body=%s", got, want, ctx.Response.Body())
	}
	result, _ := decodeBody(t, ctx)["result"].(map[string]any)
	if got, want := result["planet_id"], "aurelia"; got != want {
		t.Fatalf("planet mismatch: got=%v want=%v", got, want)
	}

	ctx = &app.RequestContext{}
	h.history(context.Background(), ctx)
	events, _ := decodeBody(t, ctx)["events"].([]any)
	if len(events) == 0 {
		t.Fatalf("expected journal events after mission")
	}
}

func TestTickAdvancesDay(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	h.tick(context.Background(), ctx)

	state, _ := decodeBody(t, ctx)["state"].(map[string]any)
	if got, want := state["day"], float64(2); got != want {
		t.Fatalf("day mismatch: got=%v want=%v", got, want)
	}
}

func TestHistory_RejectsNegativeLimit(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/history?limit=-1")
	h.history(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusBadRequest; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}

func TestNotifications_NewestFirst(t *testing.T) {
	h := newTestHandler(t)
	ctx := &app.RequestContext{}
	ctx.Params = param.Params{{Key: "id", Value: "living-quarters"}}
	h.upgradeRoom(context.Background(), ctx)

	ctx = &app.RequestContext{}
	h.notifications(context.Background(), ctx)
	list, _ := decodeBody(t, ctx)["notifications"].([]any)
	if len(list) < 2 {
		t.Fatalf("expected welcome and upgrade notices, got=%v", list)
	}
	first, _ := list[0].(map[string]any)
	if got, want := first["severity"], string(game.SeveritySuccess); got != want {
		t.Fatalf("severity mismatch: got=%v want=%v", got, want)
	}
}

func TestKPI_NotConfigured(t *testing.T) {
	ctx := &app.RequestContext{}
	Handler{}.kpi(context.Background(), ctx)
	if got, want := ctx.Response.StatusCode(), consts.StatusNotFound; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
}
