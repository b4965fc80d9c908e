package httpadapter

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"infernocorp/internal/adapter/notify"
	"infernocorp/internal/app/history"
	lifecycleapp "infernocorp/internal/app/lifecycle"
	"infernocorp/internal/app/management"
	missionapp "infernocorp/internal/app/mission"
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/game"
)

const defaultNotificationLimit = 50

type Handler struct {
	StatusUC     status.UseCase
	ManagementUC management.UseCase
	MissionUC    missionapp.UseCase
	LifecycleUC  lifecycleapp.UseCase
	HistoryUC    history.UseCase
	Feed         notificationFeed
	KPI          kpiSnapshotProvider
	AllowOrigin  string
}

type notificationFeed interface {
	Recent(n int) []notify.Entry
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware(h.AllowOrigin))

	api := s.Group("/api")
	api.GET("/state", h.state)
	api.POST("/game/new", h.newGame)
	api.POST("/recruits/refresh", h.refreshPool)
	api.POST("/recruits/:id/hire", h.recruit)
	api.POST("/rooms/:id/upgrade", h.upgradeRoom)
	api.POST("/equipment/craft", h.craft)
	api.POST("/equipment/:id/repair", h.repair)
	api.POST("/equipment/:id/equip", h.equip)
	api.POST("/equipment/:id/unequip", h.unequip)
	api.POST("/missions/select", h.selectTeam)
	api.POST("/missions/execute", h.executeMission)
	api.POST("/tick", h.tick)
	api.POST("/events/random", h.randomEvent)
	api.GET("/history", h.history)
	api.GET("/notifications", h.notifications)

	s.GET("/ops/kpi", h.kpi)
}

type craftRequest struct {
	ItemType string `json:"item_type"`
}

type equipRequest struct {
	DaemonID string `json:"daemon_id"`
}

func (h Handler) state(c context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Execute(c, status.Request{})
	respond(ctx, resp, err)
}

func (h Handler) newGame(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.NewGame(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) refreshPool(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.RefreshPool(c)
	respond(ctx, resp, err)
}

func (h Handler) recruit(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.Recruit(c, ctx.Param("id"))
	respond(ctx, resp, err)
}

func (h Handler) upgradeRoom(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.UpgradeRoom(c, ctx.Param("id"))
	respond(ctx, resp, err)
}

func (h Handler) craft(c context.Context, ctx *app.RequestContext) {
	var body craftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ManagementUC.Craft(c, body.ItemType)
	respond(ctx, resp, err)
}

func (h Handler) repair(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.Repair(c, ctx.Param("id"))
	respond(ctx, resp, err)
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	var body equipRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ManagementUC.Equip(c, ctx.Param("id"), body.DaemonID)
	respond(ctx, resp, err)
}

func (h Handler) unequip(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ManagementUC.Unequip(c, ctx.Param("id"))
	respond(ctx, resp, err)
}

func (h Handler) selectTeam(c context.Context, ctx *app.RequestContext) {
	var body missionapp.SelectRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.MissionUC.Select(c, body)
	respond(ctx, resp, err)
}

func (h Handler) executeMission(c context.Context, ctx *app.RequestContext) {
	resp, err := h.MissionUC.Execute(c)
	respond(ctx, resp, err)
}

func (h Handler) tick(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LifecycleUC.Tick(c)
	respond(ctx, resp, err)
}

func (h Handler) randomEvent(c context.Context, ctx *app.RequestContext) {
	resp, err := h.LifecycleUC.TriggerRandomEvent(c)
	respond(ctx, resp, err)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	occurredFrom, _ := strconv.ParseInt(string(ctx.Query("occurred_from")), 10, 64)
	occurredTo, _ := strconv.ParseInt(string(ctx.Query("occurred_to")), 10, 64)
	var types []string
	for _, t := range strings.Split(string(ctx.Query("types")), ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	resp, err := h.HistoryUC.Execute(c, history.Request{
		Limit:        limit,
		Types:        types,
		OccurredFrom: occurredFrom,
		OccurredTo:   occurredTo,
	})
	respond(ctx, resp, err)
}

func (h Handler) notifications(_ context.Context, ctx *app.RequestContext) {
	if h.Feed == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "notification feed not configured")
		return
	}
	limit, err := strconv.Atoi(string(ctx.Query("limit")))
	if err != nil || limit <= 0 {
		limit = defaultNotificationLimit
	}
	ctx.JSON(consts.StatusOK, map[string]any{"notifications": h.Feed.Recent(limit)})
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func respond(ctx *app.RequestContext, resp any, err error) {
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return sonic.ConfigStd.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, game.ErrValidation):
		writeErrorBody(ctx, consts.StatusBadRequest, game.Code(err), err.Error())
	case errors.Is(err, game.ErrBusinessRule):
		writeErrorBody(ctx, consts.StatusConflict, game.Code(err), err.Error())
	case errors.Is(err, history.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
