// Package management exposes the roster, facility and armory commands.
package management

import (
	"context"
	"strings"

	"infernocorp/internal/app/session"
	"infernocorp/internal/app/status"
	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/roster"
)

const (
	OpNewGame     = "new_game"
	OpRecruit     = "recruit"
	OpRefreshPool = "refresh_recruitment_pool"
	OpUpgradeRoom = "upgrade_room"
	OpCraft       = "craft"
	OpRepair      = "repair"
	OpEquip       = "equip"
	OpUnequip     = "unequip"
)

type UseCase struct {
	Session *session.Session
}

// NewGame discards the live game and starts over from the catalog.
func (u UseCase) NewGame(ctx context.Context) (Response, error) {
	state := u.Session.Reset(ctx)
	return Response{State: status.View(state, u.Session.Catalog())}, nil
}

func (u UseCase) Recruit(ctx context.Context, daemonID string) (Response, error) {
	return u.run(ctx, OpRecruit, func(next *game.State, _ dice.Rand) error {
		return game.Recruit(next, strings.TrimSpace(daemonID))
	})
}

func (u UseCase) RefreshPool(ctx context.Context) (Response, error) {
	cat := u.Session.Catalog()
	return u.run(ctx, OpRefreshPool, func(next *game.State, r dice.Rand) error {
		return game.RefreshPool(next, cat, r)
	})
}

func (u UseCase) UpgradeRoom(ctx context.Context, roomID string) (RoomResponse, error) {
	var room roster.Room
	out, err := u.run(ctx, OpUpgradeRoom, func(next *game.State, _ dice.Rand) error {
		var err error
		room, err = game.UpgradeRoom(next, strings.TrimSpace(roomID))
		return err
	})
	if err != nil {
		return RoomResponse{}, err
	}
	return RoomResponse{Room: room, State: out.State}, nil
}

func (u UseCase) Craft(ctx context.Context, itemType string) (EquipmentResponse, error) {
	cat := u.Session.Catalog()
	var item roster.Equipment
	out, err := u.run(ctx, OpCraft, func(next *game.State, r dice.Rand) error {
		var err error
		item, err = game.Craft(next, cat, itemType, r)
		return err
	})
	if err != nil {
		return EquipmentResponse{}, err
	}
	return EquipmentResponse{Equipment: item, State: out.State}, nil
}

func (u UseCase) Repair(ctx context.Context, equipmentID string) (Response, error) {
	cat := u.Session.Catalog()
	return u.run(ctx, OpRepair, func(next *game.State, _ dice.Rand) error {
		return game.Repair(next, cat, strings.TrimSpace(equipmentID))
	})
}

func (u UseCase) Equip(ctx context.Context, equipmentID, daemonID string) (Response, error) {
	return u.run(ctx, OpEquip, func(next *game.State, _ dice.Rand) error {
		return game.Equip(next, strings.TrimSpace(equipmentID), strings.TrimSpace(daemonID))
	})
}

func (u UseCase) Unequip(ctx context.Context, equipmentID string) (Response, error) {
	return u.run(ctx, OpUnequip, func(next *game.State, _ dice.Rand) error {
		return game.Unequip(next, strings.TrimSpace(equipmentID))
	})
}

func (u UseCase) run(ctx context.Context, op string, fn func(*game.State, dice.Rand) error) (Response, error) {
	state, err := u.Session.Mutate(ctx, op, fn)
	if err != nil {
		return Response{}, err
	}
	return Response{State: status.View(state, u.Session.Catalog())}, nil
}
