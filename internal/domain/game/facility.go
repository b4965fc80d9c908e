package game

import (
	"fmt"
	"math"

	"infernocorp/internal/domain/roster"
)

const UpgradeCostMultiplier = 1.5

// NextUpgradeCost is floor(cost × 1.5).
func NextUpgradeCost(cost int) int {
	return int(math.Floor(float64(cost) * UpgradeCostMultiplier))
}

func UpgradeRoom(s *State, roomID string) (roster.Room, error) {
	room, ok := s.Roster.Room(roomID)
	if !ok {
		return roster.Room{}, fmt.Errorf("%w: %s", ErrUnknownRoom, roomID)
	}
	cost := room.UpgradeCost
	if !s.Ledger.Spend(cost) {
		return roster.Room{}, fmt.Errorf("%w: upgrading %s costs %d, have %d", ErrInsufficientCredits, room.Name, cost, s.Ledger.Credits)
	}
	room.Level++
	room.UpgradeCost = NextUpgradeCost(cost)

	s.Record(EventRoomUpgraded, map[string]any{"room_id": room.ID, "level": room.Level, "cost": cost, "next_cost": room.UpgradeCost})
	s.Notify(SeveritySuccess, "%s upgraded to level %d (%s)", room.Name, room.Level, room.Bonus())
	return *room, nil
}
