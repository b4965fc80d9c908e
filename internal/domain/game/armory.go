package game

import (
	"fmt"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/roster"
)

const (
	craftBaseDurability     = 60
	craftDurabilityPerLevel = 10
)

// CraftedDurability is the durability of freshly forged gear.
func CraftedDurability(forgeLevel int) int {
	return roster.ClampStat(craftBaseDurability + craftDurabilityPerLevel*forgeLevel)
}

// Craft forges an unassigned item of the given specialization.
func Craft(s *State, cat Catalog, itemType string, r dice.Rand) (roster.Equipment, error) {
	spec, ok := roster.ParseSpecialization(itemType)
	if !ok {
		return roster.Equipment{}, fmt.Errorf("%w: %q", ErrUnknownItemType, itemType)
	}
	tmpl, ok := cat.Template(spec)
	if !ok {
		return roster.Equipment{}, fmt.Errorf("%w: no template for %s", ErrUnknownItemType, spec)
	}
	cost := cat.Prices.Craft
	if !s.Ledger.Spend(cost) {
		return roster.Equipment{}, fmt.Errorf("%w: crafting costs %d, have %d", ErrInsufficientCredits, cost, s.Ledger.Credits)
	}
	item := roster.Equipment{
		ID:         dice.UUID(r),
		Name:       tmpl.Name,
		Type:       spec,
		Durability: CraftedDurability(s.Roster.RoomLevel(roster.ItemForge)),
		Ability:    tmpl.Ability,
	}
	s.Roster.Equipment = append(s.Roster.Equipment, item)

	s.Record(EventEquipmentCrafted, map[string]any{"equipment_id": item.ID, "type": string(spec), "durability": item.Durability, "cost": cost})
	s.Notify(SeveritySuccess, "Forged %s (durability %d)", item.Name, item.Durability)
	return item, nil
}

// RepairCost is what restoring the item to full durability costs.
func RepairCost(cat Catalog, item roster.Equipment) int {
	return (roster.MaxStat - item.Durability) * cat.Prices.RepairPerDurability
}

func Repair(s *State, cat Catalog, equipmentID string) error {
	item, ok := s.Roster.Item(equipmentID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEquipment, equipmentID)
	}
	if item.Durability >= roster.MaxStat {
		return fmt.Errorf("%w: %s", ErrEquipmentIntact, item.Name)
	}
	cost := RepairCost(cat, *item)
	if !s.Ledger.Spend(cost) {
		return fmt.Errorf("%w: repairing %s costs %d, have %d", ErrInsufficientCredits, item.Name, cost, s.Ledger.Credits)
	}
	before := item.Durability
	item.Durability = roster.MaxStat

	s.Record(EventEquipmentRepaired, map[string]any{"equipment_id": item.ID, "from": before, "cost": cost})
	s.Notify(SeveritySuccess, "%s repaired for %d credits", item.Name, cost)
	return nil
}

// Equip hands the item to an active daemon. The daemon's previous item, and
// the item's previous holder, are released.
func Equip(s *State, equipmentID, daemonID string) error {
	item, ok := s.Roster.Item(equipmentID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEquipment, equipmentID)
	}
	d, ok := s.Roster.Daemon(daemonID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownDaemon, daemonID)
	}
	if !d.Active {
		return fmt.Errorf("%w: %s", ErrDaemonInactive, d.Name)
	}
	previous := item.AssignedTo
	s.Roster.Assign(equipmentID, daemonID)

	payload := map[string]any{"equipment_id": equipmentID, "daemon_id": daemonID}
	if previous != "" && previous != daemonID {
		payload["previous_daemon_id"] = previous
	}
	s.Record(EventEquipmentAssigned, payload)
	s.Notify(SeverityInfo, "%s equipped with %s", d.Name, item.Name)
	return nil
}

func Unequip(s *State, equipmentID string) error {
	item, ok := s.Roster.Item(equipmentID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEquipment, equipmentID)
	}
	if !item.Assigned() {
		return fmt.Errorf("%w: %s", ErrNotAssigned, item.Name)
	}
	holder := item.AssignedTo
	s.Roster.Unassign(equipmentID)

	s.Record(EventEquipmentUnassigned, map[string]any{"equipment_id": equipmentID, "daemon_id": holder})
	s.Notify(SeverityInfo, "%s returned to the armory", item.Name)
	return nil
}
