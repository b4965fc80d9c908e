package mission

import (
	"fmt"
	"strings"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/game"
	"infernocorp/internal/domain/roster"
)

// Wear is durability lost by one deployed item.
type Wear struct {
	EquipmentID string `json:"equipment_id"`
	DaemonID    string `json:"daemon_id"`
	Amount      int    `json:"amount"`
}

// Result carries every draw of a mission so that applying it is
// deterministic.
type Result struct {
	Day           int               `json:"day"`
	PlanetID      string            `json:"planet_id"`
	PlanetName    string            `json:"planet_name"`
	Difficulty    roster.Difficulty `json:"difficulty"`
	Success       bool              `json:"success"`
	SuccessChance int               `json:"success_chance"`
	RawChance     float64           `json:"raw_chance"`
	Draw          float64           `json:"draw"`
	Casualties    []Casualty        `json:"casualties"`
	Wear          []Wear            `json:"wear"`
	Rewards       economy.Resources `json:"rewards"`
	Conquered     bool              `json:"conquered"`
	Narrative     string            `json:"narrative"`
}

// Team validates a selection against the current state and returns the
// deployable members in selection order.
func Team(s *game.State, planetID string, daemonIDs []string) ([]Member, roster.Planet, error) {
	if len(daemonIDs) == 0 {
		return nil, roster.Planet{}, game.ErrEmptyTeam
	}
	planet, ok := s.Roster.Planet(planetID)
	if !ok {
		return nil, roster.Planet{}, fmt.Errorf("%w: %s", game.ErrUnknownPlanet, planetID)
	}
	seen := make(map[string]bool, len(daemonIDs))
	for _, id := range daemonIDs {
		if seen[id] {
			return nil, roster.Planet{}, fmt.Errorf("%w: %s", game.ErrDuplicateMember, id)
		}
		seen[id] = true
		if _, ok := s.Roster.Daemon(id); !ok {
			return nil, roster.Planet{}, fmt.Errorf("%w: %s", game.ErrUnknownDaemon, id)
		}
	}

	team := make([]Member, 0, len(daemonIDs))
	for _, id := range daemonIDs {
		d, _ := s.Roster.Daemon(id)
		if !d.Active {
			return nil, roster.Planet{}, fmt.Errorf("%w: %s", game.ErrDaemonInactive, d.Name)
		}
		if !d.Deployable() {
			return nil, roster.Planet{}, fmt.Errorf("%w: %s has %d health", game.ErrDaemonTooWeak, d.Name, d.Health)
		}
		m := Member{Daemon: *d}
		if item, ok := s.Roster.EquipmentOf(id); ok {
			held := *item
			m.Equipment = &held
		}
		team = append(team, m)
	}
	return team, *planet, nil
}

// Resolve draws everything a mission needs, in a fixed order: the success
// roll, each member's casualty rolls, wear for each equipped member, then
// one legacy roll per member.
func Resolve(team []Member, planet roster.Planet, commandCenterLevel int, r dice.Rand) Result {
	chance := SuccessChance(team, planet, commandCenterLevel)
	draw := dice.Percent(r)
	res := Result{
		PlanetID:      planet.ID,
		PlanetName:    planet.Name,
		Difficulty:    planet.Difficulty,
		Success:       draw < chance.Raw,
		SuccessChance: chance.Display,
		RawChance:     chance.Raw,
		Draw:          draw,
	}
	res.Casualties = RollCasualties(team, planet, res.Success, r)
	for _, m := range team {
		if m.Equipment == nil {
			continue
		}
		res.Wear = append(res.Wear, Wear{
			EquipmentID: m.Equipment.ID,
			DaemonID:    m.Daemon.ID,
			Amount:      dice.Between(r, wearMin, wearMax),
		})
	}
	for i := range res.Casualties {
		res.Casualties[i].LegacyRecovery = dice.Chance(r, LegacyRecoveryChance)
	}
	res.Rewards = Rewards(planet, res.Success)
	return res
}

// Apply writes a resolved mission onto the state: casualties, wear,
// rewards, then conquest. It fills in Retired, Conquered and Narrative.
func Apply(s *game.State, res *Result) {
	res.Day = s.Day
	for i := range res.Casualties {
		c := &res.Casualties[i]
		d, ok := s.Roster.Daemon(c.DaemonID)
		if !ok || !d.Active {
			continue
		}
		if !c.Survived {
			s.RetireDaemon(d.ID, "lost on "+res.PlanetName, c.LegacyRecovery)
			c.Retired = true
			continue
		}
		d.Health = roster.ClampStat(d.Health - c.HealthLoss)
		d.Morale = roster.ClampStat(d.Morale - c.MoraleLoss)
		d.LifespanDays = max(0, d.LifespanDays-c.LifespanLoss)
		d.MissionsSurvived++
		if d.LifespanDays == 0 {
			s.RetireDaemon(d.ID, "burned out after "+res.PlanetName, c.LegacyRecovery)
			c.Retired = true
		}
	}

	for _, w := range res.Wear {
		item, ok := s.Roster.Item(w.EquipmentID)
		// legacy recovery already returned it to the armory
		if !ok || item.AssignedTo != w.DaemonID {
			continue
		}
		item.Durability = roster.ClampStat(item.Durability - w.Amount)
	}

	s.Ledger.Add(res.Rewards)

	planet, ok := s.Roster.Planet(res.PlanetID)
	if ok {
		if res.Success && !planet.Conquered {
			planet.Conquered = true
			res.Conquered = true
		}
		planet.LastMission = &roster.MissionRecord{Day: s.Day, Success: res.Success, SuccessChance: res.SuccessChance}
	}
	res.Narrative = narrate(*res)

	s.Record(game.EventMissionResolved, map[string]any{
		"planet_id":      res.PlanetID,
		"success":        res.Success,
		"success_chance": res.SuccessChance,
		"draw":           res.Draw,
		"survivors":      survivors(res.Casualties),
		"team_size":      len(res.Casualties),
		"rewards":        res.Rewards,
	})
	if res.Conquered {
		s.Record(game.EventPlanetConquered, map[string]any{"planet_id": res.PlanetID, "name": res.PlanetName})
	}
	if res.Success {
		s.Notify(game.SeveritySuccess, "%s", res.Narrative)
	} else {
		s.Notify(game.SeverityWarning, "%s", res.Narrative)
	}
}

func survivors(cs []Casualty) int {
	n := 0
	for _, c := range cs {
		if c.Survived {
			n++
		}
	}
	return n
}

func narrate(res Result) string {
	var b strings.Builder
	if res.Success {
		fmt.Fprintf(&b, "Mission to %s succeeded (%d%% odds).", res.PlanetName, res.SuccessChance)
	} else {
		fmt.Fprintf(&b, "Mission to %s failed (%d%% odds).", res.PlanetName, res.SuccessChance)
	}
	fmt.Fprintf(&b, " %d of %d daemons returned.", survivors(res.Casualties), len(res.Casualties))
	if res.Conquered {
		fmt.Fprintf(&b, " %s now flies the corporate banner.", res.PlanetName)
	}
	if !res.Rewards.IsZero() {
		fmt.Fprintf(&b, " Earned %d credits", res.Rewards.Credits)
		if res.Rewards.SoulEssence > 0 {
			fmt.Fprintf(&b, ", %d soul essence", res.Rewards.SoulEssence)
		}
		if res.Rewards.BureaucraticLeverage > 0 {
			fmt.Fprintf(&b, ", %d bureaucratic leverage", res.Rewards.BureaucraticLeverage)
		}
		if res.Rewards.RawMaterials > 0 {
			fmt.Fprintf(&b, ", %d raw materials", res.Rewards.RawMaterials)
		}
		b.WriteString(".")
	}
	return b.String()
}
