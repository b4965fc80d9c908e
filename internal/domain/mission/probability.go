// Package mission resolves deployments: success odds, casualties, rewards
// and their application to the game state.
package mission

import (
	"math"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/roster"
)

// Member is a daemon as deployed, with the item it carries (nil if none).
type Member struct {
	Daemon    roster.Daemon
	Equipment *roster.Equipment
}

func (m Member) durability() int {
	if m.Equipment == nil {
		return 0
	}
	return m.Equipment.Durability
}

// Chance is the clamped success probability and its rounded display value.
type Chance struct {
	Raw     float64 `json:"raw"`
	Display int     `json:"display"`
}

// SuccessChance scores a team against a planet. An empty team scores the
// floor.
func SuccessChance(team []Member, planet roster.Planet, commandCenterLevel int) Chance {
	if len(team) == 0 {
		return newChance(MinSuccessChance)
	}
	chance := baseSuccessChance
	if syn, ok := synergies[planet.Difficulty]; ok {
		for _, m := range team {
			if m.Daemon.Specialization == syn.spec {
				chance += syn.bonus
				break
			}
		}
	}

	var health, morale float64
	for _, m := range team {
		health += float64(m.Daemon.Health)
		morale += float64(m.Daemon.Morale)
		if m.durability() > 0 {
			chance += equippedMemberBonus
		}
	}
	n := float64(len(team))
	chance += healthWeight * (health/n - conditionPivot)
	chance += moraleWeight * (morale/n - conditionPivot)

	if commandCenterLevel > 0 {
		chance += commandCenterBonus * float64(commandCenterLevel)
	}
	chance -= difficultyPenalty[planet.Difficulty]
	return newChance(chance)
}

func newChance(raw float64) Chance {
	raw = math.Max(MinSuccessChance, math.Min(MaxSuccessChance, raw))
	return Chance{Raw: raw, Display: int(math.Round(raw))}
}

// SurvivalChance is one member's odds of coming back.
func SurvivalChance(m Member, planet roster.Planet, success bool) float64 {
	chance := baseSurvival
	if !success {
		chance -= failedMissionPenalty
	}
	if planet.Difficulty == roster.Hard {
		chance -= hardPlanetPenalty
	}
	if m.Daemon.Health < woundedBelow {
		chance -= woundedPenalty
	}
	if m.Daemon.Morale < demoralizedBelow {
		chance -= demoralizedPenalty
	}
	if m.durability() > sturdyGearAbove {
		chance += sturdyGearBonus
	}
	return chance
}

// Casualty is one member's fate. The losses are rolled for everyone but
// only applied to survivors.
type Casualty struct {
	DaemonID       string  `json:"daemon_id"`
	Name           string  `json:"name"`
	Survived       bool    `json:"survived"`
	SurvivalChance float64 `json:"survival_chance"`
	HealthLoss     int     `json:"health_loss"`
	MoraleLoss     int     `json:"morale_loss"`
	LifespanLoss   int     `json:"lifespan_loss"`
	Retired        bool    `json:"retired"`
	LegacyRecovery bool    `json:"legacy_recovery"`
}

// RollCasualties draws survival then the three losses, member by member.
func RollCasualties(team []Member, planet roster.Planet, success bool, r dice.Rand) []Casualty {
	out := make([]Casualty, 0, len(team))
	for _, m := range team {
		chance := SurvivalChance(m, planet, success)
		c := Casualty{
			DaemonID:       m.Daemon.ID,
			Name:           m.Daemon.Name,
			SurvivalChance: chance,
		}
		c.Survived = dice.Percent(r) < chance
		c.HealthLoss = dice.Between(r, healthLossMin, healthLossMax)
		c.MoraleLoss = dice.Between(r, moraleLossMin, moraleLossMax)
		c.LifespanLoss = dice.Between(r, lifespanLossMin, lifespanLossMax)
		out = append(out, c)
	}
	return out
}

// Rewards pays the full table on success and a floored share on failure.
func Rewards(planet roster.Planet, success bool) economy.Resources {
	full := rewardTable[planet.Difficulty]
	if success {
		return full
	}
	return economy.Resources{
		Credits:              share(full.Credits, failureCreditTenths),
		SoulEssence:          share(full.SoulEssence, failureOtherTenths),
		BureaucraticLeverage: share(full.BureaucraticLeverage, failureOtherTenths),
		RawMaterials:         share(full.RawMaterials, failureOtherTenths),
	}
}

func share(v, tenths int) int {
	return v * tenths / 10
}
