package mission

import (
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/roster"
)

const (
	baseSuccessChance   = 50.0
	healthWeight        = 0.3
	moraleWeight        = 0.2
	conditionPivot      = 50.0
	equippedMemberBonus = 10.0
	commandCenterBonus  = 5.0
	MinSuccessChance    = 10.0
	MaxSuccessChance    = 90.0
)

const (
	baseSurvival         = 85.0
	failedMissionPenalty = 30.0
	hardPlanetPenalty    = 20.0
	woundedPenalty       = 15.0
	woundedBelow         = 50
	demoralizedPenalty   = 10.0
	demoralizedBelow     = 40
	sturdyGearBonus      = 15.0
	sturdyGearAbove      = 50
)

// Half-open ranges [lo, hi).
const (
	healthLossMin   = 10
	healthLossMax   = 40
	moraleLossMin   = 5
	moraleLossMax   = 25
	lifespanLossMin = 1
	lifespanLossMax = 4
	wearMin         = 5
	wearMax         = 15
)

// LegacyRecoveryChance is the odds a retiree's gear returns to the armory.
const LegacyRecoveryChance = 0.3

type synergy struct {
	spec  roster.Specialization
	bonus float64
}

var synergies = map[roster.Difficulty]synergy{
	roster.Easy:   {spec: roster.Infiltration, bonus: 20},
	roster.Medium: {spec: roster.Bureaucracy, bonus: 15},
	roster.Hard:   {spec: roster.Combat, bonus: 25},
}

var difficultyPenalty = map[roster.Difficulty]float64{
	roster.Easy:   0,
	roster.Medium: 15,
	roster.Hard:   30,
}

var rewardTable = map[roster.Difficulty]economy.Resources{
	roster.Easy:   {Credits: 150, SoulEssence: 2},
	roster.Medium: {Credits: 300, BureaucraticLeverage: 5},
	roster.Hard:   {Credits: 500, RawMaterials: 3},
}

// A failed mission still pays these tenths of the table, floored.
const (
	failureCreditTenths = 3
	failureOtherTenths  = 2
)
