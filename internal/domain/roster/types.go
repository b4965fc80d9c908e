package roster

import (
	"fmt"
	"strings"
)

type Specialization string

const (
	Infiltration   Specialization = "Infiltration"
	Combat         Specialization = "Combat"
	Sabotage       Specialization = "Sabotage"
	Logistics      Specialization = "Logistics"
	Bureaucracy    Specialization = "Bureaucracy"
	SoulHarvesting Specialization = "Soul Harvesting"
)

var Specializations = []Specialization{
	Infiltration,
	Combat,
	Sabotage,
	Logistics,
	Bureaucracy,
	SoulHarvesting,
}

// ParseSpecialization accepts the display name or its snake_case form.
func ParseSpecialization(raw string) (Specialization, bool) {
	key := normalize(raw)
	for _, s := range Specializations {
		if normalize(string(s)) == key {
			return s, true
		}
	}
	return "", false
}

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Rank orders difficulties by danger: Easy < Medium < Hard.
func (d Difficulty) Rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	default:
		return 0
	}
}

func (d Difficulty) Valid() bool {
	return d.Rank() > 0
}

type RoomName string

const (
	LivingQuarters RoomName = "Living Quarters"
	CommandCenter  RoomName = "Command Center"
	TrainingHall   RoomName = "Training Hall"
	RecoveryWard   RoomName = "Recovery Ward"
	ItemForge      RoomName = "Item Forge"
)

var RoomNames = []RoomName{LivingQuarters, CommandCenter, TrainingHall, RecoveryWard, ItemForge}

const (
	MinStat = 0
	MaxStat = 100
)

type Daemon struct {
	ID               string         `json:"id" yaml:"id"`
	Name             string         `json:"name" yaml:"name"`
	Specialization   Specialization `json:"specialization" yaml:"specialization"`
	Health           int            `json:"health" yaml:"health"`
	Morale           int            `json:"morale" yaml:"morale"`
	LifespanDays     int            `json:"lifespan_days" yaml:"lifespan_days"`
	Quirks           []string       `json:"quirks" yaml:"quirks"`
	Active           bool           `json:"is_active" yaml:"is_active"`
	RecruitedDay     int            `json:"recruited_day" yaml:"recruited_day"`
	RetiredDay       int            `json:"retired_day,omitempty" yaml:"retired_day,omitempty"`
	MissionsSurvived int            `json:"missions_survived" yaml:"missions_survived"`
}

// Deployable reports whether the daemon passes the mission entry guard.
func (d Daemon) Deployable() bool {
	return d.Active && d.Health > MinDeployHealth
}

// MinDeployHealth is exclusive: a daemon needs strictly more health to deploy.
const MinDeployHealth = 20

type Equipment struct {
	ID         string         `json:"id" yaml:"id"`
	Name       string         `json:"name" yaml:"name"`
	Type       Specialization `json:"type" yaml:"type"`
	Durability int            `json:"durability" yaml:"durability"`
	Ability    string         `json:"ability" yaml:"ability"`
	AssignedTo string         `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
}

func (e Equipment) Assigned() bool {
	return e.AssignedTo != ""
}

type MissionRecord struct {
	Day           int  `json:"day"`
	Success       bool `json:"success"`
	SuccessChance int  `json:"success_chance"`
}

type Planet struct {
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Difficulty  Difficulty     `json:"difficulty" yaml:"difficulty"`
	Type        string         `json:"type" yaml:"type"`
	Resistance  string         `json:"resistance" yaml:"resistance"`
	Reward      string         `json:"reward" yaml:"reward"`
	Conquered   bool           `json:"conquered" yaml:"conquered"`
	LastMission *MissionRecord `json:"last_mission,omitempty" yaml:"-"`
}

type Room struct {
	ID          string   `json:"id" yaml:"id"`
	Name        RoomName `json:"name" yaml:"name"`
	Level       int      `json:"level" yaml:"level"`
	UpgradeCost int      `json:"upgrade_cost" yaml:"upgrade_cost"`
}

// Bonus describes the room's effect at its current level.
func (r Room) Bonus() string {
	if r.Level <= 0 {
		return "inactive"
	}
	switch r.Name {
	case LivingQuarters:
		return fmt.Sprintf("+%d morale per day", 5*r.Level)
	case CommandCenter:
		return fmt.Sprintf("+%d%% mission success", 5*r.Level)
	case TrainingHall:
		return fmt.Sprintf("drills at tier %d", r.Level)
	case RecoveryWard:
		return fmt.Sprintf("+%d health per day", 15*r.Level)
	case ItemForge:
		return fmt.Sprintf("+%d durability on crafted gear", 10*r.Level)
	default:
		return ""
	}
}

// Candidate is a daemon waiting in the recruitment pool.
type Candidate struct {
	Daemon Daemon `json:"daemon"`
	Cost   int    `json:"cost"`
}

// ClampStat bounds v to [0,100].
func ClampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")
	return s
}
