package game

import (
	"fmt"

	"infernocorp/internal/domain/dice"
	"infernocorp/internal/domain/economy"
	"infernocorp/internal/domain/roster"
)

// ItemTemplate is what the Item Forge produces for a specialization.
type ItemTemplate struct {
	Type    roster.Specialization `json:"type" yaml:"type"`
	Name    string                `json:"name" yaml:"name"`
	Ability string                `json:"ability" yaml:"ability"`
}

type Prices struct {
	Recruit             int `json:"recruit" yaml:"recruit"`
	PoolRefresh         int `json:"pool_refresh" yaml:"pool_refresh"`
	Craft               int `json:"craft" yaml:"craft"`
	RepairPerDurability int `json:"repair_per_durability" yaml:"repair_per_durability"`
}

// Catalog is the static content a new game starts from.
type Catalog struct {
	StartingResources economy.Resources  `json:"starting_resources" yaml:"starting_resources"`
	Prices            Prices             `json:"prices" yaml:"prices"`
	PoolSize          int                `json:"pool_size" yaml:"pool_size"`
	Planets           []roster.Planet    `json:"planets" yaml:"planets"`
	Rooms             []roster.Room      `json:"rooms" yaml:"rooms"`
	Roster            []roster.Daemon    `json:"roster" yaml:"roster"`
	Equipment         []roster.Equipment `json:"equipment" yaml:"equipment"`
	Items             []ItemTemplate     `json:"items" yaml:"items"`
	Names             roster.NamePool    `json:"names" yaml:"names"`
	Quirks            []string           `json:"quirks" yaml:"quirks"`
}

func (c Catalog) Generator() roster.Generator {
	return roster.Generator{Names: c.Names, Quirks: c.Quirks, Cost: c.Prices.Recruit}
}

func (c Catalog) Template(t roster.Specialization) (ItemTemplate, bool) {
	for _, it := range c.Items {
		if it.Type == t {
			return it, true
		}
	}
	return ItemTemplate{}, false
}

func (c Catalog) Validate() error {
	if c.PoolSize <= 0 {
		return fmt.Errorf("catalog: pool_size must be positive, got %d", c.PoolSize)
	}
	if c.Prices.Recruit < 0 || c.Prices.PoolRefresh < 0 || c.Prices.Craft < 0 || c.Prices.RepairPerDurability < 0 {
		return fmt.Errorf("catalog: prices must be non-negative")
	}
	if len(c.Planets) == 0 {
		return fmt.Errorf("catalog: at least one planet is required")
	}
	seen := map[string]bool{}
	for _, p := range c.Planets {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("catalog: planet id %q is empty or duplicated", p.ID)
		}
		seen[p.ID] = true
		if !p.Difficulty.Valid() {
			return fmt.Errorf("catalog: planet %s has invalid difficulty %q", p.ID, p.Difficulty)
		}
	}
	rooms := map[roster.RoomName]bool{}
	for _, r := range c.Rooms {
		if r.ID == "" || seen[r.ID] {
			return fmt.Errorf("catalog: room id %q is empty or duplicated", r.ID)
		}
		seen[r.ID] = true
		if r.Level < 0 || r.UpgradeCost < 0 {
			return fmt.Errorf("catalog: room %s has negative level or cost", r.ID)
		}
		if rooms[r.Name] {
			return fmt.Errorf("catalog: room name %q is duplicated", r.Name)
		}
		rooms[r.Name] = true
	}
	for _, name := range roster.RoomNames {
		if !rooms[name] {
			return fmt.Errorf("catalog: missing room %q", name)
		}
	}
	daemons := map[string]bool{}
	for _, d := range c.Roster {
		if d.ID == "" || seen[d.ID] {
			return fmt.Errorf("catalog: daemon id %q is empty or duplicated", d.ID)
		}
		seen[d.ID] = true
		if _, ok := roster.ParseSpecialization(string(d.Specialization)); !ok {
			return fmt.Errorf("catalog: daemon %s has unknown specialization %q", d.ID, d.Specialization)
		}
		daemons[d.ID] = true
	}
	holders := map[string]string{}
	for _, e := range c.Equipment {
		if e.ID == "" || seen[e.ID] {
			return fmt.Errorf("catalog: equipment id %q is empty or duplicated", e.ID)
		}
		seen[e.ID] = true
		if e.Durability < roster.MinStat || e.Durability > roster.MaxStat {
			return fmt.Errorf("catalog: equipment %s durability %d outside 0..%d", e.ID, e.Durability, roster.MaxStat)
		}
		if e.AssignedTo == "" {
			continue
		}
		if !daemons[e.AssignedTo] {
			return fmt.Errorf("catalog: equipment %s assigned to unknown daemon %q", e.ID, e.AssignedTo)
		}
		if other, ok := holders[e.AssignedTo]; ok {
			return fmt.Errorf("catalog: daemon %s holds both %s and %s", e.AssignedTo, other, e.ID)
		}
		holders[e.AssignedTo] = e.ID
	}
	for _, s := range roster.Specializations {
		if _, ok := c.Template(s); !ok {
			return fmt.Errorf("catalog: missing item template for %q", s)
		}
	}
	if len(c.Quirks) < roster.QuirksPerDaemon {
		return fmt.Errorf("catalog: need at least %d quirks", roster.QuirksPerDaemon)
	}
	return nil
}

// NewState builds day one of a fresh game.
func NewState(c Catalog, r dice.Rand) *State {
	s := &State{
		Day:       1,
		Ledger:    economy.NewLedger(c.StartingResources),
		Selection: Selection{Phase: PhaseIdle},
	}
	s.Roster.Planets = append([]roster.Planet(nil), c.Planets...)
	s.Roster.Rooms = append([]roster.Room(nil), c.Rooms...)
	s.Roster.Equipment = append([]roster.Equipment(nil), c.Equipment...)
	for _, d := range c.Roster {
		d.Quirks = append([]string(nil), d.Quirks...)
		d.Active = d.LifespanDays > 0
		d.Health = roster.ClampStat(d.Health)
		d.Morale = roster.ClampStat(d.Morale)
		d.RecruitedDay = s.Day
		s.Roster.Daemons = append(s.Roster.Daemons, d)
	}
	s.Roster.Pool = c.Generator().Candidates(r, s.Day, c.PoolSize)
	s.Record(EventGameCreated, map[string]any{"daemons": len(s.Roster.Daemons), "planets": len(s.Roster.Planets)})
	s.Notify(SeverityInfo, "Welcome to Infernal Operations. Day %d begins.", s.Day)
	return s
}

func DefaultCatalog() Catalog {
	return Catalog{
		StartingResources: economy.Resources{Credits: 1000},
		Prices: Prices{
			Recruit:             100,
			PoolRefresh:         50,
			Craft:               150,
			RepairPerDurability: 2,
		},
		PoolSize: 3,
		Planets: []roster.Planet{
			{ID: "aurelia", Name: "Aurelia Prime", Difficulty: roster.Easy, Type: "Paradise World", Resistance: "Choir Sentinels", Reward: "150 credits, 2 soul essence"},
			{ID: "halcyon", Name: "Halcyon Drift", Difficulty: roster.Easy, Type: "Orbital Monastery", Resistance: "Pacifist Monks", Reward: "150 credits, 2 soul essence"},
			{ID: "veritas", Name: "Veritas Station", Difficulty: roster.Medium, Type: "Bureaucratic Hub", Resistance: "Angelic Auditors", Reward: "300 credits, 5 bureaucratic leverage"},
			{ID: "seraphine", Name: "Seraphine Reach", Difficulty: roster.Medium, Type: "Cathedral Moon", Resistance: "Hymn Wardens", Reward: "300 credits, 5 bureaucratic leverage"},
			{ID: "bastion", Name: "Bastion of Dawn", Difficulty: roster.Hard, Type: "Fortress World", Resistance: "Archangel Legion", Reward: "500 credits, 3 raw materials"},
			{ID: "empyrean", Name: "Empyrean Throne", Difficulty: roster.Hard, Type: "Celestial Capital", Resistance: "Seraphim Guard", Reward: "500 credits, 3 raw materials"},
		},
		Rooms: []roster.Room{
			{ID: "living-quarters", Name: roster.LivingQuarters, Level: 1, UpgradeCost: 200},
			{ID: "command-center", Name: roster.CommandCenter, Level: 0, UpgradeCost: 300},
			{ID: "training-hall", Name: roster.TrainingHall, Level: 0, UpgradeCost: 250},
			{ID: "recovery-ward", Name: roster.RecoveryWard, Level: 0, UpgradeCost: 250},
			{ID: "item-forge", Name: roster.ItemForge, Level: 1, UpgradeCost: 200},
		},
		Roster: []roster.Daemon{
			{ID: "grizzlethorn", Name: "Grizzlethorn", Specialization: roster.Combat, Health: 90, Morale: 75, LifespanDays: 25, Quirks: []string{"Collects teeth", "Hums funeral dirges"}},
			{ID: "murgatroyd", Name: "Murgatroyd", Specialization: roster.Bureaucracy, Health: 80, Morale: 65, LifespanDays: 30, Quirks: []string{"Files everything in triplicate", "Afraid of staplers"}},
			{ID: "skulkvane", Name: "Skulkvane", Specialization: roster.Infiltration, Health: 85, Morale: 70, LifespanDays: 20, Quirks: []string{"Speaks only in whispers", "Steals spoons"}},
		},
		Equipment: []roster.Equipment{
			{ID: "brimstone-cleaver", Name: "Brimstone Cleaver", Type: roster.Combat, Durability: 80, Ability: "Cleaves through celestial armor", AssignedTo: "grizzlethorn"},
			{ID: "veil-of-whispers", Name: "Veil of Whispers", Type: roster.Infiltration, Durability: 60, Ability: "Passes unseen through wards"},
		},
		Items: []ItemTemplate{
			{Type: roster.Infiltration, Name: "Veil of Whispers", Ability: "Passes unseen through wards"},
			{Type: roster.Combat, Name: "Brimstone Cleaver", Ability: "Cleaves through celestial armor"},
			{Type: roster.Sabotage, Name: "Entropy Spanner", Ability: "Unravels enemy machinery"},
			{Type: roster.Logistics, Name: "Bottomless Satchel", Ability: "Carries twice the plunder"},
			{Type: roster.Bureaucracy, Name: "Infernal Rubber Stamp", Ability: "Approves the unapprovable"},
			{Type: roster.SoulHarvesting, Name: "Reaper's Ledger", Ability: "Binds souls on contact"},
		},
		Names: roster.NamePool{
			Prefixes: []string{"Grim", "Vex", "Mor", "Skar", "Bel", "Zog", "Ash", "Nox", "Ur", "Thrak"},
			Suffixes: []string{"wick", "goth", "zul", "thorn", "mire", "gash", "bane", "rot", "fang", "moloch"},
		},
		Quirks: []string{
			"Collects teeth",
			"Hums funeral dirges",
			"Files everything in triplicate",
			"Afraid of staplers",
			"Speaks only in whispers",
			"Steals spoons",
			"Allergic to holy water",
			"Writes bad poetry",
			"Counts souls out loud",
			"Refuses to work Mondays",
			"Laughs at funerals",
			"Hoards paperclips",
		},
	}
}
