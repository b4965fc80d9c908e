package roster

import (
	"math/rand"
	"testing"
)

func testStore() Store {
	return Store{
		Daemons: []Daemon{
			{ID: "d1", Name: "Azrak", Specialization: Combat, Health: 90, Morale: 70, LifespanDays: 10, Active: true, Quirks: []string{"a", "b"}},
			{ID: "d2", Name: "Belch", Specialization: Bureaucracy, Health: 60, Morale: 50, LifespanDays: 4, Active: true},
		},
		Equipment: []Equipment{
			{ID: "e1", Name: "Shiv", Type: Combat, Durability: 90, AssignedTo: "d1"},
			{ID: "e2", Name: "Stamp", Type: Bureaucracy, Durability: 40},
		},
		Rooms:   []Room{{ID: "r1", Name: CommandCenter, Level: 2, UpgradeCost: 300}},
		Planets: []Planet{{ID: "p1", Name: "Gloom", Difficulty: Hard}},
	}
}

func TestStore_EquipmentOfIsDerivedFromAssignment(t *testing.T) {
	s := testStore()
	item, ok := s.EquipmentOf("d1")
	if !ok || item.ID != "e1" {
		t.Fatalf("expected e1 for d1, got %+v ok=%v", item, ok)
	}
	if _, ok := s.EquipmentOf("d2"); ok {
		t.Fatalf("d2 should hold nothing")
	}
	if _, ok := s.EquipmentOf(""); ok {
		t.Fatalf("empty id must not match unassigned gear")
	}
}

func TestStore_AssignKeepsOneToOne(t *testing.T) {
	s := testStore()

	if !s.Assign("e2", "d1") {
		t.Fatalf("assign failed")
	}
	e1, _ := s.Item("e1")
	e2, _ := s.Item("e2")
	if e1.Assigned() {
		t.Fatalf("previous item should be released, assigned to %q", e1.AssignedTo)
	}
	if e2.AssignedTo != "d1" {
		t.Fatalf("e2 assigned to %q want d1", e2.AssignedTo)
	}

	if !s.Assign("e2", "d2") {
		t.Fatalf("reassign failed")
	}
	if _, ok := s.EquipmentOf("d1"); ok {
		t.Fatalf("d1 should hold nothing after item moved")
	}
	if s.Assign("missing", "d1") || s.Assign("e1", "missing") {
		t.Fatalf("assign with unknown ids should fail")
	}
}

func TestStore_RetireWithoutLegacyKeepsItemOnRetiree(t *testing.T) {
	s := testStore()
	if got := s.Retire("d1", 5, false); got != nil {
		t.Fatalf("expected no recovered item, got %+v", got)
	}
	d, _ := s.Daemon("d1")
	if d.Active || d.LifespanDays != 0 || d.RetiredDay != 5 {
		t.Fatalf("unexpected retiree state: %+v", d)
	}
	item, _ := s.Item("e1")
	if item.AssignedTo != "d1" || item.Durability != 90 {
		t.Fatalf("item should stay untouched: %+v", item)
	}
}

func TestStore_RetireWithLegacyRecoversItem(t *testing.T) {
	s := testStore()
	got := s.Retire("d1", 3, true)
	if got == nil || got.ID != "e1" {
		t.Fatalf("expected e1 recovered, got %+v", got)
	}
	if got.Durability != 100 {
		t.Fatalf("durability should cap at 100, got %d", got.Durability)
	}
	if got.Assigned() {
		t.Fatalf("recovered item should be unassigned")
	}
}

func TestStore_CloneIsDeep(t *testing.T) {
	s := testStore()
	s.Planets[0].LastMission = &MissionRecord{Day: 1}
	s.Pool = []Candidate{{Daemon: Daemon{ID: "c1", Quirks: []string{"x"}}, Cost: 100}}

	c := s.Clone()
	c.Daemons[0].Health = 1
	c.Daemons[0].Quirks[0] = "changed"
	c.Equipment[0].Durability = 1
	c.Planets[0].LastMission.Day = 99
	c.Pool[0].Daemon.Quirks[0] = "changed"
	c.Rooms[0].Level = 9

	if s.Daemons[0].Health != 90 || s.Daemons[0].Quirks[0] != "a" {
		t.Fatalf("daemon leaked through clone: %+v", s.Daemons[0])
	}
	if s.Equipment[0].Durability != 90 || s.Rooms[0].Level != 2 {
		t.Fatalf("equipment or room leaked through clone")
	}
	if s.Planets[0].LastMission.Day != 1 || s.Pool[0].Daemon.Quirks[0] != "x" {
		t.Fatalf("planet record or pool leaked through clone")
	}
}

func TestGenerator_DaemonWithinBounds(t *testing.T) {
	g := Generator{
		Names:  NamePool{Prefixes: []string{"Vex", "Mor"}, Suffixes: []string{"goth", "zul"}},
		Quirks: []string{"hums", "bites", "sulks", "naps"},
		Cost:   100,
	}
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		d := g.Daemon(r, 4)
		if d.Health < 80 || d.Health > 100 || d.Morale < 60 || d.Morale > 100 {
			t.Fatalf("stats out of range: %+v", d)
		}
		if d.LifespanDays < 30 || d.LifespanDays > 60 {
			t.Fatalf("lifespan out of range: %d", d.LifespanDays)
		}
		if len(d.Quirks) != 2 || d.Quirks[0] == d.Quirks[1] {
			t.Fatalf("expected 2 distinct quirks, got %v", d.Quirks)
		}
		if !d.Active || d.RecruitedDay != 4 || d.ID == "" || d.Name == "" {
			t.Fatalf("unexpected recruit: %+v", d)
		}
	}
	pool := g.Candidates(r, 1, 3)
	if len(pool) != 3 || pool[0].Cost != 100 {
		t.Fatalf("unexpected candidates: %+v", pool)
	}
}

func TestParseSpecialization(t *testing.T) {
	cases := map[string]Specialization{
		"Combat":          Combat,
		"soul_harvesting": SoulHarvesting,
		"soul-harvesting": SoulHarvesting,
		"INFILTRATION":    Infiltration,
	}
	for raw, want := range cases {
		got, ok := ParseSpecialization(raw)
		if !ok || got != want {
			t.Fatalf("parse %q: got=%q ok=%v want=%q", raw, got, ok, want)
		}
	}
	if _, ok := ParseSpecialization("Necromancy"); ok {
		t.Fatalf("unknown specialization accepted")
	}
}

func TestRoom_Bonus(t *testing.T) {
	if got := (Room{Name: LivingQuarters, Level: 2}).Bonus(); got != "+10 morale per day" {
		t.Fatalf("bonus: %q", got)
	}
	if got := (Room{Name: CommandCenter}).Bonus(); got != "inactive" {
		t.Fatalf("bonus at level 0: %q", got)
	}
}
