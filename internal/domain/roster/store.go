package roster

// Store owns every entity. Lookups go through ids; the daemon/equipment
// relation lives only on Equipment.AssignedTo.
type Store struct {
	Daemons   []Daemon    `json:"daemons"`
	Equipment []Equipment `json:"equipment"`
	Rooms     []Room      `json:"rooms"`
	Planets   []Planet    `json:"planets"`
	Pool      []Candidate `json:"recruitment_pool"`
}

func (s *Store) Daemon(id string) (*Daemon, bool) {
	for i := range s.Daemons {
		if s.Daemons[i].ID == id {
			return &s.Daemons[i], true
		}
	}
	return nil, false
}

func (s *Store) Item(id string) (*Equipment, bool) {
	for i := range s.Equipment {
		if s.Equipment[i].ID == id {
			return &s.Equipment[i], true
		}
	}
	return nil, false
}

func (s *Store) Room(id string) (*Room, bool) {
	for i := range s.Rooms {
		if s.Rooms[i].ID == id {
			return &s.Rooms[i], true
		}
	}
	return nil, false
}

func (s *Store) RoomByName(name RoomName) (*Room, bool) {
	for i := range s.Rooms {
		if s.Rooms[i].Name == name {
			return &s.Rooms[i], true
		}
	}
	return nil, false
}

// RoomLevel returns 0 when the room is missing.
func (s *Store) RoomLevel(name RoomName) int {
	r, ok := s.RoomByName(name)
	if !ok {
		return 0
	}
	return r.Level
}

func (s *Store) Planet(id string) (*Planet, bool) {
	for i := range s.Planets {
		if s.Planets[i].ID == id {
			return &s.Planets[i], true
		}
	}
	return nil, false
}

func (s *Store) Candidate(id string) (int, bool) {
	for i := range s.Pool {
		if s.Pool[i].Daemon.ID == id {
			return i, true
		}
	}
	return -1, false
}

// EquipmentOf is the derived Daemon.equipment lookup.
func (s *Store) EquipmentOf(daemonID string) (*Equipment, bool) {
	if daemonID == "" {
		return nil, false
	}
	for i := range s.Equipment {
		if s.Equipment[i].AssignedTo == daemonID {
			return &s.Equipment[i], true
		}
	}
	return nil, false
}

func (s *Store) ActiveDaemons() []*Daemon {
	out := make([]*Daemon, 0, len(s.Daemons))
	for i := range s.Daemons {
		if s.Daemons[i].Active {
			out = append(out, &s.Daemons[i])
		}
	}
	return out
}

// Assign gives the item to the daemon. Whatever the daemon held before is
// released, and the item leaves its previous holder.
func (s *Store) Assign(itemID, daemonID string) bool {
	item, ok := s.Item(itemID)
	if !ok {
		return false
	}
	if _, ok := s.Daemon(daemonID); !ok {
		return false
	}
	if held, ok := s.EquipmentOf(daemonID); ok && held.ID != itemID {
		held.AssignedTo = ""
	}
	item.AssignedTo = daemonID
	return true
}

func (s *Store) Unassign(itemID string) bool {
	item, ok := s.Item(itemID)
	if !ok || !item.Assigned() {
		return false
	}
	item.AssignedTo = ""
	return true
}

// Retire permanently deactivates a daemon. With recoverLegacy its item is
// refurbished by LegacyDurabilityBonus and returned to the armory; otherwise
// the item stays with the retired daemon. Returns the recovered item, if any.
func (s *Store) Retire(daemonID string, day int, recoverLegacy bool) *Equipment {
	d, ok := s.Daemon(daemonID)
	if !ok {
		return nil
	}
	d.Active = false
	d.LifespanDays = 0
	if d.RetiredDay == 0 {
		d.RetiredDay = day
	}
	if !recoverLegacy {
		return nil
	}
	item, ok := s.EquipmentOf(daemonID)
	if !ok {
		return nil
	}
	item.Durability = ClampStat(item.Durability + LegacyDurabilityBonus)
	item.AssignedTo = ""
	return item
}

// LegacyDurabilityBonus is restored to a retired daemon's recovered gear.
const LegacyDurabilityBonus = 20

func (s Store) Clone() Store {
	out := Store{
		Daemons:   make([]Daemon, len(s.Daemons)),
		Equipment: append([]Equipment(nil), s.Equipment...),
		Rooms:     append([]Room(nil), s.Rooms...),
		Planets:   make([]Planet, len(s.Planets)),
		Pool:      make([]Candidate, len(s.Pool)),
	}
	for i, d := range s.Daemons {
		out.Daemons[i] = d.clone()
	}
	for i, p := range s.Planets {
		if p.LastMission != nil {
			rec := *p.LastMission
			p.LastMission = &rec
		}
		out.Planets[i] = p
	}
	for i, c := range s.Pool {
		c.Daemon = c.Daemon.clone()
		out.Pool[i] = c
	}
	return out
}

func (d Daemon) clone() Daemon {
	d.Quirks = append([]string(nil), d.Quirks...)
	return d
}
