package economy

// Resources is a partial or complete table of the four currencies.
type Resources struct {
	Credits              int `json:"credits" yaml:"credits"`
	SoulEssence          int `json:"soul_essence" yaml:"soul_essence"`
	BureaucraticLeverage int `json:"bureaucratic_leverage" yaml:"bureaucratic_leverage"`
	RawMaterials         int `json:"raw_materials" yaml:"raw_materials"`
}

func (r Resources) IsZero() bool {
	return r == Resources{}
}

func (r Resources) Plus(o Resources) Resources {
	return Resources{
		Credits:              r.Credits + o.Credits,
		SoulEssence:          r.SoulEssence + o.SoulEssence,
		BureaucraticLeverage: r.BureaucraticLeverage + o.BureaucraticLeverage,
		RawMaterials:         r.RawMaterials + o.RawMaterials,
	}
}

// Ledger holds the four balances. Only credits can be spent; the other
// currencies are earn-only.
type Ledger struct {
	Resources
}

func NewLedger(start Resources) Ledger {
	l := Ledger{}
	l.Add(start)
	return l
}

func (l Ledger) CanAfford(cost int) bool {
	return cost >= 0 && cost <= l.Credits
}

// Spend deducts cost credits, or leaves the ledger untouched and returns false.
func (l *Ledger) Spend(cost int) bool {
	if !l.CanAfford(cost) {
		return false
	}
	l.Credits -= cost
	return true
}

// Add is additive only; negative fields in delta are ignored.
func (l *Ledger) Add(delta Resources) {
	l.Credits += nonNegative(delta.Credits)
	l.SoulEssence += nonNegative(delta.SoulEssence)
	l.BureaucraticLeverage += nonNegative(delta.BureaucraticLeverage)
	l.RawMaterials += nonNegative(delta.RawMaterials)
}

// Charge takes up to amount credits without going below zero and returns
// what was actually taken.
func (l *Ledger) Charge(amount int) int {
	if amount <= 0 {
		return 0
	}
	taken := min(amount, l.Credits)
	l.Credits -= taken
	return taken
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
