package economy

import (
	"math/rand"
	"testing"
)

func TestLedger_SpendIsAllOrNothing(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		start := r.Intn(1000)
		cost := r.Intn(1500)
		l := NewLedger(Resources{Credits: start, SoulEssence: 3})

		ok := l.Spend(cost)
		switch {
		case cost > start:
			if ok || l.Credits != start {
				t.Fatalf("overspend mutated ledger: start=%d cost=%d got=%d ok=%v", start, cost, l.Credits, ok)
			}
		default:
			if !ok || l.Credits != start-cost {
				t.Fatalf("spend mismatch: start=%d cost=%d got=%d ok=%v", start, cost, l.Credits, ok)
			}
		}
		if l.Credits < 0 {
			t.Fatalf("negative balance after spend: %d", l.Credits)
		}
		if l.SoulEssence != 3 {
			t.Fatalf("spend touched soul essence: %d", l.SoulEssence)
		}
	}
}

func TestLedger_SpendRejectsNegativeCost(t *testing.T) {
	l := NewLedger(Resources{Credits: 10})
	if l.Spend(-5) {
		t.Fatalf("negative cost must be rejected")
	}
	if l.Credits != 10 {
		t.Fatalf("credits changed: %d", l.Credits)
	}
}

func TestLedger_AddIgnoresNegativeDeltas(t *testing.T) {
	l := NewLedger(Resources{Credits: 100, RawMaterials: 1})
	l.Add(Resources{Credits: -50, SoulEssence: 2, BureaucraticLeverage: 5, RawMaterials: -3})

	want := Resources{Credits: 100, SoulEssence: 2, BureaucraticLeverage: 5, RawMaterials: 1}
	if l.Resources != want {
		t.Fatalf("add mismatch: got=%+v want=%+v", l.Resources, want)
	}
}

func TestLedger_ChargeFloorsAtZero(t *testing.T) {
	l := NewLedger(Resources{Credits: 40})
	if got := l.Charge(100); got != 40 {
		t.Fatalf("charged: got=%d want=40", got)
	}
	if l.Credits != 0 {
		t.Fatalf("credits after charge: got=%d want=0", l.Credits)
	}
	if got := l.Charge(10); got != 0 {
		t.Fatalf("charge on empty ledger: got=%d want=0", got)
	}
}

func TestResources_Plus(t *testing.T) {
	a := Resources{Credits: 1, SoulEssence: 2}
	b := Resources{Credits: 3, RawMaterials: 4}
	if got := a.Plus(b); got != (Resources{Credits: 4, SoulEssence: 2, RawMaterials: 4}) {
		t.Fatalf("plus mismatch: %+v", got)
	}
	if !(Resources{}).IsZero() || a.IsZero() {
		t.Fatalf("IsZero mismatch")
	}
}
