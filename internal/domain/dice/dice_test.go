package dice

import (
	"math/rand"
	"testing"
)

func TestBetween_StaysInHalfOpenRange(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		v := Between(r, 10, 40)
		if v < 10 || v >= 40 {
			t.Fatalf("value out of range: %d", v)
		}
	}
	if got := Between(r, 5, 5); got != 5 {
		t.Fatalf("empty range: got=%d want=5", got)
	}
}

func TestPercent_StaysBelowHundred(t *testing.T) {
	s := &Script{Floats: []float64{0, 0.5, 0.999999}}
	for _, want := range []float64{0, 50, 99.9999} {
		got := Percent(s)
		if got < want-0.001 || got > want+0.001 || got >= 100 {
			t.Fatalf("percent mismatch: got=%v want=%v", got, want)
		}
	}
}

func TestUUID_IsDeterministicForSeed(t *testing.T) {
	a := UUID(rand.New(rand.NewSource(42)))
	b := UUID(rand.New(rand.NewSource(42)))
	c := UUID(rand.New(rand.NewSource(43)))
	if a != b {
		t.Fatalf("same seed produced different ids: %s vs %s", a, b)
	}
	if a == c {
		t.Fatalf("different seeds produced the same id: %s", a)
	}
	if len(a) != 36 {
		t.Fatalf("unexpected uuid length: %d", len(a))
	}
}

func TestScript_RepeatsLastValueAndClamps(t *testing.T) {
	s := &Script{Floats: []float64{0.1, 0.2}, Ints: []int{3, 99}}
	if s.Float64() != 0.1 || s.Float64() != 0.2 || s.Float64() != 0.2 {
		t.Fatalf("unexpected float sequence")
	}
	if got := s.Intn(10); got != 3 {
		t.Fatalf("intn: got=%d want=3", got)
	}
	if got := s.Intn(10); got != 9 {
		t.Fatalf("intn clamp: got=%d want=9", got)
	}
}

func TestPick_EmptySliceReturnsZero(t *testing.T) {
	if got := Pick(&Script{}, []string{}); got != "" {
		t.Fatalf("expected zero value, got %q", got)
	}
	if got := Pick(&Script{Ints: []int{1}}, []string{"a", "b"}); got != "b" {
		t.Fatalf("pick: got=%q want=b", got)
	}
}
