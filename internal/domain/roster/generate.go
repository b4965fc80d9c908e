package roster

import "infernocorp/internal/domain/dice"

type NamePool struct {
	Prefixes []string `json:"prefixes" yaml:"prefixes"`
	Suffixes []string `json:"suffixes" yaml:"suffixes"`
}

// Generator rolls new daemons for the recruitment pool.
type Generator struct {
	Names  NamePool
	Quirks []string
	Cost   int
}

const (
	recruitHealthMin   = 80
	recruitHealthMax   = 101
	recruitMoraleMin   = 60
	recruitMoraleMax   = 101
	recruitLifespanMin = 30
	recruitLifespanMax = 61
	QuirksPerDaemon    = 2
)

func (g Generator) Daemon(r dice.Rand, day int) Daemon {
	return Daemon{
		ID:             dice.UUID(r),
		Name:           g.name(r),
		Specialization: dice.Pick(r, Specializations),
		Health:         dice.Between(r, recruitHealthMin, recruitHealthMax),
		Morale:         dice.Between(r, recruitMoraleMin, recruitMoraleMax),
		LifespanDays:   dice.Between(r, recruitLifespanMin, recruitLifespanMax),
		Quirks:         g.quirks(r),
		Active:         true,
		RecruitedDay:   day,
	}
}

func (g Generator) Candidates(r dice.Rand, day, n int) []Candidate {
	out := make([]Candidate, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Candidate{Daemon: g.Daemon(r, day), Cost: g.Cost})
	}
	return out
}

func (g Generator) name(r dice.Rand) string {
	prefix := dice.Pick(r, g.Names.Prefixes)
	suffix := dice.Pick(r, g.Names.Suffixes)
	switch {
	case prefix == "" && suffix == "":
		return "Nameless"
	case suffix == "":
		return prefix
	case prefix == "":
		return suffix
	}
	return prefix + suffix
}

// quirks draws distinct tags without replacement.
func (g Generator) quirks(r dice.Rand) []string {
	pool := append([]string(nil), g.Quirks...)
	out := make([]string, 0, QuirksPerDaemon)
	for len(out) < QuirksPerDaemon && len(pool) > 0 {
		i := r.Intn(len(pool))
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}
