package ctr

import "github.com/dekarrin/ppauto/internal/recognizer/automaton"

// Snapshot is Automaton flattened to exported fields only, for the build
// cache (internal/cache) to encode with rezi.
type Snapshot struct {
	Alphabet            []string
	Graph               automaton.Snapshot[Edge]
	Consume             map[string]bool
	HasNoConsumeVariant map[string]bool
}

// Snapshot flattens a for caching.
func (a *Automaton) Snapshot() Snapshot {
	return Snapshot{
		Alphabet:            a.Alphabet,
		Graph:               a.G.Snapshot(),
		Consume:             a.Consume,
		HasNoConsumeVariant: a.HasNoConsumeVariant,
	}
}

// FromSnapshot rebuilds an Automaton previously flattened with Snapshot.
func FromSnapshot(s Snapshot) *Automaton {
	return &Automaton{
		Alphabet:            s.Alphabet,
		G:                   automaton.FromSnapshot(s.Graph),
		Consume:             s.Consume,
		HasNoConsumeVariant: s.HasNoConsumeVariant,
	}
}
