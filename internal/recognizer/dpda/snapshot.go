package dpda

import "github.com/dekarrin/ppauto/internal/recognizer/automaton"

// Snapshot is Atomized flattened to exported fields only, for the build
// cache (internal/cache) to encode with rezi.
type Snapshot struct {
	Alphabet []string
	Stack    []string
	Bottom   string
	Graph    automaton.Snapshot[Atom]
	Empty    map[string]bool
}

// Snapshot flattens az for caching.
func (az *Atomized) Snapshot() Snapshot {
	return Snapshot{
		Alphabet: az.Alphabet,
		Stack:    az.Stack,
		Bottom:   az.Bottom,
		Graph:    az.G.Snapshot(),
		Empty:    az.Empty,
	}
}

// FromSnapshot rebuilds an Atomized previously flattened with Snapshot.
func FromSnapshot(s Snapshot) *Atomized {
	return &Atomized{
		Alphabet: s.Alphabet,
		Stack:    s.Stack,
		Bottom:   s.Bottom,
		G:        automaton.FromSnapshot(s.Graph),
		Empty:    s.Empty,
	}
}
