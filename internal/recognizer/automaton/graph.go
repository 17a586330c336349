// Package automaton provides the named-state graph container shared by the
// dfa, ctr, and dpda builders: state bookkeeping, insertion order, and the
// structural checks common to all three flavors (start state exists, every
// edge targets an existing state, no non-final state is a dead end). It is
// adapted from the viable-prefix DFA container used elsewhere in this
// codebase for LALR automaton construction, generalized so the edge payload
// - a single successor for DFA, a guarded counter action for CTR, a guarded
// stack action for DPDA - is supplied by the caller instead of being a fixed
// (symbol -> state) map, since CTR and DPDA states may have more than one
// outgoing edge per symbol.
package automaton

import (
	"sort"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
)

type node[Ed any] struct {
	name     string
	final    bool
	edges    []Ed
	ordering uint64
}

// Graph is a named-state automaton over an edge type Ed supplied by the
// caller. The zero value is not usable; construct with New.
type Graph[Ed any] struct {
	order  uint64
	states map[string]*node[Ed]
	Start  string
}

// New returns an empty Graph.
func New[Ed any]() *Graph[Ed] {
	return &Graph[Ed]{states: make(map[string]*node[Ed])}
}

// AddState inserts a new state. If the state already exists its final flag
// is left unchanged.
func (g *Graph[Ed]) AddState(name string, final bool) {
	if _, ok := g.states[name]; ok {
		return
	}
	g.states[name] = &node[Ed]{name: name, final: final, ordering: g.order}
	g.order++
}

// HasState reports whether name has been added.
func (g *Graph[Ed]) HasState(name string) bool {
	_, ok := g.states[name]
	return ok
}

// IsFinal reports whether name is both present and marked final.
func (g *Graph[Ed]) IsFinal(name string) bool {
	s, ok := g.states[name]
	return ok && s.final
}

// SetFinal updates the final flag of an existing state. It is a no-op if the
// state doesn't exist.
func (g *Graph[Ed]) SetFinal(name string, final bool) {
	if s, ok := g.states[name]; ok {
		s.final = final
	}
}

// AddEdge appends an outgoing edge to name. The state must already exist.
func (g *Graph[Ed]) AddEdge(name string, e Ed) {
	s, ok := g.states[name]
	if !ok {
		panic("add edge from non-existent state: " + name)
	}
	s.edges = append(s.edges, e)
}

// Edges returns the outgoing edges of name in the order they were added, or
// nil if the state doesn't exist or has none.
func (g *Graph[Ed]) Edges(name string) []Ed {
	s, ok := g.states[name]
	if !ok {
		return nil
	}
	return s.edges
}

// EdgeCount returns len(g.Edges(name)).
func (g *Graph[Ed]) EdgeCount(name string) int {
	return len(g.Edges(name))
}

// States returns every state name, sorted alphabetically so callers get a
// deterministic walk order regardless of map iteration.
func (g *Graph[Ed]) States() []string {
	names := make([]string, 0, len(g.states))
	for k := range g.states {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// StateSnapshot is one state's rezi-encodable content: its name, final
// flag, and outgoing edges in insertion order. It exists so Graph's
// unexported node bookkeeping never has to be exported just to round-trip
// through the build cache.
type StateSnapshot[Ed any] struct {
	Name  string
	Final bool
	Edges []Ed
}

// Snapshot is a Graph flattened to exported fields only, suitable for
// rezi.EncBinary. States are ordered by the sequence they were added in,
// not alphabetically, so FromSnapshot reproduces the original ordering
// field exactly.
type Snapshot[Ed any] struct {
	Start  string
	States []StateSnapshot[Ed]
}

// Snapshot flattens g into its rezi-encodable form.
func (g *Graph[Ed]) Snapshot() Snapshot[Ed] {
	names := make([]string, 0, len(g.states))
	for k := range g.states {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool {
		return g.states[names[i]].ordering < g.states[names[j]].ordering
	})

	out := Snapshot[Ed]{Start: g.Start, States: make([]StateSnapshot[Ed], 0, len(names))}
	for _, name := range names {
		s := g.states[name]
		out.States = append(out.States, StateSnapshot[Ed]{Name: s.name, Final: s.final, Edges: s.edges})
	}
	return out
}

// FromSnapshot rebuilds a Graph previously flattened with Snapshot.
func FromSnapshot[Ed any](snap Snapshot[Ed]) *Graph[Ed] {
	g := New[Ed]()
	g.Start = snap.Start
	for _, s := range snap.States {
		g.AddState(s.Name, s.Final)
		for _, e := range s.Edges {
			g.AddEdge(s.Name, e)
		}
	}
	return g
}

// Validate checks the structural invariants common to every flavor: the
// start state exists, every edge (as resolved by target) points to an
// existing state, and every non-final state has at least one outgoing edge.
// Flavor-specific checks (DFA per-(q,a) uniqueness, CTR/DPDA reference
// validation against Σ/Γ) are the caller's responsibility; this only covers
// what spec invariant #3 and the existence half of invariant #2 require
// after a flavor's edges have already been added.
func (g *Graph[Ed]) Validate(target func(Ed) string) error {
	if _, ok := g.states[g.Start]; !ok {
		return ppcerrors.Referencef("initial state %q is not in the set of states", g.Start)
	}

	for _, name := range g.States() {
		s := g.states[name]

		if len(s.edges) == 0 && !s.final {
			return ppcerrors.DeadEndf("state %q has no outgoing transitions and is not final", name)
		}

		for _, e := range s.edges {
			to := target(e)
			if !g.HasState(to) {
				return ppcerrors.Referencef("transition from %q targets unknown state %q", name, to)
			}
		}
	}

	return nil
}
