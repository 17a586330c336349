// Package dfa builds and emits deterministic finite automata: the
// automaton builder of spec.md 4.2 specialized to DFA transitions
// (q,a)->q', plus the per-state header emitter of spec.md 4.5 for the DFA
// flavor.
package dfa

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/automaton"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/internal/util"
)

// Edge is a DFA transition's payload: the input symbol and the successor
// state.
type Edge struct {
	Symbol string
	To     string
}

// Automaton is a built, validated DFA ready for encoding and emission.
type Automaton struct {
	Alphabet []string
	G        *automaton.Graph[Edge]
}

func edgeTarget(e Edge) string { return e.To }

// Build validates raw against the invariants of spec.md 3 (initial and
// final states exist, every transition endpoint exists, every alphabet
// symbol used is declared, no two transitions leave the same state on the
// same symbol, and no non-final state is a dead end) and returns the
// corresponding Automaton.
func Build(raw model.RawDFA) (*Automaton, error) {
	states := util.StringSetOf(raw.States)
	alphabet := util.StringSetOf(raw.Alphabet)

	if len(alphabet) != len(raw.Alphabet) {
		return nil, ppcerrors.Referencef("alphabet contains a duplicate symbol")
	}
	if len(states) != len(raw.States) {
		return nil, ppcerrors.Referencef("states contains a duplicate name")
	}
	if raw.Initial == "" || !states.Has(raw.Initial) {
		return nil, ppcerrors.Referencef("initial state %q is not in states", raw.Initial)
	}
	for _, f := range raw.Final {
		if !states.Has(f) {
			return nil, ppcerrors.Referencef("final state %q is not in states", f)
		}
	}

	final := util.StringSetOf(raw.Final)

	g := automaton.New[Edge]()
	g.Start = raw.Initial
	for _, s := range raw.States {
		g.AddState(s, final.Has(s))
	}

	seen := map[[2]string]bool{}
	for _, tr := range raw.Transitions {
		if !states.Has(tr.From) {
			return nil, ppcerrors.Referencef("transition references unknown state %q", tr.From)
		}
		if !states.Has(tr.To) {
			return nil, ppcerrors.Referencef("transition references unknown state %q", tr.To)
		}
		if !alphabet.Has(tr.Symbol) {
			return nil, ppcerrors.Referencef("transition references unknown symbol %q", tr.Symbol)
		}

		key := [2]string{tr.From, tr.Symbol}
		if seen[key] {
			return nil, ppcerrors.DuplicateTransitionf("state %q has more than one transition on symbol %q", tr.From, tr.Symbol)
		}
		seen[key] = true

		g.AddEdge(tr.From, Edge{Symbol: tr.Symbol, To: tr.To})
	}

	if err := g.Validate(edgeTarget); err != nil {
		return nil, err
	}

	return &Automaton{Alphabet: raw.Alphabet, G: g}, nil
}
