// Package ctr builds and emits one-counter automata: the automaton builder
// of spec.md 4.2 specialized to CTR transitions (q,σ,c)->(q',α), plus the
// per-state header emitter of spec.md 4.5 and the counter encoding of
// spec.md 4.7 for the CTR flavor.
package ctr

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/automaton"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/internal/util"
)

// Edge is a CTR transition's payload.
type Edge struct {
	Symbol string
	Guard  model.CounterGuard
	To     string
	Action model.CounterAction
}

// Automaton is a built, validated CTR ready for encoding and emission.
type Automaton struct {
	Alphabet []string
	G        *automaton.Graph[Edge]

	// Consume[q] is true iff every incoming edge into q consumes a symbol,
	// per spec.md 3's derived CTR "consume" attribute. A state with no
	// incoming edges at all (the initial state, typically) is vacuously
	// consuming.
	Consume map[string]bool

	// HasNoConsumeVariant[q] is true iff q is reachable by at least one
	// epsilon transition, meaning ctr_q_no_consume.h must also be emitted.
	HasNoConsumeVariant map[string]bool
}

func edgeTarget(e Edge) string { return e.To }

// Build validates raw against spec.md 3's invariants (CTR multiple outgoing
// edges per state are allowed; determinism among them is the writer's
// responsibility, per spec.md 3) and computes the derived "consume"
// attribute.
func Build(raw model.RawCTR) (*Automaton, error) {
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

	incomingEpsilon := map[string]bool{}

	for _, tr := range raw.Transitions {
		if !states.Has(tr.From) {
			return nil, ppcerrors.Referencef("transition references unknown state %q", tr.From)
		}
		if !states.Has(tr.To) {
			return nil, ppcerrors.Referencef("transition references unknown state %q", tr.To)
		}
		if tr.Symbol != model.Epsilon && tr.Symbol != model.EndMarker && !alphabet.Has(tr.Symbol) {
			return nil, ppcerrors.Referencef("transition references unknown symbol %q", tr.Symbol)
		}

		g.AddEdge(tr.From, Edge{Symbol: tr.Symbol, Guard: tr.Guard, To: tr.To, Action: tr.Action})

		if tr.Symbol == model.Epsilon {
			incomingEpsilon[tr.To] = true
		}
	}

	if err := g.Validate(edgeTarget); err != nil {
		return nil, err
	}

	consume := map[string]bool{}
	noConsumeVariant := map[string]bool{}
	for _, s := range raw.States {
		// A state entered by at least one epsilon edge is not "entered only
		// by non-epsilon transitions"; a state with no incoming edges at
		// all is vacuously consuming (incomingEpsilon is false for it too).
		consume[s] = !incomingEpsilon[s]
		noConsumeVariant[s] = incomingEpsilon[s]
	}

	return &Automaton{
		Alphabet:            raw.Alphabet,
		G:                   g,
		Consume:             consume,
		HasNoConsumeVariant: noConsumeVariant,
	}, nil
}
