// Package dpda builds, atomizes, and emits deterministic pushdown automata:
// the automaton builder of spec.md 4.2 specialized to DPDA transitions
// (q,σ,γ)->(q',w), the atomizer of spec.md 4.3, the stack encoding of
// spec.md 4.6, and the per-state header emitter of spec.md 4.5 for the DPDA
// flavor.
package dpda

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/automaton"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/internal/util"
)

// Transition is a validated, pre-atomization DPDA edge payload
// (q,σ,γ)->(q',w).
type Transition struct {
	Symbol string
	Top    string
	To     string
	Push   []string
}

func edgeTarget(t Transition) string { return t.To }

// Automaton is a built, validated DPDA ready for atomization and emission.
type Automaton struct {
	Alphabet []string
	Stack    []string
	Bottom   string
	G        *automaton.Graph[Transition]
}

// Build validates raw against spec.md 3's invariants: initial/final state
// references exist, every transition endpoint and Γ reference exists, the
// push-string membership check tests each pushed symbol against Γ (spec.md
// 9's first open question, fixed rather than reproduced), and every
// non-final state has at least one outgoing transition.
func Build(raw model.RawDPDA) (*Automaton, error) {
	states := util.StringSetOf(raw.States)
	alphabet := util.StringSetOf(raw.Alphabet)
	stack := util.StringSetOf(raw.Stack)

	if len(alphabet) != len(raw.Alphabet) {
		return nil, ppcerrors.Referencef("alphabet contains a duplicate symbol")
	}
	if len(states) != len(raw.States) {
		return nil, ppcerrors.Referencef("states contains a duplicate name")
	}
	if len(stack) != len(raw.Stack) {
		return nil, ppcerrors.Referencef("stack alphabet contains a duplicate symbol")
	}
	if raw.Initial == "" || !states.Has(raw.Initial) {
		return nil, ppcerrors.Referencef("initial state %q is not in states", raw.Initial)
	}
	if raw.Bottom == "" || !stack.Has(raw.Bottom) {
		return nil, ppcerrors.Referencef("bottom symbol %q is not in the stack alphabet", raw.Bottom)
	}
	for _, f := range raw.Final {
		if !states.Has(f) {
			return nil, ppcerrors.Referencef("final state %q is not in states", f)
		}
	}

	final := util.StringSetOf(raw.Final)

	g := automaton.New[Transition]()
	g.Start = raw.Initial
	for _, s := range raw.States {
		g.AddState(s, final.Has(s))
	}

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
		if !stack.Has(tr.Top) {
			return nil, ppcerrors.Referencef("transition references unknown stack symbol %q", tr.Top)
		}
		for _, s := range tr.Push {
			if !stack.Has(s) {
				return nil, ppcerrors.Referencef("transition pushes unknown stack symbol %q", s)
			}
		}

		g.AddEdge(tr.From, Transition{
			Symbol: tr.Symbol,
			Top:    tr.Top,
			To:     tr.To,
			Push:   append([]string(nil), tr.Push...),
		})
	}

	if err := g.Validate(edgeTarget); err != nil {
		return nil, err
	}

	return &Automaton{
		Alphabet: raw.Alphabet,
		Stack:    raw.Stack,
		Bottom:   raw.Bottom,
		G:        g,
	}, nil
}
