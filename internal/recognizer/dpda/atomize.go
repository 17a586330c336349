package dpda

import (
	"fmt"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/automaton"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/internal/util"
)

// AtomKind distinguishes the single-stack-action atom forms spec.md 4.3
// rewrites every (q,σ,γ)->(q',w) transition into.
type AtomKind int

const (
	// AtomPop consumes the top of stack without replacing it (w = ε).
	AtomPop AtomKind = iota
	// AtomReplace pops the top and pushes a single symbol onto the
	// remaining stack.
	AtomReplace
	// AtomPush pushes one symbol on top of the currently exposed top,
	// without otherwise touching the stack; used for every symbol of a
	// |w|>=2 push string after the first.
	AtomPush
)

// Atom is one single-action DPDA transition produced by atomization. Only
// the first atom of a chain consumes the original input symbol; interior
// atoms are epsilon.
type Atom struct {
	From   string
	Symbol string
	Top    string
	Kind   AtomKind
	Pushed string // the symbol replacing or being pushed onto Top
	To     string
}

// Atomized is a built automaton with every transition reduced to a single
// stack action, ready for stack-encoding and emission.
type Atomized struct {
	Alphabet []string
	Stack    []string
	Bottom   string
	G        *automaton.Graph[Atom]

	// Empty[q] is true iff q is reachable by a non-push atom (pop or
	// replace), meaning dpda_q_empty.h must be emitted for it per spec.md
	// 4.5.
	Empty map[string]bool
}

func atomTarget(a Atom) string { return a.To }

// Atomize rewrites a's multi-symbol push transitions into the single-action
// atom chains of spec.md 4.3, fixing both bugs spec.md 9 names as open
// questions rather than reproducing them:
//
//   - the push-string membership check below validates each pushed symbol
//     against Γ (a.Stack), never the transition's top symbol;
//   - synthetic intermediate states are namespaced by a counter local to
//     this call, not by reusing the originating state's name, so two
//     transitions leaving the same state with push strings of length >= 2
//     never collide.
//
// A transition (q,σ,γ)->(q',w1...wk) becomes: a replace atom that consumes
// σ, tests γ, and sets the top to w1; then k-1 epsilon push atoms stacking
// w2, w3, ..., wk in turn, so wk - the last symbol written - ends up on top,
// matching spec.md 3's definition of w.
func Atomize(a *Automaton) (*Atomized, error) {
	stack := util.StringSetOf(a.Stack)

	g := automaton.New[Atom]()
	for _, s := range a.G.States() {
		g.AddState(s, a.G.IsFinal(s))
	}

	empty := map[string]bool{}
	synthCounter := 0
	nextSynthetic := func(origin string) string {
		synthCounter++
		return fmt.Sprintf("%s.%d", origin, synthCounter)
	}

	for _, from := range a.G.States() {
		for _, tr := range a.G.Edges(from) {
			for _, s := range tr.Push {
				if !stack.Has(s) {
					return nil, ppcerrors.Referencef("transition pushes unknown stack symbol %q", s)
				}
			}

			if len(tr.Push) == 0 {
				g.AddEdge(from, Atom{From: from, Symbol: tr.Symbol, Top: tr.Top, Kind: AtomPop, To: tr.To})
				empty[tr.To] = true
				continue
			}

			cur := from
			curTop := tr.Top
			curSymbol := tr.Symbol
			for i, pushed := range tr.Push {
				var to string
				if i == len(tr.Push)-1 {
					to = tr.To
				} else {
					to = nextSynthetic(from)
					g.AddState(to, false)
				}

				kind := AtomPush
				if i == 0 {
					kind = AtomReplace
				}
				g.AddEdge(cur, Atom{From: cur, Symbol: curSymbol, Top: curTop, Kind: kind, Pushed: pushed, To: to})
				if kind != AtomPush {
					empty[to] = true
				}

				cur = to
				curTop = pushed
				curSymbol = model.Epsilon
			}
		}
	}

	if err := g.Validate(atomTarget); err != nil {
		return nil, err
	}

	return &Atomized{
		Alphabet: a.Alphabet,
		Stack:    a.Stack,
		Bottom:   a.Bottom,
		G:        g,
		Empty:    empty,
	}, nil
}
