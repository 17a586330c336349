// Package trace builds a description's automaton without emitting any
// headers and walks it step by step, the read-only debugging aid of
// SPEC_FULL.md 4.11. It mirrors the Go-side acceptance simulators the
// flavor packages use in their own tests (dfa.Accept, dpda's
// acceptAtomized) but keeps the full step history instead of only the
// final verdict, since the REPL prints a configuration after every move.
package trace

import (
	"fmt"

	"github.com/dekarrin/ppauto/internal/pipeline"
	"github.com/dekarrin/ppauto/internal/recognizer/ctr"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/dekarrin/ppauto/internal/recognizer/dfa"
	"github.com/dekarrin/ppauto/internal/recognizer/dpda"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// maxSteps bounds an epsilon-chasing walk so a malformed description with
// an unconditional epsilon cycle can't hang the REPL.
const maxSteps = 10000

// Step is one configuration of the walk: the state landed on, the symbol
// consumed to get there ("" for an epsilon move), and whichever of
// Counter/Stack is meaningful for the flavor being walked.
type Step struct {
	State   string
	Symbol  string
	Counter int
	Stack   []string
}

// Automaton is a built (and, for DPDA, atomized) automaton ready to walk.
// Build it once per description and reuse it across many Walk calls, the
// way the trace REPL does for each line the operator types.
type Automaton struct {
	Flavor model.Flavor
	dfaA   *dfa.Automaton
	ctrA   *ctr.Automaton
	dpdaA  *dpda.Atomized
}

// Build resolves the flavor (a "# flavor:" comment in text, or override if
// non-empty), then parses and builds the automaton, atomizing it when the
// flavor is DPDA. It does not emit any headers.
func Build(text string, override model.Flavor) (*Automaton, error) {
	flavor, body, err := pipeline.ResolveFlavor(text, pipeline.Options{Flavor: override})
	if err != nil {
		return nil, err
	}

	switch flavor {
	case model.DFA:
		raw, err := desc.ParseDFA(body)
		if err != nil {
			return nil, err
		}
		a, err := dfa.Build(raw)
		if err != nil {
			return nil, err
		}
		return &Automaton{Flavor: flavor, dfaA: a}, nil

	case model.CTR:
		raw, err := desc.ParseCTR(body)
		if err != nil {
			return nil, err
		}
		a, err := ctr.Build(raw)
		if err != nil {
			return nil, err
		}
		return &Automaton{Flavor: flavor, ctrA: a}, nil

	case model.DPDA:
		raw, err := desc.ParseDPDA(body)
		if err != nil {
			return nil, err
		}
		built, err := dpda.Build(raw)
		if err != nil {
			return nil, err
		}
		az, err := dpda.Atomize(built)
		if err != nil {
			return nil, err
		}
		return &Automaton{Flavor: flavor, dpdaA: az}, nil

	default:
		return nil, fmt.Errorf("unknown flavor %q", flavor)
	}
}

// Walk consumes word one symbol at a time from the start configuration and
// returns every configuration reached (including the start) plus whether
// the final configuration is accepting. An error means word could not be
// fully consumed: no applicable transition existed partway through.
func (a *Automaton) Walk(word []string) ([]Step, bool, error) {
	switch a.Flavor {
	case model.DFA:
		return a.walkDFA(word)
	case model.CTR:
		return a.walkCTR(word)
	case model.DPDA:
		return a.walkDPDA(word)
	default:
		return nil, false, fmt.Errorf("unknown flavor %q", a.Flavor)
	}
}

func (a *Automaton) walkDFA(word []string) ([]Step, bool, error) {
	cur := a.dfaA.G.Start
	steps := []Step{{State: cur}}

	for _, sym := range word {
		next := ""
		found := false
		for _, e := range a.dfaA.G.Edges(cur) {
			if e.Symbol == sym {
				next = e.To
				found = true
				break
			}
		}
		if !found {
			return steps, false, fmt.Errorf("no transition from %q on %q", cur, sym)
		}
		cur = next
		steps = append(steps, Step{State: cur, Symbol: sym})
	}

	return steps, a.dfaA.G.IsFinal(cur), nil
}

func guardSatisfied(g model.CounterGuard, counter int) bool {
	switch g {
	case model.GuardZero:
		return counter == 0
	case model.GuardPositive:
		return counter > 0
	default:
		return true
	}
}

func (a *Automaton) walkCTR(word []string) ([]Step, bool, error) {
	cur := a.ctrA.G.Start
	counter := 0
	i := 0
	steps := []Step{{State: cur, Counter: counter}}

	for n := 0; n < maxSteps; n++ {
		var matched *ctr.Edge
		for _, e := range a.ctrA.G.Edges(cur) {
			if !guardSatisfied(e.Guard, counter) {
				continue
			}
			switch {
			case e.Symbol == model.Epsilon:
				matched = &e
			case e.Symbol == model.EndMarker && i == len(word):
				matched = &e
			case i < len(word) && e.Symbol == word[i]:
				matched = &e
			}
			if matched != nil {
				break
			}
		}

		if matched == nil {
			if i < len(word) {
				return steps, false, fmt.Errorf("no transition from %q on %q", cur, word[i])
			}
			return steps, a.ctrA.G.IsFinal(cur), nil
		}

		switch matched.Action {
		case model.ActionInc:
			counter++
		case model.ActionDec:
			counter--
		}

		consumed := ""
		if matched.Symbol != model.Epsilon && matched.Symbol != model.EndMarker {
			consumed = word[i]
			i++
		}

		cur = matched.To
		steps = append(steps, Step{State: cur, Symbol: consumed, Counter: counter})
	}

	return steps, false, fmt.Errorf("exceeded %d steps without settling; description may have an unconditional epsilon cycle", maxSteps)
}

func (a *Automaton) walkDPDA(word []string) ([]Step, bool, error) {
	cur := a.dpdaA.G.Start
	stack := []string{a.dpdaA.Bottom}
	i := 0
	steps := []Step{{State: cur, Stack: append([]string(nil), stack...)}}

	for n := 0; n < maxSteps; n++ {
		top := stack[len(stack)-1]
		var matched *dpda.Atom

		for _, e := range a.dpdaA.G.Edges(cur) {
			if e.Top != top {
				continue
			}
			if e.Symbol == model.Epsilon {
				matched = &e
				break
			}
			if i < len(word) && e.Symbol == word[i] {
				matched = &e
				break
			}
		}

		if matched == nil {
			if i < len(word) {
				return steps, false, fmt.Errorf("no transition from %q on %q with top %q", cur, word[i], top)
			}
			return steps, a.dpdaA.G.IsFinal(cur), nil
		}

		switch matched.Kind {
		case dpda.AtomPop:
			stack = stack[:len(stack)-1]
		case dpda.AtomReplace:
			stack[len(stack)-1] = matched.Pushed
		case dpda.AtomPush:
			stack = append(stack, matched.Pushed)
		}

		consumed := ""
		if matched.Symbol != model.Epsilon {
			consumed = word[i]
			i++
		}

		cur = matched.To
		steps = append(steps, Step{State: cur, Symbol: consumed, Stack: append([]string(nil), stack...)})
	}

	return steps, false, fmt.Errorf("exceeded %d steps without settling; description may have an unconditional epsilon cycle", maxSteps)
}
