package dfa

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

const aStarB = `
	alphabet={a,b}
	states={s,t}
	initial=s
	final={t}
	transitions={(s,a)->s,(s,b)->t}
`

func Test_Build_AStarB(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(aStarB)
	if !assert.NoError(err) {
		return
	}

	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("s", a.G.Start)
	assert.True(a.G.IsFinal("t"))
	assert.False(a.G.IsFinal("s"))
	assert.Equal(2, a.G.EdgeCount("s"))
}

func Test_Build_DuplicateTransition(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(`
		alphabet={a}
		states={s,t,u}
		initial=s
		final={t,u}
		transitions={(s,a)->t,(s,a)->u}
	`)
	if !assert.NoError(err) {
		return
	}

	_, err = Build(raw)
	if assert.Error(err) {
		ce, ok := ppcerrors.As(err)
		if assert.True(ok) {
			assert.Equal(ppcerrors.DuplicateTransition, ce.Kind)
		}
	}
}

func Test_Build_DeadEndNonFinal(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(`
		alphabet={a}
		states={s,t}
		initial=s
		final={}
		transitions={(s,a)->t}
	`)
	if !assert.NoError(err) {
		return
	}

	_, err = Build(raw)
	if assert.Error(err) {
		ce, ok := ppcerrors.As(err)
		if assert.True(ok) {
			assert.Equal(ppcerrors.DeadEnd, ce.Kind)
		}
	}
}

func Test_Build_UnknownReference(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(`
		alphabet={a}
		states={s}
		initial=s
		final={ghost}
		transitions={}
	`)
	if !assert.NoError(err) {
		return
	}

	_, err = Build(raw)
	if assert.Error(err) {
		ce, ok := ppcerrors.As(err)
		if assert.True(ok) {
			assert.Equal(ppcerrors.Reference, ce.Kind)
		}
	}
}

// Accept walks the built DFA the way the emitted headers would: from the
// start state, consuming one input symbol at a time, following at most one
// transition per symbol. It is the Go-side model spec.md 8's end-to-end
// scenarios check the emitted headers against, since no C compiler runs in
// this repo.
func Accept(a *Automaton, word []string) bool {
	cur := a.G.Start
	for _, sym := range word {
		next := ""
		for _, e := range a.G.Edges(cur) {
			if e.Symbol == sym {
				next = e.To
				break
			}
		}
		if next == "" {
			return false
		}
		cur = next
	}
	return a.G.IsFinal(cur)
}

func Test_Scenario_AStarB_Accepts(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(aStarB)
	if !assert.NoError(err) {
		return
	}
	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}

	assert.True(Accept(a, []string{"a", "a", "b"}))
	assert.False(Accept(a, []string{"a", "a"}))
}
