package dpda

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/stretchr/testify/assert"
)

// acceptAtomized walks az the way the emitted headers would: from the
// start state with a one-element stack holding the bottom symbol,
// consuming one input symbol at a time and following exactly one matching
// edge (the writer's determinism responsibility, per spec.md 3), then
// draining any further epsilon edges before checking acceptance. It is the
// Go-side model spec.md 8's atomization-preserves-language property and
// end-to-end scenario check against, since no C compiler runs in this repo.
func acceptAtomized(az *Atomized, word []string) bool {
	cur := az.G.Start
	stack := []string{az.Bottom}
	i := 0

	for {
		top := stack[len(stack)-1]
		var matched *Atom

		for _, e := range az.G.Edges(cur) {
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
				return false
			}
			return az.G.IsFinal(cur)
		}

		switch matched.Kind {
		case AtomPop:
			stack = stack[:len(stack)-1]
		case AtomReplace:
			stack[len(stack)-1] = matched.Pushed
		case AtomPush:
			stack = append(stack, matched.Pushed)
		}

		if matched.Symbol != model.Epsilon {
			i++
		}
		cur = matched.To
	}
}

func Test_Scenario_BalancedParens(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDPDA(balancedParens)
	if !assert.NoError(err) {
		return
	}
	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}
	az, err := Atomize(a)
	if !assert.NoError(err) {
		return
	}

	assert.True(acceptAtomized(az, []string{"a", "a", "b", "b"}))
	assert.True(acceptAtomized(az, []string{"a", "b"}))
	assert.False(acceptAtomized(az, []string{"a", "b", "b", "a"}))
}

func Test_Atomize_SynthesizesInteriorStates(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDPDA(`
		alphabet={a}
		states={s,t}
		initial=s
		final={t}
		stack={Z,X,Y}
		bottom=Z
		transitions={(s,a,Z)->(t,ZXY)}
	`)
	if !assert.NoError(err) {
		return
	}
	built, err := Build(raw)
	if !assert.NoError(err) {
		return
	}
	az, err := Atomize(built)
	if !assert.NoError(err) {
		return
	}

	assert.True(acceptAtomized(az, []string{"a"}))
	assert.True(az.Empty["s.1"], "interior state reached by the chain's replace atom")
	assert.False(az.Empty["t"], "t is reached by the chain's final push atom")
}
