package desc

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/stretchr/testify/assert"
)

func Test_ParseDFA_AStarB(t *testing.T) {
	assert := assert.New(t)

	raw, err := ParseDFA(`
		alphabet={a,b}
		states={s,t}
		initial=s
		final={t}
		transitions={(s,a)->s,(s,b)->t}
	`)

	if !assert.NoError(err) {
		return
	}

	assert.ElementsMatch([]string{"a", "b"}, raw.Alphabet)
	assert.ElementsMatch([]string{"s", "t"}, raw.States)
	assert.Equal("s", raw.Initial)
	assert.Equal([]string{"t"}, raw.Final)
	assert.Equal([]model.RawDFATransition{
		{From: "s", Symbol: "a", To: "s"},
		{From: "s", Symbol: "b", To: "t"},
	}, raw.Transitions)
}

func Test_ParseDFA_EmptyFinalSet(t *testing.T) {
	assert := assert.New(t)

	raw, err := ParseDFA(`alphabet={a} states={s} initial=s final={} transitions={(s,a)->s}`)

	if assert.NoError(err) {
		assert.Empty(raw.Final)
	}
}

func Test_ParseDFA_WrongClauseOrder(t *testing.T) {
	assert := assert.New(t)

	_, err := ParseDFA(`states={s} alphabet={a} initial=s final={} transitions={}`)

	if assert.Error(err) {
		ce, ok := ppcerrors.As(err)
		if assert.True(ok) {
			assert.Equal(ppcerrors.Structural, ce.Kind)
		}
	}
}

func Test_ParseCTR_ZeroDetectingCounter(t *testing.T) {
	assert := assert.New(t)

	raw, err := ParseCTR(`
		alphabet={a,b}
		states={s,t}
		initial=s
		final={t}
		transitions={(s,a,)->(s,i),(s,b,p)->(s,d),(s,,z)->(t,)}
	`)

	if !assert.NoError(err) {
		return
	}

	assert.Equal([]model.RawCTRTransition{
		{From: "s", Symbol: "a", Guard: model.GuardAny, To: "s", Action: model.ActionInc},
		{From: "s", Symbol: "b", Guard: model.GuardPositive, To: "s", Action: model.ActionDec},
		{From: "s", Symbol: model.Epsilon, Guard: model.GuardZero, To: "t", Action: model.ActionNop},
	}, raw.Transitions)
}

func Test_ParseDPDA_BalancedParens(t *testing.T) {
	assert := assert.New(t)

	raw, err := ParseDPDA(`
		alphabet={a,b}
		states={s}
		initial=s
		final={s}
		stack={Z,X}
		bottom=Z
		transitions={(s,a,Z)->(s,ZX),(s,a,X)->(s,XX),(s,b,X)->(s,)}
	`)

	if !assert.NoError(err) {
		return
	}

	assert.Equal("Z", raw.Bottom)
	assert.ElementsMatch([]string{"Z", "X"}, raw.Stack)
	assert.Equal([]model.RawDPDATransition{
		{From: "s", Symbol: "a", Top: "Z", To: "s", Push: []string{"Z", "X"}},
		{From: "s", Symbol: "a", Top: "X", To: "s", Push: []string{"X", "X"}},
		{From: "s", Symbol: "b", Top: "X", To: "s", Push: nil},
	}, raw.Transitions)
}

func Test_SplitFlavorComment(t *testing.T) {
	assert := assert.New(t)

	flavor, rest, found := SplitFlavorComment("# flavor: dpda\nalphabet={a}")
	assert.True(found)
	assert.Equal(model.DPDA, flavor)
	assert.Equal("\nalphabet={a}", rest)

	_, _, found = SplitFlavorComment("alphabet={a}")
	assert.False(found)
}
