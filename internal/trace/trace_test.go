package trace

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/stretchr/testify/assert"
)

func Test_Walk_DFA(t *testing.T) {
	assert := assert.New(t)

	a, err := Build(`
		alphabet={0,1}
		states={even,odd}
		initial=even
		final={even}
		transitions={(even,0,even),(even,1,odd),(odd,0,odd),(odd,1,even)}
	`, model.DFA)
	if !assert.NoError(err) {
		return
	}

	steps, accepted, err := a.Walk([]string{"1", "1"})
	if !assert.NoError(err) {
		return
	}
	assert.True(accepted)
	assert.Equal(3, len(steps))
	assert.Equal("even", steps[0].State)
	assert.Equal("odd", steps[1].State)
	assert.Equal("even", steps[2].State)
}

func Test_Walk_CTR_Anbn(t *testing.T) {
	assert := assert.New(t)

	a, err := Build(`
		alphabet={a,b}
		states={s,t,u}
		initial=s
		final={u}
		transitions={(s,a,)->(s,i),(s,,z)->(t,),(t,b,p)->(t,d),(t,,z)->(u,)}
	`, model.CTR)
	if !assert.NoError(err) {
		return
	}

	_, accepted, err := a.Walk([]string{"a", "a", "b", "b"})
	if !assert.NoError(err) {
		return
	}
	assert.True(accepted)

	_, accepted, err = a.Walk([]string{"a", "b", "b"})
	if !assert.NoError(err) {
		return
	}
	assert.False(accepted)
}

func Test_Walk_DPDA_BalancedParens(t *testing.T) {
	assert := assert.New(t)

	a, err := Build(`
		alphabet={a,b}
		states={s}
		initial=s
		final={s}
		stack={Z,X}
		bottom=Z
		transitions={(s,a,Z)->(s,ZX),(s,a,X)->(s,XX),(s,b,X)->(s,)}
	`, model.DPDA)
	if !assert.NoError(err) {
		return
	}

	steps, accepted, err := a.Walk([]string{"a", "a", "b", "b"})
	if !assert.NoError(err) {
		return
	}
	assert.True(accepted)
	assert.Equal([]string{"Z", "X"}, steps[1].Stack)
}

func Test_Walk_RejectsOnStuckTransition(t *testing.T) {
	assert := assert.New(t)

	a, err := Build(`
		alphabet={a}
		states={s,t}
		initial=s
		final={t}
		transitions={(s,a,t)}
	`, model.DFA)
	if !assert.NoError(err) {
		return
	}

	_, accepted, err := a.Walk([]string{"a", "a"})
	assert.Error(err)
	assert.False(accepted)
}
