package ctr

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

// anbn is the one-counter description of {a^n b^n : n >= 0}: count a's up
// (guard any, action inc), then while the counter is positive consume b's
// down, accepting only once the counter returns to zero.
const anbn = `
	alphabet={a,b}
	states={s,t,u}
	initial=s
	final={u}
	transitions={(s,a,)->(s,i),(s,,z)->(t,),(t,b,p)->(t,d),(t,,z)->(u,)}
`

func Test_Build_Anbn(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseCTR(anbn)
	if !assert.NoError(err) {
		return
	}

	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("s", a.G.Start)
	assert.True(a.G.IsFinal("u"))
	assert.True(a.Consume["s"], "start state has no incoming edges, vacuously consuming")
	assert.True(a.HasNoConsumeVariant["t"], "t is entered by an epsilon transition")
	assert.True(a.HasNoConsumeVariant["u"], "u is entered by an epsilon transition")
}

func Test_Build_UnknownReference(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseCTR(`
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
