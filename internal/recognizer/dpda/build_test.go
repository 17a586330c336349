package dpda

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

// balancedParens is the single-push/pop description of spec.md 8 scenario
// 4: push X (keeping whatever was below) on a, pop X on b, accept only at
// the bottom symbol Z.
const balancedParens = `
	alphabet={a,b}
	states={s}
	initial=s
	final={s}
	stack={Z,X}
	bottom=Z
	transitions={(s,a,Z)->(s,ZX),(s,a,X)->(s,XX),(s,b,X)->(s,)}
`

func Test_Build_BalancedParens(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDPDA(balancedParens)
	if !assert.NoError(err) {
		return
	}

	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("s", a.G.Start)
	assert.True(a.G.IsFinal("s"))
	assert.Equal("Z", a.Bottom)
	assert.Equal(3, a.G.EdgeCount("s"))
}

func Test_Build_UnknownStackSymbol(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDPDA(`
		alphabet={a}
		states={s}
		initial=s
		final={s}
		stack={Z}
		bottom=Z
		transitions={(s,a,Z)->(s,Y)}
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
