package pipeline

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/stretchr/testify/assert"
)

const dfaDesc = `# flavor: dfa
alphabet={0,1}
states={even,odd}
initial=even
final={even}
transitions={(even,0,even),(even,1,odd),(odd,0,odd),(odd,1,even)}
`

func Test_Compile_DFA_UsesFlavorComment(t *testing.T) {
	assert := assert.New(t)

	res, err := Compile(dfaDesc, Options{})
	if !assert.NoError(err) {
		return
	}

	assert.Equal(model.DFA, res.Flavor)
	assert.Equal(2, res.States)
	assert.Equal(2, res.Symbols)
	assert.Contains(res.Files, "dfa_even.h")
	assert.False(res.Cached)
}

func Test_Compile_MissingFlavorIsStructuralError(t *testing.T) {
	assert := assert.New(t)

	_, err := Compile("alphabet={a}\nstates={s}\ninitial=s\nfinal={s}\ntransitions={(s,a,s)}\n", Options{})
	assert.Error(err)
}

func Test_Compile_CacheHitMatchesFreshBuild(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	opts := Options{CacheDir: dir}

	first, err := Compile(dfaDesc, opts)
	if !assert.NoError(err) {
		return
	}
	assert.False(first.Cached)

	second, err := Compile(dfaDesc, opts)
	if !assert.NoError(err) {
		return
	}
	assert.True(second.Cached)
	assert.Equal(first.Files, second.Files)
}

func Test_Compile_FlavorOverrideWinsOverComment(t *testing.T) {
	assert := assert.New(t)

	res, err := Compile(dfaDesc, Options{Flavor: model.DFA})
	if !assert.NoError(err) {
		return
	}
	assert.Equal(model.DFA, res.Flavor)
}
