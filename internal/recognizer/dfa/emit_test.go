package dfa

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

func Test_Emit_AStarB_FileSet(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDFA(aStarB)
	if !assert.NoError(err) {
		return
	}
	a, err := Build(raw)
	if !assert.NoError(err) {
		return
	}

	files, err := Emit(a)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(files, "dfa.h")
	assert.Contains(files, "get_sym.h")
	assert.Contains(files, "dfa_s.h")
	assert.Contains(files, "dfa_t.h")

	assert.Contains(files["dfa_t.h"], "#define RECOGNIZED")
	assert.Contains(files["dfa_s.h"], "CUR_SYM == A_a")
	assert.Contains(files["dfa_s.h"], "CUR_SYM == A_b")
	assert.Contains(files["dfa.h"], `#include "dfa_s.h"`)
}
