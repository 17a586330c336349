package dpda

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

func Test_Emit_BalancedParens_FileSet(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseDPDA(balancedParens)
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

	files, err := Emit(az)
	if !assert.NoError(err) {
		return
	}

	assert.Contains(files, "dpda.h")
	assert.Contains(files, "get_sym.h")
	assert.Contains(files, "dpda_s.h")
	assert.Contains(files, "dpda_s_empty.h")

	assert.Contains(files["dpda.h"], "#line ST_Z")
	assert.Contains(files["dpda_s.h"], "TOP(__LINE__) == ST_Z")
	assert.Contains(files["dpda_s.h"], "#define RECOGNIZED")
	assert.NotContains(files["dpda_s_empty.h"], `#include "get_sym.h"`)
}
