package ctr

import (
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/stretchr/testify/assert"
)

func Test_Emit_Anbn_FileSet(t *testing.T) {
	assert := assert.New(t)

	raw, err := desc.ParseCTR(anbn)
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

	for _, name := range []string{
		"ctr.h", "get_sym.h", "stab.h", "inc.h", "dec.h",
		"next2pow.h", "advance_msb.h", "advance_lsb.h", "init_ctr.h",
		"ctr_s.h", "ctr_t.h", "ctr_u.h",
		"ctr_t_no_consume.h", "ctr_u_no_consume.h",
	} {
		assert.Contains(files, name, "missing %s", name)
	}

	assert.NotContains(files, "ctr_s_no_consume.h", "s has no incoming epsilon edge")

	assert.Contains(files["get_sym.h"], "__INCLUDE_LEVEL__")
	assert.Contains(files["get_sym.h"], "- 3")
	assert.Contains(files["ctr_s.h"], "#include \"get_sym.h\"")
	assert.NotContains(files["ctr_t_no_consume.h"], "#include \"get_sym.h\"")
	assert.Contains(files["ctr_s.h"], "#include \"inc.h\"")
	assert.Contains(files["ctr_t.h"], "#include \"dec.h\"")
	assert.Contains(files["ctr_t_no_consume.h"], "IS_ZERO")
	assert.Contains(files["ctr_u.h"], "#define RECOGNIZED")
}
