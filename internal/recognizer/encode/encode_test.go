package encode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NewTable_LeadingOneCodes(t *testing.T) {
	assert := assert.New(t)

	tbl, err := NewTable([]string{"a", "b"})
	if !assert.NoError(err) {
		return
	}

	assert.Equal(2, tbl.Size)
	assert.Equal(3, tbl.Mask)

	a, ok := tbl.Code("a")
	if assert.True(ok) {
		assert.Equal(0b10, a)
	}
	b, ok := tbl.Code("b")
	if assert.True(ok) {
		assert.Equal(0b11, b)
	}
}

func Test_NewTable_DistinctCodes_NeverEnd(t *testing.T) {
	assert := assert.New(t)

	alphabet := []string{"a", "b", "c", "d", "e"}
	tbl, err := NewTable(alphabet)
	if !assert.NoError(err) {
		return
	}

	seen := map[int]bool{}
	for _, s := range alphabet {
		code, ok := tbl.Code(s)
		if !assert.True(ok) {
			continue
		}
		assert.NotEqual(End, code)
		assert.False(seen[code], "duplicate code for %q", s)
		seen[code] = true
		assert.Less(code, 1<<(tbl.Size+1))
	}
}

func Test_NewTable_DuplicateSymbol(t *testing.T) {
	_, err := NewTable([]string{"a", "a"})
	assert.Error(t, err)
}

func Test_CounterShiftGetSym_ContainsLadder(t *testing.T) {
	assert := assert.New(t)

	tbl, err := NewTable([]string{"a", "b"})
	if !assert.NoError(err) {
		return
	}

	out := tbl.CounterShiftGetSym()
	assert.Contains(out, "GET_SYM == A_a")
	assert.Contains(out, "GET_SYM == A_b")
	assert.Contains(out, "GET_SYM == END")
	assert.Equal(1, strings.Count(out, "#define GET_SYM "))
}

func Test_IncludeLevelGetSym_UsesIncludeLevel(t *testing.T) {
	assert := assert.New(t)

	tbl, err := NewTable([]string{"a"})
	if !assert.NoError(err) {
		return
	}

	out := tbl.IncludeLevelGetSym(3)
	assert.Contains(out, "__INCLUDE_LEVEL__ - 3")
}
