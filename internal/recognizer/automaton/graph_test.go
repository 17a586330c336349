package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type edge struct {
	symbol string
	to     string
}

func target(e edge) string { return e.to }

func Test_Graph_Validate_OK(t *testing.T) {
	assert := assert.New(t)

	g := New[edge]()
	g.AddState("s", false)
	g.AddState("t", true)
	g.Start = "s"
	g.AddEdge("s", edge{symbol: "a", to: "s"})
	g.AddEdge("s", edge{symbol: "b", to: "t"})

	assert.NoError(g.Validate(target))
}

func Test_Graph_Validate_DeadEnd(t *testing.T) {
	assert := assert.New(t)

	g := New[edge]()
	g.AddState("s", false)
	g.Start = "s"

	err := g.Validate(target)
	if assert.Error(err) {
		assert.Contains(err.Error(), "dead end")
	}
}

func Test_Graph_Validate_UnknownTarget(t *testing.T) {
	assert := assert.New(t)

	g := New[edge]()
	g.AddState("s", true)
	g.Start = "s"
	g.AddEdge("s", edge{symbol: "a", to: "ghost"})

	err := g.Validate(target)
	if assert.Error(err) {
		assert.Contains(err.Error(), "ghost")
	}
}

func Test_Graph_Validate_MissingStart(t *testing.T) {
	assert := assert.New(t)

	g := New[edge]()
	g.AddState("s", true)
	g.Start = "nope"

	err := g.Validate(target)
	assert.Error(err)
}

func Test_Graph_States_Sorted(t *testing.T) {
	assert := assert.New(t)

	g := New[edge]()
	g.AddState("z", true)
	g.AddState("a", true)
	g.AddState("m", true)

	assert.Equal([]string{"a", "m", "z"}, g.States())
}
