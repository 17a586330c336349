package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/dekarrin/ppauto/internal/cache"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/dekarrin/ppauto/internal/recognizer/dfa"
	"github.com/stretchr/testify/assert"
)

const evenOnes = `
	alphabet={0,1}
	states={even,odd}
	initial=even
	final={even}
	transitions={(even,0,even),(even,1,odd),(odd,0,odd),(odd,1,even)}
`

func Test_Cache_MissThenHit(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	key := cache.Key(evenOnes)

	var loaded dfa.Snapshot
	hit, err := cache.Load(dir, "dfa", key, &loaded)
	if !assert.NoError(err) {
		return
	}
	assert.False(hit)

	raw, err := desc.ParseDFA(evenOnes)
	if !assert.NoError(err) {
		return
	}
	built, err := dfa.Build(raw)
	if !assert.NoError(err) {
		return
	}

	snap := built.Snapshot()
	if !assert.NoError(cache.Store(dir, "dfa", key, &snap)) {
		return
	}

	hit, err = cache.Load(dir, "dfa", key, &loaded)
	if !assert.NoError(err) {
		return
	}
	if !assert.True(hit) {
		return
	}

	restored := dfa.FromSnapshot(loaded)
	assert.Equal(built.Alphabet, restored.Alphabet)
	assert.Equal(built.G.Start, restored.G.Start)
	assert.True(restored.G.IsFinal("even"))
	assert.Equal(built.G.EdgeCount("even"), restored.G.EdgeCount("even"))
}

func Test_Cache_MissingDirIsNotAnError(t *testing.T) {
	assert := assert.New(t)

	var loaded dfa.Snapshot
	hit, err := cache.Load(filepath.Join(t.TempDir(), "nope"), "dfa", "deadbeef", &loaded)
	assert.NoError(err)
	assert.False(hit)
}
