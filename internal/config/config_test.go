package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/stretchr/testify/assert"
)

func Test_Load_Defaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("")
	if !assert.NoError(err) {
		return
	}

	assert.Equal(DefaultOutputDir, cfg.OutputDir)
	assert.Equal(model.DFA, cfg.DefaultFlavor)
	assert.Equal(DefaultListenAddr, cfg.ListenAddr)
}

func Test_Load_FileOverridesDefault(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, ".ppauto.toml")
	content := "output_dir = \"build\"\ndefault_flavor = \"ctr\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); !assert.NoError(err) {
		return
	}

	cfg, err := Load(path)
	if !assert.NoError(err) {
		return
	}

	assert.Equal("build", cfg.OutputDir)
	assert.Equal(model.CTR, cfg.DefaultFlavor)
}

func Test_Load_EnvOverridesFile(t *testing.T) {
	assert := assert.New(t)

	t.Setenv(EnvOutputDir, "from-env")

	cfg, err := Load("")
	if !assert.NoError(err) {
		return
	}

	assert.Equal("from-env", cfg.OutputDir)
}

func Test_Load_MissingFileIsNotAnError(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(err)
}
