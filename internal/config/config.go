// Package config loads ppauto's ambient settings: the default output
// directory, the default flavor used when a description omits a #flavor:
// comment, log verbosity, and the HTTP server's listen address and token
// secret. Precedence, matching cmd/tqserver's flag/env/default pattern:
// flag > environment variable (PPAUTO_*) > config file > built-in default.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

const (
	EnvOutputDir   = "PPAUTO_OUTPUT_DIR"
	EnvFlavor      = "PPAUTO_FLAVOR"
	EnvVerbosity   = "PPAUTO_VERBOSITY"
	EnvListenAddr  = "PPAUTO_LISTEN_ADDRESS"
	EnvTokenSecret = "PPAUTO_TOKEN_SECRET"
	EnvCacheDir    = "PPAUTO_CACHE_DIR"

	DefaultOutputDir  = "."
	DefaultFlavor     = model.DFA
	DefaultVerbosity  = "info"
	DefaultListenAddr = "localhost:8080"
	DefaultCacheDir   = ".ppauto-cache"
)

// Config is the fully resolved settings set, after file load and
// environment/flag overrides have been applied by the caller.
type Config struct {
	OutputDir     string       `toml:"output_dir"`
	DefaultFlavor model.Flavor `toml:"default_flavor"`
	Verbosity     string       `toml:"verbosity"`
	ListenAddr    string       `toml:"listen_address"`
	TokenSecret   string       `toml:"token_secret"`
	CacheDir      string       `toml:"cache_dir"`
}

// Default returns the built-in defaults, the bottom of the precedence
// chain.
func Default() Config {
	return Config{
		OutputDir:     DefaultOutputDir,
		DefaultFlavor: DefaultFlavor,
		Verbosity:     DefaultVerbosity,
		ListenAddr:    DefaultListenAddr,
		CacheDir:      DefaultCacheDir,
	}
}

// Load resolves a Config starting from Default, overlaying a TOML file at
// path (if path is non-empty and the file exists), then environment
// variables. Flag overrides are the caller's responsibility (cmd/ppauto
// applies them after Load, using pflag.Lookup(...).Changed the way
// cmd/tqserver does), since only the CLI layer knows which flags were
// explicitly set on this invocation.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return cfg, err
			}
		} else if !os.IsNotExist(err) {
			return cfg, err
		}
	}

	applyEnv(&cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvFlavor); v != "" {
		if f, ok := model.ParseFlavor(v); ok {
			cfg.DefaultFlavor = f
		}
	}
	if v := os.Getenv(EnvVerbosity); v != "" {
		cfg.Verbosity = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv(EnvTokenSecret); v != "" {
		cfg.TokenSecret = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		cfg.CacheDir = v
	}
}
