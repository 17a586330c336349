// Package pipeline is the one compile path every front end (the CLI's
// compile/trace subcommands, and the HTTP compile service) drives: resolve
// the flavor, parse, build, atomize (DPDA only), consult the build cache,
// and emit. It exists so the CLI and server can never diverge on what a
// compile actually does — only on how the result reaches the caller.
package pipeline

import (
	"fmt"

	"github.com/dekarrin/ppauto/internal/cache"
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/ctr"
	"github.com/dekarrin/ppauto/internal/recognizer/desc"
	"github.com/dekarrin/ppauto/internal/recognizer/dfa"
	"github.com/dekarrin/ppauto/internal/recognizer/dpda"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// Result is what a compile produces: the resolved flavor, the emitted
// header files keyed by name, and the sizing info a caller (the server's
// job record, the CLI's summary line) wants to report.
type Result struct {
	Flavor  model.Flavor
	Files   map[string]string
	States  int
	Symbols int
	Cached  bool
}

// Options controls how Compile resolves the flavor and whether it
// consults the build cache.
type Options struct {
	// Flavor, if non-empty, overrides any "# flavor:" comment in text. It
	// is a structural error for both to be absent.
	Flavor model.Flavor

	// CacheDir, if non-empty, is where cache entries are read from and
	// written to. An empty CacheDir disables the cache entirely.
	CacheDir string

	// NoCache disables cache reads and writes even when CacheDir is set.
	NoCache bool
}

// ResolveFlavor strips a leading "# flavor:" comment from text (if
// present) and decides the effective flavor: opts.Flavor wins if given,
// otherwise the comment's flavor, otherwise a structural error.
func ResolveFlavor(text string, opts Options) (model.Flavor, string, error) {
	commentFlavor, rest, found := desc.SplitFlavorComment(text)

	flavor := opts.Flavor
	if flavor == "" {
		if !found {
			return "", text, ppcerrors.Structuralf("no --flavor given and description has no \"# flavor:\" comment")
		}
		flavor = commentFlavor
	}

	if found {
		text = rest
	}

	return flavor, text, nil
}

// Compile runs the full parse -> build -> atomize -> emit pipeline over
// text and returns the emitted header set. A cache hit skips build and
// atomize but never skips Emit: headers are always (re)written from
// whatever Automaton ends up in hand, cached or freshly built.
func Compile(text string, opts Options) (Result, error) {
	flavor, body, err := ResolveFlavor(text, opts)
	if err != nil {
		return Result{}, err
	}

	useCache := opts.CacheDir != "" && !opts.NoCache
	key := ""
	if useCache {
		key = cache.Key(body)
	}

	switch flavor {
	case model.DFA:
		return compileDFA(body, flavor, opts.CacheDir, useCache, key)
	case model.CTR:
		return compileCTR(body, flavor, opts.CacheDir, useCache, key)
	case model.DPDA:
		return compileDPDA(body, flavor, opts.CacheDir, useCache, key)
	default:
		return Result{}, ppcerrors.Structuralf("unknown flavor %q", flavor)
	}
}

func compileDFA(text string, flavor model.Flavor, dir string, useCache bool, key string) (Result, error) {
	var a *dfa.Automaton
	cached := false

	if useCache {
		var snap dfa.Snapshot
		hit, err := cache.Load(dir, string(flavor), key, &snap)
		if err == nil && hit {
			a = dfa.FromSnapshot(snap)
			cached = true
		}
	}

	if a == nil {
		raw, err := desc.ParseDFA(text)
		if err != nil {
			return Result{}, err
		}
		a, err = dfa.Build(raw)
		if err != nil {
			return Result{}, err
		}
		if useCache {
			snap := a.Snapshot()
			_ = cache.Store(dir, string(flavor), key, &snap)
		}
	}

	files, err := dfa.Emit(a)
	if err != nil {
		return Result{}, err
	}

	return Result{Flavor: flavor, Files: files, States: len(a.G.States()), Symbols: len(a.Alphabet), Cached: cached}, nil
}

func compileCTR(text string, flavor model.Flavor, dir string, useCache bool, key string) (Result, error) {
	var a *ctr.Automaton
	cached := false

	if useCache {
		var snap ctr.Snapshot
		hit, err := cache.Load(dir, string(flavor), key, &snap)
		if err == nil && hit {
			a = ctr.FromSnapshot(snap)
			cached = true
		}
	}

	if a == nil {
		raw, err := desc.ParseCTR(text)
		if err != nil {
			return Result{}, err
		}
		a, err = ctr.Build(raw)
		if err != nil {
			return Result{}, err
		}
		if useCache {
			snap := a.Snapshot()
			_ = cache.Store(dir, string(flavor), key, &snap)
		}
	}

	files, err := ctr.Emit(a)
	if err != nil {
		return Result{}, err
	}

	return Result{Flavor: flavor, Files: files, States: len(a.G.States()), Symbols: len(a.Alphabet), Cached: cached}, nil
}

func compileDPDA(text string, flavor model.Flavor, dir string, useCache bool, key string) (Result, error) {
	var az *dpda.Atomized
	cached := false

	if useCache {
		var snap dpda.Snapshot
		hit, err := cache.Load(dir, string(flavor), key, &snap)
		if err == nil && hit {
			az = dpda.FromSnapshot(snap)
			cached = true
		}
	}

	if az == nil {
		raw, err := desc.ParseDPDA(text)
		if err != nil {
			return Result{}, err
		}
		a, err := dpda.Build(raw)
		if err != nil {
			return Result{}, err
		}
		az, err = dpda.Atomize(a)
		if err != nil {
			return Result{}, err
		}
		if useCache {
			snap := az.Snapshot()
			_ = cache.Store(dir, string(flavor), key, &snap)
		}
	}

	files, err := dpda.Emit(az)
	if err != nil {
		return Result{}, err
	}

	return Result{Flavor: flavor, Files: files, States: len(az.G.States()), Symbols: len(az.Alphabet), Cached: cached}, nil
}

// Summary renders a one-line human-readable description of a Result, used
// by the CLI's compile command and the server's job log line.
func (r Result) Summary() string {
	hit := "miss"
	if r.Cached {
		hit = "hit"
	}
	return fmt.Sprintf("%s: %d states, %d symbols, %d files (cache %s)", r.Flavor, r.States, r.Symbols, len(r.Files), hit)
}
