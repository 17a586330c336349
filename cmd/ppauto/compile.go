package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dekarrin/ppauto/internal/config"
	"github.com/dekarrin/ppauto/internal/pipeline"
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/fsio"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

func runCompile(args []string) int {
	fs := newFlagSet("compile")
	flagFlavor := fs.String("flavor", "", "Flavor of the description: dfa, ctr, or dpda. Overrides any \"# flavor:\" comment in the file.")
	flagConfig := fs.String("config", "", "Path to a TOML config file. Defaults to .ppauto.toml in the working directory if present.")
	flagNoCache := fs.Bool("no-cache", false, "Disable the build cache for this compile.")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		return ExitInitError
	}

	rest := fs.Args()
	if len(rest) != 2 {
		fmt.Fprintf(os.Stderr, "expected a description file and an output directory\nDo compile -h for help.\n")
		return ExitInitError
	}
	descFile, outDir := rest[0], rest[1]

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: load config: %s\n", err.Error())
		return ExitInitError
	}

	var flavor model.Flavor
	if fs.Lookup("flavor").Changed {
		f, ok := model.ParseFlavor(*flagFlavor)
		if !ok {
			fmt.Fprintf(os.Stderr, "ERROR: %q is not a valid flavor (want dfa, ctr, or dpda)\n", *flagFlavor)
			return ExitInitError
		}
		flavor = f
	}

	raw, err := os.ReadFile(descFile)
	if err != nil {
		return reportCompileErr(ppcerrors.WrapIO(descFile, err))
	}

	opts := pipeline.Options{
		Flavor:   flavor,
		CacheDir: cfg.CacheDir,
		NoCache:  *flagNoCache,
	}

	result, err := pipeline.Compile(string(raw), opts)
	if err != nil {
		return reportCompileErr(err)
	}

	if err := fsio.WriteAll(outDir, result.Files); err != nil {
		return reportCompileErr(err)
	}
	for name := range result.Files {
		log.Printf("DEBUG wrote %s/%s", outDir, name)
	}

	cacheNote := ""
	if result.Cached {
		cacheNote = " (cache hit)"
	}
	log.Printf("INFO  compiled %s: %d states, %d symbols, %d files%s", result.Flavor, result.States, result.Symbols, len(result.Files), cacheNote)

	return ExitSuccess
}
