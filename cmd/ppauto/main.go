/*
Ppauto compiles DFA, one-counter (CTR), and deterministic pushdown (DPDA)
descriptions into C preprocessor header families that decide language
membership at preprocess time.

Usage:

	ppauto compile <description-file> <output-dir> [flags]
	ppauto trace <description-file> [flags]
	ppauto serve [flags]
	ppauto --version

Run "ppauto <subcommand> -h" for the flags accepted by that subcommand.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/version"
	"github.com/spf13/pflag"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitCompileError indicates a structural, reference, duplicate
	// transition, or dead-end failure in the description being compiled.
	ExitCompileError

	// ExitIOError indicates a failure reading the description or writing
	// output files.
	ExitIOError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing a subcommand (bad flags, bad config, bad server
	// setup) rather than the description itself.
	ExitInitError
)

var returnCode = ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	if len(os.Args) < 2 {
		usage()
		returnCode = ExitInitError
		return
	}

	sub := os.Args[1]
	if sub == "-v" || sub == "--version" {
		fmt.Printf("%s\n", version.Current)
		return
	}

	args := os.Args[2:]

	switch sub {
	case "compile":
		returnCode = runCompile(args)
	case "trace":
		returnCode = runTrace(args)
	case "serve":
		returnCode = runServe(args)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\nDo -h for help.\n", sub)
		returnCode = ExitInitError
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:

  ppauto compile <description-file> <output-dir> [--flavor dfa|ctr|dpda] [--config FILE] [--no-cache]
  ppauto trace   <description-file> [--flavor dfa|ctr|dpda] [--config FILE]
  ppauto serve   [--listen ADDR] [--secret SECRET] [--db DRIVER[:PARAMS]] [--config FILE]
  ppauto --version
`)
}

// reportCompileErr renders err to stderr and returns the exit code its
// ppcerrors.Kind maps to, or ExitInitError if err is not a *CompileError.
func reportCompileErr(err error) int {
	if cerr, ok := ppcerrors.As(err); ok {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", cerr.Error())
		if cerr.Kind == ppcerrors.IO {
			return ExitIOError
		}
		return ExitCompileError
	}
	fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
	return ExitInitError
}

// newFlagSet builds a pflag.FlagSet for a subcommand that exits the whole
// process on a parse error rather than pflag's default of os.Exit(2),
// keeping exit codes within ppauto's own taxonomy.
func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	return fs
}
