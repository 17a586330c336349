package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dekarrin/ppauto/internal/config"
	"github.com/dekarrin/ppauto/internal/input"
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
	"github.com/dekarrin/ppauto/internal/trace"
	"github.com/dekarrin/rosed"
)

// traceLineWidth is the column at which a printed step sequence is
// wrapped, matching the teacher's practice of passing console output
// through rosed before printing it.
const traceLineWidth = 100

func runTrace(args []string) int {
	fs := newFlagSet("trace")
	flagFlavor := fs.String("flavor", "", "Flavor of the description: dfa, ctr, or dpda. Overrides any \"# flavor:\" comment in the file.")
	flagConfig := fs.String("config", "", "Path to a TOML config file. Defaults to .ppauto.toml in the working directory if present.")
	flagDirect := fs.BoolP("direct", "d", false, "Read words directly from stdin instead of through readline, for piping a script of words in non-interactively.")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		return ExitInitError
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fmt.Fprintf(os.Stderr, "expected a description file\nDo trace -h for help.\n")
		return ExitInitError
	}
	descFile := rest[0]

	if _, err := config.Load(*flagConfig); err != nil {
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

	automaton, err := trace.Build(string(raw), flavor)
	if err != nil {
		return reportCompileErr(err)
	}

	fmt.Printf("Built %s automaton from %s. Type a space-separated input word, or \"quit\" to exit.\n", automaton.Flavor, descFile)

	var reader input.LineReader
	if *flagDirect {
		reader = input.NewDirectReader(os.Stdin)
	} else {
		ir, err := input.NewInteractiveReader("trace> ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: start readline: %s\n", err.Error())
			return ExitInitError
		}
		reader = ir
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err != nil {
			if err == io.EOF {
				return ExitSuccess
			}
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			return ExitInitError
		}

		if line == "quit" || line == "exit" {
			return ExitSuccess
		}

		word := strings.Fields(line)
		steps, accepted, walkErr := automaton.Walk(word)
		printSteps(steps)
		if walkErr != nil {
			fmt.Printf("rejected: %s\n", walkErr.Error())
			continue
		}
		if accepted {
			fmt.Println("accepted")
		} else {
			fmt.Println("rejected: did not end in a final state")
		}
	}
}

func printSteps(steps []trace.Step) {
	var b strings.Builder
	for i, s := range steps {
		switch {
		case i == 0:
			fmt.Fprintf(&b, "start: %s", s.State)
		case s.Symbol == "":
			fmt.Fprintf(&b, " -eps-> %s", s.State)
		default:
			fmt.Fprintf(&b, " -%s-> %s", s.Symbol, s.State)
		}
		if len(s.Stack) > 0 {
			fmt.Fprintf(&b, " [%s]", strings.Join(s.Stack, " "))
		} else if s.Counter != 0 {
			fmt.Fprintf(&b, " (counter=%d)", s.Counter)
		}
	}
	fmt.Println(rosed.Edit(b.String()).Wrap(traceLineWidth).String())
}
