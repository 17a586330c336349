package dfa

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ppauto/internal/recognizer/encode"
)

// Emit renders the complete DFA output file set of spec.md 6: dfa.h,
// get_sym.h, and dfa_<q>.h for every state.
func Emit(a *Automaton) (map[string]string, error) {
	table, err := encode.NewTable(a.Alphabet)
	if err != nil {
		return nil, err
	}

	files := map[string]string{
		"get_sym.h": table.Defines() + "\n" + table.CounterShiftGetSym(),
		"dfa.h":     emitTop(a),
	}

	for _, q := range a.G.States() {
		files[stateFile(q)] = emitState(a, table, q)
	}

	return files, nil
}

func stateFile(state string) string {
	return fmt.Sprintf("dfa_%s.h", state)
}

func emitTop(a *Automaton) string {
	var sb strings.Builder
	sb.WriteString("#ifndef DFA_H\n#define DFA_H\n\n")
	fmt.Fprintf(&sb, "#include %q\n\n", stateFile(a.G.Start))
	sb.WriteString("#endif /* DFA_H */\n")
	return sb.String()
}

// emitState renders a per-state dispatch header. It deliberately carries no
// include guard: a state reached by a self-loop or any other revisit must
// re-run its dispatch ladder and re-include get_sym.h to advance the
// decoder on every #include, not just the first (spec.md 5).
func emitState(a *Automaton, table *encode.Table, q string) string {
	var sb strings.Builder

	sb.WriteString("#include \"get_sym.h\"\n\n")

	if a.G.IsFinal(q) {
		sb.WriteString("#define RECOGNIZED\n\n")
	}

	edges := a.G.Edges(q)
	for i, e := range edges {
		kw := "#if"
		if i > 0 {
			kw = "#elif"
		}
		fmt.Fprintf(&sb, "%s CUR_SYM == %s\n", kw, table.MacroName(e.Symbol))
		if a.G.IsFinal(q) {
			sb.WriteString("    #undef RECOGNIZED\n")
		}
		fmt.Fprintf(&sb, "    #include %q\n", stateFile(e.To))
	}
	if len(edges) > 0 {
		sb.WriteString("#endif\n")
	}

	return sb.String()
}
