package dpda

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ppauto/internal/recognizer/encode"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// Emit renders the complete DPDA output file set of spec.md 6: dpda.h,
// get_sym.h, dpda_<q>.h for every state, and dpda_<q>_empty.h for every
// state reachable by a non-push atom, realizing the #line/TOP(L) stack
// encoding of spec.md 4.6 and the dispatch/action rules of spec.md 4.5.
func Emit(az *Atomized) (map[string]string, error) {
	table, err := encode.NewTable(az.Alphabet)
	if err != nil {
		return nil, err
	}
	ids := NewStackIDs(az.Stack)

	files := map[string]string{
		"get_sym.h": table.Defines() + "\n" + table.CounterShiftGetSym(),
		"dpda.h":    emitTop(az, ids),
	}

	for _, q := range az.G.States() {
		files[stateFile(q, false)] = emitState(az, table, ids, q, false)
		if az.Empty[q] {
			files[stateFile(q, true)] = emitState(az, table, ids, q, true)
		}
	}

	return files, nil
}

func stateFile(state string, empty bool) string {
	if empty {
		return fmt.Sprintf("dpda_%s_empty.h", state)
	}
	return fmt.Sprintf("dpda_%s.h", state)
}

func emitTop(az *Atomized, ids *StackIDs) string {
	var sb strings.Builder
	sb.WriteString("#ifndef DPDA_H\n#define DPDA_H\n\n")
	sb.WriteString(ids.Defines())
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%s", ids.RestampLine(az.Bottom))
	fmt.Fprintf(&sb, "#include %q\n\n", stateFile(az.G.Start, false))
	sb.WriteString("#endif /* DPDA_H */\n")
	return sb.String()
}

// emitState renders one state header. The empty variant is reached by a
// non-push atom (pop or replace): its own stack action has already
// exposed the relevant top of stack by the time control lands here, so it
// must not re-read the symbol decoder if it was reached on epsilon, and it
// participates in the TOP(L) follow-up block the same as the consuming
// variant.
//
// It carries no include guard: a state reached more than once (a loop back
// through the stack, a shared target of two different pops) must re-run its
// dispatch ladder and, for the consuming variant, re-include get_sym.h on
// every #include, not just the first (spec.md 5).
func emitState(az *Atomized, table *encode.Table, ids *StackIDs, q string, empty bool) string {
	var sb strings.Builder

	if !empty {
		sb.WriteString("#include \"get_sym.h\"\n\n")
	}

	if az.G.IsFinal(q) {
		sb.WriteString("#define RECOGNIZED\n\n")
	}

	edges := az.G.Edges(q)
	for i, e := range edges {
		if empty && e.Symbol != model.Epsilon {
			continue
		}
		kw := "#if"
		if i > 0 {
			kw = "#elif"
		}
		fmt.Fprintf(&sb, "%s %s\n", kw, edgeCondition(table, ids, e))
		if az.G.IsFinal(q) {
			sb.WriteString("    #undef RECOGNIZED\n")
		}
		emitAction(&sb, az, ids, e)
	}
	if len(edges) > 0 {
		sb.WriteString("#endif\n")
	}

	return sb.String()
}

func edgeCondition(table *encode.Table, ids *StackIDs, e Atom) string {
	var parts []string
	switch e.Symbol {
	case model.Epsilon:
	case model.EndMarker:
		parts = append(parts, "CUR_SYM == END")
	default:
		parts = append(parts, fmt.Sprintf("CUR_SYM == %s", table.MacroName(e.Symbol)))
	}
	parts = append(parts, fmt.Sprintf("TOP(__LINE__) == %s", ids.MacroName(e.Top)))
	return strings.Join(parts, " && ")
}

// emitAction performs the atom's single stack action, then includes the
// successor's appropriate variant: the consuming header if the successor is
// entered fresh from a symbol-bearing atom, the _empty variant if it was
// entered by a pop or replace (no new symbol was pushed on top of it), and
// a synthetic interior state's own (consuming-style) header for push atoms.
func emitAction(sb *strings.Builder, az *Atomized, ids *StackIDs, e Atom) {
	switch e.Kind {
	case AtomPop:
		fmt.Fprintf(sb, "    #include %q\n", stateFile(e.To, true))
	case AtomReplace:
		sb.WriteString(ids.RestampLine(e.Pushed))
		fmt.Fprintf(sb, "    #include %q\n", stateFile(e.To, true))
	case AtomPush:
		sb.WriteString(ids.RestampLine(e.Pushed))
		fmt.Fprintf(sb, "    #include %q\n", stateFile(e.To, false))
	}
}
