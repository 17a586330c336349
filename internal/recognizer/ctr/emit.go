package ctr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/ppauto/internal/recognizer/encode"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// WrapperIncludeLevels is the number of #include levels between the
// top-level ctr.h and the first state header that CTR's GET_SYM derives its
// position from (ctr.h -> get_sym.h -> ctr_<start>.h). Named and derived
// here rather than left as a bare literal at the call site, per spec.md 9.
const WrapperIncludeLevels = 3

// Emit renders the complete CTR output file set of spec.md 6: ctr.h,
// get_sym.h, the counter-machine headers of spec.md 4.7, and ctr_<q>.h (plus
// ctr_<q>_no_consume.h where q has an epsilon-reachable variant) for every
// state.
func Emit(a *Automaton) (map[string]string, error) {
	table, err := encode.NewTable(a.Alphabet)
	if err != nil {
		return nil, err
	}

	files := map[string]string{
		"get_sym.h": table.Defines() + "\n" + table.IncludeLevelGetSym(WrapperIncludeLevels),
		"ctr.h":     emitTop(a),
	}
	for name, content := range counterFiles() {
		files[name] = content
	}

	for _, q := range a.G.States() {
		files[stateFile(q, false)] = emitState(a, table, q, false)
		if a.HasNoConsumeVariant[q] {
			files[stateFile(q, true)] = emitState(a, table, q, true)
		}
	}

	return files, nil
}

func stateFile(state string, noConsume bool) string {
	if noConsume {
		return fmt.Sprintf("ctr_%s_no_consume.h", state)
	}
	return fmt.Sprintf("ctr_%s.h", state)
}

func emitTop(a *Automaton) string {
	var sb strings.Builder
	sb.WriteString("#ifndef CTR_H\n#define CTR_H\n\n")
	sb.WriteString("#include \"init_ctr.h\"\n")
	fmt.Fprintf(&sb, "#include %q\n\n", stateFile(a.G.Start, false))
	sb.WriteString("#endif /* CTR_H */\n")
	return sb.String()
}

// emitState renders one state header. The noConsume variant is reached by
// an epsilon transition: it must not re-read the symbol decoder, so it
// omits the get_sym.h include and only dispatches on the epsilon-reachable
// outgoing edges (counter-guard conditions only, no CUR_SYM test).
//
// It carries no include guard: a state reached more than once (a counter
// self-loop, a shared epsilon target) must re-run its dispatch ladder and,
// for the consuming variant, re-include get_sym.h on every #include, not
// just the first (spec.md 5).
func emitState(a *Automaton, table *encode.Table, q string, noConsume bool) string {
	var sb strings.Builder

	if !noConsume {
		sb.WriteString("#include \"get_sym.h\"\n\n")
	}

	final := a.G.IsFinal(q)
	if final {
		sb.WriteString("#define RECOGNIZED\n\n")
	}

	var edges []Edge
	for _, e := range a.G.Edges(q) {
		if noConsume && e.Symbol != model.Epsilon {
			continue
		}
		edges = append(edges, e)
	}

	for i, e := range edges {
		kw := "#if"
		if i > 0 {
			kw = "#elif"
		}
		fmt.Fprintf(&sb, "%s %s\n", kw, edgeCondition(table, e))
		if final {
			sb.WriteString("    #undef RECOGNIZED\n")
		}
		emitAction(&sb, a, e)
	}
	if len(edges) > 0 {
		sb.WriteString("#endif\n")
	}

	return sb.String()
}

func edgeCondition(table *encode.Table, e Edge) string {
	var parts []string
	if e.Symbol != model.Epsilon && e.Symbol != model.EndMarker {
		parts = append(parts, fmt.Sprintf("CUR_SYM == %s", table.MacroName(e.Symbol)))
	} else if e.Symbol == model.EndMarker {
		parts = append(parts, "CUR_SYM == END")
	}
	switch e.Guard {
	case model.GuardZero:
		parts = append(parts, "IS_ZERO")
	case model.GuardPositive:
		parts = append(parts, "!IS_ZERO")
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, " && ")
}

// emitAction performs the counter action, then either includes the
// successor's consuming header directly (when e consumes a symbol, since
// the decoder has already advanced one include level by the time this
// branch is reached) or its no_consume variant (when e is an epsilon edge,
// so the decoder must not be asked to advance).
func emitAction(sb *strings.Builder, a *Automaton, e Edge) {
	switch e.Action {
	case model.ActionInc:
		sb.WriteString("    #include \"inc.h\"\n")
	case model.ActionDec:
		sb.WriteString("    #include \"dec.h\"\n")
	}

	if e.Symbol == model.Epsilon {
		fmt.Fprintf(sb, "    #include %q\n", stateFile(e.To, true))
	} else {
		fmt.Fprintf(sb, "    #include %q\n", stateFile(e.To, false))
	}
}
