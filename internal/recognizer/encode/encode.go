// Package encode designs the bit layout for the input symbol stream shared
// by all three compilers (spec.md 4.4): the leading-1 symbol codes, the
// field width A_SIZE, the A_MASK constant, and the two GET_SYM shift
// policies (the __COUNTER__-stabilized ladder used by DFA and DPDA, and the
// __INCLUDE_LEVEL__ direct shift used by CTR).
package encode

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
)

// End is the reserved sentinel code for end-of-input.
const End = 0

// Table assigns a leading-1 code to every symbol of an alphabet, in the
// order the alphabet was declared.
type Table struct {
	Alphabet []string
	Size     int // A_SIZE: bits per field
	Mask     int // A_MASK: low Size bits set
	codes    map[string]int
	names    map[string]string
}

// NewTable builds the encoding for alphabet. Order matters: codes are
// assigned 1..len(alphabet) in declaration order.
func NewTable(alphabet []string) (*Table, error) {
	seen := make(map[string]bool, len(alphabet))
	for _, s := range alphabet {
		if seen[s] {
			return nil, ppcerrors.Referencef("duplicate alphabet symbol %q", s)
		}
		seen[s] = true
	}

	bits := bitsFor(len(alphabet))
	size := bits + 1
	mask := (1 << size) - 1

	t := &Table{
		Alphabet: append([]string(nil), alphabet...),
		Size:     size,
		Mask:     mask,
		codes:    make(map[string]int, len(alphabet)),
		names:    make(map[string]string, len(alphabet)),
	}

	leading := 1 << bits
	for i, s := range alphabet {
		t.codes[s] = leading | i
		t.names[s] = "A_" + s
	}

	return t, nil
}

// bitsFor returns ceil(log2(n)), the number of bits needed to distinguish n
// values 0..n-1. bitsFor(0) and bitsFor(1) are both 0.
func bitsFor(n int) int {
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	return bits
}

// Code returns the numeric code of sym and whether it is a known symbol.
func (t *Table) Code(sym string) (int, bool) {
	c, ok := t.codes[sym]
	return c, ok
}

// MacroName returns the C macro name used for sym's code, e.g. "A_a".
func (t *Table) MacroName(sym string) string {
	return t.names[sym]
}

// Defines renders the A_<sym> / A_MASK / A_SIZE #define block.
func (t *Table) Defines() string {
	var sb strings.Builder

	for _, sym := range t.Alphabet {
		fmt.Fprintf(&sb, "#define %s %d\n", t.MacroName(sym), t.codes[sym])
	}
	fmt.Fprintf(&sb, "#define A_SIZE %d\n", t.Size)
	fmt.Fprintf(&sb, "#define A_MASK %d\n", t.Mask)
	fmt.Fprintf(&sb, "#define END %d\n", End)

	return sb.String()
}

// orderedCodes returns the alphabet in ascending numeric-code order, the
// order the #if/#elif ladder is written in.
func (t *Table) orderedCodes() []string {
	out := append([]string(nil), t.Alphabet...)
	sort.Slice(out, func(i, j int) bool { return t.codes[out[i]] < t.codes[out[j]] })
	return out
}

// CounterShiftGetSym renders get_sym.h for the DFA/DPDA shift policy: a
// __COUNTER__-derived field pointer (CTR) plus a decode ladder in which
// every branch stabilizes CTR to the same next value regardless of which
// symbol matched, by evaluating it (A_SIZE+1-position) more times inside a
// dead #if 0 block. This is the "key trick" of spec.md 4.4: one integer
// advance abstraction that doesn't need to know which branch fired.
func (t *Table) CounterShiftGetSym() string {
	var sb strings.Builder

	sb.WriteString("#ifndef GET_SYM_H\n#define GET_SYM_H\n\n")
	fmt.Fprintf(&sb, "#define FIELD_WIDTH (A_SIZE + 1)\n")
	fmt.Fprintf(&sb, "#define CTR (__COUNTER__ / FIELD_WIDTH)\n")
	fmt.Fprintf(&sb, "#define GET_SYM ((INPUT >> (CTR * A_SIZE)) & A_MASK)\n\n")

	ordered := t.orderedCodes()
	total := t.Size + 1

	writeBranch := func(position int) {
		remaining := total - position
		sb.WriteString("    #if 0\n")
		for i := 0; i < remaining; i++ {
			sb.WriteString("    CTR\n")
		}
		sb.WriteString("    #endif\n")
	}

	for i, sym := range ordered {
		kw := "#if"
		if i > 0 {
			kw = "#elif"
		}
		fmt.Fprintf(&sb, "%s GET_SYM == %s\n", kw, t.MacroName(sym))
		writeBranch(i + 1)
	}

	kw := "#elif"
	if len(ordered) == 0 {
		kw = "#if"
	}
	fmt.Fprintf(&sb, "%s GET_SYM == END\n", kw)
	writeBranch(len(ordered) + 1)
	sb.WriteString("#endif\n\n")

	sb.WriteString("#define CUR_SYM GET_SYM\n\n#endif /* GET_SYM_H */\n")

	return sb.String()
}

// IncludeLevelGetSym renders get_sym.h for the CTR shift policy: the
// current field is read directly from __INCLUDE_LEVEL__, descending one
// level per consumed symbol. wrapperLevels is the number of include levels
// between the top-level ctr.h and the first state header, named and derived
// (ctr.WrapperIncludeLevels) rather than hard-coded at the call site, per
// spec.md 9's open question about this constant.
func (t *Table) IncludeLevelGetSym(wrapperLevels int) string {
	var sb strings.Builder

	sb.WriteString("#ifndef GET_SYM_H\n#define GET_SYM_H\n\n")
	fmt.Fprintf(&sb, "#define GET_SYM ((INPUT >> ((__INCLUDE_LEVEL__ - %d) * A_SIZE)) & A_MASK)\n", wrapperLevels)
	sb.WriteString("#define CUR_SYM GET_SYM\n\n#endif /* GET_SYM_H */\n")

	return sb.String()
}
