package desc

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// ParseDFA parses a complete DFA description: alphabet, states, initial,
// final, transitions, in that fixed order, per spec.md 4.1 and 6.
func ParseDFA(text string) (model.RawDFA, error) {
	c := newCursor(text)

	var raw model.RawDFA

	header, err := parseHeader(c)
	if err != nil {
		return raw, err
	}
	raw.CommonHeader = header

	if err := expectTransitionsKey(c); err != nil {
		return raw, err
	}

	trans, err := readSet(c, readDFATransition)
	if err != nil {
		return raw, ppcerrors.Structuralf("transitions clause: %v", err)
	}
	raw.Transitions = trans

	c.skipSpace()
	if !c.eof() {
		return raw, ppcerrors.Structuralf("unexpected trailing text at %q", c.context())
	}

	return raw, nil
}

// readDFATransition reads a single "(q,a)->q'" transition.
func readDFATransition(c *cursor) (model.RawDFATransition, error) {
	var t model.RawDFATransition

	if err := c.expectByte('('); err != nil {
		return t, err
	}
	from, err := c.readIdent()
	if err != nil {
		return t, err
	}
	t.From = from

	if err := c.expectByte(','); err != nil {
		return t, err
	}
	sym, err := c.readSymbolChar()
	if err != nil {
		return t, err
	}
	t.Symbol = sym

	if err := c.expectByte(')'); err != nil {
		return t, err
	}
	if err := c.expectLiteral("->"); err != nil {
		return t, err
	}
	to, err := c.readIdent()
	if err != nil {
		return t, err
	}
	t.To = to

	return t, nil
}
