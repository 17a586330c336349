package desc

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// ParseDPDA parses a complete DPDA description, per spec.md 4.1 and 6: the
// common header, then the DPDA-only stack and bottom clauses, then
// transitions.
func ParseDPDA(text string) (model.RawDPDA, error) {
	c := newCursor(text)

	var raw model.RawDPDA

	header, err := parseHeader(c)
	if err != nil {
		return raw, err
	}
	raw.CommonHeader = header

	stack, bottom, err := parseStackAndBottom(c)
	if err != nil {
		return raw, err
	}
	raw.Stack = stack
	raw.Bottom = bottom

	if err := expectTransitionsKey(c); err != nil {
		return raw, err
	}

	trans, err := readSet(c, readDPDATransition)
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

// readDPDAPush reads w: a bare, possibly-empty run of single-character
// stack symbols with no internal separators, in the order written (the
// last one read is wk, the new top of stack).
func readDPDAPush(c *cursor) ([]string, error) {
	var push []string
	for {
		c.skipSpace()
		if c.eof() || c.peek() == ')' {
			return push, nil
		}
		sym, err := c.readSymbolChar()
		if err != nil {
			return nil, err
		}
		push = append(push, sym)
	}
}

// readDPDATransition reads a single "(q,σ,γ)->(q',w)" transition.
func readDPDATransition(c *cursor) (model.RawDPDATransition, error) {
	var t model.RawDPDATransition

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
	sigma, err := readCTRSigma(c) // σ ∈ Σ∪{ε,$}, identical grammar to CTR's
	if err != nil {
		return t, err
	}
	t.Symbol = sigma

	if err := c.expectByte(','); err != nil {
		return t, err
	}
	top, err := c.readSymbolChar()
	if err != nil {
		return t, ppcerrors.Structuralf("stack top symbol: %v", err)
	}
	t.Top = top

	if err := c.expectByte(')'); err != nil {
		return t, err
	}
	if err := c.expectLiteral("->"); err != nil {
		return t, err
	}
	if err := c.expectByte('('); err != nil {
		return t, err
	}

	to, err := c.readIdent()
	if err != nil {
		return t, err
	}
	t.To = to

	if err := c.expectByte(','); err != nil {
		return t, err
	}
	push, err := readDPDAPush(c)
	if err != nil {
		return t, err
	}
	t.Push = push

	if err := c.expectByte(')'); err != nil {
		return t, err
	}

	return t, nil
}
