package desc

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// ParseCTR parses a complete CTR description, per spec.md 4.1 and 6.
func ParseCTR(text string) (model.RawCTR, error) {
	c := newCursor(text)

	var raw model.RawCTR

	header, err := parseHeader(c)
	if err != nil {
		return raw, err
	}
	raw.CommonHeader = header

	if err := expectTransitionsKey(c); err != nil {
		return raw, err
	}

	trans, err := readSet(c, readCTRTransition)
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

// isDelimiter reports whether the cursor is sitting at a position that
// terminates an optional field (a comma or a closing paren), meaning the
// field was written as empty (epsilon / no guard / no action).
func isDelimiter(c *cursor) bool {
	c.skipSpace()
	return c.eof() || c.peek() == ',' || c.peek() == ')'
}

// readCTRSigma reads the σ field: a single alphabet symbol, the end marker
// $, or nothing at all (epsilon, written as an empty field).
func readCTRSigma(c *cursor) (string, error) {
	if isDelimiter(c) {
		return model.Epsilon, nil
	}
	if c.peek() == '$' {
		c.pos++
		return model.EndMarker, nil
	}
	return c.readSymbolChar()
}

// readCTRGuard reads the c field: z (zero), p (positive), or nothing (any).
func readCTRGuard(c *cursor) (model.CounterGuard, error) {
	if isDelimiter(c) {
		return model.GuardAny, nil
	}
	switch c.peek() {
	case 'z':
		c.pos++
		return model.GuardZero, nil
	case 'p':
		c.pos++
		return model.GuardPositive, nil
	default:
		return model.GuardAny, ppcerrors.Structuralf("expected counter guard (z, p, or empty) at %q", c.context())
	}
}

// readCTRAction reads the α field: i (inc), d (dec), or nothing (nop).
func readCTRAction(c *cursor) (model.CounterAction, error) {
	if isDelimiter(c) {
		return model.ActionNop, nil
	}
	switch c.peek() {
	case 'i':
		c.pos++
		return model.ActionInc, nil
	case 'd':
		c.pos++
		return model.ActionDec, nil
	default:
		return model.ActionNop, ppcerrors.Structuralf("expected counter action (i, d, or empty) at %q", c.context())
	}
}

// readCTRTransition reads a single "(q,σ,c)->(q',α)" transition.
func readCTRTransition(c *cursor) (model.RawCTRTransition, error) {
	var t model.RawCTRTransition

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
	sigma, err := readCTRSigma(c)
	if err != nil {
		return t, err
	}
	t.Symbol = sigma

	if err := c.expectByte(','); err != nil {
		return t, err
	}
	guard, err := readCTRGuard(c)
	if err != nil {
		return t, err
	}
	t.Guard = guard

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
	action, err := readCTRAction(c)
	if err != nil {
		return t, err
	}
	t.Action = action

	if err := c.expectByte(')'); err != nil {
		return t, err
	}

	return t, nil
}
