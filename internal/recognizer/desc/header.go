package desc

import (
	"github.com/dekarrin/ppauto/internal/ppcerrors"
	"github.com/dekarrin/ppauto/internal/recognizer/model"
)

// parseHeader consumes the four clauses shared by every flavor, in the
// fixed order spec.md 4.1 requires: alphabet, states, initial, final.
func parseHeader(c *cursor) (model.CommonHeader, error) {
	var h model.CommonHeader

	if err := c.expectLiteral("alphabet"); err != nil {
		return h, err
	}
	if err := c.expectByte('='); err != nil {
		return h, err
	}
	alphabet, err := readSet(c, readSymbolElem)
	if err != nil {
		return h, ppcerrors.Structuralf("alphabet clause: %v", err)
	}
	h.Alphabet = alphabet

	if err := c.expectLiteral("states"); err != nil {
		return h, err
	}
	if err := c.expectByte('='); err != nil {
		return h, err
	}
	states, err := readSet(c, readIdentElem)
	if err != nil {
		return h, ppcerrors.Structuralf("states clause: %v", err)
	}
	h.States = states

	if err := c.expectLiteral("initial"); err != nil {
		return h, err
	}
	if err := c.expectByte('='); err != nil {
		return h, err
	}
	initial, err := c.readIdent()
	if err != nil {
		return h, ppcerrors.Structuralf("initial clause: %v", err)
	}
	h.Initial = initial

	if err := c.expectLiteral("final"); err != nil {
		return h, err
	}
	if err := c.expectByte('='); err != nil {
		return h, err
	}
	final, err := readSet(c, readIdentElem)
	if err != nil {
		return h, ppcerrors.Structuralf("final clause: %v", err)
	}
	h.Final = final

	return h, nil
}

// parseStackAndBottom consumes the DPDA-only stack and bottom clauses, which
// spec.md 4.1 places immediately after the common header and before
// transitions.
func parseStackAndBottom(c *cursor) (stack []string, bottom string, err error) {
	if err := c.expectLiteral("stack"); err != nil {
		return nil, "", err
	}
	if err := c.expectByte('='); err != nil {
		return nil, "", err
	}
	stack, err = readSet(c, readSymbolElem)
	if err != nil {
		return nil, "", ppcerrors.Structuralf("stack clause: %v", err)
	}

	if err := c.expectLiteral("bottom"); err != nil {
		return nil, "", err
	}
	if err := c.expectByte('='); err != nil {
		return nil, "", err
	}
	bottom, err = c.readSymbolChar()
	if err != nil {
		return nil, "", ppcerrors.Structuralf("bottom clause: %v", err)
	}

	return stack, bottom, nil
}

func expectTransitionsKey(c *cursor) error {
	if err := c.expectLiteral("transitions"); err != nil {
		return err
	}
	return c.expectByte('=')
}
