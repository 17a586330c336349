package desc

import (
	"regexp"
	"strings"

	"github.com/dekarrin/ppauto/internal/ppcerrors"
)

// wordChar matches the \w-class characters the spec defines identifiers and
// symbols in terms of: letters, digits, and underscore.
func wordChar(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

var foldWhitespace = regexp.MustCompile(`[ \t\r\n]+`)

// fold collapses all horizontal whitespace and newlines to single spaces, per
// spec.md 4.1's first parsing step.
func fold(text string) string {
	return strings.TrimSpace(foldWhitespace.ReplaceAllString(text, " "))
}

// cursor is the stateful-iterator replacement named in spec.md 9: instead of
// returning (value, rest) pairs from every parse step, each step advances a
// single shared cursor over the folded input.
type cursor struct {
	s   string
	pos int
}

func newCursor(text string) *cursor {
	return &cursor{s: fold(text)}
}

func (c *cursor) eof() bool {
	return c.pos >= len(c.s)
}

func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}
	return c.s[c.pos]
}

func (c *cursor) skipSpace() {
	for !c.eof() && c.s[c.pos] == ' ' {
		c.pos++
	}
}

// context returns a short slice of the remaining input for diagnostics.
func (c *cursor) context() string {
	rest := c.s[c.pos:]
	if len(rest) > 24 {
		rest = rest[:24] + "..."
	}
	if rest == "" {
		rest = "<end of input>"
	}
	return rest
}

func (c *cursor) expectByte(b byte) error {
	c.skipSpace()
	if c.eof() || c.s[c.pos] != b {
		return ppcerrors.Structuralf("expected %q at %q", string(b), c.context())
	}
	c.pos++
	return nil
}

// expectLiteral consumes lit exactly (no internal whitespace tolerance,
// matching clause keyword syntax), after skipping leading spaces.
func (c *cursor) expectLiteral(lit string) error {
	c.skipSpace()
	if !strings.HasPrefix(c.s[c.pos:], lit) {
		return ppcerrors.Structuralf("expected %q at %q", lit, c.context())
	}
	c.pos += len(lit)
	return nil
}

// readIdent reads a maximal run of \w characters, used for state names.
func (c *cursor) readIdent() (string, error) {
	c.skipSpace()
	start := c.pos
	for !c.eof() && wordChar(c.s[c.pos]) {
		c.pos++
	}
	if c.pos == start {
		return "", ppcerrors.Structuralf("expected identifier at %q", c.context())
	}
	return c.s[start:c.pos], nil
}

// readSymbolChar reads exactly one \w character, used for alphabet and stack
// symbols, which spec.md restricts to single identifier characters.
func (c *cursor) readSymbolChar() (string, error) {
	c.skipSpace()
	if c.eof() || !wordChar(c.s[c.pos]) {
		return "", ppcerrors.Structuralf("expected a single symbol character at %q", c.context())
	}
	ch := c.s[c.pos]
	c.pos++
	return string(ch), nil
}

// readSet reads a brace-delimited, comma-separated list using elem to read
// each element. The set may be empty ({}).
func readSet[T any](c *cursor, elem func(*cursor) (T, error)) ([]T, error) {
	if err := c.expectByte('{'); err != nil {
		return nil, err
	}
	c.skipSpace()

	var out []T
	if c.peek() == '}' {
		c.pos++
		return out, nil
	}

	for {
		v, err := elem(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)

		c.skipSpace()
		if c.peek() == ',' {
			c.pos++
			continue
		}
		break
	}

	if err := c.expectByte('}'); err != nil {
		return nil, err
	}
	return out, nil
}

func readIdentElem(c *cursor) (string, error) { return c.readIdent() }
func readSymbolElem(c *cursor) (string, error) { return c.readSymbolChar() }
