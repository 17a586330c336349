// Package input reads input words for the trace REPL (SPEC_FULL.md 4.11)
// from either a real terminal or a piped stream.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads successive lines of input until EOF.
type LineReader interface {
	ReadLine() (string, error)
	AllowBlank(allow bool)
	Close() error
}

// DirectReader reads lines from any io.Reader directly, with no escape
// sequence handling or history. Suitable for piping a script of trace
// words in non-interactively.
//
// DirectReader should not be used directly; instead, create one with
// [NewDirectReader].
type DirectReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveReader reads lines from stdin through GNU Readline, giving the
// operator history and line editing. Should only be used when attached to
// a real TTY.
//
// InteractiveReader should not be used directly; instead, create one with
// [NewInteractiveReader].
type InteractiveReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader creates a DirectReader over r. The returned LineReader
// must have Close called on it before disposal.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{
		r: bufio.NewReader(r),
	}
}

// NewInteractiveReader creates an InteractiveReader with the given prompt
// and initializes readline. The returned LineReader must have Close called
// on it before disposal to properly tear down readline resources.
func NewInteractiveReader(prompt string) (*InteractiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}

	return &InteractiveReader{
		rl:     rl,
		prompt: prompt,
	}, nil
}

// Close is a no-op; DirectReader holds no resources that need tearing
// down, but it implements LineReader so callers can treat both readers
// uniformly.
func (dr *DirectReader) Close() error {
	return nil
}

// Close tears down the underlying readline instance.
func (ir *InteractiveReader) Close() error {
	return ir.rl.Close()
}

// ReadLine reads the next non-blank line from the underlying reader,
// skipping blank lines unless AllowBlank was set. At end of input it
// returns "" and io.EOF.
func (dr *DirectReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next non-blank line via readline, skipping blank
// lines unless AllowBlank was set. At end of input it returns "" and
// io.EOF.
func (ir *InteractiveReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = ir.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && ir.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// AllowBlank sets whether a blank line is returned as-is instead of being
// skipped. By default it is not.
func (dr *DirectReader) AllowBlank(allow bool) {
	dr.blanksAllowed = allow
}

// AllowBlank sets whether a blank line is returned as-is instead of being
// skipped. By default it is not.
func (ir *InteractiveReader) AllowBlank(allow bool) {
	ir.blanksAllowed = allow
}

// SetPrompt updates the prompt text.
func (ir *InteractiveReader) SetPrompt(p string) {
	ir.rl.SetPrompt(p)
}

// GetPrompt gets the current prompt text.
func (ir *InteractiveReader) GetPrompt() string {
	return ir.prompt
}
