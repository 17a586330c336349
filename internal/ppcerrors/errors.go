// Package ppcerrors defines the diagnostic taxonomy every stage of the
// recognizer compiler reports through: a malformed description clause, an
// out-of-set reference, a DFA duplicate transition, a dead-end non-final
// state, or an I/O failure. Every case is fatal to the current run and
// renders as exactly one line, in the style of tqerrors' two-message error
// type but carrying a machine-checkable Kind instead of a second
// human-readable string (there is no player-facing audience here, only an
// operator and, via the HTTP API, an automated caller).
package ppcerrors

import "fmt"

// Kind identifies which of the taxonomy entries from the compiler's error
// handling design a CompileError belongs to.
type Kind int

const (
	// Structural marks a malformed description clause: missing, out of
	// order, or syntactically invalid.
	Structural Kind = iota

	// Reference marks an out-of-set reference: an initial/final/transition
	// endpoint, input symbol, stack symbol, or bottom symbol that doesn't
	// belong to the set it's drawn from.
	Reference

	// DuplicateTransition marks a DFA with more than one outgoing
	// transition for some (state, symbol) pair.
	DuplicateTransition

	// DeadEnd marks a non-final state with no outgoing transitions.
	DeadEnd

	// IO marks a failure opening the input description or creating/writing
	// an output file.
	IO
)

func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural error"
	case Reference:
		return "reference error"
	case DuplicateTransition:
		return "duplicate transition"
	case DeadEnd:
		return "dead end"
	case IO:
		return "I/O error"
	default:
		return "error"
	}
}

// CompileError is the one error type every layer of the compiler returns.
// Artifact names the offending clause, state, symbol, or file; Err, when
// non-nil, is the underlying cause (a syscall error, a strconv error, and so
// on).
type CompileError struct {
	Kind     Kind
	Artifact string
	Err      error
}

func (e *CompileError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Artifact, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Artifact)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// Structuralf builds a Structural CompileError naming the offending clause.
func Structuralf(format string, a ...interface{}) error {
	return &CompileError{Kind: Structural, Artifact: fmt.Sprintf(format, a...)}
}

// Referencef builds a Reference CompileError naming the offending artifact.
func Referencef(format string, a ...interface{}) error {
	return &CompileError{Kind: Reference, Artifact: fmt.Sprintf(format, a...)}
}

// DuplicateTransitionf builds a DuplicateTransition CompileError.
func DuplicateTransitionf(format string, a ...interface{}) error {
	return &CompileError{Kind: DuplicateTransition, Artifact: fmt.Sprintf(format, a...)}
}

// DeadEndf builds a DeadEnd CompileError.
func DeadEndf(format string, a ...interface{}) error {
	return &CompileError{Kind: DeadEnd, Artifact: fmt.Sprintf(format, a...)}
}

// WrapIO builds an IO CompileError wrapping the given cause.
func WrapIO(artifact string, cause error) error {
	return &CompileError{Kind: IO, Artifact: artifact, Err: cause}
}

// As recovers a *CompileError from err, if any wraps one. It's a thin
// convenience over errors.As so callers (the CLI, the HTTP server) don't all
// need to import both packages just to branch on Kind.
func As(err error) (*CompileError, bool) {
	ce, ok := err.(*CompileError)
	if ok {
		return ce, true
	}
	type unwrapper interface{ Unwrap() error }
	for {
		u, ok := err.(unwrapper)
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
		if ce, ok := err.(*CompileError); ok {
			return ce, true
		}
	}
}
