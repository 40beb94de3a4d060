package asm

import (
	"errors"
	"strings"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var (
	// Lexer errors
	ErrUnterminatedString = errors.New(f("Unterminated string"))
	ErrStrayColon         = errors.New(f("Stray ':' in line"))
	ErrStrayDot           = errors.New(f("Stray '.' in line"))

	// Descriptor errors
	ErrTooFewTokens  = errors.New(f("Too few tokens"))
	ErrTooManyTokens = errors.New(f("Too many tokens"))

	// Matcher errors
	ErrUnknownInstruction = errors.New(f("Unknown instruction"))
)

// Error is one user-facing diagnostic, tied to the 1-based source line
// that produced it. Disassembly errors carry the 1-based word index
// instead, and 0 when no position applies.
type Error struct {
	Line    int
	Message string

	err error
}

func (e Error) Error() string {
	return f("line %d: %v", e.Line, e.Message)
}

func (e Error) Unwrap() error {
	return e.err
}

// errorf builds an Error from a translated format string.
func errorf(line int, format string, args ...any) Error {
	return Error{Line: line, Message: f(format, args...)}
}

// wrap attaches a line number to a descriptor-level error, keeping the
// cause reachable through errors.Is and errors.As.
func wrap(line int, err error) Error {
	return Error{Line: line, Message: err.Error(), err: err}
}

// Errors accumulates diagnostics across a pass.
type Errors []Error

func (errs Errors) Error() string {
	msgs := make([]string, len(errs))
	for n, e := range errs {
		msgs[n] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// ErrSymbolDuplicate reports a label defined more than once on a line.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("Multiple definitions of symbol '%v'", string(err))
}

// ErrRegisterUnknown reports an unrecognized register mnemonic.
type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("Unknown register '%v'", string(err))
}

// ErrImmRange reports an immediate outside the field's encodable range.
type ErrImmRange int64

func (err ErrImmRange) Error() string {
	return f("Immediate %v out of range", int64(err))
}

// ErrImmAlign reports an immediate that is not aligned to the field's
// required granularity.
type ErrImmAlign int64

func (err ErrImmAlign) Error() string {
	return f("Immediate %v is not aligned", int64(err))
}
