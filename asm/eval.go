package asm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// ErrParseExpression reports a $() expression that did not evaluate to
// an integer.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

var errEquateSyntax = errors.New(f(".equ expects a name and a value"))

// ErrEquateDuplicate reports a .equ name that is already defined.
type ErrEquateDuplicate string

func (err ErrEquateDuplicate) Error() string {
	return f("Multiple definitions of equate '%v'", string(err))
}

// expand performs the compile-time $(...) evaluations on a raw source
// line, with integer-valued equates in scope.
func (st *AsmState) expand(line string) (string, error) {
	if !strings.Contains(line, "$(") {
		return line, nil
	}
	var err error
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := st.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%#v", value)
	})
	return line, err
}

// parenEval evaluates one $() expression with starlark.
func (st *AsmState) parenEval(expr string) (value uint32, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range st.Equates {
		value64, err := strconv.ParseInt(str, 0, 64)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value64))
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return 0, ErrParseExpression(expr)
	}
	st_rc, ok := dict["rc"]
	if !ok {
		return 0, ErrParseExpression(expr)
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		return 0, ErrParseExpression(expr)
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		return 0, ErrParseExpression(expr)
	}
	return uint32(st_int64), nil
}

// equ records a .equ NAME VALUE line.
func (st *AsmState) equ(tokens LineTokens) error {
	if len(tokens) != 3 {
		return errEquateSyntax
	}
	if _, ok := st.Equates[tokens[1]]; ok {
		return ErrEquateDuplicate(tokens[1])
	}
	st.Equates[tokens[1]] = tokens[2]
	return nil
}

// substitute replaces equate names in a token list with their values.
func (st *AsmState) substitute(tokens LineTokens) {
	for n, token := range tokens {
		if value, ok := st.Equates[token]; ok {
			tokens[n] = value
		}
	}
}
