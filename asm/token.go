package asm

import (
	"strings"
)

// LineTokens is the ordered token list of one source line, with the
// mnemonic at position 0.
type LineTokens []string

// Join renders the tokens as a single listing line.
func (lt LineTokens) Join() string {
	return strings.Join(lt, " ")
}

// Symbols is a set of label names, each carrying the 1-based source
// line that defined it.
type Symbols map[string]int

// Add inserts a symbol name defined at line into the set.
func (s Symbols) Add(name string, line int) {
	s[name] = line
}

// Has reports whether the set contains name.
func (s Symbols) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// TokenizedSrcLine is one post-lexer line record. SourceLine is the
// 1-based index of the original input line and is preserved verbatim
// across pseudo-instruction expansion. Directive tokens are recorded in
// Directives and also remain in Tokens, where the directive handler
// consumes them.
type TokenizedSrcLine struct {
	SourceLine int
	Symbols    Symbols
	Directives []string
	Tokens     LineTokens
}

// Program is an ordered sequence of tokenized lines.
type Program []TokenizedSrcLine

// SymbolMap maps a label name to its byte offset in the emitted image.
type SymbolMap map[string]uint32

// ReverseSymbolMap maps a byte offset back to a label name, for
// disassembly of PC-relative targets.
type ReverseSymbolMap map[uint32]string
