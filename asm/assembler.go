// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"encoding/binary"
	"fmt"
	"log"
	"strings"
)

// Assembler is a multi-pass assembler and disassembler over an ISA
// description. The descriptor tables are built once by NewAssembler and
// never mutated afterwards, so one instance may serve concurrent
// Assemble and Disassemble calls; each call keeps its own scratch state.
type Assembler struct {
	Verbose bool // If set, verbosely logs each source line.

	isa          ISA
	comment      rune
	instructions map[string]*Instruction
	pseudos      map[string]*PseudoInstruction
	directives   map[string]*Directive
	matcher      *Matcher
}

// NewAssembler builds an assembler from an ISA description. Duplicate
// mnemonics in any descriptor table, and instruction encodings the
// matcher cannot tell apart, are programming errors and panic.
func NewAssembler(isa ISA) *Assembler {
	a := &Assembler{
		isa:          isa,
		comment:      isa.CommentDelimiter(),
		instructions: map[string]*Instruction{},
		pseudos:      map[string]*PseudoInstruction{},
		directives:   map[string]*Directive{},
	}
	for _, in := range isa.Instructions() {
		if _, ok := a.instructions[in.Name()]; ok {
			panic("asm: instruction '" + in.Name() + "' already registered")
		}
		a.instructions[in.Name()] = in
	}
	for _, pseudo := range isa.PseudoInstructions() {
		if _, ok := a.pseudos[pseudo.Name]; ok {
			panic("asm: pseudo-instruction '" + pseudo.Name + "' already registered")
		}
		a.pseudos[pseudo.Name] = pseudo
	}
	for _, dir := range isa.Directives() {
		if _, ok := a.directives[dir.Name]; ok {
			panic("asm: directive '" + dir.Name + "' already registered")
		}
		a.directives[dir.Name] = dir
	}
	a.matcher = NewMatcher(isa.Instructions())
	return a
}

// Matcher returns the instruction matcher derived from the ISA.
func (a *Assembler) Matcher() *Matcher {
	return a.matcher
}

// AssembleResult is the outcome of one assembly: the flat byte image,
// the symbol offsets, and any accumulated diagnostics. Bytes is empty
// when the encoding pass did not complete.
type AssembleResult struct {
	Bytes   []byte
	Symbols SymbolMap
	Errors  Errors
}

// LinkRequest defers the resolution of a symbol reference found in an
// immediate field during the encoding pass.
type LinkRequest struct {
	SourceLine   int
	Offset       uint32
	FieldRequest FieldLinkRequest
}

// Assemble splits text into lines and assembles them.
func (a *Assembler) Assemble(text string) AssembleResult {
	return a.AssembleLines(strings.Split(text, "\n"))
}

// AssembleLines assembles pre-split source lines. The passes run in
// order and short-circuit: any diagnostics from one pass suppress the
// following passes.
func (a *Assembler) AssembleLines(lines []string) (result AssembleResult) {
	state := newAsmState(a.isa)

	tokenized, errs := a.pass0(lines, state)
	if len(errs) != 0 {
		result.Errors = errs
		return
	}

	expanded, errs := a.pass1(tokenized)
	if len(errs) != 0 {
		result.Errors = errs
		return
	}

	symbols := SymbolMap{}
	var needsLinkage []LinkRequest
	image, errs := a.pass2(expanded, state, symbols, &needsLinkage)
	if len(errs) != 0 {
		result.Errors = errs
		return
	}

	result.Bytes = image
	result.Symbols = symbols
	result.Errors = a.pass3(image, symbols, needsLinkage)
	return
}

// pass0 tokenizes each non-empty line and splits off its symbols and
// directives. Symbols on an otherwise empty line carry over onto the
// next line that produces tokens.
func (a *Assembler) pass0(lines []string, state *AsmState) (Program, Errors) {
	var errs Errors
	tokenized := make(Program, 0, len(lines))

	carry := Symbols{}
	for n, raw := range lines {
		lineno := n + 1
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if a.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		line, err := state.expand(line)
		if err != nil {
			errs = append(errs, wrap(lineno, err))
			continue
		}

		tokens, err := a.tokenize(line)
		if err != nil {
			errs = append(errs, wrap(lineno, err))
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		if tokens[0] == ".equ" {
			if err := state.equ(tokens); err != nil {
				errs = append(errs, wrap(lineno, err))
			}
			continue
		}
		state.substitute(tokens)

		tsl := TokenizedSrcLine{
			SourceLine: lineno,
			Symbols:    Symbols{},
		}

		rest, err := splitSymbols(tokens, &tsl)
		if err != nil {
			errs = append(errs, wrap(lineno, err))
			continue
		}
		if err := splitDirectives(rest, &tsl); err != nil {
			errs = append(errs, wrap(lineno, err))
			continue
		}
		tsl.Tokens = rest

		switch {
		case len(tsl.Tokens) == 0 && len(tsl.Symbols) != 0:
			for sym, defLine := range tsl.Symbols {
				carry.Add(sym, defLine)
			}
		case len(tsl.Tokens) == 0:
			// Comment-only line.
		default:
			for sym, defLine := range carry {
				tsl.Symbols.Add(sym, defLine)
			}
			clear(carry)
			tokenized = append(tokenized, tsl)
		}
	}
	return tokenized, errs
}

// splitSymbols moves leading label: tokens into the line's symbol set.
func splitSymbols(tokens LineTokens, tsl *TokenizedSrcLine) (LineTokens, error) {
	rest := make(LineTokens, 0, len(tokens))
	symbolStillAllowed := true
	for _, token := range tokens {
		if strings.Contains(token, ":") && !strings.HasPrefix(token, "\"") {
			if !symbolStillAllowed {
				return nil, ErrStrayColon
			}
			symbol := strings.ReplaceAll(token, ":", "")
			if tsl.Symbols.Has(symbol) {
				return nil, ErrSymbolDuplicate(symbol)
			}
			tsl.Symbols.Add(symbol, tsl.SourceLine)
		} else {
			rest = append(rest, token)
			symbolStillAllowed = false
		}
	}
	return rest, nil
}

// splitDirectives records leading dot-prefixed tokens as directives.
// The tokens themselves stay in place; the directive handler consumes
// them in the encoding pass.
func splitDirectives(tokens LineTokens, tsl *TokenizedSrcLine) error {
	directivesStillAllowed := true
	for _, token := range tokens {
		if strings.HasPrefix(token, ".") {
			if !directivesStillAllowed {
				return ErrStrayDot
			}
			tsl.Directives = append(tsl.Directives, token)
		} else {
			directivesStillAllowed = false
		}
	}
	return nil
}

// pass1 expands pseudo-instructions. All expanded lines keep the
// original source line; only the first keeps the symbols and directives
// so a label binds to the first emitted instruction.
func (a *Assembler) pass1(tokenized Program) (Program, Errors) {
	var errs Errors
	expanded := make(Program, 0, len(tokenized))

	for _, line := range tokenized {
		pseudo, ok := a.pseudos[line.Tokens[0]]
		if !ok {
			expanded = append(expanded, line)
			continue
		}
		lists, err := pseudo.Expand(line)
		if err != nil {
			errs = append(errs, wrap(line.SourceLine, err))
			continue
		}
		for n, tokens := range lists {
			tsl := TokenizedSrcLine{
				SourceLine: line.SourceLine,
				Symbols:    Symbols{},
				Tokens:     tokens,
			}
			if n == 0 {
				tsl.Symbols = line.Symbols
				tsl.Directives = line.Directives
			}
			expanded = append(expanded, tsl)
		}
	}
	return expanded, errs
}

// pass2 encodes instructions and directives into the image, binding
// symbols to the running byte offset and recording link requests for
// immediates that referenced symbols.
func (a *Assembler) pass2(expanded Program, state *AsmState, symbols SymbolMap, needsLinkage *[]LinkRequest) ([]byte, Errors) {
	var errs Errors
	var image []byte

	for _, line := range expanded {
		offset := uint32(len(image))
		for symbol, defLine := range line.Symbols {
			if _, ok := symbols[symbol]; ok {
				errs = append(errs, errorf(defLine, "Multiple definitions of symbol '%v'", symbol))
			} else {
				symbols[symbol] = offset
			}
		}
		if len(line.Tokens) == 0 {
			continue
		}

		if dir, ok := a.directives[line.Tokens[0]]; ok {
			data, err := dir.Handle(state, line)
			if err != nil {
				errs = append(errs, wrap(line.SourceLine, err))
				continue
			}
			image = append(image, data...)
			state.SegmentOffsets[state.Segment] += uint32(len(data))
			continue
		}

		in, ok := a.instructions[line.Tokens[0]]
		if !ok {
			errs = append(errs, errorf(line.SourceLine, "Unknown opcode '%v'", line.Tokens[0]))
			continue
		}
		res, err := in.Assemble(line)
		if err != nil {
			errs = append(errs, wrap(line.SourceLine, err))
			continue
		}
		if res.LinksWithSymbol != nil {
			*needsLinkage = append(*needsLinkage, LinkRequest{
				SourceLine:   line.SourceLine,
				Offset:       offset,
				FieldRequest: *res.LinksWithSymbol,
			})
		}
		image = binary.LittleEndian.AppendUint32(image, res.Instruction)
		state.SegmentOffsets[state.Segment] += 4
	}

	if len(errs) != 0 {
		return nil, errs
	}
	return image, nil
}

// pass3 resolves link requests by patching immediate fields in place.
// The image size is already fixed; this pass never inserts bytes.
func (a *Assembler) pass3(image []byte, symbols SymbolMap, needsLinkage []LinkRequest) Errors {
	var errs Errors
	for _, req := range needsLinkage {
		value, ok := symbols[req.FieldRequest.Symbol]
		if !ok {
			errs = append(errs, errorf(req.SourceLine, "Unknown symbol '%v'", req.FieldRequest.Symbol))
			continue
		}
		if int(req.Offset)+4 > len(image) {
			panic(fmt.Sprintf("asm: link request at offset %v is not within the program", req.Offset))
		}
		word := binary.LittleEndian.Uint32(image[req.Offset:])
		if err := req.FieldRequest.Field.ApplySymbolResolution(value, &word, req.Offset); err != nil {
			errs = append(errs, wrap(req.SourceLine, err))
			continue
		}
		binary.LittleEndian.PutUint32(image[req.Offset:], word)
	}
	return errs
}
