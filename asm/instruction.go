package asm

// InstrRes is the result of assembling one instruction: the 32-bit word
// and, when an immediate operand referenced a symbol, the pending link
// request for it.
type InstrRes struct {
	Instruction     uint32
	LinksWithSymbol *FieldLinkRequest
}

// Instruction describes one encodable instruction: a mnemonic, the
// ordered operand fields, and the fixed bit pattern occupying every bit
// not claimed by a field.
type Instruction struct {
	name    string
	fields  []Field
	pattern uint32
	mask    uint32
}

// NewInstruction builds an instruction descriptor. The fixed mask is the
// complement of the union of the field bit ranges; overlapping fields or
// pattern bits outside the mask are programming errors and panic.
func NewInstruction(name string, pattern uint32, fields ...Field) *Instruction {
	var union uint32
	for _, field := range fields {
		for _, r := range field.Ranges() {
			if union&r.Mask() != 0 {
				panic("asm: instruction '" + name + "' has overlapping fields")
			}
			union |= r.Mask()
		}
	}
	mask := ^union
	if pattern&^mask != 0 {
		panic("asm: instruction '" + name + "' has pattern bits inside a field")
	}
	return &Instruction{
		name:    name,
		fields:  fields,
		pattern: pattern,
		mask:    mask,
	}
}

// Name returns the instruction mnemonic.
func (in *Instruction) Name() string {
	return in.name
}

// FixedPattern returns the constant bits of the encoding.
func (in *Instruction) FixedPattern() uint32 {
	return in.pattern
}

// FixedMask returns the mask of constant bits of the encoding.
func (in *Instruction) FixedMask() uint32 {
	return in.mask
}

// Assemble encodes the line's operand tokens into a 32-bit word.
// Parenthesis tokens produced by the lexer for register-bracketing
// syntax are operand separators, not operands, and are skipped.
func (in *Instruction) Assemble(line TokenizedSrcLine) (InstrRes, error) {
	operands := make(LineTokens, 0, len(in.fields))
	for _, token := range line.Tokens[1:] {
		if token == "(" || token == ")" {
			continue
		}
		operands = append(operands, token)
	}
	if len(operands) < len(in.fields) {
		return InstrRes{}, ErrTooFewTokens
	}
	if len(operands) > len(in.fields) {
		return InstrRes{}, ErrTooManyTokens
	}

	res := InstrRes{Instruction: in.pattern}
	for n, field := range in.fields {
		link, err := field.Encode(operands[n], &res.Instruction)
		if err != nil {
			return InstrRes{}, err
		}
		if link != nil {
			res.LinksWithSymbol = link
		}
	}
	return res, nil
}

// Disassemble decodes word back into its token list. addr is the
// absolute address of the word, used for PC-relative immediates.
func (in *Instruction) Disassemble(word uint32, addr uint32, symbols ReverseSymbolMap) (LineTokens, error) {
	if word&in.mask != in.pattern {
		return nil, ErrUnknownInstruction
	}
	tokens := LineTokens{in.name}
	for _, field := range in.fields {
		token, err := field.Decode(word, addr, symbols)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}
