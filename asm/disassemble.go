package asm

import (
	"encoding/binary"
)

// DisassembleResult is the outcome of one disassembly: one listing line
// per decoded word, plus diagnostics for words that did not decode.
// Error lines carry the 1-based word index, or 0 for an image whose
// length is not a multiple of 4.
type DisassembleResult struct {
	Lines  []string
	Errors Errors
}

// Disassemble decodes a flat little-endian byte image back into a
// listing. base is the address of the first word, used for PC-relative
// immediates. The image length must be a multiple of the 4-byte
// instruction size.
func (a *Assembler) Disassemble(image []byte, base uint32) (res DisassembleResult) {
	if len(image)%4 != 0 {
		res.Errors = append(res.Errors, errorf(0, "Program instructions unaligned with instruction size"))
		return
	}

	symbols := ReverseSymbolMap{}
	for i := 0; i < len(image); i += 4 {
		lineno := i/4 + 1
		word := binary.LittleEndian.Uint32(image[i:])

		in, err := a.matcher.Match(word)
		if err != nil {
			res.Errors = append(res.Errors, errorf(lineno, "Unknown instruction 0x%08x", word))
			continue
		}
		tokens, err := in.Disassemble(word, base+uint32(i), symbols)
		if err != nil {
			res.Errors = append(res.Errors, wrap(lineno, err))
			continue
		}
		res.Lines = append(res.Lines, tokens.Join())
	}
	return
}
