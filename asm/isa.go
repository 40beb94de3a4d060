package asm

// ISA is the instruction-set description the assembler is parameterized
// by. Implementations provide the descriptor tables once; the assembler
// treats them as immutable afterwards.
type ISA interface {
	Instructions() []*Instruction
	PseudoInstructions() []*PseudoInstruction
	Directives() []*Directive
	Registers() *RegisterSet
	CommentDelimiter() rune
	TextSegment() string
	DataSegment() string
}
