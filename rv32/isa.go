package rv32

import (
	"github.com/ezrec/rvasm/asm"
)

// ISA is the RV32I instruction-set description. Build it once with New
// and hand it to asm.NewAssembler; the tables are immutable afterwards.
type ISA struct {
	regs       *asm.RegisterSet
	instrs     []*asm.Instruction
	pseudos    []*asm.PseudoInstruction
	directives []*asm.Directive
}

// New builds the RV32I descriptor tables.
func New() *ISA {
	regs := newRegisters()
	return &ISA{
		regs:       regs,
		instrs:     instructions(regs),
		pseudos:    pseudoInstructions(),
		directives: directives(),
	}
}

func (isa *ISA) Instructions() []*asm.Instruction {
	return isa.instrs
}

func (isa *ISA) PseudoInstructions() []*asm.PseudoInstruction {
	return isa.pseudos
}

func (isa *ISA) Directives() []*asm.Directive {
	return isa.directives
}

func (isa *ISA) Registers() *asm.RegisterSet {
	return isa.regs
}

func (isa *ISA) CommentDelimiter() rune {
	return '#'
}

func (isa *ISA) TextSegment() string {
	return ".text"
}

func (isa *ISA) DataSegment() string {
	return ".data"
}
