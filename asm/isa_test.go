package asm

import (
	"strconv"
)

// fakeISA is a four-register toy machine exercising every descriptor
// kind: plain register fields, a scattered PC-relative immediate, an
// absolute immediate, a fully fixed word, a pseudo-instruction and data
// and segment directives.
type fakeISA struct {
	regs       *RegisterSet
	instrs     []*Instruction
	pseudos    []*PseudoInstruction
	directives []*Directive
}

func newFakeISA() *fakeISA {
	regs := NewRegisterSet()
	for n := uint32(0); n < 4; n++ {
		regs.Add(n, "r"+strconv.FormatUint(uint64(n), 10))
	}

	rd := func() *Reg { return &Reg{File: regs, Range: BitRange{Hi: 11, Lo: 7}} }
	rs := func() *Reg { return &Reg{File: regs, Range: BitRange{Hi: 16, Lo: 12}} }
	rel := func() *Imm {
		return &Imm{
			Width:  8,
			Signed: true,
			Kind:   ImmPCRelative,
			Align:  1,
			Slices: []ImmSlice{
				{Word: BitRange{Hi: 31, Lo: 28}, ValueLo: 4},
				{Word: BitRange{Hi: 15, Lo: 12}, ValueLo: 0},
			},
		}
	}
	abs := func() *Imm {
		return &Imm{
			Width: 8,
			Slices: []ImmSlice{
				{Word: BitRange{Hi: 19, Lo: 12}, ValueLo: 0},
			},
		}
	}

	return &fakeISA{
		regs: regs,
		instrs: []*Instruction{
			NewInstruction("inc", 0x01, rd()),
			NewInstruction("mov", 0x02, rd(), rs()),
			NewInstruction("jmp", 0x03, rel()),
			NewInstruction("halt", 0x04),
			NewInstruction("put", 0x05, rd(), abs()),
		},
		pseudos: []*PseudoInstruction{
			{Name: "dbl", Expand: func(line TokenizedSrcLine) ([]LineTokens, error) {
				if len(line.Tokens) != 2 {
					return nil, ErrTooFewTokens
				}
				return []LineTokens{
					{"inc", line.Tokens[1]},
					{"inc", line.Tokens[1]},
				}, nil
			}},
		},
		directives: []*Directive{
			{Name: ".text", Handle: func(state *AsmState, line TokenizedSrcLine) ([]byte, error) {
				state.Segment = ".text"
				return nil, nil
			}},
			{Name: ".data", Handle: func(state *AsmState, line TokenizedSrcLine) ([]byte, error) {
				state.Segment = ".data"
				return nil, nil
			}},
			{Name: ".blob", Handle: func(state *AsmState, line TokenizedSrcLine) ([]byte, error) {
				if len(line.Tokens) < 2 {
					return nil, ErrTooFewTokens
				}
				var out []byte
				for _, token := range line.Tokens[1:] {
					value, err := strconv.ParseUint(token, 0, 8)
					if err != nil {
						return nil, err
					}
					out = append(out, byte(value))
				}
				return out, nil
			}},
		},
	}
}

func (isa *fakeISA) Instructions() []*Instruction             { return isa.instrs }
func (isa *fakeISA) PseudoInstructions() []*PseudoInstruction { return isa.pseudos }
func (isa *fakeISA) Directives() []*Directive                 { return isa.directives }
func (isa *fakeISA) Registers() *RegisterSet                  { return isa.regs }
func (isa *fakeISA) CommentDelimiter() rune                   { return '#' }
func (isa *fakeISA) TextSegment() string                      { return ".text" }
func (isa *fakeISA) DataSegment() string                      { return ".data" }
