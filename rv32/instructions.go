package rv32

import (
	"github.com/ezrec/rvasm/asm"
)

// RV32I major opcodes.
const (
	opLoad    = 0x03
	opMiscMem = 0x0F
	opOpImm   = 0x13
	opAuipc   = 0x17
	opStore   = 0x23
	opOp      = 0x33
	opLui     = 0x37
	opBranch  = 0x63
	opJalr    = 0x67
	opJal     = 0x6F
	opSystem  = 0x73
)

func regRd(regs *asm.RegisterSet) *asm.Reg {
	return &asm.Reg{File: regs, Range: asm.BitRange{Hi: 11, Lo: 7}}
}

func regRs1(regs *asm.RegisterSet) *asm.Reg {
	return &asm.Reg{File: regs, Range: asm.BitRange{Hi: 19, Lo: 15}}
}

func regRs2(regs *asm.RegisterSet) *asm.Reg {
	return &asm.Reg{File: regs, Range: asm.BitRange{Hi: 24, Lo: 20}}
}

// immI is the 12-bit signed immediate at [31:20].
func immI() *asm.Imm {
	return &asm.Imm{
		Width:  12,
		Signed: true,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 31, Lo: 20}, ValueLo: 0},
		},
	}
}

// immS is the 12-bit signed store offset, split [31:25] and [11:7].
func immS() *asm.Imm {
	return &asm.Imm{
		Width:  12,
		Signed: true,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 31, Lo: 25}, ValueLo: 5},
			{Word: asm.BitRange{Hi: 11, Lo: 7}, ValueLo: 0},
		},
	}
}

// immB is the 13-bit signed PC-relative branch offset with the
// imm[12|10:5|4:1|11] scatter. Bit 0 is always zero.
func immB() *asm.Imm {
	return &asm.Imm{
		Width:  13,
		Signed: true,
		Kind:   asm.ImmPCRelative,
		Align:  1,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 31, Lo: 31}, ValueLo: 12},
			{Word: asm.BitRange{Hi: 30, Lo: 25}, ValueLo: 5},
			{Word: asm.BitRange{Hi: 11, Lo: 8}, ValueLo: 1},
			{Word: asm.BitRange{Hi: 7, Lo: 7}, ValueLo: 11},
		},
	}
}

// immU is the 20-bit upper immediate at [31:12].
func immU() *asm.Imm {
	return &asm.Imm{
		Width: 20,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 31, Lo: 12}, ValueLo: 0},
		},
	}
}

// immJ is the 21-bit signed PC-relative jump offset with the
// imm[20|10:1|11|19:12] scatter. Bit 0 is always zero.
func immJ() *asm.Imm {
	return &asm.Imm{
		Width:  21,
		Signed: true,
		Kind:   asm.ImmPCRelative,
		Align:  1,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 31, Lo: 31}, ValueLo: 20},
			{Word: asm.BitRange{Hi: 30, Lo: 21}, ValueLo: 1},
			{Word: asm.BitRange{Hi: 20, Lo: 20}, ValueLo: 11},
			{Word: asm.BitRange{Hi: 19, Lo: 12}, ValueLo: 12},
		},
	}
}

// immShamt is the 5-bit shift amount at [24:20].
func immShamt() *asm.Imm {
	return &asm.Imm{
		Width: 5,
		Slices: []asm.ImmSlice{
			{Word: asm.BitRange{Hi: 24, Lo: 20}, ValueLo: 0},
		},
	}
}

// instructions builds the RV32I descriptor table.
func instructions(regs *asm.RegisterSet) []*asm.Instruction {
	rtype := func(name string, funct3, funct7 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opOp|funct3<<12|funct7<<25,
			regRd(regs), regRs1(regs), regRs2(regs))
	}
	itype := func(name string, opcode, funct3 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opcode|funct3<<12,
			regRd(regs), regRs1(regs), immI())
	}
	shift := func(name string, funct3, funct7 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opOpImm|funct3<<12|funct7<<25,
			regRd(regs), regRs1(regs), immShamt())
	}
	load := func(name string, funct3 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opLoad|funct3<<12,
			regRd(regs), immI(), regRs1(regs))
	}
	store := func(name string, funct3 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opStore|funct3<<12,
			regRs2(regs), immS(), regRs1(regs))
	}
	branch := func(name string, funct3 uint32) *asm.Instruction {
		return asm.NewInstruction(name, opBranch|funct3<<12,
			regRs1(regs), regRs2(regs), immB())
	}

	return []*asm.Instruction{
		asm.NewInstruction("lui", opLui, regRd(regs), immU()),
		asm.NewInstruction("auipc", opAuipc, regRd(regs), immU()),
		asm.NewInstruction("jal", opJal, regRd(regs), immJ()),
		itype("jalr", opJalr, 0x0),

		branch("beq", 0x0),
		branch("bne", 0x1),
		branch("blt", 0x4),
		branch("bge", 0x5),
		branch("bltu", 0x6),
		branch("bgeu", 0x7),

		load("lb", 0x0),
		load("lh", 0x1),
		load("lw", 0x2),
		load("lbu", 0x4),
		load("lhu", 0x5),

		store("sb", 0x0),
		store("sh", 0x1),
		store("sw", 0x2),

		itype("addi", opOpImm, 0x0),
		itype("slti", opOpImm, 0x2),
		itype("sltiu", opOpImm, 0x3),
		itype("xori", opOpImm, 0x4),
		itype("ori", opOpImm, 0x6),
		itype("andi", opOpImm, 0x7),
		shift("slli", 0x1, 0x00),
		shift("srli", 0x5, 0x00),
		shift("srai", 0x5, 0x20),

		rtype("add", 0x0, 0x00),
		rtype("sub", 0x0, 0x20),
		rtype("sll", 0x1, 0x00),
		rtype("slt", 0x2, 0x00),
		rtype("sltu", 0x3, 0x00),
		rtype("xor", 0x4, 0x00),
		rtype("srl", 0x5, 0x00),
		rtype("sra", 0x5, 0x20),
		rtype("or", 0x6, 0x00),
		rtype("and", 0x7, 0x00),

		// fence iorw,iorw; the fm/pred/succ bits are fixed.
		asm.NewInstruction("fence", opMiscMem|0x0FF00000),
		asm.NewInstruction("ecall", opSystem),
		asm.NewInstruction("ebreak", opSystem|1<<20),
	}
}
