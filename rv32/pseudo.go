package rv32

import (
	"fmt"
	"strconv"

	"github.com/ezrec/rvasm/asm"
)

// fixed wraps an expansion taking an exact operand count.
func fixed(count int, expand func(ops asm.LineTokens) []asm.LineTokens) func(asm.TokenizedSrcLine) ([]asm.LineTokens, error) {
	return func(line asm.TokenizedSrcLine) ([]asm.LineTokens, error) {
		ops := line.Tokens[1:]
		if len(ops) < count {
			return nil, asm.ErrTooFewTokens
		}
		if len(ops) > count {
			return nil, asm.ErrTooManyTokens
		}
		return expand(ops), nil
	}
}

func one(tokens ...string) []asm.LineTokens {
	return []asm.LineTokens{tokens}
}

// expandLi materializes a 32-bit constant with addi, or lui plus addi
// when it does not fit in 12 signed bits. The addi is left out when the
// low 12 bits of the constant are zero.
func expandLi(line asm.TokenizedSrcLine) ([]asm.LineTokens, error) {
	ops := line.Tokens[1:]
	if len(ops) < 2 {
		return nil, asm.ErrTooFewTokens
	}
	if len(ops) > 2 {
		return nil, asm.ErrTooManyTokens
	}
	value64, err := strconv.ParseInt(ops[1], 0, 33)
	if err != nil {
		return nil, ErrNotANumber(ops[1])
	}
	value := int64(int32(uint32(value64)))

	if value >= -2048 && value < 2048 {
		return one("addi", ops[0], "x0", strconv.FormatInt(value, 10)), nil
	}

	upper := uint32(value+0x800) >> 12
	lower := value - int64(int32(upper<<12))
	lines := one("lui", ops[0], fmt.Sprintf("%#x", upper))
	if lower != 0 {
		lines = append(lines, asm.LineTokens{"addi", ops[0], ops[0], strconv.FormatInt(lower, 10)})
	}
	return lines, nil
}

// pseudoInstructions builds the common RV32I pseudo-instruction table.
func pseudoInstructions() []*asm.PseudoInstruction {
	return []*asm.PseudoInstruction{
		{Name: "nop", Expand: fixed(0, func(ops asm.LineTokens) []asm.LineTokens {
			return one("addi", "x0", "x0", "0")
		})},
		{Name: "mv", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("addi", ops[0], ops[1], "0")
		})},
		{Name: "not", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("xori", ops[0], ops[1], "-1")
		})},
		{Name: "neg", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("sub", ops[0], "x0", ops[1])
		})},
		{Name: "seqz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("sltiu", ops[0], ops[1], "1")
		})},
		{Name: "snez", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("sltu", ops[0], "x0", ops[1])
		})},
		{Name: "sltz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("slt", ops[0], ops[1], "x0")
		})},
		{Name: "sgtz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("slt", ops[0], "x0", ops[1])
		})},

		{Name: "beqz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("beq", ops[0], "x0", ops[1])
		})},
		{Name: "bnez", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("bne", ops[0], "x0", ops[1])
		})},
		{Name: "blez", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("bge", "x0", ops[0], ops[1])
		})},
		{Name: "bgez", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("bge", ops[0], "x0", ops[1])
		})},
		{Name: "bltz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("blt", ops[0], "x0", ops[1])
		})},
		{Name: "bgtz", Expand: fixed(2, func(ops asm.LineTokens) []asm.LineTokens {
			return one("blt", "x0", ops[0], ops[1])
		})},

		{Name: "j", Expand: fixed(1, func(ops asm.LineTokens) []asm.LineTokens {
			return one("jal", "x0", ops[0])
		})},
		{Name: "jr", Expand: fixed(1, func(ops asm.LineTokens) []asm.LineTokens {
			return one("jalr", "x0", ops[0], "0")
		})},
		{Name: "ret", Expand: fixed(0, func(ops asm.LineTokens) []asm.LineTokens {
			return one("jalr", "x0", "x1", "0")
		})},
		// Near calls; the target must be within jal range.
		{Name: "call", Expand: fixed(1, func(ops asm.LineTokens) []asm.LineTokens {
			return one("jal", "x1", ops[0])
		})},
		{Name: "tail", Expand: fixed(1, func(ops asm.LineTokens) []asm.LineTokens {
			return one("jal", "x0", ops[0])
		})},

		{Name: "li", Expand: expandLi},
	}
}
