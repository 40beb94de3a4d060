package rv32

import (
	"fmt"

	"github.com/ezrec/rvasm/asm"
)

// abiNames lists the ABI register mnemonics in index order.
var abiNames = []string{
	"zero", "ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
}

// newRegisters builds the x0..x31 register file. The x-form is the
// canonical spelling; ABI names are aliases, plus fp for x8.
func newRegisters() *asm.RegisterSet {
	regs := asm.NewRegisterSet()
	for n, abi := range abiNames {
		aliases := []string{abi}
		if abi == "s0" {
			aliases = append(aliases, "fp")
		}
		regs.Add(uint32(n), fmt.Sprintf("x%d", n), aliases...)
	}
	return regs
}
