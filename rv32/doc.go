// Package rv32 describes the RV32I base instruction set for the asm
// package: the register file, the instruction encodings, the common
// pseudo-instructions, and the data and segment directives.
package rv32
