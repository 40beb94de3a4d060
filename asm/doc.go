// Package asm implements a multi-pass assembler and disassembler for
// fixed-width 32-bit instruction sets.
//
// The package is generic over an ISA descriptor: instruction encodings,
// pseudo-instruction expansions, assembler directives and the register
// file are all supplied through the ISA interface. Assembly runs in four
// passes (tokenization, pseudo-instruction expansion, encoding with
// symbol recording, and symbol linkage) and produces a flat little-endian
// byte image. Disassembly inverts the mapping with a decision-tree
// matcher over the instructions' fixed bit patterns.
package asm
