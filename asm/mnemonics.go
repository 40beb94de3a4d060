package asm

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/rvasm/internal"
)

// Mnemonics yields every assemblable mnemonic: instructions first, then
// pseudo-instructions, each group sorted.
func (a *Assembler) Mnemonics() iter.Seq[string] {
	instructions := slices.Sorted(maps.Keys(a.instructions))
	pseudos := slices.Sorted(maps.Keys(a.pseudos))
	return internal.IterSeqConcat(slices.Values(instructions), slices.Values(pseudos))
}
