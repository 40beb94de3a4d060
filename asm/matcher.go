package asm

// Matcher maps a raw 32-bit word to its instruction descriptor through a
// decision tree over the instructions' fixed bit patterns. Each interior
// node branches on the fixed bits shared by every instruction below it.
type Matcher struct {
	root *matchNode
}

type matchNode struct {
	mask     uint32
	children map[uint32]*matchNode
	instr    *Instruction
}

// NewMatcher builds the decision tree. Two instructions with identical
// fixed mask and pattern cannot be told apart; that is a programming
// error in the ISA description and panics at construction.
func NewMatcher(instructions []*Instruction) *Matcher {
	return &Matcher{root: buildMatchNode(instructions, 0)}
}

func buildMatchNode(instructions []*Instruction, seen uint32) *matchNode {
	if len(instructions) == 1 {
		return &matchNode{instr: instructions[0]}
	}

	common := ^uint32(0)
	for _, in := range instructions {
		common &= in.FixedMask()
	}
	common &^= seen
	if common == 0 {
		names := ""
		for _, in := range instructions {
			names += " '" + in.Name() + "'"
		}
		panic("asm: ambiguous instruction encodings:" + names)
	}

	groups := map[uint32][]*Instruction{}
	for _, in := range instructions {
		key := in.FixedPattern() & common
		groups[key] = append(groups[key], in)
	}

	node := &matchNode{
		mask:     common,
		children: make(map[uint32]*matchNode, len(groups)),
	}
	for key, group := range groups {
		node.children[key] = buildMatchNode(group, seen|common)
	}
	return node
}

// Match returns the unique descriptor for word, or ErrUnknownInstruction
// when no instruction's fixed bits agree with it.
func (m *Matcher) Match(word uint32) (*Instruction, error) {
	node := m.root
	for node.instr == nil {
		child, ok := node.children[word&node.mask]
		if !ok {
			return nil, ErrUnknownInstruction
		}
		node = child
	}
	if word&node.instr.FixedMask() != node.instr.FixedPattern() {
		return nil, ErrUnknownInstruction
	}
	return node.instr, nil
}
