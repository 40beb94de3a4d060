package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher(t *testing.T) {
	assert := assert.New(t)

	isa := newFakeISA()
	matcher := NewMatcher(isa.Instructions())

	table := [](struct {
		word uint32
		name string
	}){
		{0x01 | 2<<7, "inc"},
		{0x02 | 1<<7 | 3<<12, "mov"},
		{0x03 | 0xF<<28 | 0xC<<12, "jmp"},
		{0x04, "halt"},
		{0x05 | 1<<7 | 0x40<<12, "put"},
	}

	for _, entry := range table {
		in, err := matcher.Match(entry.word)
		assert.NoError(err, entry.name)
		if err == nil {
			assert.Equal(entry.name, in.Name(), entry.name)
		}
	}
}

func TestMatcherUnknown(t *testing.T) {
	assert := assert.New(t)

	isa := newFakeISA()
	matcher := NewMatcher(isa.Instructions())

	_, err := matcher.Match(0x07)
	assert.ErrorIs(err, ErrUnknownInstruction)

	// halt with stray bits set in its fixed pattern
	_, err = matcher.Match(0x04 | 1<<20)
	assert.ErrorIs(err, ErrUnknownInstruction)
}

func TestMatcherAmbiguous(t *testing.T) {
	assert := assert.New(t)

	isa := newFakeISA()
	rd := &Reg{File: isa.Registers(), Range: BitRange{Hi: 11, Lo: 7}}
	dup := &Reg{File: isa.Registers(), Range: BitRange{Hi: 11, Lo: 7}}

	assert.Panics(func() {
		NewMatcher([]*Instruction{
			NewInstruction("one", 0x01, rd),
			NewInstruction("other", 0x01, dup),
		})
	})
}
