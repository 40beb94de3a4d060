package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitRange(t *testing.T) {
	assert := assert.New(t)

	r := BitRange{Hi: 11, Lo: 7}
	assert.Equal(uint32(5), r.Width())
	assert.Equal(uint32(0xF80), r.Mask())
	assert.Equal(uint32(0x100), r.Insert(2))
	assert.Equal(uint32(2), r.Extract(0x100))

	full := BitRange{Hi: 31, Lo: 0}
	assert.Equal(uint32(32), full.Width())
	assert.Equal(^uint32(0), full.Mask())
}

func TestRegField(t *testing.T) {
	assert := assert.New(t)

	isa := newFakeISA()
	reg := &Reg{File: isa.Registers(), Range: BitRange{Hi: 11, Lo: 7}}

	var word uint32
	link, err := reg.Encode("r3", &word)
	assert.NoError(err)
	assert.Nil(link)
	assert.Equal(uint32(3)<<7, word)

	token, err := reg.Decode(word, 0, nil)
	assert.NoError(err)
	assert.Equal("r3", token)

	_, err = reg.Encode("r9", &word)
	assert.ErrorContains(err, "Unknown register 'r9'")
}

// scattered is the fakeISA jmp immediate: 8 bits signed and
// PC-relative, split across two nibbles.
func scattered() *Imm {
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

func TestImmScatter(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	link, err := imm.Encode("18", &word)
	assert.NoError(err)
	assert.Nil(link)
	assert.Equal(uint32(0x1)<<28|uint32(0x2)<<12, word)

	token, err := imm.Decode(word, 0, nil)
	assert.NoError(err)
	assert.Equal("18", token)
}

func TestImmSignExtension(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	_, err := imm.Encode("-4", &word)
	assert.NoError(err)
	// -4 is 0xFC in eight bits.
	assert.Equal(uint32(0xF)<<28|uint32(0xC)<<12, word)

	token, err := imm.Decode(word, 0, nil)
	assert.NoError(err)
	assert.Equal("-4", token)
}

func TestImmRangeAndAlignment(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	_, err := imm.Encode("128", &word)
	assert.ErrorContains(err, "out of range")
	_, err = imm.Encode("-130", &word)
	assert.ErrorContains(err, "out of range")
	_, err = imm.Encode("3", &word)
	assert.ErrorContains(err, "not aligned")

	unsigned := &Imm{
		Width:  8,
		Slices: []ImmSlice{{Word: BitRange{Hi: 19, Lo: 12}, ValueLo: 0}},
	}
	_, err = unsigned.Encode("-1", &word)
	assert.ErrorContains(err, "out of range")
	_, err = unsigned.Encode("256", &word)
	assert.ErrorContains(err, "out of range")
	word = 0
	_, err = unsigned.Encode("255", &word)
	assert.NoError(err)
	assert.Equal(uint32(0xFF)<<12, word)
}

func TestImmSymbolLink(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	link, err := imm.Encode("target", &word)
	assert.NoError(err)
	if assert.NotNil(link) {
		assert.Equal("target", link.Symbol)
		assert.Equal(imm, link.Field)
	}
	assert.Equal(uint32(0), word)

	// Symbol at 2, instruction at 6: a relative offset of -4.
	err = imm.ApplySymbolResolution(2, &word, 6)
	assert.NoError(err)
	assert.Equal(uint32(0xF)<<28|uint32(0xC)<<12, word)
}

func TestImmSymbolOutOfRange(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	err := imm.ApplySymbolResolution(1024, &word, 0)
	assert.ErrorContains(err, "out of range")
}

func TestImmDecodeSymbol(t *testing.T) {
	assert := assert.New(t)

	imm := scattered()

	var word uint32
	_, err := imm.Encode("-4", &word)
	assert.NoError(err)

	symbols := ReverseSymbolMap{0: "loop"}
	token, err := imm.Decode(word, 4, symbols)
	assert.NoError(err)
	assert.Equal("loop", token)
}
