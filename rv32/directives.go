package rv32

import (
	"strconv"
	"strings"

	"github.com/japanoise/numparse"

	"github.com/ezrec/rvasm/asm"
)

// dataValue parses one data operand as an unsigned or negated literal
// fitting in size bytes.
func dataValue(token string, size int) (uint64, error) {
	negate := strings.HasPrefix(token, "-")
	if negate {
		token = token[1:]
	}
	parsed, err := numparse.UNumParse(token)
	if err != nil {
		return 0, ErrNotANumber(token)
	}
	value := uint64(parsed)
	bits := uint(size * 8)
	limit := uint64(1) << bits
	if negate {
		if value > limit>>1 {
			return 0, ErrDataRange("-" + token)
		}
		value = (limit - value) & (limit - 1)
	} else if value > limit-1 {
		return 0, ErrDataRange(token)
	}
	return value, nil
}

// data emits each operand as a little-endian element of size bytes.
func data(size int) func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
	return func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
		if len(line.Tokens) < 2 {
			return nil, asm.ErrTooFewTokens
		}
		out := make([]byte, 0, size*(len(line.Tokens)-1))
		for _, token := range line.Tokens[1:] {
			value, err := dataValue(token, size)
			if err != nil {
				return nil, err
			}
			for n := 0; n < size; n++ {
				out = append(out, byte(value>>(8*n)))
			}
		}
		return out, nil
	}
}

// zero emits N zero bytes.
func zero(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
	if len(line.Tokens) < 2 {
		return nil, asm.ErrTooFewTokens
	}
	if len(line.Tokens) > 2 {
		return nil, asm.ErrTooManyTokens
	}
	count, err := numparse.UNumParse(line.Tokens[1])
	if err != nil {
		return nil, ErrNotANumber(line.Tokens[1])
	}
	return make([]byte, count), nil
}

// str emits a quoted string, with an optional NUL terminator.
func str(terminate bool) func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
	return func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
		if len(line.Tokens) < 2 {
			return nil, asm.ErrTooFewTokens
		}
		if len(line.Tokens) > 2 {
			return nil, asm.ErrTooManyTokens
		}
		token := line.Tokens[1]
		if !strings.HasPrefix(token, "\"") {
			return nil, errStringExpected
		}
		text, err := strconv.Unquote(token)
		if err != nil {
			return nil, errStringExpected
		}
		out := []byte(text)
		if terminate {
			out = append(out, 0)
		}
		return out, nil
	}
}

// segment switches the current segment; no bytes are emitted.
func segment(name string) func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
	return func(state *asm.AsmState, line asm.TokenizedSrcLine) ([]byte, error) {
		state.Segment = name
		return nil, nil
	}
}

// directives builds the directive table.
func directives() []*asm.Directive {
	return []*asm.Directive{
		{Name: ".text", Handle: segment(".text")},
		{Name: ".data", Handle: segment(".data")},
		{Name: ".byte", Handle: data(1)},
		{Name: ".half", Handle: data(2)},
		{Name: ".word", Handle: data(4)},
		{Name: ".zero", Handle: zero},
		{Name: ".ascii", Handle: str(false)},
		{Name: ".string", Handle: str(true)},
		{Name: ".asciz", Handle: str(true)},
	}
}
