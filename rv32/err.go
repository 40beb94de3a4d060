package rv32

import (
	"errors"

	"github.com/ezrec/rvasm/translate"
)

var f = translate.From

var errStringExpected = errors.New(f("Expected a quoted string"))

// ErrNotANumber reports an operand that had to be a numeric literal.
type ErrNotANumber string

func (err ErrNotANumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrDataRange reports a data directive value wider than its element size.
type ErrDataRange string

func (err ErrDataRange) Error() string {
	return f("'%v' does not fit the directive size", string(err))
}
