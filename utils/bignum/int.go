package bignum

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Digit strings are accepted in any base from [MinBase] to [MaxBase] inclusive.
const (
	MinBase = 2
	MaxBase = 36
)

var (
	// ErrBase is returned when a base lies outside of [[MinBase], [MaxBase]].
	ErrBase = errors.New("invalid base")
	// ErrSyntax is returned when a digit string contains a character that is
	// not a valid digit for the requested base.
	ErrSyntax = errors.New("invalid digit string")
)

// ParseInt parses a digit string in the given base and returns the value as
// an arbitrary precision integer.
//
// Digits above 9 are the letters 'a' to 'z' (case insensitive), so the
// largest accepted base is 36. The string is read as an unsigned magnitude:
// no sign, no whitespace, no separators. An empty string, or any character
// whose value is >= base, returns an error wrapping [ErrSyntax].
func ParseInt(digits string, base int) (y *big.Int, err error) {

	if base < MinBase || base > MaxBase {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBase, base, MinBase, MaxBase)
	}

	if len(digits) == 0 {
		return nil, fmt.Errorf("%w: empty string", ErrSyntax)
	}

	y = new(big.Int)
	b := big.NewInt(int64(base))
	d := new(big.Int)

	for i := 0; i < len(digits); i++ {
		v := digitValue(digits[i])
		if v < 0 || v >= base {
			return nil, fmt.Errorf("%w: character %q at index %d is not a digit in base %d", ErrSyntax, digits[i], i, base)
		}
		y.Mul(y, b)
		y.Add(y, d.SetInt64(int64(v)))
	}

	return
}

// digitValue maps '0'-'9' to 0-9 and 'a'-'z' (either case) to 10-35.
// Any other byte maps to -1.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	}
	return -1
}

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// RandInt generates a random Int in [0, max-1].
func RandInt(reader io.Reader, max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(reader, max); err != nil {
		panic(fmt.Errorf("rand.Int: %w", err))
	}
	return
}
