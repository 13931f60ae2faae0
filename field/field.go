// Package field implements the arbitrary precision modular arithmetic
// needed to interpolate polynomials over prime fields.
package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrInvalidModulus is returned when a modulus is nil or not greater than two.
	ErrInvalidModulus = errors.New("invalid modulus")
	// ErrNoInverse is returned when an element has no multiplicative inverse
	// for the given modulus.
	ErrNoInverse = errors.New("no modular inverse")
)

var two = big.NewInt(2)

// CheckModulus returns an error wrapping [ErrInvalidModulus] unless p > 2.
// Primality is not verified here: a composite modulus surfaces later as
// [ErrNoInverse] on the first non-invertible denominator.
func CheckModulus(p *big.Int) error {
	if p == nil || p.Cmp(two) <= 0 {
		return fmt.Errorf("%w: must be an integer greater than 2, but is %s", ErrInvalidModulus, p)
	}
	return nil
}

// Inverse returns a**-1 mod p as a new integer in [1, p), computed with the
// extended Euclidean algorithm. The element a can be negative or larger than
// p, it is reduced first. If a reduces to zero, or shares a factor with a
// composite p, the returned error wraps [ErrNoInverse].
func Inverse(a, p *big.Int) (inv *big.Int, err error) {

	if err = CheckModulus(p); err != nil {
		return
	}

	inv = new(big.Int).Mod(a, p)

	if inv.Sign() == 0 {
		return nil, fmt.Errorf("%w: %s is 0 mod %s", ErrNoInverse, a, p)
	}

	if inv.ModInverse(inv, p) == nil {
		return nil, fmt.Errorf("%w: gcd(%s, %s) != 1", ErrNoInverse, a, p)
	}

	return
}
