package shamir

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/keyshard/keyshard/field"
)

var (
	// ErrDegenerateShares is returned when two shares sit on the same point,
	// or on points that collide modulo the reconstruction modulus.
	ErrDegenerateShares = errors.New("degenerate shares")
	// ErrNonIntegerResult is returned by [InterpolateConst] when the
	// interpolation does not land on an integer.
	ErrNonIntegerResult = errors.New("non-integer reconstruction")
)

// InterpolateConst evaluates at zero, over the rationals, the unique
// polynomial of degree len(shares)-1 passing through the given shares, and
// returns its constant term.
//
// The Lagrange basis evaluated at zero gives
//
//	f(0) = sum_i y_i * prod_{j!=i} x_j / (x_j - x_i)
//
// and the sum is accumulated as an exact rational: individual terms are in
// general not integers even when f(0) is, so only the final sum is required
// to be one. If it is not, the shares are inconsistent (corrupted values,
// wrong points, or a threshold below the true one) and an error wrapping
// [ErrNonIntegerResult] is returned. Two shares on the same point return an
// error wrapping [ErrDegenerateShares].
func InterpolateConst(shares []Share) (*big.Int, error) {

	sum := new(big.Rat)
	term := new(big.Rat)

	num := new(big.Int)
	den := new(big.Int)
	xi := new(big.Int)
	xj := new(big.Int)
	diff := new(big.Int)

	for i := range shares {

		xi.SetUint64(shares[i].X)
		num.SetInt64(1)
		den.SetInt64(1)

		for j := range shares {
			if j == i {
				continue
			}
			xj.SetUint64(shares[j].X)
			num.Mul(num, xj)
			den.Mul(den, diff.Sub(xj, xi))
		}

		if den.Sign() == 0 {
			return nil, fmt.Errorf("%w: point x=%d appears more than once", ErrDegenerateShares, shares[i].X)
		}

		sum.Add(sum, term.SetFrac(new(big.Int).Mul(shares[i].Y, num), den))
	}

	if !sum.IsInt() {
		return nil, fmt.Errorf("%w: f(0) = %s", ErrNonIntegerResult, sum.RatString())
	}

	return new(big.Int).Set(sum.Num()), nil
}

// InterpolateConstMod evaluates at zero the polynomial interpolating the
// given shares over the prime field of the given modulus, and returns its
// constant term as the canonical representative in [0, modulus).
//
// Points and values are reduced first, so shares larger than the modulus
// are accepted. Two points that are congruent modulo the modulus flatten
// their denominator to zero exactly like a repeated point does; both cases
// return an error wrapping [ErrDegenerateShares]. Primality of the modulus
// is not checked upfront: a composite modulus surfaces as
// [field.ErrNoInverse] on the first denominator sharing a factor with it.
func InterpolateConstMod(shares []Share, modulus *big.Int) (*big.Int, error) {

	if err := field.CheckModulus(modulus); err != nil {
		return nil, err
	}

	secret := new(big.Int)

	num := new(big.Int)
	den := new(big.Int)
	xi := new(big.Int)
	xj := new(big.Int)
	tmp := new(big.Int)

	for i := range shares {

		xi.SetUint64(shares[i].X)
		num.SetInt64(1)
		den.SetInt64(1)

		for j := range shares {
			if j == i {
				continue
			}
			xj.SetUint64(shares[j].X)

			tmp.Mod(xj, modulus)
			num.Mul(num, tmp)
			num.Mod(num, modulus)

			tmp.Sub(xj, xi)
			tmp.Mod(tmp, modulus)
			den.Mul(den, tmp)
			den.Mod(den, modulus)
		}

		if den.Sign() == 0 {
			return nil, fmt.Errorf("%w: point x=%d repeats or collides with another point modulo %s", ErrDegenerateShares, shares[i].X, modulus)
		}

		inv, err := field.Inverse(den, modulus)
		if err != nil {
			return nil, err
		}

		term := new(big.Int).Mod(shares[i].Y, modulus)
		term.Mul(term, inv)
		term.Mod(term, modulus)
		term.Mul(term, num)
		term.Mod(term, modulus)

		secret.Add(secret, term)
		secret.Mod(secret, modulus)
	}

	return secret, nil
}
