package shamir

import (
	"fmt"
	"math/big"
	"strings"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	bn254 "github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/keyshard/keyshard/field"
)

// Mersenne521 returns 2^521 - 1, the Mersenne prime spanning 521 bits. It
// comfortably bounds secrets of up to 64 bytes and is the default modulus
// of the command line tool.
func Mersenne521() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 521)
	return p.Sub(p, big.NewInt(1))
}

// ResolveModulus resolves a modulus name or integer string to its value.
//
// The names "bn254" and "bls12-381" resolve to the scalar field moduli of
// the respective pairing curves, and "mersenne521" to [Mersenne521]. Any
// other string is parsed as a plain integer, in decimal or with a 0b, 0o
// or 0x prefix. The result must pass [field.CheckModulus].
func ResolveModulus(s string) (p *big.Int, err error) {

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bn254":
		p = bn254.Modulus()
	case "bls12-381", "bls12381":
		p = bls12381.Modulus()
	case "mersenne521":
		p = Mersenne521()
	default:
		var ok bool
		if p, ok = new(big.Int).SetString(strings.TrimSpace(s), 0); !ok {
			return nil, fmt.Errorf("%w: cannot parse %q as an integer", field.ErrInvalidModulus, s)
		}
	}

	if err = field.CheckModulus(p); err != nil {
		return nil, err
	}

	return
}
