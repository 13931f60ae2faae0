package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"

	"github.com/keyshard/keyshard/utils/bignum"
)

// bruteForceInverse scans [1, p) for the inverse. Only usable for tiny
// moduli, it is the independent oracle for the real implementation.
func bruteForceInverse(a, p *big.Int) *big.Int {
	r := new(big.Int).Mod(a, p)
	one := big.NewInt(1)
	prod := new(big.Int)
	for x := big.NewInt(1); x.Cmp(p) < 0; x.Add(x, one) {
		if prod.Mul(r, x).Mod(prod, p).Cmp(one) == 0 {
			return new(big.Int).Set(x)
		}
	}
	return nil
}

func TestInverse(t *testing.T) {

	one := big.NewInt(1)

	t.Run("MatchesBruteForce", func(t *testing.T) {
		p := big.NewInt(13)
		for a := int64(1); a < 13; a++ {
			inv, err := Inverse(big.NewInt(a), p)
			require.NoError(t, err)
			require.Equal(t, 0, inv.Cmp(bruteForceInverse(big.NewInt(a), p)))
		}
	})

	t.Run("ProductIsOne", func(t *testing.T) {
		p := big.NewInt(101)
		prod := new(big.Int)
		for a := int64(1); a < 101; a++ {
			inv, err := Inverse(big.NewInt(a), p)
			require.NoError(t, err)
			require.Positive(t, inv.Sign())
			require.Equal(t, -1, inv.Cmp(p))
			prod.Mul(big.NewInt(a), inv).Mod(prod, p)
			require.Equal(t, 0, prod.Cmp(one))
		}
	})

	t.Run("MatchesFermat", func(t *testing.T) {
		p := fr.Modulus()
		pm2 := new(big.Int).Sub(p, big.NewInt(2))
		for i := 0; i < 16; i++ {
			a := bignum.RandInt(rand.Reader, p)
			if a.Sign() == 0 {
				continue
			}
			inv, err := Inverse(a, p)
			require.NoError(t, err)
			require.Equal(t, 0, inv.Cmp(new(big.Int).Exp(a, pm2, p)))
		}
	})

	t.Run("ReducesInputs", func(t *testing.T) {
		p := big.NewInt(101)
		// -1 and p-1 are the same element.
		inv, err := Inverse(big.NewInt(-1), p)
		require.NoError(t, err)
		require.Equal(t, int64(100), inv.Int64())
		// p+2 and 2 are the same element.
		inv2, err := Inverse(big.NewInt(2), p)
		require.NoError(t, err)
		invBig, err := Inverse(big.NewInt(103), p)
		require.NoError(t, err)
		require.Equal(t, 0, inv2.Cmp(invBig))
	})

	t.Run("NoInverse", func(t *testing.T) {
		p := big.NewInt(101)
		for _, a := range []*big.Int{big.NewInt(0), big.NewInt(101), big.NewInt(-202), new(big.Int).Mul(p, p)} {
			_, err := Inverse(a, p)
			require.ErrorIs(t, err, ErrNoInverse)
		}
		// 3 shares a factor with the composite modulus 15.
		_, err := Inverse(big.NewInt(3), big.NewInt(15))
		require.ErrorIs(t, err, ErrNoInverse)
	})

	t.Run("InvalidModulus", func(t *testing.T) {
		for _, p := range []*big.Int{nil, big.NewInt(-7), big.NewInt(0), big.NewInt(1), big.NewInt(2)} {
			_, err := Inverse(big.NewInt(3), p)
			require.ErrorIs(t, err, ErrInvalidModulus)
		}
	})
}

func TestCheckModulus(t *testing.T) {
	require.NoError(t, CheckModulus(big.NewInt(3)))
	require.NoError(t, CheckModulus(fr.Modulus()))
	require.ErrorIs(t, CheckModulus(big.NewInt(2)), ErrInvalidModulus)
	require.ErrorIs(t, CheckModulus(nil), ErrInvalidModulus)
}
