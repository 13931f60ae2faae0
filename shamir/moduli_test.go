package shamir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keyshard/keyshard/field"
)

func TestMersenne521(t *testing.T) {
	p := Mersenne521()
	require.Equal(t, 521, p.BitLen())
	require.True(t, p.ProbablyPrime(64))
	require.Equal(t, "6864797660130609714981900799081393217269435300143305409394463459185543183397656052122559640661454554977296311391480858037121987999716643812574028291115057151", p.String())
}

func TestResolveModulus(t *testing.T) {

	t.Run("Names", func(t *testing.T) {
		p, err := ResolveModulus("bn254")
		require.NoError(t, err)
		require.Equal(t, "21888242871839275222246405745257275088548364400416034343698204186575808495617", p.String())

		p, err = ResolveModulus("BLS12-381")
		require.NoError(t, err)
		require.Equal(t, "52435875175126190479447740508185965837690552500527637822603658699938581184513", p.String())

		p, err = ResolveModulus("mersenne521")
		require.NoError(t, err)
		require.Equal(t, 0, p.Cmp(Mersenne521()))
	})

	t.Run("Integers", func(t *testing.T) {
		p, err := ResolveModulus("101")
		require.NoError(t, err)
		require.Equal(t, int64(101), p.Int64())

		p, err = ResolveModulus("0x65")
		require.NoError(t, err)
		require.Equal(t, int64(101), p.Int64())

		p, err = ResolveModulus("0b1100101")
		require.NoError(t, err)
		require.Equal(t, int64(101), p.Int64())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"", "banana", "-7", "0", "1", "2", "10.5"} {
			_, err := ResolveModulus(s)
			require.ErrorIs(t, err, field.ErrInvalidModulus, "s=%q", s)
		}
	})
}
