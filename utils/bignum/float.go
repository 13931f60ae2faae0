package bignum

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat allocates a new *big.Float with the given precision (in bits).
func NewFloat(x float64, prec uint) (y *big.Float) {
	y = new(big.Float)
	y.SetPrec(prec)
	y.SetFloat64(x)
	return
}

// Log2 returns log2(x) with the precision of x.
// It panics if x is not strictly positive.
func Log2(x *big.Float) (y *big.Float) {

	if x.Sign() <= 0 {
		panic("cannot Log2: x must be strictly positive")
	}

	prec := x.Prec()

	y = bigfloat.Log(x)
	ln2 := bigfloat.Log(NewFloat(2, prec))

	return y.Quo(y, ln2)
}

// MagnitudeStats returns the mean and standard deviation of the base-2
// magnitudes log2(|v|) of the given values. Values can be far larger than
// what a float64 holds, so the logarithms are taken on *big.Float before
// the statistics are folded down to float64.
//
// Zero values carry no magnitude and are skipped. If fewer than one value
// remains the mean is 0, and if fewer than two remain the deviation is 0.
func MagnitudeStats(values []*big.Int, prec uint) (mean, std float64) {

	mags := make([]float64, 0, len(values))

	tmp := NewFloat(0, prec)
	for _, v := range values {
		if v == nil || v.Sign() == 0 {
			continue
		}
		tmp.SetInt(v)
		tmp.Abs(tmp)
		m, _ := Log2(tmp).Float64()
		mags = append(mags, m)
	}

	N := len(mags)

	if N == 0 {
		return 0, 0
	}

	for _, m := range mags {
		mean += m
	}
	mean /= float64(N)

	if N == 1 {
		return mean, 0
	}

	for _, m := range mags {
		std += (m - mean) * (m - mean)
	}
	std /= float64(N - 1)

	return mean, math.Sqrt(std)
}
