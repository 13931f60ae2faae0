package bignum

import (
	"io"
	"math/big"
)

// Polynomial is a polynomial with arbitrary precision integer coefficients,
// Coeffs[i] holding the coefficient of X^i.
type Polynomial struct {
	Coeffs []*big.Int
}

// NewPolynomial creates a new [Polynomial] from the given coefficients,
// constant term first. Accepted coefficient types are those of [NewInt].
func NewPolynomial(coeffs ...interface{}) *Polynomial {
	p := &Polynomial{Coeffs: make([]*big.Int, len(coeffs))}
	for i := range coeffs {
		p.Coeffs[i] = NewInt(coeffs[i])
	}
	return p
}

// RandPolynomial samples a polynomial of the given degree with coefficients
// uniform in [0, max-1].
func RandPolynomial(reader io.Reader, degree int, max *big.Int) *Polynomial {
	p := &Polynomial{Coeffs: make([]*big.Int, degree+1)}
	for i := range p.Coeffs {
		p.Coeffs[i] = RandInt(reader, max)
	}
	return p
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Clone returns a deep copy of the receiver.
func (p *Polynomial) Clone() *Polynomial {
	c := &Polynomial{Coeffs: make([]*big.Int, len(p.Coeffs))}
	for i := range p.Coeffs {
		c.Coeffs[i] = new(big.Int).Set(p.Coeffs[i])
	}
	return c
}

// Evaluate returns y = p(x) over the integers.
func (p *Polynomial) Evaluate(x *big.Int) (y *big.Int) {

	degree := p.Degree()

	y = new(big.Int).Set(p.Coeffs[degree])

	for i := degree - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, p.Coeffs[i])
	}

	return
}

// EvaluateModP evaluates the polynomial modulo P, treating each coefficient
// as an integer variable and returning the result as a *big.Int in the
// interval [0, P-1].
func (p *Polynomial) EvaluateModP(xInt, PInt *big.Int) (yInt *big.Int) {

	degree := p.Degree()

	yInt = new(big.Int).Mod(p.Coeffs[degree], PInt)

	for i := degree - 1; i >= 0; i-- {
		yInt.Mul(yInt, xInt)
		yInt.Add(yInt, p.Coeffs[i])
		yInt.Mod(yInt, PInt)
	}

	return
}
