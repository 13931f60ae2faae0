// Package shamir implements the recovery of secrets hidden with a
// t-out-of-N-threshold sharing scheme. A share is one evaluation (x, y) of a
// secret polynomial of degree k-1 whose constant term is the secret, and any
// k distinct shares determine the secret through Lagrange interpolation of
// the polynomial at zero. The reconstruction is carried out either over the
// integers with exact rational arithmetic, or over a prime field.
//
// The package only consumes shares. How they were produced, and whether the
// parties producing them were honest, is outside of its scope: a set of
// shares that disagrees on the underlying polynomial still interpolates to
// some value, and over the integers the interpolation is merely likely, not
// guaranteed, to expose such corruption by landing outside of the integers.
package shamir

import (
	"fmt"
	"math/big"

	"github.com/google/go-cmp/cmp"
)

// Share is a single evaluation y = f(x) of the secret polynomial at the
// public point x.
//
// See [ShareSet] and [Combiner].
type Share struct {
	X uint64
	Y *big.Int
}

// Clone returns a deep copy of the receiver.
func (s Share) Clone() Share {
	c := Share{X: s.X}
	if s.Y != nil {
		c.Y = new(big.Int).Set(s.Y)
	}
	return c
}

// Equal performs a deep equal.
func (s Share) Equal(other *Share) bool {
	return s.X == other.X && cmp.Equal(s.Y, other.Y, bigIntComparer)
}

// ShareSet is a reconstruction-ready set of shares: exactly K decoded shares
// with pairwise distinct points, sorted by ascending X.
//
// A ShareSet is produced by [NewShareSet], which enforces the above
// invariants, and consumed by [Combiner.Combine].
type ShareSet struct {
	N      int // number of shares originally dealt
	K      int // threshold, i.e. degree of the secret polynomial plus one
	Shares []Share
}

// Clone returns a deep copy of the receiver.
func (s *ShareSet) Clone() *ShareSet {
	if s == nil {
		return nil
	}
	c := &ShareSet{N: s.N, K: s.K, Shares: make([]Share, len(s.Shares))}
	for i := range s.Shares {
		c.Shares[i] = s.Shares[i].Clone()
	}
	return c
}

// Equal performs a deep equal.
func (s *ShareSet) Equal(other *ShareSet) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.N == other.N && s.K == other.K && cmp.Equal(s.Shares, other.Shares, bigIntComparer)
}

// bigIntComparer lets cmp compare *big.Int by value; cmp cannot look at the
// unexported words itself.
var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

// DroppedShare records a share that was discarded during validation,
// together with the raw fields it carried and the reason.
type DroppedShare struct {
	X     uint64
	Base  string
	Value string
	Err   error
}

func (d DroppedShare) String() string {
	return fmt.Sprintf("share x=%d (base=%q, value=%q): %s", d.X, d.Base, d.Value, d.Err)
}
