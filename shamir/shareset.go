package shamir

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"golang.org/x/exp/maps"

	"github.com/keyshard/keyshard/utils/bignum"
)

var (
	// ErrInvalidThreshold is returned when the threshold k of a share file
	// does not satisfy 2 <= k <= n.
	ErrInvalidThreshold = errors.New("invalid threshold")
	// ErrInsufficientShares is returned when fewer than k shares survive
	// decoding.
	ErrInsufficientShares = errors.New("not enough decodable shares")
)

// NewShareSet decodes and validates lit, returning a reconstruction-ready
// [ShareSet] together with the shares that had to be discarded.
//
// A share whose base lies outside of [[bignum.MinBase], [bignum.MaxBase]],
// or whose value does not decode under its base, is dropped rather than
// failing the set. The surviving shares are sorted by ascending point and
// the first k of them are retained. With fewer than k decodable shares the
// secret is out of reach and an error wrapping [ErrInsufficientShares] is
// returned; a threshold violating 2 <= k <= n returns an error wrapping
// [ErrInvalidThreshold]. In both cases the dropped shares are still
// reported when validation got that far.
func NewShareSet(lit *ShareSetLiteral) (set *ShareSet, dropped []DroppedShare, err error) {

	n, k := lit.Keys.N, lit.Keys.K

	if k < 2 || k > n {
		return nil, nil, fmt.Errorf("%w: k=%d, n=%d, need 2 <= k <= n", ErrInvalidThreshold, k, n)
	}

	xs := maps.Keys(lit.Shares)
	slices.Sort(xs)

	shares := make([]Share, 0, len(xs))

	for _, x := range xs {

		sl := lit.Shares[x]

		base, err := strconv.Atoi(sl.Base)
		if err != nil {
			dropped = append(dropped, DroppedShare{X: x, Base: sl.Base, Value: sl.Value,
				Err: fmt.Errorf("%w: %q is not an integer", bignum.ErrBase, sl.Base)})
			continue
		}

		y, err := bignum.ParseInt(sl.Value, base)
		if err != nil {
			dropped = append(dropped, DroppedShare{X: x, Base: sl.Base, Value: sl.Value, Err: err})
			continue
		}

		shares = append(shares, Share{X: x, Y: y})
	}

	if len(shares) < k {
		return nil, dropped, fmt.Errorf("%w: %d of %d shares decode, need k=%d", ErrInsufficientShares, len(shares), len(lit.Shares), k)
	}

	return &ShareSet{N: n, K: k, Shares: shares[:k:k]}, dropped, nil
}
