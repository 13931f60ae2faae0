package shamir

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/keyshard/keyshard/field"
)

// Mode selects the arithmetic the reconstruction runs on.
type Mode int

const (
	// ModeExact reconstructs over the integers with exact rational
	// arithmetic. It is the mode for share files whose values were never
	// reduced by a modulus.
	ModeExact Mode = iota
	// ModeModular reconstructs over the prime field of the configured
	// modulus.
	ModeModular
)

// String returns "exact" or "modular".
func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModeModular:
		return "modular"
	}
	return fmt.Sprintf("invalid(%d)", int(m))
}

// ParseMode maps "exact" and "modular" (any casing) back to their [Mode].
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return ModeExact, nil
	case "modular":
		return ModeModular, nil
	}
	return 0, fmt.Errorf("unknown mode %q, must be exact or modular", s)
}

// ParametersLiteral is the unchecked literal configuration of a [Combiner].
//
// Modulus must stay empty in exact mode. In modular mode it is required and
// holds either a name known to [ResolveModulus] or a plain integer.
type ParametersLiteral struct {
	Mode    string `json:"mode"`
	Modulus string `json:"modulus,omitempty"`
}

// Parameters is a validated [Combiner] configuration.
type Parameters struct {
	Mode    Mode
	Modulus *big.Int
}

// NewParametersFromLiteral validates lit and resolves its modulus.
func NewParametersFromLiteral(lit ParametersLiteral) (params Parameters, err error) {

	if params.Mode, err = ParseMode(lit.Mode); err != nil {
		return Parameters{}, err
	}

	switch params.Mode {
	case ModeExact:
		if lit.Modulus != "" {
			return Parameters{}, fmt.Errorf("mode exact does not take a modulus, but got %q", lit.Modulus)
		}
	case ModeModular:
		if lit.Modulus == "" {
			return Parameters{}, fmt.Errorf("%w: mode modular requires one", field.ErrInvalidModulus)
		}
		if params.Modulus, err = ResolveModulus(lit.Modulus); err != nil {
			return Parameters{}, err
		}
	}

	return
}

// Validate checks the consistency between the mode and the modulus.
func (p Parameters) Validate() error {
	switch p.Mode {
	case ModeExact:
		if p.Modulus != nil {
			return fmt.Errorf("mode exact does not take a modulus, but got %s", p.Modulus)
		}
	case ModeModular:
		if err := field.CheckModulus(p.Modulus); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown mode %d", int(p.Mode))
	}
	return nil
}

// Equal performs a deep equal.
func (p Parameters) Equal(other *Parameters) bool {
	return p.Mode == other.Mode && cmp.Equal(p.Modulus, other.Modulus, bigIntComparer)
}

// Combiner reconstructs secrets from share sets. It is safe for concurrent
// use: reconstructions share no state beyond the read-only parameters.
type Combiner struct {
	params Parameters
}

// NewCombiner creates a new [Combiner] from the given parameters, deep
// copying the modulus so that later writes to it cannot skew the
// reconstruction.
func NewCombiner(params Parameters) (*Combiner, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if params.Modulus != nil {
		params.Modulus = new(big.Int).Set(params.Modulus)
	}
	return &Combiner{params: params}, nil
}

// Parameters returns a deep copy of the parameters of the receiver.
func (cmb *Combiner) Parameters() Parameters {
	params := cmb.params
	if params.Modulus != nil {
		params.Modulus = new(big.Int).Set(params.Modulus)
	}
	return params
}

// Combine interpolates the shares of the set at zero with the arithmetic
// selected by the parameters and returns the secret.
func (cmb *Combiner) Combine(set *ShareSet) (*big.Int, error) {
	if cmb.params.Mode == ModeModular {
		return InterpolateConstMod(set.Shares, cmb.params.Modulus)
	}
	return InterpolateConst(set.Shares)
}

// Reconstruct runs the whole pipeline on a share file literal: decode and
// validate with [NewShareSet], then [Combiner.Combine] the resulting set.
// Dropped shares are reported even when a later stage fails.
func (cmb *Combiner) Reconstruct(lit *ShareSetLiteral) (secret *big.Int, dropped []DroppedShare, err error) {
	set, dropped, err := NewShareSet(lit)
	if err != nil {
		return nil, dropped, err
	}
	secret, err = cmb.Combine(set)
	return secret, dropped, err
}
