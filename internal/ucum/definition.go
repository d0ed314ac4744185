package ucum

import (
	"math/big"

	"github.com/banshee-data/ucum/internal/numeric"
)

// FunctionSet converts a special unit's values to and from its reference
// scale. Functions must not modify their argument.
type FunctionSet struct {
	ToBase   func(*big.Rat) (*big.Rat, error)
	FromBase func(*big.Rat) (*big.Rat, error)
}

// Definition expresses an atom in terms of other atoms: value x terms.
// Special atoms additionally carry a FunctionSet.
type Definition struct {
	value     *big.Rat
	terms     []Term
	functions *FunctionSet
}

var unityDefinition = &Definition{value: numeric.One(), terms: []Term{Unity()}}

// Value returns the scalar in front of the definition terms.
func (d *Definition) Value() *big.Rat { return numeric.Clone(d.value) }

// Terms returns a copy of the definition terms.
func (d *Definition) Terms() []Term {
	out := make([]Term, len(d.terms))
	copy(out, d.terms)
	return out
}

// Functions returns the special conversion pair, or nil for linear atoms.
func (d *Definition) Functions() *FunctionSet { return d.functions }

// IsUnity reports whether the definition is the bare "1" used by base atoms.
func (d *Definition) IsUnity() bool {
	return d.value.Cmp(numeric.One()) == 0 && len(d.terms) == 1 && d.terms[0].IsUnity()
}

func (d *Definition) scalar() (*big.Rat, error) {
	v := numeric.Clone(d.value)
	for _, t := range d.terms {
		tv, err := t.ReduceValue(numeric.One())
		if err != nil {
			return nil, err
		}
		v.Mul(v, tv)
	}
	return v, nil
}
