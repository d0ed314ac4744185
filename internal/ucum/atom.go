package ucum

import (
	"fmt"
	"math/big"

	"github.com/banshee-data/ucum/internal/dimension"
	"github.com/banshee-data/ucum/internal/numeric"
)

// Atom is a named unit from the UCUM tables, e.g. "m", "[in_i]" or "Cel".
// Atoms are owned by the registry and compared by identity.
type Atom struct {
	code           string
	secondaryCode  string
	printSymbol    string
	names          []string
	property       string
	classification Classification
	metric         bool
	special        bool
	arbitrary      bool
	index          int

	base       bool
	dim        dimension.Dimension
	definition *Definition

	// resolved by the registry after every definition is parsed
	composition dimension.Composition
	scalar      *big.Rat
}

// Code returns the case-sensitive UCUM code.
func (a *Atom) Code() string { return a.code }

// SecondaryCode returns the uppercase UCUM "c/i" code.
func (a *Atom) SecondaryCode() string { return a.secondaryCode }

// PrintSymbol returns the display symbol, such as "°C".
func (a *Atom) PrintSymbol() string { return a.printSymbol }

// Property names the measured quantity, such as "length".
func (a *Atom) Property() string { return a.property }

// Classification returns the unit system the atom belongs to.
func (a *Atom) Classification() Classification { return a.classification }

// IsMetric reports whether the atom takes metric prefixes.
func (a *Atom) IsMetric() bool { return a.metric }

// IsSpecial reports whether conversions go through a FunctionSet.
func (a *Atom) IsSpecial() bool { return a.special }

// IsArbitrary reports an arbitrary unit, which has no base-unit scale.
func (a *Atom) IsArbitrary() bool { return a.arbitrary }

// IsBase reports one of the seven base atoms.
func (a *Atom) IsBase() bool { return a.base }

// Definition returns how the atom is defined in terms of other atoms.
func (a *Atom) Definition() *Definition { return a.definition }

func (a *Atom) String() string { return a.code }

// Names returns a copy of the atom's names.
func (a *Atom) Names() []string {
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Composition is the atom's dimension product.
func (a *Atom) Composition() dimension.Composition { return a.composition }

// Scalar is ReduceValue(1).
func (a *Atom) Scalar() (*big.Rat, error) { return a.ReduceValue(numeric.One()) }

// ReduceValue maps x (in this atom) onto the base-unit scale. Linear atoms
// ignore x and return their constant scale.
func (a *Atom) ReduceValue(x *big.Rat) (*big.Rat, error) {
	if !a.special {
		return numeric.Clone(a.scalar), nil
	}
	y, err := a.definition.functions.ToBase(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.code, err)
	}
	return new(big.Rat).Mul(y, a.scalar), nil
}

// CalculateMagnitude maps a base-scale value back onto this atom's scale.
// It is 1 for linear atoms.
func (a *Atom) CalculateMagnitude(x *big.Rat) (*big.Rat, error) {
	if !a.special {
		return numeric.One(), nil
	}
	v, err := numeric.Quo(x, a.scalar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.code, err)
	}
	y, err := a.definition.functions.FromBase(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.code, err)
	}
	return y, nil
}
