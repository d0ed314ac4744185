package ucum

import (
	"maps"
	"math/big"
	"strings"

	"github.com/banshee-data/ucum/internal/dimension"
	"github.com/banshee-data/ucum/internal/numeric"
)

// Unit is a reduced, canonically ordered sequence of terms. The zero Unit
// behaves as unity.
type Unit struct {
	terms []Term
}

// FromTerms reduces terms into a Unit. Exponents saturate as in Reduce.
func FromTerms(terms []Term) Unit {
	return Unit{terms: Reduce(terms)}
}

// UnityUnit returns the dimensionless unit "1".
func UnityUnit() Unit { return Unit{terms: []Term{Unity()}} }

// Parse parses a UCUM expression such as "kg.m/s2".
func Parse(expr string) (Unit, error) {
	terms, err := parseTerms(registry(), expr)
	if err != nil {
		return Unit{}, err
	}
	reduced, ok := reduce(terms)
	if !ok {
		return Unit{}, &ParseError{Kind: UnableToParse, Expression: expr, Fragment: expr, Reason: "combined exponent out of range"}
	}
	return Unit{terms: reduced}, nil
}

// MustParse is like Parse but panics on error. Intended for constants.
func MustParse(expr string) Unit {
	u, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return u
}

func (u Unit) list() []Term {
	if len(u.terms) == 0 {
		return []Term{Unity()}
	}
	return u.terms
}

// Terms returns a copy of the canonical terms.
func (u Unit) Terms() []Term {
	l := u.list()
	out := make([]Term, len(l))
	copy(out, l)
	return out
}

// Multiply returns u.other. Exponents saturate at ±math.MaxInt32.
func (u Unit) Multiply(other Unit) Unit {
	terms := append(u.Terms(), other.list()...)
	return FromTerms(terms)
}

// Divide returns u/other. Exponents saturate at ±math.MaxInt32.
func (u Unit) Divide(other Unit) Unit {
	terms := append(u.Terms(), invertTerms(other.Terms())...)
	return FromTerms(terms)
}

// Invert returns 1/u.
func (u Unit) Invert() Unit {
	return FromTerms(invertTerms(u.Terms()))
}

// IsUnity reports whether u is dimensionless "1".
func (u Unit) IsUnity() bool {
	l := u.list()
	return len(l) == 1 && l[0].IsUnity()
}

// ReduceValue maps x in this unit onto the base-unit scale.
func (u Unit) ReduceValue(x *big.Rat) (*big.Rat, error) {
	v := numeric.One()
	for _, t := range u.list() {
		tv, err := t.ReduceValue(x)
		if err != nil {
			return nil, err
		}
		v.Mul(v, tv)
	}
	return v, nil
}

// CalculateMagnitude maps a base-scale value back into this unit.
func (u Unit) CalculateMagnitude(x *big.Rat) (*big.Rat, error) {
	v := numeric.One()
	for _, t := range u.list() {
		tv, err := t.CalculateMagnitude(x)
		if err != nil {
			return nil, err
		}
		v.Mul(v, tv)
	}
	return v, nil
}

// Scalar is ReduceValue(1): the size of one of u in base units.
func (u Unit) Scalar() (*big.Rat, error) {
	return u.ReduceValue(numeric.One())
}

// Magnitude is CalculateMagnitude(Scalar()).
func (u Unit) Magnitude() (*big.Rat, error) {
	s, err := u.Scalar()
	if err != nil {
		return nil, err
	}
	return u.CalculateMagnitude(s)
}

// Composition sums the dimensional compositions of every term.
func (u Unit) Composition() dimension.Composition {
	var c dimension.Composition
	for _, t := range u.list() {
		c = c.Multiply(t.Composition())
	}
	return c
}

// AnnotationComposition maps each annotation to its summed exponent. It is
// nil when u carries no annotations.
func (u Unit) AnnotationComposition() map[string]int {
	var out map[string]int
	for _, t := range u.list() {
		if !t.hasAnnotation {
			continue
		}
		if out == nil {
			out = make(map[string]int)
		}
		out[t.annotation] += int(t.exponentOrOne())
		if out[t.annotation] == 0 {
			delete(out, t.annotation)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsCompatibleWith reports whether values can be converted between u and
// other.
func (u Unit) IsCompatibleWith(other Unit) bool {
	return u.Composition().Equal(other.Composition()) &&
		maps.Equal(u.AnnotationComposition(), other.AnnotationComposition())
}

// FieldEqual reports identical canonical term sequences.
func (u Unit) FieldEqual(other Unit) bool {
	a, b := u.list(), other.list()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Equal reports compatible units of the same size, so "m" equals "100cm".
func (u Unit) Equal(other Unit) bool {
	if !u.IsCompatibleWith(other) {
		return false
	}
	a, err := u.Scalar()
	if err != nil {
		return false
	}
	b, err := other.Scalar()
	if err != nil {
		return false
	}
	return a.Cmp(b) == 0
}

// IsSpecial reports whether any term needs a conversion function.
func (u Unit) IsSpecial() bool {
	for _, t := range u.list() {
		if t.IsSpecial() {
			return true
		}
	}
	return false
}

// IsMetric reports whether every term is metric.
func (u Unit) IsMetric() bool {
	for _, t := range u.list() {
		if !t.IsMetric() {
			return false
		}
	}
	return true
}

// IsArbitrary reports whether every term is an arbitrary unit.
func (u Unit) IsArbitrary() bool {
	for _, t := range u.list() {
		if !t.IsArbitrary() {
			return false
		}
	}
	return true
}

// String renders numerator terms, then "/" and the denominator terms with
// their exponents flipped.
func (u Unit) String() string {
	var num, den []string
	for _, t := range u.list() {
		if t.ExponentIsNegative() {
			den = append(den, t.Invert().String())
		} else {
			num = append(num, t.String())
		}
	}
	s := strings.Join(num, ".")
	if len(den) > 0 {
		s += "/" + strings.Join(den, ".")
	}
	return s
}
