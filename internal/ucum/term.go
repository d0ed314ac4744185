package ucum

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/banshee-data/ucum/internal/dimension"
	"github.com/banshee-data/ucum/internal/numeric"
)

// Term is one factor of a unit expression: an optional integer factor, an
// optional prefix and atom, an optional exponent and an optional annotation.
// A prefix never appears without an atom. Terms are values; == compares
// them structurally.
type Term struct {
	factor        uint32 // 0 means absent
	prefix        *Prefix
	atom          *Atom
	exponent      int32
	hasExponent   bool
	annotation    string
	hasAnnotation bool
}

// Unity returns the term "1".
func Unity() Term { return Term{factor: 1} }

// FactorTerm returns a term holding only a positive integer factor.
func FactorTerm(f uint32) Term {
	if f == 0 {
		panic("ucum: factor must be positive")
	}
	return Term{factor: f}
}

// AtomTerm returns a term holding only the atom.
func AtomTerm(a *Atom) Term {
	if a == nil {
		panic("ucum: nil atom")
	}
	return Term{atom: a}
}

// PrefixedTerm returns prefix+atom, e.g. "km".
func PrefixedTerm(p *Prefix, a *Atom) Term {
	t := AtomTerm(a)
	t.prefix = p
	return t
}

// AnnotationTerm returns an annotation-only term such as "{tot}".
func AnnotationTerm(text string) Term {
	return Term{annotation: text, hasAnnotation: true}
}

// WithFactor returns a copy of t with factor f.
func (t Term) WithFactor(f uint32) Term {
	if f == 0 {
		panic("ucum: factor must be positive")
	}
	t.factor = f
	return t
}

// WithExponent returns a copy of t with an explicit exponent.
// math.MinInt32 is raised to -math.MaxInt32 so the exponent can be negated.
func (t Term) WithExponent(e int32) Term {
	if e == math.MinInt32 {
		e = -maxExponent
	}
	t.exponent, t.hasExponent = e, true
	return t
}

// WithAnnotation returns a copy of t carrying the annotation text.
func (t Term) WithAnnotation(text string) Term {
	t.annotation, t.hasAnnotation = text, true
	return t
}

// Factor returns the numeric factor; false when absent.
func (t Term) Factor() (uint32, bool) { return t.factor, t.factor != 0 }

// Prefix returns the prefix, or nil.
func (t Term) Prefix() *Prefix { return t.prefix }

// Atom returns the atom, or nil.
func (t Term) Atom() *Atom { return t.atom }

// Exponent returns the exponent; false when absent, which means 1.
func (t Term) Exponent() (int32, bool) { return t.exponent, t.hasExponent }

// Annotation returns the annotation text; false when absent.
func (t Term) Annotation() (string, bool) { return t.annotation, t.hasAnnotation }

func (t Term) exponentOrOne() int32 {
	if t.hasExponent {
		return t.exponent
	}
	return 1
}

// IsUnity reports whether t is exactly the factor 1.
func (t Term) IsUnity() bool {
	return t.factor == 1 && t.prefix == nil && t.atom == nil && !t.hasExponent && !t.hasAnnotation
}

// HasValue reports whether t carries a factor, atom or annotation.
func (t Term) HasValue() bool {
	return t.factor != 0 || t.atom != nil || t.hasAnnotation
}

// ExponentIsPositive reports an exponent above zero, including an absent one.
func (t Term) ExponentIsPositive() bool { return t.exponentOrOne() > 0 }

// ExponentIsNegative reports an exponent below zero.
func (t Term) ExponentIsNegative() bool { return t.exponentOrOne() < 0 }

// Composition is the atom's composition raised to the exponent.
func (t Term) Composition() dimension.Composition {
	if t.atom == nil {
		return dimension.Composition{}
	}
	return t.atom.Composition().Scale(int(t.exponentOrOne()))
}

// IsSpecial reports whether the atom converts through functions.
func (t Term) IsSpecial() bool { return t.atom != nil && t.atom.IsSpecial() }

// IsMetric reports whether the atom accepts metric prefixes.
func (t Term) IsMetric() bool { return t.atom != nil && t.atom.IsMetric() }

// IsArbitrary reports whether the atom is an arbitrary unit.
func (t Term) IsArbitrary() bool { return t.atom != nil && t.atom.IsArbitrary() }

// ReduceValue maps x in this term onto the base-unit scale.
func (t Term) ReduceValue(x *big.Rat) (*big.Rat, error) {
	v := numeric.One()
	if t.atom != nil {
		av, err := t.atom.ReduceValue(x)
		if err != nil {
			return nil, err
		}
		v = av
	}
	return t.scale(v)
}

// CalculateMagnitude maps a base-scale value back onto this term.
func (t Term) CalculateMagnitude(x *big.Rat) (*big.Rat, error) {
	v := numeric.One()
	if t.atom != nil {
		av, err := t.atom.CalculateMagnitude(x)
		if err != nil {
			return nil, err
		}
		v = av
	}
	return t.scale(v)
}

// scale applies prefix, factor and exponent to v. v is consumed.
func (t Term) scale(v *big.Rat) (*big.Rat, error) {
	if t.prefix != nil {
		v.Mul(v, t.prefix.value)
	}
	if t.factor != 0 {
		v.Mul(v, new(big.Rat).SetUint64(uint64(t.factor)))
	}
	if t.hasExponent {
		return numeric.Pow(v, int(t.exponent))
	}
	return v, nil
}

// Invert negates the exponent. An absent exponent becomes -1 and -1 becomes
// absent.
func (t Term) Invert() Term {
	switch {
	case !t.hasExponent:
		t.exponent, t.hasExponent = -1, true
	case t.exponent == -1:
		t.exponent, t.hasExponent = 0, false
	default:
		t.exponent = -t.exponent
	}
	return t
}

// IsCompatibleWith reports equal compositions and equal annotations.
func (t Term) IsCompatibleWith(other Term) bool {
	return t.Composition().Equal(other.Composition()) &&
		t.hasAnnotation == other.hasAnnotation &&
		t.annotation == other.annotation
}

func invertTerms(terms []Term) []Term {
	for i := range terms {
		terms[i] = terms[i].Invert()
	}
	return terms
}

// String renders t as UCUM text that parses back to the same term.
func (t Term) String() string {
	if t.atom == nil && t.hasExponent && t.exponent != 1 {
		return t.repeated()
	}
	var b strings.Builder
	t.writeBase(&b)
	if t.atom != nil && t.hasExponent && t.exponent != 1 {
		b.WriteString(strconv.FormatInt(int64(t.exponent), 10))
	}
	if t.hasAnnotation {
		b.WriteString("{" + t.annotation + "}")
	}
	return b.String()
}

func (t Term) writeBase(b *strings.Builder) {
	if t.factor != 0 && (t.factor != 1 || (t.atom == nil && !t.hasAnnotation)) {
		b.WriteString(strconv.FormatUint(uint64(t.factor), 10))
	}
	if t.prefix != nil {
		b.WriteString(t.prefix.code)
	}
	if t.atom != nil {
		b.WriteString(t.atom.code)
	}
}

// repeated renders an atom-less term with an exponent, which UCUM has no
// syntax for, by repeating its base: 10^-2 becomes "/10.10".
func (t Term) repeated() string {
	if t.exponent == 0 {
		return "1"
	}
	var b strings.Builder
	t.writeBase(&b)
	if t.hasAnnotation {
		b.WriteString("{" + t.annotation + "}")
	}
	base := b.String()
	n := int(t.exponent)
	prefix := ""
	if n < 0 {
		n, prefix = -n, "/"
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = base
	}
	return prefix + strings.Join(parts, ".")
}
