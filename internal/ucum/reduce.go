package ucum

import (
	"math"
	"sort"
)

// termKey identifies terms that can be merged by adding exponents.
type termKey struct {
	factor        uint32
	prefix        *Prefix
	atom          *Atom
	annotation    string
	hasAnnotation bool
}

func keyOf(t Term) termKey {
	k := termKey{factor: t.factor, prefix: t.prefix, atom: t.atom, annotation: t.annotation, hasAnnotation: t.hasAnnotation}
	if k.factor == 1 && (k.atom != nil || k.hasAnnotation) {
		k.factor = 0
	}
	return k
}

var unityKey = termKey{factor: 1}

// rank orders key shapes: FPAA, FPA, FAA, FA, F+annotation, F, PAA, PA, AA,
// A, annotation.
func (k termKey) rank() int {
	hasF, hasP, hasA, hasN := k.factor != 0, k.prefix != nil, k.atom != nil, k.hasAnnotation
	switch {
	case hasF && hasP && hasN:
		return 0
	case hasF && hasP:
		return 1
	case hasF && hasA && hasN:
		return 2
	case hasF && hasA:
		return 3
	case hasF && hasN:
		return 4
	case hasF:
		return 5
	case hasP && hasN:
		return 6
	case hasP:
		return 7
	case hasA && hasN:
		return 8
	case hasA:
		return 9
	default:
		return 10
	}
}

func (k termKey) less(o termKey) bool {
	if r1, r2 := k.rank(), o.rank(); r1 != r2 {
		return r1 < r2
	}
	if k.factor != o.factor {
		return k.factor < o.factor
	}
	if p1, p2 := prefixOrder(k.prefix), prefixOrder(o.prefix); p1 != p2 {
		return p1 < p2
	}
	if a1, a2 := atomOrder(k.atom), atomOrder(o.atom); a1 != a2 {
		return a1 < a2
	}
	return k.annotation < o.annotation
}

func prefixOrder(p *Prefix) int {
	if p == nil {
		return -1
	}
	return p.index
}

func atomOrder(a *Atom) int {
	if a == nil {
		return -1
	}
	return a.index
}

func (k termKey) term(exponent int32) Term {
	t := Term{factor: k.factor, prefix: k.prefix, atom: k.atom, annotation: k.annotation, hasAnnotation: k.hasAnnotation}
	if exponent != 1 {
		t.exponent, t.hasExponent = exponent, true
	}
	return t
}

// maxExponent bounds merged exponents. math.MinInt32 is never produced, so
// every exponent can be negated.
const maxExponent = math.MaxInt32

// Reduce merges like terms into canonical form. The result is never empty.
// Merged exponents outside ±math.MaxInt32 saturate at that bound.
func Reduce(terms []Term) []Term {
	out, _ := reduce(terms)
	return out
}

// reduce is Reduce that also reports whether every merged exponent fit.
func reduce(terms []Term) ([]Term, bool) {
	sums := make(map[termKey]int64, len(terms))
	keys := make([]termKey, 0, len(terms))
	for _, t := range terms {
		k := keyOf(t)
		if _, seen := sums[k]; !seen {
			keys = append(keys, k)
		}
		sums[k] += int64(t.exponentOrOne())
	}
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	ok := true
	out := make([]Term, 0, len(keys))
	for _, k := range keys {
		e := sums[k]
		if e == 0 || k == unityKey {
			continue
		}
		switch {
		case e > maxExponent:
			e, ok = maxExponent, false
		case e < -maxExponent:
			e, ok = -maxExponent, false
		}
		out = append(out, k.term(int32(e)))
	}
	if len(out) == 0 {
		return []Term{Unity()}, ok
	}
	return out, ok
}
