// Package dimension tracks the physical dimensions behind a unit: a sparse
// vector of integer exponents over the seven UCUM base dimensions.
package dimension

import (
	"strconv"
	"strings"
)

// Dimension is one of the seven base dimensions.
type Dimension int

// The order here is the canonical display order.
const (
	ElectricCharge Dimension = iota
	Length
	LuminousIntensity
	Mass
	PlaneAngle
	Temperature
	Time

	numDimensions = int(Time) + 1
)

// All lists every dimension in canonical order.
var All = []Dimension{ElectricCharge, Length, LuminousIntensity, Mass, PlaneAngle, Temperature, Time}

// Symbol returns the single-letter UCUM symbol for d.
func (d Dimension) Symbol() string {
	switch d {
	case ElectricCharge:
		return "Q"
	case Length:
		return "L"
	case LuminousIntensity:
		return "F"
	case Mass:
		return "M"
	case PlaneAngle:
		return "A"
	case Temperature:
		return "C"
	case Time:
		return "T"
	default:
		return "?"
	}
}

func (d Dimension) String() string {
	switch d {
	case ElectricCharge:
		return "ElectricCharge"
	case Length:
		return "Length"
	case LuminousIntensity:
		return "LuminousIntensity"
	case Mass:
		return "Mass"
	case PlaneAngle:
		return "PlaneAngle"
	case Temperature:
		return "Temperature"
	case Time:
		return "Time"
	default:
		return "Dimension(" + strconv.Itoa(int(d)) + ")"
	}
}

// FromSymbol maps a UCUM dimension symbol back to its Dimension.
func FromSymbol(s string) (Dimension, bool) {
	for _, d := range All {
		if d.Symbol() == s {
			return d, true
		}
	}
	return 0, false
}

// Composition maps each dimension to a nonzero exponent; a zero slot means
// the dimension is absent. It is a comparable value type, so == is
// dimensional equality and copies never alias.
type Composition struct {
	exponents [numDimensions]int
}

// New returns the composition holding only d**exponent.
func New(d Dimension, exponent int) Composition {
	var c Composition
	return c.Insert(d, exponent)
}

// Insert adds exponent to d's entry. An entry that sums to zero disappears.
func (c Composition) Insert(d Dimension, exponent int) Composition {
	if d < 0 || int(d) >= numDimensions {
		return c
	}
	c.exponents[d] += exponent
	return c
}

// Exponent returns d's exponent, 0 when absent.
func (c Composition) Exponent(d Dimension) int {
	if d < 0 || int(d) >= numDimensions {
		return 0
	}
	return c.exponents[d]
}

// Multiply adds exponents dimension-wise.
func (c Composition) Multiply(other Composition) Composition {
	for i, e := range other.exponents {
		c.exponents[i] += e
	}
	return c
}

// Scale multiplies every exponent by k.
func (c Composition) Scale(k int) Composition {
	for i := range c.exponents {
		c.exponents[i] *= k
	}
	return c
}

// IsEmpty reports whether c is dimensionless.
func (c Composition) IsEmpty() bool {
	return c == Composition{}
}

// Equal reports whether both compositions carry the same exponents.
func (c Composition) Equal(other Composition) bool {
	return c == other
}

// Len returns the number of dimensions present.
func (c Composition) Len() int {
	n := 0
	for _, e := range c.exponents {
		if e != 0 {
			n++
		}
	}
	return n
}

// String renders the canonical "L2.T-1" form; exponent 1 is omitted and an
// empty composition renders as "".
func (c Composition) String() string {
	var parts []string
	for _, d := range All {
		e := c.exponents[d]
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, d.Symbol())
		default:
			parts = append(parts, d.Symbol()+strconv.Itoa(e))
		}
	}
	return strings.Join(parts, ".")
}
