package numeric

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats/scalar"
)

// FromFloat converts a finite float64 to the rational with the same binary
// value.
func FromFloat(f float64) (*big.Rat, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, &NumberError{Kind: UnusableFloat, Value: f}
	}
	return new(big.Rat).SetFloat64(f), nil
}

// FromComponents builds numer/denom from two floats.
func FromComponents(numer, denom float64) (*big.Rat, error) {
	if denom == 0 || math.IsNaN(numer) || math.IsNaN(denom) || math.IsInf(numer, 0) || math.IsInf(denom, 0) {
		return nil, &NumberError{Kind: InvalidRationalComponents, Numer: numer, Denom: denom}
	}
	n := new(big.Rat).SetFloat64(numer)
	d := new(big.Rat).SetFloat64(denom)
	return n.Quo(n, d), nil
}

// ToFloat returns the nearest float64 to r, failing when r is outside the
// float64 range.
func ToFloat(r *big.Rat) (float64, error) {
	f, _ := r.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &NumberError{Kind: UnusableFloat, Value: f}
	}
	return f, nil
}

// Exp returns e**x.
func Exp(x *big.Rat) (*big.Rat, error) {
	if x.Sign() == 0 {
		return One(), nil
	}
	return bridge(x, math.Exp)
}

// Tan returns the tangent of x radians.
func Tan(x *big.Rat) (*big.Rat, error) {
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}
	return bridge(x, math.Tan)
}

// Atan returns the arctangent of x in radians.
func Atan(x *big.Rat) (*big.Rat, error) {
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}
	return bridge(x, math.Atan)
}

// ApproxEqual reports whether a and b agree within tol, absolutely or
// relatively. Equal rationals always match, even outside float64 range.
func ApproxEqual(a, b *big.Rat, tol float64) bool {
	if a.Cmp(b) == 0 {
		return true
	}
	fa, err := ToFloat(a)
	if err != nil {
		return false
	}
	fb, err := ToFloat(b)
	if err != nil {
		return false
	}
	return scalar.EqualWithinAbsOrRel(fa, fb, tol, tol)
}

func bridge(x *big.Rat, fn func(float64) float64) (*big.Rat, error) {
	f, err := ToFloat(x)
	if err != nil {
		return nil, err
	}
	return FromFloat(fn(f))
}
