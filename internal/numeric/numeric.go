// Package numeric extends math/big rationals with the exponent, logarithm and
// float-bridged helpers the unit engine needs.
//
// Everything here is exact unless the operation is transcendental. Those go
// through float64 and back, and report a NumberError when the value cannot
// cross that bridge (NaN, infinities, values outside float64 range).
package numeric

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrDivisionByZero is returned wherever a rational would be divided by zero.
var ErrDivisionByZero = errors.New("division by zero")

// NumberErrorKind classifies a NumberError.
type NumberErrorKind int

const (
	// FloatParse means a numeric literal could not be parsed.
	FloatParse NumberErrorKind = iota
	// UnusableFloat means a float64 was NaN or infinite.
	UnusableFloat
	// InvalidRationalComponents means a numerator/denominator pair cannot form a rational.
	InvalidRationalComponents
)

func (k NumberErrorKind) String() string {
	switch k {
	case FloatParse:
		return "FloatParse"
	case UnusableFloat:
		return "UnusableFloat"
	case InvalidRationalComponents:
		return "InvalidRationalComponents"
	default:
		return fmt.Sprintf("NumberErrorKind(%d)", int(k))
	}
}

// NumberError reports a value that cannot be represented or bridged.
type NumberError struct {
	Kind  NumberErrorKind
	Input string
	Value float64
	Numer float64
	Denom float64
	Err   error
}

func (e *NumberError) Error() string {
	switch e.Kind {
	case FloatParse:
		return fmt.Sprintf("unable to parse number %q: %v", e.Input, e.Err)
	case UnusableFloat:
		return fmt.Sprintf("unusable float value: %v", e.Value)
	case InvalidRationalComponents:
		return fmt.Sprintf("invalid rational components: %v / %v", e.Numer, e.Denom)
	default:
		return "numeric error"
	}
}

func (e *NumberError) Unwrap() error { return e.Err }

// One returns a fresh rational 1.
func One() *big.Rat { return big.NewRat(1, 1) }

// Clone returns a copy of r that callers may mutate freely.
func Clone(r *big.Rat) *big.Rat { return new(big.Rat).Set(r) }

// Mul returns a*b without touching either operand.
func Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Quo returns a/b without touching either operand.
func Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(a, b), nil
}

// ParseRat parses a decimal ("273.15", "6.0221367e23") or fraction ("5/18")
// literal without rounding.
func ParseRat(s string) (*big.Rat, error) {
	trimmed := strings.TrimSpace(s)
	r, ok := new(big.Rat).SetString(trimmed)
	if !ok || trimmed == "" {
		return nil, &NumberError{Kind: FloatParse, Input: s, Err: strconv.ErrSyntax}
	}
	return r, nil
}

// MustRat is ParseRat for literals known to be valid; it panics otherwise.
func MustRat(s string) *big.Rat {
	r, err := ParseRat(s)
	if err != nil {
		panic(err)
	}
	return r
}

// FormatDecimal renders r with at most prec digits after the decimal point,
// dropping trailing zeros. Integers render without a point.
func FormatDecimal(r *big.Rat, prec int) string {
	if r.IsInt() {
		return r.Num().String()
	}
	s := r.FloatString(prec)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
