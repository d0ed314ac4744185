// Package measurement pairs an exact value with a ucum.Unit and converts
// between compatible units.
package measurement

import (
	"fmt"
	"math/big"

	"github.com/banshee-data/ucum/internal/numeric"
	"github.com/banshee-data/ucum/internal/ucum"
)

// DefaultPrecision is the number of decimal places String prints.
const DefaultPrecision = 12

// Measurement is an immutable value in a unit.
type Measurement struct {
	value *big.Rat
	unit  ucum.Unit
}

// New copies value into a Measurement.
func New(value *big.Rat, unit ucum.Unit) Measurement {
	return Measurement{value: numeric.Clone(value), unit: unit}
}

// NewInt builds a Measurement from an integer value.
func NewInt(value int64, unit ucum.Unit) Measurement {
	return Measurement{value: new(big.Rat).SetInt64(value), unit: unit}
}

// TryNew builds a Measurement from a float and a unit expression.
func TryNew(value float64, expr string) (Measurement, error) {
	v, err := numeric.FromFloat(value)
	if err != nil {
		return Measurement{}, err
	}
	u, err := ucum.Parse(expr)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: v, unit: u}, nil
}

// NewFromString parses a decimal or fractional value ("98.6", "1/3") and a
// unit expression.
func NewFromString(value, expr string) (Measurement, error) {
	v, err := numeric.ParseRat(value)
	if err != nil {
		return Measurement{}, err
	}
	u, err := ucum.Parse(expr)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: v, unit: u}, nil
}

func (m Measurement) val() *big.Rat {
	if m.value == nil {
		return new(big.Rat)
	}
	return m.value
}

// Value returns a copy of the value.
func (m Measurement) Value() *big.Rat { return numeric.Clone(m.val()) }

// Unit returns the measurement's unit.
func (m Measurement) Unit() ucum.Unit { return m.unit }

// Float64 returns the nearest float64 to the value.
func (m Measurement) Float64() float64 {
	f, _ := m.val().Float64()
	return f
}

// Scalar is the value expressed in base units.
func (m Measurement) Scalar() (*big.Rat, error) {
	if m.unit.IsSpecial() {
		return m.unit.ReduceValue(m.val())
	}
	s, err := m.unit.Scalar()
	if err != nil {
		return nil, err
	}
	return s.Mul(s, m.val()), nil
}

// Magnitude maps Scalar back through the unit.
func (m Measurement) Magnitude() (*big.Rat, error) {
	s, err := m.Scalar()
	if err != nil {
		return nil, err
	}
	return m.unit.CalculateMagnitude(s)
}

// ConvertTo expresses m in target.
func (m Measurement) ConvertTo(target ucum.Unit) (Measurement, error) {
	if !m.unit.IsCompatibleWith(target) {
		return Measurement{}, &IncompatibleUnitsError{From: m.unit, To: target}
	}
	if m.unit.FieldEqual(target) {
		return New(m.val(), target), nil
	}
	base, err := m.Scalar()
	if err != nil {
		return Measurement{}, fmt.Errorf("convert %s to %s: %w", m, target, err)
	}
	var v *big.Rat
	if target.IsSpecial() {
		v, err = target.CalculateMagnitude(base)
	} else {
		var ts *big.Rat
		if ts, err = target.Scalar(); err == nil {
			v, err = numeric.Quo(base, ts)
		}
	}
	if err != nil {
		return Measurement{}, fmt.Errorf("convert %s to %s: %w", m, target, err)
	}
	return Measurement{value: v, unit: target}, nil
}

// ConvertToExpr parses expr and converts into it.
func (m Measurement) ConvertToExpr(expr string) (Measurement, error) {
	u, err := ucum.Parse(expr)
	if err != nil {
		return Measurement{}, err
	}
	return m.ConvertTo(u)
}

// Add converts other into m's unit and adds it.
func (m Measurement) Add(other Measurement) (Measurement, error) {
	o, err := other.ConvertTo(m.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: new(big.Rat).Add(m.val(), o.val()), unit: m.unit}, nil
}

// Sub converts other into m's unit and subtracts it.
func (m Measurement) Sub(other Measurement) (Measurement, error) {
	o, err := other.ConvertTo(m.unit)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: new(big.Rat).Sub(m.val(), o.val()), unit: m.unit}, nil
}

// Mul multiplies values and units.
func (m Measurement) Mul(other Measurement) Measurement {
	return Measurement{value: numeric.Mul(m.val(), other.val()), unit: m.unit.Multiply(other.unit)}
}

// Div divides values and units.
func (m Measurement) Div(other Measurement) (Measurement, error) {
	v, err := numeric.Quo(m.val(), other.val())
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: v, unit: m.unit.Divide(other.unit)}, nil
}

// MulFloat scales the value, keeping the unit.
func (m Measurement) MulFloat(f float64) (Measurement, error) {
	r, err := numeric.FromFloat(f)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: r.Mul(r, m.val()), unit: m.unit}, nil
}

// DivFloat divides the value, keeping the unit.
func (m Measurement) DivFloat(f float64) (Measurement, error) {
	r, err := numeric.FromFloat(f)
	if err != nil {
		return Measurement{}, err
	}
	v, err := numeric.Quo(m.val(), r)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{value: v, unit: m.unit}, nil
}

// Equal reports compatible units and equal scalars, so 1 km equals 1000 m.
func (m Measurement) Equal(other Measurement) bool {
	if !m.unit.IsCompatibleWith(other.unit) {
		return false
	}
	a, err := m.Scalar()
	if err != nil {
		return false
	}
	b, err := other.Scalar()
	if err != nil {
		return false
	}
	return a.Cmp(b) == 0
}

// Compare orders m and other after converting other into m's unit.
func (m Measurement) Compare(other Measurement) (int, error) {
	o, err := other.ConvertTo(m.unit)
	if err != nil {
		return 0, err
	}
	return m.val().Cmp(o.val()), nil
}

// ApproxEqual compares within an absolute or relative float tolerance, for
// values that went through a transcendental conversion.
func (m Measurement) ApproxEqual(other Measurement, tol float64) bool {
	o, err := other.ConvertTo(m.unit)
	if err != nil {
		return false
	}
	return numeric.ApproxEqual(m.val(), o.val(), tol)
}

// Format renders the value with at most prec decimals followed by the unit.
func (m Measurement) Format(prec int) string {
	v := numeric.FormatDecimal(m.val(), prec)
	if m.unit.IsUnity() {
		return v
	}
	return v + " " + m.unit.String()
}

// String formats m with DefaultPrecision.
func (m Measurement) String() string { return m.Format(DefaultPrecision) }
