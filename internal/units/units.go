// Package units provides shared constants and validation for speed units,
// backed by the UCUM conversion engine.
package units

import (
	"math/big"
	"strings"

	"github.com/banshee-data/ucum/internal/measurement"
	"github.com/banshee-data/ucum/internal/monitoring"
	"github.com/banshee-data/ucum/internal/numeric"
	"github.com/banshee-data/ucum/internal/ucum"
)

// Unit constants
const (
	MPS  = "mps"
	MPH  = "mph"
	KMPH = "kmph"
	KPH  = "kph"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{MPS, MPH, KMPH, KPH}

var expressions = map[string]string{
	MPS:  "m/s",
	MPH:  "[mi_i]/h",
	KMPH: "km/h",
	KPH:  "km/h",
}

var speedUnits = func() map[string]ucum.Unit {
	out := make(map[string]ucum.Unit, len(expressions))
	for name, expr := range expressions {
		out[name] = ucum.MustParse(expr)
	}
	return out
}()

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// Expression returns the UCUM expression for a speed unit name.
func Expression(unit string) (string, bool) {
	expr, ok := expressions[unit]
	return expr, ok
}

// ConvertSpeed converts a speed from meters per second to the target units.
// Unknown units are returned unchanged.
func ConvertSpeed(speedMPS float64, targetUnits string) float64 {
	target, ok := speedUnits[targetUnits]
	if !ok {
		return speedMPS
	}
	return convert(speedMPS, speedUnits[MPS], target)
}

// ConvertToMPS converts a speed in the given units to meters per second.
// Unknown units are returned unchanged.
func ConvertToMPS(speed float64, fromUnits string) float64 {
	from, ok := speedUnits[fromUnits]
	if !ok {
		return speed
	}
	return convert(speed, from, speedUnits[MPS])
}

func convert(v float64, from, to ucum.Unit) float64 {
	r, err := numeric.FromFloat(v)
	if err != nil {
		return v
	}
	m, err := measurement.New(r, from).ConvertTo(to)
	if err != nil {
		monitoring.Logf("units: convert %v %s to %s: %v", v, from, to, err)
		return v
	}
	return m.Float64()
}

// Ratio returns the exact factor taking a value in from to a value in to.
func Ratio(from, to string) (*big.Rat, bool) {
	f, ok := speedUnits[from]
	if !ok {
		return nil, false
	}
	t, ok := speedUnits[to]
	if !ok {
		return nil, false
	}
	m, err := measurement.NewInt(1, f).ConvertTo(t)
	if err != nil {
		return nil, false
	}
	return m.Value(), true
}
