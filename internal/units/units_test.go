package units

import (
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name     string
		unit     string
		expected bool
	}{
		{"valid mps", MPS, true},
		{"valid mph", MPH, true},
		{"valid kmph", KMPH, true},
		{"valid kph", KPH, true},
		{"invalid unit", "invalid", false},
		{"empty string", "", false},
		{"case sensitive", "MPH", false},
		{"ucum expression is not a name", "m/s", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsValid(tt.unit)
			if result != tt.expected {
				t.Errorf("IsValid(%s) = %v, want %v", tt.unit, result, tt.expected)
			}
		})
	}
}

func TestGetValidUnitsString(t *testing.T) {
	expected := "mps, mph, kmph, kph"
	result := GetValidUnitsString()
	if result != expected {
		t.Errorf("GetValidUnitsString() = %s, want %s", result, expected)
	}
}

func TestExpression(t *testing.T) {
	tests := []struct {
		unit string
		want string
		ok   bool
	}{
		{MPS, "m/s", true},
		{MPH, "[mi_i]/h", true},
		{KMPH, "km/h", true},
		{KPH, "km/h", true},
		{"furlong/fortnight", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			got, ok := Expression(tt.unit)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Expression(%s) = %q, %v, want %q, %v", tt.unit, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestConvertSpeed(t *testing.T) {
	tests := []struct {
		name     string
		speedMPS float64
		unit     string
		expected float64
	}{
		{"0 m/s to mps", 0.0, MPS, 0.0},
		{"5 m/s to mps", 5.0, MPS, 5.0},
		{"0 m/s to mph", 0.0, MPH, 0.0},
		{"1 m/s to mph", 1.0, MPH, 2.2369362920544},
		{"5 m/s to mph", 5.0, MPH, 11.184681460272},
		{"1 m/s to kmph", 1.0, KMPH, 3.6},
		{"5 m/s to kmph", 5.0, KMPH, 18.0},
		{"1 m/s to kph", 1.0, KPH, 3.6},
		{"1 m/s to unknown", 1.0, "unknown", 1.0},
		{"highway speed 31.29 m/s to mph", 31.29, MPH, 69.99373657838224},
		{"negative speed", -2.0, KMPH, -7.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertSpeed(tt.speedMPS, tt.unit)
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("ConvertSpeed(%f, %s) = %f, want %f", tt.speedMPS, tt.unit, result, tt.expected)
			}
		})
	}
}

func TestConvertToMPS(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		fromUnit string
		expected float64
	}{
		{"5 mps to mps", 5.0, MPS, 5.0},
		{"10 mph to mps", 10.0, MPH, 4.4704},
		{"22.369362920544 mph to mps", 22.369362920544, MPH, 10.0},
		{"3.6 kmph to mps", 3.6, KMPH, 1.0},
		{"36 kmph to mps", 36.0, KMPH, 10.0},
		{"3.6 kph to mps", 3.6, KPH, 1.0},
		{"5 unknown to mps", 5.0, "unknown", 5.0},
		{"NaN passes through", math.NaN(), MPH, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertToMPS(tt.speed, tt.fromUnit)
			if math.IsNaN(tt.expected) {
				if !math.IsNaN(result) {
					t.Errorf("ConvertToMPS(NaN, %s) = %f, want NaN", tt.fromUnit, result)
				}
				return
			}
			if math.Abs(result-tt.expected) > 1e-10 {
				t.Errorf("ConvertToMPS(%f, %s) = %f, want %f", tt.speed, tt.fromUnit, result, tt.expected)
			}
		})
	}
}

func TestRoundTripConversions(t *testing.T) {
	originalMPS := 15.5
	for _, unit := range []string{MPH, KMPH, KPH} {
		converted := ConvertSpeed(originalMPS, unit)
		back := ConvertToMPS(converted, unit)
		if math.Abs(back-originalMPS) > 1e-10 {
			t.Errorf("%s round-trip: started %f m/s, got %f m/s", unit, originalMPS, back)
		}
	}
}

func TestRatio(t *testing.T) {
	r, ok := Ratio(MPH, KMPH)
	if !ok {
		t.Fatal("Ratio(mph, kmph) not found")
	}
	if got := r.RatString(); got != "25146/15625" {
		t.Errorf("Ratio(mph, kmph) = %s, want 25146/15625", got)
	}
	if _, ok := Ratio(MPH, "unknown"); ok {
		t.Error("Ratio with unknown unit should fail")
	}
}
