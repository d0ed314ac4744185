package numeric

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPow(t *testing.T) {
	tests := []struct {
		name string
		base string
		exp  int
		want string
	}{
		{"zero exponent", "7/3", 0, "1"},
		{"positive", "10", 3, "1000"},
		{"negative", "10", -3, "1/1000"},
		{"fraction", "2/3", 2, "4/9"},
		{"negative fraction inverted", "2/3", -2, "9/4"},
		{"negative base odd", "-2", 3, "-8"},
		{"negative base negative exp", "-2", -3, "-1/8"},
		{"zero base", "0", 4, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pow(MustRat(tt.base), tt.exp)
			require.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(MustRat(tt.want)), "got %s want %s", got.RatString(), tt.want)
		})
	}
}

func TestPowZeroNegative(t *testing.T) {
	_, err := Pow(new(big.Rat), -1)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPowDoesNotMutate(t *testing.T) {
	x := MustRat("3/2")
	_, err := Pow(x, 5)
	require.NoError(t, err)
	assert.Equal(t, "3/2", x.RatString())
}

func TestPowBeyondExactLimit(t *testing.T) {
	_, err := Pow(big.NewRat(1000, 1), 99999999)
	var ne *NumberError
	require.True(t, errors.As(err, &ne), "got %v", err)
	assert.Equal(t, UnusableFloat, ne.Kind)

	tests := []struct {
		name string
		base string
		exp  int
		want float64
	}{
		{"one", "1", 99999999, 1},
		{"minus one odd", "-1", 99999999, -1},
		{"minus one even", "-1", -100000000, 1},
		{"underflow", "1/2", 5000, 0},
		{"negative underflow", "2", -5000, 0},
		{"near one", "1.0001", 10000, math.Pow(1.0001, 10000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pow(MustRat(tt.base), tt.exp)
			require.NoError(t, err)
			f, _ := got.Float64()
			assert.InDelta(t, tt.want, f, 1e-9)
		})
	}
}

func TestPowRat(t *testing.T) {
	got, err := PowRat(big.NewRat(10, 1), big.NewRat(-7, 1))
	require.NoError(t, err)
	assert.Equal(t, "1/10000000", got.RatString())

	got, err = PowRat(big.NewRat(10, 1), big.NewRat(1, 2))
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, math.Sqrt(10), f, 1e-12)
}

func TestSqrt(t *testing.T) {
	got, err := Sqrt(MustRat("9/16"))
	require.NoError(t, err)
	assert.Equal(t, "3/4", got.RatString())

	got, err = Sqrt(big.NewRat(2, 1))
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, math.Sqrt2, f, 1e-15)

	_, err = Sqrt(big.NewRat(-4, 1))
	var numErr *NumberError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, UnusableFloat, numErr.Kind)
}

func TestLog(t *testing.T) {
	tests := []struct {
		name string
		x    string
		base string
		want string
	}{
		{"one", "1", "10", "0"},
		{"exact power", "1000", "10", "3"},
		{"exact negative power", "1/10000000", "10", "-7"},
		{"base two", "1024", "2", "10"},
		{"fraction base", "1/8", "1/2", "3"},
		{"hundred base", "1000000", "100", "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Log(MustRat(tt.x), MustRat(tt.base))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.RatString())
		})
	}
}

func TestLogInexact(t *testing.T) {
	got, err := Log10(big.NewRat(2, 1))
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, math.Log10(2), f, 1e-15)

	// far outside float64 range
	huge, err := Pow(big.NewRat(10, 1), 400)
	require.NoError(t, err)
	huge.Add(huge, One())
	got, err = Log10(huge)
	require.NoError(t, err)
	f, _ = got.Float64()
	assert.InDelta(t, 400, f, 1e-9)
}

func TestLogErrors(t *testing.T) {
	for _, x := range []string{"0", "-1"} {
		_, err := Log10(MustRat(x))
		var numErr *NumberError
		require.True(t, errors.As(err, &numErr), "x=%s", x)
		assert.Equal(t, UnusableFloat, numErr.Kind)
	}

	_, err := Log(big.NewRat(2, 1), One())
	assert.Error(t, err)
}

func TestLn(t *testing.T) {
	got, err := Ln(One())
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())

	e, err := FromFloat(math.E)
	require.NoError(t, err)
	got, err = Ln(e)
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, 1, f, 1e-12)
}

func TestTrigAndExp(t *testing.T) {
	got, err := Tan(new(big.Rat))
	require.NoError(t, err)
	assert.Equal(t, 0, got.Sign())

	got, err = Atan(One())
	require.NoError(t, err)
	f, _ := got.Float64()
	assert.InDelta(t, math.Pi/4, f, 1e-15)

	got, err = Exp(new(big.Rat))
	require.NoError(t, err)
	assert.Equal(t, "1", got.RatString())
}

func TestFloatBridge(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat(f)
		var numErr *NumberError
		require.True(t, errors.As(err, &numErr))
		assert.Equal(t, UnusableFloat, numErr.Kind)
	}

	r, err := FromFloat(0.5)
	require.NoError(t, err)
	assert.Equal(t, "1/2", r.RatString())

	huge, err := Pow(big.NewRat(10, 1), 400)
	require.NoError(t, err)
	_, err = ToFloat(huge)
	assert.Error(t, err)
}

func TestFromComponents(t *testing.T) {
	r, err := FromComponents(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "1/4", r.RatString())

	_, err = FromComponents(1, 0)
	var numErr *NumberError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, InvalidRationalComponents, numErr.Kind)
}

func TestParseRat(t *testing.T) {
	r, err := ParseRat("273.15")
	require.NoError(t, err)
	assert.Equal(t, "5463/20", r.RatString())

	r, err = ParseRat("6.0221367e23")
	require.NoError(t, err)
	assert.True(t, r.IsInt())

	for _, bad := range []string{"", "abc", "1.2.3"} {
		_, err := ParseRat(bad)
		var numErr *NumberError
		require.True(t, errors.As(err, &numErr), "input %q", bad)
		assert.Equal(t, FloatParse, numErr.Kind)
	}
}

func TestQuo(t *testing.T) {
	_, err := Quo(One(), new(big.Rat))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	got, err := Quo(big.NewRat(5, 1), big.NewRat(18, 1))
	require.NoError(t, err)
	assert.Equal(t, "5/18", got.RatString())
}

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   string
		prec int
		want string
	}{
		{"1000", 6, "1000"},
		{"5463/20", 6, "273.15"},
		{"5/18", 4, "0.2778"},
		{"-1/3", 3, "-0.333"},
		{"1/1000000", 3, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDecimal(MustRat(tt.in), tt.prec))
		})
	}
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(MustRat("1/3"), MustRat("1/3"), 0))
	assert.True(t, ApproxEqual(MustRat("0.3333333333"), MustRat("1/3"), 1e-9))
	assert.False(t, ApproxEqual(MustRat("0.33"), MustRat("1/3"), 1e-9))
}
