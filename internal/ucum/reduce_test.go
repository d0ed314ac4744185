package ucum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceCanonicalForm(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"m.m", "m2"},
		{"m/m", "1"},
		{"m.1", "m"},
		{"1.1", "1"},
		{"1m", "m"},
		{"s.m", "m.s"},
		{"h/km", "h/km"},
		{"km/h", "km/h"},
		{"m.km", "km.m"},
		{"3.2", "2.3"},
		{"2.2", "2.2"},
		{"{a}.{a}", "{a}.{a}"},
		{"m{a}/m{a}", "1"},
		{"m{a}.m", "m{a}.m"},
		{"2km.km.m", "2km.km.m"},
		{"10*3/10*3", "1"},
		{"kg.m/s2", "kg.m/s2"},
		{"s-1.m", "m/s"},
		{"/s2", "/s2"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			u, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestReduceNeverEmpty(t *testing.T) {
	assert.Equal(t, []Term{Unity()}, Reduce(nil))
	assert.Equal(t, []Term{Unity()}, Reduce([]Term{AtomTerm(mustAtom(t, "m")), AtomTerm(mustAtom(t, "m")).Invert()}))
}

func TestReduceIdempotent(t *testing.T) {
	for _, expr := range []string{"kg.m/s2", "m{a}.km2/h", "2.[in_i]/10*3.{tot}", "/s"} {
		u := MustParse(expr)
		assert.Equal(t, u.Terms(), Reduce(u.Terms()), expr)
	}
}

func TestReduceOrderByShape(t *testing.T) {
	// One term of every shape, shuffled.
	u := MustParse("{z}.m.km.m{a}.km{a}.10.10{b}.2m.2m{c}.2km.2km{d}")
	got := make([]string, 0)
	for _, term := range u.Terms() {
		got = append(got, term.String())
	}
	assert.Equal(t, []string{"2km{d}", "2km", "2m{c}", "2m", "10{b}", "10", "km{a}", "km", "m{a}", "m", "{z}"}, got)
}

func TestReduceSaturatesExponents(t *testing.T) {
	m := AtomTerm(mustAtom(t, "m"))

	got := Reduce([]Term{m.WithExponent(math.MaxInt32), m})
	require.Len(t, got, 1)
	e, _ := got[0].Exponent()
	assert.Equal(t, int32(math.MaxInt32), e)

	got = Reduce([]Term{m.WithExponent(-math.MaxInt32), m.Invert()})
	require.Len(t, got, 1)
	e, _ = got[0].Exponent()
	assert.Equal(t, int32(-math.MaxInt32), e)

	e, _ = m.WithExponent(math.MinInt32).Exponent()
	assert.Equal(t, int32(-math.MaxInt32), e)
}

func TestExponentBoundsRoundTrip(t *testing.T) {
	for _, expr := range []string{"m2147483647", "m-2147483647", "/m2147483647"} {
		t.Run(expr, func(t *testing.T) {
			u, err := Parse(expr)
			require.NoError(t, err)
			assert.True(t, u.Invert().Invert().FieldEqual(u))
			assert.False(t, u.Invert().FieldEqual(u))
			assert.NotEqual(t, u.Composition().String(), u.Invert().Composition().String())
		})
	}

	huge := MustParse("m2147483647")
	sq := huge.Multiply(huge)
	assert.Equal(t, "L2147483647", sq.Composition().String())
	assert.Equal(t, "L-2147483647", MustParse("s").Divide(sq).Divide(MustParse("s")).Composition().String())
}
