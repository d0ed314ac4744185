package ucum

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// termsOf renders unreduced terms for comparison.
func termsOf(t *testing.T, expr string) []string {
	t.Helper()
	terms, err := parseTerms(registry(), expr)
	require.NoError(t, err, expr)
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = term.String()
	}
	return out
}

func TestParseTerms(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"m", []string{"m"}},
		{"km", []string{"km"}},
		{"m2", []string{"m2"}},
		{"m+2", []string{"m2"}},
		{"m-1", []string{"m-1"}},
		{"kg.m/s2", []string{"kg", "m", "s-2"}},
		{"/s", []string{"s-1"}},
		{"m/s/h", []string{"m", "s-1", "h"}},
		{"m/s.h", []string{"m", "s-1", "h-1"}},
		{"10*3", []string{"10*3"}},
		{"10^-2", []string{"10^-2"}},
		{"2m", []string{"2m"}},
		{"{tot}", []string{"{tot}"}},
		{"m{tot}", []string{"m{tot}"}},
		{"10{rbc}", []string{"10{rbc}"}},
		{"1", []string{"1"}},
		{"(m/s)", []string{"m", "s-1"}},
		{"2(m.s){x}", []string{"2", "m", "s", "{x}"}},
		{"/(m.s)", []string{"m-1", "s-1"}},
		{"4.[pi].10*-7.N/A2", []string{"4", "[pi]", "10*-7", "N", "A-2"}},
		{"m[Hg]", []string{"m[Hg]"}},
		{"%[slope]", []string{"%[slope]"}},
		{"{}", []string{"{}"}},
		{"m{a b.c/d}", []string{"m{a b.c/d}"}},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, termsOf(t, tt.expr)); diff != "" {
				t.Errorf("terms mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCaseInsensitiveFallback(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"KM", "km"},
		{"MM", "mm"},
		{"CEL", "Cel"},
		{"[IN_I]", "[in_i]"},
		{"PAL", "Pa"},
		{"[FT_I]/MIN", "[ft_i]/min"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			u, err := Parse(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestParseNeverMixesCodeSystems(t *testing.T) {
	for _, expr := range []string{"kM", "Km", "cEL", "[in_I]"} {
		t.Run(expr, func(t *testing.T) {
			_, err := Parse(expr)
			var pe *ParseError
			require.True(t, errors.As(err, &pe), "got %v", err)
			assert.Equal(t, UnknownUnitString, pe.Kind)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		expr     string
		kind     ParseErrorKind
		fragment string
		offset   int
	}{
		{"", UnableToParse, "", 0},
		{"xyz", UnknownUnitString, "xyz", 0},
		{"m/xyz", UnknownUnitString, "xyz", 2},
		{"m.[foo]", UnknownUnitString, "[foo]", 2},
		{"m{abc", UnableToParse, "{abc", 1},
		{"(m", UnableToParse, "", 2},
		{"m.", UnableToParse, "", 2},
		{"m-", UnableToParse, "-", 1},
		{"0m", UnableToParse, "0", 0},
		{"m)", UnableToParse, ")", 1},
		{"(m)2", UnableToParse, "2", 3},
		{"99999999999m", UnableToParse, "99999999999", 0},
		{"m99999999999", UnableToParse, "99999999999", 1},
		{"m{a{b}", UnableToParse, "{a{b}", 1},
		{"m-2147483648", UnableToParse, "-2147483648", 1},
		{"/m-2147483648", UnableToParse, "-2147483648", 2},
		{"m2147483647.m", UnableToParse, "m2147483647.m", 0},
		{"m-2147483647/m", UnableToParse, "m-2147483647/m", 0},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			_, err := Parse(tt.expr)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrParse)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, tt.expr, pe.Expression)
			assert.Equal(t, tt.fragment, pe.Fragment)
			assert.Equal(t, tt.offset, pe.Offset)
			assert.Contains(t, pe.Error(), tt.kind.String())
		})
	}
}
