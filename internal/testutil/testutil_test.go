package testutil

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssertNoError(t *testing.T) {
	t.Parallel()

	// Verify nil error doesn't cause issues
	AssertNoError(t, nil)
}

func TestAssertError(t *testing.T) {
	t.Parallel()

	// Verify non-nil error is handled correctly
	AssertError(t, errors.New("test error"))
}

func TestMustRat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want *big.Rat
	}{
		{"1", big.NewRat(1, 1)},
		{"0.25", big.NewRat(1, 4)},
		{"1/3", big.NewRat(1, 3)},
		{"-273.15", big.NewRat(-5463, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := MustRat(t, tt.in); got.Cmp(tt.want) != 0 {
				t.Errorf("MustRat(%q) = %s, want %s", tt.in, got.RatString(), tt.want.RatString())
			}
		})
	}
}

func TestAssertRatEqual(t *testing.T) {
	t.Parallel()

	AssertRatEqual(t, big.NewRat(3, 2), "1.5")
	AssertRatEqual(t, big.NewRat(1000, 1), "1e3")
}

func TestRatComparer(t *testing.T) {
	t.Parallel()

	a := []*big.Rat{big.NewRat(1, 2), big.NewRat(2, 1)}
	b := []*big.Rat{big.NewRat(2, 4), big.NewRat(4, 2)}
	if diff := cmp.Diff(a, b, RatComparer); diff != "" {
		t.Errorf("equal rationals reported different:\n%s", diff)
	}
	if cmp.Equal(a, []*big.Rat{big.NewRat(1, 2), nil}, RatComparer) {
		t.Error("nil should not equal a value")
	}
}
