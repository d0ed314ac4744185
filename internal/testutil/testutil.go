// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/banshee-data/ucum/internal/numeric"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// MustRat parses a decimal or fraction literal, failing the test on error.
func MustRat(t *testing.T, s string) *big.Rat {
	t.Helper()
	r, err := numeric.ParseRat(s)
	if err != nil {
		t.Fatalf("bad rational literal %q: %v", s, err)
	}
	return r
}

// AssertRatEqual checks exact equality of got against the literal want.
func AssertRatEqual(t *testing.T, got *big.Rat, want string) {
	t.Helper()
	if got == nil {
		t.Errorf("got nil, want %s", want)
		return
	}
	if w := MustRat(t, want); got.Cmp(w) != 0 {
		t.Errorf("got %s, want %s", got.RatString(), w.RatString())
	}
}

// RatComparer lets cmp.Diff compare *big.Rat values by value.
var RatComparer = cmp.Comparer(func(a, b *big.Rat) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})
