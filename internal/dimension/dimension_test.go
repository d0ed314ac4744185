package dimension

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAndString(t *testing.T) {
	tests := []struct {
		name string
		comp Composition
		want string
	}{
		{"empty", Composition{}, ""},
		{"length", New(Length, 1), "L"},
		{"area", New(Length, 2), "L2"},
		{"frequency", New(Time, -1), "T-1"},
		{"velocity", New(Time, -1).Multiply(New(Length, 1)), "L.T-1"},
		{"all", allOnes(), "Q.L.F.M.A.C.T"},
		{"newton", New(Mass, 1).Multiply(New(Length, 1)).Multiply(New(Time, -2)), "L.M.T-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.comp.String())
		})
	}
}

func allOnes() Composition {
	var c Composition
	for _, d := range All {
		c = c.Insert(d, 1)
	}
	return c
}

func TestInsertRemovesZero(t *testing.T) {
	c := New(Length, 2).Insert(Length, -2)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Exponent(Length))
	assert.Equal(t, 0, c.Len())
}

func TestInsertZeroExponent(t *testing.T) {
	c := New(Mass, 0)
	assert.True(t, c.IsEmpty())
}

func TestMultiplyDropsZeroSums(t *testing.T) {
	a := New(Length, 1).Insert(Time, -1)
	b := New(Time, 1)
	got := a.Multiply(b)

	assert.Equal(t, New(Length, 1), got)
	assert.Equal(t, 1, got.Len())
}

func TestMultiplyDoesNotAlias(t *testing.T) {
	a := New(Length, 1)
	_ = a.Multiply(New(Length, 5))
	assert.Equal(t, 1, a.Exponent(Length))
}

func TestScale(t *testing.T) {
	c := New(Length, 1).Insert(Time, -1)
	assert.Equal(t, "L3.T-3", c.Scale(3).String())
	assert.Equal(t, "L-1.T", c.Scale(-1).String())
	assert.True(t, c.Scale(0).IsEmpty())
}

func TestEqual(t *testing.T) {
	a := New(Length, 1).Multiply(New(Time, -1))
	b := New(Time, -1).Multiply(New(Length, 1))
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(New(Length, 1)))
}

func TestSymbols(t *testing.T) {
	for _, d := range All {
		got, ok := FromSymbol(d.Symbol())
		assert.True(t, ok, d.String())
		assert.Equal(t, d, got)
	}
	_, ok := FromSymbol("X")
	assert.False(t, ok)
}
