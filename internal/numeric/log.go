package numeric

import (
	"math"
	"math/big"
)

// Log returns the base-b logarithm of x. When x is an exact integer power of
// base the result is exact; otherwise it is computed in float64 from the
// mantissa/exponent split of both values, so rationals far outside float64
// range still produce a finite result.
func Log(x, base *big.Rat) (*big.Rat, error) {
	if x.Sign() <= 0 {
		return nil, &NumberError{Kind: UnusableFloat, Value: logOfNonPositive(x)}
	}
	if base.Sign() <= 0 || base.Cmp(One()) == 0 {
		return nil, &NumberError{Kind: UnusableFloat, Value: math.NaN()}
	}

	if n, ok := exactLog(x, base); ok {
		return big.NewRat(n, 1), nil
	}

	return FromFloat(ln(x) / ln(base))
}

// Ln returns the natural logarithm of x. Only ln(1) is exact.
func Ln(x *big.Rat) (*big.Rat, error) {
	if x.Sign() <= 0 {
		return nil, &NumberError{Kind: UnusableFloat, Value: logOfNonPositive(x)}
	}
	if x.Cmp(One()) == 0 {
		return new(big.Rat), nil
	}
	return FromFloat(ln(x))
}

// Log2 returns the base-2 logarithm of x.
func Log2(x *big.Rat) (*big.Rat, error) { return Log(x, big.NewRat(2, 1)) }

// Log10 returns the base-10 logarithm of x.
func Log10(x *big.Rat) (*big.Rat, error) { return Log(x, big.NewRat(10, 1)) }

// exactLog looks for an integer n with base**n == x. The candidate comes from
// the float estimate and is verified with exact exponentiation, so the search
// is bounded no matter how far apart x and base are.
func exactLog(x, base *big.Rat) (int64, bool) {
	if x.Cmp(One()) == 0 {
		return 0, true
	}

	estimate := math.Round(ln(x) / ln(base))
	if estimate == 0 || math.IsNaN(estimate) || math.Abs(estimate) > maxExactExponent {
		return 0, false
	}

	p, err := Pow(base, int(estimate))
	if err != nil {
		return 0, false
	}
	return int64(estimate), p.Cmp(x) == 0
}

// ln returns the natural logarithm of a positive rational.
func ln(x *big.Rat) float64 {
	return lnInt(x.Num()) - lnInt(x.Denom())
}

func lnInt(n *big.Int) float64 {
	f := new(big.Float).SetInt(n)
	mant := new(big.Float)
	exp := f.MantExp(mant)
	m, _ := mant.Float64()
	return math.Log(m) + float64(exp)*math.Ln2
}

func logOfNonPositive(x *big.Rat) float64 {
	if x.Sign() == 0 {
		return math.Inf(-1)
	}
	return math.NaN()
}
