package numeric

import (
	"math"
	"math/big"
)

// maxExactExponent bounds the integer exponents computed with big.Int.Exp.
// Larger exponents go through float64, where they overflow into an error
// instead of allocating megabytes of digits.
const maxExactExponent = 4096

// Pow returns x**e, exactly when |e| <= maxExactExponent or |x| is 1.
// Beyond that the power goes through float64, which fails with an
// UnusableFloat NumberError on overflow.
func Pow(x *big.Rat, e int) (*big.Rat, error) {
	if e == 0 {
		return One(), nil
	}
	if x.Sign() == 0 {
		if e < 0 {
			return nil, ErrDivisionByZero
		}
		return new(big.Rat), nil
	}

	n := e
	if n < 0 {
		n = -n
	}
	if n > maxExactExponent {
		return powFloat(x, e)
	}
	exp := big.NewInt(int64(n))
	num := new(big.Int).Exp(x.Num(), exp, nil)
	den := new(big.Int).Exp(x.Denom(), exp, nil)
	if e < 0 {
		num, den = den, num
	}
	return new(big.Rat).SetFrac(num, den), nil
}

func powFloat(x *big.Rat, e int) (*big.Rat, error) {
	if x.IsInt() && x.Num().CmpAbs(big.NewInt(1)) == 0 {
		if x.Sign() < 0 && e%2 != 0 {
			return big.NewRat(-1, 1), nil
		}
		return One(), nil
	}
	xf, err := ToFloat(x)
	if err != nil {
		return nil, err
	}
	return FromFloat(math.Pow(xf, float64(e)))
}

// PowRat returns x**e. Integer exponents are exact; fractional ones are
// computed in float64.
func PowRat(x, e *big.Rat) (*big.Rat, error) {
	if e.IsInt() && e.Num().IsInt64() {
		n := e.Num().Int64()
		if n >= -maxExactExponent && n <= maxExactExponent {
			return Pow(x, int(n))
		}
	}

	xf, err := ToFloat(x)
	if err != nil {
		return nil, err
	}
	ef, err := ToFloat(e)
	if err != nil {
		return nil, err
	}
	return FromFloat(math.Pow(xf, ef))
}

// Sqrt returns the square root of x, exactly when numerator and denominator
// are both perfect squares.
func Sqrt(x *big.Rat) (*big.Rat, error) {
	if x.Sign() < 0 {
		return nil, &NumberError{Kind: UnusableFloat, Value: math.NaN()}
	}
	if x.Sign() == 0 {
		return new(big.Rat), nil
	}

	num := new(big.Int).Sqrt(x.Num())
	den := new(big.Int).Sqrt(x.Denom())
	if new(big.Int).Mul(num, num).Cmp(x.Num()) == 0 && new(big.Int).Mul(den, den).Cmp(x.Denom()) == 0 {
		return new(big.Rat).SetFrac(num, den), nil
	}

	return bridge(x, math.Sqrt)
}
