package ucum

import (
	"math/big"

	"github.com/banshee-data/ucum/internal/numeric"
)

var (
	celsiusOffset    = numeric.MustRat("273.15")
	rankineOffset    = numeric.MustRat("459.67")
	fiveNinths       = big.NewRat(5, 9)
	nineFifths       = big.NewRat(9, 5)
	reaumurRatio     = big.NewRat(4, 5)
	two              = big.NewRat(2, 1)
	ten              = big.NewRat(10, 1)
	hundred          = big.NewRat(100, 1)
	homeopathicBases = map[string]*big.Rat{
		"[hp'_X]": big.NewRat(10, 1),
		"[hp'_C]": big.NewRat(100, 1),
		"[hp'_M]": big.NewRat(1000, 1),
		"[hp'_Q]": big.NewRat(50000, 1),
	}
)

// specialFunctions is keyed by atom code. Every special atom in atomTable
// needs an entry; the registry panics otherwise.
var specialFunctions = map[string]FunctionSet{
	"Cel": {
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			return new(big.Rat).Add(v, celsiusOffset), nil
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			return new(big.Rat).Sub(v, celsiusOffset), nil
		},
	},
	"[degF]": {
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			r := new(big.Rat).Add(v, rankineOffset)
			return r.Mul(r, fiveNinths), nil
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			r := new(big.Rat).Mul(v, nineFifths)
			return r.Sub(r, rankineOffset), nil
		},
	},
	"[degRe]": {
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			r := new(big.Rat).Quo(v, reaumurRatio)
			return r.Add(r, celsiusOffset), nil
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			r := new(big.Rat).Sub(v, celsiusOffset)
			return r.Mul(r, reaumurRatio), nil
		},
	},
	"[pH]": {
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			return numeric.PowRat(ten, new(big.Rat).Neg(v))
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			r, err := numeric.Log10(v)
			if err != nil {
				return nil, err
			}
			return r.Neg(r), nil
		},
	},
	"Np":       {ToBase: numeric.Exp, FromBase: numeric.Ln},
	"B":        bel(),
	"B[W]":     bel(),
	"B[kW]":    bel(),
	"B[SPL]":   halfBel(),
	"B[V]":     halfBel(),
	"B[mV]":    halfBel(),
	"B[uV]":    halfBel(),
	"B[10.nV]": halfBel(),
	"bit_s": {
		ToBase:   func(v *big.Rat) (*big.Rat, error) { return numeric.PowRat(two, v) },
		FromBase: numeric.Log2,
	},
	"%[slope]":        slope(),
	"[p'diop]":        slope(),
	"[hp'_X]":         homeopathic(homeopathicBases["[hp'_X]"]),
	"[hp'_C]":         homeopathic(homeopathicBases["[hp'_C]"]),
	"[hp'_M]":         homeopathic(homeopathicBases["[hp'_M]"]),
	"[hp'_Q]":         homeopathic(homeopathicBases["[hp'_Q]"]),
	"[m/s2/Hz^(1/2)]": {ToBase: func(v *big.Rat) (*big.Rat, error) { return numeric.Pow(v, 2) }, FromBase: numeric.Sqrt},
}

func bel() FunctionSet {
	return FunctionSet{
		ToBase:   func(v *big.Rat) (*big.Rat, error) { return numeric.PowRat(ten, v) },
		FromBase: numeric.Log10,
	}
}

func halfBel() FunctionSet {
	return FunctionSet{
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			return numeric.PowRat(ten, new(big.Rat).Quo(v, two))
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			r, err := numeric.Log10(v)
			if err != nil {
				return nil, err
			}
			return r.Mul(r, two), nil
		},
	}
}

func slope() FunctionSet {
	return FunctionSet{
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			r, err := numeric.Tan(v)
			if err != nil {
				return nil, err
			}
			return r.Mul(r, hundred), nil
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			return numeric.Atan(new(big.Rat).Quo(v, hundred))
		},
	}
}

func homeopathic(base *big.Rat) FunctionSet {
	return FunctionSet{
		ToBase: func(v *big.Rat) (*big.Rat, error) {
			return numeric.PowRat(base, new(big.Rat).Neg(v))
		},
		FromBase: func(v *big.Rat) (*big.Rat, error) {
			r, err := numeric.Log(v, base)
			if err != nil {
				return nil, err
			}
			return r.Neg(r), nil
		},
	}
}
