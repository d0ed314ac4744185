package ucum

import (
	"math/big"

	"github.com/banshee-data/ucum/internal/numeric"
)

// Prefix is a multiplier attached to an atom, e.g. the "k" in "km".
type Prefix struct {
	code          string
	secondaryCode string
	name          string
	value         *big.Rat
	index         int
}

// Code returns the case-sensitive UCUM code.
func (p *Prefix) Code() string { return p.code }

// SecondaryCode returns the uppercase UCUM "c/i" code.
func (p *Prefix) SecondaryCode() string { return p.secondaryCode }

// Name returns the prefix name, e.g. "kilo".
func (p *Prefix) Name() string { return p.name }

// Value returns the exact multiplier.
func (p *Prefix) Value() *big.Rat { return numeric.Clone(p.value) }

func (p *Prefix) String() string { return p.code }

type prefixSpec struct {
	code, ci, name, value string
}

var prefixTable = []prefixSpec{
	{"Y", "YA", "yotta", "1e24"},
	{"Z", "ZA", "zetta", "1e21"},
	{"E", "EX", "exa", "1e18"},
	{"P", "PT", "peta", "1e15"},
	{"T", "TR", "tera", "1e12"},
	{"G", "GA", "giga", "1e9"},
	{"M", "MA", "mega", "1e6"},
	{"k", "K", "kilo", "1e3"},
	{"h", "H", "hecto", "1e2"},
	{"da", "DA", "deka", "1e1"},
	{"d", "D", "deci", "1e-1"},
	{"c", "C", "centi", "1e-2"},
	{"m", "M", "milli", "1e-3"},
	{"u", "U", "micro", "1e-6"},
	{"n", "N", "nano", "1e-9"},
	{"p", "P", "pico", "1e-12"},
	{"f", "F", "femto", "1e-15"},
	{"a", "A", "atto", "1e-18"},
	{"z", "ZO", "zepto", "1e-21"},
	{"y", "YO", "yocto", "1e-24"},
	{"Ki", "KIB", "kibi", "1024"},
	{"Mi", "MIB", "mebi", "1048576"},
	{"Gi", "GIB", "gibi", "1073741824"},
	{"Ti", "TIB", "tebi", "1099511627776"},
}
