package ucum

import "github.com/banshee-data/ucum/internal/dimension"

type atomSpec struct {
	code      string
	ci        string
	symbol    string
	name      string
	property  string
	class     Classification
	metric    bool
	special   bool
	arbitrary bool
	base      bool
	dim       dimension.Dimension
	value     string
	expr      string
}

func baseAtom(code, ci, symbol, name, property string, dim dimension.Dimension) atomSpec {
	return atomSpec{code: code, ci: ci, symbol: symbol, name: name, property: property,
		class: SI, metric: true, base: true, dim: dim, value: "1", expr: "1"}
}

func derived(code, ci, symbol, name, property string, class Classification, metric bool, value, expr string) atomSpec {
	return atomSpec{code: code, ci: ci, symbol: symbol, name: name, property: property,
		class: class, metric: metric, value: value, expr: expr}
}

func specialAtom(code, ci, symbol, name, property string, class Classification, metric bool, value, expr string) atomSpec {
	return atomSpec{code: code, ci: ci, symbol: symbol, name: name, property: property,
		class: class, metric: metric, special: true, value: value, expr: expr}
}

func arbitraryAtom(code, ci, symbol, name, property string, class Classification, metric bool) atomSpec {
	return atomSpec{code: code, ci: ci, symbol: symbol, name: name, property: property,
		class: class, metric: metric, arbitrary: true, value: "1", expr: "1"}
}

// piDigits is pi to 50 decimal places.
const piDigits = "3.14159265358979323846264338327950288419716939937510"

// atomTable lists atoms in registry order; the order drives term sorting.
// Base atoms come first in the canonical m, s, g, rad, K, C, cd order.
var atomTable = []atomSpec{
	baseAtom("m", "M", "m", "meter", "length", dimension.Length),
	baseAtom("s", "S", "s", "second", "time", dimension.Time),
	baseAtom("g", "G", "g", "gram", "mass", dimension.Mass),
	baseAtom("rad", "RAD", "rad", "radian", "plane angle", dimension.PlaneAngle),
	baseAtom("K", "K", "K", "kelvin", "temperature", dimension.Temperature),
	baseAtom("C", "C", "C", "coulomb", "electric charge", dimension.ElectricCharge),
	baseAtom("cd", "CD", "cd", "candela", "luminous intensity", dimension.LuminousIntensity),

	// dimensionless
	derived("10*", "10*", "10", "the number ten for arbitrary powers", "number", Dimless, false, "10", "1"),
	derived("10^", "10^", "10", "the number ten for arbitrary powers", "number", Dimless, false, "10", "1"),
	derived("[pi]", "[PI]", "π", "the number pi", "number", Dimless, false, piDigits, "1"),
	derived("%", "%", "%", "percent", "fraction", Dimless, false, "1", "10*-2"),
	derived("[ppth]", "[PPTH]", "ppth", "parts per thousand", "fraction", Dimless, false, "1", "10*-3"),
	derived("[ppm]", "[PPM]", "ppm", "parts per million", "fraction", Dimless, false, "1", "10*-6"),
	derived("[ppb]", "[PPB]", "ppb", "parts per billion", "fraction", Dimless, false, "1", "10*-9"),
	derived("[pptr]", "[PPTR]", "pptr", "parts per trillion", "fraction", Dimless, false, "1", "10*-12"),

	// SI
	derived("mol", "MOL", "mol", "mole", "amount of substance", SI, true, "6.0221367", "10*23"),
	derived("sr", "SR", "sr", "steradian", "solid angle", SI, true, "1", "rad2"),
	derived("Hz", "HZ", "Hz", "hertz", "frequency", SI, true, "1", "s-1"),
	derived("N", "N", "N", "newton", "force", SI, true, "1", "kg.m/s2"),
	derived("Pa", "PAL", "Pa", "pascal", "pressure", SI, true, "1", "N/m2"),
	derived("J", "J", "J", "joule", "energy", SI, true, "1", "N.m"),
	derived("W", "W", "W", "watt", "power", SI, true, "1", "J/s"),
	derived("A", "A", "A", "ampère", "electric current", SI, true, "1", "C/s"),
	derived("V", "V", "V", "volt", "electric potential", SI, true, "1", "J/C"),
	derived("F", "F", "F", "farad", "electric capacitance", SI, true, "1", "C/V"),
	derived("Ohm", "OHM", "Ω", "ohm", "electric resistance", SI, true, "1", "V/A"),
	derived("S", "SIE", "S", "siemens", "electric conductance", SI, true, "1", "Ohm-1"),
	derived("Wb", "WB", "Wb", "weber", "magnetic flux", SI, true, "1", "V.s"),
	specialAtom("Cel", "CEL", "°C", "degree Celsius", "temperature", SI, true, "1", "K"),
	derived("T", "T", "T", "tesla", "magnetic flux density", SI, true, "1", "Wb/m2"),
	derived("H", "H", "H", "henry", "inductance", SI, true, "1", "Wb/A"),
	derived("lm", "LM", "lm", "lumen", "luminous flux", SI, true, "1", "cd.sr"),
	derived("lx", "LX", "lx", "lux", "illuminance", SI, true, "1", "lm/m2"),
	derived("Bq", "BQ", "Bq", "becquerel", "radioactivity", SI, true, "1", "s-1"),
	derived("Gy", "GY", "Gy", "gray", "energy dose", SI, true, "1", "J/kg"),
	derived("Sv", "SV", "Sv", "sievert", "dose equivalent", SI, true, "1", "J/kg"),
	derived("mho", "MHO", "mho", "mho", "electric conductance", SI, true, "1", "S"),

	// ISO 1000
	derived("gon", "GON", "□g", "gon", "plane angle", ISO1000, false, "0.9", "deg"),
	derived("deg", "DEG", "°", "degree", "plane angle", ISO1000, false, "2", "[pi].rad/360"),
	derived("'", "'", "'", "minute", "plane angle", ISO1000, false, "1", "deg/60"),
	derived("''", "''", "''", "second", "plane angle", ISO1000, false, "1", "'/60"),
	derived("l", "L", "l", "liter", "volume", ISO1000, true, "1", "dm3"),
	derived("L", "L", "L", "liter", "volume", ISO1000, true, "1", "l"),
	derived("ar", "AR", "a", "are", "area", ISO1000, true, "100", "m2"),
	derived("min", "MIN", "min", "minute", "time", ISO1000, false, "60", "s"),
	derived("h", "HR", "h", "hour", "time", ISO1000, false, "60", "min"),
	derived("d", "D", "d", "day", "time", ISO1000, false, "24", "h"),
	derived("a_t", "ANN_T", "at", "tropical year", "time", ISO1000, false, "365.24219", "d"),
	derived("a_j", "ANN_J", "aj", "mean Julian year", "time", ISO1000, false, "365.25", "d"),
	derived("a_g", "ANN_G", "ag", "mean Gregorian year", "time", ISO1000, false, "365.2425", "d"),
	derived("a", "ANN", "a", "year", "time", ISO1000, false, "1", "a_j"),
	derived("wk", "WK", "wk", "week", "time", ISO1000, false, "7", "d"),
	derived("mo_s", "MO_S", "mos", "synodal month", "time", ISO1000, false, "29.53059", "d"),
	derived("mo_j", "MO_J", "moj", "mean Julian month", "time", ISO1000, false, "1", "a_j/12"),
	derived("mo_g", "MO_G", "mog", "mean Gregorian month", "time", ISO1000, false, "1", "a_g/12"),
	derived("mo", "MO", "mo", "month", "time", ISO1000, false, "1", "mo_j"),
	derived("t", "TNE", "t", "tonne", "mass", ISO1000, true, "1e3", "kg"),
	derived("bar", "BAR", "bar", "bar", "pressure", ISO1000, true, "1e5", "Pa"),
	derived("u", "AMU", "u", "unified atomic mass unit", "mass", ISO1000, true, "1.6605402e-24", "g"),
	derived("eV", "EV", "eV", "electronvolt", "energy", ISO1000, true, "1", "[e].V"),
	derived("AU", "ASU", "AU", "astronomic unit", "length", ISO1000, false, "149597.870691", "Mm"),
	derived("pc", "PRS", "pc", "parsec", "length", ISO1000, true, "3.085678e16", "m"),

	// natural constants
	derived("[c]", "[C]", "c", "velocity of light", "velocity", Const, true, "299792458", "m/s"),
	derived("[h]", "[H]", "h", "Planck constant", "action", Const, true, "6.6260755e-34", "J.s"),
	derived("[k]", "[K]", "k", "Boltzmann constant", "(unclassified)", Const, true, "1.380658e-23", "J/K"),
	derived("[eps_0]", "[EPS_0]", "ε0", "permittivity of vacuum", "electric permittivity", Const, true, "8.854187817e-12", "F/m"),
	derived("[mu_0]", "[MU_0]", "μ0", "permeability of vacuum", "magnetic permeability", Const, true, "1", "4.[pi].10*-7.N/A2"),
	derived("[e]", "[E]", "e", "elementary charge", "electric charge", Const, true, "1.60217733e-19", "C"),
	derived("[m_e]", "[M_E]", "me", "electron mass", "mass", Const, true, "9.1093897e-28", "g"),
	derived("[m_p]", "[M_P]", "mp", "proton mass", "mass", Const, true, "1.6726231e-24", "g"),
	derived("[G]", "[GC]", "G", "Newtonian constant of gravitation", "(unclassified)", Const, true, "6.67259e-11", "m3.kg-1.s-2"),
	derived("[g]", "[G]", "gn", "standard acceleration of free fall", "acceleration", Const, true, "9.80665", "m/s2"),
	derived("atm", "ATM", "atm", "standard atmosphere", "pressure", Const, false, "101325", "Pa"),
	derived("[ly]", "[LY]", "l.y.", "light-year", "length", Const, true, "1", "[c].a_j"),
	derived("gf", "GF", "gf", "gram-force", "force", Const, true, "1", "g.[g]"),
	derived("[lbf_av]", "[LBF_AV]", "lbf", "pound force", "force", Const, false, "1", "[lb_av].[g]"),

	// CGS
	derived("Ky", "KY", "K", "kayser", "lineic number", Cgs, true, "1", "cm-1"),
	derived("Gal", "GL", "Gal", "gal", "acceleration", Cgs, true, "1", "cm/s2"),
	derived("dyn", "DYN", "dyn", "dyne", "force", Cgs, true, "1", "g.cm/s2"),
	derived("erg", "ERG", "erg", "erg", "energy", Cgs, true, "1", "dyn.cm"),
	derived("P", "P", "P", "poise", "dynamic viscosity", Cgs, true, "1", "dyn.s/cm2"),
	derived("Bi", "BI", "Bi", "biot", "electric current", Cgs, true, "10", "A"),
	derived("St", "ST", "St", "stokes", "kinematic viscosity", Cgs, true, "1", "cm2/s"),
	derived("Mx", "MX", "Mx", "maxwell", "flux of magnetic induction", Cgs, true, "1e-8", "Wb"),
	derived("G", "GS", "Gs", "gauss", "magnetic flux density", Cgs, true, "1e-4", "T"),
	derived("Oe", "OE", "oe", "oersted", "magnetic field intensity", Cgs, true, "250", "A.[pi]-1/m"),
	derived("Gb", "GB", "Gb", "gilbert", "magnetic tension", Cgs, true, "2.5", "A.[pi]-1"),
	derived("sb", "SB", "sb", "stilb", "lum. intensity density", Cgs, true, "1", "cd/cm2"),
	derived("Lmb", "LMB", "L", "lambert", "brightness", Cgs, true, "1", "cd/cm2.[pi]"),
	derived("ph", "PHT", "ph", "phot", "illuminance", Cgs, true, "1e-4", "lx"),
	derived("Ci", "CI", "Ci", "curie", "radioactivity", Cgs, true, "3.7e10", "Bq"),
	derived("R", "ROE", "R", "roentgen", "ion dose", Cgs, true, "2.58e-4", "C/kg"),
	derived("RAD", "[RAD]", "RAD", "radiation absorbed dose", "energy dose", Cgs, true, "100", "erg/g"),
	derived("REM", "[REM]", "REM", "radiation equivalent man", "dose equivalent", Cgs, true, "1", "RAD"),

	// international customary
	derived("[in_i]", "[IN_I]", "in", "inch", "length", Intcust, false, "2.54", "cm"),
	derived("[ft_i]", "[FT_I]", "ft", "foot", "length", Intcust, false, "12", "[in_i]"),
	derived("[yd_i]", "[YD_I]", "yd", "yard", "length", Intcust, false, "3", "[ft_i]"),
	derived("[mi_i]", "[MI_I]", "mi", "statute mile", "length", Intcust, false, "5280", "[ft_i]"),
	derived("[fth_i]", "[FTH_I]", "fth", "fathom", "depth of water", Intcust, false, "6", "[ft_i]"),
	derived("[nmi_i]", "[NMI_I]", "n.mi", "nautical mile", "length", Intcust, false, "1852", "m"),
	derived("[kn_i]", "[KN_I]", "knot", "knot", "velocity", Intcust, false, "1", "[nmi_i]/h"),
	derived("[sin_i]", "[SIN_I]", "in2", "square inch", "area", Intcust, false, "1", "[in_i]2"),
	derived("[sft_i]", "[SFT_I]", "ft2", "square foot", "area", Intcust, false, "1", "[ft_i]2"),
	derived("[syd_i]", "[SYD_I]", "yd2", "square yard", "area", Intcust, false, "1", "[yd_i]2"),
	derived("[cin_i]", "[CIN_I]", "in3", "cubic inch", "volume", Intcust, false, "1", "[in_i]3"),
	derived("[cft_i]", "[CFT_I]", "ft3", "cubic foot", "volume", Intcust, false, "1", "[ft_i]3"),
	derived("[cyd_i]", "[CYD_I]", "yd3", "cubic yard", "volume", Intcust, false, "1", "[yd_i]3"),
	derived("[mil_i]", "[MIL_I]", "mil", "mil", "length", Intcust, false, "1e-3", "[in_i]"),

	// U.S. survey lengths
	derived("[ft_us]", "[FT_US]", "ftus", "foot", "length", USLengths, false, "1200", "m/3937"),
	derived("[yd_us]", "[YD_US]", "ydus", "yard", "length", USLengths, false, "3", "[ft_us]"),
	derived("[in_us]", "[IN_US]", "inus", "inch", "length", USLengths, false, "1", "[ft_us]/12"),
	derived("[rd_us]", "[RD_US]", "rdus", "rod", "length", USLengths, false, "16.5", "[ft_us]"),
	derived("[fur_us]", "[FUR_US]", "furus", "furlong", "length", USLengths, false, "40", "[rd_us]"),
	derived("[mi_us]", "[MI_US]", "mius", "mile", "length", USLengths, false, "8", "[fur_us]"),
	derived("[acr_us]", "[ACR_US]", "acrus", "acre", "area", USLengths, false, "160", "[rd_us]2"),

	// U.S. volumes
	derived("[gal_us]", "[GAL_US]", "gal", "Queen Anne's wine gallon", "fluid volume", USVolumes, false, "231", "[in_i]3"),
	derived("[qt_us]", "[QT_US]", "qt", "quart", "fluid volume", USVolumes, false, "1", "[gal_us]/4"),
	derived("[pt_us]", "[PT_US]", "pt", "pint", "fluid volume", USVolumes, false, "1", "[qt_us]/2"),
	derived("[gil_us]", "[GIL_US]", "gil", "gill", "fluid volume", USVolumes, false, "1", "[pt_us]/4"),
	derived("[foz_us]", "[FOZ_US]", "oz fl", "fluid ounce", "fluid volume", USVolumes, false, "1", "[gil_us]/4"),
	derived("[tbs_us]", "[TBS_US]", "tbs", "tablespoon", "volume", USVolumes, false, "1", "[foz_us]/2"),
	derived("[tsp_us]", "[TSP_US]", "tsp", "teaspoon", "volume", USVolumes, false, "1", "[tbs_us]/3"),
	derived("[cup_us]", "[CUP_US]", "cup", "cup", "volume", USVolumes, false, "16", "[tbs_us]"),

	// British volumes
	derived("[gal_br]", "[GAL_BR]", "gal", "gallon", "volume", BritVolumes, false, "4.54609", "l"),
	derived("[pt_br]", "[PT_BR]", "pt", "pint", "volume", BritVolumes, false, "1", "[gal_br]/8"),

	// avoirdupois
	derived("[gr]", "[GR]", "gr", "grain", "mass", Avoirdupois, false, "64.79891", "mg"),
	derived("[lb_av]", "[LB_AV]", "lb", "pound", "mass", Avoirdupois, false, "7000", "[gr]"),
	derived("[oz_av]", "[OZ_AV]", "oz", "ounce", "mass", Avoirdupois, false, "1", "[lb_av]/16"),
	derived("[ston_av]", "[STON_AV]", "ston", "short ton", "mass", Avoirdupois, false, "2000", "[lb_av]"),
	derived("[stone_av]", "[STONE_AV]", "stone", "stone", "mass", Avoirdupois, false, "14", "[lb_av]"),

	// heat
	derived("[degR]", "[DEGR]", "°R", "degree Rankine", "temperature", Heat, false, "5", "K/9"),
	specialAtom("[degF]", "[DEGF]", "°F", "degree Fahrenheit", "temperature", Heat, false, "1", "K"),
	specialAtom("[degRe]", "[DEGRE]", "°Ré", "degree Réaumur", "temperature", Heat, false, "1", "K"),
	derived("cal_th", "CAL_TH", "calth", "thermochemical calorie", "energy", Heat, true, "4.184", "J"),
	derived("cal", "CAL", "cal", "calorie", "energy", Heat, true, "1", "cal_th"),
	derived("[Cal]", "[CAL]", "Cal", "nutrition label Calories", "energy", Heat, false, "1", "kcal_th"),
	derived("[Btu_IT]", "[BTU_IT]", "BtuIT", "international table British thermal unit", "energy", Heat, false, "1.05505585262", "kJ"),
	derived("[HP]", "[HP]", "HP", "horsepower", "power", Heat, false, "550", "[ft_i].[lbf_av]/s"),

	// clinical
	derived("m[H2O]", "M[H2O]", "m H2O", "meter of water column", "pressure", Clinical, true, "9.80665", "kPa"),
	derived("m[Hg]", "M[HG]", "m Hg", "meter of mercury column", "pressure", Clinical, true, "133.322", "kPa"),
	derived("[psi]", "[PSI]", "psi", "pound per square inch", "pressure", Clinical, false, "1", "[lbf_av]/[in_i]2"),
	specialAtom("[p'diop]", "[P'DIOP]", "PD", "prism diopter", "refraction of a prism", Clinical, false, "1", "rad"),
	specialAtom("%[slope]", "%[SLOPE]", "%", "percent of slope", "slope", Clinical, false, "1", "rad"),
	derived("[drp]", "[DRP]", "drp", "drop", "volume", Clinical, false, "1", "ml/20"),
	specialAtom("[hp'_X]", "[HP'_X]", "X", "homeopathic potency of decimal series (retired)", "homeopathic potency (retired)", Clinical, false, "1", "1"),
	specialAtom("[hp'_C]", "[HP'_C]", "C", "homeopathic potency of centesimal series (retired)", "homeopathic potency (retired)", Clinical, false, "1", "1"),
	specialAtom("[hp'_M]", "[HP'_M]", "M", "homeopathic potency of millesimal series (retired)", "homeopathic potency (retired)", Clinical, false, "1", "1"),
	specialAtom("[hp'_Q]", "[HP'_Q]", "Q", "homeopathic potency of quintamillesimal series (retired)", "homeopathic potency (retired)", Clinical, false, "1", "1"),
	arbitraryAtom("[IU]", "[IU]", "IU", "international unit", "arbitrary", Chemical, true),
	arbitraryAtom("[arb'U]", "[ARB'U]", "arb. U", "arbitrary unit", "arbitrary", Chemical, false),
	arbitraryAtom("[CFU]", "[CFU]", "CFU", "colony forming units", "number", Chemical, false),

	// chemical
	specialAtom("[pH]", "[PH]", "pH", "pH", "acidity", Chemical, false, "1", "mol/l"),
	derived("eq", "EQ", "eq", "equivalents", "amount of substance", Chemical, true, "1", "mol"),
	derived("osm", "OSM", "osm", "osmole", "amount of substance (dissolved particles)", Chemical, true, "1", "mol"),
	derived("g%", "G%", "g%", "gram percent", "mass concentration", Chemical, true, "1", "g/dl"),
	derived("kat", "KAT", "kat", "katal", "catalytic activity", Chemical, true, "1", "mol/s"),
	derived("U", "U", "U", "Unit", "catalytic activity", Chemical, true, "1", "umol/min"),

	// levels
	specialAtom("Np", "NEP", "Np", "neper", "level", Levels, true, "1", "1"),
	specialAtom("B", "B", "B", "bel", "level", Levels, true, "1", "1"),
	specialAtom("B[SPL]", "B[SPL]", "B(SPL)", "bel sound pressure", "pressure level", Levels, true, "2", "10*-5.Pa"),
	specialAtom("B[V]", "B[V]", "B(V)", "bel volt", "electric potential level", Levels, true, "1", "V"),
	specialAtom("B[mV]", "B[MV]", "B(mV)", "bel millivolt", "electric potential level", Levels, true, "1", "mV"),
	specialAtom("B[uV]", "B[UV]", "B(μV)", "bel microvolt", "electric potential level", Levels, true, "1", "uV"),
	specialAtom("B[10.nV]", "B[10.NV]", "B(10 nV)", "bel 10 nanovolt", "electric potential level", Levels, true, "1", "10.nV"),
	specialAtom("B[W]", "B[W]", "B(W)", "bel watt", "power level", Levels, true, "1", "W"),
	specialAtom("B[kW]", "B[KW]", "B(kW)", "bel kilowatt", "power level", Levels, true, "1", "kW"),

	// information technology
	specialAtom("bit_s", "BIT_S", "bits", "bit", "amount of information", Infotech, false, "1", "1"),
	derived("bit", "BIT", "bit", "bit", "amount of information", Infotech, true, "1", "1"),
	derived("By", "BY", "B", "byte", "amount of information", Infotech, true, "8", "bit"),
	derived("Bd", "BD", "Bd", "baud", "signal transmission rate", Infotech, true, "1", "/s"),

	// misc
	derived("Ao", "AO", "Å", "Ångström", "length", Misc, false, "0.1", "nm"),
	derived("b", "BRN", "b", "barn", "action area", Misc, false, "100", "fm2"),
	specialAtom("[m/s2/Hz^(1/2)]", "[M/S2/HZ^(1/2)]", "", "meter per square seconds per square root of hertz", "amplitude spectral density", Misc, false, "1", "m2/s4.Hz"),
}
