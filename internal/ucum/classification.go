package ucum

// Classification groups atoms the way the UCUM tables do.
type Classification int

const (
	SI Classification = iota
	ISO1000
	Clinical
	Chemical
	Const
	Cgs
	Intcust
	USLengths
	BritLength
	USVolumes
	BritVolumes
	Avoirdupois
	Troy
	Apoth
	Heat
	Levels
	Infotech
	Misc
	Dimless
)

var classificationNames = [...]string{
	SI:          "si",
	ISO1000:     "iso1000",
	Clinical:    "clinical",
	Chemical:    "chemical",
	Const:       "const",
	Cgs:         "cgs",
	Intcust:     "intcust",
	USLengths:   "us-lengths",
	BritLength:  "brit-length",
	USVolumes:   "us-volumes",
	BritVolumes: "brit-volumes",
	Avoirdupois: "avoirdupois",
	Troy:        "troy",
	Apoth:       "apoth",
	Heat:        "heat",
	Levels:      "levels",
	Infotech:    "infotech",
	Misc:        "misc",
	Dimless:     "dimless",
}

func (c Classification) String() string {
	if c < 0 || int(c) >= len(classificationNames) {
		return "unknown"
	}
	return classificationNames[c]
}
