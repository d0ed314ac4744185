package ucum

type operator int

const (
	opNone operator = iota
	opDot
	opSlash
)

// mainTerm is the root of a parsed expression.
type mainTerm struct {
	leadingSlash bool
	term         *termNode
}

// termNode is a component optionally followed by an operator and the rest of
// the expression.
type termNode struct {
	component *componentNode
	op        operator
	next      *termNode
}

type componentNode struct {
	factor        uint32 // 0 means absent
	annotatable   *annotatableNode
	nested        *termNode
	annotation    string
	hasAnnotation bool
}

type annotatableNode struct {
	prefix      *Prefix
	atom        *Atom
	exponent    int32
	hasExponent bool
}
