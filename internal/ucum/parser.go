package ucum

import (
	"math"
	"strconv"
	"strings"
)

type parser struct {
	reg  *Registry
	expr string
	pos  int
}

// parseTerms parses expr against reg and returns the unreduced terms.
func parseTerms(reg *Registry, expr string) ([]Term, error) {
	tree, err := parseExpression(reg, expr)
	if err != nil {
		return nil, err
	}
	return tree.terms(), nil
}

// ParseTerm parses an expression that must consist of exactly one term,
// such as "km2" or "10{tot}".
func ParseTerm(expr string) (Term, error) {
	terms, err := parseTerms(registry(), expr)
	if err != nil {
		return Term{}, err
	}
	if len(terms) != 1 {
		return Term{}, &ParseError{Kind: UnableToParse, Expression: expr, Fragment: expr, Reason: "expected a single term"}
	}
	return terms[0], nil
}

func parseExpression(reg *Registry, expr string) (*mainTerm, error) {
	p := &parser{reg: reg, expr: expr}
	if expr == "" {
		return nil, p.fail(UnableToParse, "", "empty expression")
	}
	m := &mainTerm{}
	if p.peek() == '/' {
		m.leadingSlash = true
		p.pos++
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.fail(UnableToParse, p.expr[p.pos:], "unexpected trailing input")
	}
	m.term = t
	return m, nil
}

func (p *parser) done() bool { return p.pos >= len(p.expr) }

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.expr[p.pos]
}

func (p *parser) fail(kind ParseErrorKind, fragment, reason string) error {
	return &ParseError{Kind: kind, Expression: p.expr, Fragment: fragment, Offset: p.pos, Reason: reason}
}

func (p *parser) parseTerm() (*termNode, error) {
	c, err := p.parseComponent()
	if err != nil {
		return nil, err
	}
	n := &termNode{component: c}
	switch p.peek() {
	case '.':
		n.op = opDot
	case '/':
		n.op = opSlash
	default:
		return n, nil
	}
	p.pos++
	if n.next, err = p.parseTerm(); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *parser) parseComponent() (*componentNode, error) {
	c := &componentNode{}

	if isDigit(p.peek()) {
		if m, ok := p.reg.matchAnnotatable(p.expr, p.pos); ok {
			// "10*" and "10^" are atoms, not factors.
			a, err := p.finishAnnotatable(m)
			if err != nil {
				return nil, err
			}
			c.annotatable = a
			return c, p.parseAnnotation(c)
		}
		f, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		c.factor = f
	}

	switch ch := p.peek(); {
	case ch == '(':
		p.pos++
		nested, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.fail(UnableToParse, p.expr[p.pos:], "missing closing parenthesis")
		}
		p.pos++
		c.nested = nested
	case ch == '{':
	case p.done() || ch == '.' || ch == '/' || ch == ')':
		if c.factor == 0 {
			return nil, p.fail(UnableToParse, "", "empty component")
		}
	default:
		a, err := p.parseAnnotatable()
		if err != nil {
			return nil, err
		}
		c.annotatable = a
	}

	return c, p.parseAnnotation(c)
}

func (p *parser) parseFactor() (uint32, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	digits := p.expr[start:p.pos]
	f, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		p.pos = start
		return 0, p.fail(UnableToParse, digits, "factor out of range")
	}
	if f == 0 {
		p.pos = start
		return 0, p.fail(UnableToParse, digits, "factor must be positive")
	}
	return uint32(f), nil
}

func (p *parser) parseAnnotatable() (*annotatableNode, error) {
	m, ok := p.reg.matchAnnotatable(p.expr, p.pos)
	if !ok {
		return nil, p.fail(UnknownUnitString, p.unknownFragment(), "")
	}
	return p.finishAnnotatable(m)
}

func (p *parser) finishAnnotatable(m codeMatch) (*annotatableNode, error) {
	p.pos += m.length
	a := &annotatableNode{prefix: m.prefix, atom: m.atom}
	e, ok, err := p.parseExponent()
	if err != nil {
		return nil, err
	}
	a.exponent, a.hasExponent = e, ok
	return a, nil
}

func (p *parser) parseExponent() (int32, bool, error) {
	start := p.pos
	if ch := p.peek(); ch == '+' || ch == '-' {
		p.pos++
	}
	digitsStart := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return 0, false, nil
	}
	if p.pos == digitsStart {
		p.pos = start
		return 0, false, p.fail(UnableToParse, p.expr[start:digitsStart], "sign without exponent digits")
	}
	e, err := strconv.ParseInt(p.expr[start:p.pos], 10, 32)
	if err != nil || e == math.MinInt32 {
		frag := p.expr[start:p.pos]
		p.pos = start
		return 0, false, p.fail(UnableToParse, frag, "exponent out of range")
	}
	return int32(e), true, nil
}

func (p *parser) parseAnnotation(c *componentNode) error {
	if p.peek() != '{' {
		return nil
	}
	end := strings.IndexByte(p.expr[p.pos+1:], '}')
	if end < 0 {
		return p.fail(UnableToParse, p.expr[p.pos:], "unterminated annotation")
	}
	text := p.expr[p.pos+1 : p.pos+1+end]
	if strings.IndexByte(text, '{') >= 0 {
		return p.fail(UnableToParse, p.expr[p.pos:p.pos+2+end], "nested annotation")
	}
	c.annotation, c.hasAnnotation = text, true
	p.pos += end + 2
	return nil
}

// unknownFragment returns the run of characters at the current position up
// to the next operator, for error reporting.
func (p *parser) unknownFragment() string {
	rest := p.expr[p.pos:]
	if i := strings.IndexAny(rest, "./(){}"); i >= 0 {
		if i == 0 {
			return rest[:1]
		}
		return rest[:i]
	}
	return rest
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
