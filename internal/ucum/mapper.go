package ucum

func (m *mainTerm) terms() []Term {
	terms := m.term.terms()
	if m.leadingSlash {
		invertTerms(terms)
	}
	return terms
}

func (n *termNode) terms() []Term {
	terms := n.component.terms()
	if n.next == nil {
		return terms
	}
	rest := n.next.terms()
	if n.op == opSlash {
		invertTerms(rest)
	}
	return append(terms, rest...)
}

func (c *componentNode) terms() []Term {
	if c.nested != nil {
		var terms []Term
		if c.factor != 0 {
			terms = append(terms, Term{factor: c.factor})
		}
		terms = append(terms, c.nested.terms()...)
		if c.hasAnnotation {
			terms = append(terms, AnnotationTerm(c.annotation))
		}
		return terms
	}

	t := Term{factor: c.factor, annotation: c.annotation, hasAnnotation: c.hasAnnotation}
	if a := c.annotatable; a != nil {
		t.prefix, t.atom = a.prefix, a.atom
		t.exponent, t.hasExponent = a.exponent, a.hasExponent
	}
	return []Term{t}
}
