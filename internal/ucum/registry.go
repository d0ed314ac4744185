package ucum

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/banshee-data/ucum/internal/dimension"
	"github.com/banshee-data/ucum/internal/monitoring"
	"github.com/banshee-data/ucum/internal/numeric"
)

// Registry holds every known atom and prefix. It is built once and never
// modified afterwards, so it is safe for concurrent use.
type Registry struct {
	atoms    []*Atom
	prefixes []*Prefix

	atomsByCode    map[string]*Atom
	prefixesByCode map[string]*Prefix

	primary   codeIndex
	secondary codeIndex
}

type atomCode struct {
	code string
	atom *Atom
}

type prefixCode struct {
	code   string
	prefix *Prefix
}

// codeIndex buckets codes by first byte, longest code first.
type codeIndex struct {
	atoms    map[byte][]atomCode
	prefixes map[byte][]prefixCode
}

var (
	defaultRegistry *Registry
	registryOnce    sync.Once
)

func registry() *Registry {
	registryOnce.Do(func() {
		defaultRegistry = mustBuildRegistry(prefixTable, atomTable)
	})
	return defaultRegistry
}

// LookupAtom finds an atom by its case-sensitive code.
func LookupAtom(code string) (*Atom, bool) {
	a, ok := registry().atomsByCode[code]
	return a, ok
}

// LookupPrefix finds a prefix by its case-sensitive code.
func LookupPrefix(code string) (*Prefix, bool) {
	p, ok := registry().prefixesByCode[code]
	return p, ok
}

// Atoms returns every atom in registry order.
func Atoms() []*Atom {
	r := registry()
	out := make([]*Atom, len(r.atoms))
	copy(out, r.atoms)
	return out
}

// Prefixes returns every prefix in registry order.
func Prefixes() []*Prefix {
	r := registry()
	out := make([]*Prefix, len(r.prefixes))
	copy(out, r.prefixes)
	return out
}

func mustBuildRegistry(prefixes []prefixSpec, atoms []atomSpec) *Registry {
	r, err := buildRegistry(prefixes, atoms)
	if err != nil {
		monitoring.Logf("ucum: registry build failed: %v", err)
		panic(err)
	}
	return r
}

func buildRegistry(prefixes []prefixSpec, atoms []atomSpec) (*Registry, error) {
	r := &Registry{
		atomsByCode:    make(map[string]*Atom, len(atoms)),
		prefixesByCode: make(map[string]*Prefix, len(prefixes)),
	}

	for i, spec := range prefixes {
		value, err := numeric.ParseRat(spec.value)
		if err != nil {
			return nil, fmt.Errorf("prefix %s: %w", spec.code, err)
		}
		p := &Prefix{code: spec.code, secondaryCode: spec.ci, name: spec.name, value: value, index: i}
		if _, dup := r.prefixesByCode[p.code]; dup {
			return nil, fmt.Errorf("duplicate prefix code %q", p.code)
		}
		r.prefixes = append(r.prefixes, p)
		r.prefixesByCode[p.code] = p
	}

	for i, spec := range atoms {
		a := &Atom{
			code:           spec.code,
			secondaryCode:  spec.ci,
			printSymbol:    spec.symbol,
			names:          []string{spec.name},
			property:       spec.property,
			classification: spec.class,
			metric:         spec.metric,
			special:        spec.special,
			arbitrary:      spec.arbitrary,
			index:          i,
			base:           spec.base,
			dim:            spec.dim,
		}
		if _, dup := r.atomsByCode[a.code]; dup {
			return nil, fmt.Errorf("duplicate atom code %q", a.code)
		}
		r.atoms = append(r.atoms, a)
		r.atomsByCode[a.code] = a
	}

	r.primary = r.indexCodes(func(a *Atom) string { return a.code }, func(p *Prefix) string { return p.code })
	r.secondary = r.indexCodes(func(a *Atom) string { return a.secondaryCode }, func(p *Prefix) string { return p.secondaryCode })

	// Definitions can only be parsed once every code is indexed.
	for i, spec := range atoms {
		a := r.atoms[i]
		if err := r.define(a, spec); err != nil {
			return nil, err
		}
	}

	state := make(map[*Atom]int, len(r.atoms))
	for _, a := range r.atoms {
		if err := r.resolve(a, state, nil); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) define(a *Atom, spec atomSpec) error {
	fs, hasFunctions := specialFunctions[a.code]
	switch {
	case a.special && !hasFunctions:
		return fmt.Errorf("special atom %s has no conversion functions", a.code)
	case !a.special && hasFunctions:
		return fmt.Errorf("atom %s has conversion functions but is not special", a.code)
	}

	if a.base {
		a.definition = unityDefinition
		return nil
	}

	value, err := numeric.ParseRat(spec.value)
	if err != nil {
		return fmt.Errorf("atom %s: definition value: %w", a.code, err)
	}
	terms, err := parseTerms(r, spec.expr)
	if err != nil {
		return fmt.Errorf("atom %s: definition %q: %w", a.code, spec.expr, err)
	}
	d := &Definition{value: value, terms: terms}
	if hasFunctions {
		d.functions = &fs
	}
	a.definition = d
	return nil
}

const (
	unvisited = iota
	visiting
	resolved
)

// resolve fills in an atom's composition and scalar, resolving the atoms its
// definition refers to first.
func (r *Registry) resolve(a *Atom, state map[*Atom]int, path []string) error {
	switch state[a] {
	case resolved:
		return nil
	case visiting:
		return fmt.Errorf("definition cycle: %s -> %s", strings.Join(path, " -> "), a.code)
	}
	state[a] = visiting
	path = append(path, a.code)

	if a.base {
		a.composition = dimension.New(a.dim, 1)
		a.scalar = numeric.One()
		state[a] = resolved
		return nil
	}

	var c dimension.Composition
	for _, t := range a.definition.terms {
		if t.atom != nil {
			if err := r.resolve(t.atom, state, path); err != nil {
				return err
			}
		}
		c = c.Multiply(t.Composition())
	}
	scalar, err := a.definition.scalar()
	if err != nil {
		return fmt.Errorf("atom %s: %w", a.code, err)
	}
	a.composition = c
	a.scalar = scalar
	state[a] = resolved
	return nil
}

func (r *Registry) indexCodes(atomCodeOf func(*Atom) string, prefixCodeOf func(*Prefix) string) codeIndex {
	idx := codeIndex{
		atoms:    make(map[byte][]atomCode),
		prefixes: make(map[byte][]prefixCode),
	}
	for _, a := range r.atoms {
		code := atomCodeOf(a)
		if code == "" {
			continue
		}
		idx.atoms[code[0]] = append(idx.atoms[code[0]], atomCode{code: code, atom: a})
	}
	for _, p := range r.prefixes {
		code := prefixCodeOf(p)
		idx.prefixes[code[0]] = append(idx.prefixes[code[0]], prefixCode{code: code, prefix: p})
	}
	for k := range idx.atoms {
		list := idx.atoms[k]
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].code) > len(list[j].code) })
	}
	for k := range idx.prefixes {
		list := idx.prefixes[k]
		sort.SliceStable(list, func(i, j int) bool { return len(list[i].code) > len(list[j].code) })
	}
	return idx
}

// codeMatch is one way of reading an annotatable at a position.
type codeMatch struct {
	prefix *Prefix
	atom   *Atom
	length int
}

// match returns every reading of s[pos:] as prefix? atom, best first. Only
// readings followed by a character that may legally end an annotatable are
// returned.
func (idx *codeIndex) match(s string, pos int) []codeMatch {
	if pos >= len(s) {
		return nil
	}
	rest := s[pos:]
	type candidate struct {
		codeMatch
		prefixLen int
	}
	var cands []candidate
	for _, ac := range idx.atoms[rest[0]] {
		if strings.HasPrefix(rest, ac.code) && canFollowAnnotatable(s, pos+len(ac.code)) {
			cands = append(cands, candidate{codeMatch{atom: ac.atom, length: len(ac.code)}, 0})
		}
	}
	for _, pc := range idx.prefixes[rest[0]] {
		if !strings.HasPrefix(rest, pc.code) || len(pc.code) >= len(rest) {
			continue
		}
		after := rest[len(pc.code):]
		for _, ac := range idx.atoms[after[0]] {
			n := len(pc.code) + len(ac.code)
			if strings.HasPrefix(after, ac.code) && canFollowAnnotatable(s, pos+n) {
				cands = append(cands, candidate{codeMatch{prefix: pc.prefix, atom: ac.atom, length: n}, len(pc.code)})
			}
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.length != b.length {
			return a.length > b.length
		}
		if (a.prefix == nil) != (b.prefix == nil) {
			return a.prefix == nil
		}
		return a.prefixLen > b.prefixLen
	})
	out := make([]codeMatch, len(cands))
	for i, c := range cands {
		out[i] = c.codeMatch
	}
	return out
}

func canFollowAnnotatable(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	switch c := s[pos]; {
	case c >= '0' && c <= '9':
		return true
	case c == '+', c == '-', c == '.', c == '/', c == '{', c == ')':
		return true
	}
	return false
}

// matchAnnotatable tries primary codes first and falls back to secondary
// codes only when no primary reading exists. Secondary codes are uppercase
// and matched literally, so "KM" reads as kilometre but "Km" does not.
func (r *Registry) matchAnnotatable(s string, pos int) (codeMatch, bool) {
	if m := r.primary.match(s, pos); len(m) > 0 {
		return m[0], true
	}
	if m := r.secondary.match(s, pos); len(m) > 0 {
		return m[0], true
	}
	return codeMatch{}, false
}
