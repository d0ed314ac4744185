// Package ucum parses Unified Code for Units of Measure expressions such as
// "kg.m/s2" or "mg/dl{tot}" into canonical units.
//
// A Unit is a reduced, deterministically ordered list of Terms. Each Term
// refers to an Atom from the process-wide registry, which is built on first
// use and read-only afterwards. Units can be multiplied, divided, inverted and
// compared, and expose the exact scale factors the measurement package needs
// for conversion.
//
// Slash semantics follow the recursive reading: everything to the right of a
// "/" is inverted, so "m/s/h" is m.s-1.h.
package ucum
