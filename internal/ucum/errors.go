package ucum

import (
	"errors"
	"fmt"
)

// ErrParse matches every *ParseError via errors.Is.
var ErrParse = errors.New("ucum: parse error")

// ParseErrorKind separates unknown codes from malformed structure.
type ParseErrorKind int

const (
	UnknownUnitString ParseErrorKind = iota
	UnableToParse
)

func (k ParseErrorKind) String() string {
	switch k {
	case UnknownUnitString:
		return "unknown unit string"
	case UnableToParse:
		return "unable to parse"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports where an expression stopped making sense.
type ParseError struct {
	Kind       ParseErrorKind
	Expression string
	Fragment   string
	Offset     int
	Reason     string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("ucum: %s %q in %q at offset %d", e.Kind, e.Fragment, e.Expression, e.Offset)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is lets errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
