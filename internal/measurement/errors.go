package measurement

import (
	"errors"
	"fmt"

	"github.com/banshee-data/ucum/internal/ucum"
)

// ErrIncompatibleUnits matches every *IncompatibleUnitsError.
var ErrIncompatibleUnits = errors.New("incompatible units")

// IncompatibleUnitsError is returned when a value cannot be expressed in the
// requested unit.
type IncompatibleUnitsError struct {
	From ucum.Unit
	To   ucum.Unit
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: %s (%s) and %s (%s)",
		e.From, e.From.Composition(), e.To, e.To.Composition())
}

func (e *IncompatibleUnitsError) Is(target error) bool {
	return target == ErrIncompatibleUnits
}
