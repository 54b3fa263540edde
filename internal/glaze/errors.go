package glaze

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownIdentifierError reports a colorant or flux identity outside the
// fixed supported set. Callers should prefer the predicate functions
// (IsUnknownIdentifier etc.) over asserting on these types directly.
type UnknownIdentifierError struct {
	kind  string
	name  string
	known []string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown %s %q (supported: %s)", e.kind, e.name, strings.Join(e.known, ", "))
}

// Kind returns which enumeration was violated ("colorant" or "flux").
func (e *UnknownIdentifierError) Kind() string { return e.kind }

// Name returns the offending identity as given by the caller.
func (e *UnknownIdentifierError) Name() string { return e.name }

// OutOfRangeError reports a firing cone outside the supported range.
type OutOfRangeError struct {
	cone     int
	min, max int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("cone %d outside supported firing range [%d, %d]", e.cone, e.min, e.max)
}

// Cone returns the offending cone value.
func (e *OutOfRangeError) Cone() int { return e.cone }

// InvalidFormulationError reports a malformed formulation field, such as a
// colorant percentage outside (0, 100] or an unrecognized atmosphere.
type InvalidFormulationError struct {
	field  string
	reason string
}

func (e *InvalidFormulationError) Error() string {
	return fmt.Sprintf("invalid formulation: %s %s", e.field, e.reason)
}

// Field returns the name of the offending formulation field.
func (e *InvalidFormulationError) Field() string { return e.field }

// IsUnknownIdentifier reports whether err is an unknown colorant/flux identity error.
func IsUnknownIdentifier(err error) bool {
	var uerr *UnknownIdentifierError
	return errors.As(err, &uerr)
}

// IsOutOfRange reports whether err is a cone-out-of-range error.
func IsOutOfRange(err error) bool {
	var oerr *OutOfRangeError
	return errors.As(err, &oerr)
}

// IsInvalidFormulation reports whether err is a malformed-formulation error.
func IsInvalidFormulation(err error) bool {
	var ierr *InvalidFormulationError
	return errors.As(err, &ierr)
}
