package interval

import (
	"errors"
	"fmt"

	"github.com/au-prob/gamut/symbolic"
)

// ErrUnbounded is reported by Size when a bound is still unset.
var ErrUnbounded = errors.New("interval has an unset bound")

// UnsupportedConstraintError reports a constraint whose shape the bound
// extractor cannot read: an atomic relation without the index variable on
// either side, a malformed connective, or an index variable outside ℤ.
// Shape errors are fatal for the enclosing extraction.
type UnsupportedConstraintError struct {
	Constraint symbolic.Expression
	Reason     string
}

func (err *UnsupportedConstraintError) Error() string {
	return fmt.Sprintf("unsupported constraint %v: %s", err.Constraint, err.Reason)
}

// UnsupportedOperatorError reports a well-shaped atomic relation whose
// operator expresses no bound on the index variable. FromConstraints
// records such relations as dots instead of failing; the error surfaces
// only from single-atom probes.
type UnsupportedOperatorError struct {
	Op         symbolic.Op
	Constraint symbolic.Expression
}

func (err *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("operator %v of %v does not express a bound", err.Op, err.Constraint)
}

// DomainError flags an interval whose ground bounds are inverted. Such an
// interval denotes the empty domain and must never be iterated or rendered
// as a satisfiable domain constraint.
type DomainError struct {
	Interval ClosedInterval
}

func (err *DomainError) Error() string {
	return fmt.Sprintf("interval [%v, %v] denotes an empty domain", err.Interval.lower, err.Interval.upper)
}

// NotEnumerableError reports an enumeration request over an interval that
// has no finite concrete value sequence. Cause names the offending bound
// or dot when one exists.
type NotEnumerableError struct {
	Interval ClosedInterval
	Cause    symbolic.Expression
	Reason   string
}

func (err *NotEnumerableError) Error() string {
	if err.Cause != nil {
		return fmt.Sprintf("interval %v is not enumerable: %s: %v", err.Interval, err.Reason, err.Cause)
	}
	return fmt.Sprintf("interval %v is not enumerable: %s", err.Interval, err.Reason)
}
