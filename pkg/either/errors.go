package either

import (
	"errors"
	"fmt"
)

// BadAccessError reports an accessor call for a variant the instance does
// not currently hold, including any payload access on an emptied instance.
type BadAccessError struct {
	Op string
}

func (e *BadAccessError) Error() string {
	return fmt.Sprintf("either: bad access in %s", e.Op)
}

// BadAssignError reports a conversion assignment whose target does not
// currently hold the required variant.
type BadAssignError struct {
	Op string
}

func (e *BadAssignError) Error() string {
	return fmt.Sprintf("either: bad assign in %s", e.Op)
}

// IllFormedError reports an instantiation rejected by the well-formedness
// rules. It is delivered by panic from the construction entry points.
type IllFormedError struct {
	Reason string
}

func (e *IllFormedError) Error() string {
	return "either: ill formed: " + e.Reason
}

// IsBadAccess reports whether err is (or wraps) a BadAccessError.
func IsBadAccess(err error) bool {
	var target *BadAccessError
	return errors.As(err, &target)
}

// IsBadAssign reports whether err is (or wraps) a BadAssignError.
func IsBadAssign(err error) bool {
	var target *BadAssignError
	return errors.As(err, &target)
}

func badAccess(op string) error {
	return &BadAccessError{Op: op}
}

func badAssign(op string) error {
	return &BadAssignError{Op: op}
}
