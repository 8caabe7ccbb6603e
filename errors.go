package curvefit

import "fmt"

// InvalidArgumentError reports an argument that violates a documented
// precondition (empty input, a threshold at or below epsilon, a curve that
// does not connect to its neighbor, and so on).
type InvalidArgumentError struct {
	msg string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string { return e.msg }

func invalidArgument(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{msg: fmt.Sprintf(format, args...)}
}

// OutOfRangeError reports an index outside the valid range for the
// receiver it was passed to.
type OutOfRangeError struct {
	msg string
}

// Error implements the error interface.
func (e *OutOfRangeError) Error() string { return e.msg }

func outOfRange(format string, args ...any) *OutOfRangeError {
	return &OutOfRangeError{msg: fmt.Sprintf(format, args...)}
}
