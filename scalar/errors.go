// SPDX-License-Identifier: MIT

// Package scalar: sentinel error set.
// Functions return these sentinels unwrapped; callers match them via errors.Is.
package scalar

import "errors"

var (
	// ErrDivideByZero is returned when dividing by the zero value (a=0, b=0).
	ErrDivideByZero = errors.New("scalar: divide by zero")

	// ErrEmptyInput is returned by aggregate functions called with no values.
	ErrEmptyInput = errors.New("scalar: empty input")

	// ErrNegativeArgument is returned by integer helpers that require n >= 0.
	ErrNegativeArgument = errors.New("scalar: negative argument")
)
