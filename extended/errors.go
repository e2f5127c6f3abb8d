// SPDX-License-Identifier: MIT

package extended

import (
	"errors"
	"fmt"
)

// Sentinel errors. Arithmetic never returns them directly: an indeterminate
// form or a zero divisor panics with an *ArithmeticError wrapping one of
// them, and Try turns that panic back into an error.
var (
	// ErrIndeterminate marks +inf + (-inf), inf - inf, 0 * inf and inf / inf.
	ErrIndeterminate = errors.New("extended: indeterminate form")

	// ErrDivisionByZero marks a finite or infinite dividend over Finite(0).
	ErrDivisionByZero = errors.New("extended: division by zero")

	// ErrSyntax is returned by the literal parsers for an unrecognised token.
	ErrSyntax = errors.New("extended: invalid literal")
)

// ArithmeticError is the panic value raised by the fatal arithmetic class.
type ArithmeticError struct {
	Op   string // "add", "sub", "mul" or "div"
	Form string // the offending expression, e.g. "inf - inf"
	Err  error  // ErrIndeterminate or ErrDivisionByZero
}

// Error renders "<sentinel>: <form>".
func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Form)
}

// Unwrap exposes the sentinel to errors.Is.
func (e *ArithmeticError) Unwrap() error { return e.Err }

func indeterminate(op, form string) *ArithmeticError {
	return &ArithmeticError{Op: op, Form: form, Err: ErrIndeterminate}
}

func divisionByZero(form string) *ArithmeticError {
	return &ArithmeticError{Op: "div", Form: form, Err: ErrDivisionByZero}
}

// Try runs fn and converts an *ArithmeticError panic into a returned error.
// Any other panic is re-raised unchanged.
//
//	q, err := extended.Try(func() extended.Int64 { return a.Div(b) })
//	if errors.Is(err, extended.ErrDivisionByZero) { ... }
func Try[R any](fn func() R) (res R, err error) {
	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*ArithmeticError)
			if !ok {
				panic(r)
			}
			err = ae
		}
	}()

	return fn(), nil
}
