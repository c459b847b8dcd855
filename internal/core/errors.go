package core

import (
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by the fixed-point types.
var Error = errs.Class("fixedpoint")

var (
	// ErrDivideByZero is returned by division and modulo when the divisor is zero.
	ErrDivideByZero = Error.New("division by zero")
	// ErrSyntax is wrapped by every ParseError.
	ErrSyntax = Error.New("invalid syntax")
	// ErrNaN is returned when a NaN float is converted into a fixed-point value.
	ErrNaN = Error.New("not a number")
)

// ParseError describes a string that could not be parsed into a fixed-point value.
type ParseError struct {
	// Input is the original string.
	Input string
	// Pos is a 1-based position of the offending symbol, or 0.
	Pos int
	// Msg describes the problem.
	Msg string
}

func (pe *ParseError) Error() string {
	var suffix string
	if pe.Pos > 0 {
		suffix = " at pos " + strconv.Itoa(pe.Pos)
	}
	return "parsing failed: " + pe.Msg + suffix
}

// Unwrap allows errors.Is(err, ErrSyntax).
func (pe *ParseError) Unwrap() error {
	return ErrSyntax
}
