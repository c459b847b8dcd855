// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"github.com/avdva/fixedpoint/internal/core"
)

var (
	// Error is the class of all errors returned by this package.
	Error = core.Error
	// ErrDivideByZero is returned by Div and Mod when the divisor is zero.
	ErrDivideByZero = core.ErrDivideByZero
	// ErrSyntax is wrapped by every ParseError.
	ErrSyntax = core.ErrSyntax
	// ErrNaN is returned by the From*Float64 constructors for a NaN argument.
	ErrNaN = core.ErrNaN
)

// ParseError describes a string that could not be parsed.
// Use errors.Is(err, ErrSyntax) to check for it.
type ParseError = core.ParseError
