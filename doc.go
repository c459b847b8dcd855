// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package fixedpoint implements a family of decimal fixed-point numbers.
//
// Every type stores a sign, an unsigned integral part and an unsigned fractional part
// counted in units of 10^-digits:
//
//	Small     16-bit integral,  4 fractional digits
//	Medium    32-bit integral,  9 fractional digits
//	Moderate  32-bit integral, 19 fractional digits
//	Large     64-bit integral, 19 fractional digits
//
// Values are immutable. Arithmetic saturates at the type's Max and Min values,
// fractional digits that do not fit are truncated. Multiplication and division
// never turn nonzero operands into zero: the smallest value of the result's sign is returned instead.
// Division and modulo by zero return ErrDivideByZero together with the unchanged receiver.
//
// Use Null to represent a missing value.
package fixedpoint
