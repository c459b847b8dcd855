// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"github.com/avdva/fixedpoint/internal/core"
)

// Sign is the sign of a fixed-point value.
// Zero is always Positive.
type Sign uint8

const (
	// Positive is the sign of zero and positive values.
	Positive Sign = iota
	// Negative is the sign of negative values.
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

func signOf(neg bool) Sign {
	if neg {
		return Negative
	}
	return Positive
}

// RoundingMode specifies how Round treats a midpoint.
type RoundingMode = core.RoundingMode

const (
	// ToEven rounds a midpoint to the nearest even digit.
	ToEven = core.ToEven
	// AwayFromZero rounds a midpoint to the value with the larger magnitude.
	AwayFromZero = core.AwayFromZero
	// ToZero drops extra digits.
	ToZero = core.ToZero
)
