package core

import (
	"strconv"

	"github.com/avdva/fixedpoint/internal/mathutil"
)

// RoundingMode specifies how a midpoint is rounded.
type RoundingMode int

const (
	// ToEven rounds a midpoint to the nearest even digit (banker's rounding).
	ToEven RoundingMode = iota
	// AwayFromZero rounds a midpoint to the value with the larger magnitude.
	AwayFromZero
	// ToZero discards the dropped digits.
	ToZero
)

func (m RoundingMode) String() string {
	switch m {
	case ToEven:
		return "ToEven"
	case AwayFromZero:
		return "AwayFromZero"
	case ToZero:
		return "ToZero"
	default:
		return "RoundingMode(" + strconv.Itoa(int(m)) + ")"
	}
}

// Floor drops the fractional part.
func (l Layout) Floor(n Num) Num {
	return l.Normalize(Num{Neg: n.Neg, Int: n.Int})
}

// Ceiling drops the fractional part and, if it was nonzero, increments the integral magnitude.
// If that overflows the layout's range, Max or Min is returned with its full fractional part.
func (l Layout) Ceiling(n Num) Num {
	if n.Frac == 0 {
		return n
	}
	if n.Int >= l.MaxInt {
		return l.saturate(n.Neg)
	}
	return Num{Neg: n.Neg, Int: n.Int + 1}
}

// Round rounds n to 'precision' fractional digits.
// Precision is clamped to [0, Digits].
// If rounding overflows the layout's range, Max or Min is returned with its full fractional part,
// so the result may have more than 'precision' fractional digits.
func (l Layout) Round(n Num, precision int, mode RoundingMode) Num {
	if precision < 0 {
		precision = 0
	}
	if precision >= l.Digits {
		return n
	}
	unit := mathutil.Pow10(l.Digits - precision)
	q, rem := n.Frac/unit, n.Frac%unit
	lastDigit := q
	if precision == 0 {
		lastDigit = n.Int
	}
	if roundUp(mode, rem, unit, lastDigit) {
		q++
	}
	integral, frac := n.Int, q*unit
	if frac >= l.Scale {
		if integral >= l.MaxInt {
			return l.saturate(n.Neg)
		}
		frac -= l.Scale
		integral++
	}
	return l.Normalize(Num{Neg: n.Neg, Int: integral, Frac: frac})
}

// RoundToNonZero rounds n to a whole number.
// A nonzero value is never rounded to zero: it becomes 1 with the sign of n.
func (l Layout) RoundToNonZero(n Num, mode RoundingMode) Num {
	if n.IsZero() {
		return n
	}
	r := l.Round(n, 0, mode)
	if r.IsZero() {
		return Num{Neg: n.Neg, Int: 1}
	}
	return r
}

// roundUp decides if the kept digits should be incremented,
// given the dropped remainder 'rem' in [0, unit) and the last kept digit.
func roundUp(mode RoundingMode, rem, unit, lastDigit uint64) bool {
	if rem == 0 {
		return false
	}
	other := unit - rem
	switch mode {
	case AwayFromZero:
		return rem >= other
	case ToEven:
		if rem != other {
			return rem > other
		}
		return lastDigit%2 == 1
	default:
		return false
	}
}
