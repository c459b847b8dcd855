// Package core implements sign-magnitude fixed-point arithmetic over
// unsigned integral and fractional fields.
//
// A value is a Num: a sign flag, an integral magnitude and a fractional magnitude
// counted in units of 10^-digits. A Layout describes one fixed-point type:
// its fractional digit count and its maximum integral magnitude.
// Nums are values; every operation returns a new Num.
package core

import (
	"github.com/avdva/fixedpoint/internal/mathutil"
)

// Num is a sign-magnitude fixed-point value.
type Num struct {
	Neg  bool
	Int  uint64
	Frac uint64
}

// IsZero returns true if both magnitudes are zero.
func (n Num) IsZero() bool {
	return n.Int == 0 && n.Frac == 0
}

// Negated returns n with the opposite sign.
// The result is not normalized.
func (n Num) Negated() Num {
	n.Neg = !n.Neg
	return n
}

// Layout describes a fixed-point type.
type Layout struct {
	// Digits is the number of fractional digits.
	Digits int
	// Scale is 10^Digits.
	Scale uint64
	// MaxInt is the maximum integral magnitude.
	MaxInt uint64
}

// NewLayout returns a layout for given fractional digits and maximum integral magnitude.
func NewLayout(digits int, maxInt uint64) Layout {
	scale := mathutil.Pow10(digits)
	if scale == 0 || digits == 0 {
		panic("fixedpoint: unsupported digits count")
	}
	return Layout{Digits: digits, Scale: scale, MaxInt: maxInt}
}

// Max returns the largest value of the layout.
func (l Layout) Max() Num {
	return Num{Int: l.MaxInt, Frac: l.Scale - 1}
}

// Min returns the smallest value of the layout.
func (l Layout) Min() Num {
	return Num{Neg: true, Int: l.MaxInt, Frac: l.Scale - 1}
}

// Epsilon returns the smallest positive value of the layout.
func (l Layout) Epsilon() Num {
	return Num{Frac: 1}
}

// One returns 1.
func (l Layout) One() Num {
	return Num{Int: 1}
}

// Normalize turns a negative zero into a positive zero.
func (l Layout) Normalize(n Num) Num {
	if n.IsZero() {
		return Num{}
	}
	return n
}

// saturate returns Max or Min.
func (l Layout) saturate(neg bool) Num {
	if neg {
		return l.Min()
	}
	return l.Max()
}

// FromParts returns a value for given sign, integral and fractional magnitudes.
// A fractional magnitude not less than the scale is carried into the integral.
// Integral magnitudes above the maximum are clamped.
func (l Layout) FromParts(neg bool, integral, fractional uint64) Num {
	if fractional >= l.Scale {
		carry := fractional / l.Scale
		fractional %= l.Scale
		if integral > l.MaxInt || carry > l.MaxInt-integral {
			return l.saturate(neg)
		}
		integral += carry
	}
	if integral > l.MaxInt {
		return l.saturate(neg)
	}
	return l.Normalize(Num{Neg: neg, Int: integral, Frac: fractional})
}

// FromInt returns a whole value with given sign and magnitude, clamped to the layout's range.
func (l Layout) FromInt(neg bool, magnitude uint64) Num {
	if magnitude > l.MaxInt {
		return l.saturate(neg)
	}
	return l.Normalize(Num{Neg: neg, Int: magnitude})
}

// Valid returns true if n satisfies the layout's invariants.
func (l Layout) Valid(n Num) bool {
	if n.Frac >= l.Scale || n.Int > l.MaxInt {
		return false
	}
	return !(n.Neg && n.IsZero())
}

// Abs returns the magnitude of n.
func (l Layout) Abs(n Num) Num {
	n.Neg = false
	return n
}

// Neg returns -n.
func (l Layout) Neg(n Num) Num {
	return l.Normalize(n.Negated())
}

// Sign returns -1 if n < 0, 0 if n == 0, 1 if n > 0.
func (l Layout) Sign(n Num) int {
	if n.IsZero() {
		return 0
	}
	if n.Neg {
		return -1
	}
	return 1
}
