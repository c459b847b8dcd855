package core

import (
	"math"
	"strconv"

	"github.com/avdva/fixedpoint/internal/mathutil"
	"github.com/avdva/fixedpoint/internal/strutil"
)

// Cmp compares two values.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func (l Layout) Cmp(a, b Num) int {
	if a.Neg != b.Neg {
		if a.IsZero() && b.IsZero() {
			return 0
		}
		if a.Neg {
			return -1
		}
		return 1
	}
	c := cmpMagnitudes(a, b)
	if a.Neg { // a larger magnitude is a smaller negative value
		return -c
	}
	return c
}

// CmpInt compares a with a whole number given by its sign and magnitude.
// The magnitude is not limited by the layout's range.
func (l Layout) CmpInt(a Num, neg bool, magnitude uint64) int {
	return l.Cmp(a, Num{Neg: neg && magnitude != 0, Int: magnitude})
}

// CmpFloat64 compares n with the shortest decimal representation of f.
// NaN is less than any value.
func (l Layout) CmpFloat64(n Num, f float64) int {
	switch {
	case math.IsNaN(f):
		return 1
	case f == math.Trunc(f) && math.Abs(f) < 1<<63: // also catches zero
		i := int64(f)
		return l.CmpInt(n, i < 0, mathutil.AbsInt64(i))
	case math.Abs(f) >= float64(l.MaxInt)+1: // also catches infinities
		if f > 0 {
			return -1
		}
		return 1
	}
	var buf [64]byte
	number, err := strutil.Parse(string(strconv.AppendFloat(buf[:0], f, 'f', -1, 64)))
	if err != nil {
		return 0
	}
	integral, _ := strutil.ParseUintSaturated(number.Integral, l.MaxInt)
	truncated := l.Normalize(Num{
		Neg:  number.Neg,
		Int:  integral,
		Frac: strutil.ParseFraction(number.Fractional, l.Digits),
	})
	if c := l.Cmp(n, truncated); c != 0 {
		return c
	}
	// n equals f truncated to the layout's digits.
	if strutil.HasNonZeroBeyond(number.Fractional, l.Digits) {
		if number.Neg {
			return 1
		}
		return -1
	}
	return 0
}

// Clamp returns n limited to [min, max].
func (l Layout) Clamp(n, min, max Num) Num {
	if l.Cmp(n, min) < 0 {
		return min
	}
	if l.Cmp(n, max) > 0 {
		return max
	}
	return n
}

// cmpMagnitudes compares |a| and |b|.
// As the fractional part never reaches the scale, it is the same as comparing
// int*scale+frac compositions.
func cmpMagnitudes(a, b Num) int {
	switch {
	case a.Int > b.Int:
		return 1
	case a.Int < b.Int:
		return -1
	case a.Frac > b.Frac:
		return 1
	case a.Frac < b.Frac:
		return -1
	default:
		return 0
	}
}
