package core

import (
	"errors"
	"math"
	"strconv"

	"github.com/avdva/fixedpoint/internal/mathutil"
	"github.com/avdva/fixedpoint/internal/strutil"
)

// Parse parses a decimal string.
// Fractional digits beyond the layout's digits are truncated.
// An integral part above the maximum is clamped to Max or Min.
func (l Layout) Parse(s string) (Num, error) {
	number, err := strutil.Parse(s)
	if err != nil {
		var pe *strutil.PosError
		if errors.As(err, &pe) {
			return Num{}, &ParseError{Input: s, Pos: pe.Pos, Msg: pe.Err}
		}
		return Num{}, &ParseError{Input: s, Msg: err.Error()}
	}
	integral, ok := strutil.ParseUintSaturated(number.Integral, l.MaxInt)
	if !ok {
		return l.saturate(number.Neg), nil
	}
	frac := strutil.ParseFraction(number.Fractional, l.Digits)
	return l.Normalize(Num{Neg: number.Neg, Int: integral, Frac: frac}), nil
}

// AppendFull appends n with exactly Digits fractional digits.
func (l Layout) AppendFull(dst []byte, n Num) []byte {
	return strutil.AppendDecimal(dst, n.Neg, n.Int, n.Frac, l.Digits, true)
}

// AppendOptimal appends n without the fractional section if it is zero,
// otherwise it is the same as AppendFull.
func (l Layout) AppendOptimal(dst []byte, n Num) []byte {
	return strutil.AppendDecimal(dst, n.Neg, n.Int, n.Frac, l.Digits, n.Frac != 0)
}

// Full returns n formatted by AppendFull.
func (l Layout) Full(n Num) string {
	var buf [48]byte
	return string(l.AppendFull(buf[:0], n))
}

// Optimal returns n formatted by AppendOptimal.
func (l Layout) Optimal(n Num) string {
	var buf [48]byte
	return string(l.AppendOptimal(buf[:0], n))
}

// FromFloat64 converts a float into a fixed-point value.
// The shortest decimal representation of f is truncated to the layout's digits.
// Infinities and values out of range are clamped; NaN returns ErrNaN.
func (l Layout) FromFloat64(f float64) (Num, error) {
	switch {
	case math.IsNaN(f):
		return Num{}, ErrNaN
	case f == 0:
		return Num{}, nil
	case math.Abs(f) >= float64(l.MaxInt)+1: // also catches infinities
		return l.saturate(f < 0), nil
	}
	var buf [64]byte
	return l.Parse(string(strconv.AppendFloat(buf[:0], f, 'f', -1, 64)))
}

// Float64 returns the nearest float to n.
func (l Layout) Float64(n Num) float64 {
	if n.Frac == 0 {
		f := float64(n.Int)
		if n.Neg {
			f = -f
		}
		return f
	}
	var buf [48]byte
	f, _ := strconv.ParseFloat(string(l.AppendFull(buf[:0], n)), 64)
	return f
}

// Int64 returns the integral part of n with its sign, clamped to the int64 range.
func (l Layout) Int64(n Num) int64 {
	if n.Neg {
		if n.Int >= mathutil.AbsInt64(math.MinInt64) {
			return math.MinInt64
		}
		return -int64(n.Int)
	}
	if n.Int > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n.Int)
}

// Rescale converts n into another layout.
// Extra fractional digits are truncated, the integral part is clamped to the target range.
func (l Layout) Rescale(n Num, to Layout) Num {
	if n.Int > to.MaxInt {
		return to.saturate(n.Neg)
	}
	frac, _ := mathutil.ScaleMant(n.Frac, -int32(l.Digits), -int32(to.Digits))
	return to.Normalize(Num{Neg: n.Neg, Int: n.Int, Frac: frac})
}
