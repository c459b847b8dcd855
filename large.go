// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"
	"math"

	"github.com/avdva/fixedpoint/internal/core"
	"github.com/avdva/fixedpoint/internal/mathutil"
)

// LargeDigits is the number of fractional digits of Large.
const LargeDigits = 19

var (
	largeLayout = core.NewLayout(LargeDigits, math.MaxUint64)
)

var (
	// LargeMax is the maximum Large value, 18446744073709551615.9999999999999999999.
	LargeMax = largeFrom(largeLayout.Max())
	// LargeMin is the minimum Large value, -18446744073709551615.9999999999999999999.
	LargeMin = largeFrom(largeLayout.Min())
	// LargeZero is 0.
	LargeZero = Large{}
	// LargeOne is 1.
	LargeOne = largeFrom(largeLayout.One())
	// LargeEpsilon is the smallest positive Large value.
	LargeEpsilon = largeFrom(largeLayout.Epsilon())
)

// Large is a fixed-point number with a 64-bit integral part and 19 fractional digits.
// Its range is [-18446744073709551615.9999999999999999999, 18446744073709551615.9999999999999999999].
// Multiplication and division use 128-bit intermediates.
// The zero value is 0.
type Large struct {
	sign       Sign
	integral   uint64
	fractional uint64
}

func largeFrom(n core.Num) Large {
	return Large{sign: signOf(n.Neg), integral: n.Int, fractional: n.Frac}
}

func (v Large) num() core.Num {
	return core.Num{Neg: v.sign == Negative, Int: v.integral, Frac: v.fractional}
}

// LargeFromInt64 returns a Large for given integer.
// Values out of range are clamped to LargeMax or LargeMin.
func LargeFromInt64(i int64) Large {
	return largeFrom(largeLayout.FromInt(i < 0, mathutil.AbsInt64(i)))
}

// LargeFromUint64 returns a Large for given integer.
// Values out of range are clamped to LargeMax.
func LargeFromUint64(u uint64) Large {
	return largeFrom(largeLayout.FromInt(false, u))
}

// LargeFromParts returns a Large for given sign, integral and fractional parts.
// fractional is counted in units of 10^-LargeDigits. A fractional part not less than 10^LargeDigits
// is carried into the integral part. Values out of range are clamped to LargeMax or LargeMin.
func LargeFromParts(sign Sign, integral, fractional uint64) Large {
	return largeFrom(largeLayout.FromParts(sign == Negative, integral, fractional))
}

// LargeFromFloat64 converts a float into a Large.
// The shortest decimal representation of f is truncated to LargeDigits fractional digits.
// Infinities and values out of range are clamped to LargeMax or LargeMin.
func LargeFromFloat64(f float64) (Large, error) {
	n, err := largeLayout.FromFloat64(f)
	if err != nil {
		return LargeZero, err
	}
	return largeFrom(n), nil
}

// ParseLarge parses a decimal string, like "-12.34".
// Extra fractional digits are truncated. Values out of range are clamped to LargeMax or LargeMin.
func ParseLarge(s string) (Large, error) {
	n, err := largeLayout.Parse(s)
	if err != nil {
		return LargeZero, err
	}
	return largeFrom(n), nil
}

// MustParseLarge parses a decimal string and panics on error.
func MustParseLarge(s string) Large {
	v, err := ParseLarge(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Large) Sign() int {
	return largeLayout.Sign(v.num())
}

// IsNegative returns true if v < 0.
func (v Large) IsNegative() bool {
	return v.sign == Negative
}

// IsZero returns true if v == 0.
func (v Large) IsZero() bool {
	return v.integral == 0 && v.fractional == 0
}

// Integral returns the magnitude of the integral part.
func (v Large) Integral() uint64 {
	return v.integral
}

// Fractional returns the magnitude of the fractional part in units of 10^-LargeDigits.
func (v Large) Fractional() uint64 {
	return v.fractional
}

// Abs returns |v|.
func (v Large) Abs() Large {
	return largeFrom(largeLayout.Abs(v.num()))
}

// Neg returns -v.
func (v Large) Neg() Large {
	return largeFrom(largeLayout.Neg(v.num()))
}

// Add returns v+other.
func (v Large) Add(other Large) Large {
	return largeFrom(largeLayout.Add(v.num(), other.num()))
}

// Sub returns v-other.
func (v Large) Sub(other Large) Large {
	return largeFrom(largeLayout.Sub(v.num(), other.num()))
}

// Mul returns v*other.
func (v Large) Mul(other Large) Large {
	return largeFrom(largeLayout.Mul(v.num(), other.num()))
}

// Div returns v/other.
// If other is zero, v and ErrDivideByZero are returned.
func (v Large) Div(other Large) (Large, error) {
	n, err := largeLayout.Quo(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return largeFrom(n), nil
}

// Mod returns the remainder of v/other. The result has the sign of v.
// If other is zero, v and ErrDivideByZero are returned.
func (v Large) Mod(other Large) (Large, error) {
	n, err := largeLayout.Rem(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return largeFrom(n), nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Large) Cmp(other Large) int {
	return largeLayout.Cmp(v.num(), other.num())
}

// Eq returns v == other.
func (v Large) Eq(other Large) bool {
	return v == other
}

// Less returns v < other.
func (v Large) Less(other Large) bool {
	return v.Cmp(other) < 0
}

// Greater returns v > other.
func (v Large) Greater(other Large) bool {
	return v.Cmp(other) > 0
}

// CmpInt64 compares v with an integer.
func (v Large) CmpInt64(i int64) int {
	return largeLayout.CmpInt(v.num(), i < 0, mathutil.AbsInt64(i))
}

// CmpFloat64 compares v with the shortest decimal representation of f.
// NaN is less than any value.
func (v Large) CmpFloat64(f float64) int {
	return largeLayout.CmpFloat64(v.num(), f)
}

// Clamp returns v limited to [min, max].
func (v Large) Clamp(min, max Large) Large {
	return largeFrom(largeLayout.Clamp(v.num(), min.num(), max.num()))
}

// Floor drops the fractional part.
func (v Large) Floor() Large {
	return largeFrom(largeLayout.Floor(v.num()))
}

// Ceiling drops the fractional part and, if it was not zero, increments the magnitude of the integral part.
// If the result does not fit, Max or Min is returned, which is not a whole number.
func (v Large) Ceiling() Large {
	return largeFrom(largeLayout.Ceiling(v.num()))
}

// Round rounds v to 'precision' fractional digits using given mode.
// If the result does not fit, Max or Min is returned, keeping all fractional digits.
func (v Large) Round(precision int, mode RoundingMode) Large {
	return largeFrom(largeLayout.Round(v.num(), precision, mode))
}

// RoundToNonZero rounds v to an integer. A nonzero value is never rounded to zero,
// it becomes 1 or -1 instead.
func (v Large) RoundToNonZero(mode RoundingMode) Large {
	return largeFrom(largeLayout.RoundToNonZero(v.num(), mode))
}

// Float64 returns the nearest float64 value.
func (v Large) Float64() float64 {
	return largeLayout.Float64(v.num())
}

// Int64 returns the integral part of v clamped to the int64 range.
func (v Large) Int64() int64 {
	return largeLayout.Int64(v.num())
}

// String returns v without the fractional part if it is zero, like "12",
// or with all LargeDigits fractional digits otherwise.
func (v Large) String() string {
	return largeLayout.Optimal(v.num())
}

// StringFull returns v with all LargeDigits fractional digits.
// It is the canonical form, ParseLarge(v.StringFull()) == v.
func (v Large) StringFull() string {
	return largeLayout.Full(v.num())
}

// GoString returns debug string representation.
func (v Large) GoString() string {
	return v.StringFull() + fmt.Sprintf(" {%v, %v, %v}", v.sign, v.integral, v.fractional)
}

// Format implements fmt.Formatter.
func (v Large) Format(fs fmt.State, c rune) {
	largeLayout.Format(fs, c, v.num())
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Large) MarshalJSON() ([]byte, error) {
	return toJSON(largeLayout, v.num(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a float into a value.
// null leaves v unchanged, as well as any error.
func (v *Large) UnmarshalJSON(data []byte) error {
	n, ok, err := largeLayout.ParseJSON(data)
	if ok {
		*v = largeFrom(n)
	}
	return err
}

// MarshalText implements encoding.TextMarshaler, it returns the full form.
func (v Large) MarshalText() ([]byte, error) {
	return largeLayout.AppendFull(nil, v.num()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is left unchanged on error.
func (v *Large) UnmarshalText(data []byte) error {
	n, err := largeLayout.Parse(string(data))
	if err != nil {
		return err
	}
	*v = largeFrom(n)
	return nil
}
