// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"
	"math"

	"github.com/avdva/fixedpoint/internal/core"
	"github.com/avdva/fixedpoint/internal/mathutil"
)

// SmallDigits is the number of fractional digits of Small.
const SmallDigits = 4

var (
	smallLayout = core.NewLayout(SmallDigits, math.MaxUint16)
)

var (
	// SmallMax is the maximum Small value, 65535.9999.
	SmallMax = smallFrom(smallLayout.Max())
	// SmallMin is the minimum Small value, -65535.9999.
	SmallMin = smallFrom(smallLayout.Min())
	// SmallZero is 0.
	SmallZero = Small{}
	// SmallOne is 1.
	SmallOne = smallFrom(smallLayout.One())
	// SmallEpsilon is the smallest positive Small value.
	SmallEpsilon = smallFrom(smallLayout.Epsilon())
)

// Small is a fixed-point number with a 16-bit integral part and 4 fractional digits.
// Its range is [-65535.9999, 65535.9999].
// The zero value is 0.
type Small struct {
	sign       Sign
	integral   uint16
	fractional uint16
}

func smallFrom(n core.Num) Small {
	return Small{sign: signOf(n.Neg), integral: uint16(n.Int), fractional: uint16(n.Frac)}
}

func (v Small) num() core.Num {
	return core.Num{Neg: v.sign == Negative, Int: uint64(v.integral), Frac: uint64(v.fractional)}
}

// SmallFromInt64 returns a Small for given integer.
// Values out of range are clamped to SmallMax or SmallMin.
func SmallFromInt64(i int64) Small {
	return smallFrom(smallLayout.FromInt(i < 0, mathutil.AbsInt64(i)))
}

// SmallFromUint64 returns a Small for given integer.
// Values out of range are clamped to SmallMax.
func SmallFromUint64(u uint64) Small {
	return smallFrom(smallLayout.FromInt(false, u))
}

// SmallFromParts returns a Small for given sign, integral and fractional parts.
// fractional is counted in units of 10^-SmallDigits. A fractional part not less than 10^SmallDigits
// is carried into the integral part. Values out of range are clamped to SmallMax or SmallMin.
func SmallFromParts(sign Sign, integral, fractional uint64) Small {
	return smallFrom(smallLayout.FromParts(sign == Negative, integral, fractional))
}

// SmallFromFloat64 converts a float into a Small.
// The shortest decimal representation of f is truncated to SmallDigits fractional digits.
// Infinities and values out of range are clamped to SmallMax or SmallMin.
func SmallFromFloat64(f float64) (Small, error) {
	n, err := smallLayout.FromFloat64(f)
	if err != nil {
		return SmallZero, err
	}
	return smallFrom(n), nil
}

// ParseSmall parses a decimal string, like "-12.34".
// Extra fractional digits are truncated. Values out of range are clamped to SmallMax or SmallMin.
func ParseSmall(s string) (Small, error) {
	n, err := smallLayout.Parse(s)
	if err != nil {
		return SmallZero, err
	}
	return smallFrom(n), nil
}

// MustParseSmall parses a decimal string and panics on error.
func MustParseSmall(s string) Small {
	v, err := ParseSmall(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Small) Sign() int {
	return smallLayout.Sign(v.num())
}

// IsNegative returns true if v < 0.
func (v Small) IsNegative() bool {
	return v.sign == Negative
}

// IsZero returns true if v == 0.
func (v Small) IsZero() bool {
	return v.integral == 0 && v.fractional == 0
}

// Integral returns the magnitude of the integral part.
func (v Small) Integral() uint16 {
	return v.integral
}

// Fractional returns the magnitude of the fractional part in units of 10^-SmallDigits.
func (v Small) Fractional() uint16 {
	return v.fractional
}

// Abs returns |v|.
func (v Small) Abs() Small {
	return smallFrom(smallLayout.Abs(v.num()))
}

// Neg returns -v.
func (v Small) Neg() Small {
	return smallFrom(smallLayout.Neg(v.num()))
}

// Add returns v+other.
func (v Small) Add(other Small) Small {
	return smallFrom(smallLayout.Add(v.num(), other.num()))
}

// Sub returns v-other.
func (v Small) Sub(other Small) Small {
	return smallFrom(smallLayout.Sub(v.num(), other.num()))
}

// Mul returns v*other.
func (v Small) Mul(other Small) Small {
	return smallFrom(smallLayout.Mul(v.num(), other.num()))
}

// Div returns v/other.
// If other is zero, v and ErrDivideByZero are returned.
func (v Small) Div(other Small) (Small, error) {
	n, err := smallLayout.Quo(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return smallFrom(n), nil
}

// Mod returns the remainder of v/other. The result has the sign of v.
// If other is zero, v and ErrDivideByZero are returned.
func (v Small) Mod(other Small) (Small, error) {
	n, err := smallLayout.Rem(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return smallFrom(n), nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Small) Cmp(other Small) int {
	return smallLayout.Cmp(v.num(), other.num())
}

// Eq returns v == other.
func (v Small) Eq(other Small) bool {
	return v == other
}

// Less returns v < other.
func (v Small) Less(other Small) bool {
	return v.Cmp(other) < 0
}

// Greater returns v > other.
func (v Small) Greater(other Small) bool {
	return v.Cmp(other) > 0
}

// CmpInt64 compares v with an integer.
func (v Small) CmpInt64(i int64) int {
	return smallLayout.CmpInt(v.num(), i < 0, mathutil.AbsInt64(i))
}

// CmpFloat64 compares v with the shortest decimal representation of f.
// NaN is less than any value.
func (v Small) CmpFloat64(f float64) int {
	return smallLayout.CmpFloat64(v.num(), f)
}

// Clamp returns v limited to [min, max].
func (v Small) Clamp(min, max Small) Small {
	return smallFrom(smallLayout.Clamp(v.num(), min.num(), max.num()))
}

// Floor drops the fractional part.
func (v Small) Floor() Small {
	return smallFrom(smallLayout.Floor(v.num()))
}

// Ceiling drops the fractional part and, if it was not zero, increments the magnitude of the integral part.
// If the result does not fit, Max or Min is returned, which is not a whole number.
func (v Small) Ceiling() Small {
	return smallFrom(smallLayout.Ceiling(v.num()))
}

// Round rounds v to 'precision' fractional digits using given mode.
// If the result does not fit, Max or Min is returned, keeping all fractional digits.
func (v Small) Round(precision int, mode RoundingMode) Small {
	return smallFrom(smallLayout.Round(v.num(), precision, mode))
}

// RoundToNonZero rounds v to an integer. A nonzero value is never rounded to zero,
// it becomes 1 or -1 instead.
func (v Small) RoundToNonZero(mode RoundingMode) Small {
	return smallFrom(smallLayout.RoundToNonZero(v.num(), mode))
}

// Float64 returns the nearest float64 value.
func (v Small) Float64() float64 {
	return smallLayout.Float64(v.num())
}

// Int64 returns the integral part of v clamped to the int64 range.
func (v Small) Int64() int64 {
	return smallLayout.Int64(v.num())
}

// String returns v without the fractional part if it is zero, like "12",
// or with all SmallDigits fractional digits otherwise.
func (v Small) String() string {
	return smallLayout.Optimal(v.num())
}

// StringFull returns v with all SmallDigits fractional digits.
// It is the canonical form, ParseSmall(v.StringFull()) == v.
func (v Small) StringFull() string {
	return smallLayout.Full(v.num())
}

// GoString returns debug string representation.
func (v Small) GoString() string {
	return v.StringFull() + fmt.Sprintf(" {%v, %v, %v}", v.sign, v.integral, v.fractional)
}

// Format implements fmt.Formatter.
func (v Small) Format(fs fmt.State, c rune) {
	smallLayout.Format(fs, c, v.num())
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Small) MarshalJSON() ([]byte, error) {
	return toJSON(smallLayout, v.num(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a float into a value.
// null leaves v unchanged, as well as any error.
func (v *Small) UnmarshalJSON(data []byte) error {
	n, ok, err := smallLayout.ParseJSON(data)
	if ok {
		*v = smallFrom(n)
	}
	return err
}

// MarshalText implements encoding.TextMarshaler, it returns the full form.
func (v Small) MarshalText() ([]byte, error) {
	return smallLayout.AppendFull(nil, v.num()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is left unchanged on error.
func (v *Small) UnmarshalText(data []byte) error {
	n, err := smallLayout.Parse(string(data))
	if err != nil {
		return err
	}
	*v = smallFrom(n)
	return nil
}
