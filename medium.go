// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"
	"math"

	"github.com/avdva/fixedpoint/internal/core"
	"github.com/avdva/fixedpoint/internal/mathutil"
)

// MediumDigits is the number of fractional digits of Medium.
const MediumDigits = 9

var (
	mediumLayout = core.NewLayout(MediumDigits, math.MaxUint32)
)

var (
	// MediumMax is the maximum Medium value, 4294967295.999999999.
	MediumMax = mediumFrom(mediumLayout.Max())
	// MediumMin is the minimum Medium value, -4294967295.999999999.
	MediumMin = mediumFrom(mediumLayout.Min())
	// MediumZero is 0.
	MediumZero = Medium{}
	// MediumOne is 1.
	MediumOne = mediumFrom(mediumLayout.One())
	// MediumEpsilon is the smallest positive Medium value.
	MediumEpsilon = mediumFrom(mediumLayout.Epsilon())
)

// Medium is a fixed-point number with a 32-bit integral part and 9 fractional digits.
// Its range is [-4294967295.999999999, 4294967295.999999999].
// The zero value is 0.
type Medium struct {
	sign       Sign
	integral   uint32
	fractional uint32
}

func mediumFrom(n core.Num) Medium {
	return Medium{sign: signOf(n.Neg), integral: uint32(n.Int), fractional: uint32(n.Frac)}
}

func (v Medium) num() core.Num {
	return core.Num{Neg: v.sign == Negative, Int: uint64(v.integral), Frac: uint64(v.fractional)}
}

// MediumFromInt64 returns a Medium for given integer.
// Values out of range are clamped to MediumMax or MediumMin.
func MediumFromInt64(i int64) Medium {
	return mediumFrom(mediumLayout.FromInt(i < 0, mathutil.AbsInt64(i)))
}

// MediumFromUint64 returns a Medium for given integer.
// Values out of range are clamped to MediumMax.
func MediumFromUint64(u uint64) Medium {
	return mediumFrom(mediumLayout.FromInt(false, u))
}

// MediumFromParts returns a Medium for given sign, integral and fractional parts.
// fractional is counted in units of 10^-MediumDigits. A fractional part not less than 10^MediumDigits
// is carried into the integral part. Values out of range are clamped to MediumMax or MediumMin.
func MediumFromParts(sign Sign, integral, fractional uint64) Medium {
	return mediumFrom(mediumLayout.FromParts(sign == Negative, integral, fractional))
}

// MediumFromFloat64 converts a float into a Medium.
// The shortest decimal representation of f is truncated to MediumDigits fractional digits.
// Infinities and values out of range are clamped to MediumMax or MediumMin.
func MediumFromFloat64(f float64) (Medium, error) {
	n, err := mediumLayout.FromFloat64(f)
	if err != nil {
		return MediumZero, err
	}
	return mediumFrom(n), nil
}

// ParseMedium parses a decimal string, like "-12.34".
// Extra fractional digits are truncated. Values out of range are clamped to MediumMax or MediumMin.
func ParseMedium(s string) (Medium, error) {
	n, err := mediumLayout.Parse(s)
	if err != nil {
		return MediumZero, err
	}
	return mediumFrom(n), nil
}

// MustParseMedium parses a decimal string and panics on error.
func MustParseMedium(s string) Medium {
	v, err := ParseMedium(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Medium) Sign() int {
	return mediumLayout.Sign(v.num())
}

// IsNegative returns true if v < 0.
func (v Medium) IsNegative() bool {
	return v.sign == Negative
}

// IsZero returns true if v == 0.
func (v Medium) IsZero() bool {
	return v.integral == 0 && v.fractional == 0
}

// Integral returns the magnitude of the integral part.
func (v Medium) Integral() uint32 {
	return v.integral
}

// Fractional returns the magnitude of the fractional part in units of 10^-MediumDigits.
func (v Medium) Fractional() uint32 {
	return v.fractional
}

// Abs returns |v|.
func (v Medium) Abs() Medium {
	return mediumFrom(mediumLayout.Abs(v.num()))
}

// Neg returns -v.
func (v Medium) Neg() Medium {
	return mediumFrom(mediumLayout.Neg(v.num()))
}

// Add returns v+other.
func (v Medium) Add(other Medium) Medium {
	return mediumFrom(mediumLayout.Add(v.num(), other.num()))
}

// Sub returns v-other.
func (v Medium) Sub(other Medium) Medium {
	return mediumFrom(mediumLayout.Sub(v.num(), other.num()))
}

// Mul returns v*other.
func (v Medium) Mul(other Medium) Medium {
	return mediumFrom(mediumLayout.Mul(v.num(), other.num()))
}

// Div returns v/other.
// If other is zero, v and ErrDivideByZero are returned.
func (v Medium) Div(other Medium) (Medium, error) {
	n, err := mediumLayout.Quo(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return mediumFrom(n), nil
}

// Mod returns the remainder of v/other. The result has the sign of v.
// If other is zero, v and ErrDivideByZero are returned.
func (v Medium) Mod(other Medium) (Medium, error) {
	n, err := mediumLayout.Rem(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return mediumFrom(n), nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Medium) Cmp(other Medium) int {
	return mediumLayout.Cmp(v.num(), other.num())
}

// Eq returns v == other.
func (v Medium) Eq(other Medium) bool {
	return v == other
}

// Less returns v < other.
func (v Medium) Less(other Medium) bool {
	return v.Cmp(other) < 0
}

// Greater returns v > other.
func (v Medium) Greater(other Medium) bool {
	return v.Cmp(other) > 0
}

// CmpInt64 compares v with an integer.
func (v Medium) CmpInt64(i int64) int {
	return mediumLayout.CmpInt(v.num(), i < 0, mathutil.AbsInt64(i))
}

// CmpFloat64 compares v with the shortest decimal representation of f.
// NaN is less than any value.
func (v Medium) CmpFloat64(f float64) int {
	return mediumLayout.CmpFloat64(v.num(), f)
}

// Clamp returns v limited to [min, max].
func (v Medium) Clamp(min, max Medium) Medium {
	return mediumFrom(mediumLayout.Clamp(v.num(), min.num(), max.num()))
}

// Floor drops the fractional part.
func (v Medium) Floor() Medium {
	return mediumFrom(mediumLayout.Floor(v.num()))
}

// Ceiling drops the fractional part and, if it was not zero, increments the magnitude of the integral part.
// If the result does not fit, Max or Min is returned, which is not a whole number.
func (v Medium) Ceiling() Medium {
	return mediumFrom(mediumLayout.Ceiling(v.num()))
}

// Round rounds v to 'precision' fractional digits using given mode.
// If the result does not fit, Max or Min is returned, keeping all fractional digits.
func (v Medium) Round(precision int, mode RoundingMode) Medium {
	return mediumFrom(mediumLayout.Round(v.num(), precision, mode))
}

// RoundToNonZero rounds v to an integer. A nonzero value is never rounded to zero,
// it becomes 1 or -1 instead.
func (v Medium) RoundToNonZero(mode RoundingMode) Medium {
	return mediumFrom(mediumLayout.RoundToNonZero(v.num(), mode))
}

// Float64 returns the nearest float64 value.
func (v Medium) Float64() float64 {
	return mediumLayout.Float64(v.num())
}

// Int64 returns the integral part of v clamped to the int64 range.
func (v Medium) Int64() int64 {
	return mediumLayout.Int64(v.num())
}

// String returns v without the fractional part if it is zero, like "12",
// or with all MediumDigits fractional digits otherwise.
func (v Medium) String() string {
	return mediumLayout.Optimal(v.num())
}

// StringFull returns v with all MediumDigits fractional digits.
// It is the canonical form, ParseMedium(v.StringFull()) == v.
func (v Medium) StringFull() string {
	return mediumLayout.Full(v.num())
}

// GoString returns debug string representation.
func (v Medium) GoString() string {
	return v.StringFull() + fmt.Sprintf(" {%v, %v, %v}", v.sign, v.integral, v.fractional)
}

// Format implements fmt.Formatter.
func (v Medium) Format(fs fmt.State, c rune) {
	mediumLayout.Format(fs, c, v.num())
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Medium) MarshalJSON() ([]byte, error) {
	return toJSON(mediumLayout, v.num(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a float into a value.
// null leaves v unchanged, as well as any error.
func (v *Medium) UnmarshalJSON(data []byte) error {
	n, ok, err := mediumLayout.ParseJSON(data)
	if ok {
		*v = mediumFrom(n)
	}
	return err
}

// MarshalText implements encoding.TextMarshaler, it returns the full form.
func (v Medium) MarshalText() ([]byte, error) {
	return mediumLayout.AppendFull(nil, v.num()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is left unchanged on error.
func (v *Medium) UnmarshalText(data []byte) error {
	n, err := mediumLayout.Parse(string(data))
	if err != nil {
		return err
	}
	*v = mediumFrom(n)
	return nil
}
