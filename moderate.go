// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"fmt"
	"math"

	"github.com/avdva/fixedpoint/internal/core"
	"github.com/avdva/fixedpoint/internal/mathutil"
)

// ModerateDigits is the number of fractional digits of Moderate.
const ModerateDigits = 19

var (
	moderateLayout = core.NewLayout(ModerateDigits, math.MaxUint32)
)

var (
	// ModerateMax is the maximum Moderate value, 4294967295.9999999999999999999.
	ModerateMax = moderateFrom(moderateLayout.Max())
	// ModerateMin is the minimum Moderate value, -4294967295.9999999999999999999.
	ModerateMin = moderateFrom(moderateLayout.Min())
	// ModerateZero is 0.
	ModerateZero = Moderate{}
	// ModerateOne is 1.
	ModerateOne = moderateFrom(moderateLayout.One())
	// ModerateEpsilon is the smallest positive Moderate value.
	ModerateEpsilon = moderateFrom(moderateLayout.Epsilon())
)

// Moderate is a fixed-point number with a 32-bit integral part and 19 fractional digits.
// It has the precision of Large with the range of Medium.
// The zero value is 0.
type Moderate struct {
	sign       Sign
	integral   uint32
	fractional uint64
}

func moderateFrom(n core.Num) Moderate {
	return Moderate{sign: signOf(n.Neg), integral: uint32(n.Int), fractional: n.Frac}
}

func (v Moderate) num() core.Num {
	return core.Num{Neg: v.sign == Negative, Int: uint64(v.integral), Frac: v.fractional}
}

// ModerateFromInt64 returns a Moderate for given integer.
// Values out of range are clamped to ModerateMax or ModerateMin.
func ModerateFromInt64(i int64) Moderate {
	return moderateFrom(moderateLayout.FromInt(i < 0, mathutil.AbsInt64(i)))
}

// ModerateFromUint64 returns a Moderate for given integer.
// Values out of range are clamped to ModerateMax.
func ModerateFromUint64(u uint64) Moderate {
	return moderateFrom(moderateLayout.FromInt(false, u))
}

// ModerateFromParts returns a Moderate for given sign, integral and fractional parts.
// fractional is counted in units of 10^-ModerateDigits. A fractional part not less than 10^ModerateDigits
// is carried into the integral part. Values out of range are clamped to ModerateMax or ModerateMin.
func ModerateFromParts(sign Sign, integral, fractional uint64) Moderate {
	return moderateFrom(moderateLayout.FromParts(sign == Negative, integral, fractional))
}

// ModerateFromFloat64 converts a float into a Moderate.
// The shortest decimal representation of f is truncated to ModerateDigits fractional digits.
// Infinities and values out of range are clamped to ModerateMax or ModerateMin.
func ModerateFromFloat64(f float64) (Moderate, error) {
	n, err := moderateLayout.FromFloat64(f)
	if err != nil {
		return ModerateZero, err
	}
	return moderateFrom(n), nil
}

// ParseModerate parses a decimal string, like "-12.34".
// Extra fractional digits are truncated. Values out of range are clamped to ModerateMax or ModerateMin.
func ParseModerate(s string) (Moderate, error) {
	n, err := moderateLayout.Parse(s)
	if err != nil {
		return ModerateZero, err
	}
	return moderateFrom(n), nil
}

// MustParseModerate parses a decimal string and panics on error.
func MustParseModerate(s string) Moderate {
	v, err := ParseModerate(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Moderate) Sign() int {
	return moderateLayout.Sign(v.num())
}

// IsNegative returns true if v < 0.
func (v Moderate) IsNegative() bool {
	return v.sign == Negative
}

// IsZero returns true if v == 0.
func (v Moderate) IsZero() bool {
	return v.integral == 0 && v.fractional == 0
}

// Integral returns the magnitude of the integral part.
func (v Moderate) Integral() uint32 {
	return v.integral
}

// Fractional returns the magnitude of the fractional part in units of 10^-ModerateDigits.
func (v Moderate) Fractional() uint64 {
	return v.fractional
}

// Abs returns |v|.
func (v Moderate) Abs() Moderate {
	return moderateFrom(moderateLayout.Abs(v.num()))
}

// Neg returns -v.
func (v Moderate) Neg() Moderate {
	return moderateFrom(moderateLayout.Neg(v.num()))
}

// Add returns v+other.
func (v Moderate) Add(other Moderate) Moderate {
	return moderateFrom(moderateLayout.Add(v.num(), other.num()))
}

// Sub returns v-other.
func (v Moderate) Sub(other Moderate) Moderate {
	return moderateFrom(moderateLayout.Sub(v.num(), other.num()))
}

// Mul returns v*other.
func (v Moderate) Mul(other Moderate) Moderate {
	return moderateFrom(moderateLayout.Mul(v.num(), other.num()))
}

// Div returns v/other.
// If other is zero, v and ErrDivideByZero are returned.
func (v Moderate) Div(other Moderate) (Moderate, error) {
	n, err := moderateLayout.Quo(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return moderateFrom(n), nil
}

// Mod returns the remainder of v/other. The result has the sign of v.
// If other is zero, v and ErrDivideByZero are returned.
func (v Moderate) Mod(other Moderate) (Moderate, error) {
	n, err := moderateLayout.Rem(v.num(), other.num())
	if err != nil {
		return v, err
	}
	return moderateFrom(n), nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Moderate) Cmp(other Moderate) int {
	return moderateLayout.Cmp(v.num(), other.num())
}

// Eq returns v == other.
func (v Moderate) Eq(other Moderate) bool {
	return v == other
}

// Less returns v < other.
func (v Moderate) Less(other Moderate) bool {
	return v.Cmp(other) < 0
}

// Greater returns v > other.
func (v Moderate) Greater(other Moderate) bool {
	return v.Cmp(other) > 0
}

// CmpInt64 compares v with an integer.
func (v Moderate) CmpInt64(i int64) int {
	return moderateLayout.CmpInt(v.num(), i < 0, mathutil.AbsInt64(i))
}

// CmpFloat64 compares v with the shortest decimal representation of f.
// NaN is less than any value.
func (v Moderate) CmpFloat64(f float64) int {
	return moderateLayout.CmpFloat64(v.num(), f)
}

// Clamp returns v limited to [min, max].
func (v Moderate) Clamp(min, max Moderate) Moderate {
	return moderateFrom(moderateLayout.Clamp(v.num(), min.num(), max.num()))
}

// Floor drops the fractional part.
func (v Moderate) Floor() Moderate {
	return moderateFrom(moderateLayout.Floor(v.num()))
}

// Ceiling drops the fractional part and, if it was not zero, increments the magnitude of the integral part.
// If the result does not fit, Max or Min is returned, which is not a whole number.
func (v Moderate) Ceiling() Moderate {
	return moderateFrom(moderateLayout.Ceiling(v.num()))
}

// Round rounds v to 'precision' fractional digits using given mode.
// If the result does not fit, Max or Min is returned, keeping all fractional digits.
func (v Moderate) Round(precision int, mode RoundingMode) Moderate {
	return moderateFrom(moderateLayout.Round(v.num(), precision, mode))
}

// RoundToNonZero rounds v to an integer. A nonzero value is never rounded to zero,
// it becomes 1 or -1 instead.
func (v Moderate) RoundToNonZero(mode RoundingMode) Moderate {
	return moderateFrom(moderateLayout.RoundToNonZero(v.num(), mode))
}

// Float64 returns the nearest float64 value.
func (v Moderate) Float64() float64 {
	return moderateLayout.Float64(v.num())
}

// Int64 returns the integral part of v clamped to the int64 range.
func (v Moderate) Int64() int64 {
	return moderateLayout.Int64(v.num())
}

// String returns v without the fractional part if it is zero, like "12",
// or with all ModerateDigits fractional digits otherwise.
func (v Moderate) String() string {
	return moderateLayout.Optimal(v.num())
}

// StringFull returns v with all ModerateDigits fractional digits.
// It is the canonical form, ParseModerate(v.StringFull()) == v.
func (v Moderate) StringFull() string {
	return moderateLayout.Full(v.num())
}

// GoString returns debug string representation.
func (v Moderate) GoString() string {
	return v.StringFull() + fmt.Sprintf(" {%v, %v, %v}", v.sign, v.integral, v.fractional)
}

// Format implements fmt.Formatter.
func (v Moderate) Format(fs fmt.State, c rune) {
	moderateLayout.Format(fs, c, v.num())
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Moderate) MarshalJSON() ([]byte, error) {
	return toJSON(moderateLayout, v.num(), JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a float into a value.
// null leaves v unchanged, as well as any error.
func (v *Moderate) UnmarshalJSON(data []byte) error {
	n, ok, err := moderateLayout.ParseJSON(data)
	if ok {
		*v = moderateFrom(n)
	}
	return err
}

// MarshalText implements encoding.TextMarshaler, it returns the full form.
func (v Moderate) MarshalText() ([]byte, error) {
	return moderateLayout.AppendFull(nil, v.num()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is left unchanged on error.
func (v *Moderate) UnmarshalText(data []byte) error {
	n, err := moderateLayout.Parse(string(data))
	if err != nil {
		return err
	}
	*v = moderateFrom(n)
	return nil
}
