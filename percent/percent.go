// Package percent implements a percentage value: a decimal fixed-point number
// stored in a single int64 scaled by 10^18.
package percent

import (
	"fmt"

	"github.com/avdva/fixedpoint"
	"github.com/avdva/fixedpoint/internal/core"
	mu "github.com/avdva/fixedpoint/internal/mathutil"
	num "github.com/shabbyrobe/go-num"
)

const (
	// Digits is the number of fractional digits.
	Digits = 18

	scale = 1000000000000000000

	maxNumber   = 8999999999999999999
	maxIntegral = maxNumber / scale
)

const (
	// Zero is 0.
	Zero = Value(0)
	// One is 1, or 100%.
	One = Value(scale)
	// Max is the maximum value, 8.999999999999999999.
	Max = Value(maxNumber)
	// Min is the minimum value, -8.999999999999999999.
	Min = -Max
	// Epsilon is the smallest positive value.
	Epsilon = Value(1)
)

var (
	layout = core.NewLayout(Digits, maxIntegral)

	scale128 = num.I128From64(scale)
	max128   = num.I128From64(maxNumber)
	min128   = num.I128From64(-maxNumber)
)

// Value is a percentage, where 1 means 100%.
// Its range is [Min, Max], every operation saturates at the bounds.
type Value int64

func (v Value) parts() core.Num {
	abs := mu.AbsInt64(int64(v))
	return core.Num{Neg: v < 0, Int: abs / scale, Frac: abs % scale}
}

func fromNum(n core.Num) Value {
	raw := int64(n.Int*scale + n.Frac)
	if n.Neg {
		raw = -raw
	}
	return Value(raw)
}

func clamp128(i num.I128) Value {
	switch {
	case i.Cmp(max128) > 0:
		return Max
	case i.Cmp(min128) < 0:
		return Min
	default:
		return Value(i.AsInt64())
	}
}

// FromRaw returns a value for its int64 representation, clamped to [Min, Max].
func FromRaw(raw int64) Value {
	switch {
	case raw > maxNumber:
		return Max
	case raw < -maxNumber:
		return Min
	default:
		return Value(raw)
	}
}

// FromInt64 returns a value for given integer clamped to [Min, Max].
func FromInt64(i int64) Value {
	switch {
	case i > maxIntegral:
		return Max
	case i < -maxIntegral:
		return Min
	default:
		return Value(i * scale)
	}
}

// FromFloat64 converts a float into a value.
// The shortest decimal representation of f is truncated to 18 fractional digits.
// Infinities and values out of range are clamped.
func FromFloat64(f float64) (Value, error) {
	n, err := layout.FromFloat64(f)
	if err != nil {
		return Zero, err
	}
	return fromNum(n), nil
}

// FromString parses a decimal string, like "0.15".
// Extra fractional digits are truncated, values out of range are clamped.
func FromString(s string) (Value, error) {
	n, err := layout.Parse(s)
	if err != nil {
		return Zero, err
	}
	return fromNum(n), nil
}

// MustFromString parses a decimal string and panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromLarge converts a Large value. The 19th fractional digit is truncated,
// values out of range are clamped.
func FromLarge(l fixedpoint.Large) Value {
	if l.Integral() > maxIntegral {
		if l.IsNegative() {
			return Min
		}
		return Max
	}
	return fromNum(layout.Normalize(core.Num{Neg: l.IsNegative(), Int: l.Integral(), Frac: l.Fractional() / 10}))
}

// Large converts v into a Large value.
func (v Value) Large() fixedpoint.Large {
	n := v.parts()
	sign := fixedpoint.Positive
	if n.Neg {
		sign = fixedpoint.Negative
	}
	return fixedpoint.LargeFromParts(sign, n.Int, n.Frac*10)
}

// Raw returns the int64 representation of v, that is v*10^18.
func (v Value) Raw() int64 {
	return int64(v)
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value) Sign() int {
	return mu.Int64Sign(int64(v))
}

// Abs returns |v|.
func (v Value) Abs() Value {
	return Value(mu.AbsInt64(int64(v)))
}

// Neg returns -v.
func (v Value) Neg() Value {
	return -v
}

// Add returns v+other.
func (v Value) Add(other Value) Value {
	switch {
	case other > 0 && v > Max-other:
		return Max
	case other < 0 && v < Min-other:
		return Min
	}
	return v + other
}

// Sub returns v-other.
func (v Value) Sub(other Value) Value {
	return v.Add(-other)
}

// Mul returns v*other truncated to 18 fractional digits.
func (v Value) Mul(other Value) Value {
	return clamp128(num.I128From64(int64(v)).Mul(num.I128From64(int64(other))).Quo(scale128))
}

// Div returns v/other truncated to 18 fractional digits.
// If other is zero, v and ErrDivideByZero are returned.
func (v Value) Div(other Value) (Value, error) {
	if other == 0 {
		return v, fixedpoint.ErrDivideByZero
	}
	return clamp128(num.I128From64(int64(v)).Mul(scale128).Quo(num.I128From64(int64(other)))), nil
}

// Mod returns the remainder of v/other. The result has the sign of v.
// If other is zero, v and ErrDivideByZero are returned.
func (v Value) Mod(other Value) (Value, error) {
	if other == 0 {
		return v, fixedpoint.ErrDivideByZero
	}
	return v % other, nil
}

// Cmp compares two values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Value) Cmp(other Value) int {
	if v == other {
		return 0
	}
	if v > other {
		return 1
	}
	return -1
}

// Eq returns v == other.
func (v Value) Eq(other Value) bool {
	return v == other
}

// Less returns v < other.
func (v Value) Less(other Value) bool {
	return v < other
}

// Greater returns v > other.
func (v Value) Greater(other Value) bool {
	return v > other
}

// CmpInt64 compares v with an integer.
func (v Value) CmpInt64(i int64) int {
	switch {
	case i > maxIntegral:
		return -1
	case i < -maxIntegral:
		return 1
	}
	return v.Cmp(Value(i * scale))
}

// CmpFloat64 compares v with the shortest decimal representation of f.
// NaN is less than any value.
func (v Value) CmpFloat64(f float64) int {
	return layout.CmpFloat64(v.parts(), f)
}

// Clamp returns v limited to [min, max].
func (v Value) Clamp(min, max Value) Value {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Floor drops the fractional part.
func (v Value) Floor() Value {
	return v - v%scale
}

// Ceiling drops the fractional part and, if it was not zero, increments the magnitude of the integral part.
// If the result does not fit, Max or Min is returned, which is not a whole number.
func (v Value) Ceiling() Value {
	return fromNum(layout.Ceiling(v.parts()))
}

// Round rounds v to 'precision' fractional digits using given mode.
// If the result does not fit, Max or Min is returned, keeping all fractional digits.
func (v Value) Round(precision int, mode fixedpoint.RoundingMode) Value {
	return fromNum(layout.Round(v.parts(), precision, mode))
}

// Float64 returns the nearest float64 value.
func (v Value) Float64() float64 {
	return layout.Float64(v.parts())
}

// Int64 returns the integral part of v.
func (v Value) Int64() int64 {
	return int64(v) / scale
}

// String returns v without the fractional part if it is zero, or with all 18 fractional digits otherwise.
func (v Value) String() string {
	return layout.Optimal(v.parts())
}

// StringFull returns v with all 18 fractional digits.
func (v Value) StringFull() string {
	return layout.Full(v.parts())
}

// Format implements fmt.Formatter.
func (v Value) Format(fs fmt.State, c rune) {
	layout.Format(fs, c, v.parts())
}

// MarshalJSON marshals value according to fixedpoint.JSONMode.
func (v Value) MarshalJSON() ([]byte, error) {
	return layout.AppendJSON(nil, v.parts(), fixedpoint.JSONMode), nil
}

// UnmarshalJSON unmarshals a string or a float into a value.
// null leaves v unchanged, as well as any error.
func (v *Value) UnmarshalJSON(data []byte) error {
	n, ok, err := layout.ParseJSON(data)
	if ok {
		*v = fromNum(n)
	}
	return err
}

// MarshalText implements encoding.TextMarshaler, it returns the full form.
func (v Value) MarshalText() ([]byte, error) {
	return layout.AppendFull(nil, v.parts()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// v is left unchanged on error.
func (v *Value) UnmarshalText(data []byte) error {
	n, err := layout.Parse(string(data))
	if err != nil {
		return err
	}
	*v = fromNum(n)
	return nil
}
