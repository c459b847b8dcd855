// Package interop converts fixed-point values to and from the decimal types
// of other libraries: shopspring/decimal, robaho/fixed, govalues/decimal and inf.Dec.
//
// Conversions use the canonical full string form, so they are exact as long as the target type
// has enough precision. Conversions into fixed-point types truncate extra fractional digits
// and clamp values out of range, like the Parse* functions do.
package interop

import (
	"encoding"

	gv "github.com/govalues/decimal"
	rf "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
	inf "gopkg.in/inf.v0"
)

// Error is the class of conversion errors.
var Error = errs.Class("interop")

// Value is implemented by every fixed-point type, including percent.Value.
type Value interface {
	StringFull() string
}

// Target is a pointer to a fixed-point type.
type Target[T any] interface {
	*T
	encoding.TextUnmarshaler
}

func parse[T any, PT Target[T]](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		return v, Error.Wrap(err)
	}
	return v, nil
}

// ToShopspring converts v into a shopspring decimal.
func ToShopspring(v Value) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(v.StringFull())
	if err != nil {
		return decimal.Zero, Error.Wrap(err)
	}
	return d, nil
}

// FromShopspring converts a shopspring decimal into T, for example:
//
//	v, err := interop.FromShopspring[fixedpoint.Small](d)
func FromShopspring[T any, PT Target[T]](d decimal.Decimal) (T, error) {
	return parse[T, PT](d.String())
}

// ToRobaho converts v into a robaho fixed.
// Digits after the 7th fractional one are truncated.
func ToRobaho(v Value) (rf.Fixed, error) {
	f, err := rf.NewSErr(v.StringFull())
	if err != nil {
		return rf.NaN, Error.Wrap(err)
	}
	return f, nil
}

// FromRobaho converts a robaho fixed into T. NaN is reported as an error.
func FromRobaho[T any, PT Target[T]](f rf.Fixed) (T, error) {
	if f.IsNaN() {
		var v T
		return v, Error.New("NaN can't be converted")
	}
	return parse[T, PT](f.String())
}

// ToGovalues converts v into a govalues decimal.
// Extra fractional digits are rounded by govalues, values with more than 19 digits fail.
func ToGovalues(v Value) (gv.Decimal, error) {
	d, err := gv.Parse(v.StringFull())
	if err != nil {
		return gv.Decimal{}, Error.Wrap(err)
	}
	return d, nil
}

// FromGovalues converts a govalues decimal into T.
func FromGovalues[T any, PT Target[T]](d gv.Decimal) (T, error) {
	return parse[T, PT](d.String())
}

// ToInf converts v into an inf.Dec.
func ToInf(v Value) (*inf.Dec, error) {
	d, ok := new(inf.Dec).SetString(v.StringFull())
	if !ok {
		return nil, Error.New("can't convert %q", v.StringFull())
	}
	return d, nil
}

// FromInf converts an inf.Dec into T.
func FromInf[T any, PT Target[T]](d *inf.Dec) (T, error) {
	if d == nil {
		var v T
		return v, Error.New("nil inf.Dec")
	}
	return parse[T, PT](d.String())
}
