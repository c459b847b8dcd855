package percent

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/avdva/fixedpoint"
	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		s   string
		err string
		v   Value
	}{
		{
			"0", "", Zero,
		},
		{
			"-0", "", Zero,
		},
		{
			"1", "", One,
		},
		{
			"0.15", "", 150000000000000000,
		},
		{
			"-0.000000000000000001", "", -Epsilon,
		},
		{
			"0.0000000000000000019", "", Epsilon,
		},
		{
			"8.999999999999999999", "", Max,
		},
		{
			"9", "", Max,
		},
		{
			"-123", "", Min,
		},
		{
			"1e2", "parsing failed: unexpected symbol 'e' at pos 2", Zero,
		},
		{
			"", "parsing failed: empty input", Zero,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromString(test.s)
			if len(test.err) > 0 {
				a.EqualError(err, test.err)
				a.True(errors.Is(err, fixedpoint.ErrSyntax))
			} else if a.NoError(err) {
				a.Equal(test.v, v)
			}
		})
	}
}

func TestFromPrimitives(t *testing.T) {
	a := assert.New(t)
	a.Equal(Value(-3*scale), FromInt64(-3))
	a.Equal(Max, FromInt64(9))
	a.Equal(Min, FromInt64(math.MinInt64))
	a.Equal(Max, FromRaw(math.MaxInt64))
	a.Equal(Min, FromRaw(math.MinInt64))
	a.Equal(Value(42), FromRaw(42))

	tests := []struct {
		fl  float64
		err error
		v   Value
	}{
		{0, nil, Zero},
		{-0.25, nil, -250000000000000000},
		{1.15, nil, 1150000000000000000},
		{1e-20, nil, Zero},
		{100, nil, Max},
		{math.Inf(-1), nil, Min},
		{math.NaN(), fixedpoint.ErrNaN, Zero},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v, err := FromFloat64(test.fl)
			a.Equal(test.err, err)
			a.Equal(test.v, v)
		})
	}
}

func TestLarge(t *testing.T) {
	a := assert.New(t)
	l := fixedpoint.MustParseLarge("-1.2345678901234567899")
	v := FromLarge(l)
	a.Equal("-1.234567890123456789", v.String())
	a.Equal("-1.2345678901234567890", v.Large().String())
	a.Equal(Max, FromLarge(fixedpoint.LargeFromInt64(100)))
	a.Equal(Min, FromLarge(fixedpoint.LargeFromInt64(-9)))
	a.Equal(Zero, FromLarge(fixedpoint.MustParseLarge("-0.0000000000000000009")))
	a.Equal(fixedpoint.LargeZero, Zero.Large())
}

func TestSignAbs(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v    Value
		sign int
		abs  Value
	}{
		{
			Zero, 0, Zero,
		},
		{
			Max, 1, Max,
		},
		{
			Min, -1, Max,
		},
		{
			Epsilon, 1, Epsilon,
		},
		{
			-Epsilon, -1, Epsilon,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sign, abs := test.v.Sign(), test.v.Abs()
			a.Equal(test.sign, sign)
			a.Equal(test.abs, abs)
			a.Equal(-test.v, test.v.Neg())
		})
	}
}

func TestStringConv(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v          Value
		formatV    string
		formatF    string
		formatJSON string
	}{
		{
			Zero, "0", "0.000000000000000000", `"0.000000000000000000"`,
		},
		{
			MustFromString("1.5"), "1.500000000000000000", "1.500000000000000000", `"1.500000000000000000"`,
		},
		{
			-One, "-1", "-1.000000000000000000", `"-1.000000000000000000"`,
		},
		{
			Max, "8.999999999999999999", "8.999999999999999999", `"8.999999999999999999"`,
		},
		{
			-Epsilon, "-0.000000000000000001", "-0.000000000000000001", `"-0.000000000000000001"`,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.formatV, test.v.String())
			a.Equal(test.formatV, fmt.Sprintf("%v", test.v))
			a.Equal(test.formatF, fmt.Sprintf("%f", test.v))
			a.Equal(test.formatF, test.v.StringFull())
			if data, err := json.Marshal(test.v); a.NoError(err) {
				a.Equal(test.formatJSON, string(data))
				var v Value
				if a.NoError(json.Unmarshal(data, &v)) {
					a.Equal(test.v, v)
				}
			}
			if data, err := test.v.MarshalText(); a.NoError(err) {
				var v Value
				if a.NoError(v.UnmarshalText(data)) {
					a.Equal(test.v, v)
				}
			}
		})
	}
	a.Equal("0.12", fmt.Sprintf("%.2f", MustFromString("0.125")))
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v1, v2 Value
		cmp    int
	}{
		{
			Zero, Zero, 0,
		},
		{
			Epsilon, Zero, 1,
		},
		{
			Zero, -Epsilon, 1,
		},
		{
			Max, Min, 1,
		},
		{
			Epsilon, Epsilon + Epsilon, -1,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.cmp, test.v1.Cmp(test.v2))
			a.Equal(-test.cmp, test.v2.Cmp(test.v1))
			a.Equal(test.cmp < 0, test.v1.Less(test.v2))
			a.Equal(test.cmp > 0, test.v1.Greater(test.v2))
			a.Equal(test.cmp == 0, test.v1.Eq(test.v2))
		})
	}
	a.Equal(0, One.CmpInt64(1))
	a.Equal(-1, Max.CmpInt64(9))
	a.Equal(1, Min.CmpInt64(-9))
	a.Equal(1, MustFromString("-0.5").CmpInt64(-1))
	a.Equal(0, MustFromString("0.1").CmpFloat64(0.1))
	a.Equal(-1, MustFromString("0.1").CmpFloat64(0.1000000000000001))
	a.Equal(-1, Max.CmpFloat64(9))
	a.Equal(1, Min.CmpFloat64(math.NaN()))
	a.Equal(One, FromInt64(5).Clamp(Zero, One))
	a.Equal(Zero, FromInt64(-5).Clamp(Zero, One))
}

func TestArith(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v1, v2             string
		add, sub, mul, div string
		mod                string
	}{
		{"0.5", "0.25", "0.75", "0.25", "0.125", "2", "0"},
		{"-1.5", "0.4", "-1.1", "-1.9", "-0.6", "-3.75", "-0.3"},
		{"1", "3", "4", "-2", "3", "0.333333333333333333", "1"},
		{"8", "2", "8.999999999999999999", "6", "8.999999999999999999", "4", "0"},
		{"-8", "2", "-6", "-8.999999999999999999", "-8.999999999999999999", "-4", "0"},
		{"0.000000001", "0.000000001", "0.000000002", "0", "0.000000000000000001", "1", "0"},
		{"0.1", "0.000000000000000001", "0.100000000000000001", "0.099999999999999999", "0", "8.999999999999999999", "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v1, v2 := MustFromString(test.v1), MustFromString(test.v2)
			a.Equal(MustFromString(test.add), v1.Add(v2), "add")
			a.Equal(MustFromString(test.sub), v1.Sub(v2), "sub")
			a.Equal(MustFromString(test.mul), v1.Mul(v2), "mul")
			div, err := v1.Div(v2)
			a.NoError(err)
			a.Equal(MustFromString(test.div), div, "div")
			mod, err := v1.Mod(v2)
			a.NoError(err)
			a.Equal(MustFromString(test.mod), mod, "mod")
		})
	}
	a.Equal(Max, Max.Add(Max))
	a.Equal(Min, Min.Sub(Max))
	a.Equal(Max, Min.Mul(Min))

	v, err := One.Div(Zero)
	a.Equal(fixedpoint.ErrDivideByZero, err)
	a.Equal(One, v)
	v, err = One.Mod(Zero)
	a.Equal(fixedpoint.ErrDivideByZero, err)
	a.Equal(One, v)
}

func TestRound(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v           string
		floor, ceil string
		round       string
	}{
		{"1.5", "1", "2", "2"},
		{"-1.5", "-1", "-2", "-2"},
		{"0.25", "0", "1", "0"},
		{"8.5", "8", "8.999999999999999999", "8"},
		{"-0.000000000000000001", "0", "-1", "0"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			v := MustFromString(test.v)
			a.Equal(MustFromString(test.floor), v.Floor())
			a.Equal(MustFromString(test.ceil), v.Ceiling())
			a.Equal(MustFromString(test.round), v.Round(0, fixedpoint.ToEven))
		})
	}
	a.Equal(MustFromString("0.13"), MustFromString("0.125").Round(2, fixedpoint.AwayFromZero))
	a.Equal(MustFromString("0.12"), MustFromString("0.125").Round(2, fixedpoint.ToEven))
	a.Equal(Max, Max.Round(0, fixedpoint.AwayFromZero))
	a.Equal(Min, MustFromString("-8.5").Ceiling())
	a.Equal(int64(-8), Min.Int64())
	a.Equal(1.5, MustFromString("1.5").Float64())
	a.Equal(int64(1500000000000000000), MustFromString("1.5").Raw())
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(1.23456789)
	f1 := of.NewF(0.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulPercent(b *testing.B) {
	f0, _ := FromFloat64(1.23456789)
	f1, _ := FromFloat64(0.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	f0 := decimal.NewFromFloat(1.23456789)
	f1 := decimal.NewFromFloat(0.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}
