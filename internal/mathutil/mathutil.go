// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains integer helpers shared by the fixed-point types:
// powers of ten, decimal digit counting and 128-bit wide intermediates.
package mathutil

import (
	"math/bits"
	"unsafe"

	num "github.com/shabbyrobe/go-num"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0 if it does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// ScaleMant rescales a mantissa from 10^exp to 10^targetExp units.
// Down-scaling truncates, exact reports whether no digits were lost.
// Up-scaling saturates at MaxUint64.
func ScaleMant(mant uint64, exp, targetExp int32) (m uint64, exact bool) {
	if mant == 0 {
		return 0, true
	}
	diff := int(exp - targetExp)
	if diff == 0 {
		return mant, true
	}
	p := Pow10(AbsInt(diff))
	if p == 0 {
		if diff > 0 {
			return ^uint64(0), false
		}
		return 0, false
	}
	if diff > 0 {
		hi, lo := bits.Mul64(mant, p)
		if hi > 0 {
			return ^uint64(0), false
		}
		return lo, true
	}
	return mant / p, mant%p == 0
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

// AbsInt64 returns the magnitude of val as a uint64, so that MinInt64 does not overflow.
func AbsInt64(val int64) uint64 {
	if val < 0 {
		return uint64(-(val + 1)) + 1
	}
	return uint64(val)
}

func Int64Sign(v int64) int {
	if v == 0 {
		return 0
	}
	return [...]int{1, -1}[uint64(v)>>63]
}

// Mul64 returns the full 128-bit product a*b.
func Mul64(a, b uint64) num.U128 {
	return num.U128From64(a).Mul(num.U128From64(b))
}

// Compose returns integral*scale + fractional as a 128-bit number.
func Compose(integral, fractional, scale uint64) num.U128 {
	return Mul64(integral, scale).Add(num.U128From64(fractional))
}

// Split is the reverse of Compose.
// The integral part is returned as a U128, as it can exceed 64 bits for unclamped results.
func Split(u num.U128, scale uint64) (integral num.U128, fractional uint64) {
	q, r := u.QuoRem(num.U128From64(scale))
	return q, r.AsUint64()
}

// MulDivFloor returns floor(r*m/by) for r < by, where m is a power of ten up to 10^19.
// If r*m exceeds 128 bits, the quotient is produced one decimal digit at a time,
// keeping every intermediate value below 'by'.
func MulDivFloor(r num.U128, m uint64, by num.U128) uint64 {
	if r.IsZero() {
		return 0
	}
	if r.IsUint64() {
		return Mul64(r.AsUint64(), m).Quo(by).AsUint64()
	}
	var result uint64
	for digits := DecimalDigits(m) - 1; digits > 0; digits-- {
		var d uint64
		d, r = mulSmallMod(r, 10, by)
		result = result*10 + d
	}
	return result
}

// mulSmallMod computes k*r = q*by + rem for r < by without overflowing 128 bits.
func mulSmallMod(r num.U128, k uint64, by num.U128) (q uint64, rem num.U128) {
	for i := uint64(0); i < k; i++ {
		gap := by.Sub(rem)
		if r.GreaterOrEqualTo(gap) { // rem + r >= by
			rem = r.Sub(gap)
			q++
		} else {
			rem = rem.Add(r)
		}
	}
	return q, rem
}
