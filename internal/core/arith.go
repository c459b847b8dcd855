package core

import (
	"math/bits"

	"github.com/avdva/fixedpoint/internal/mathutil"
	num "github.com/shabbyrobe/go-num"
)

// Add returns a+b.
// If the result overflows the layout's range, Max or Min is returned.
func (l Layout) Add(a, b Num) Num {
	if a.Neg == b.Neg {
		// a+b
		// or -a+(-b) = -(a+b)
		return l.addMagnitudes(a, b, a.Neg)
	}
	// a+(-b) = a-b, -a+b = b-a.
	// the sign of the result is the sign of the operand with the larger magnitude.
	if cmpMagnitudes(a, b) >= 0 {
		return l.Normalize(l.subMagnitudes(a, b, a.Neg))
	}
	return l.Normalize(l.subMagnitudes(b, a, b.Neg))
}

// Sub returns a-b.
func (l Layout) Sub(a, b Num) Num {
	return l.Add(a, b.Negated()) // a-b = a+(-b)
}

func (l Layout) addMagnitudes(a, b Num, neg bool) Num {
	var carry uint64
	frac := a.Frac
	if gap := l.Scale - b.Frac; frac >= gap { // a.Frac + b.Frac >= scale
		frac -= gap
		carry = 1
	} else {
		frac += b.Frac
	}
	integral, overflow := bits.Add64(a.Int, b.Int, carry)
	if overflow != 0 || integral > l.MaxInt {
		return l.saturate(neg)
	}
	return l.Normalize(Num{Neg: neg, Int: integral, Frac: frac})
}

// subMagnitudes returns |big|-|small| with the given sign. It assumes |big| >= |small|.
func (l Layout) subMagnitudes(big, small Num, neg bool) Num {
	integral := big.Int - small.Int
	var frac uint64
	if big.Frac >= small.Frac {
		frac = big.Frac - small.Frac
	} else { // borrow
		frac = big.Frac + (l.Scale - small.Frac)
		integral--
	}
	return Num{Neg: neg, Int: integral, Frac: frac}
}

// Mul returns a*b.
// The result is truncated to the layout's digits. A nonzero result that would be
// truncated to zero becomes the smallest value of the same sign.
// If the result overflows the layout's range, Max or Min is returned.
func (l Layout) Mul(a, b Num) Num {
	if a.IsZero() || b.IsZero() {
		return Num{}
	}
	neg := a.Neg != b.Neg
	if a.Frac == 0 && b.Frac == 0 {
		hi, lo := bits.Mul64(a.Int, b.Int)
		if hi != 0 || lo > l.MaxInt {
			return l.saturate(neg)
		}
		return Num{Neg: neg, Int: lo}
	}

	// (ai + af/s) * (bi + bf/s) = ai*bi + (ai*bf + af*bi)/s + af*bf/s^2.
	// every partial product fits 128 bits.
	ii := mathutil.Mul64(a.Int, b.Int)
	if !fitsMax(ii, l.MaxInt) {
		return l.saturate(neg)
	}
	scale := num.U128From64(l.Scale)
	q1, r1 := mathutil.Mul64(a.Int, b.Frac).QuoRem(scale)
	q2, r2 := mathutil.Mul64(a.Frac, b.Int).QuoRem(scale)
	ff := mathutil.Mul64(a.Frac, b.Frac).Quo(scale)
	carry, frac := r1.Add(r2).Add(ff).QuoRem(scale)
	integral := ii.Add(q1).Add(q2).Add(carry)
	if !fitsMax(integral, l.MaxInt) {
		return l.saturate(neg)
	}
	return nonVanishing(Num{Neg: neg, Int: integral.AsUint64(), Frac: frac.AsUint64()})
}

// Quo returns a/b truncated to the layout's digits.
// A nonzero quotient that would be truncated to zero becomes the smallest value of the same sign.
// If b is zero, a and ErrDivideByZero are returned.
func (l Layout) Quo(a, b Num) (Num, error) {
	if b.IsZero() {
		return a, ErrDivideByZero
	}
	if a.IsZero() {
		return Num{}, nil
	}
	neg := a.Neg != b.Neg
	if a.Frac == 0 && b.Frac == 0 && a.Int%b.Int == 0 {
		return Num{Neg: neg, Int: a.Int / b.Int}, nil
	}

	// a/b = (A*s)/(B*s), where A = ai*s+af, B = bi*s+bf.
	// the result, scaled by s, is A*s/B = (A/B)*s + (A%B)*s/B.
	divisor := mathutil.Compose(b.Int, b.Frac, l.Scale)
	q, r := mathutil.Compose(a.Int, a.Frac, l.Scale).QuoRem(divisor)
	if !fitsMax(q, l.MaxInt) {
		return l.saturate(neg), nil
	}
	frac := mathutil.MulDivFloor(r, l.Scale, divisor)
	return nonVanishing(Num{Neg: neg, Int: q.AsUint64(), Frac: frac}), nil
}

// Rem returns the remainder of a truncated division a/b. It has the sign of a.
// If b is zero, a and ErrDivideByZero are returned.
func (l Layout) Rem(a, b Num) (Num, error) {
	if b.IsZero() {
		return a, ErrDivideByZero
	}
	if a.Frac == 0 && b.Frac == 0 {
		return l.Normalize(Num{Neg: a.Neg, Int: a.Int % b.Int}), nil
	}
	r := mathutil.Compose(a.Int, a.Frac, l.Scale).Rem(mathutil.Compose(b.Int, b.Frac, l.Scale))
	integral, frac := mathutil.Split(r, l.Scale)
	return l.Normalize(Num{Neg: a.Neg, Int: integral.AsUint64(), Frac: frac}), nil
}

// nonVanishing substitutes the smallest magnitude for a zero result of a nonzero computation.
func nonVanishing(n Num) Num {
	if n.IsZero() {
		n.Frac = 1
	}
	return n
}

func fitsMax(u num.U128, max uint64) bool {
	return u.IsUint64() && u.AsUint64() <= max
}
