// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixedpoint

import (
	"math/rand"
	"testing"
	"time"
)

func BenchmarkMulSmall(b *testing.B) {
	f0, _ := SmallFromFloat64(1.23456789)
	f1, _ := SmallFromFloat64(0.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulLarge(b *testing.B) {
	f0, _ := LargeFromFloat64(1.23456789)
	f1, _ := LargeFromFloat64(0.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkDivLarge(b *testing.B) {
	f0, _ := LargeFromFloat64(1.23456789)
	f1, _ := LargeFromFloat64(0.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkParseLarge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ParseLarge("-1234567.8901234567890123")
	}
}

func BenchmarkStringLarge(b *testing.B) {
	v := MustParseLarge("-1234567.8901234567890123")
	for i := 0; i < b.N; i++ {
		_ = v.String()
	}
}

func BenchmarkCmpMedium(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		v1 := MediumFromParts(Sign(rnd.Intn(2)), uint64(rnd.Uint32()), uint64(rnd.Int63n(1e9)))
		v2 := MediumFromParts(Sign(rnd.Intn(2)), uint64(rnd.Uint32()), uint64(rnd.Int63n(1e9)))
		v1.Cmp(v2)
	}
}

func BenchmarkCmpFloat64Large(b *testing.B) {
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < b.N; i++ {
		v := LargeFromParts(Sign(rnd.Intn(2)), uint64(rnd.Int63()), rnd.Uint64()%1e19)
		v.CmpFloat64(rnd.NormFloat64() * 1e6)
	}
}
