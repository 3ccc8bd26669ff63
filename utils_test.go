package fft

import (
	"math"
	"math/rand"
	"testing"
)

func TestIsPow2(t *testing.T) {
	// 1. Test all powers of 2 up to 2^62
	for i := 0; i < 63; i++ {
		x := 1 << uint64(i)
		if !IsPow2(x) {
			t.Errorf("IsPow2(%d), got: false, expected: true", x)
		}
	}

	// 2. Test all non-powers of 2 below 2^16
	n := 1
	for x := 0; x < (1 << 16); x++ {
		if x == n {
			n <<= 1
			continue
		}
		if IsPow2(x) {
			t.Errorf("IsPow2(%d), got: true, expected: false", x)
		}
	}
}

func TestNextPow2(t *testing.T) {
	// 0. Test n=0 returns 1
	if r := NextPow2(0); r != 1 {
		t.Errorf("NextPow2(0), got: %d, expected: 1", r)
	}
	for i := 0; i < 62; i++ {
		// 1. Test all powers of 2 up to 2^61
		x := 1 << uint32(i)
		if r := NextPow2(x); r != x {
			t.Errorf("NextPow2(%d), got: %d, expected: %d", x, r, x)
		}
		// 2. Test powers of 2 plus one
		if r := NextPow2(x + 1); r != 2*x {
			t.Errorf("NextPow2(%d+1), got: %d, expected: %d", x, r, 2*x)
		}
		// 3. Test random number between here and next power of 2
		if x > 1 {
			n := rand.Intn(x-1) + 1
			if r := NextPow2(x + n); r != 2*x {
				t.Errorf("NextPow2(%d+%d), got: %d, expected: %d", x, n, r, 2*x)
			}
		}
	}
}

func checkZeroPadding(t *testing.T, x1, x2 []complex128, N1, N2 int) {
	t.Helper()
	if len(x1) != N1 {
		t.Errorf("ZeroPad old array length, got: %d, expected: %d", len(x1), N1)
	}
	if len(x2) != N2 {
		t.Errorf("ZeroPad new array length, got: %d, expected: %d", len(x2), N2)
	}
	for j := 0; j < N1; j++ {
		if x1[j] != x2[j] {
			t.Errorf("ZeroPad copied section, got: x2[j] = %v, expected: x2[j] = %v", x2[j], x1[j])
		}
	}
	for j := N1; j < N2; j++ {
		if x2[j] != 0 {
			t.Errorf("ZeroPad padded section, got: x2[j] = %v, expected: 0", x2[j])
		}
	}
}

func TestZeroPad(t *testing.T) {
	for i := 0; i < 100; i++ {
		// Test random lengths between 0 and 10000, and random paddings between 0 and 1000
		N1 := rand.Intn(10000)
		N2 := N1 + rand.Intn(1000)
		x1 := complexRand(N1)
		x2 := ZeroPad(x1, N2)
		checkZeroPadding(t, x1, x2, N1, N2)
	}
}

func TestZeroPadToNextPow2(t *testing.T) {
	// 0. Test n=0 returns [0]
	r := ZeroPadToNextPow2[complex128](nil)
	if len(r) != 1 {
		t.Errorf("len(ZeroPadToNextPow2(nil)), got: %d, expected: 1", len(r))
	}
	for i := 0; i < 14; i++ {
		// 1. Test powers of 2 up to 2^13
		N1 := 1 << uint32(i)
		x1 := complexRand(N1)
		x2 := ZeroPadToNextPow2(x1)
		checkZeroPadding(t, x1, x2, N1, N1)
		// 2. Test powers of 2 plus one
		x1 = complexRand(N1 + 1)
		x2 = ZeroPadToNextPow2(x1)
		checkZeroPadding(t, x1, x2, N1+1, 2*N1)
		// 3. Test random number between here and next power of 2
		if N1 > 1 {
			n := rand.Intn(N1-1) + 1
			x1 = complexRand(N1 + n)
			x2 = ZeroPadToNextPow2(x1)
			checkZeroPadding(t, x1, x2, N1+n, 2*N1)
		}
	}
}

func TestFloat64ToComplex128Array(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := floatRand(i)
		b := Float64ToComplex128Array(a)
		if len(a) != len(b) {
			t.Errorf("Float64ToComplex128Array, got: len(b) = %v, expected: %v", len(b), len(a))
		}
		for j := 0; j < i; j++ {
			if a[j] != real(b[j]) {
				t.Errorf("Float64ToComplex128Array, got: real(b[j]) = %v, expected: %v", real(b[j]), a[j])
			}
			if imag(b[j]) != 0 {
				t.Errorf("Float64ToComplex128Array, got: imag(b[j]) = %v, expected: 0", imag(b[j]))
			}
		}
	}
}

func TestComplex128ToFloat64Array(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := complexRand(i)
		b := Complex128ToFloat64Array(a)
		if len(a) != len(b) {
			t.Errorf("Complex128ToFloat64Array, got: len(b) = %v, expected: %v", len(b), len(a))
		}
		for j := 0; j < i; j++ {
			if real(a[j]) != b[j] {
				t.Errorf("Complex128ToFloat64Array, got: b[j] = %v, expected: %v", b[j], real(a[j]))
			}
		}
	}
}

func TestRoundFloat64Array(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := floatRand(i)
		b := make([]float64, i)
		copy(b, a)
		RoundFloat64Array(b)
		for j := 0; j < i; j++ {
			if math.Round(a[j]) != b[j] {
				t.Errorf("RoundFloat64Array, got: %v, expected: %v", b[j], math.Round(a[j]))
			}
		}
	}
}

func TestComplexWidthConversions(t *testing.T) {
	a := complex64Rand(32)
	wide := Complex64ToComplex128(a)
	back := Complex128ToComplex64(wide)
	for i := range a {
		if a[i] != back[i] {
			t.Errorf("width conversion round-trip[%d], got: %v, expected: %v", i, back[i], a[i])
		}
	}
	f := []float32{1, -2, 3}
	c := Float32ToComplex64Array(f)
	r := Complex64ToFloat32Array(c)
	for i := range f {
		if f[i] != r[i] {
			t.Errorf("float32 conversion round-trip[%d], got: %v, expected: %v", i, r[i], f[i])
		}
	}
}
