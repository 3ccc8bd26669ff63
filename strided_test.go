package fft

import (
	"errors"
	"math/cmplx"
	"testing"
)

func TestFFTStrided(t *testing.T) {
	eng := NewEngine[complex128]()
	const n, stride = 8, 3
	// Lay n samples out every stride elements; the gaps must survive
	// untouched.
	buf := make([]complex128, (n-1)*stride+1)
	x := complexRand(n)
	for i := 0; i < n; i++ {
		buf[i*stride] = x[i]
	}
	marker := complex128(7 + 7i)
	for i := range buf {
		if i%stride != 0 {
			buf[i] = marker
		}
	}

	scratch := make([]complex128, n)
	if err := eng.FFTStrided(buf, stride, scratch); err != nil {
		t.Fatalf("FFTStrided error: %v", err)
	}
	want := slowFFT(x)
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(buf[i*stride] - want[i]); d > 1e-9 {
			t.Errorf("strided bin %d, got: %v, expected: %v", i, buf[i*stride], want[i])
		}
	}
	for i := range buf {
		if i%stride != 0 && buf[i] != marker {
			t.Errorf("gap element %d clobbered: %v", i, buf[i])
		}
	}

	if err := eng.IFFTStrided(buf, stride, scratch); err != nil {
		t.Fatalf("IFFTStrided error: %v", err)
	}
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(buf[i*stride] - x[i]); d > 1e-9 {
			t.Errorf("strided round-trip %d, got: %v, expected: %v", i, buf[i*stride], x[i])
		}
	}
}

func TestFFTStridedAlloc(t *testing.T) {
	eng := NewEngine[complex128]()
	const n, stride = 16, 2
	buf := make([]complex128, n*stride)
	x := complexRand(n)
	for i := 0; i < n; i++ {
		buf[i*stride] = x[i]
	}
	if err := eng.FFTStridedAlloc(buf, stride); err != nil {
		t.Fatalf("FFTStridedAlloc error: %v", err)
	}
	want := slowFFT(x)
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(buf[i*stride] - want[i]); d > 1e-9 {
			t.Errorf("bin %d, got: %v, expected: %v", i, buf[i*stride], want[i])
		}
	}
	if err := eng.IFFTStridedAlloc(buf, stride); err != nil {
		t.Fatalf("IFFTStridedAlloc error: %v", err)
	}
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(buf[i*stride] - x[i]); d > 1e-9 {
			t.Errorf("round-trip %d, got: %v, expected: %v", i, buf[i*stride], x[i])
		}
	}
}

func TestFFTOutOfPlaceStrided(t *testing.T) {
	eng := NewEngine[complex128]()
	const n = 8
	in := make([]complex128, n*2)
	x := complexRand(n)
	for i := 0; i < n; i++ {
		in[i*2] = x[i]
	}
	out := make([]complex128, n*3)
	if err := eng.FFTOutOfPlaceStrided(in, 2, out, 3); err != nil {
		t.Fatalf("FFTOutOfPlaceStrided error: %v", err)
	}
	want := slowFFT(x)
	for i := 0; i < n; i++ {
		if d := cmplx.Abs(out[i*3] - want[i]); d > 1e-9 {
			t.Errorf("bin %d, got: %v, expected: %v", i, out[i*3], want[i])
		}
	}
}

func TestStridedErrors(t *testing.T) {
	eng := NewEngine[complex128]()
	buf := complexRand(8)
	scratch := make([]complex128, 8)
	if err := eng.FFTStrided(buf, 0, scratch); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("stride 0, got: %v, expected: ErrInvalidStride", err)
	}
	if err := eng.FFTStrided(buf, 2, scratch); !errors.Is(err, ErrMismatchedLengths) {
		t.Errorf("short buffer, got: %v, expected: ErrMismatchedLengths", err)
	}
	if err := eng.FFTOutOfPlaceStrided(buf, 3, make([]complex128, 8), 1); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("ragged stride, got: %v, expected: ErrInvalidStride", err)
	}
	if err := eng.FFTOutOfPlaceStrided(buf, 2, make([]complex128, 6), 1); !errors.Is(err, ErrMismatchedLengths) {
		t.Errorf("count mismatch, got: %v, expected: ErrMismatchedLengths", err)
	}
}
