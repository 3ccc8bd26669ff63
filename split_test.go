package fft

import (
	"errors"
	"math"
	"testing"
)

func TestFFTSplit(t *testing.T) {
	eng := NewEngine[complex128]()
	const n = 32
	x := complexRand(n)
	re := make([]float64, n)
	im := make([]float64, n)
	for i, v := range x {
		re[i] = real(v)
		im[i] = imag(v)
	}
	if err := FFTSplit(eng, re, im); err != nil {
		t.Fatalf("FFTSplit error: %v", err)
	}
	want := slowFFT(x)
	for i := range want {
		if math.Abs(re[i]-real(want[i])) > 1e-9 || math.Abs(im[i]-imag(want[i])) > 1e-9 {
			t.Errorf("split bin %d, got: (%v,%v), expected: %v", i, re[i], im[i], want[i])
		}
	}
	if err := IFFTSplit(eng, re, im); err != nil {
		t.Fatalf("IFFTSplit error: %v", err)
	}
	for i, v := range x {
		if math.Abs(re[i]-real(v)) > 1e-9 || math.Abs(im[i]-imag(v)) > 1e-9 {
			t.Errorf("split round-trip %d, got: (%v,%v), expected: %v", i, re[i], im[i], v)
		}
	}
}

func TestFFTSplit32(t *testing.T) {
	eng := NewEngine[complex64]()
	const n = 64
	x := complexRand(n)
	re := make([]float32, n)
	im := make([]float32, n)
	for i, v := range x {
		re[i] = float32(real(v))
		im[i] = float32(imag(v))
	}
	if err := FFTSplit(eng, re, im); err != nil {
		t.Fatalf("FFTSplit error: %v", err)
	}
	want := slowFFT(x)
	for i := range want {
		if math.Abs(float64(re[i])-real(want[i])) > 1e-3 {
			t.Errorf("split32 bin %d re, got: %v, expected: %v", i, re[i], real(want[i]))
		}
	}
}

func TestSplitComplexType(t *testing.T) {
	eng := NewEngine[complex128]()
	s := NewSplitComplex[float64](16)
	if s.Len() != 16 {
		t.Fatalf("Len, got: %d, expected: 16", s.Len())
	}
	for i := range s.Re {
		s.Re[i] = float64(i)
	}
	if err := FFTSplitComplex(eng, s); err != nil {
		t.Fatalf("FFTSplitComplex error: %v", err)
	}
	if err := IFFTSplitComplex(eng, s); err != nil {
		t.Fatalf("IFFTSplitComplex error: %v", err)
	}
	for i := range s.Re {
		if math.Abs(s.Re[i]-float64(i)) > 1e-9 || math.Abs(s.Im[i]) > 1e-9 {
			t.Errorf("split round-trip %d, got: (%v,%v)", i, s.Re[i], s.Im[i])
		}
	}
}

func TestFFTSplitErrors(t *testing.T) {
	eng := NewEngine[complex128]()
	if err := FFTSplit(eng, make([]float64, 4), make([]float64, 5)); !errors.Is(err, ErrMismatchedLengths) {
		t.Errorf("ragged split, got: %v, expected: ErrMismatchedLengths", err)
	}
	if err := FFTSplit(eng, []float64{}, []float64{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("empty split, got: %v, expected: ErrEmptyInput", err)
	}
}

func TestFFTStridedSplit(t *testing.T) {
	eng := NewEngine[complex128]()
	const n, stride = 8, 2
	x := complexRand(n)
	re := make([]float64, n*stride)
	im := make([]float64, n*stride)
	for i, v := range x {
		re[i*stride] = real(v)
		im[i*stride] = imag(v)
	}
	scratch := make([]complex128, n)
	if err := FFTStridedSplit(eng, re, im, stride, scratch); err != nil {
		t.Fatalf("FFTStridedSplit error: %v", err)
	}
	want := slowFFT(x)
	for i := range want {
		if math.Abs(re[i*stride]-real(want[i])) > 1e-9 {
			t.Errorf("strided split bin %d, got: %v, expected: %v", i, re[i*stride], real(want[i]))
		}
	}
	if err := IFFTStridedSplit(eng, re, im, stride, scratch); err != nil {
		t.Fatalf("IFFTStridedSplit error: %v", err)
	}
	for i, v := range x {
		if math.Abs(re[i*stride]-real(v)) > 1e-9 || math.Abs(im[i*stride]-imag(v)) > 1e-9 {
			t.Errorf("strided split round-trip %d differs", i)
		}
	}

	if err := FFTStridedSplit(eng, re, im, 0, scratch); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("stride 0, got: %v, expected: ErrInvalidStride", err)
	}
}
