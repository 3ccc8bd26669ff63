package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	ktyefft "github.com/ktye/fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"
)

// slowFFT is the simplest and slowest DFT, used as the oracle.
func slowFFT(x []complex128) []complex128 {
	N := len(x)
	y := make([]complex128, N)
	for k := 0; k < N; k++ {
		for n := 0; n < N; n++ {
			phi := -2.0 * math.Pi * float64(k*n) / float64(N)
			s, c := math.Sincos(phi)
			y[k] += x[n] * complex(c, s)
		}
	}
	return y
}

func floatRand(N int) []float64 {
	x := make([]float64, N)
	for i := 0; i < N; i++ {
		x[i] = rand.NormFloat64()
	}
	return x
}

func complexRand(N int) []complex128 {
	x := make([]complex128, N)
	for i := 0; i < N; i++ {
		x[i] = complex(rand.NormFloat64(), rand.NormFloat64())
	}
	return x
}

func complex64Rand(N int) []complex64 {
	x := make([]complex64, N)
	for i := 0; i < N; i++ {
		x[i] = complex(float32(rand.NormFloat64()), float32(rand.NormFloat64()))
	}
	return x
}

func copyVector(v []complex128) []complex128 {
	y := make([]complex128, len(v))
	copy(y, v)
	return y
}

func maxDiff(a, b []complex128) float64 {
	mx := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > mx {
			mx = d
		}
	}
	return mx
}

func TestFFTEmpty(t *testing.T) {
	if err := FFT([]complex128{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("FFT(nil), got: %v, expected: ErrEmptyInput", err)
	}
	if err := IFFT([]complex128{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("IFFT(nil), got: %v, expected: ErrEmptyInput", err)
	}
}

func TestFFTSingle(t *testing.T) {
	x := []complex128{42 - 1i}
	if err := FFT(x); err != nil {
		t.Fatalf("FFT error: %v", err)
	}
	if x[0] != 42-1i {
		t.Errorf("length-1 FFT must be the identity, got %v", x[0])
	}
}

func TestFFTPowersOfTwo(t *testing.T) {
	// Test FFT(x) == slowFFT(x) for power of 2 up to 2^11
	for N := 2; N < (1 << 12); N <<= 1 {
		x := complexRand(N)
		want := slowFFT(copyVector(x))
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: %v", err)
		}
		if d := maxDiff(want, got); d > 1e-8 {
			t.Errorf("slowFFT and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTArbitraryLengths(t *testing.T) {
	// Every non-power-of-two length takes the Bluestein path.
	for N := 2; N <= 64; N++ {
		x := complexRand(N)
		want := slowFFT(copyVector(x))
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("slowFFT and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTKnown4(t *testing.T) {
	x := []complex128{1, 2, 3, 4}
	want := []complex128{10, -2 + 2i, -2, -2 - 2i}
	if err := FFT(x); err != nil {
		t.Fatalf("FFT error: %v", err)
	}
	if d := maxDiff(want, x); d > 1e-6 {
		t.Errorf("4-point FFT, got: %v, expected: %v", x, want)
	}
	if err := IFFT(x); err != nil {
		t.Fatalf("IFFT error: %v", err)
	}
	orig := []complex128{1, 2, 3, 4}
	if d := maxDiff(orig, x); d > 1e-6 {
		t.Errorf("4-point round-trip, got: %v, expected: %v", x, orig)
	}
}

func TestIFFTRoundTrip(t *testing.T) {
	// ifft(fft(x)) == x for powers of two and Bluestein lengths alike.
	lengths := []int{2, 3, 4, 5, 6, 7, 8, 12, 16, 27, 31, 32, 100, 128, 1000, 1024, 4096}
	for _, N := range lengths {
		x := complexRand(N)
		y := copyVector(x)
		if err := FFT(y); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if err := IFFT(y); err != nil {
			t.Fatalf("IFFT error: N=%d %v", N, err)
		}
		tol := 1e-9 * math.Log2(float64(N)+1)
		if d := maxDiff(x, y); d > tol {
			t.Errorf("inverse differs: N=%d diff=%v", N, d)
		}
	}
}

func TestIFFTRoundTrip32(t *testing.T) {
	eng := NewEngine[complex64]()
	for _, N := range []int{2, 6, 8, 16, 31, 64, 256} {
		x := complex64Rand(N)
		y := make([]complex64, N)
		copy(y, x)
		if err := eng.FFT(y); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if err := eng.IFFT(y); err != nil {
			t.Fatalf("IFFT error: N=%d %v", N, err)
		}
		for i := range x {
			if d := cmplx.Abs(complex128(x[i] - y[i])); d > 1e-3 {
				t.Errorf("inverse differs: N=%d i=%d diff=%v", N, i, d)
			}
		}
	}
}

func TestBluesteinMatchesNaiveDFT(t *testing.T) {
	// complex64 engine against the O(N^2) DFT for N in [3, 31].
	eng := NewEngine[complex64]()
	for N := 3; N <= 31; N++ {
		x64 := complexRand(N)
		want := slowFFT(x64)
		got := make([]complex64, N)
		for i, v := range x64 {
			got[i] = complex64(v)
		}
		if err := eng.FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		for i := range got {
			if d := cmplx.Abs(want[i] - complex128(got[i])); d > 1e-3 {
				t.Errorf("bluestein vs naive: N=%d i=%d diff=%v", N, i, d)
			}
		}
	}
}

func TestBluesteinScenario6(t *testing.T) {
	x := []complex128{1, 2, 3, 4, 5, 6}
	want := slowFFT(copyVector(x))
	got := copyVector(x)
	if err := FFT(got); err != nil {
		t.Fatalf("FFT error: %v", err)
	}
	if d := maxDiff(want, got); d > 1e-4 {
		t.Errorf("6-point FFT, got: %v, expected: %v", got, want)
	}
	if err := IFFT(got); err != nil {
		t.Fatalf("IFFT error: %v", err)
	}
	if d := maxDiff(x, got); d > 1e-4 {
		t.Errorf("6-point round-trip, got: %v, expected: %v", got, x)
	}
}

func TestParseval(t *testing.T) {
	for _, N := range []int{4, 16, 60, 128, 1000, 1024} {
		x := complexRand(N)
		y := copyVector(x)
		if err := FFT(y); err != nil {
			t.Fatalf("FFT error: %v", err)
		}
		var timeEnergy, freqEnergy float64
		for i := range x {
			timeEnergy += real(x[i])*real(x[i]) + imag(x[i])*imag(x[i])
			freqEnergy += real(y[i])*real(y[i]) + imag(y[i])*imag(y[i])
		}
		freqEnergy /= float64(N)
		if d := math.Abs(timeEnergy - freqEnergy); d > 1e-8*timeEnergy {
			t.Errorf("Parseval violated: N=%d time=%v freq=%v", N, timeEnergy, freqEnergy)
		}
	}
}

func TestStrategyEquivalence(t *testing.T) {
	strategies := []Strategy{Radix2, Radix4, SplitRadix, Auto}
	eng := NewEngine[complex128]()
	for N := 2; N <= (1 << 12); N <<= 1 {
		x := complexRand(N)
		want := copyVector(x)
		if err := eng.FFT(want); err != nil {
			t.Fatalf("FFT error: %v", err)
		}
		for _, s := range strategies {
			got := copyVector(x)
			if err := eng.FFTWithStrategy(got, s); err != nil {
				t.Fatalf("FFTWithStrategy(%v) error: N=%d %v", s, N, err)
			}
			if d := maxDiff(want, got); d > 1e-10 {
				t.Errorf("strategy %v differs from dispatcher: N=%d diff=%v", s, N, d)
			}
		}
	}
}

func TestStrategyEquivalence32(t *testing.T) {
	strategies := []Strategy{Radix2, Radix4, SplitRadix, Auto}
	eng := NewEngine[complex64]()
	for N := 2; N <= (1 << 12); N <<= 1 {
		x := complex64Rand(N)
		want := make([]complex64, N)
		copy(want, x)
		if err := eng.FFT(want); err != nil {
			t.Fatalf("FFT error: %v", err)
		}
		for _, s := range strategies {
			got := make([]complex64, N)
			copy(got, x)
			if err := eng.FFTWithStrategy(got, s); err != nil {
				t.Fatalf("FFTWithStrategy(%v) error: N=%d %v", s, N, err)
			}
			for i := range got {
				if d := cmplx.Abs(complex128(want[i] - got[i])); d > 1e-3 {
					t.Errorf("strategy %v differs: N=%d i=%d diff=%v", s, N, i, d)
				}
			}
		}
	}
}

func TestFFTMixedRadix(t *testing.T) {
	eng := NewEngine[complex128]()
	for _, N := range []int{4, 8, 16, 64, 60, 120, 256} {
		x := complexRand(N)
		want := slowFFT(copyVector(x))
		got := copyVector(x)
		if err := eng.FFTMixedRadix(got); err != nil {
			t.Fatalf("FFTMixedRadix error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("mixed radix differs from naive: N=%d diff=%v", N, d)
		}
	}
}

func TestStackFFT(t *testing.T) {
	for N := 2; N <= 1024; N <<= 1 {
		x := complexRand(N)
		want := copyVector(x)
		if err := FFT(want); err != nil {
			t.Fatalf("FFT error: %v", err)
		}
		got := copyVector(x)
		if err := FFTStack(got); err != nil {
			t.Fatalf("FFTStack error: %v", err)
		}
		if d := maxDiff(want, got); d > 1e-9 {
			t.Errorf("FFTStack differs from FFT: N=%d diff=%v", N, d)
		}
		if err := IFFTStack(got); err != nil {
			t.Fatalf("IFFTStack error: %v", err)
		}
		if d := maxDiff(x, got); d > 1e-9 {
			t.Errorf("stack round-trip differs: N=%d diff=%v", N, d)
		}
	}
	if err := FFTStack(complexRand(12)); !errors.Is(err, ErrNonPowerOfTwoRestricted) {
		t.Errorf("FFTStack(12), got: %v, expected: ErrNonPowerOfTwoRestricted", err)
	}
}

func TestStackFFTAllocs(t *testing.T) {
	x := complexRand(256)
	allocs := testing.AllocsPerRun(100, func() {
		_ = FFTStack(x)
	})
	if allocs != 0 {
		t.Errorf("FFTStack allocates: got %v allocs per run, expected 0", allocs)
	}
}

func TestFFTSteadyStateAllocs(t *testing.T) {
	// After the first call warms the planner, repeated power-of-two
	// transforms must not touch the heap.
	eng := NewEngine[complex128]()
	x := complexRand(1024)
	if err := eng.FFT(x); err != nil {
		t.Fatalf("FFT error: %v", err)
	}
	allocs := testing.AllocsPerRun(100, func() {
		_ = eng.FFT(x)
	})
	if allocs != 0 {
		t.Errorf("steady-state FFT allocates: got %v allocs per run, expected 0", allocs)
	}

	tw := eng.Planner().Twiddles(1024)
	tw2 := eng.Planner().Twiddles(1024)
	if &tw[0] != &tw2[0] {
		t.Error("Twiddles(1024) rebuilt instead of returning the cached table")
	}
}

func TestOutOfPlace(t *testing.T) {
	x := complexRand(64)
	eng := NewEngine[complex128]()
	out := make([]complex128, 64)
	if err := eng.FFTOutOfPlace(x, out); err != nil {
		t.Fatalf("FFTOutOfPlace error: %v", err)
	}
	want := slowFFT(x)
	if d := maxDiff(want, out); d > 1e-9 {
		t.Errorf("out-of-place differs from naive: diff=%v", d)
	}
	back := make([]complex128, 64)
	if err := eng.IFFTOutOfPlace(out, back); err != nil {
		t.Fatalf("IFFTOutOfPlace error: %v", err)
	}
	if d := maxDiff(x, back); d > 1e-9 {
		t.Errorf("out-of-place round-trip differs: diff=%v", d)
	}
	if err := eng.FFTOutOfPlace(x, make([]complex128, 12)); !errors.Is(err, ErrMismatchedLengths) {
		t.Errorf("mismatched out-of-place, got: %v, expected: ErrMismatchedLengths", err)
	}
}

func TestNonFinitePropagates(t *testing.T) {
	x := complexRand(8)
	x[3] = complex(math.NaN(), 0)
	if err := FFT(x); err != nil {
		t.Fatalf("non-finite input must not error, got: %v", err)
	}
	sawNaN := false
	for _, v := range x {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
			sawNaN = true
		}
	}
	if !sawNaN {
		t.Error("NaN input did not propagate to the output")
	}
}

func TestTransformInterface(t *testing.T) {
	var tr Transform[complex128] = NewTransform[complex128]()
	x := complexRand(16)
	want := slowFFT(copyVector(x))
	if err := tr.FFT(x); err != nil {
		t.Fatalf("Transform.FFT error: %v", err)
	}
	if d := maxDiff(want, x); d > 1e-9 {
		t.Errorf("Transform.FFT differs from naive: diff=%v", d)
	}
}

// Cross-validation against the reference libraries.

func TestFFTAgainstGoDSP(t *testing.T) {
	for _, N := range []int{2, 3, 4, 5, 8, 12, 16, 17, 31, 32, 64, 100, 128} {
		x := complexRand(N)
		want := dspfft.FFT(copyVector(x))
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("go-dsp and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTAgainstGonum(t *testing.T) {
	for _, N := range []int{2, 4, 6, 8, 15, 16, 32, 60, 64, 128, 1000} {
		x := complexRand(N)
		cf := gonumfft.NewCmplxFFT(N)
		want := cf.Coefficients(nil, copyVector(x))
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("gonum and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTAgainstKtye(t *testing.T) {
	for N := 4; N <= 4096; N <<= 1 {
		f, err := ktyefft.New(N)
		if err != nil {
			t.Fatalf("ktye fft.New error: %v", err)
		}
		x := complexRand(N)
		want := copyVector(x)
		f.Transform(want)
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("ktye and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTAgainstScientificGo(t *testing.T) {
	for N := 2; N <= 1024; N <<= 1 {
		x := complexRand(N)
		want := scientificfft.Fft(copyVector(x), false)
		got := copyVector(x)
		if err := FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		if d := maxDiff(want, got); d > 1e-7 {
			t.Errorf("scientificgo and FFT differ: N=%d diff=%v", N, d)
		}
	}
}

func TestFFTAgainstAlgoFFT(t *testing.T) {
	eng := NewEngine[complex64]()
	for N := 4; N <= 1024; N <<= 1 {
		plan, err := algofft.NewPlan32(N)
		if err != nil {
			t.Fatalf("algo-fft NewPlan32 error: %v", err)
		}
		x := complex64Rand(N)
		want := make([]complex64, N)
		src := make([]complex64, N)
		copy(src, x)
		if err := plan.Forward(want, src); err != nil {
			t.Fatalf("algo-fft Forward error: %v", err)
		}
		got := make([]complex64, N)
		copy(got, x)
		if err := eng.FFT(got); err != nil {
			t.Fatalf("FFT error: N=%d %v", N, err)
		}
		for i := range got {
			if d := cmplx.Abs(complex128(want[i] - got[i])); d > 1e-2 {
				t.Errorf("algo-fft and FFT differ: N=%d i=%d diff=%v", N, i, d)
			}
		}
	}
}
