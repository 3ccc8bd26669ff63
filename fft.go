// Package fft provides fast Fourier transforms over complex64 and
// complex128 buffers.
//
// The dispatcher picks an algorithm per input length: fully unrolled
// kernels terminate sizes 2, 4, 8 and 16, larger powers of two run a
// Stockham auto-sort FFT, and every other length is handled by
// Bluestein's chirp-z algorithm. A Planner caches twiddle tables,
// Bluestein sequences and a reusable scratch buffer so that repeated
// power-of-two transforms of the same length allocate nothing after the
// first call; the Bluestein path allocates a work buffer on every call.
//
// The quickest way in is the package-level entry points:
//
//	x := []complex128{1, 2, 3, 4}
//	err := fft.FFT(x)
//
// For repeated transforms, or when the shared default engines would
// contend, allocate an Engine and reuse it:
//
//	eng := fft.NewEngine[complex128]()
//	err := eng.FFT(x)
//
// Engines are not safe for concurrent use; use one per goroutine or
// serialize externally. Twiddle tables, once built, are immutable and
// may be shared freely.
package fft

// ALGORITHM
// The Stockham auto-sort FFT runs log2(N) passes over a pair of
// equally sized buffers, reading butterflies from one and writing the
// permuted results to the other:
//
//   pass p: n1 groups, each split into halves of n2 = N/(2*n1)
//     u = src[2*k*n2 + j]
//     v = src[(2*k+1)*n2 + j] * W[k*n2]
//     dst[k*n2 + j]      = u + v
//     dst[(k+n1)*n2 + j] = u - v
//
// The buffers swap roles between passes, so the reordering that a
// classic Cooley-Tukey FFT performs up front as a bit-reversal
// permutation happens incrementally, and both the read and the write
// stream stay unit-stride. W is the half-length twiddle table for N,
// so W[k*n2] is always in range.

import (
	"math"
	"sync"
)

// Float is the constraint satisfied by the scalar sample types.
type Float interface {
	~float32 | ~float64
}

// Complex is the constraint satisfied by the two complex buffer
// element types. The type set is exact (no approximation terms) so
// that generic code can recover the concrete element type with a type
// switch and keep its inner loops monomorphic.
type Complex interface {
	complex64 | complex128
}

// expi returns exp(i*theta) in the target precision. The angle is
// evaluated in float64 regardless of precision; narrowing happens only
// on the final value.
func expi[C Complex](theta float64) C {
	s, c := math.Sincos(theta)
	return C(complex(c, s))
}

// scale multiplies every element of x by the real factor s.
func scale[C Complex](x []C, s float64) {
	w := C(complex(s, 0))
	for i := range x {
		x[i] *= w
	}
}

// conjugate negates the imaginary part of every element of x. The
// slice-level type switch keeps the inner loops monomorphic.
func conjugate[C Complex](x []C) {
	switch v := any(x).(type) {
	case []complex64:
		for i := range v {
			v[i] = complex(real(v[i]), -imag(v[i]))
		}
	case []complex128:
		for i := range v {
			v[i] = complex(real(v[i]), -imag(v[i]))
		}
	}
}

// reverseTail reverses x[1:], turning a forward transform into an
// unscaled inverse one: DFT(x reversed mod N) = N * IDFT(x).
func reverseTail[C Complex](x []C) {
	for i, j := 1, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

// Transform is the narrow capability set shared by every FFT engine.
// Engine is the scalar implementation; the constructor seam is where
// architecture-specific variants slot in.
type Transform[C Complex] interface {
	FFT(x []C) error
	IFFT(x []C) error
	FFTOutOfPlace(input, output []C) error
	IFFTOutOfPlace(input, output []C) error
	FFTStrided(input []C, stride int, scratch []C) error
	IFFTStrided(input []C, stride int, scratch []C) error
	FFTWithStrategy(x []C, strategy Strategy) error
}

// NewTransform returns the fastest transform implementation available
// for this build. The selection happens once, at construction.
func NewTransform[C Complex]() Transform[C] {
	return NewEngine[C]()
}

// Engine computes forward and inverse transforms using a private
// Planner for twiddle tables and scratch. The zero value is not
// usable; construct with NewEngine.
type Engine[C Complex] struct {
	planner *Planner[C]
}

// NewEngine returns an engine with a fresh planner.
func NewEngine[C Complex]() *Engine[C] {
	return &Engine[C]{planner: NewPlanner[C]()}
}

// NewEngineWithPlanner returns an engine that draws tables and scratch
// from an existing planner. The planner must not be shared with a
// concurrently running engine.
func NewEngineWithPlanner[C Complex](p *Planner[C]) *Engine[C] {
	return &Engine[C]{planner: p}
}

// Planner exposes the engine's planner, e.g. to pre-warm tables.
func (e *Engine[C]) Planner() *Planner[C] { return e.planner }

// FFT computes the in-place forward transform of x.
//
// Lengths 2, 4, 8 and 16 run unrolled kernels, larger powers of two
// run the Stockham auto-sort FFT, and any other length runs
// Bluestein's algorithm. In restricted builds non-power-of-two lengths
// return ErrNonPowerOfTwoRestricted.
func (e *Engine[C]) FFT(x []C) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if n == 1 {
		return nil
	}
	if IsPow2(n) {
		if n <= 16 {
			smallFFT(x)
			return nil
		}
		return e.StockhamFFT(x)
	}
	if restrictedMode {
		return ErrNonPowerOfTwoRestricted
	}
	return e.bluestein(x)
}

// IFFT computes the in-place inverse transform of x. It reverses
// x[1:], runs the forward transform and scales by 1/N, which is
// algebraically identical to the conjugate-transform-conjugate
// formulation for every length the dispatcher accepts.
func (e *Engine[C]) IFFT(x []C) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if n == 1 {
		return nil
	}
	reverseTail(x)
	if err := e.FFT(x); err != nil {
		return err
	}
	scale(x, 1/float64(n))
	return nil
}

// StockhamFFT runs the power-of-two auto-sort FFT described in the
// ALGORITHM comment above. Non-power-of-two lengths are routed back to
// the dispatcher. The second buffer is borrowed from the planner
// scratch, so repeated calls of one length do not allocate.
func (e *Engine[C]) StockhamFFT(x []C) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if !IsPow2(n) {
		return e.FFT(x)
	}
	if n <= 16 {
		smallFFT(x)
		return nil
	}

	twiddles := e.planner.Twiddles(n)
	scratch := e.planner.Scratch(n)

	src, dst := x, scratch
	n1, n2 := 1, n
	for n1 < n {
		n2 >>= 1
		for k := 0; k < n1; k++ {
			w := twiddles[k*n2]
			even := src[2*k*n2 : 2*k*n2+n2]
			odd := src[2*k*n2+n2 : 2*k*n2+2*n2]
			lo := dst[k*n2 : (k+1)*n2]
			hi := dst[(k+n1)*n2 : (k+n1+1)*n2]
			for j := 0; j < n2; j++ {
				u := even[j]
				v := odd[j] * w
				lo[j] = u + v
				hi[j] = u - v
			}
		}
		src, dst = dst, src
		n1 <<= 1
	}

	// After log2(n) swaps the result may live in scratch; copy once.
	if &src[0] != &x[0] {
		copy(x, src)
	}
	return nil
}

// smallFFT dispatches to the straight-line kernels. Callers guarantee
// len(x) is a power of two in [2, 16].
func smallFFT[C Complex](x []C) {
	switch len(x) {
	case 2:
		fft2(x)
	case 4:
		fft4(x)
	case 8:
		fft8(x)
	case 16:
		fft16(x)
	}
}

// FFTOutOfPlace copies input into output and transforms output in
// place. The two buffers must have equal lengths.
func (e *Engine[C]) FFTOutOfPlace(input, output []C) error {
	if len(input) != len(output) {
		return ErrMismatchedLengths
	}
	copy(output, input)
	return e.FFT(output)
}

// IFFTOutOfPlace is the inverse analogue of FFTOutOfPlace.
func (e *Engine[C]) IFFTOutOfPlace(input, output []C) error {
	if len(input) != len(output) {
		return ErrMismatchedLengths
	}
	copy(output, input)
	return e.IFFT(output)
}

// Default engines backing the package-level entry points. The mutex
// serializes planner mutation; callers that want parallelism allocate
// their own engines instead.
var (
	stdMu sync.Mutex
	std64 = NewEngine[complex128]()
	std32 = NewEngine[complex64]()
)

// FFT computes the in-place forward transform of x using a shared
// default engine for the element type.
func FFT[C Complex](x []C) error {
	stdMu.Lock()
	defer stdMu.Unlock()
	switch v := any(x).(type) {
	case []complex128:
		return std64.FFT(v)
	case []complex64:
		return std32.FFT(v)
	}
	return nil
}

// IFFT computes the in-place inverse transform of x using a shared
// default engine for the element type.
func IFFT[C Complex](x []C) error {
	stdMu.Lock()
	defer stdMu.Unlock()
	switch v := any(x).(type) {
	case []complex128:
		return std64.IFFT(v)
	case []complex64:
		return std32.IFFT(v)
	}
	return nil
}

// Batch transforms every slice in batches in place with the given
// engine, stopping at the first error.
func Batch[C Complex](e *Engine[C], batches [][]C) error {
	for _, b := range batches {
		if err := e.FFT(b); err != nil {
			return err
		}
	}
	return nil
}

// BatchInverse is the inverse analogue of Batch.
func BatchInverse[C Complex](e *Engine[C], batches [][]C) error {
	for _, b := range batches {
		if err := e.IFFT(b); err != nil {
			return err
		}
	}
	return nil
}
