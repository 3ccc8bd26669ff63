package fft

import (
	"math"
	"unsafe"
)

// Real-input FFT. A length-N real signal packs into a length-N/2
// complex buffer, one complex transform runs, and a single split step
// with twiddles exp(-i*pi*k/(N/2)) recovers the N/2+1 half-spectrum
// bins; the remaining bins are redundant by Hermitian symmetry. The
// inverse mirrors the construction.
//
// Two equivalent paths exist: a direct path that reinterprets the real
// buffer as complex in place (valid because a []float32 backing array
// satisfies complex64 alignment, and likewise for float64/complex128),
// and a packed path that copies pairs through a scratch buffer. RFFT
// and IRFFT choose the direct path whenever the element sizes pair up
// and fall back to packing otherwise.

// RfftPlanner caches the split-step twiddle tables by half-length.
// Like Planner, it is not safe for concurrent mutation, and published
// tables are immutable.
type RfftPlanner[C Complex] struct {
	cache map[int][]C
}

// NewRfftPlanner returns an empty real-FFT planner.
func NewRfftPlanner[C Complex]() *RfftPlanner[C] {
	return &RfftPlanner[C]{cache: make(map[int][]C)}
}

// Twiddles returns the cached table of m entries where entry k is
// exp(-i*pi*k/m), building it on first use by iterative rotation.
func (p *RfftPlanner[C]) Twiddles(m int) []C {
	if t, ok := p.cache[m]; ok {
		return t
	}
	table := make([]C, m)
	ang := -math.Pi / float64(m)
	sinStep, cosStep := math.Sincos(ang)
	wre, wim := 1.0, 0.0
	for k := range table {
		table[k] = C(complex(wre, wim))
		tmp := wre
		wre = wre*cosStep - wim*sinStep
		wim = wim*cosStep + tmp*sinStep
	}
	p.cache[m] = table
	return table
}

// RFFT computes the half-spectrum of a real signal of even length N
// into output, which must hold exactly N/2+1 bins. The input buffer is
// used as the transform workspace on the direct path and is clobbered.
func RFFT[F Float, C Complex](p *RfftPlanner[C], e *Engine[C], input []F, output []C) error {
	if data, ok := reinterpretAsComplex[F, C](input); ok {
		n := len(input)
		if n == 0 {
			return ErrEmptyInput
		}
		if n%2 != 0 {
			return ErrInvalidValue
		}
		m := n / 2
		if len(output) != m+1 {
			return ErrMismatchedLengths
		}
		if err := e.FFT(data); err != nil {
			return err
		}
		rfftPost(data, output, p.Twiddles(m))
		return nil
	}
	scratch := e.planner.takeScratch(len(input) / 2)
	defer e.planner.putScratch(scratch)
	return RFFTWithScratch(p, e, input, output, scratch)
}

// RFFTWithScratch is the packed variant of RFFT: input pairs are
// copied into scratch, transformed there, and split into output. The
// input is left untouched. scratch must hold at least N/2 elements.
func RFFTWithScratch[F Float, C Complex](p *RfftPlanner[C], e *Engine[C], input []F, output []C, scratch []C) error {
	n := len(input)
	if n == 0 {
		return ErrEmptyInput
	}
	if n%2 != 0 {
		return ErrInvalidValue
	}
	m := n / 2
	if len(output) != m+1 || len(scratch) < m {
		return ErrMismatchedLengths
	}
	buf := scratch[:m]
	packPairs(input, buf)
	if err := e.FFT(buf); err != nil {
		return err
	}
	rfftPost(buf, output, p.Twiddles(m))
	return nil
}

// IRFFT reconstructs a real signal of even length N = len(output) from
// its N/2+1 half-spectrum bins. The spectrum is only read.
func IRFFT[F Float, C Complex](p *RfftPlanner[C], e *Engine[C], input []C, output []F) error {
	if data, ok := reinterpretAsComplex[F, C](output); ok {
		n := len(output)
		if n == 0 {
			return ErrEmptyInput
		}
		if n%2 != 0 {
			return ErrInvalidValue
		}
		m := n / 2
		if len(input) != m+1 {
			return ErrMismatchedLengths
		}
		irfftPre(input, data, p.Twiddles(m))
		return e.IFFT(data)
	}
	scratch := e.planner.takeScratch(len(output) / 2)
	defer e.planner.putScratch(scratch)
	return IRFFTWithScratch(p, e, input, output, scratch)
}

// IRFFTWithScratch is the packed variant of IRFFT, assembling the
// half-length complex buffer in scratch before the inverse transform.
func IRFFTWithScratch[F Float, C Complex](p *RfftPlanner[C], e *Engine[C], input []C, output []F, scratch []C) error {
	n := len(output)
	if n == 0 {
		return ErrEmptyInput
	}
	if n%2 != 0 {
		return ErrInvalidValue
	}
	m := n / 2
	if len(input) != m+1 || len(scratch) < m {
		return ErrMismatchedLengths
	}
	buf := scratch[:m]
	irfftPre(input, buf, p.Twiddles(m))
	if err := e.IFFT(buf); err != nil {
		return err
	}
	unpackPairs(buf, output)
	return nil
}

// reinterpretAsComplex views a real slice as a half-length complex
// slice when the element sizes pair up (float32/complex64 or
// float64/complex128). Mismatched instantiations report false and the
// callers take the packed path instead.
func reinterpretAsComplex[F Float, C Complex](x []F) ([]C, bool) {
	var f F
	var c C
	if unsafe.Sizeof(c) != 2*unsafe.Sizeof(f) {
		return nil, false
	}
	if len(x) < 2 {
		return nil, len(x) == 0
	}
	return unsafe.Slice((*C)(unsafe.Pointer(unsafe.SliceData(x))), len(x)/2), true
}

// packPairs fills buf[i] = (input[2i], input[2i+1]).
func packPairs[F Float, C Complex](input []F, buf []C) {
	switch b := any(buf).(type) {
	case []complex64:
		for i := range b {
			b[i] = complex(float32(input[2*i]), float32(input[2*i+1]))
		}
	case []complex128:
		for i := range b {
			b[i] = complex(float64(input[2*i]), float64(input[2*i+1]))
		}
	}
}

// unpackPairs writes output[2i], output[2i+1] = re, im of buf[i].
func unpackPairs[C Complex, F Float](buf []C, output []F) {
	switch b := any(buf).(type) {
	case []complex64:
		for i := range b {
			output[2*i] = F(real(b[i]))
			output[2*i+1] = F(imag(b[i]))
		}
	case []complex128:
		for i := range b {
			output[2*i] = F(real(b[i]))
			output[2*i+1] = F(imag(b[i]))
		}
	}
}

// rfftPost derives the N/2+1 half-spectrum bins from the transform of
// the packed buffer. Bins 0 and N/2 are real by construction.
func rfftPost[C Complex](data, output, twiddles []C) {
	switch y := any(data).(type) {
	case []complex64:
		out := any(output).([]complex64)
		tw := any(twiddles).([]complex64)
		m := len(y)
		y0 := y[0]
		out[0] = complex(real(y0)+imag(y0), 0)
		out[m] = complex(real(y0)-imag(y0), 0)
		for k := 1; k < m; k++ {
			a := y[k]
			b := y[m-k]
			bc := complex(real(b), -imag(b))
			sum := a + bc
			t := tw[k] * (a - bc)
			out[k] = (sum + complex(imag(t), -real(t))) * 0.5
		}
	case []complex128:
		out := any(output).([]complex128)
		tw := any(twiddles).([]complex128)
		m := len(y)
		y0 := y[0]
		out[0] = complex(real(y0)+imag(y0), 0)
		out[m] = complex(real(y0)-imag(y0), 0)
		for k := 1; k < m; k++ {
			a := y[k]
			b := y[m-k]
			bc := complex(real(b), -imag(b))
			sum := a + bc
			t := tw[k] * (a - bc)
			out[k] = (sum + complex(imag(t), -real(t))) * 0.5
		}
	}
}

// irfftPre is the inverse split step: it folds the half-spectrum back
// into the half-length complex buffer that the inverse transform then
// unpacks into pairs of time samples.
func irfftPre[C Complex](input, data, twiddles []C) {
	switch in := any(input).(type) {
	case []complex64:
		d := any(data).([]complex64)
		tw := any(twiddles).([]complex64)
		m := len(d)
		d[0] = complex((real(in[0])+real(in[m]))*0.5, (real(in[0])-real(in[m]))*0.5)
		for k := 1; k < m; k++ {
			a := in[k]
			b := in[m-k]
			bc := complex(real(b), -imag(b))
			sum := a + bc
			w := complex(real(tw[k]), -imag(tw[k]))
			t := w * (a - bc)
			d[k] = (sum - complex(imag(t), -real(t))) * 0.5
		}
	case []complex128:
		d := any(data).([]complex128)
		tw := any(twiddles).([]complex128)
		m := len(d)
		d[0] = complex((real(in[0])+real(in[m]))*0.5, (real(in[0])-real(in[m]))*0.5)
		for k := 1; k < m; k++ {
			a := in[k]
			b := in[m-k]
			bc := complex(real(b), -imag(b))
			sum := a + bc
			w := complex(real(tw[k]), -imag(tw[k]))
			t := w * (a - bc)
			d[k] = (sum - complex(imag(t), -real(t))) * 0.5
		}
	}
}
