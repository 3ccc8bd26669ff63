package fft

// SplitComplex stores real and imaginary components as two parallel
// slices instead of interleaved complex values. The structure-of-arrays
// layout suits vector-friendly consumers. Re and Im must have equal
// lengths.
type SplitComplex[F Float] struct {
	Re []F
	Im []F
}

// NewSplitComplex allocates a split buffer of n elements.
func NewSplitComplex[F Float](n int) SplitComplex[F] {
	return SplitComplex[F]{Re: make([]F, n), Im: make([]F, n)}
}

// Len returns the element count.
func (s SplitComplex[F]) Len() int { return len(s.Re) }

// splitToComplex interleaves re/im into dst. Lengths are the caller's
// responsibility.
func splitToComplex[F Float, C Complex](re, im []F, dst []C) {
	switch d := any(dst).(type) {
	case []complex64:
		for i := range d {
			d[i] = complex(float32(re[i]), float32(im[i]))
		}
	case []complex128:
		for i := range d {
			d[i] = complex(float64(re[i]), float64(im[i]))
		}
	}
}

// complexToSplit deinterleaves src into re/im.
func complexToSplit[C Complex, F Float](src []C, re, im []F) {
	switch s := any(src).(type) {
	case []complex64:
		for i := range s {
			re[i] = F(real(s[i]))
			im[i] = F(imag(s[i]))
		}
	case []complex128:
		for i := range s {
			re[i] = F(real(s[i]))
			im[i] = F(imag(s[i]))
		}
	}
}

// FFTSplit computes the forward transform of a signal held as separate
// real and imaginary slices, writing the spectrum back in split form.
// The interleaving round-trips through planner scratch.
func FFTSplit[F Float, C Complex](e *Engine[C], re, im []F) error {
	return fftSplit(e, re, im, e.FFT)
}

// IFFTSplit is the inverse analogue of FFTSplit.
func IFFTSplit[F Float, C Complex](e *Engine[C], re, im []F) error {
	return fftSplit(e, re, im, e.IFFT)
}

func fftSplit[F Float, C Complex](e *Engine[C], re, im []F, transform func([]C) error) error {
	if len(re) != len(im) {
		return ErrMismatchedLengths
	}
	n := len(re)
	if n == 0 {
		return ErrEmptyInput
	}
	buf := e.planner.takeScratch(n)
	defer e.planner.putScratch(buf)
	splitToComplex(re, im, buf)
	if err := transform(buf); err != nil {
		return err
	}
	complexToSplit(buf, re, im)
	return nil
}

// FFTSplitComplex is FFTSplit over a SplitComplex value.
func FFTSplitComplex[F Float, C Complex](e *Engine[C], data SplitComplex[F]) error {
	return FFTSplit(e, data.Re, data.Im)
}

// IFFTSplitComplex is IFFTSplit over a SplitComplex value.
func IFFTSplitComplex[F Float, C Complex](e *Engine[C], data SplitComplex[F]) error {
	return IFFTSplit(e, data.Re, data.Im)
}

// FFTStridedSplit transforms the n = len(scratch) elements of a split
// signal found at stride-spaced positions of re and im, mirroring
// FFTStrided for two scalar streams.
func FFTStridedSplit[F Float, C Complex](e *Engine[C], re, im []F, stride int, scratch []C) error {
	return fftStridedSplit(e, re, im, stride, scratch, e.FFT)
}

// IFFTStridedSplit is the inverse analogue of FFTStridedSplit.
func IFFTStridedSplit[F Float, C Complex](e *Engine[C], re, im []F, stride int, scratch []C) error {
	return fftStridedSplit(e, re, im, stride, scratch, e.IFFT)
}

func fftStridedSplit[F Float, C Complex](e *Engine[C], re, im []F, stride int, scratch []C, transform func([]C) error) error {
	if stride <= 0 {
		return ErrInvalidStride
	}
	if len(re) != len(im) {
		return ErrMismatchedLengths
	}
	n := len(scratch)
	if n == 0 {
		return nil
	}
	if len(re) < (n-1)*stride+1 {
		return ErrMismatchedLengths
	}
	switch buf := any(scratch).(type) {
	case []complex64:
		for i := 0; i < n; i++ {
			buf[i] = complex(float32(re[i*stride]), float32(im[i*stride]))
		}
	case []complex128:
		for i := 0; i < n; i++ {
			buf[i] = complex(float64(re[i*stride]), float64(im[i*stride]))
		}
	}
	if err := transform(scratch); err != nil {
		return err
	}
	switch buf := any(scratch).(type) {
	case []complex64:
		for i := 0; i < n; i++ {
			re[i*stride] = F(real(buf[i]))
			im[i*stride] = F(imag(buf[i]))
		}
	case []complex128:
		for i := 0; i < n; i++ {
			re[i*stride] = F(real(buf[i]))
			im[i*stride] = F(imag(buf[i]))
		}
	}
	return nil
}
