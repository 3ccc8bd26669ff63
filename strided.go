package fft

// Strided variants gather n = len(scratch) elements from stride-s
// positions into the contiguous scratch buffer, transform that, and
// scatter the results back. Strides are in elements, never bytes;
// stride 0 is invalid.

// FFTStrided computes the in-place forward transform of the n =
// len(scratch) elements of input found at positions 0, stride,
// 2*stride, ... The input must hold at least (n-1)*stride+1 elements.
func (e *Engine[C]) FFTStrided(input []C, stride int, scratch []C) error {
	return e.strided(input, stride, scratch, e.FFT)
}

// IFFTStrided is the inverse analogue of FFTStrided.
func (e *Engine[C]) IFFTStrided(input []C, stride int, scratch []C) error {
	return e.strided(input, stride, scratch, e.IFFT)
}

func (e *Engine[C]) strided(input []C, stride int, scratch []C, transform func([]C) error) error {
	if stride <= 0 {
		return ErrInvalidStride
	}
	n := len(scratch)
	if n == 0 {
		return nil
	}
	if len(input) < (n-1)*stride+1 {
		return ErrMismatchedLengths
	}
	for i := 0; i < n; i++ {
		scratch[i] = input[i*stride]
	}
	if err := transform(scratch); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		input[i*stride] = scratch[i]
	}
	return nil
}

// FFTStridedAlloc is FFTStrided with the scratch buffer borrowed from
// the planner, sized to len(input)/stride. The buffer is detached for
// the duration of the call so the nested transform cannot alias it.
func (e *Engine[C]) FFTStridedAlloc(input []C, stride int) error {
	if stride <= 0 {
		return ErrInvalidStride
	}
	scratch := e.planner.takeScratch(len(input) / stride)
	defer e.planner.putScratch(scratch)
	return e.FFTStrided(input, stride, scratch)
}

// IFFTStridedAlloc is the inverse analogue of FFTStridedAlloc.
func (e *Engine[C]) IFFTStridedAlloc(input []C, stride int) error {
	if stride <= 0 {
		return ErrInvalidStride
	}
	scratch := e.planner.takeScratch(len(input) / stride)
	defer e.planner.putScratch(scratch)
	return e.IFFTStrided(input, stride, scratch)
}

// FFTOutOfPlaceStrided reads n = len(input)/inStride elements from the
// strided input, transforms them, and writes the spectrum to the
// strided output. Both lengths must be exact multiples of their
// strides and describe the same element count.
func (e *Engine[C]) FFTOutOfPlaceStrided(input []C, inStride int, output []C, outStride int) error {
	return e.outOfPlaceStrided(input, inStride, output, outStride, e.FFT)
}

// IFFTOutOfPlaceStrided is the inverse analogue of
// FFTOutOfPlaceStrided.
func (e *Engine[C]) IFFTOutOfPlaceStrided(input []C, inStride int, output []C, outStride int) error {
	return e.outOfPlaceStrided(input, inStride, output, outStride, e.IFFT)
}

func (e *Engine[C]) outOfPlaceStrided(input []C, inStride int, output []C, outStride int, transform func([]C) error) error {
	if inStride <= 0 || outStride <= 0 {
		return ErrInvalidStride
	}
	if len(input)%inStride != 0 || len(output)%outStride != 0 {
		return ErrInvalidStride
	}
	n := len(input) / inStride
	if len(output)/outStride != n {
		return ErrMismatchedLengths
	}
	scratch := e.planner.takeScratch(n)
	defer e.planner.putScratch(scratch)
	for i := 0; i < n; i++ {
		scratch[i] = input[i*inStride]
	}
	if err := transform(scratch); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		output[i*outStride] = scratch[i]
	}
	return nil
}
