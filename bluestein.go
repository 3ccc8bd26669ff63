package fft

// bluestein computes the arbitrary-length DFT of x as a convolution
// with a chirp sequence, evaluated through power-of-two transforms of
// length m = NextPow2(2n-1):
//
//	a[i] = x[i] * chirp[i], zero-padded to m
//	A    = FFT(a)
//	C    = A .* kernelFFT
//	y    = IFFT(C)
//	x[i] = y[i] * chirp[i]
//
// The chirp and the pre-transformed kernel come from the planner cache
// and are reused across calls of the same length. The work buffer is
// allocated per call; only the power-of-two path is allocation-free in
// steady state.
func (e *Engine[C]) bluestein(x []C) error {
	n := len(x)
	chirp, kernelFFT := e.planner.Bluestein(n)
	m := len(kernelFFT)

	a := make([]C, m)
	for i, v := range x {
		a[i] = v * chirp[i]
	}
	if err := e.StockhamFFT(a); err != nil {
		return err
	}
	for i := range a {
		a[i] *= kernelFFT[i]
	}
	if err := e.IFFT(a); err != nil {
		return err
	}
	for i := range x {
		x[i] = a[i] * chirp[i]
	}
	return nil
}
